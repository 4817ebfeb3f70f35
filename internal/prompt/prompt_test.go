package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptimizeKnownTypes(t *testing.T) {
	raw := "a knight with a red cape"

	tests := []struct {
		contentType string
		keywords    []string
	}{
		{TypeCharacter, []string{"pixel art", "2D game character", "64x64 sprite", "transparent background"}},
		{TypeTileset, []string{"pixel art", "seamless tileable texture", "48x48 tile", "repeatable pattern"}},
		{TypeObject, []string{"pixel art", "2D game object", "isometric view", "clean pixels"}},
		{TypePoster, []string{"digital art", "poster design", "professional"}},
		{TypeBackground, []string{"digital art", "background scene", "wide shot", "atmospheric"}},
	}

	for _, tt := range tests {
		t.Run(tt.contentType, func(t *testing.T) {
			got := Optimize(raw, tt.contentType)
			assert.Contains(t, got, raw)
			for _, kw := range tt.keywords {
				assert.Contains(t, got, kw)
			}
		})
	}
}

func TestOptimizeCharacterExact(t *testing.T) {
	assert.Equal(t,
		"pixel art, 2D game character, slime, transparent background, simple design, 64x64 sprite, top-down view, clean lines, vibrant colors",
		Optimize("slime", TypeCharacter))
}

func TestOptimizeUnknownTypePassesThrough(t *testing.T) {
	for _, contentType := range []string{"", "icon", "Character", "portrait"} {
		assert.Equal(t, "a blue door", Optimize("a blue door", contentType), contentType)
	}
}

func TestOptimizeKeepsPlaceholderInPrompt(t *testing.T) {
	got := Optimize("sign reading {prompt}", TypePoster)
	assert.Equal(t, "digital art, poster design, sign reading {prompt}, high quality, detailed, vibrant colors, professional", got)
}

func TestModel(t *testing.T) {
	assert.Equal(t, ModelPixelArt, Model(TypeCharacter))
	assert.Equal(t, ModelPixelArt, Model(TypeTileset))
	assert.Equal(t, ModelPixelArt, Model(TypeObject))
	assert.Equal(t, ModelDiffusion, Model(TypePoster))
	assert.Equal(t, ModelDiffusion, Model(TypeBackground))
	assert.Equal(t, Model(TypeCharacter), Model("unknown"))
	assert.Equal(t, Model(TypeCharacter), Model(""))
}

func TestModelSelectorURL(t *testing.T) {
	s := NewModelSelector("https://api-inference.huggingface.co/models/")

	assert.Equal(t, "https://api-inference.huggingface.co/models/nerijs/pixel-art-xl", s.URL(TypeCharacter))
	assert.Equal(t, "https://api-inference.huggingface.co/models/stabilityai/stable-diffusion-2-1", s.URL(TypeBackground))
	assert.Equal(t, s.URL(TypeCharacter), s.URL("sprite-sheet"))
}

func TestEveryKnownTypeHasTemplateAndModel(t *testing.T) {
	for _, contentType := range KnownTypes() {
		assert.Contains(t, templates, contentType)
		assert.Contains(t, models, contentType)
	}
}
