package prompt

import "strings"

const (
	ModelPixelArt  = "nerijs/pixel-art-xl"
	ModelDiffusion = "stabilityai/stable-diffusion-2-1"
)

var models = map[string]string{
	TypeCharacter:  ModelPixelArt,
	TypeTileset:    ModelPixelArt,
	TypeObject:     ModelPixelArt,
	TypePoster:     ModelDiffusion,
	TypeBackground: ModelDiffusion,
}

// Model returns the model id for contentType, falling back to the
// character model.
func Model(contentType string) string {
	if model, ok := models[contentType]; ok {
		return model
	}
	return models[DefaultType]
}

// ModelSelector resolves content types to full inference endpoint URLs.
type ModelSelector struct {
	baseURL string
}

func NewModelSelector(baseURL string) ModelSelector {
	return ModelSelector{baseURL: strings.TrimRight(baseURL, "/")}
}

func (s ModelSelector) URL(contentType string) string {
	return s.baseURL + "/" + Model(contentType)
}
