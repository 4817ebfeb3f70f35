// Package prompt maps a content type to the prompt template and the
// inference model used to render it.
package prompt

import "strings"

// Content types understood by the optimizer and the model selector.
const (
	TypeCharacter  = "character"
	TypeTileset    = "tileset"
	TypeObject     = "object"
	TypePoster     = "poster"
	TypeBackground = "background"
)

// DefaultType is used when a request does not name a content type.
const DefaultType = TypeCharacter

const placeholder = "{prompt}"

var templates = map[string]string{
	TypeCharacter:  "pixel art, 2D game character, {prompt}, transparent background, simple design, 64x64 sprite, top-down view, clean lines, vibrant colors",
	TypeTileset:    "pixel art, seamless tileable texture, {prompt}, 48x48 tile, game asset, repeatable pattern, top-down view, clean pixel art",
	TypeObject:     "pixel art, 2D game object, {prompt}, transparent background, isometric view, simple design, game asset, clean pixels",
	TypePoster:     "digital art, poster design, {prompt}, high quality, detailed, vibrant colors, professional",
	TypeBackground: "digital art, background scene, {prompt}, wide shot, detailed environment, atmospheric, high quality",
}

// Optimize embeds the raw prompt into the template for contentType. Unknown
// types return the raw prompt unchanged.
func Optimize(raw, contentType string) string {
	tmpl, ok := templates[contentType]
	if !ok {
		return raw
	}
	// Replace only the placeholder, so a raw prompt that itself contains
	// "{prompt}" is left alone.
	return strings.Replace(tmpl, placeholder, raw, 1)
}

// KnownTypes lists the content types with a dedicated template.
func KnownTypes() []string {
	return []string{TypeCharacter, TypeTileset, TypeObject, TypePoster, TypeBackground}
}
