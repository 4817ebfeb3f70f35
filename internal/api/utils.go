package api

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/pixelforge/asset-image-proxy/internal/prompt"
)

// decodeGenerationRequest reads the request body. Keys match exactly, and
// type falls back to the default only when the key is absent; an explicit
// empty or null type is kept as the empty string.
func decodeGenerationRequest(body io.Reader) (GenerationRequest, error) {
	var fields map[string]json.RawMessage
	if err := json.NewDecoder(body).Decode(&fields); err != nil && !errors.Is(err, io.EOF) {
		return GenerationRequest{}, fmt.Errorf("failed to decode request body: %w", err)
	}

	req := GenerationRequest{
		Type: prompt.DefaultType,
		Size: defaultSize,
	}

	for key, dst := range map[string]*string{"prompt": &req.Prompt, "type": &req.Type, "size": &req.Size} {
		raw, ok := fields[key]
		if !ok {
			continue
		}
		*dst = ""
		if err := json.Unmarshal(raw, dst); err != nil {
			return GenerationRequest{}, fmt.Errorf("failed to decode %q: %w", key, err)
		}
	}

	return req, nil
}

func encodeDataURI(imageData []byte) string {
	return dataURIPrefix + base64.StdEncoding.EncodeToString(imageData)
}
