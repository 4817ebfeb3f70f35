package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/pixelforge/asset-image-proxy/internal/inference"
	"github.com/pixelforge/asset-image-proxy/internal/prompt"
)

func (router *Router) generationHandler(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodOptions:
		w.WriteHeader(http.StatusOK)
		return
	case http.MethodPost:
	default:
		respondWithError(w, http.StatusMethodNotAllowed, errMethodNotAllowed)
		return
	}

	logger := zerolog.Ctx(r.Context())

	generationRequest, err := decodeGenerationRequest(r.Body)
	if err != nil {
		logger.Error().Err(err).Msg("Invalid request body")
		respondWithInternalError(w, err)
		return
	}

	if generationRequest.Prompt == "" {
		respondWithError(w, http.StatusBadRequest, errPromptRequired)
		return
	}

	if router.apiKey == "" {
		logger.Error().Msg("HUGGING_FACE_API_KEY is not set")
		respondWithError(w, http.StatusInternalServerError, errAPIKeyMissing)
		return
	}

	optimizedPrompt := prompt.Optimize(generationRequest.Prompt, generationRequest.Type)
	modelURL := router.selector.URL(generationRequest.Type)

	logger.Info().
		Str("type", generationRequest.Type).
		Str("model_url", modelURL).
		Str("prompt", optimizedPrompt).
		Str("size", generationRequest.Size).
		Msg("Generating image")

	// The upstream call outlives a disconnected caller.
	imageData, err := router.generator.Generate(context.WithoutCancel(r.Context()), modelURL, optimizedPrompt)
	if err != nil {
		var upstreamErr *inference.UpstreamError
		if errors.As(err, &upstreamErr) {
			logger.Error().Int("status", upstreamErr.StatusCode).Str("body", upstreamErr.Body).Msg("Inference api error")
			respondWithJSON(w, upstreamErr.StatusCode, ErrorResponse{
				Error:   errGenerationFailed,
				Details: &upstreamErr.Body,
			})
			return
		}
		logger.Error().Err(err).Msg("Failed to generate image")
		respondWithInternalError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, GenerationResponse{
		Success: true,
		Image:   encodeDataURI(imageData),
		Prompt:  optimizedPrompt,
	})
}
