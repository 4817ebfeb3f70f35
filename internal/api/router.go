package api

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/pixelforge/asset-image-proxy/internal/inference"
	"github.com/pixelforge/asset-image-proxy/internal/prompt"
)

// ImageGenerator renders an image for the given prompt at an inference
// endpoint and returns its raw bytes.
type ImageGenerator interface {
	Generate(ctx context.Context, endpoint, inputs string) ([]byte, error)
}

type Config struct {
	APIKey           string
	InferenceBaseURL string
	// AllowedOrigins restricts CORS to the listed origins. Empty allows any
	// origin.
	AllowedOrigins []string
	// Generator overrides the inference client built from APIKey.
	Generator ImageGenerator
}

type Router struct {
	router    *mux.Router
	generator ImageGenerator
	selector  prompt.ModelSelector
	apiKey    string
}

func NewRouter(cfg Config) *Router {
	generator := cfg.Generator
	if generator == nil {
		generator = inference.NewClient(cfg.APIKey, nil)
	}

	r := mux.NewRouter()
	router := &Router{
		router:    r,
		generator: generator,
		selector:  prompt.NewModelSelector(cfg.InferenceBaseURL),
		apiKey:    cfg.APIKey,
	}

	r.Use(corsMiddleware(cfg.AllowedOrigins), requestIDMiddleware, recoverMiddleware)
	r.PathPrefix("/").HandlerFunc(router.generationHandler)

	return router
}

func (router *Router) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	router.router.ServeHTTP(w, r)
}
