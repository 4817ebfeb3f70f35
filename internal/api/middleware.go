package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/cors"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
)

var (
	corsMethods = []string{"GET", "OPTIONS", "PATCH", "DELETE", "POST", "PUT"}
	corsHeaders = []string{
		"X-CSRF-Token", "X-Requested-With", "Accept", "Accept-Version", "Content-Length",
		"Content-MD5", "Content-Type", "Date", "X-Api-Version",
	}
)

// corsMiddleware sets the wildcard CORS headers on every response. With
// allowedOrigins set, only those origins are granted access.
func corsMiddleware(allowedOrigins []string) mux.MiddlewareFunc {
	if len(allowedOrigins) > 0 {
		return cors.Handler(cors.Options{
			AllowedOrigins:   allowedOrigins,
			AllowedMethods:   corsMethods,
			AllowedHeaders:   corsHeaders,
			ExposedHeaders:   []string{requestIDHeader},
			AllowCredentials: true,
		})
	}

	methods := strings.Join(corsMethods, ",")
	headers := strings.Join(corsHeaders, ", ")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Set("Access-Control-Allow-Credentials", "true")
			h.Set("Access-Control-Allow-Origin", "*")
			h.Set("Access-Control-Allow-Methods", methods)
			h.Set("Access-Control-Allow-Headers", headers)
			next.ServeHTTP(w, r)
		})
	}
}

func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.New().String()
		w.Header().Set(requestIDHeader, id)

		logger := log.With().Str("request_id", id).Logger()
		next.ServeHTTP(w, r.WithContext(logger.WithContext(r.Context())))
	})
}

func recoverMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}
			err := fmt.Errorf("%v", rec)
			log.Ctx(r.Context()).Error().Err(err).Msg("Recovered from panic")
			respondWithInternalError(w, err)
		}()
		next.ServeHTTP(w, r)
	})
}
