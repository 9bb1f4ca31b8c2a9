package rest

import "net/http"

// Routes registers every REST endpoint on mux. api wraps the /v1 handlers.
func Routes(mux *http.ServeMux, phonemes *PhonemeHandler, health *HealthHandler, api func(http.Handler) http.Handler) {
	mux.HandleFunc("GET /live", health.Live)
	mux.HandleFunc("GET /ready", health.Ready)
	mux.HandleFunc("GET /health", health.Health)

	mux.Handle("POST /v1/phonemes", api(http.HandlerFunc(phonemes.Convert)))
	mux.Handle("OPTIONS /v1/phonemes", api(http.NotFoundHandler()))
	mux.Handle("GET /v1/words/{word}/pronunciations", api(http.HandlerFunc(phonemes.Pronunciations)))
	mux.Handle("OPTIONS /v1/words/{word}/pronunciations", api(http.NotFoundHandler()))
}
