package server

import "net/http"

// Chi returns a Chi-compatible handler for POST /estimate. Chi routes
// plain net/http handlers, so this is HTTP with Chi's registration
// signature:
//
//	r := chi.NewRouter()
//	r.Post("/estimate", server.Chi(server.DefaultConfig()).ServeHTTP)
func Chi(cfg Config) http.Handler {
	return HTTP(cfg)
}
