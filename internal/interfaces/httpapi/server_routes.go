package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /{$}", handler.Healthz)
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerCompareRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /compare", handler.ComparePlayers)
}
