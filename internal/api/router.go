package api

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"
	_ "github.com/lounnaci/gestion-eau/docs" // enregistrement de la documentation Swagger
)

func NewRouter(h *Handler, mw *Middleware) http.Handler {
	router := http.NewServeMux()

	router.HandleFunc("GET /api/health", h.Health)
	router.HandleFunc("GET /api/status", h.Status)
	router.HandleFunc("GET /api/stats", h.Stats)

	router.HandleFunc("POST /api/auth/login", h.Login)
	router.HandleFunc("GET /api/auth/status/{username}", h.LoginStatus)

	router.HandleFunc("GET /api/{collection}", h.ListCollection)
	router.HandleFunc("POST /api/{collection}", h.SaveDocument)
	router.HandleFunc("DELETE /api/{collection}/{id}", h.DeleteDocument)

	router.Handle("/api/swagger/", httpSwagger.WrapHandler)

	handler := use(router, mw.Recover, mw.Cors, mw.WithIP, mw.Log)

	return handler
}

func use(handler http.Handler, mws ...func(http.Handler) http.Handler) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		handler = mws[i](handler)
	}

	return handler
}
