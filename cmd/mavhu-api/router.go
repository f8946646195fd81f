package main

import (
	_ "embed"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	httpSwagger "github.com/swaggo/http-swagger"
)

//go:embed openapi.yaml
var openapiYAML []byte

// routes wires middlewares and endpoints. Adjust CORS for your frontend hosts.
func (a *App) routes() http.Handler {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173", "http://127.0.0.1:5173", "http://localhost:3000", "https://*.mavhu.africa"},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/yaml; charset=utf-8")
		w.Header().Set("Cache-Control", "public, max-age=60")
		w.Write(openapiYAML)
	})

	r.Mount("/swagger", httpSwagger.Handler(
		httpSwagger.URL("/openapi.yaml"),
	))

	r.Post("/auth/register", a.handleRegister)
	r.Post("/auth/login", a.handleLogin)

	r.Group(func(pr chi.Router) {
		pr.Use(a.authMiddleware)
		pr.Get("/me", a.handleMe)

		pr.Route("/companies/admin", func(cr chi.Router) {
			cr.Get("/", a.handleListCompanies)
			cr.Post("/register", a.handleCreateCompany)
			cr.Get("/{id}", a.handleGetCompany)
			cr.Patch("/{id}", a.handleUpdateCompany)
			cr.Delete("/{id}", a.handleDeleteCompany)
		})

		pr.Get("/esg-dashboard/crop-yield-forecast/{companyId}", a.handleGetCropYield)
	})

	// Processor push channel, shared-token auth instead of user JWT.
	r.Group(func(ir chi.Router) {
		ir.Use(a.processorMiddleware)
		ir.Put("/esg-dashboard/crop-yield-forecast/{companyId}", a.handleIngestCropYield)
	})

	return r
}
