package main

import (
	"context"
	"net/http"
	"time"

	"github.com/quillsign/quillsign/internal/audit"
	"github.com/quillsign/quillsign/internal/documents"
	"github.com/quillsign/quillsign/internal/fields"
	"github.com/quillsign/quillsign/internal/middleware"
	"github.com/quillsign/quillsign/internal/signers"
	"github.com/quillsign/quillsign/internal/signing"
	"github.com/quillsign/quillsign/pkg/openapi"
	"github.com/quillsign/quillsign/pkg/routes"
)

// registerRoutes configures all HTTP routes for the service. The signing
// group is wrapped with the per-client rate limiter since its endpoints are
// addressed by token alone.
func registerRoutes(r routes.System, runtime *Runtime, domain *Domain, limiter *middleware.RateLimiter) error {
	cfg := runtime.Config

	documentGroup := domain.Documents.
		Handler(cfg.Storage.MaxUploadSizeBytes(), cfg.Signing.DefaultOrigin).
		Routes()
	documentGroup.Children = append(documentGroup.Children,
		domain.Signers.Handler().Routes(),
		domain.Fields.Handler().Routes(),
		domain.Audit.Handler().Routes(),
	)

	signingGroup := domain.Signing.Handler().Routes()
	limit := limiter.Middleware()
	for i := range signingGroup.Routes {
		signingGroup.Routes[i].Handler = limit(signingGroup.Routes[i].Handler).ServeHTTP
	}

	r.RegisterGroup(routes.Group{
		Prefix:   "/api",
		Children: []routes.Group{documentGroup, signingGroup},
	})

	r.RegisterRoute(routes.Route{
		Method:  "GET",
		Pattern: "/healthz",
		Handler: handleHealthCheck,
		OpenAPI: &openapi.Operation{
			Summary: "Health check endpoint",
			Tags:    []string{"Infrastructure"},
			Responses: map[int]*openapi.Response{
				200: {Description: "Service is healthy"},
			},
		},
	})

	r.RegisterRoute(routes.Route{
		Method:  "GET",
		Pattern: "/readyz",
		Handler: func(w http.ResponseWriter, req *http.Request) {
			handleReadinessCheck(w, req, runtime)
		},
		OpenAPI: &openapi.Operation{
			Summary: "Readiness check endpoint",
			Tags:    []string{"Infrastructure"},
			Responses: map[int]*openapi.Response{
				200: {Description: "Service is ready"},
				503: {Description: "Service not ready"},
			},
		},
	})

	r.RegisterRoute(routes.Route{
		Method:  "GET",
		Pattern: "/metrics",
		Handler: runtime.Metrics.Handler().ServeHTTP,
	})

	components := openapi.NewComponents()
	components.AddSchemas(documents.Spec.Schemas())
	components.AddSchemas(signers.Spec.Schemas())
	components.AddSchemas(fields.Spec.Schemas())
	components.AddSchemas(audit.Spec.Schemas())
	components.AddSchemas(signing.Spec.Schemas())
	components.AddResponses(sharedResponses())

	specBytes, err := generateSpecJSON(r, components)
	if err != nil {
		return err
	}

	r.RegisterRoute(routes.Route{
		Method:  "GET",
		Pattern: "/api/openapi.json",
		Handler: openapi.ServeSpec(specBytes),
	})

	return nil
}

// handleHealthCheck responds with OK status for health monitoring.
func handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

func handleReadinessCheck(w http.ResponseWriter, r *http.Request, runtime *Runtime) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := runtime.DB.PingContext(ctx); err != nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("NOT READY"))
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("READY"))
}

func sharedResponses() map[string]*openapi.Response {
	return map[string]*openapi.Response{
		"BadRequest": {Description: "Malformed request"},
		"Forbidden":  {Description: "Actor does not own the resource"},
		"NotFound":   {Description: "Resource not found"},
		"Conflict":   {Description: "Operation conflicts with the current lifecycle state"},
	}
}
