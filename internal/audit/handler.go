package audit

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/quillsign/quillsign/pkg/handlers"
	"github.com/quillsign/quillsign/pkg/routes"
)

// Handler provides the owner-facing audit trail endpoint.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// NewHandler creates an audit handler.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "audit"),
	}
}

// Routes returns the audit endpoint route group, nested under a document.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/{id}/audit",
		Tags:        []string{"Audit"},
		Description: "Document audit trail",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.List, OpenAPI: Spec.List},
		},
	}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	actor, err := handlers.ActorID(r)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusUnauthorized, err)
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	entries, err := h.sys.List(r.Context(), actor, id)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, entries)
}
