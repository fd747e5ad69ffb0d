package fields

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/quillsign/quillsign/pkg/handlers"
	"github.com/quillsign/quillsign/pkg/routes"
)

// Handler provides the owner-facing field placement endpoints.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// NewHandler creates a field handler.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "fields"),
	}
}

// Routes returns the field endpoint route group, nested under a document.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/{id}/fields",
		Tags:        []string{"Fields"},
		Description: "Signature field placement",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.List, OpenAPI: Spec.List},
			{Method: "POST", Pattern: "", Handler: h.Place, OpenAPI: Spec.Place},
			{Method: "DELETE", Pattern: "/{fieldId}", Handler: h.Remove, OpenAPI: Spec.Remove},
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

	result, err := h.sys.List(r.Context(), actor, id)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) Place(w http.ResponseWriter, r *http.Request) {
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

	var cmd PlaceCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	field, err := h.sys.Place(r.Context(), actor, id, cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, field)
}

func (h *Handler) Remove(w http.ResponseWriter, r *http.Request) {
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

	fieldID, err := uuid.Parse(r.PathValue("fieldId"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	if err := h.sys.Remove(r.Context(), actor, id, fieldID); err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
