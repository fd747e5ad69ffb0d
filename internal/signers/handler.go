package signers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/quillsign/quillsign/pkg/handlers"
	"github.com/quillsign/quillsign/pkg/routes"
)

// Handler provides the owner-facing signer management endpoints.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// NewHandler creates a signer handler.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "signers"),
	}
}

// Routes returns the signer endpoint route group, nested under a document.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/{id}/signers",
		Tags:        []string{"Signers"},
		Description: "Document signer management",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "", Handler: h.Add, OpenAPI: Spec.Add},
			{Method: "DELETE", Pattern: "/{signerId}", Handler: h.Remove, OpenAPI: Spec.Remove},
		},
	}
}

func (h *Handler) Add(w http.ResponseWriter, r *http.Request) {
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

	var cmd AddCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	signer, err := h.sys.Add(r.Context(), actor, id, cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, signer)
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

	signerID, err := uuid.Parse(r.PathValue("signerId"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	if err := h.sys.Remove(r.Context(), actor, id, signerID); err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
