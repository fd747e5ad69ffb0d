package signing

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/quillsign/quillsign/pkg/clientmeta"
	"github.com/quillsign/quillsign/pkg/handlers"
	"github.com/quillsign/quillsign/pkg/routes"
)

// Handler provides the signer-facing protocol endpoints.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// NewHandler creates a signing handler.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "signing"),
	}
}

// Routes returns the signing endpoint route group.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/sign",
		Tags:        []string{"Signing"},
		Description: "Token-addressed signer operations",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/{token}", Handler: h.Resolve, OpenAPI: Spec.Resolve},
			{Method: "POST", Pattern: "/{token}", Handler: h.Submit, OpenAPI: Spec.Submit},
			{Method: "POST", Pattern: "/{token}/decline", Handler: h.Decline, OpenAPI: Spec.Decline},
		},
	}
}

func (h *Handler) Resolve(w http.ResponseWriter, r *http.Request) {
	token := r.PathValue("token")
	meta := clientmeta.FromRequest(r)

	view, err := h.sys.Resolve(r.Context(), token, meta)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, view)
}

func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	token := r.PathValue("token")
	meta := clientmeta.FromRequest(r)

	var cmd SubmitCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	result, err := h.sys.Submit(r.Context(), token, cmd, meta)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) Decline(w http.ResponseWriter, r *http.Request) {
	token := r.PathValue("token")
	meta := clientmeta.FromRequest(r)

	var cmd DeclineCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil && err != io.EOF {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	if err := h.sys.Decline(r.Context(), token, cmd, meta); err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
