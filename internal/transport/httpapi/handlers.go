package httpapi

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/ozzus/nextbid/internal/application/service"
	"github.com/ozzus/nextbid/internal/domain/models"
	"github.com/ozzus/nextbid/internal/transport/wire"
	"go.uber.org/zap"
)

type Handler struct {
	log     *zap.Logger
	service *service.BidService
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, msg string, err error) {
	status, message := statusFor(err)
	if status >= http.StatusInternalServerError {
		h.log.Error(msg, zap.Error(err), zap.String("path", r.URL.Path))
	} else {
		h.log.Warn(msg, zap.Error(err), zap.String("path", r.URL.Path))
	}
	writeError(w, status, message)
}

func (h *Handler) ListDefinitions(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, wire.DefinitionsResponse{Definitions: models.CommandDefinitions()})
}

func (h *Handler) BuildCommand(w http.ResponseWriter, r *http.Request) {
	var req wire.BuildCommandRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}

	input, err := req.Input.ToModel()
	if err != nil {
		h.fail(w, r, "build command failed", err)
		return
	}

	result, err := h.service.BuildCommand(r.Context(), input, req.DateRange)
	if err != nil {
		h.fail(w, r, "build command failed", err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) SimulateCommand(w http.ResponseWriter, r *http.Request) {
	var req wire.SimulateCommandRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}

	input, err := req.Input.ToModel()
	if err != nil {
		h.fail(w, r, "simulate command failed", err)
		return
	}

	result, err := h.service.SimulateCommand(r.Context(), input, req.DateRange, req.Period)
	if err != nil {
		h.fail(w, r, "simulate command failed", err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) MatchCommand(w http.ResponseWriter, r *http.Request) {
	var req wire.MatchCommandRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}

	result, err := h.service.MatchCommand(r.Context(), req.Command, req.Period)
	if err != nil {
		h.fail(w, r, "match command failed", err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) RenderCommands(w http.ResponseWriter, r *http.Request) {
	var req wire.RenderRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}

	writeJSON(w, http.StatusOK, wire.NewRenderResponse(req.Commands))
}

func (h *Handler) CompileBidGroup(w http.ResponseWriter, r *http.Request) {
	maxLines, ok := parseMaxLines(w, r)
	if !ok {
		return
	}

	group, err := h.service.CompileBidGroup(r.Context(), chi.URLParam(r, "id"), maxLines)
	if err != nil {
		h.fail(w, r, "compile bid group failed", err)
		return
	}

	writeJSON(w, http.StatusOK, group)
}

func (h *Handler) PreviewBidGroup(w http.ResponseWriter, r *http.Request) {
	maxLines, ok := parseMaxLines(w, r)
	if !ok {
		return
	}

	period := r.URL.Query().Get("period")
	preview, err := h.service.PreviewBidGroup(r.Context(), chi.URLParam(r, "id"), period, maxLines)
	if err != nil {
		h.fail(w, r, "preview bid group failed", err)
		return
	}

	writeJSON(w, http.StatusOK, preview)
}

func (h *Handler) PreviewPreferences(w http.ResponseWriter, r *http.Request) {
	var req wire.PreviewPreferencesRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}

	previews, err := h.service.PreviewPreferences(r.Context(), req.Prefs(), req.Period, req.DateRange)
	if err != nil {
		h.fail(w, r, "preview preferences failed", err)
		return
	}

	writeJSON(w, http.StatusOK, wire.PreviewPreferencesResponse{Groups: wire.NewGroupPreviews(previews)})
}

// parseMaxLines reads the optional max_lines query; zero means the service
// default.
func parseMaxLines(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := strings.TrimSpace(r.URL.Query().Get("max_lines"))
	if raw == "" {
		return 0, true
	}

	parsed, err := strconv.Atoi(raw)
	if err != nil || parsed <= 0 {
		writeError(w, http.StatusBadRequest, "max_lines must be a positive integer")
		return 0, false
	}
	if parsed > 50 {
		parsed = 50
	}

	return parsed, true
}
