package industries

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/biztime/biztime/internal/platform/httpx"
)

// Handler manages industry endpoints.
type Handler struct {
	logger  *slog.Logger
	service *Service
}

// NewHandler builds a Handler instance.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

// MountRoutes registers industry routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Post("/relationship", h.createRelationship)
}

type industryRequest struct {
	Code     string `json:"code"`
	Industry string `json:"industry"`
}

type relationshipRequest struct {
	IndusCode string `json:"indus_code"`
	CompCode  string `json:"comp_code"`
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	listing, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("list industries", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{
		"industries": listing.Industries,
		"companies":  listing.CompanyCodes,
	})
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req industryRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	created, err := h.service.Create(r.Context(), CreateIndustryInput{
		Code:     req.Code,
		Industry: req.Industry,
	})
	if err != nil {
		h.logger.Error("create industry", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, map[string]any{"industry": created})
}

func (h *Handler) createRelationship(w http.ResponseWriter, r *http.Request) {
	var req relationshipRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	created, err := h.service.CreateRelationship(r.Context(), CreateRelationshipInput{
		IndusCode: req.IndusCode,
		CompCode:  req.CompCode,
	})
	if err != nil {
		h.logger.Error("create relationship", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, map[string]any{"relationship": created})
}
