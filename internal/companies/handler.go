package companies

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/biztime/biztime/internal/platform/httpx"
)

// Handler manages company endpoints.
type Handler struct {
	logger  *slog.Logger
	service *Service
}

// NewHandler builds a Handler instance.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

// MountRoutes registers company routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.list)
	r.Get("/{code}", h.get)
	r.Post("/", h.create)
	r.Put("/", h.update)
	r.Delete("/{code}", h.delete)
}

type companyRequest struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// updateCompanyRequest keeps Code a pointer so an explicit code field in the
// body can be rejected without confusing it with an absent one.
type updateCompanyRequest struct {
	Code        *string `json:"code"`
	CurrentCode string  `json:"current_code"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	all, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("list companies", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	if all == nil {
		all = []Company{}
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"companies": all})
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	detail, err := h.service.Get(r.Context(), code)
	if err != nil {
		h.logger.Error("get company", slog.Any("error", err), slog.String("code", code))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{
		"company":  detail.Company,
		"industry": detail.Industries,
	})
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req companyRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	created, err := h.service.Create(r.Context(), CreateCompanyInput{
		Code:        req.Code,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		h.logger.Error("create company", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, map[string]any{"company": created})
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	var req updateCompanyRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Code != nil {
		httpx.Error(w, http.StatusBadRequest, "not allowed")
		return
	}

	updated, err := h.service.Update(r.Context(), UpdateCompanyInput{
		CurrentCode: req.CurrentCode,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		h.logger.Error("update company", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"company": updated})
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	if err := h.service.Delete(r.Context(), code); err != nil {
		h.logger.Error("delete company", slog.Any("error", err), slog.String("code", code))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"message": "Company deleted"})
}
