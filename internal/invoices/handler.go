package invoices

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/biztime/biztime/internal/platform/httpx"
)

// Handler manages invoice endpoints.
type Handler struct {
	logger  *slog.Logger
	service *Service
}

// NewHandler builds a Handler instance.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

// MountRoutes registers invoice routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Post("/", h.create)
	r.Put("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

type invoiceRequest struct {
	CompCode string  `json:"comp_code"`
	Amt      float64 `json:"amt"`
}

// updateInvoiceRequest keeps ID a pointer so an explicit id field in the
// body can be rejected. A paid field, if sent, is ignored: the transition is
// driven by the update itself, not by client instruction.
type updateInvoiceRequest struct {
	ID  *int64  `json:"id"`
	Amt float64 `json:"amt"`
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	all, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("list invoices", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	if all == nil {
		all = []Invoice{}
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"invoices": all})
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		httpx.Error(w, http.StatusNotFound, "there is no invoice with id "+chi.URLParam(r, "id"))
		return
	}

	inv, err := h.service.Get(r.Context(), id)
	if err != nil {
		h.logger.Error("get invoice", slog.Any("error", err), slog.Int64("id", id))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"invoice": inv})
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req invoiceRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	created, err := h.service.Create(r.Context(), CreateInvoiceInput{
		CompCode: req.CompCode,
		Amt:      req.Amt,
	})
	if err != nil {
		h.logger.Error("create invoice", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, map[string]any{"invoice": created})
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		httpx.Error(w, http.StatusNotFound, "there is no invoice with id "+chi.URLParam(r, "id"))
		return
	}

	var req updateInvoiceRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.ID != nil {
		httpx.Error(w, http.StatusBadRequest, "not allowed")
		return
	}

	updated, err := h.service.Update(r.Context(), UpdateInvoiceInput{ID: id, Amt: req.Amt})
	if err != nil {
		h.logger.Error("update invoice", slog.Any("error", err), slog.Int64("id", id))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"invoice": updated})
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		httpx.Error(w, http.StatusNotFound, "there is no invoice with id "+chi.URLParam(r, "id"))
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.logger.Error("delete invoice", slog.Any("error", err), slog.Int64("id", id))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"status": "deleted"})
}

func parseID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}
