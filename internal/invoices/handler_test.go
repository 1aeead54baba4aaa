package invoices

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
)

func newInvoiceRouter(repo Repository) http.Handler {
	handler := NewHandler(slog.Default(), NewService(repo))
	r := chi.NewRouter()
	r.Route("/invoices", handler.MountRoutes)
	return r
}

func TestCreateInvoiceReturns201(t *testing.T) {
	router := newInvoiceRouter(newMemoryInvoiceRepo())

	body := `{"comp_code":"ibm","amt":400}`
	req := httptest.NewRequest(http.MethodPost, "/invoices", strings.NewReader(body))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rr.Code, rr.Body.String())
	}
	resp := rr.Body.String()
	if !strings.Contains(resp, `"comp_code":"ibm"`) || !strings.Contains(resp, `"paid":false`) || !strings.Contains(resp, `"paid_date":null`) {
		t.Fatalf("unexpected body: %s", resp)
	}
}

func TestGetNonexistentInvoiceReturns404(t *testing.T) {
	router := newInvoiceRouter(newMemoryInvoiceRepo())

	req := httptest.NewRequest(http.MethodGet, "/invoices/9999", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
}

func TestGetNonNumericInvoiceIDReturns404(t *testing.T) {
	router := newInvoiceRouter(newMemoryInvoiceRepo())

	req := httptest.NewRequest(http.MethodGet, "/invoices/abc", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
}

func TestUpdateInvoiceRejectsIDField(t *testing.T) {
	repo := newMemoryInvoiceRepo()
	router := newInvoiceRouter(repo)

	create := httptest.NewRequest(http.MethodPost, "/invoices", strings.NewReader(`{"comp_code":"ibm","amt":400}`))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, create)
	if rr.Code != http.StatusCreated {
		t.Fatalf("setup create failed: %d", rr.Code)
	}

	update := httptest.NewRequest(http.MethodPut, "/invoices/1", strings.NewReader(`{"id":1,"amt":450}`))
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, update)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 when body carries id, got %d", rr.Code)
	}
}

func TestUpdateInvoiceFlipsPaidOnWire(t *testing.T) {
	router := newInvoiceRouter(newMemoryInvoiceRepo())

	create := httptest.NewRequest(http.MethodPost, "/invoices", strings.NewReader(`{"comp_code":"ibm","amt":400}`))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, create)
	if rr.Code != http.StatusCreated {
		t.Fatalf("setup create failed: %d", rr.Code)
	}

	update := httptest.NewRequest(http.MethodPut, "/invoices/1", strings.NewReader(`{"amt":450}`))
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, update)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	resp := rr.Body.String()
	if !strings.Contains(resp, `"paid":true`) || strings.Contains(resp, `"paid_date":null`) {
		t.Fatalf("expected paid invoice with paid_date set, got %s", resp)
	}
}

func TestDeleteInvoiceConfirmationShape(t *testing.T) {
	router := newInvoiceRouter(newMemoryInvoiceRepo())

	create := httptest.NewRequest(http.MethodPost, "/invoices", strings.NewReader(`{"comp_code":"ibm","amt":400}`))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, create)
	if rr.Code != http.StatusCreated {
		t.Fatalf("setup create failed: %d", rr.Code)
	}

	del := httptest.NewRequest(http.MethodDelete, "/invoices/1", nil)
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, del)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), `"status":"deleted"`) {
		t.Fatalf("expected literal delete confirmation, got %s", rr.Body.String())
	}
}
