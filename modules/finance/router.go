package finance

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/SuriyaVG/GSR-Operations-sub004/internal/api"
)

// Router exposes invoices and credit notes as a JSON surface.
func Router(svc *Service, log *slog.Logger) chi.Router {
	r := chi.NewRouter()

	r.Route("/invoices", func(r chi.Router) {
		r.Get("/", func(w http.ResponseWriter, req *http.Request) {
			f := InvoiceFilter{
				Status: InvoiceStatus(req.URL.Query().Get("status")),
			}
			if raw := req.URL.Query().Get("customer_id"); raw != "" {
				if id, err := uuid.Parse(raw); err == nil {
					f.CustomerID = id
				}
			}
			if raw := req.URL.Query().Get("due_before"); raw != "" {
				if t, err := time.Parse(time.RFC3339, raw); err == nil {
					f.DueBefore = t
				}
			}
			if limit, err := strconv.Atoi(req.URL.Query().Get("limit")); err == nil {
				f.Limit = limit
			}

			list, err := svc.ListInvoices(req.Context(), f)
			if err != nil {
				api.Error(w, req, log, err, ErrNotFound)
				return
			}
			api.JSON(w, http.StatusOK, list)
		})

		r.Get("/{id}", func(w http.ResponseWriter, req *http.Request) {
			id, err := uuid.Parse(chi.URLParam(req, "id"))
			if err != nil {
				api.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
				return
			}

			inv, err := svc.GetInvoice(req.Context(), id)
			if err != nil {
				api.Error(w, req, log, err, ErrNotFound)
				return
			}
			api.JSON(w, http.StatusOK, inv)
		})

		r.Post("/", func(w http.ResponseWriter, req *http.Request) {
			var in InvoiceInput
			if !api.Decode(w, req, &in) {
				return
			}

			inv, err := svc.CreateInvoice(req.Context(), in)
			if err != nil {
				api.Error(w, req, log, err, ErrNotFound)
				return
			}
			api.JSON(w, http.StatusCreated, inv)
		})

		r.Post("/{id}/pay", func(w http.ResponseWriter, req *http.Request) {
			id, err := uuid.Parse(chi.URLParam(req, "id"))
			if err != nil {
				api.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
				return
			}

			inv, err := svc.MarkPaid(req.Context(), id)
			if err != nil {
				api.Error(w, req, log, err, ErrNotFound)
				return
			}
			api.JSON(w, http.StatusOK, inv)
		})
	})

	r.Route("/credit-notes", func(r chi.Router) {
		r.Get("/", func(w http.ResponseWriter, req *http.Request) {
			var invoiceID uuid.UUID
			if raw := req.URL.Query().Get("invoice_id"); raw != "" {
				if id, err := uuid.Parse(raw); err == nil {
					invoiceID = id
				}
			}

			list, err := svc.ListCreditNotes(req.Context(), invoiceID)
			if err != nil {
				api.Error(w, req, log, err, ErrNotFound)
				return
			}
			api.JSON(w, http.StatusOK, list)
		})

		r.Post("/", func(w http.ResponseWriter, req *http.Request) {
			var in CreditNoteInput
			if !api.Decode(w, req, &in) {
				return
			}

			cn, err := svc.CreateCreditNote(req.Context(), in)
			if err != nil {
				if errors.Is(err, ErrExceedsInvoice) {
					api.JSON(w, http.StatusConflict, map[string]string{"error": err.Error()})
					return
				}
				api.Error(w, req, log, err, ErrNotFound)
				return
			}
			api.JSON(w, http.StatusCreated, cn)
		})
	})

	return r
}
