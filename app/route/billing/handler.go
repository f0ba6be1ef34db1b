// Package billing is the HTTP intake for the billing pipeline:
// multipart CSV uploads in, JSON invoice documents and summary reports
// out. Rendering those documents into HTML or PDF happens elsewhere.
package billing

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/avelinec/tallysheet/internal/domain"
	"github.com/avelinec/tallysheet/internal/service"
	"github.com/avelinec/tallysheet/internal/timesheet"
	"github.com/avelinec/tallysheet/pkg/csvtab"
)

const maxUploadBytes = 10 << 20

type HandlerGroup struct {
	svc  service.Billing
	slog *slog.Logger
}

func NewHandlerGroup(svc service.Billing, slog *slog.Logger) *HandlerGroup {
	return &HandlerGroup{svc: svc, slog: slog}
}

func (hg *HandlerGroup) Mount(r chi.Router) {
	r.Post("/invoice", hg.handleCreateInvoice)
	r.Post("/summary", hg.handleSummarize)
}

func (hg *HandlerGroup) handleCreateInvoice(w http.ResponseWriter, r *http.Request) {
	rows, ok := hg.readRows(w, r)
	if !ok {
		return
	}

	form := r.MultipartForm.Value
	req := service.CreateInvoiceRequest{
		Rows:           rows,
		HourlyRate:     domain.ParseAmount(formValue(form, "hourlyRate")),
		Currency:       formValue(form, "currency"),
		Number:         formValue(form, "invoiceNumber"),
		IssueDate:      formValue(form, "invoiceDate"),
		DueDate:        formValue(form, "dueDate"),
		Company:        formValue(form, "companyName"),
		CompanyAddress: formValue(form, "companyAddress"),
		Client:         formValue(form, "clientName"),
		ClientAddress:  formValue(form, "clientAddress"),
		BankDetails:    formValue(form, "bankDetails"),
	}

	doc, err := hg.svc.CreateInvoice(r.Context(), req)
	if err != nil {
		hg.writeError(w, r, err)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, doc.Rounded())
}

func (hg *HandlerGroup) handleSummarize(w http.ResponseWriter, r *http.Request) {
	rows, ok := hg.readRows(w, r)
	if !ok {
		return
	}

	form := r.MultipartForm.Value

	var reference time.Time
	if raw := formValue(form, "referenceDate"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			hg.writeErrorMessage(w, r, http.StatusBadRequest,
				"The reference date must use the YYYY-MM-DD format.")
			return
		}
		reference = parsed
	}

	req := service.SummaryRequest{
		Rows: rows,
		Config: domain.Config{
			HourlyRate:    domain.ParseAmount(formValue(form, "hourlyRate")),
			GoalAmount:    domain.ParseAmount(formValue(form, "goalAmount")),
			BaseCurrency:  formValue(form, "currency"),
			Workdays:      domain.ParseWorkdays(form["workdays"]),
			ReferenceDate: reference,
		},
	}

	report, err := hg.svc.Summarize(r.Context(), req)
	if err != nil {
		hg.writeError(w, r, err)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, report.Rounded())
}

// readRows pulls the csvFile part out of the multipart form and parses
// it into raw rows. On failure it writes the error response itself and
// reports ok=false.
func (hg *HandlerGroup) readRows(w http.ResponseWriter, r *http.Request) ([]timesheet.RawRow, bool) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		hg.writeErrorMessage(w, r, http.StatusBadRequest, "The request is not a valid multipart form.")
		return nil, false
	}

	file, _, err := r.FormFile("csvFile")
	if err != nil {
		hg.writeErrorMessage(w, r, http.StatusBadRequest, "No file uploaded.")
		return nil, false
	}
	defer file.Close()

	// Anything csvtab rejects is a malformed upload, so it maps to a
	// client error regardless of the concrete parse failure.
	parsed, err := csvtab.Read(file)
	if err != nil {
		hg.writeErrorMessage(w, r, http.StatusBadRequest, err.Error())
		return nil, false
	}

	rows := make([]timesheet.RawRow, len(parsed))
	for i, row := range parsed {
		rows[i] = timesheet.RawRow(row)
	}
	return rows, true
}

// ErrorResponse is the JSON body for every failed request. For fatal
// dataset errors RejectedRows carries the count of rows dropped before
// the computation was abandoned.
type ErrorResponse struct {
	Status       int    `json:"status"`
	Message      string `json:"message"`
	RejectedRows int    `json:"rejectedRows"`
}

// ErrorResponse satisfies [render.Renderer]
func (e *ErrorResponse) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, e.Status)
	return nil
}

// writeError maps the closed error taxonomy onto status codes: dataset
// and input problems are the client's fault, anything else is ours.
func (hg *HandlerGroup) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrNoDurationColumn),
		errors.Is(err, domain.ErrEmptyDataset):
		status = http.StatusBadRequest
	default:
		hg.slog.Error("billing computation failed", "err", err)
	}

	resp := &ErrorResponse{Status: status, Message: err.Error()}
	var datasetErr *domain.DatasetError
	if errors.As(err, &datasetErr) {
		resp.RejectedRows = datasetErr.RejectedRows
	}
	_ = render.Render(w, r, resp)
}

func (hg *HandlerGroup) writeErrorMessage(w http.ResponseWriter, r *http.Request, status int, message string) {
	_ = render.Render(w, r, &ErrorResponse{Status: status, Message: message})
}

func formValue(form map[string][]string, key string) string {
	values := form[key]
	if len(values) == 0 {
		return ""
	}
	return values[0]
}
