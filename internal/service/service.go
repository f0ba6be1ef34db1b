// Package service orchestrates the billing pipeline: raw rows plus a
// per-request configuration go in, an invoice document or a summary
// report comes out. Nothing is retained between calls; concurrent
// invocations never share state.
package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/avelinec/tallysheet/internal/billing"
	"github.com/avelinec/tallysheet/internal/calendar"
	"github.com/avelinec/tallysheet/internal/domain"
	"github.com/avelinec/tallysheet/internal/projection"
	"github.com/avelinec/tallysheet/internal/timesheet"
)

type Billing interface {
	CreateInvoice(ctx context.Context, req CreateInvoiceRequest) (*domain.InvoiceDocument, error)
	Summarize(ctx context.Context, req SummaryRequest) (*domain.SummaryReport, error)
}

type billingService struct {
	now func() time.Time
}

func NewBilling() *billingService {
	return &billingService{now: time.Now}
}

// WithNow overrides the clock used when a request leaves the reference
// date unset. Tests use it to pin "today".
func (s *billingService) WithNow(now func() time.Time) *billingService {
	s.now = now
	return s
}

type CreateInvoiceRequest struct {
	Rows       []timesheet.RawRow
	HourlyRate float64
	Currency   string

	Number         string
	IssueDate      string
	DueDate        string
	Company        string
	CompanyAddress string
	Client         string
	ClientAddress  string
	BankDetails    string
}

func (s *billingService) CreateInvoice(_ context.Context, req CreateInvoiceRequest) (*domain.InvoiceDocument, error) {
	entries, rejected, err := timesheet.Validate(req.Rows)
	if err != nil {
		return nil, err
	}

	result := billing.Aggregate(entries, req.HourlyRate)

	number := req.Number
	if number == "" {
		number = uuid.NewString()
	}

	return &domain.InvoiceDocument{
		Number:         number,
		IssueDate:      req.IssueDate,
		DueDate:        req.DueDate,
		Company:        req.Company,
		CompanyAddress: req.CompanyAddress,
		Client:         req.Client,
		ClientAddress:  req.ClientAddress,
		BankDetails:    req.BankDetails,
		Currency:       req.Currency,
		HourlyRate:     req.HourlyRate,
		Lines:          billing.LineItems(entries, req.HourlyRate),
		Groups:         result.Groups,
		TotalHours:     result.TotalHours,
		TotalAmount:    result.TotalAmount,
		RejectedRows:   rejected,
	}, nil
}

type SummaryRequest struct {
	Rows   []timesheet.RawRow
	Config domain.Config
}

func (s *billingService) Summarize(_ context.Context, req SummaryRequest) (*domain.SummaryReport, error) {
	entries, rejected, err := timesheet.Validate(req.Rows)
	if err != nil {
		return nil, err
	}

	reference := req.Config.ReferenceDate
	if reference.IsZero() {
		reference = s.now()
	}

	result := billing.Aggregate(entries, req.Config.HourlyRate)

	report := projection.Project(projection.Inputs{
		TotalHours:        result.TotalHours,
		HourlyRate:        req.Config.HourlyRate,
		GoalAmount:        req.Config.GoalAmount,
		DaysWorked:        billing.DaysWorked(entries),
		RemainingWorkdays: calendar.RemainingWorkdays(reference, req.Config.Workdays),
	})
	report.Currency = req.Config.BaseCurrency
	report.RejectedRows = rejected

	return &report, nil
}
