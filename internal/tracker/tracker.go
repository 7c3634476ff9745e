package tracker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ksolomon/jobtrack/internal/sheets"
	"github.com/ksolomon/jobtrack/pkg/models"
)

// ErrValidation marks bad input. The store is never touched when it fires.
var ErrValidation = errors.New("validation failed")

const dateLayout = "2006-01-02"

// Tracker runs the CRUD verbs against an injected row store. Each call
// performs at most one store mutation.
type Tracker struct {
	store sheets.RowStore
}

func New(store sheets.RowStore) *Tracker {
	return &Tracker{store: store}
}

// AddEntry appends a manually entered application row.
func (t *Tracker) AddEntry(ctx context.Context, e models.Entry) error {
	if strings.TrimSpace(e.Company) == "" || strings.TrimSpace(e.Position) == "" {
		return fmt.Errorf("%w: company name and position title cannot be empty", ErrValidation)
	}

	row := make([]string, sheets.NumColumns())
	row[sheets.ColDateApplied] = e.DateApplied
	row[sheets.ColCompany] = e.Company
	row[sheets.ColPosition] = e.Position
	row[sheets.ColStatus] = e.Status
	row[sheets.ColNotes] = e.Notes

	if err := t.store.AppendRow(ctx, row); err != nil {
		return err
	}
	slog.Info("added application", "company", e.Company, "position", e.Position)
	return nil
}

// AddParsed appends a row built from an extraction result. The application
// date is set to today and the status to Applied.
func (t *Tracker) AddParsed(ctx context.Context, d models.Details) error {
	if strings.TrimSpace(d.Company) == "" || strings.TrimSpace(d.Title) == "" {
		return fmt.Errorf("%w: company name and job title are required", ErrValidation)
	}

	row := make([]string, sheets.NumColumns())
	row[sheets.ColDateApplied] = time.Now().Format(dateLayout)
	row[sheets.ColCompany] = d.Company
	row[sheets.ColPosition] = d.Title
	row[sheets.ColStatus] = "Applied"
	row[sheets.ColSalary] = d.Salary
	row[sheets.ColSkills] = d.Skills
	row[sheets.ColBenefits] = d.Benefits
	row[sheets.ColLocationType] = d.LocationType
	row[sheets.ColSummary] = d.Summary
	row[sheets.ColDeadline] = d.Deadline

	if err := t.store.AppendRow(ctx, row); err != nil {
		return err
	}
	slog.Info("added parsed application", "company", d.Company, "position", d.Title)
	return nil
}

// UpdateStatus overwrites the status cell of the first matching company.
func (t *Tracker) UpdateStatus(ctx context.Context, company, status string) error {
	if strings.TrimSpace(company) == "" || strings.TrimSpace(status) == "" {
		return fmt.Errorf("%w: company name and status cannot be empty", ErrValidation)
	}
	return t.updateCell(ctx, company, sheets.ColStatus, status, "status")
}

// UpdateInterviewDate overwrites the interview date cell. The date must be
// a real calendar date in YYYY-MM-DD form.
func (t *Tracker) UpdateInterviewDate(ctx context.Context, company, date string) error {
	if strings.TrimSpace(company) == "" {
		return fmt.Errorf("%w: company name cannot be empty", ErrValidation)
	}
	if _, err := time.Parse(dateLayout, date); err != nil {
		return fmt.Errorf("%w: invalid date format, use YYYY-MM-DD", ErrValidation)
	}
	return t.updateCell(ctx, company, sheets.ColInterviewDate, date, "interview date")
}

// UpdateOffer overwrites the offer cell.
func (t *Tracker) UpdateOffer(ctx context.Context, company, offer string) error {
	if strings.TrimSpace(company) == "" || strings.TrimSpace(offer) == "" {
		return fmt.Errorf("%w: company name and offer details cannot be empty", ErrValidation)
	}
	return t.updateCell(ctx, company, sheets.ColOffer, offer, "offer details")
}

// UpdateNotes overwrites the notes cell.
func (t *Tracker) UpdateNotes(ctx context.Context, company, notes string) error {
	if strings.TrimSpace(company) == "" || strings.TrimSpace(notes) == "" {
		return fmt.Errorf("%w: company name and notes cannot be empty", ErrValidation)
	}
	return t.updateCell(ctx, company, sheets.ColNotes, notes, "notes")
}

// Delete removes the first matching company's row.
func (t *Tracker) Delete(ctx context.Context, company string) error {
	if strings.TrimSpace(company) == "" {
		return fmt.Errorf("%w: company name cannot be empty", ErrValidation)
	}

	rowNum, err := t.findRow(ctx, company)
	if err != nil {
		return err
	}
	if rowNum == 0 {
		slog.Warn("company not found", "company", company)
		return nil
	}

	if err := t.store.DeleteRow(ctx, rowNum); err != nil {
		return err
	}
	slog.Info("deleted application", "company", company)
	return nil
}

// Records returns all current rows in sheet order.
func (t *Tracker) Records(ctx context.Context) ([]sheets.Row, error) {
	return t.store.Rows(ctx)
}

func (t *Tracker) updateCell(ctx context.Context, company string, col sheets.Column, value, what string) error {
	rowNum, err := t.findRow(ctx, company)
	if err != nil {
		return err
	}
	if rowNum == 0 {
		slog.Warn("company not found", "company", company)
		return nil
	}

	if err := t.store.UpdateCell(ctx, rowNum, col, value); err != nil {
		return err
	}
	slog.Info("updated "+what, "company", company, "value", value)
	return nil
}

// findRow scans all records for the first case-insensitive, trim-insensitive
// company match. Returns 0 when no row matches. O(n), fine at personal scale.
func (t *Tracker) findRow(ctx context.Context, company string) (int, error) {
	rows, err := t.store.Rows(ctx)
	if err != nil {
		return 0, err
	}
	want := strings.TrimSpace(company)
	for _, row := range rows {
		if strings.EqualFold(strings.TrimSpace(row.Fields[sheets.ColCompany.Name()]), want) {
			return row.Num, nil
		}
	}
	return 0, nil
}
