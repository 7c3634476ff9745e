package tracker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ksolomon/jobtrack/internal/sheets"
	"github.com/ksolomon/jobtrack/pkg/models"
)

// fakeStore is an in-memory RowStore. Rows are stored as raw value slices
// the same way the worksheet holds them; row 1 is the implicit header.
type fakeStore struct {
	rows      [][]string
	mutations int
}

func (f *fakeStore) AppendRow(ctx context.Context, values []string) error {
	f.mutations++
	f.rows = append(f.rows, values)
	return nil
}

func (f *fakeStore) Rows(ctx context.Context) ([]sheets.Row, error) {
	var out []sheets.Row
	for i, vals := range f.rows {
		fields := make(map[string]string, sheets.NumColumns())
		for col := 0; col < sheets.NumColumns(); col++ {
			s := ""
			if col < len(vals) {
				s = vals[col]
			}
			fields[sheets.Column(col).Name()] = s
		}
		out = append(out, sheets.Row{Num: i + 2, Fields: fields})
	}
	return out, nil
}

func (f *fakeStore) UpdateCell(ctx context.Context, rowNum int, col sheets.Column, value string) error {
	f.mutations++
	f.rows[rowNum-2][col] = value
	return nil
}

func (f *fakeStore) DeleteRow(ctx context.Context, rowNum int) error {
	f.mutations++
	i := rowNum - 2
	f.rows = append(f.rows[:i], f.rows[i+1:]...)
	return nil
}

func newTestTracker() (*Tracker, *fakeStore) {
	store := &fakeStore{}
	return New(store), store
}

func addCompany(t *testing.T, tr *Tracker, company, position string) {
	t.Helper()
	err := tr.AddEntry(context.Background(), models.Entry{
		DateApplied: "2024-03-01",
		Company:     company,
		Position:    position,
		Status:      "Applied",
	})
	if err != nil {
		t.Fatalf("add entry failed: %v", err)
	}
}

func TestAddEntry(t *testing.T) {
	tr, store := newTestTracker()
	addCompany(t, tr, "Acme Corp", "Engineer")

	rows, _ := store.Rows(context.Background())
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	row := rows[0]
	if row.Fields["Company Name"] != "Acme Corp" || row.Fields["Position"] != "Engineer" {
		t.Errorf("unexpected row: %v", row.Fields)
	}
	if row.Fields["App Status"] != "Applied" {
		t.Errorf("status = %q, expected Applied", row.Fields["App Status"])
	}
}

func TestAddEntryValidation(t *testing.T) {
	tests := []struct {
		name  string
		entry models.Entry
	}{
		{"empty company", models.Entry{Position: "Engineer"}},
		{"empty position", models.Entry{Company: "Acme"}},
		{"whitespace company", models.Entry{Company: "   ", Position: "Engineer"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr, store := newTestTracker()
			err := tr.AddEntry(context.Background(), tt.entry)
			if !errors.Is(err, ErrValidation) {
				t.Errorf("expected ErrValidation, got %v", err)
			}
			if store.mutations != 0 {
				t.Error("store mutated on validation failure")
			}
		})
	}
}

func TestAddParsed(t *testing.T) {
	tr, store := newTestTracker()
	err := tr.AddParsed(context.Background(), models.Details{
		Company:      "Acme Corp",
		Title:        "Backend Engineer",
		LocationType: "Remote",
		Summary:      "Build services.",
		Skills:       "Go",
		Benefits:     "401K",
		Deadline:     "2024-06-01",
		Salary:       "$150,000",
	})
	if err != nil {
		t.Fatalf("add parsed failed: %v", err)
	}

	rows, _ := store.Rows(context.Background())
	row := rows[0]
	if row.Fields["App Status"] != "Applied" {
		t.Errorf("status = %q", row.Fields["App Status"])
	}
	if row.Fields["Location Type"] != "Remote" || row.Fields["Salary"] != "$150,000" {
		t.Errorf("unexpected extracted columns: %v", row.Fields)
	}
	if _, err := time.Parse("2006-01-02", row.Fields["Date Applied"]); err != nil {
		t.Errorf("date applied %q not set to a valid date", row.Fields["Date Applied"])
	}
}

func TestAddParsedValidation(t *testing.T) {
	tr, store := newTestTracker()
	err := tr.AddParsed(context.Background(), models.Details{Salary: "$100"})
	if !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation when company and title are empty, got %v", err)
	}
	if store.mutations != 0 {
		t.Error("store mutated on validation failure")
	}
}

func TestUpdateStatus(t *testing.T) {
	tr, store := newTestTracker()
	addCompany(t, tr, "Acme Corp", "Engineer")

	if err := tr.UpdateStatus(context.Background(), "Acme Corp", "Interview"); err != nil {
		t.Fatalf("update status failed: %v", err)
	}

	rows, _ := store.Rows(context.Background())
	if rows[0].Fields["App Status"] != "Interview" {
		t.Errorf("status = %q", rows[0].Fields["App Status"])
	}
}

func TestLookupCaseAndWhitespaceInsensitive(t *testing.T) {
	tr, store := newTestTracker()
	addCompany(t, tr, "Acme Corp", "Engineer")

	if err := tr.UpdateStatus(context.Background(), "  acme corp  ", "Offer"); err != nil {
		t.Fatalf("update status failed: %v", err)
	}

	rows, _ := store.Rows(context.Background())
	if rows[0].Fields["App Status"] != "Offer" {
		t.Errorf("status = %q, lookup should ignore case and whitespace", rows[0].Fields["App Status"])
	}
}

func TestFirstMatchWins(t *testing.T) {
	tr, store := newTestTracker()
	addCompany(t, tr, "Acme Corp", "Engineer")
	addCompany(t, tr, "acme corp", "Designer")

	if err := tr.UpdateStatus(context.Background(), "Acme Corp", "Denied"); err != nil {
		t.Fatalf("update status failed: %v", err)
	}

	rows, _ := store.Rows(context.Background())
	if rows[0].Fields["App Status"] != "Denied" {
		t.Error("first matching row should be updated")
	}
	if rows[1].Fields["App Status"] != "Applied" {
		t.Error("second matching row should be untouched")
	}
}

func TestUpdateNotFoundIsNoOp(t *testing.T) {
	tr, store := newTestTracker()
	addCompany(t, tr, "Acme Corp", "Engineer")
	before := store.mutations

	for name, op := range map[string]func() error{
		"status": func() error { return tr.UpdateStatus(context.Background(), "Globex", "Offer") },
		"date":   func() error { return tr.UpdateInterviewDate(context.Background(), "Globex", "2024-03-15") },
		"offer":  func() error { return tr.UpdateOffer(context.Background(), "Globex", "details") },
		"notes":  func() error { return tr.UpdateNotes(context.Background(), "Globex", "note") },
		"delete": func() error { return tr.Delete(context.Background(), "Globex") },
	} {
		if err := op(); err != nil {
			t.Errorf("%s: not-found should be a no-op, got error %v", name, err)
		}
	}

	if store.mutations != before {
		t.Errorf("store mutated %d times on not-found operations", store.mutations-before)
	}
	rows, _ := store.Rows(context.Background())
	if len(rows) != 1 || rows[0].Fields["App Status"] != "Applied" {
		t.Error("existing rows changed by not-found operations")
	}
}

func TestUpdateInterviewDate(t *testing.T) {
	tr, store := newTestTracker()
	addCompany(t, tr, "Acme Corp", "Engineer")

	if err := tr.UpdateInterviewDate(context.Background(), "Acme Corp", "2024-03-15"); err != nil {
		t.Fatalf("valid date rejected: %v", err)
	}
	rows, _ := store.Rows(context.Background())
	if rows[0].Fields["Interview Date"] != "2024-03-15" {
		t.Errorf("interview date = %q", rows[0].Fields["Interview Date"])
	}
}

func TestUpdateInterviewDateValidation(t *testing.T) {
	tr, store := newTestTracker()
	addCompany(t, tr, "Acme Corp", "Engineer")
	before := store.mutations

	for _, date := range []string{"2024-13-40", "03/15/2024", "tomorrow", ""} {
		err := tr.UpdateInterviewDate(context.Background(), "Acme Corp", date)
		if !errors.Is(err, ErrValidation) {
			t.Errorf("date %q: expected ErrValidation, got %v", date, err)
		}
	}
	if store.mutations != before {
		t.Error("store mutated on invalid date")
	}
}

func TestDelete(t *testing.T) {
	tr, store := newTestTracker()
	addCompany(t, tr, "Acme Corp", "Engineer")
	addCompany(t, tr, "Globex", "Designer")

	if err := tr.Delete(context.Background(), "acme corp"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	rows, _ := store.Rows(context.Background())
	if len(rows) != 1 {
		t.Fatalf("expected 1 row after delete, got %d", len(rows))
	}
	if rows[0].Fields["Company Name"] != "Globex" {
		t.Errorf("wrong row deleted: %v", rows[0].Fields)
	}
}

func TestDeleteBlankCompany(t *testing.T) {
	tr, _ := newTestTracker()
	if err := tr.Delete(context.Background(), "   "); !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation for blank company, got %v", err)
	}
}
