package sheets

import "testing"

// TestColumnLayout pins the column order; drift here silently corrupts data
// because the write path addresses cells by index.
func TestColumnLayout(t *testing.T) {
	expected := []struct {
		col  Column
		name string
	}{
		{ColDateApplied, "Date Applied"},
		{ColCompany, "Company Name"},
		{ColPosition, "Position"},
		{ColStatus, "App Status"},
		{ColInterviewDate, "Interview Date"},
		{ColOffer, "Offer"},
		{ColNotes, "Notes"},
		{ColSalary, "Salary"},
		{ColSkills, "Skills"},
		{ColBenefits, "Benefits"},
		{ColLocationType, "Location Type"},
		{ColSummary, "Summary"},
		{ColDeadline, "Deadline"},
	}

	if len(expected) != NumColumns() {
		t.Fatalf("schema has %d columns, expected %d", NumColumns(), len(expected))
	}

	for i, e := range expected {
		if int(e.col) != i {
			t.Errorf("column %q at index %d, expected %d", e.name, e.col, i)
		}
		if e.col.Name() != e.name {
			t.Errorf("column %d named %q, expected %q", i, e.col.Name(), e.name)
		}
	}
}

func TestCellRange(t *testing.T) {
	tests := []struct {
		rowNum   int
		col      Column
		expected string
	}{
		{2, ColStatus, "job_tracker_1!D2"},
		{15, ColInterviewDate, "job_tracker_1!E15"},
		{3, ColDateApplied, "job_tracker_1!A3"},
		{7, ColDeadline, "job_tracker_1!M7"},
	}

	for _, tt := range tests {
		if got := cellRange("job_tracker_1", tt.rowNum, tt.col); got != tt.expected {
			t.Errorf("cellRange(%d, %d) = %q, expected %q", tt.rowNum, tt.col, got, tt.expected)
		}
	}
}

func TestDataRange(t *testing.T) {
	if got := dataRange("job_tracker_1"); got != "job_tracker_1!A:M" {
		t.Errorf("dataRange = %q, expected %q", got, "job_tracker_1!A:M")
	}
}
