package extractor

import "testing"

func TestParseFields(t *testing.T) {
	raw := "Company Name: Acme\nJob Title: Engineer\n"
	fields := ParseFields(raw)

	if fields["Company Name"] != "Acme" {
		t.Errorf("Company Name = %q, expected %q", fields["Company Name"], "Acme")
	}
	if fields["Job Title"] != "Engineer" {
		t.Errorf("Job Title = %q, expected %q", fields["Job Title"], "Engineer")
	}
}

func TestParseFieldsSplitsFirstColon(t *testing.T) {
	fields := ParseFields("Salary: $100,000: negotiable")
	if fields["Salary"] != "$100,000: negotiable" {
		t.Errorf("Salary = %q, value after first colon should be kept whole", fields["Salary"])
	}
}

func TestParseFieldsNoColon(t *testing.T) {
	fields := ParseFields("this line has no colon")
	if fields["this line has no colon"] != "" {
		t.Errorf("line without colon should map to empty value, got %q", fields["this line has no colon"])
	}
	// It must not produce anything the details mapping would pick up.
	d := DetailsFromFields(fields)
	if d != (DetailsFromFields(map[string]string{})) {
		t.Errorf("no-colon line leaked into details: %+v", d)
	}
}

func TestParseFieldsLastWriteWins(t *testing.T) {
	fields := ParseFields("Job Title: First\nJob Title: Second")
	if fields["Job Title"] != "Second" {
		t.Errorf("Job Title = %q, expected later line to win", fields["Job Title"])
	}
}

func TestParseFieldsSkipsBlankLines(t *testing.T) {
	fields := ParseFields("\n\nCompany Name: Acme\n\n")
	if len(fields) != 1 {
		t.Errorf("expected 1 field, got %d: %v", len(fields), fields)
	}
}

func TestDetailsFromFields(t *testing.T) {
	fields := map[string]string{
		"Company Name":            "Acme Corp",
		"Job Title":               "Backend Engineer",
		"Job Location Type":       "Remote",
		"Position Summary":        "Build services.",
		"Skills/Technology Stack": "Go, Postgres",
		"Benefits Summary":        "401K, health insurance",
		"Application Deadline":    "2024-06-01",
		"Salary":                  "$150,000",
		"Some Other Label":        "ignored",
	}

	d := DetailsFromFields(fields)
	if d.Company != "Acme Corp" || d.Title != "Backend Engineer" {
		t.Errorf("unexpected company/title: %+v", d)
	}
	if d.LocationType != "Remote" {
		t.Errorf("LocationType = %q", d.LocationType)
	}
	if d.Skills != "Go, Postgres" || d.Benefits != "401K, health insurance" {
		t.Errorf("unexpected skills/benefits: %+v", d)
	}
	if d.Deadline != "2024-06-01" || d.Salary != "$150,000" {
		t.Errorf("unexpected deadline/salary: %+v", d)
	}
}

func TestDetailsMissingLabelsAreEmpty(t *testing.T) {
	d := DetailsFromFields(map[string]string{"Company Name": "Acme"})
	if d.Company != "Acme" {
		t.Errorf("Company = %q", d.Company)
	}
	if d.Title != "" || d.Salary != "" || d.Summary != "" {
		t.Errorf("missing labels should be empty strings: %+v", d)
	}
}

func TestNormalizeLocationType(t *testing.T) {
	tests := []struct {
		in, out string
	}{
		{"remote", "Remote"},
		{"REMOTE", "Remote"},
		{" hybrid ", "Hybrid"},
		{"Onsite", "Onsite"},
		{"Remote (US only)", "Remote (US only)"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := normalizeLocationType(tt.in); got != tt.out {
			t.Errorf("normalizeLocationType(%q) = %q, expected %q", tt.in, got, tt.out)
		}
	}
}
