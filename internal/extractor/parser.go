package extractor

import (
	"log/slog"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/ksolomon/jobtrack/pkg/models"
)

// Labels the extraction prompt asks the model to emit.
const (
	labelCompany      = "Company Name"
	labelTitle        = "Job Title"
	labelLocationType = "Job Location Type"
	labelSummary      = "Position Summary"
	labelSkills       = "Skills/Technology Stack"
	labelBenefits     = "Benefits Summary"
	labelDeadline     = "Application Deadline"
	labelSalary       = "Salary"
)

var titleCaser = cases.Title(language.English)

// ParseFields splits the raw model answer into a label→value map. Each
// non-empty line is split on its first colon with both sides trimmed; a line
// carrying the same label twice wins with its last occurrence. Lines without
// a colon map their full text to an empty value, which nothing looks up.
func ParseFields(raw string) map[string]string {
	fields := make(map[string]string)
	for _, line := range strings.Split(raw, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		label, value, _ := strings.Cut(line, ":")
		fields[strings.TrimSpace(label)] = strings.TrimSpace(value)
	}
	return fields
}

// DetailsFromFields maps the eight known labels into a typed record.
// Unrecognized labels are dropped explicitly; missing labels stay empty.
func DetailsFromFields(fields map[string]string) models.Details {
	d := models.Details{
		Company:      fields[labelCompany],
		Title:        fields[labelTitle],
		LocationType: normalizeLocationType(fields[labelLocationType]),
		Summary:      fields[labelSummary],
		Skills:       fields[labelSkills],
		Benefits:     fields[labelBenefits],
		Deadline:     fields[labelDeadline],
		Salary:       fields[labelSalary],
	}

	known := map[string]bool{
		labelCompany: true, labelTitle: true, labelLocationType: true,
		labelSummary: true, labelSkills: true, labelBenefits: true,
		labelDeadline: true, labelSalary: true,
	}
	for label := range fields {
		if !known[label] {
			slog.Debug("dropping unrecognized extraction label", "label", label)
		}
	}

	return d
}

// normalizeLocationType maps the model's location answer onto the canonical
// Remote/Hybrid/Onsite spelling when it matches one, and passes anything
// else through untouched.
func normalizeLocationType(s string) string {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "remote", "hybrid", "onsite":
		return titleCaser.String(strings.ToLower(strings.TrimSpace(s)))
	}
	return strings.TrimSpace(s)
}
