package sheets

import "fmt"

// Column identifies a position in the fixed worksheet layout. The read path
// keys records by Column names and the write path addresses cells by Column
// index, so this enum is the only place the layout exists.
type Column int

const (
	ColDateApplied Column = iota
	ColCompany
	ColPosition
	ColStatus
	ColInterviewDate
	ColOffer
	ColNotes
	ColSalary
	ColSkills
	ColBenefits
	ColLocationType
	ColSummary
	ColDeadline

	numColumns
)

var columnNames = [numColumns]string{
	ColDateApplied:   "Date Applied",
	ColCompany:       "Company Name",
	ColPosition:      "Position",
	ColStatus:        "App Status",
	ColInterviewDate: "Interview Date",
	ColOffer:         "Offer",
	ColNotes:         "Notes",
	ColSalary:        "Salary",
	ColSkills:        "Skills",
	ColBenefits:      "Benefits",
	ColLocationType:  "Location Type",
	ColSummary:       "Summary",
	ColDeadline:      "Deadline",
}

// Name returns the header name for the column.
func (c Column) Name() string {
	return columnNames[c]
}

// NumColumns returns the width of the fixed layout.
func NumColumns() int {
	return int(numColumns)
}

// columnLetter converts a zero-based column index to its A1 letter.
// The layout is well under 26 columns wide.
func columnLetter(c Column) string {
	return string(rune('A' + int(c)))
}

// dataRange returns the A1 range covering every schema column of a worksheet.
func dataRange(worksheet string) string {
	return fmt.Sprintf("%s!A:%s", worksheet, columnLetter(numColumns-1))
}

// cellRange returns the A1 range for a single cell. rowNum is the 1-based
// sheet row number, header included.
func cellRange(worksheet string, rowNum int, col Column) string {
	return fmt.Sprintf("%s!%s%d", worksheet, columnLetter(col), rowNum)
}
