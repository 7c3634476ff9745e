package cmd

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/ksolomon/jobtrack/internal/app"
	"github.com/ksolomon/jobtrack/internal/extractor"
	"github.com/ksolomon/jobtrack/internal/tracker"
	"github.com/ksolomon/jobtrack/pkg/models"
	"github.com/spf13/cobra"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12")).
			MarginTop(1).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10")).
			Bold(true)

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("14"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))
)

const actionPrompt = "Do you want to (add), (update_status), (update_date), (update_offer), (update_notes), (delete), (add_from_url), (add_from_text), or (list)? Type 'exit' to quit: "

// runShell is the interactive read-evaluate loop. One failed action never
// ends the session; only exit, EOF, or an interrupt does.
func runShell(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	application := app.GetAppFromContext(ctx)
	if application == nil {
		return fmt.Errorf("application not initialized")
	}
	defer application.Close()

	go func() {
		<-ctx.Done()
		slog.Info("interrupted, shutting down")
		fmt.Println()
		fmt.Println(warnStyle.Render("Goodbye!"))
		application.Close()
		os.Exit(0)
	}()

	slog.Info("job tracker started")
	fmt.Println(titleStyle.Render("Welcome to the Job Tracker!"))

	reader := bufio.NewReader(os.Stdin)
	for {
		action, err := promptLine(reader, actionPrompt)
		if err != nil {
			break // EOF
		}

		action = strings.ToLower(action)
		if action == "exit" {
			slog.Info("exiting job tracker")
			fmt.Println(successStyle.Render("Goodbye!"))
			return nil
		}

		if err := dispatch(ctx, application, reader, action); err != nil {
			slog.Error("action failed", "action", action, "error", err)
			fmt.Println(errorStyle.Render("That didn't work, see the log for details."))
		}
	}

	slog.Info("exiting job tracker")
	fmt.Println(successStyle.Render("Goodbye!"))
	return nil
}

func dispatch(ctx context.Context, application *app.App, reader *bufio.Reader, action string) error {
	switch action {
	case "add":
		return addEntry(ctx, application, reader)
	case "update_status":
		return updateField(ctx, reader, "Enter the new status (e.g., Interview, Denied, Offer): ", application.Tracker.UpdateStatus)
	case "update_date":
		return updateField(ctx, reader, "Enter the interview date (YYYY-MM-DD): ", application.Tracker.UpdateInterviewDate)
	case "update_offer":
		return updateField(ctx, reader, "Enter the offer details: ", application.Tracker.UpdateOffer)
	case "update_notes":
		return updateField(ctx, reader, "Enter the new notes: ", application.Tracker.UpdateNotes)
	case "delete":
		return deleteEntry(ctx, application, reader)
	case "add_from_url":
		return addFromURL(ctx, application, reader)
	case "add_from_text":
		return addFromText(ctx, application, reader)
	case "list":
		return listEntries(ctx, application)
	default:
		slog.Warn("invalid option selected", "action", action)
		fmt.Println(warnStyle.Render("Invalid option. Please choose 'add', 'update_status', 'update_date', 'update_offer', 'update_notes', 'delete', 'add_from_url', 'add_from_text', or 'list'."))
		return nil
	}
}

func addEntry(ctx context.Context, application *app.App, reader *bufio.Reader) error {
	company, err := promptLine(reader, "Enter the company name: ")
	if err != nil {
		return err
	}
	position, err := promptLine(reader, "Enter the position title: ")
	if err != nil {
		return err
	}
	notes, err := promptLine(reader, "Any additional notes? (Press Enter to skip): ")
	if err != nil {
		return err
	}

	entry := models.Entry{
		DateApplied: time.Now().Format("2006-01-02"),
		Company:     company,
		Position:    position,
		Status:      "Applied",
		Notes:       notes,
	}

	if err := tracker.Retry(func() error { return application.Tracker.AddEntry(ctx, entry) }); err != nil {
		return err
	}
	fmt.Println(successStyle.Render(fmt.Sprintf("Added application for %s at %s.", position, company)))
	return nil
}

// updateField runs the shared company-then-value prompt flow for the
// single-cell update operations.
func updateField(ctx context.Context, reader *bufio.Reader, valuePrompt string, op func(context.Context, string, string) error) error {
	company, err := promptLine(reader, "Enter the company name: ")
	if err != nil {
		return err
	}
	value, err := promptLine(reader, valuePrompt)
	if err != nil {
		return err
	}
	return tracker.Retry(func() error { return op(ctx, company, value) })
}

func deleteEntry(ctx context.Context, application *app.App, reader *bufio.Reader) error {
	company, err := promptLine(reader, "Enter the company name: ")
	if err != nil {
		return err
	}
	return tracker.Retry(func() error { return application.Tracker.Delete(ctx, company) })
}

func addFromURL(ctx context.Context, application *app.App, reader *bufio.Reader) error {
	url, err := promptLine(reader, "Enter the URL of the job description: ")
	if err != nil {
		return err
	}
	if url == "" {
		slog.Error("invalid input: URL cannot be empty")
		fmt.Println(errorStyle.Render("URL cannot be empty."))
		return nil
	}

	page, err := application.Fetcher.Fetch(ctx, url)
	if err != nil {
		return err
	}
	return extractAndAdd(ctx, application, page.VisibleText)
}

func addFromText(ctx context.Context, application *app.App, reader *bufio.Reader) error {
	fmt.Println(promptStyle.Render("Paste the entire job description below. Type 'DONE' on a new line to finish:"))

	var lines []string
	for {
		line, err := reader.ReadString('\n')
		if err != nil {
			break
		}
		if strings.ToUpper(strings.TrimSpace(line)) == "DONE" {
			break
		}
		lines = append(lines, strings.TrimRight(line, "\r\n"))
	}

	text := strings.TrimSpace(strings.Join(lines, "\n"))
	if text == "" {
		slog.Error("invalid input: job description cannot be empty")
		fmt.Println(errorStyle.Render("Job description cannot be empty."))
		return nil
	}

	return extractAndAdd(ctx, application, text)
}

// extractAndAdd is the shared tail of the automated path: completion call,
// parse, append.
func extractAndAdd(ctx context.Context, application *app.App, text string) error {
	raw, err := application.Extractor.Extract(ctx, text)
	if err != nil {
		return err
	}
	slog.Info("successfully parsed job description")

	details := extractor.DetailsFromFields(extractor.ParseFields(raw))

	if err := tracker.Retry(func() error { return application.Tracker.AddParsed(ctx, details) }); err != nil {
		return err
	}
	fmt.Println(successStyle.Render(fmt.Sprintf("Added parsed job details for %s.", details.Company)))
	return nil
}

func listEntries(ctx context.Context, application *app.App) error {
	rows, err := application.Tracker.Records(ctx)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		fmt.Println("No applications yet. Use 'add' or 'add_from_url' to create one.")
		return nil
	}

	fmt.Println(titleStyle.Render("Tracked Applications"))
	for i, row := range rows {
		f := row.Fields
		fmt.Printf("\n%s %s — %s\n", labelStyle.Render(fmt.Sprintf("%d.", i+1)), f["Company Name"], f["Position"])
		fmt.Printf("   %s %s\n", labelStyle.Render("Applied:"), f["Date Applied"])
		fmt.Printf("   %s %s\n", labelStyle.Render("Status:"), f["App Status"])
		if f["Interview Date"] != "" {
			fmt.Printf("   %s %s\n", labelStyle.Render("Interview:"), f["Interview Date"])
		}
		if f["Offer"] != "" {
			fmt.Printf("   %s %s\n", labelStyle.Render("Offer:"), f["Offer"])
		}
		if f["Notes"] != "" {
			fmt.Printf("   %s %s\n", labelStyle.Render("Notes:"), f["Notes"])
		}
		if f["Location Type"] != "" {
			fmt.Printf("   %s %s\n", labelStyle.Render("Location:"), f["Location Type"])
		}
		if f["Salary"] != "" {
			fmt.Printf("   %s %s\n", labelStyle.Render("Salary:"), f["Salary"])
		}
	}
	return nil
}

func promptLine(reader *bufio.Reader, prompt string) (string, error) {
	fmt.Print(promptStyle.Render(prompt))
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
