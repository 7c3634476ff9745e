package sheets

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	gsheets "google.golang.org/api/sheets/v4"
)

// Row is one data row of the worksheet, keyed by schema column names.
// Num is the 1-based sheet row number (the header is row 1, data starts at 2).
type Row struct {
	Num    int
	Fields map[string]string
}

// RowStore is the tracker's view of the remote worksheet.
type RowStore interface {
	AppendRow(ctx context.Context, values []string) error
	Rows(ctx context.Context) ([]Row, error)
	UpdateCell(ctx context.Context, rowNum int, col Column, value string) error
	DeleteRow(ctx context.Context, rowNum int) error
}

// Client talks to a single Google Sheets worksheet.
type Client struct {
	svc           *gsheets.Service
	spreadsheetID string
	worksheet     string
	sheetID       int64
}

// NewClient authorizes with the service account credentials file and resolves
// the worksheet's numeric sheet ID. Any failure here is a startup failure.
func NewClient(ctx context.Context, credentialsFile, spreadsheetID, worksheet string) (*Client, error) {
	data, err := os.ReadFile(credentialsFile)
	if err != nil {
		return nil, fmt.Errorf("read credentials file: %w", err)
	}

	conf, err := google.JWTConfigFromJSON(data, gsheets.SpreadsheetsScope)
	if err != nil {
		return nil, fmt.Errorf("parse service account credentials: %w", err)
	}

	svc, err := gsheets.NewService(ctx, option.WithHTTPClient(conf.Client(ctx)))
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}

	meta, err := svc.Spreadsheets.Get(spreadsheetID).
		Fields("sheets(properties(sheetId,title))").
		Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("open spreadsheet: %w", err)
	}

	var sheetID int64 = -1
	for _, sh := range meta.Sheets {
		if sh.Properties != nil && sh.Properties.Title == worksheet {
			sheetID = sh.Properties.SheetId
			break
		}
	}
	if sheetID < 0 {
		return nil, fmt.Errorf("worksheet %q not found in spreadsheet", worksheet)
	}

	slog.Info("connected to spreadsheet", "worksheet", worksheet)

	return &Client{
		svc:           svc,
		spreadsheetID: spreadsheetID,
		worksheet:     worksheet,
		sheetID:       sheetID,
	}, nil
}

// AppendRow appends one row after the current data region.
func (c *Client) AppendRow(ctx context.Context, values []string) error {
	row := make([]interface{}, len(values))
	for i, v := range values {
		row[i] = v
	}

	_, err := c.svc.Spreadsheets.Values.Append(c.spreadsheetID, dataRange(c.worksheet), &gsheets.ValueRange{
		Values: [][]interface{}{row},
	}).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("append row: %w", err)
	}
	return nil
}

// Rows reads all data rows. Values are keyed by schema column names
// regardless of what the sheet's header row says; cells beyond the schema
// width are ignored and short rows are padded with empty strings.
func (c *Client) Rows(ctx context.Context) ([]Row, error) {
	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, dataRange(c.worksheet)).
		Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}

	var rows []Row
	for i, vals := range resp.Values {
		if i == 0 {
			continue // header row
		}
		fields := make(map[string]string, numColumns)
		for col := Column(0); col < numColumns; col++ {
			s := ""
			if int(col) < len(vals) {
				s, _ = vals[col].(string)
			}
			fields[col.Name()] = s
		}
		rows = append(rows, Row{Num: i + 1, Fields: fields})
	}
	return rows, nil
}

// UpdateCell overwrites a single cell.
func (c *Client) UpdateCell(ctx context.Context, rowNum int, col Column, value string) error {
	_, err := c.svc.Spreadsheets.Values.Update(c.spreadsheetID, cellRange(c.worksheet, rowNum, col), &gsheets.ValueRange{
		Values: [][]interface{}{{value}},
	}).
		ValueInputOption("USER_ENTERED").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("update cell %s: %w", cellRange(c.worksheet, rowNum, col), err)
	}
	return nil
}

// DeleteRow removes one row by its 1-based sheet row number.
func (c *Client) DeleteRow(ctx context.Context, rowNum int) error {
	_, err := c.svc.Spreadsheets.BatchUpdate(c.spreadsheetID, &gsheets.BatchUpdateSpreadsheetRequest{
		Requests: []*gsheets.Request{{
			DeleteDimension: &gsheets.DeleteDimensionRequest{
				Range: &gsheets.DimensionRange{
					SheetId:    c.sheetID,
					Dimension:  "ROWS",
					StartIndex: int64(rowNum - 1),
					EndIndex:   int64(rowNum),
				},
			},
		}},
	}).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("delete row %d: %w", rowNum, err)
	}
	return nil
}
