package sheets

import (
	"context"
	"fmt"
	"log"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// Client wraps the Sheets API for one spreadsheet. All writes are
// full-replace: clear the worksheet, then one RAW values update.
type Client struct {
	srv     *sheets.Service
	sheetID string
}

func NewClient(ctx context.Context, sheetID, serviceAccountFile string) (*Client, error) {
	srv, err := sheets.NewService(ctx,
		option.WithCredentialsFile(serviceAccountFile),
		option.WithScopes(sheets.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("sheets auth: %w", err)
	}
	log.Printf("[SHEET] authenticated sheet_id=%s", maskID(sheetID))
	return &Client{srv: srv, sheetID: sheetID}, nil
}

func (c *Client) URL() string {
	return "https://docs.google.com/spreadsheets/d/" + c.sheetID
}

// ReplaceTab clears the named worksheet (creating it if missing) and
// writes header plus rows in a single batch.
func (c *Client) ReplaceTab(ctx context.Context, tab string, header []string, rows [][]string) error {
	if err := c.ensureWorksheet(ctx, tab); err != nil {
		return fmt.Errorf("tab %q: %w", tab, err)
	}

	if _, err := c.srv.Spreadsheets.Values.Clear(c.sheetID, tab, &sheets.ClearValuesRequest{}).Context(ctx).Do(); err != nil {
		return fmt.Errorf("clear tab %q: %w", tab, err)
	}

	values := make([][]interface{}, 0, len(rows)+1)
	values = append(values, toCells(header))
	for _, row := range rows {
		values = append(values, toCells(row))
	}

	vr := &sheets.ValueRange{Values: values}
	_, err := c.srv.Spreadsheets.Values.
		Update(c.sheetID, fmt.Sprintf("%s!A1", tab), vr).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("write tab %q (%d rows): %w", tab, len(rows), err)
	}

	log.Printf("[SHEET] tab %q replaced rows=%d cols=%d", tab, len(rows), len(header))
	return nil
}

// ReadTab returns every row of the worksheet, header first. Short rows
// come back as-is; callers pad to their schema.
func (c *Client) ReadTab(ctx context.Context, tab string) ([][]string, error) {
	resp, err := c.srv.Spreadsheets.Values.Get(c.sheetID, tab).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("read tab %q: %w", tab, err)
	}

	rows := make([][]string, 0, len(resp.Values))
	for _, raw := range resp.Values {
		row := make([]string, len(raw))
		for i, cell := range raw {
			row[i] = fmt.Sprint(cell)
		}
		rows = append(rows, row)
	}
	log.Printf("[SHEET] tab %q read rows=%d", tab, len(rows))
	return rows, nil
}

func (c *Client) ensureWorksheet(ctx context.Context, tab string) error {
	ss, err := c.srv.Spreadsheets.Get(c.sheetID).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("get spreadsheet: %w", err)
	}
	for _, sh := range ss.Sheets {
		if sh.Properties != nil && sh.Properties.Title == tab {
			return nil
		}
	}

	log.Printf("[SHEET] creating worksheet %q", tab)
	req := &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{{
			AddSheet: &sheets.AddSheetRequest{
				Properties: &sheets.SheetProperties{Title: tab},
			},
		}},
	}
	if _, err := c.srv.Spreadsheets.BatchUpdate(c.sheetID, req).Context(ctx).Do(); err != nil {
		return fmt.Errorf("create worksheet: %w", err)
	}
	return nil
}

func toCells(row []string) []interface{} {
	cells := make([]interface{}, len(row))
	for i, v := range row {
		cells[i] = v
	}
	return cells
}

func maskID(id string) string {
	if len(id) <= 8 {
		return "****"
	}
	return id[:4] + "..." + id[len(id)-4:]
}
