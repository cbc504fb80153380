package sheets

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// Client reads worksheets from Google Sheets on behalf of a service account.
// A single long-lived instance is shared by all requests; it holds no mutable
// state beyond the underlying HTTP client.
type Client struct {
	sheets *sheets.Service
	drive  *drive.Service
}

// LoadCredentials resolves the service-account credential JSON. The env blob
// wins over the local file; having neither is a hard failure the caller must
// report.
func LoadCredentials(envJSON, filePath string) ([]byte, error) {
	if strings.TrimSpace(envJSON) != "" {
		return []byte(envJSON), nil
	}
	if filePath != "" {
		data, err := os.ReadFile(filePath)
		if err == nil {
			return data, nil
		}
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("read credentials file %s: %w", filePath, err)
		}
	}
	return nil, ErrNoCredentials
}

// NewClient builds a Client from service-account credential JSON.
func NewClient(ctx context.Context, credentialsJSON []byte) (*Client, error) {
	config, err := google.JWTConfigFromJSON(
		credentialsJSON,
		sheets.SpreadsheetsScope,
		drive.DriveMetadataReadonlyScope,
	)
	if err != nil {
		return nil, fmt.Errorf("parse service account credentials: %w", err)
	}

	httpClient := config.Client(ctx)

	sheetsSrv, err := sheets.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}

	driveSrv, err := drive.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("create drive service: %w", err)
	}

	return &Client{sheets: sheetsSrv, drive: driveSrv}, nil
}

// OpenSpreadsheet looks up a spreadsheet by its exact name and returns its ID.
func (c *Client) OpenSpreadsheet(ctx context.Context, name string) (string, error) {
	escaped := strings.ReplaceAll(name, "'", "\\'")
	query := fmt.Sprintf(
		"name='%s' and mimeType='application/vnd.google-apps.spreadsheet' and trashed=false",
		escaped,
	)

	result, err := c.drive.Files.List().
		Q(query).
		Fields("files(id, name)").
		PageSize(1).
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("search for spreadsheet %q: %w", name, err)
	}

	if len(result.Files) == 0 {
		return "", fmt.Errorf("%w: %q", ErrSpreadsheetNotFound, name)
	}

	return result.Files[0].Id, nil
}

// WorksheetTitles lists the worksheet titles in a spreadsheet.
func (c *Client) WorksheetTitles(ctx context.Context, spreadsheetID string) ([]string, error) {
	meta, err := c.sheets.Spreadsheets.Get(spreadsheetID).
		Fields("sheets(properties(title))").
		Context(ctx).
		Do()
	if err != nil {
		var gerr *googleapi.Error
		if errors.As(err, &gerr) && gerr.Code == 404 {
			return nil, fmt.Errorf("%w: id=%s", ErrSpreadsheetNotFound, spreadsheetID)
		}
		return nil, fmt.Errorf("fetch spreadsheet metadata: %w", err)
	}

	titles := make([]string, 0, len(meta.Sheets))
	for _, s := range meta.Sheets {
		if s.Properties != nil {
			titles = append(titles, s.Properties.Title)
		}
	}
	return titles, nil
}

// Records reads a whole worksheet and returns its rows as Records, the first
// row serving as the header row.
func (c *Client) Records(ctx context.Context, spreadsheetID, worksheet string) ([]Record, error) {
	titles, err := c.WorksheetTitles(ctx, spreadsheetID)
	if err != nil {
		return nil, err
	}

	found := false
	for _, t := range titles {
		if t == worksheet {
			found = true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("%w: %q", ErrWorksheetNotFound, worksheet)
	}

	resp, err := c.sheets.Spreadsheets.Values.Get(spreadsheetID, quoteRange(worksheet)).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("read worksheet %q: %w", worksheet, err)
	}

	return RecordsFromValues(resp.Values), nil
}

// AppendRow appends one row of values to the end of a worksheet.
func (c *Client) AppendRow(ctx context.Context, spreadsheetID, worksheet string, values []any) error {
	body := &sheets.ValueRange{Values: [][]any{values}}

	_, err := c.sheets.Spreadsheets.Values.Append(spreadsheetID, quoteRange(worksheet), body).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("append to worksheet %q: %w", worksheet, err)
	}
	return nil
}

// quoteRange wraps a worksheet title so titles with spaces parse as an A1
// range covering the whole sheet.
func quoteRange(worksheet string) string {
	return "'" + strings.ReplaceAll(worksheet, "'", "''") + "'"
}
