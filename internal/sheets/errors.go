package sheets

import "errors"

// Sentinel errors for the failure taxonomy the route layer distinguishes.
// Callers match with errors.Is.
var (
	// ErrNoClient is returned when the process started without usable
	// credentials and runs in the degraded no-client state.
	ErrNoClient = errors.New("sheets client not configured")

	// ErrSpreadsheetNotFound means no spreadsheet with the requested name is
	// visible to the service account.
	ErrSpreadsheetNotFound = errors.New("spreadsheet not found")

	// ErrWorksheetNotFound means the spreadsheet exists but has no worksheet
	// with the requested title.
	ErrWorksheetNotFound = errors.New("worksheet not found")

	// ErrNoCredentials means neither the credentials env var nor the local
	// credentials file was present.
	ErrNoCredentials = errors.New("no service account credentials found")
)
