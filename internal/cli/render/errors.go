package render

import (
	"errors"
	"strings"

	"github.com/fatih/color"
	"github.com/trebuchet-org/treb-tracker/internal/domain"
)

// ErrorMessage turns an error into the line shown to users. Compilation,
// configuration and tracking store errors are shown with their own full
// description; for anything else only the innermost message of the chain
// is shown.
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}

	var compilationErr *domain.CompilationError
	if errors.As(err, &compilationErr) {
		return compilationErr.Error()
	}
	var setErr *domain.ConfigurationSetError
	if errors.As(err, &setErr) {
		return setErr.Error()
	}
	if errors.Is(err, domain.ErrDatabaseNotFound) {
		return "Deployment tracking database not found, run 'treb-tracker init' first"
	}

	if storeErr := findStoreError(err); storeErr != nil {
		return storeErr.Error()
	}

	// Extract just the error message part (after the last colon if it's an error chain)
	parts := strings.Split(err.Error(), ": ")
	msg := parts[len(parts)-1]

	// Capitalize first letter
	if len(msg) > 0 {
		msg = strings.ToUpper(msg[:1]) + msg[1:]
	}
	return msg
}

// findStoreError returns the tracking store error in the chain, which
// names the file or document path involved
func findStoreError(err error) error {
	var (
		formatErr *domain.FormatError
		ioErr     *domain.IOError
		serErr    *domain.SerializationError
		insertErr *domain.InsertionError
	)
	switch {
	case errors.As(err, &formatErr):
		return formatErr
	case errors.As(err, &ioErr):
		return ioErr
	case errors.As(err, &serErr):
		return serErr
	case errors.As(err, &insertErr):
		return insertErr
	}
	return nil
}

// FormatError formats an error with the error icon
func FormatError(err error) string {
	return color.New(color.FgRed).Sprintf("❌ %s", ErrorMessage(err))
}
