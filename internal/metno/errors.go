package metno

import (
	"errors"
	"fmt"
)

// Each fetch failure wraps exactly one of these, naming the step that failed.
var (
	ErrClient       = errors.New("build client")
	ErrRequest      = errors.New("request forecast")
	ErrBody         = errors.New("read response body")
	ErrParse        = errors.New("parse forecast")
	ErrMissingField = errors.New("missing forecast field")
)

// Stage names the step err failed at, for log fields.
func Stage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrClient):
		return "client"
	case errors.Is(err, ErrRequest):
		return "request"
	case errors.Is(err, ErrBody):
		return "body"
	case errors.Is(err, ErrParse):
		return "parse"
	case errors.Is(err, ErrMissingField):
		return "extract"
	default:
		return "unknown"
	}
}

func wrap(stage error, err error) error {
	return fmt.Errorf("%w: %w", stage, err)
}

func missing(detail string) error {
	return fmt.Errorf("%w: %s", ErrMissingField, detail)
}
