package lesson

import (
	"errors"
	"fmt"
	"strings"
)

// ErrIncompleteRequest is matched by every *IncompleteRequestError.
var ErrIncompleteRequest = errors.New("incomplete lesson request")

// Field names reported in IncompleteRequestError.Missing.
const (
	FieldSubject     = "subject"
	FieldTopic       = "topic"
	FieldDuration    = "duration"
	FieldMethodology = "methodology"
)

// IncompleteRequestError reports required fields that were empty.
type IncompleteRequestError struct {
	Missing []string
}

func (e *IncompleteRequestError) Error() string {
	return fmt.Sprintf("incomplete lesson request: missing %s", strings.Join(e.Missing, ", "))
}

func (e *IncompleteRequestError) Is(target error) bool {
	return target == ErrIncompleteRequest
}

// Has reports whether field is among the missing ones.
func (e *IncompleteRequestError) Has(field string) bool {
	for _, f := range e.Missing {
		if f == field {
			return true
		}
	}
	return false
}

// Validate turns a draft into a Request. Subject, topic, duration and
// methodology must be non-empty after trimming. Missing fields are reported
// in a fixed order. The level goes through ParseLevel, so it defaults to
// DefaultLevel and English keys map to their label; anything else fails
// with *InvalidLevelError.
func Validate(d Draft) (Request, error) {
	req := Request{
		Subject:     strings.TrimSpace(d.Subject),
		Topic:       strings.TrimSpace(d.Topic),
		Duration:    strings.TrimSpace(d.Duration),
		Context:     strings.TrimSpace(d.Context),
		Methodology: strings.TrimSpace(d.Methodology),
	}

	var missing []string
	if req.Subject == "" {
		missing = append(missing, FieldSubject)
	}
	if req.Topic == "" {
		missing = append(missing, FieldTopic)
	}
	if req.Duration == "" {
		missing = append(missing, FieldDuration)
	}
	if req.Methodology == "" {
		missing = append(missing, FieldMethodology)
	}
	if len(missing) > 0 {
		return Request{}, &IncompleteRequestError{Missing: missing}
	}

	level, err := ParseLevel(string(d.Level))
	if err != nil {
		return Request{}, err
	}
	req.Level = level
	return req, nil
}
