package booking

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrSessionNotFound indicates an unknown or expired wizard session.
var ErrSessionNotFound = errors.New("booking session not found or expired")

// WrongStepError indicates an operation attempted out of wizard order.
type WrongStepError struct {
	Want string
	Got  string
}

func (e *WrongStepError) Error() string {
	return fmt.Sprintf("session is at step %q, expected %q", e.Got, e.Want)
}

// ValidationError carries field-level messages for a rejected wizard step.
// The step is not advanced; the client corrects the fields and retries.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return "validation failed: " + strings.Join(keys, ", ")
}

// AsValidationError unwraps err into a *ValidationError if it is one.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
