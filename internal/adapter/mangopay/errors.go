package mangopay

import (
	"fmt"
	"sort"
	"strings"
)

// APIError is the error body returned by the processor on 4xx/5xx.
type APIError struct {
	StatusCode int               `json:"-"`
	ID         string            `json:"Id"`
	Message    string            `json:"Message"`
	Type       string            `json:"Type"`
	Errors     map[string]string `json:"errors"`
}

func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "unexpected response"
	}
	if len(e.Errors) == 0 {
		return fmt.Sprintf("mangopay: %d %s", e.StatusCode, msg)
	}
	fields := make([]string, 0, len(e.Errors))
	for k, v := range e.Errors {
		fields = append(fields, k+": "+v)
	}
	sort.Strings(fields)
	return fmt.Sprintf("mangopay: %d %s (%s)", e.StatusCode, msg, strings.Join(fields, "; "))
}
