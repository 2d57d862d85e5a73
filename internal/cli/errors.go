package cli

import (
	"fmt"
	"sort"
	"strings"

	"postplan-cli/internal/validate"
)

type notFoundError struct {
	kind string
	id   string
}

func (e notFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.kind, e.id)
}

func errNotFound(kind, id string) error {
	return notFoundError{kind: kind, id: id}
}

type invalidFormError struct {
	fields validate.FieldErrors
}

func (e invalidFormError) Error() string {
	keys := make([]string, 0, len(e.fields))
	for k := range e.fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.fields[k]))
	}
	return "invalid account: " + strings.Join(parts, "; ")
}

func errInvalidForm(fields validate.FieldErrors) error {
	return invalidFormError{fields: fields}
}
