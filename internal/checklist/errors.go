package checklist

import (
	"fmt"
	"strings"
)

// UnknownTypeError is returned when a checklist type is not registered in the catalog.
type UnknownTypeError struct {
	Name  string
	Known []string
}

func (e *UnknownTypeError) Error() string {
	if len(e.Known) == 0 {
		return fmt.Sprintf("unknown checklist type %q", e.Name)
	}
	return fmt.Sprintf("unknown checklist type %q (known: %s)", e.Name, strings.Join(e.Known, ", "))
}

// CatalogError represents a catalog file that cannot be read or is structurally invalid.
type CatalogError struct {
	Message string
	Cause   error
}

func (e *CatalogError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("catalog error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("catalog error: %s", e.Message)
}

func (e *CatalogError) Unwrap() error {
	return e.Cause
}
