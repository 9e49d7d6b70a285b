package utils

import (
	"fmt"
	"strconv"
)

// Field is one entry of the declarative validator shared by all resource
// handlers: a non-nil Value must be a non-empty string.
type Field struct {
	Value interface{}
	Label string
}

// ValidateFields reports the first field whose value is present but not a
// usable string. Nil values pass so the same list serves partial updates.
func ValidateFields(fields []Field) error {
	for _, f := range fields {
		if f.Value == nil {
			continue
		}
		s, ok := f.Value.(string)
		if !ok || s == "" {
			return fmt.Errorf("%s is in the wrong format or empty", f.Label)
		}
	}
	return nil
}

// ParseID accepts only positive integer identifiers.
func ParseID(raw string) (uint, error) {
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid ID")
	}
	return uint(id), nil
}
