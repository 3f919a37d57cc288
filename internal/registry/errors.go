package registry

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrValidation marks input that was rejected before any state mutation.
	ErrValidation = errors.New("validation error")
	// ErrNotFound marks lookups for records that do not exist. Expected
	// outcome, not a fault; callers usually render it instead of retrying.
	ErrNotFound = errors.New("not found")
	// ErrStorage marks persistence writes the backing store rejected.
	ErrStorage = errors.New("storage error")
)

// Wrap builds an error message that includes collection context while tagging
// it with the provided marker for later classification. The marker should be
// one of the exported sentinel errors above.
func Wrap(marker error, collection, operation, message string, err error) error {
	detail := buildDetail(collection, operation, message)
	if marker == nil {
		marker = ErrStorage
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// IsNotFound reports whether err represents a missing record.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func buildDetail(collection, operation, message string) string {
	parts := make([]string, 0, 3)
	if collection = strings.TrimSpace(collection); collection != "" {
		parts = append(parts, collection)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "registry failure"
	}
	return strings.Join(parts, ": ")
}
