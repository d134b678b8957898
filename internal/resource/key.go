package resource

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("resource not found")

// NewKey generates a key for a resource created interactively, prefixed with
// the resource kind, e.g. "tab-1b4e28ba".
func NewKey(kind string) string {
	id := uuid.New()
	return fmt.Sprintf("%s-%x", kind, id[:4])
}
