// internal/patch/errors.go
package patch

import (
	"errors"
	"fmt"

	"github.com/xkilldash9x/mockup-cli/api/schemas"
)

// Typed errors let callers such as the history stack and the CLI classify
// failures with errors.As instead of matching on message text.

// ErrNotFound is matched by every *NotFoundError through errors.Is.
var ErrNotFound = errors.New("not found")

// NotFoundError reports a target node or screen id that does not exist.
type NotFoundError struct {
	Op     schemas.PatchOp
	Target string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: target %q not found", e.Op, e.Target)
}

// Is makes errors.Is(err, ErrNotFound) hold.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// UnsupportedOpError is returned for a patch whose op the engine does not know.
type UnsupportedOpError struct {
	Op schemas.PatchOp
}

func (e *UnsupportedOpError) Error() string {
	return fmt.Sprintf("unsupported patch op %q", e.Op)
}

// InvalidOperationError is returned when a patch is well-formed but cannot be
// applied to this document: removing a screen root, writing an immutable path,
// inserting a duplicate id, and so on.
type InvalidOperationError struct {
	Op     schemas.PatchOp
	Target string
	Reason string
}

func (e *InvalidOperationError) Error() string {
	if e.Target == "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Reason)
	}
	return fmt.Sprintf("%s %q: %s", e.Op, e.Target, e.Reason)
}

// BatchError identifies the patch that aborted an ApplyAll.
type BatchError struct {
	Index  int
	Op     schemas.PatchOp
	Target string
	Err    error
}

func (e *BatchError) Error() string {
	return fmt.Sprintf("patch %d (%s %q) failed: %v", e.Index, e.Op, e.Target, e.Err)
}

// Unwrap provides the underlying error for use with errors.Is/As.
func (e *BatchError) Unwrap() error {
	return e.Err
}

func notFound(p schemas.Patch, target string) error {
	return &NotFoundError{Op: p.Op, Target: target}
}

func invalid(p schemas.Patch, format string, args ...any) error {
	return &InvalidOperationError{Op: p.Op, Target: p.Target, Reason: fmt.Sprintf(format, args...)}
}
