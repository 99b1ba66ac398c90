// internal/history/history.go
package history

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/xkilldash9x/mockup-cli/api/schemas"
	"github.com/xkilldash9x/mockup-cli/internal/config"
	"github.com/xkilldash9x/mockup-cli/internal/patch"
)

var (
	// ErrNothingToUndo is returned by Undo on an empty undo stack.
	ErrNothingToUndo = errors.New("nothing to undo")
	// ErrNothingToRedo is returned by Redo on an empty redo stack.
	ErrNothingToRedo = errors.New("nothing to redo")
)

// Editor owns the current document and its undo/redo stacks. Each commit is
// applied as one all-or-nothing batch and recorded as a PatchGroup. Unlike the
// patch engine, the editor stamps every change: Version is incremented and
// UpdatedAt set, for commits, undos and redos alike.
type Editor struct {
	mu     sync.Mutex
	logger *zap.Logger
	engine *patch.Engine
	limit  int
	now    func() time.Time

	current *schemas.DesignSpec
	undo    []schemas.PatchGroup
	redo    []schemas.PatchGroup
}

// Option configures an Editor.
type Option func(*Editor)

// WithClock sets the time source used for UpdatedAt.
func WithClock(now func() time.Time) Option {
	return func(e *Editor) {
		if now != nil {
			e.now = now
		}
	}
}

// NewEditor starts an editing session on spec. cfg.Limit bounds the number of
// undoable groups kept; zero keeps them all.
func NewEditor(logger *zap.Logger, engine *patch.Engine, cfg config.HistoryConfig, spec *schemas.DesignSpec, opts ...Option) *Editor {
	if logger == nil {
		logger = zap.NewNop()
	}
	e := &Editor{
		logger:  logger.Named("history"),
		engine:  engine,
		limit:   cfg.Limit,
		now:     time.Now,
		current: spec,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Current returns the current document. Callers must treat it as read-only.
func (e *Editor) Current() *schemas.DesignSpec {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.current
}

// Commit applies patches as one undoable group and clears the redo stack.
// On failure the document is unchanged and the error wraps *patch.BatchError.
func (e *Editor) Commit(description string, patches []schemas.Patch) (schemas.PatchGroup, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	res, err := e.engine.ApplyAll(e.current, patches)
	if err != nil {
		return schemas.PatchGroup{}, fmt.Errorf("commit %q: %w", description, err)
	}
	group := e.engine.NewGroup(description, res)
	e.current = e.stamp(res.Spec)
	e.undo = append(e.undo, group)
	e.redo = nil
	if e.limit > 0 && len(e.undo) > e.limit {
		e.undo = e.undo[len(e.undo)-e.limit:]
	}

	e.logger.Debug("Committed patch group.",
		zap.String("group_id", group.ID),
		zap.String("description", description),
		zap.Int("patches", len(patches)),
		zap.Int("version", e.current.Version))
	return group, nil
}

// Undo reverts the most recent group and moves it to the redo stack.
func (e *Editor) Undo() (schemas.PatchGroup, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if len(e.undo) == 0 {
		return schemas.PatchGroup{}, ErrNothingToUndo
	}
	group := e.undo[len(e.undo)-1]
	res, err := e.engine.ApplyAll(e.current, group.Inverses)
	if err != nil {
		return schemas.PatchGroup{}, fmt.Errorf("undo %q: %w", group.Description, err)
	}
	e.current = e.stamp(res.Spec)
	e.undo = e.undo[:len(e.undo)-1]
	e.redo = append(e.redo, group)

	e.logger.Debug("Undid patch group.", zap.String("group_id", group.ID))
	return group, nil
}

// Redo re-applies the most recently undone group.
func (e *Editor) Redo() (schemas.PatchGroup, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if len(e.redo) == 0 {
		return schemas.PatchGroup{}, ErrNothingToRedo
	}
	group := e.redo[len(e.redo)-1]
	res, err := e.engine.ApplyAll(e.current, group.Patches)
	if err != nil {
		return schemas.PatchGroup{}, fmt.Errorf("redo %q: %w", group.Description, err)
	}
	e.current = e.stamp(res.Spec)
	e.redo = e.redo[:len(e.redo)-1]
	e.undo = append(e.undo, group)

	e.logger.Debug("Redid patch group.", zap.String("group_id", group.ID))
	return group, nil
}

// CanUndo reports whether Undo has a group to revert.
func (e *Editor) CanUndo() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.undo) > 0
}

// CanRedo reports whether Redo has a group to re-apply.
func (e *Editor) CanRedo() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.redo) > 0
}

// Groups returns the undoable groups, oldest first.
func (e *Editor) Groups() []schemas.PatchGroup {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]schemas.PatchGroup(nil), e.undo...)
}

// stamp returns a shallow copy of spec with the edit counters advanced.
func (e *Editor) stamp(spec *schemas.DesignSpec) *schemas.DesignSpec {
	next := *spec
	next.Version++
	next.UpdatedAt = e.now().UTC()
	return &next
}
