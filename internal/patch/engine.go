// internal/patch/engine.go
package patch

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/xkilldash9x/mockup-cli/api/schemas"
)

// Engine applies patches to design documents. Documents are treated as
// immutable values: every Apply returns a new spec that shares all untouched
// subtrees with its input, so the input stays valid for undo and comparison.
// The engine holds no document state and is safe for concurrent use.
type Engine struct {
	logger *zap.Logger
	newID  func() string
	now    func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithIDGenerator overrides how ids are minted for added nodes that arrive
// without one. The default is a random UUID.
func WithIDGenerator(gen func() string) Option {
	return func(e *Engine) {
		if gen != nil {
			e.newID = gen
		}
	}
}

// WithClock sets the time source used to stamp patch groups.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

// NewEngine creates a patch engine.
func NewEngine(logger *zap.Logger, opts ...Option) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	e := &Engine{
		logger: logger.Named("patch"),
		newID:  uuid.NewString,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Result is the outcome of a single Apply.
type Result struct {
	Spec *schemas.DesignSpec
	// Applied is the patch as it was executed. For add it carries the inserted
	// subtree with generated ids filled in, so replaying it reproduces Spec.
	Applied schemas.Patch
	// Inverse restores the input document when applied to Spec.
	Inverse schemas.Patch
}

// BatchResult is the outcome of ApplyAll. Inverses are in replay order: applying
// them first to last undoes the whole batch.
type BatchResult struct {
	Spec     *schemas.DesignSpec
	Applied  []schemas.Patch
	Inverses []schemas.Patch
}

// Apply executes one patch. The input spec is never modified.
func (e *Engine) Apply(spec *schemas.DesignSpec, p schemas.Patch) (Result, error) {
	if spec == nil {
		return Result{}, errors.New("cannot apply patch to a nil spec")
	}

	var (
		next    *schemas.DesignSpec
		applied = p
		inverse schemas.Patch
		err     error
	)
	switch p.Op {
	case schemas.OpAdd:
		next, applied, inverse, err = e.add(spec, p)
	case schemas.OpRemove:
		next, inverse, err = remove(spec, p)
	case schemas.OpUpdate:
		next, inverse, err = update(spec, p)
	case schemas.OpMove:
		next, inverse, err = move(spec, p)
	case schemas.OpReparent:
		next, inverse, err = reparent(spec, p)
	case schemas.OpReorder:
		next, inverse, err = reorder(spec, p)
	case schemas.OpUpdateTokens:
		next, inverse, err = updateTokens(spec, p)
	case schemas.OpUpdateScreen:
		next, inverse, err = updateScreen(spec, p)
	default:
		err = &UnsupportedOpError{Op: p.Op}
	}
	if err != nil {
		e.logger.Debug("Patch rejected.",
			zap.String("op", string(p.Op)),
			zap.String("target", p.Target),
			zap.Error(err))
		return Result{}, err
	}

	e.logger.Debug("Patch applied.",
		zap.String("op", string(p.Op)),
		zap.String("target", applied.Target))
	return Result{Spec: next, Applied: applied, Inverse: inverse}, nil
}

// ApplyAll folds patches over spec in order. A batch is all-or-nothing: on the
// first failure the input spec is returned unchanged together with a
// *BatchError naming the offending patch.
func (e *Engine) ApplyAll(spec *schemas.DesignSpec, patches []schemas.Patch) (BatchResult, error) {
	current := spec
	applied := make([]schemas.Patch, 0, len(patches))
	inverses := make([]schemas.Patch, len(patches))
	for i, p := range patches {
		res, err := e.Apply(current, p)
		if err != nil {
			return BatchResult{Spec: spec}, &BatchError{Index: i, Op: p.Op, Target: p.Target, Err: err}
		}
		current = res.Spec
		applied = append(applied, res.Applied)
		inverses[len(patches)-1-i] = res.Inverse
	}
	if len(patches) > 0 {
		e.logger.Debug("Batch applied.", zap.Int("patches", len(patches)))
	}
	return BatchResult{Spec: current, Applied: applied, Inverses: inverses}, nil
}

// NewGroup packages a successful batch as one undoable unit.
func (e *Engine) NewGroup(description string, batch BatchResult) schemas.PatchGroup {
	return schemas.PatchGroup{
		ID:          uuid.NewString(),
		Description: description,
		Timestamp:   e.now().UTC(),
		Patches:     batch.Applied,
		Inverses:    batch.Inverses,
	}
}
