// internal/style/resolver.go
package style

import (
	"math"
	"strconv"
	"strings"

	json "github.com/json-iterator/go"
	"go.uber.org/zap"

	"github.com/xkilldash9x/mockup-cli/api/schemas"
)

// Default typography used when a node declares none and the token table has no
// usable entry.
const (
	BaseFontSize      = 16.0
	DefaultLineHeight = 1.5
)

// Resolver turns symbolic style and layout values into concrete ones against a
// single token table. Resolution failures are never errors: the caller receives
// ok == false and falls back to the component default.
type Resolver struct {
	logger       *zap.Logger
	tree         map[string]any
	baseFontSize float64
	lineHeight   float64
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithTypography overrides the fallback font size and line-height multiplier.
func WithTypography(baseFontSize, lineHeight float64) Option {
	return func(r *Resolver) {
		if baseFontSize > 0 {
			r.baseFontSize = baseFontSize
		}
		if lineHeight > 0 {
			r.lineHeight = lineHeight
		}
	}
}

// WithLogger sets the logger used to report an unusable token table.
func WithLogger(logger *zap.Logger) Option {
	return func(r *Resolver) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewResolver builds a resolver over tokens. The table is flattened once into a
// generic tree so dot paths can be walked without reflection.
func NewResolver(tokens schemas.DesignTokens, opts ...Option) *Resolver {
	r := &Resolver{
		logger:       zap.NewNop(),
		tree:         map[string]any{},
		baseFontSize: BaseFontSize,
		lineHeight:   DefaultLineHeight,
	}
	for _, opt := range opts {
		opt(r)
	}

	// An unconvertible table resolves nothing; every value falls back to its default.
	raw, err := json.Marshal(tokens)
	if err == nil {
		err = json.Unmarshal(raw, &r.tree)
	}
	if err != nil {
		r.tree = map[string]any{}
		r.logger.Warn("Token table could not be converted, token references will not resolve.", zap.Error(err))
	}
	return r
}

// Lookup walks a dot path (without the "tokens." prefix) through the table.
func (r *Resolver) Lookup(path string) (any, bool) {
	if path == "" {
		return nil, false
	}
	var cur any = r.tree
	for _, seg := range strings.Split(path, ".") {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		if cur, ok = m[seg]; !ok {
			return nil, false
		}
	}
	return cur, true
}

// Number resolves v to a number. Token leaves must be numeric; string literals
// are accepted when they are plain or px-suffixed numbers. Percentages are left
// unresolved for the layout engine.
func (r *Resolver) Number(v *schemas.Value) (float64, bool) {
	if v == nil {
		return 0, false
	}
	switch v.Kind() {
	case schemas.ValueNumber:
		n, _ := v.Number()
		return n, true
	case schemas.ValueToken:
		path, _ := v.TokenPath()
		leaf, ok := r.Lookup(path)
		if !ok {
			return 0, false
		}
		n, ok := leaf.(float64)
		return n, ok
	default:
		s, _ := v.Text()
		return parsePx(s)
	}
}

// String resolves v to a string. Number literals and numeric token leaves do not
// satisfy a string request.
func (r *Resolver) String(v *schemas.Value) (string, bool) {
	if v == nil {
		return "", false
	}
	switch v.Kind() {
	case schemas.ValueString:
		s, _ := v.Text()
		return s, true
	case schemas.ValueToken:
		path, _ := v.TokenPath()
		leaf, ok := r.Lookup(path)
		if !ok {
			return "", false
		}
		s, ok := leaf.(string)
		return s, ok
	default:
		return "", false
	}
}

// -- Lengths --

type LengthUnit int

const (
	Auto LengthUnit = iota
	Px
	Percent
)

// Length is a resolved size: auto, an absolute pixel count, or a percentage of
// the containing block.
type Length struct {
	Unit  LengthUnit
	Value float64
}

// PxLength returns an absolute length.
func PxLength(v float64) Length { return Length{Unit: Px, Value: v} }

// IsAuto reports whether the length is unresolved.
func (l Length) IsAuto() bool { return l.Unit == Auto }

// Resolve converts the length against a reference size. A percentage against
// an indefinite (NaN) reference stays unresolved.
func (l Length) Resolve(ref float64) (float64, bool) {
	switch l.Unit {
	case Px:
		return l.Value, true
	case Percent:
		if math.IsNaN(ref) {
			return 0, false
		}
		return ref * l.Value / 100, true
	default:
		return 0, false
	}
}

// ResolveOr is Resolve with a fallback for unresolved lengths.
func (l Length) ResolveOr(ref, fallback float64) float64 {
	if v, ok := l.Resolve(ref); ok {
		return v
	}
	return fallback
}

// Length resolves v to a layout length. Anything that cannot be resolved,
// including the literal "auto", becomes Auto.
func (r *Resolver) Length(v *schemas.Value) Length {
	if v == nil {
		return Length{}
	}
	if v.Kind() == schemas.ValueString {
		s, _ := v.Text()
		s = strings.TrimSpace(s)
		if strings.HasSuffix(s, "%") {
			if p, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64); err == nil {
				return Length{Unit: Percent, Value: p}
			}
			return Length{}
		}
	}
	if n, ok := r.Number(v); ok {
		return PxLength(n)
	}
	return Length{}
}

func parsePx(s string) (float64, bool) {
	s = strings.TrimSuffix(strings.TrimSpace(s), "px")
	if s == "" {
		return 0, false
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}
