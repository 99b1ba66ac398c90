// internal/document/validate.go
package document

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/xkilldash9x/mockup-cli/api/schemas"
)

// Limits are the acceptance-time bounds a document must satisfy before it is
// trusted. They are not re-checked while patches are applied.
type Limits struct {
	MaxScreens        int `mapstructure:"max_screens" yaml:"max_screens"`
	MaxNodesPerScreen int `mapstructure:"max_nodes_per_screen" yaml:"max_nodes_per_screen"`
	MaxDepth          int `mapstructure:"max_depth" yaml:"max_depth"`
	MaxChildren       int `mapstructure:"max_children" yaml:"max_children"`
	MaxTextLength     int `mapstructure:"max_text_length" yaml:"max_text_length"`
}

// DefaultLimits returns the standard acceptance limits.
func DefaultLimits() Limits {
	return Limits{
		MaxScreens:        20,
		MaxNodesPerScreen: 100,
		MaxDepth:          10,
		MaxChildren:       50,
		MaxTextLength:     1000,
	}
}

// Violation is one failed rule, located by a path into the document.
type Violation struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// ValidationError lists every violation found in a document, not just the first.
type ValidationError struct {
	Violations []Violation
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if len(e.Violations) == 1 {
		return fmt.Sprintf("invalid design spec: %s: %s", e.Violations[0].Path, e.Violations[0].Message)
	}
	parts := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		parts[i] = v.Path + ": " + v.Message
	}
	return fmt.Sprintf("invalid design spec (%d violations): %s", len(e.Violations), strings.Join(parts, "; "))
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Closed set of component kinds.
	if err := v.RegisterValidation("component", func(fl validator.FieldLevel) bool {
		return schemas.ComponentType(fl.Field().String()).IsKnown()
	}); err != nil {
		panic(fmt.Sprintf("document: failed to register component validation: %v", err))
	}
	return v
}

// Validate checks a document against the structural rules and the given limits.
// Field rules come from the struct tags on the data model; tree rules (limits,
// id uniqueness, props shape, interaction references) are walked here.
func Validate(spec *schemas.DesignSpec, limits Limits) error {
	if spec == nil {
		return &ValidationError{Violations: []Violation{{Path: "spec", Message: "is nil"}}}
	}

	var violations []Violation
	add := func(path, format string, args ...any) {
		violations = append(violations, Violation{Path: path, Message: fmt.Sprintf(format, args...)})
	}

	if err := validate.Struct(spec); err != nil {
		if fieldErrors, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range fieldErrors {
				add(fe.Namespace(), "%s", formatFieldError(fe))
			}
		} else {
			add("spec", "%v", err)
		}
	}

	if limits.MaxScreens > 0 && len(spec.Screens) > limits.MaxScreens {
		add("screens", "has %d screens, limit is %d", len(spec.Screens), limits.MaxScreens)
	}

	screenIDs := make(map[string]int, len(spec.Screens))
	nodeIDs := make(map[string]string)
	for i, screen := range spec.Screens {
		if screen == nil {
			continue
		}
		screenPath := fmt.Sprintf("screens[%d]", i)
		if screen.ID != "" {
			if prev, dup := screenIDs[screen.ID]; dup {
				add(screenPath+".id", "duplicate screen id %q (first used by screens[%d])", screen.ID, prev)
			} else {
				screenIDs[screen.ID] = i
			}
		}
		if screen.Root == nil {
			continue
		}

		if n := CountNodes(screen.Root); limits.MaxNodesPerScreen > 0 && n > limits.MaxNodesPerScreen {
			add(screenPath, "has %d nodes, limit is %d", n, limits.MaxNodesPerScreen)
		}
		if d := MaxDepth(screen.Root); limits.MaxDepth > 0 && d > limits.MaxDepth {
			add(screenPath, "nesting depth %d exceeds limit %d", d, limits.MaxDepth)
		}

		validateNode(screen.Root, screenPath+".root", limits, nodeIDs, add)
	}

	// Patch targets accept screen ids in place of their root, so the two
	// namespaces must not overlap.
	clashes := make([]string, 0)
	for id, path := range nodeIDs {
		if _, ok := screenIDs[id]; ok {
			clashes = append(clashes, path)
		}
	}
	slices.Sort(clashes)
	for _, path := range clashes {
		add(path+".id", "node id collides with a screen id")
	}

	for i, in := range spec.Interactions {
		path := fmt.Sprintf("interactions[%d]", i)
		if in.Trigger.NodeID != "" {
			if _, ok := nodeIDs[in.Trigger.NodeID]; !ok {
				add(path+".trigger.nodeId", "unknown node %q", in.Trigger.NodeID)
			}
		}
		if in.Action.TargetScreenID != "" {
			if _, ok := screenIDs[in.Action.TargetScreenID]; !ok {
				add(path+".action.targetScreenId", "unknown screen %q", in.Action.TargetScreenID)
			}
		}
	}

	if len(violations) > 0 {
		return &ValidationError{Violations: violations}
	}
	return nil
}

func validateNode(node *schemas.ComponentNode, path string, limits Limits, seen map[string]string, add func(string, string, ...any)) {
	if node == nil {
		return
	}
	if node.ID != "" {
		if first, dup := seen[node.ID]; dup {
			add(path+".id", "duplicate node id %q (first used at %s)", node.ID, first)
		} else {
			seen[node.ID] = path
		}
	}
	if limits.MaxChildren > 0 && len(node.Children) > limits.MaxChildren {
		add(path+".children", "has %d children, limit is %d", len(node.Children), limits.MaxChildren)
	}

	// Unknown kinds are already reported by the struct rules.
	if node.Type.IsKnown() {
		props, err := DecodeProps(node)
		if err != nil {
			add(path+".props", "%v", err)
		} else if text := props.Text(); limits.MaxTextLength > 0 && utf8.RuneCountInString(text) > limits.MaxTextLength {
			add(path+".props", "text length %d exceeds limit %d", utf8.RuneCountInString(text), limits.MaxTextLength)
		}
	}

	for i, child := range node.Children {
		validateNode(child, fmt.Sprintf("%s.children[%d]", path, i), limits, seen, add)
	}
}

func formatFieldError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "component":
		return fmt.Sprintf("unknown component type %q", e.Value())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", e.Param())
	case "gte":
		return fmt.Sprintf("must be at least %s", e.Param())
	case "lte":
		return fmt.Sprintf("must be at most %s", e.Param())
	default:
		return fmt.Sprintf("failed rule %q", e.Tag())
	}
}
