// internal/patch/update.go
package patch

import (
	"errors"
	"fmt"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"github.com/xkilldash9x/mockup-cli/api/schemas"
	"github.com/xkilldash9x/mockup-cli/internal/document"
)

// strict converts typed sections (style, layout, tokens) to generic maps and
// back. Unknown fields and type mismatches fail the conversion, which is how a
// dot-path write into a typed section gets checked.
var strict = jsoniter.Config{
	SortMapKeys:           true,
	DisallowUnknownFields: true,
}.Froze()

// -- Node Updates --

func update(spec *schemas.DesignSpec, p schemas.Patch) (*schemas.DesignSpec, schemas.Patch, error) {
	loc, ok := locate(spec, p.Target)
	if !ok {
		return nil, schemas.Patch{}, notFound(p, p.Target)
	}
	segs, err := splitPath(p.Path)
	if err != nil {
		return nil, schemas.Patch{}, invalid(p, "%v", err)
	}

	section := segs[0]
	switch section {
	case "id", "children":
		return nil, schemas.Patch{}, invalid(p, "path %q is immutable", p.Path)
	case "type":
		return updateType(spec, p, loc, segs)
	case "props", "style", "layout":
	default:
		return nil, schemas.Patch{}, invalid(p, "unknown path %q", p.Path)
	}

	view, err := sectionView(loc.node(), section)
	if err != nil {
		return nil, schemas.Patch{}, invalid(p, "%v", err)
	}
	inverse, err := writePath(view, segs, p)
	if err != nil {
		return nil, schemas.Patch{}, invalid(p, "%v", err)
	}

	next, path := edit(spec, loc.screen, loc.path)
	if err := storeSection(path[len(path)-1], section, view); err != nil {
		return nil, schemas.Patch{}, invalid(p, "%v", err)
	}
	return next, inverse, nil
}

func updateType(spec *schemas.DesignSpec, p schemas.Patch, loc location, segs []string) (*schemas.DesignSpec, schemas.Patch, error) {
	if len(segs) > 1 {
		return nil, schemas.Patch{}, invalid(p, "type has no sub-paths")
	}
	if p.Unset {
		return nil, schemas.Patch{}, invalid(p, "type cannot be unset")
	}
	var t schemas.ComponentType
	switch v := p.Value.(type) {
	case string:
		t = schemas.ComponentType(v)
	case schemas.ComponentType:
		t = v
	}
	if !t.IsKnown() {
		return nil, schemas.Patch{}, invalid(p, "unknown component type %v", p.Value)
	}

	next, path := edit(spec, loc.screen, loc.path)
	node := path[len(path)-1]
	old := node.Type
	node.Type = t
	return next, schemas.Patch{Op: schemas.OpUpdate, Target: p.Target, Path: "type", Value: string(old)}, nil
}

// sectionView exposes one section of a node as {section: map}. An absent
// section leaves the view empty so it reads as a missing path segment.
func sectionView(node *schemas.ComponentNode, section string) (map[string]any, error) {
	view := make(map[string]any, 1)
	var (
		m   map[string]any
		err error
	)
	switch section {
	case "props":
		if node.Props != nil {
			view[section] = document.CloneProps(node.Props)
		}
		return view, nil
	case "style":
		if node.Style == nil {
			return view, nil
		}
		m, err = toMap(node.Style)
	case "layout":
		if node.Layout == nil {
			return view, nil
		}
		m, err = toMap(node.Layout)
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", section, err)
	}
	view[section] = m
	return view, nil
}

// storeSection writes the edited view back onto a node copy.
func storeSection(node *schemas.ComponentNode, section string, view map[string]any) error {
	v := view[section]
	switch section {
	case "props":
		if v == nil {
			node.Props = nil
			return nil
		}
		m, ok := v.(map[string]any)
		if !ok {
			return errors.New("props must be an object")
		}
		node.Props = m
	case "style":
		if v == nil {
			node.Style = nil
			return nil
		}
		var s schemas.Style
		if err := fromMap(v, &s); err != nil {
			return fmt.Errorf("style: %w", err)
		}
		node.Style = &s
	case "layout":
		if v == nil {
			node.Layout = nil
			return nil
		}
		var l schemas.Layout
		if err := fromMap(v, &l); err != nil {
			return fmt.Errorf("layout: %w", err)
		}
		node.Layout = &l
	}
	return nil
}

// -- Token and Screen Updates --

func updateTokens(spec *schemas.DesignSpec, p schemas.Patch) (*schemas.DesignSpec, schemas.Patch, error) {
	segs, err := splitPath(p.Path)
	if err != nil {
		return nil, schemas.Patch{}, invalid(p, "%v", err)
	}
	view, err := toMap(spec.Tokens)
	if err != nil {
		return nil, schemas.Patch{}, invalid(p, "reading tokens: %v", err)
	}
	inverse, err := writePath(view, segs, p)
	if err != nil {
		return nil, schemas.Patch{}, invalid(p, "%v", err)
	}

	var tokens schemas.DesignTokens
	if err := fromMap(view, &tokens); err != nil {
		return nil, schemas.Patch{}, invalid(p, "tokens: %v", err)
	}
	next := *spec
	next.Tokens = tokens
	return &next, inverse, nil
}

func updateScreen(spec *schemas.DesignSpec, p schemas.Patch) (*schemas.DesignSpec, schemas.Patch, error) {
	si, ok := document.FindScreen(spec, p.Target)
	if !ok {
		return nil, schemas.Patch{}, notFound(p, p.Target)
	}
	inverse := schemas.Patch{Op: schemas.OpUpdateScreen, Target: p.Target, Path: p.Path}

	switch p.Path {
	case "name":
		var name string
		if !p.Unset {
			s, ok := p.Value.(string)
			if !ok {
				return nil, schemas.Patch{}, invalid(p, "name must be a string")
			}
			name = s
		}
		next, screen := editScreen(spec, si)
		inverse.Value = screen.Name
		screen.Name = name
		return next, inverse, nil

	case "width", "height":
		var size float64
		if !p.Unset {
			f, ok := toFloat(p.Value)
			if !ok || f < 0 {
				return nil, schemas.Patch{}, invalid(p, "%s must be a non-negative number", p.Path)
			}
			size = f
		}
		next, screen := editScreen(spec, si)
		if p.Path == "width" {
			inverse.Value = screen.Width
			screen.Width = size
		} else {
			inverse.Value = screen.Height
			screen.Height = size
		}
		return next, inverse, nil

	case "id", "root":
		return nil, schemas.Patch{}, invalid(p, "path %q is immutable", p.Path)
	default:
		return nil, schemas.Patch{}, invalid(p, "unknown screen path %q", p.Path)
	}
}

// -- Dot Paths --

func splitPath(path string) ([]string, error) {
	if path == "" {
		return nil, errors.New("path is required")
	}
	segs := strings.Split(path, ".")
	for _, s := range segs {
		if s == "" {
			return nil, fmt.Errorf("malformed path %q", path)
		}
	}
	return segs, nil
}

// writePath sets or unsets segs in root according to p and returns the patch
// that reverses the write. When the path already existed the inverse restores
// the old value; otherwise it unsets the first segment the write created.
func writePath(root map[string]any, segs []string, p schemas.Patch) (schemas.Patch, error) {
	old, missing, err := lookup(root, segs)
	if err != nil {
		return schemas.Patch{}, err
	}

	if p.Unset {
		if missing == len(segs) {
			parent, _, _ := lookup(root, segs[:len(segs)-1])
			delete(parent.(map[string]any), segs[len(segs)-1])
		}
	} else if err := setPath(root, segs, document.CloneAny(p.Value)); err != nil {
		return schemas.Patch{}, err
	}

	inverse := schemas.Patch{Op: p.Op, Target: p.Target}
	if missing < len(segs) {
		inverse.Path = strings.Join(segs[:missing+1], ".")
		inverse.Unset = true
	} else {
		inverse.Path = strings.Join(segs, ".")
		inverse.Value = old
	}
	return inverse, nil
}

// lookup walks segs from root. It returns the value found and len(segs), or
// the index of the first segment that is absent. Descending through a value
// that is not an object is an error.
func lookup(root map[string]any, segs []string) (any, int, error) {
	var cur any = root
	for i, s := range segs {
		obj, ok := cur.(map[string]any)
		if !ok {
			return nil, i, fmt.Errorf("%q is not an object", strings.Join(segs[:i], "."))
		}
		v, ok := obj[s]
		if !ok {
			return nil, i, nil
		}
		cur = v
	}
	return cur, len(segs), nil
}

// setPath assigns v at segs, creating absent intermediate objects.
func setPath(root map[string]any, segs []string, v any) error {
	cur := root
	for i, s := range segs[:len(segs)-1] {
		next, ok := cur[s]
		if !ok {
			child := make(map[string]any)
			cur[s] = child
			cur = child
			continue
		}
		child, ok := next.(map[string]any)
		if !ok {
			return fmt.Errorf("%q is not an object", strings.Join(segs[:i+1], "."))
		}
		cur = child
	}
	cur[segs[len(segs)-1]] = v
	return nil
}

func toMap(v any) (map[string]any, error) {
	raw, err := strict.Marshal(v)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := strict.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func fromMap(v any, out any) error {
	raw, err := strict.Marshal(v)
	if err != nil {
		return err
	}
	return strict.Unmarshal(raw, out)
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}
