// internal/layout/engine.go
package layout

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/xkilldash9x/mockup-cli/api/schemas"
	"github.com/xkilldash9x/mockup-cli/internal/config"
	"github.com/xkilldash9x/mockup-cli/internal/document"
	"github.com/xkilldash9x/mockup-cli/internal/style"
)

// Engine turns component trees into absolute bounds. It holds no per-screen
// state, so one Engine may serve any number of goroutines.
type Engine struct {
	logger *zap.Logger
	cfg    config.LayoutConfig
	text   textMetrics
}

// NewEngine creates a layout engine. Zero or negative settings fall back to
// the configuration defaults.
func NewEngine(logger *zap.Logger, cfg config.LayoutConfig) *Engine {
	defaults := config.NewDefaultConfig().Layout()
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = defaults.Concurrency
	}
	if cfg.DefaultScreenWidth <= 0 {
		cfg.DefaultScreenWidth = defaults.DefaultScreenWidth
	}
	if cfg.DefaultScreenHeight <= 0 {
		cfg.DefaultScreenHeight = defaults.DefaultScreenHeight
	}
	if cfg.CharWidthRatio <= 0 {
		cfg.CharWidthRatio = defaults.CharWidthRatio
	}
	if cfg.BaseFontSize <= 0 {
		cfg.BaseFontSize = defaults.BaseFontSize
	}
	if cfg.LineHeight <= 0 {
		cfg.LineHeight = defaults.LineHeight
	}
	return &Engine{
		logger: logger.Named("layout"),
		cfg:    cfg,
		text:   textMetrics{ratio: cfg.CharWidthRatio},
	}
}

// ComputeBounds lays out one screen from scratch and returns the absolute
// border box of every node in it. The screen root fills the screen unless it
// declares its own height or flex.
func (e *Engine) ComputeBounds(screen *schemas.Screen, tokens schemas.DesignTokens) schemas.BoundsMap {
	if screen == nil || screen.Root == nil {
		return schemas.BoundsMap{}
	}
	width, height := screen.Width, screen.Height
	if width <= 0 {
		width = e.cfg.DefaultScreenWidth
	}
	if height <= 0 {
		height = e.cfg.DefaultScreenHeight
	}

	resolver := style.NewResolver(tokens,
		style.WithTypography(e.cfg.BaseFontSize, e.cfg.LineHeight),
		style.WithLogger(e.logger))
	root := buildBox(resolver, screen.Root)
	if fillsScreen(screen.Root) {
		root.Style.FlexGrow = 1
	}

	// The viewport is a column that stretches its single child.
	viewport := &Box{
		Style:    style.Computed{Direction: style.FlexDirectionColumn, AlignItems: style.AlignStretch, FlexShrink: 1},
		Children: []*Box{root},
		Frame:    Rect{Width: width, Height: height},
	}
	e.layoutBox(viewport)

	bounds := make(schemas.BoundsMap, document.CountNodes(screen.Root))
	collectBounds(root, 0, 0, bounds)

	e.logger.Debug("Screen laid out.",
		zap.String("screen_id", screen.ID),
		zap.Int("nodes", len(bounds)),
		zap.Float64("width", width),
		zap.Float64("height", height))
	return bounds
}

func fillsScreen(root *schemas.ComponentNode) bool {
	l := root.Layout
	return l == nil || (l.Height == nil && l.Flex == nil && l.FlexGrow == nil)
}

// collectBounds converts parent-relative frames to absolute coordinates.
func collectBounds(b *Box, originX, originY float64, out schemas.BoundsMap) {
	abs := Rect{X: originX + b.Frame.X, Y: originY + b.Frame.Y, Width: b.Frame.Width, Height: b.Frame.Height}
	out[b.Node.ID] = toBounds(abs)
	for _, c := range b.Children {
		collectBounds(c, abs.X, abs.Y, out)
	}
}

// ComputeAll lays out every screen of spec. Screens are independent, so they
// are solved in parallel up to the configured concurrency. Cancellation is
// checked between screens.
func (e *Engine) ComputeAll(ctx context.Context, spec *schemas.DesignSpec) (map[string]schemas.BoundsMap, error) {
	if spec == nil {
		return nil, fmt.Errorf("compute layout: nil design spec")
	}

	g, groupCtx := errgroup.WithContext(ctx)
	g.SetLimit(e.cfg.Concurrency)

	var mu sync.Mutex
	results := make(map[string]schemas.BoundsMap, len(spec.Screens))

	for _, screen := range spec.Screens {
		if screen == nil {
			continue
		}
		g.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return fmt.Errorf("layout of screen %q cancelled: %w", screen.ID, err)
			}
			bounds := e.ComputeBounds(screen, spec.Tokens)
			mu.Lock()
			results[screen.ID] = bounds
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	e.logger.Info("Layout computed.", zap.String("spec_id", spec.ID), zap.Int("screens", len(results)))
	return results, nil
}
