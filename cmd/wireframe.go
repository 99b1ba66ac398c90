// File: cmd/wireframe.go
package cmd

import (
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/xkilldash9x/mockup-cli/api/schemas"
	"github.com/xkilldash9x/mockup-cli/internal/layout"
	"github.com/xkilldash9x/mockup-cli/internal/observability"
	"github.com/xkilldash9x/mockup-cli/internal/spatial"
	"github.com/xkilldash9x/mockup-cli/internal/wireframe"
)

func newWireframeCmd() *cobra.Command {
	var screenID string
	var outputPath string
	var selected []string
	var hovered string

	wireCmd := &cobra.Command{
		Use:   "wireframe <spec>",
		Short: "Render a screen as an SVG wireframe",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := getConfigFromContext(cmd.Context())
			if err != nil {
				return err
			}
			spec, err := loadSpec(cmd, cfg, args[0])
			if err != nil {
				return err
			}
			screen, err := findScreen(spec, screenID)
			if err != nil {
				return err
			}
			bounds := layout.NewEngine(observability.GetLogger(), cfg.Layout()).ComputeBounds(screen, spec.Tokens)

			selection := schemas.SelectionState{SelectedNodeIDs: []string{}}
			for _, id := range selected {
				selection = spatial.Select(selection, id, true)
			}
			selection = spatial.Hover(selection, hovered)
			// Unknown ids are dropped rather than rejected.
			selection = spatial.Prune(selection, screen.Root)

			observability.GetLogger().Debug("Rendering wireframe",
				zap.String("screen", screen.ID),
				zap.Int("nodes", len(bounds)),
				zap.Strings("selected", selection.SelectedNodeIDs))
			return withOutput(cmd, outputPath, func(w io.Writer) error {
				return wireframe.Render(w, screen, bounds, selection)
			})
		},
	}

	wireCmd.Flags().StringVarP(&screenID, "screen", "s", "", "Screen to render (required)")
	wireCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output SVG path. If unset, the SVG is printed to stdout.")
	wireCmd.Flags().StringSliceVar(&selected, "select", nil, "Node ids to highlight as selected")
	wireCmd.Flags().StringVar(&hovered, "hover", "", "Node id to highlight as hovered")
	_ = wireCmd.MarkFlagRequired("screen")
	return wireCmd
}
