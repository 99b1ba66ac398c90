// File: cmd/layout.go
package cmd

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/xkilldash9x/mockup-cli/internal/layout"
	"github.com/xkilldash9x/mockup-cli/internal/observability"
)

func newLayoutCmd() *cobra.Command {
	var screenID string
	var outputPath string

	layoutCmd := &cobra.Command{
		Use:   "layout <spec>",
		Short: "Compute absolute bounds for every node",
		Long: `Runs the constraint layout engine and prints the bounds of every node as JSON.
With --screen only that screen is laid out; otherwise all screens are computed
in parallel and keyed by screen id.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := getConfigFromContext(cmd.Context())
			if err != nil {
				return err
			}
			spec, err := loadSpec(cmd, cfg, args[0])
			if err != nil {
				return err
			}
			engine := layout.NewEngine(observability.GetLogger(), cfg.Layout())

			if screenID != "" {
				screen, err := findScreen(spec, screenID)
				if err != nil {
					return err
				}
				bounds := engine.ComputeBounds(screen, spec.Tokens)
				return withOutput(cmd, outputPath, func(w io.Writer) error { return writeJSON(w, bounds) })
			}

			all, err := engine.ComputeAll(cmd.Context(), spec)
			if err != nil {
				return err
			}
			return withOutput(cmd, outputPath, func(w io.Writer) error { return writeJSON(w, all) })
		},
	}

	layoutCmd.Flags().StringVarP(&screenID, "screen", "s", "", "Lay out only this screen")
	layoutCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path. If unset, JSON is printed to stdout.")
	return layoutCmd
}
