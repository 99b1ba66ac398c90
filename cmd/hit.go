// File: cmd/hit.go
package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/xkilldash9x/mockup-cli/internal/layout"
	"github.com/xkilldash9x/mockup-cli/internal/observability"
	"github.com/xkilldash9x/mockup-cli/internal/spatial"
)

func newHitCmd() *cobra.Command {
	var screenID string
	var x, y float64
	var all bool

	hitCmd := &cobra.Command{
		Use:   "hit <spec>",
		Short: "Find the node at a point on a screen",
		Long: `Lays out the screen and reports the topmost node containing the point, along
with its breadcrumb from the root. With --all every node under the point is
listed from the root down.`,
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
			screen, err := findScreen(spec, screenID)
			if err != nil {
				return err
			}
			bounds := layout.NewEngine(observability.GetLogger(), cfg.Layout()).ComputeBounds(screen, spec.Tokens)
			out := cmd.OutOrStdout()

			if all {
				for _, id := range spatial.HitTestAll(screen.Root, bounds, x, y) {
					if _, err := fmt.Fprintln(out, id); err != nil {
						return err
					}
				}
				return nil
			}

			id, ok := spatial.HitTest(screen.Root, bounds, x, y)
			if !ok {
				_, err := fmt.Fprintf(out, "no node at (%g, %g)\n", x, y)
				return err
			}
			crumbs, _ := spatial.Breadcrumb(screen.Root, id)
			path := make([]string, len(crumbs))
			for i, n := range crumbs {
				path[i] = n.ID
			}
			_, err = fmt.Fprintf(out, "%s\t%s\n", id, strings.Join(path, " > "))
			return err
		},
	}

	hitCmd.Flags().StringVarP(&screenID, "screen", "s", "", "Screen to query (required)")
	hitCmd.Flags().Float64Var(&x, "x", 0, "X coordinate in screen pixels")
	hitCmd.Flags().Float64Var(&y, "y", 0, "Y coordinate in screen pixels")
	hitCmd.Flags().BoolVar(&all, "all", false, "List every node under the point, root first")
	_ = hitCmd.MarkFlagRequired("screen")
	return hitCmd
}
