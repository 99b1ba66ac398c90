// File: cmd/validate.go
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/xkilldash9x/mockup-cli/internal/document"
	"github.com/xkilldash9x/mockup-cli/internal/observability"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <spec>",
		Short: "Check a design spec against the schema and the configured limits",
		Long: `Validates a design spec document. Every schema violation and every limit
violation is reported, not only the first. Use "-" to read from stdin.`,
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

			nodes := 0
			for _, screen := range spec.Screens {
				nodes += document.CountNodes(screen.Root)
			}
			observability.GetLogger().Info("Spec is valid",
				zap.String("spec_id", spec.ID),
				zap.Int("screens", len(spec.Screens)),
				zap.Int("nodes", nodes))
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s is valid: %d screen(s), %d node(s)\n", spec.ID, len(spec.Screens), nodes)
			return err
		},
	}
}
