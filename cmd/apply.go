// File: cmd/apply.go
package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/xkilldash9x/mockup-cli/internal/document"
	"github.com/xkilldash9x/mockup-cli/internal/history"
	"github.com/xkilldash9x/mockup-cli/internal/observability"
	"github.com/xkilldash9x/mockup-cli/internal/patch"
	"github.com/xkilldash9x/mockup-cli/internal/schema"
)

func newApplyCmd() *cobra.Command {
	var outputPath string
	var inversePath string
	var description string

	applyCmd := &cobra.Command{
		Use:   "apply <spec> <patches>",
		Short: "Apply a patch list to a design spec",
		Long: `Applies a JSON list of patches to a spec as a single atomic edit. If any patch
fails, nothing is written. The edited spec is printed (or written with -o), and
--inverse-out saves the patch group including the inverses that undo the edit.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := getConfigFromContext(cmd.Context())
			if err != nil {
				return err
			}
			logger := observability.GetLogger()

			spec, err := loadSpec(cmd, cfg, args[0])
			if err != nil {
				return err
			}
			raw, err := readInput(cmd, args[1])
			if err != nil {
				return err
			}
			patches, err := schema.DecodePatches(raw)
			if err != nil {
				return fmt.Errorf("failed to load patches %s: %w", args[1], err)
			}

			editor := history.NewEditor(logger, patch.NewEngine(logger), cfg.History(), spec)
			group, err := editor.Commit(description, patches)
			if err != nil {
				return err
			}
			edited := editor.Current()
			if err := document.Validate(edited, document.Limits(cfg.Limits())); err != nil {
				return fmt.Errorf("edited spec exceeds limits: %w", err)
			}

			logger.Info("Patches applied",
				zap.String("group_id", group.ID),
				zap.Int("patches", len(group.Patches)),
				zap.Int("version", edited.Version))

			if inversePath != "" {
				if err := withOutput(cmd, inversePath, func(w io.Writer) error { return writeJSON(w, group) }); err != nil {
					return err
				}
			}
			return withOutput(cmd, outputPath, func(w io.Writer) error { return writeJSON(w, edited) })
		},
	}

	applyCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path for the edited spec. If unset, it is printed to stdout.")
	applyCmd.Flags().StringVar(&inversePath, "inverse-out", "", "Write the applied patch group, with its inverses, to this file")
	applyCmd.Flags().StringVarP(&description, "message", "m", "apply", "Description recorded on the patch group")
	return applyCmd
}
