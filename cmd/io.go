// File: cmd/io.go
package cmd

import (
	"fmt"
	"io"
	"os"

	jsoniter "github.com/json-iterator/go"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"

	"github.com/xkilldash9x/mockup-cli/api/schemas"
	"github.com/xkilldash9x/mockup-cli/internal/config"
	"github.com/xkilldash9x/mockup-cli/internal/document"
	"github.com/xkilldash9x/mockup-cli/internal/schema"
)

var jsonOut = jsoniter.Config{
	EscapeHTML:  false,
	SortMapKeys: true,
}.Froze()

// readInput reads a file argument. "-" reads the command's stdin and paths
// starting with ~ are expanded.
func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	expanded, err := homedir.Expand(path)
	if err != nil {
		return nil, fmt.Errorf("failed to expand path %q: %w", path, err)
	}
	data, err := os.ReadFile(expanded)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}

// loadSpec reads, schema-checks and validates a document against the
// configured limits.
func loadSpec(cmd *cobra.Command, cfg config.Interface, path string) (*schemas.DesignSpec, error) {
	raw, err := readInput(cmd, path)
	if err != nil {
		return nil, err
	}
	spec, err := schema.DecodeSpec(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to load spec %s: %w", path, err)
	}
	if err := document.Validate(spec, document.Limits(cfg.Limits())); err != nil {
		return nil, fmt.Errorf("failed to load spec %s: %w", path, err)
	}
	return spec, nil
}

// withOutput calls fn with the command's stdout, or with a file created at
// path when one is given.
func withOutput(cmd *cobra.Command, path string, fn func(w io.Writer) error) error {
	if path == "" || path == "-" {
		return fn(cmd.OutOrStdout())
	}
	expanded, err := homedir.Expand(path)
	if err != nil {
		return fmt.Errorf("failed to expand path %q: %w", path, err)
	}
	f, err := os.Create(expanded)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := fn(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func writeJSON(w io.Writer, v any) error {
	data, err := jsonOut.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	_, err = fmt.Fprintf(w, "%s\n", data)
	return err
}

// findScreen returns the screen with the given id.
func findScreen(spec *schemas.DesignSpec, id string) (*schemas.Screen, error) {
	i, ok := document.FindScreen(spec, id)
	if !ok {
		return nil, fmt.Errorf("screen %q not found", id)
	}
	return spec.Screens[i], nil
}
