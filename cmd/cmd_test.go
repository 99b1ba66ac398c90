// File: cmd/cmd_test.go
package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/xkilldash9x/mockup-cli/api/schemas"
	"github.com/xkilldash9x/mockup-cli/internal/config"
	"github.com/xkilldash9x/mockup-cli/internal/document"
	"github.com/xkilldash9x/mockup-cli/internal/observability"
	"github.com/xkilldash9x/mockup-cli/internal/testutil"
)

func TestMain(m *testing.M) {
	// A silent logger; later InitializeLogger calls are no-ops.
	observability.Initialize(config.LoggerConfig{Level: "fatal", Format: "console"}, zapcore.AddSync(&bytes.Buffer{}))
	os.Exit(m.Run())
}

// -- Helpers --

// run executes a fresh command tree and returns what it printed to stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCommand()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func writeSpec(t *testing.T, spec *schemas.DesignSpec) string {
	t.Helper()
	data, err := jsonOut.Marshal(spec)
	require.NoError(t, err)
	return writeFile(t, "spec.json", data)
}

// -- Root & Version --

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "mockup "+Version+"\n", out)

	out, err = run(t, "--version")
	require.NoError(t, err)
	assert.Equal(t, "mockup version "+Version+"\n", out)
}

func TestGetConfigFromContext_Missing(t *testing.T) {
	_, err := getConfigFromContext(context.Background())
	assert.EqualError(t, err, "configuration not found in context")
}

func TestInitializeConfig_BadFile(t *testing.T) {
	path := writeFile(t, "config.yaml", []byte("layout: [unclosed"))
	_, err := run(t, "--config", path, "version")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to initialize configuration")
}

// -- Validate --

func TestValidate(t *testing.T) {
	path := writeSpec(t, testutil.SampleSpec())
	out, err := run(t, "validate", path)
	require.NoError(t, err)
	assert.Equal(t, "spec-1 is valid: 2 screen(s), 11 node(s)\n", out)
}

func TestValidate_Stdin(t *testing.T) {
	data, err := jsonOut.Marshal(testutil.SampleSpec())
	require.NoError(t, err)

	root := NewRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetIn(bytes.NewReader(data))
	root.SetArgs([]string{"validate", "-"})
	require.NoError(t, root.ExecuteContext(context.Background()))
	assert.Contains(t, out.String(), "is valid")
}

func TestValidate_SchemaViolation(t *testing.T) {
	path := writeFile(t, "bad.json", []byte(`{"id":"x","name":"x","version":1,"screens":[{"id":"s"}]}`))
	_, err := run(t, "validate", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema validation")
}

func TestValidate_MissingFile(t *testing.T) {
	_, err := run(t, "validate", filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read")
}

func TestValidate_LimitsFromConfigFile(t *testing.T) {
	cfgPath := writeFile(t, "config.yaml", []byte("limits:\n  max_nodes_per_screen: 3\n"))
	path := writeSpec(t, testutil.SampleSpec())

	_, err := run(t, "--config", cfgPath, "validate", path)
	require.Error(t, err)
	var verr *document.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestValidate_LimitsFromEnv(t *testing.T) {
	t.Setenv("MOCKUP_LIMITS_MAX_SCREENS", "1")
	path := writeSpec(t, testutil.SampleSpec())

	_, err := run(t, "validate", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load spec")
}

func TestValidate_InvalidConfig(t *testing.T) {
	t.Setenv("MOCKUP_LAYOUT_CONCURRENCY", "0")
	_, err := run(t, "validate", writeSpec(t, testutil.SampleSpec()))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "concurrency must be a positive integer")
}

// -- Layout --

func TestLayout_Screen(t *testing.T) {
	path := writeSpec(t, testutil.SampleSpec())
	out, err := run(t, "layout", path, "--screen", "home")
	require.NoError(t, err)

	var bounds schemas.BoundsMap
	require.NoError(t, jsonOut.UnmarshalFromString(out, &bounds))
	assert.Len(t, bounds, 8)
	assert.Equal(t, schemas.Bounds{X: 0, Y: 0, Width: 375, Height: 812}, bounds["root"])
}

func TestLayout_AllScreensToFile(t *testing.T) {
	path := writeSpec(t, testutil.SampleSpec())
	outPath := filepath.Join(t.TempDir(), "bounds.json")

	out, err := run(t, "layout", path, "-o", outPath)
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	var all map[string]schemas.BoundsMap
	require.NoError(t, jsonOut.Unmarshal(data, &all))
	require.Contains(t, all, "home")
	require.Contains(t, all, "settings")
	assert.Len(t, all["settings"], 3)
}

func TestLayout_UnknownScreen(t *testing.T) {
	_, err := run(t, "layout", writeSpec(t, testutil.SampleSpec()), "--screen", "ghost")
	assert.EqualError(t, err, `screen "ghost" not found`)
}

// -- Apply --

func TestApply(t *testing.T) {
	specPath := writeSpec(t, testutil.SampleSpec())
	patchPath := writeFile(t, "patches.json", []byte(`[
		{"op":"add","target":"body","node":{"id":"extra","type":"Text","props":{"content":"hi"}}},
		{"op":"update","target":"cta","path":"props.label","value":"Next"}
	]`))
	inversePath := filepath.Join(t.TempDir(), "group.json")

	out, err := run(t, "apply", specPath, patchPath, "--inverse-out", inversePath, "-m", "add extra")
	require.NoError(t, err)

	var edited schemas.DesignSpec
	require.NoError(t, jsonOut.UnmarshalFromString(out, &edited))
	assert.Equal(t, 2, edited.Version)
	body, ok := document.FindNode(edited.Screens[0].Root, "body")
	require.True(t, ok)
	assert.Equal(t, []string{"card", "cta", "extra"}, testutil.ChildIDs(body))
	cta, ok := document.FindNode(edited.Screens[0].Root, "cta")
	require.True(t, ok)
	assert.Equal(t, "Next", cta.Props["label"])

	data, err := os.ReadFile(inversePath)
	require.NoError(t, err)
	var group schemas.PatchGroup
	require.NoError(t, jsonOut.Unmarshal(data, &group))
	assert.Equal(t, "add extra", group.Description)
	assert.Len(t, group.Patches, 2)
	require.Len(t, group.Inverses, 2)
	assert.Equal(t, schemas.OpUpdate, group.Inverses[0].Op)
	assert.Equal(t, "Continue", group.Inverses[0].Value)
	assert.Equal(t, schemas.Patch{Op: schemas.OpRemove, Target: "extra"}, group.Inverses[1])
}

func TestApply_Atomic(t *testing.T) {
	specPath := writeSpec(t, testutil.SampleSpec())
	patchPath := writeFile(t, "patches.json", []byte(`[
		{"op":"remove","target":"cta"},
		{"op":"remove","target":"ghost"}
	]`))
	outPath := filepath.Join(t.TempDir(), "out.json")

	_, err := run(t, "apply", specPath, patchPath, "-o", outPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `target "ghost" not found`)
	assert.NoFileExists(t, outPath)
}

func TestApply_BadPatchList(t *testing.T) {
	specPath := writeSpec(t, testutil.SampleSpec())
	patchPath := writeFile(t, "patches.json", []byte(`[{"op":"explode","target":"cta"}]`))

	_, err := run(t, "apply", specPath, patchPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load patches")
}

// -- Hit --

func TestHit(t *testing.T) {
	path := writeSpec(t, testutil.SampleSpec())

	out, err := run(t, "hit", path, "--screen", "home", "--x", "1", "--y", "1")
	require.NoError(t, err)
	fields := strings.Split(strings.TrimSpace(out), "\t")
	require.Len(t, fields, 2)
	assert.True(t, strings.HasPrefix(fields[1], "root"))
	assert.True(t, strings.HasSuffix(fields[1], fields[0]))

	out, err = run(t, "hit", path, "--screen", "home", "--x", "-5", "--y", "-5")
	require.NoError(t, err)
	assert.Equal(t, "no node at (-5, -5)\n", out)
}

func TestHit_All(t *testing.T) {
	path := writeSpec(t, testutil.SampleSpec())
	out, err := run(t, "hit", path, "--screen", "home", "--x", "1", "--y", "1", "--all")
	require.NoError(t, err)
	ids := strings.Fields(out)
	require.NotEmpty(t, ids)
	assert.Equal(t, "root", ids[0], "hits are listed root first")
}

func TestHit_RequiresScreen(t *testing.T) {
	_, err := run(t, "hit", writeSpec(t, testutil.SampleSpec()))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `required flag(s) "screen" not set`)
}

// -- Wireframe --

func TestWireframe(t *testing.T) {
	path := writeSpec(t, testutil.SampleSpec())
	out, err := run(t, "wireframe", path, "--screen", "settings", "--select", "save,ghost", "--hover", "toggle")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "<?xml"))
	assert.Contains(t, out, `data-node="save"`)
	assert.Contains(t, out, `data-node="toggle"`)
	assert.NotContains(t, out, "ghost")
}

func TestWireframe_ToFile(t *testing.T) {
	path := writeSpec(t, testutil.SampleSpec())
	svgPath := filepath.Join(t.TempDir(), "home.svg")

	_, err := run(t, "wireframe", path, "--screen", "home", "-o", svgPath)
	require.NoError(t, err)
	data, err := os.ReadFile(svgPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "</svg>")
}
