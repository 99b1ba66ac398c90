// File: cmd/mockup/main_test.go
package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/xkilldash9x/mockup-cli/internal/config"
	"github.com/xkilldash9x/mockup-cli/internal/observability"
)

func TestMain(m *testing.M) {
	observability.Initialize(config.LoggerConfig{Level: "fatal", Format: "console"}, zapcore.AddSync(&bytes.Buffer{}))
	os.Exit(m.Run())
}

func resetMocks() {
	osWriteFile = os.WriteFile
	osExit = os.Exit
}

// -- Interactive Mode --

func TestRunInteractive(t *testing.T) {
	in := strings.NewReader("version\n\nbogus\nexit\nversion\n")
	var out, errOut bytes.Buffer

	require.NoError(t, runInteractive(context.Background(), in, &out, &errOut))

	assert.Equal(t, 1, strings.Count(out.String(), "mockup 0.1.0"), "commands after exit must not run")
	assert.Contains(t, out.String(), "Exiting mockup.")
	assert.Contains(t, errOut.String(), `unknown command "bogus"`)
}

func TestRunInteractive_EOF(t *testing.T) {
	var out, errOut bytes.Buffer
	require.NoError(t, runInteractive(context.Background(), strings.NewReader("version"), &out, &errOut))
	assert.Contains(t, out.String(), "mockup 0.1.0")
	assert.Empty(t, errOut.String())
}

// -- Panic Handling --

func TestHandlePanic(t *testing.T) {
	defer resetMocks()

	var written string
	osWriteFile = func(name string, data []byte, perm os.FileMode) error {
		assert.Equal(t, panicLogFile, name)
		written = string(data)
		return nil
	}
	exitCode := -1
	osExit = func(code int) { exitCode = code }

	func() {
		defer handlePanic()
		panic("layout exploded")
	}()

	assert.Equal(t, 2, exitCode)
	assert.True(t, strings.HasPrefix(written, "panic: layout exploded"))
	assert.Contains(t, written, "goroutine")
}

func TestHandlePanic_WriteFails(t *testing.T) {
	defer resetMocks()

	osWriteFile = func(string, []byte, os.FileMode) error { return errors.New("read-only fs") }
	exitCode := -1
	osExit = func(code int) { exitCode = code }

	func() {
		defer handlePanic()
		panic("boom")
	}()
	assert.Equal(t, 2, exitCode)
}

func TestHandlePanic_NoPanic(t *testing.T) {
	defer resetMocks()
	osExit = func(int) { t.Fatal("exit must not be called without a panic") }

	func() {
		defer handlePanic()
	}()
}
