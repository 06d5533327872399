package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/scriptpipe/internal/scriptmodule"
	"github.com/vk/scriptpipe/internal/testutil"
	"github.com/zclconf/go-cty/cty"
)

func testConfig(t *testing.T, scriptPath string) *Config {
	t.Helper()
	cfg, err := NewConfig(Config{ScriptPath: scriptPath, LogFormat: "text", LogLevel: "error"})
	require.NoError(t, err)
	return cfg
}

func TestNewConfigRequiresScriptPath(t *testing.T) {
	_, err := NewConfig(Config{})
	assert.Error(t, err)
}

func TestRunReportsSingleScript(t *testing.T) {
	path := testutil.TempScript(t, "greet.py", ""+
		"# @INPUT(value=\"world\", label=\"Name\") string name\n"+
		"# @OUTPUT string greeting\n"+
		"print('hello')\n")

	var out bytes.Buffer
	cfg := testConfig(t, path)
	app := NewApp(&out, cfg)

	require.NoError(t, app.Run(context.Background(), cfg))

	report := out.String()
	assert.Contains(t, report, "script "+path)
	assert.Contains(t, report, "version:")
	assert.Contains(t, report, "string name [resolved]")
	assert.Contains(t, report, "string greeting")
	assert.Contains(t, report, "result", "undeclared return value gets synthesized")
}

func TestRunAppliesValuesFile(t *testing.T) {
	script := testutil.TempScript(t, "count.py", "# @int count\n")
	valuesPath := testutil.TempScript(t, "values.hcl", "count = 42\n")

	var out bytes.Buffer
	cfg := testConfig(t, script)
	cfg.ValuesPath = valuesPath
	app := NewApp(&out, cfg)

	require.NoError(t, app.Run(context.Background(), cfg))
	assert.Contains(t, out.String(), "int count [resolved]")
}

func TestRunFailsOnUnresolvedRequiredInput(t *testing.T) {
	path := testutil.TempScript(t, "strict.py", "# @int count\n")

	var out bytes.Buffer
	cfg := testConfig(t, path)
	app := NewApp(&out, cfg)

	err := app.Run(context.Background(), cfg)
	var unresolved *scriptmodule.UnresolvedInputError
	require.ErrorAs(t, err, &unresolved)
	assert.Equal(t, []string{"count"}, unresolved.Names)
	assert.Contains(t, out.String(), "int count [pending]")
}

func TestRunAutoFillsRegisteredService(t *testing.T) {
	path := testutil.TempScript(t, "svc.py", "# @LogService log\n")

	type logService struct{ name string }

	var out bytes.Buffer
	cfg := testConfig(t, path)
	app := NewApp(&out, cfg)
	logType := app.Types().RegisterCapsule("LogService", reflect.TypeOf(logService{}))
	app.Services().Register("log", logType, cty.CapsuleVal(logType, &logService{name: "main"}))

	require.NoError(t, app.Run(context.Background(), cfg))
	assert.Contains(t, out.String(), "LogService log [resolved] (service)")
}

func TestRunDirectoryMode(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.py", "b.py"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("# @INPUT(value=1) int count\n"), 0o644))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("not a script"), 0o644))

	var out bytes.Buffer
	cfg := testConfig(t, dir)
	cfg.Extensions = []string{".py"}
	app := NewApp(&out, cfg)

	require.NoError(t, app.Run(context.Background(), cfg))
	report := out.String()
	assert.Contains(t, report, filepath.Join(dir, "a.py"))
	assert.Contains(t, report, filepath.Join(dir, "b.py"))
	assert.NotContains(t, report, "notes.txt")
}

func TestRunDirectoryModeRequiresExtensions(t *testing.T) {
	var out bytes.Buffer
	cfg := testConfig(t, t.TempDir())
	app := NewApp(&out, cfg)

	err := app.Run(context.Background(), cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "-ext")
}

func TestRunMissingScriptPath(t *testing.T) {
	var out bytes.Buffer
	cfg := testConfig(t, "/nonexistent/script.py")
	app := NewApp(&out, cfg)

	assert.Error(t, app.Run(context.Background(), cfg))
}

func TestRunReportsParseWarning(t *testing.T) {
	path := testutil.TempScript(t, "broken.py", ""+
		"# @INPUT(min=1, min=2) int count\n")

	var out bytes.Buffer
	cfg := testConfig(t, path)
	app := NewApp(&out, cfg)

	// Parse failure yields a partial parameter set, not a run failure.
	require.NoError(t, app.Run(context.Background(), cfg))
	assert.Contains(t, out.String(), "warning:")
}

func TestRunPersistsAcrossRuns(t *testing.T) {
	path := testutil.TempScript(t, "persisted.py", "# @INPUT(value=5) int count\n")

	var out bytes.Buffer
	cfg := testConfig(t, path)
	app := NewApp(&out, cfg)

	// First run resolves from the default and saves to the store; the
	// second run of the same App loads the saved value ahead of the
	// defaults stage.
	require.NoError(t, app.Run(context.Background(), cfg))
	require.NoError(t, app.Run(context.Background(), cfg))
	assert.Contains(t, out.String(), "int count [resolved]")
}
