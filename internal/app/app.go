// Package app wires the scriptpipe components together: the type
// registry, the parameter store, the service registry, and the
// pre-execution pipeline, driven by the CLI configuration.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/vk/scriptpipe/internal/ctxlog"
	"github.com/vk/scriptpipe/internal/fsutil"
	"github.com/vk/scriptpipe/internal/inmemoryparams"
	"github.com/vk/scriptpipe/internal/paramstore"
	"github.com/vk/scriptpipe/internal/process"
	"github.com/vk/scriptpipe/internal/scriptinfo"
	"github.com/vk/scriptpipe/internal/scriptmodule"
	"github.com/vk/scriptpipe/internal/services"
	"github.com/vk/scriptpipe/internal/typereg"
	"github.com/vk/scriptpipe/internal/valuesfile"
	"github.com/zclconf/go-cty/cty"
)

// App encapsulates the application's dependencies, configuration, and
// lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	types    *typereg.Registry
	store    paramstore.Store
	services *services.Registry
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger, type registry,
// service registry, and an in-memory parameter store.
func NewApp(outW io.Writer, cfg *Config) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, outW)
	logger.Debug("Logger configured successfully.")

	return &App{
		outW:     outW,
		logger:   logger,
		types:    typereg.New(),
		store:    inmemoryparams.New(),
		services: services.New(),
	}
}

// Types returns the application's type registry, so embedders can add
// capsule types before Run.
func (a *App) Types() *typereg.Registry { return a.types }

// Services returns the application's service registry.
func (a *App) Services() *services.Registry { return a.services }

// Run extracts parameter metadata from every script named by the
// configuration, resolves each one through the pipeline, and prints a
// parameter report. It returns the first unresolved-input error
// encountered, after all scripts have been reported.
func (a *App) Run(ctx context.Context, cfg *Config) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)

	var provided map[string]cty.Value
	if cfg.ValuesPath != "" {
		var err error
		provided, err = valuesfile.Load(cfg.ValuesPath)
		if err != nil {
			return err
		}
		a.logger.Debug("Values file loaded.", "path", cfg.ValuesPath, "count", len(provided))
	}

	scripts, err := a.resolveScripts(cfg)
	if err != nil {
		return err
	}
	if len(scripts) == 0 {
		return fmt.Errorf("no scripts found under %s", cfg.ScriptPath)
	}

	runner := process.NewRunner(defaultStages(a.services, a.store, provided)...)

	var firstErr error
	for _, path := range scripts {
		if err := a.runScript(ctx, runner, path); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// resolveScripts expands the configured path into the list of script
// files to process.
func (a *App) resolveScripts(cfg *Config) ([]string, error) {
	stat, err := os.Stat(cfg.ScriptPath)
	if err != nil {
		return nil, fmt.Errorf("script path: %w", err)
	}
	if !stat.IsDir() {
		return []string{cfg.ScriptPath}, nil
	}
	if len(cfg.Extensions) == 0 {
		return nil, fmt.Errorf("%s is a directory; at least one -ext is required to scan it", cfg.ScriptPath)
	}
	return fsutil.FindScripts(cfg.ScriptPath, cfg.Extensions...)
}

// runScript extracts one script's metadata, runs the pipeline over a
// fresh module, and prints the parameter report.
func (a *App) runScript(ctx context.Context, runner *process.Runner, path string) error {
	info := scriptinfo.New(a.types, path)
	m := scriptmodule.New(info)

	fmt.Fprintf(a.outW, "script %s\n", path)
	if version := info.Version(ctx); version != "" {
		fmt.Fprintf(a.outW, "  version: %s\n", version)
	}

	runner.Run(ctx, m)

	if parseErr := info.ParseError(); parseErr != nil {
		// A parse failure yields a partial parameter set, not a crash.
		fmt.Fprintf(a.outW, "  warning: %v\n", parseErr)
	}

	fmt.Fprintln(a.outW, "  inputs:")
	for _, item := range info.Inputs(ctx) {
		state := "pending"
		if m.Resolved(item.Name) {
			state = "resolved"
		}
		fmt.Fprintf(a.outW, "    %s %s [%s] %s%s\n",
			item.Type.FriendlyName(), item.Name, state, formatValue(m, item.Name), requiredMark(item.Required))
	}
	fmt.Fprintln(a.outW, "  outputs:")
	for _, item := range info.Outputs(ctx) {
		fmt.Fprintf(a.outW, "    %s %s\n", item.Type.FriendlyName(), item.Name)
	}

	if err := m.RequireResolved(ctx); err != nil {
		fmt.Fprintf(a.outW, "  error: %v\n", err)
		return err
	}
	return nil
}

func formatValue(m *scriptmodule.Module, name string) string {
	val, ok := m.Value(name)
	if !ok {
		return "(unset)"
	}
	if val.Type().IsCapsuleType() {
		return "(service)"
	}
	return fmt.Sprintf("%v", val.GoString())
}

func requiredMark(required bool) string {
	if required {
		return " (required)"
	}
	return ""
}
