// Package app implements the application layer for eluabuild.
package app

import (
	"context"
	"strings"
	"time"

	"github.com/ly1hex/elua/internal/adapters/watcher"
	"github.com/ly1hex/elua/internal/core/domain"
	"github.com/ly1hex/elua/internal/core/ports"
	"github.com/ly1hex/elua/internal/engine/builder"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// AllTarget is the phony goal aggregating every component image.
const AllTarget = domain.PhonyPrefix + "_all"

// debounceWindow coalesces bursts of file events in watch mode.
const debounceWindow = 300 * time.Millisecond

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	engine       *builder.Engine
	watcher      ports.Watcher
	logger       ports.Logger
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	engine *builder.Engine,
	watch ports.Watcher,
	logger ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		engine:       engine,
		watcher:      watch,
		logger:       logger,
	}
}

// BuildOptions configures one build invocation.
type BuildOptions struct {
	// Target is the root target name; empty selects the all-components goal.
	Target string

	// Clean replaces every command with output removal.
	Clean bool

	// Watch keeps rebuilding on source changes after the first build.
	Watch bool

	// Options are raw engine option overrides from the CLI. They win over
	// the project file's settings section.
	Options map[string]string
}

// Build runs one build (or clean) pass for the requested target.
func (a *App) Build(ctx context.Context, opts BuildOptions) error {
	if opts.Watch && !opts.Clean {
		return a.watchLoop(ctx, opts)
	}
	return a.buildOnce(ctx, opts)
}

// buildOnce loads the project, wires the target graph and runs the engine.
// Wiring anew on every pass keeps a watch-mode rebuild identical to a fresh
// invocation: prior .d files are re-read and fingerprints re-compared.
func (a *App) buildOnce(ctx context.Context, opts BuildOptions) error {
	root, err := a.wire(opts)
	if err != nil {
		return err
	}
	if opts.Target != "" {
		root = opts.Target
	}
	if err := a.engine.Build(ctx, root); err != nil {
		return zerr.Wrap(err, "build execution failed")
	}
	return nil
}

// wire configures the engine from the project file and registers all
// targets. It returns the default root target name.
func (a *App) wire(opts BuildOptions) (string, error) {
	project, err := a.configLoader.Load(".")
	if err != nil {
		return "", zerr.Wrap(err, "failed to load project")
	}

	// Project settings first, CLI overrides second.
	for name, raw := range project.Settings {
		if err := a.engine.SetOption(name, raw); err != nil {
			return "", err
		}
	}
	for name, raw := range opts.Options {
		if err := a.engine.SetOption(name, raw); err != nil {
			return "", err
		}
	}
	a.engine.SetClean(opts.Clean)
	a.engine.SetToolchain(project.Toolchain)

	outputs := make([]string, 0, len(project.Components))
	for _, component := range project.Components {
		link, err := a.engine.MakeExeTarget(component)
		if err != nil {
			return "", err
		}
		outputs = append(outputs, link.Name)
	}
	a.engine.MakePhonyTarget(AllTarget, "build all components", domain.RawDeps(outputs...)...)

	return AllTarget, nil
}

// watchLoop builds, then rebuilds on every debounced batch of source
// changes until the context is cancelled. Builds stay strictly serial: a
// batch arriving mid-build coalesces into the next one.
func (a *App) watchLoop(ctx context.Context, opts BuildOptions) error {
	if err := a.buildOnce(ctx, opts); err != nil {
		// Watch mode keeps going after a failed build; the next change may
		// fix it.
		a.logger.Error(err)
	}

	if err := a.watcher.Start(ctx, "."); err != nil {
		return err
	}
	defer func() { _ = a.watcher.Close() }()

	rebuild := make(chan struct{}, 1)
	debounce := watcher.NewDebouncer(debounceWindow, func([]string) {
		select {
		case rebuild <- struct{}{}:
		default:
		}
	})

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case ev, ok := <-a.watcher.Events():
				if !ok {
					return nil
				}
				if a.ownOutput(ev.Path) {
					continue
				}
				debounce.Add(ev.Path)
			}
		}
	})

	g.Go(func() error {
		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-rebuild:
				a.logger.Info("change detected, rebuilding")
				if err := a.buildOnce(ctx, opts); err != nil {
					a.logger.Error(err)
				}
			}
		}
	})

	err := g.Wait()
	if err != nil && ctx.Err() != nil {
		// Cancellation is the normal way out of watch mode.
		return nil
	}
	return err
}

// ownOutput reports whether a changed path is produced by the build itself
// (a registered target or anything under the build directory). Reacting to
// those would loop forever.
func (a *App) ownOutput(path string) bool {
	norm := strings.TrimPrefix(domain.NormalizeName(path), "./")
	if a.engine.Registry().Lookup(norm) != nil {
		return true
	}
	dir := strings.TrimPrefix(domain.NormalizeName(a.engine.BuildDir()), "./")
	return dir != "" && (norm == dir || strings.HasPrefix(norm, dir+"/"))
}

// TargetInfo describes one registered target for listings.
type TargetInfo struct {
	Name string
	Kind domain.Kind
	Help string
}

// Targets loads and wires the project, then lists the registered targets.
func (a *App) Targets() ([]TargetInfo, error) {
	if _, err := a.wire(BuildOptions{}); err != nil {
		return nil, err
	}

	targets := a.engine.Registry().List()
	infos := make([]TargetInfo, 0, len(targets))
	for _, t := range targets {
		infos = append(infos, TargetInfo{Name: t.Name, Kind: t.Kind, Help: t.Help})
	}
	return infos, nil
}

// OptionsHelp renders the engine's option registry for error output.
func (a *App) OptionsHelp() string {
	return a.engine.Options().Help()
}

// Registry exposes the engine registry for debug dumps.
func (a *App) Registry() *builder.Registry {
	return a.engine.Registry()
}
