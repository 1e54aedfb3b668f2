// Package builder implements the incremental build engine: the target
// registry, the staleness traversal and the command-template machinery.
package builder

import (
	"context"
	"os"

	"github.com/ly1hex/elua/internal/core/domain"
	"github.com/ly1hex/elua/internal/core/ports"
	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/zerr"
)

// Fingerprinted component classes.
const (
	ClassComp = "comp"
	ClassLink = "link"
)

// CompConfig is the compile-class tool configuration. Its fields make up the
// "comp" fingerprint record.
type CompConfig struct {
	CompileCmd  string
	AssembleCmd string
	CDepCmd     string
	AsmDepCmd   string
	ObjExt      string
}

func (c CompConfig) fields() map[string]string {
	return map[string]string{
		"ccmd":   c.CompileCmd,
		"acmd":   c.AssembleCmd,
		"cdcmd":  c.CDepCmd,
		"adcmd":  c.AsmDepCmd,
		"objext": c.ObjExt,
	}
}

// LinkConfig is the link-class tool configuration, fingerprinted as "link".
type LinkConfig struct {
	LinkCmd string
}

func (c LinkConfig) fields() map[string]string {
	return map[string]string{
		"lcmd": c.LinkCmd,
	}
}

// Engine is the top-level build driver. All run-scoped mutable state
// (registry, memoization, dep results, force flags) lives here; nothing is
// process global.
type Engine struct {
	executor ports.Executor
	store    ports.FingerprintStore
	parser   ports.DepFileParser
	renderer ports.Renderer
	logger   ports.Logger
	tracer   trace.Tracer

	opts     *domain.Options
	registry *Registry

	comp CompConfig
	link LinkConfig

	cleanMode          bool
	globalForceRebuild bool
	outputDirCreated   bool

	alreadyRun map[string]bool
	visiting   map[string]bool
	depResults map[string][]string
}

// New creates an Engine and registers the built-in configuration options.
func New(
	executor ports.Executor,
	store ports.FingerprintStore,
	parser ports.DepFileParser,
	renderer ports.Renderer,
	logger ports.Logger,
	tracer trace.Tracer,
) *Engine {
	opts := domain.NewOptions()

	// Registration of the built-ins cannot fail: the defaults are members of
	// their own value sets.
	_ = opts.Register(domain.ChoiceMapOption("build_mode", "object file placement", map[string]any{
		string(domain.BuildModeKeepDir):    domain.BuildModeKeepDir,
		string(domain.BuildModeBuildDir):   domain.BuildModeBuildDir,
		string(domain.BuildModeLinearized): domain.BuildModeLinearized,
	}, string(domain.BuildModeKeepDir)))
	_ = opts.Register(domain.StringOption("build_dir", "build output directory", domain.DefaultBuildDir))
	_ = opts.Register(domain.ChoiceOption("disp_mode", "display mode", []string{
		string(domain.DispModeAll),
		string(domain.DispModeSummary),
	}, string(domain.DispModeSummary)))

	return &Engine{
		executor:   executor,
		store:      store,
		parser:     parser,
		renderer:   renderer,
		logger:     logger,
		tracer:     tracer,
		opts:       opts,
		registry:   NewRegistry(),
		alreadyRun: make(map[string]bool),
		visiting:   make(map[string]bool),
		depResults: make(map[string][]string),
	}
}

// Options exposes the configuration-option registry consumed by the CLI.
func (e *Engine) Options() *domain.Options {
	return e.opts
}

// SetOption validates and applies a raw option value.
func (e *Engine) SetOption(name, raw string) error {
	return e.opts.Set(name, raw)
}

// Registry exposes the target registry.
func (e *Engine) Registry() *Registry {
	return e.registry
}

// SetClean switches the engine into or out of clean mode.
func (e *Engine) SetClean(clean bool) {
	e.cleanMode = clean
}

// BuildDir returns the configured output directory.
func (e *Engine) BuildDir() string {
	return e.opts.String("build_dir")
}

// BuildMode returns the configured object placement mode.
func (e *Engine) BuildMode() domain.BuildMode {
	mode, _ := e.opts.Get("build_mode").(domain.BuildMode)
	if mode == "" {
		mode = domain.BuildModeKeepDir
	}
	return mode
}

// DispMode returns the configured display mode.
func (e *Engine) DispMode() domain.DispMode {
	return domain.DispMode(e.opts.String("disp_mode"))
}

// NewTarget constructs a target, registers it and returns it. The command
// must not be changed after construction.
func (e *Engine) NewTarget(name string, command domain.Command, kind domain.Kind, deps ...domain.Dep) *domain.Target {
	t := &domain.Target{
		Name:    domain.NormalizeName(name),
		Kind:    kind,
		Command: command,
		RawDeps: deps,
	}
	e.registry.Register(t)
	return t
}

// Build runs the staleness traversal from the named root target. Each call
// is a fresh run: the memoization set and the dep-result map start empty.
func (e *Engine) Build(ctx context.Context, name string) error {
	e.alreadyRun = make(map[string]bool)
	e.visiting = make(map[string]bool)
	e.depResults = make(map[string][]string)
	e.globalForceRebuild = false

	if err := e.ensureBuildDir(); err != nil {
		return err
	}

	if !e.cleanMode {
		changed, err := e.store.CompareAndStore(e.BuildDir(), ClassComp, e.comp.fields())
		if err != nil {
			return err
		}
		if changed {
			e.logger.Info("Forcing rebuild due to configuration change")
			e.globalForceRebuild = true
		}
	}

	root := e.registry.Lookup(name)
	if root == nil {
		return zerr.With(domain.ErrTargetNotFound, "target", name)
	}

	stale, err := e.buildTarget(ctx, root)
	if err != nil {
		return err
	}

	if e.cleanMode {
		if err := e.store.Remove(e.BuildDir(), ClassComp); err != nil {
			return err
		}
		return e.store.Remove(e.BuildDir(), ClassLink)
	}

	if !stale {
		e.renderer.UpToDate(root.Name)
	}
	return nil
}

// ensureBuildDir creates the output directory once per engine lifetime.
func (e *Engine) ensureBuildDir() error {
	if e.outputDirCreated {
		return nil
	}
	if err := os.MkdirAll(e.BuildDir(), domain.DirPerm); err != nil {
		return zerr.With(domain.ErrBuildDirCreateFailed, "dir", e.BuildDir())
	}
	e.outputDirCreated = true
	return nil
}
