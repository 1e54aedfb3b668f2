package app_test

import (
	"context"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/ly1hex/elua/internal/adapters/config"
	"github.com/ly1hex/elua/internal/adapters/depfile"
	"github.com/ly1hex/elua/internal/adapters/fingerprint"
	"github.com/ly1hex/elua/internal/adapters/watcher"
	"github.com/ly1hex/elua/internal/app"
	"github.com/ly1hex/elua/internal/core/domain"
	"github.com/ly1hex/elua/internal/engine/builder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
)

// fakeExecutor records command lines and creates -o outputs.
type fakeExecutor struct {
	mu       sync.Mutex
	commands []string
}

func (f *fakeExecutor) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.commands)
}

func (f *fakeExecutor) Execute(_ context.Context, command string) error {
	f.mu.Lock()
	f.commands = append(f.commands, command)
	f.mu.Unlock()

	fields := strings.Fields(command)
	out := ""
	for i, p := range fields {
		if p == "-o" && i+1 < len(fields) {
			out = fields[i+1]
		}
	}
	if out == "" {
		return nil
	}
	if strings.Contains(command, "-MM") {
		source := fields[len(fields)-1]
		return os.WriteFile(out, []byte(source+".o: "+source+"\n"), 0o644)
	}
	return os.WriteFile(out, []byte(command), 0o644)
}

type nullLogger struct{}

func (nullLogger) Debug(string) {}
func (nullLogger) Info(string)  {}
func (nullLogger) Warn(string)  {}
func (nullLogger) Error(error)  {}

type nullRenderer struct{}

func (nullRenderer) Command(string)            {}
func (nullRenderer) Label(domain.Kind, string) {}
func (nullRenderer) UpToDate(string)           {}
func (nullRenderer) Removed(string, bool)      {}

const projectYAML = `
toolchain:
  compiler: cc
components:
  - name: app
    output: app
    sources: [src/a.c]
settings:
  disp_mode: summary
`

func setupApp(t *testing.T) (*app.App, *fakeExecutor) {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.MkdirAll("src", 0o750))
	require.NoError(t, os.WriteFile("src/a.c", []byte("int main(void){return 0;}\n"), 0o644))
	require.NoError(t, os.WriteFile("elua.yaml", []byte(projectYAML), 0o644))

	exec := &fakeExecutor{}
	engine := builder.New(
		exec,
		fingerprint.NewStore(),
		depfile.NewParser(),
		nullRenderer{},
		nullLogger{},
		tracenoop.NewTracerProvider().Tracer("test"),
	)
	return app.New(config.NewLoader(), engine, nil, nullLogger{}), exec
}

func TestApp_Build(t *testing.T) {
	a, exec := setupApp(t)

	require.NoError(t, a.Build(context.Background(), app.BuildOptions{}))

	// Dep pass, compile, link.
	require.Len(t, exec.commands, 3)
	assert.FileExists(t, "app")
}

func TestApp_Build_ExplicitTarget(t *testing.T) {
	a, exec := setupApp(t)

	require.NoError(t, a.Build(context.Background(), app.BuildOptions{Target: "app"}))
	require.Len(t, exec.commands, 3)
}

func TestApp_Build_UnknownTarget(t *testing.T) {
	a, _ := setupApp(t)

	err := a.Build(context.Background(), app.BuildOptions{Target: "nope"})
	require.ErrorIs(t, err, domain.ErrTargetNotFound)
}

func TestApp_Build_CLIOptionOverridesSettings(t *testing.T) {
	a, exec := setupApp(t)

	require.NoError(t, a.Build(context.Background(), app.BuildOptions{
		Options: map[string]string{"build_mode": "build_dir_linearized"},
	}))

	require.Len(t, exec.commands, 3)
	assert.FileExists(t, ".build/src__a.o")
}

func TestApp_Build_InvalidOption(t *testing.T) {
	a, _ := setupApp(t)

	err := a.Build(context.Background(), app.BuildOptions{
		Options: map[string]string{"disp_mode": "loud"},
	})
	require.ErrorIs(t, err, domain.ErrInvalidOptionValue)
}

func TestApp_Clean(t *testing.T) {
	a, _ := setupApp(t)
	require.NoError(t, a.Build(context.Background(), app.BuildOptions{}))
	require.FileExists(t, "app")

	require.NoError(t, a.Build(context.Background(), app.BuildOptions{Clean: true}))
	assert.NoFileExists(t, "app")
	assert.NoFileExists(t, "src/a.o")
	assert.NoFileExists(t, ".build/.builddata.comp")
}

func TestApp_WatchRebuildsOnChange(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.MkdirAll("src", 0o750))
	require.NoError(t, os.WriteFile("src/a.c", []byte("int main(void){return 0;}\n"), 0o644))
	require.NoError(t, os.WriteFile("elua.yaml", []byte(projectYAML), 0o644))

	exec := &fakeExecutor{}
	engine := builder.New(
		exec,
		fingerprint.NewStore(),
		depfile.NewParser(),
		nullRenderer{},
		nullLogger{},
		tracenoop.NewTracerProvider().Tracer("test"),
	)
	w, err := watcher.NewWatcher()
	require.NoError(t, err)
	a := app.New(config.NewLoader(), engine, w, nullLogger{})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- a.Build(ctx, app.BuildOptions{Watch: true})
	}()

	// The initial build runs three commands.
	require.Eventually(t, func() bool { return exec.count() == 3 }, 5*time.Second, 10*time.Millisecond)

	// A source change triggers a rebuild of the whole chain.
	future := time.Now().Add(time.Hour)
	require.NoError(t, os.WriteFile("src/a.c", []byte("int main(void){return 1;}\n"), 0o644))
	require.NoError(t, os.Chtimes("src/a.c", future, future))

	require.Eventually(t, func() bool { return exec.count() >= 6 }, 5*time.Second, 10*time.Millisecond)

	cancel()
	require.NoError(t, <-done)
}

func TestApp_Targets(t *testing.T) {
	a, _ := setupApp(t)

	infos, err := a.Targets()
	require.NoError(t, err)

	names := make([]string, 0, len(infos))
	for _, info := range infos {
		names = append(names, info.Name)
	}
	assert.Contains(t, names, "app")
	assert.Contains(t, names, app.AllTarget)
	assert.Contains(t, names, ".build/src__a.c.d")
	assert.Contains(t, names, "src/a.o")
}
