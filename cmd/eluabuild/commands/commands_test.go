package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/ly1hex/elua/cmd/eluabuild/commands"
	"github.com/ly1hex/elua/internal/app"
	"github.com/ly1hex/elua/internal/build"
	"github.com/ly1hex/elua/internal/core/domain"
	"github.com/ly1hex/elua/internal/engine/builder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockApp struct {
	buildFunc   func(ctx context.Context, opts app.BuildOptions) error
	targetsFunc func() ([]app.TargetInfo, error)
}

func (m *mockApp) Build(ctx context.Context, opts app.BuildOptions) error {
	if m.buildFunc != nil {
		return m.buildFunc(ctx, opts)
	}
	return nil
}

func (m *mockApp) Targets() ([]app.TargetInfo, error) {
	if m.targetsFunc != nil {
		return m.targetsFunc()
	}
	return nil, nil
}

func (m *mockApp) OptionsHelp() string { return "" }

func (m *mockApp) Registry() *builder.Registry { return builder.NewRegistry() }

func TestCommands_Build(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var capturedOpts app.BuildOptions
		called := false

		mock := &mockApp{
			buildFunc: func(_ context.Context, opts app.BuildOptions) error {
				capturedOpts = opts
				called = true
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"build", "app", "--watch", "--build-mode", "build_dir"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.True(t, called)
		assert.True(t, capturedOpts.Watch)
		assert.False(t, capturedOpts.Clean)
		assert.Equal(t, "app", capturedOpts.Target)
		assert.Equal(t, map[string]string{"build_mode": "build_dir"}, capturedOpts.Options)
	})

	t.Run("unset flags are not passed as options", func(t *testing.T) {
		var capturedOpts app.BuildOptions
		mock := &mockApp{
			buildFunc: func(_ context.Context, opts app.BuildOptions) error {
				capturedOpts = opts
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"build"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Empty(t, capturedOpts.Options)
		assert.Empty(t, capturedOpts.Target)
	})

	t.Run("returns error on build failure", func(t *testing.T) {
		mock := &mockApp{
			buildFunc: func(_ context.Context, _ app.BuildOptions) error {
				return errors.New("simulated error")
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"build"})
		var out, errOut bytes.Buffer
		cli.SetOutput(&out, &errOut)

		err := cli.Execute(context.Background())
		require.Error(t, err)
	})
}

func TestCommands_Clean(t *testing.T) {
	var capturedOpts app.BuildOptions
	mock := &mockApp{
		buildFunc: func(_ context.Context, opts app.BuildOptions) error {
			capturedOpts = opts
			return nil
		},
	}

	cli := commands.New(mock)
	cli.SetArgs([]string{"clean", "app"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.True(t, capturedOpts.Clean)
	assert.Equal(t, "app", capturedOpts.Target)
}

func TestCommands_Targets(t *testing.T) {
	mock := &mockApp{
		targetsFunc: func() ([]app.TargetInfo, error) {
			return []app.TargetInfo{
				{Name: "app", Kind: domain.KindLink, Help: "build the firmware image"},
				{Name: "#phony_all", Kind: domain.KindPhony},
			}, nil
		},
	}

	cli := commands.New(mock)
	cli.SetArgs([]string{"targets"})
	var out, errOut bytes.Buffer
	cli.SetOutput(&out, &errOut)

	require.NoError(t, cli.Execute(context.Background()))
	assert.Contains(t, out.String(), "app - build the firmware image")
	assert.Contains(t, out.String(), "#phony_all")
}

func TestCommands_Version(t *testing.T) {
	cli := commands.New(&mockApp{})
	cli.SetArgs([]string{"version"})
	var out, errOut bytes.Buffer
	cli.SetOutput(&out, &errOut)

	require.NoError(t, cli.Execute(context.Background()))
	assert.Contains(t, out.String(), build.Version)
}
