package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/sde/cmd/sde/commands"
	"go.trai.ch/sde/internal/app"
	"go.trai.ch/sde/internal/build"
	"go.trai.ch/sde/internal/core/domain"
)

type mockApp struct {
	classifyFunc  func(ctx context.Context, opts app.RunOptions) (*domain.ClassificationResult, error)
	existsFunc    func(ctx context.Context, name string) (bool, error)
	ancestorsFunc func(ctx context.Context, id domain.ID) (domain.AncestorChain, error)
}

func (m *mockApp) Classify(ctx context.Context, opts app.RunOptions) (*domain.ClassificationResult, error) {
	if m.classifyFunc != nil {
		return m.classifyFunc(ctx, opts)
	}
	return &domain.ClassificationResult{GroupIDs: domain.NewIDSet()}, nil
}

func (m *mockApp) Exists(ctx context.Context, name string) (bool, error) {
	if m.existsFunc != nil {
		return m.existsFunc(ctx, name)
	}
	return false, nil
}

func (m *mockApp) Ancestors(ctx context.Context, id domain.ID) (domain.AncestorChain, error) {
	if m.ancestorsFunc != nil {
		return m.ancestorsFunc(ctx, id)
	}
	return domain.AncestorChain{id}, nil
}

func (m *mockApp) CacheKey(identity string) string {
	return "key:" + identity
}

func loaderFor(a commands.Application, captured *app.BootstrapOptions) commands.Loader {
	return func(_ context.Context, opts app.BootstrapOptions) (commands.Application, error) {
		if captured != nil {
			*captured = opts
		}
		return a, nil
	}
}

func execute(t *testing.T, cli *commands.CLI, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs(args)
	err := cli.Execute(context.Background())
	return buf.String(), err
}

func TestCommands_Classify(t *testing.T) {
	t.Run("prints names one per line", func(t *testing.T) {
		var capturedOpts app.RunOptions
		mock := &mockApp{
			classifyFunc: func(_ context.Context, opts app.RunOptions) (*domain.ClassificationResult, error) {
				capturedOpts = opts
				return &domain.ClassificationResult{
					RootID:   4,
					GroupIDs: domain.NewIDSet(4, 10),
					Names:    []string{"SHUTTLE", "RIFTER"},
				}, nil
			},
		}

		out, err := execute(t, commands.New(loaderFor(mock, nil)), "classify")
		require.NoError(t, err)
		assert.Equal(t, "SHUTTLE\nRIFTER\n", out)
		assert.Nil(t, capturedOpts.RootID)
		assert.False(t, capturedOpts.SkipOverrides)
	})

	t.Run("wires flags correctly", func(t *testing.T) {
		var capturedOpts app.RunOptions
		var boot app.BootstrapOptions
		mock := &mockApp{
			classifyFunc: func(_ context.Context, opts app.RunOptions) (*domain.ClassificationResult, error) {
				capturedOpts = opts
				return &domain.ClassificationResult{GroupIDs: domain.NewIDSet(11, 10)}, nil
			},
		}

		out, err := execute(t, commands.New(loaderFor(mock, &boot)),
			"classify", "--root", "10", "--no-overrides", "--groups", "-c", "custom.yaml", "--verbose")
		require.NoError(t, err)

		require.NotNil(t, capturedOpts.RootID)
		assert.Equal(t, domain.ID(10), *capturedOpts.RootID)
		assert.True(t, capturedOpts.SkipOverrides)
		assert.Equal(t, "10\n11\n", out)
		assert.Equal(t, "custom.yaml", boot.ConfigPath)
		assert.True(t, boot.Verbose)
	})

	t.Run("returns error on classify failure", func(t *testing.T) {
		mock := &mockApp{
			classifyFunc: func(_ context.Context, _ app.RunOptions) (*domain.ClassificationResult, error) {
				return nil, domain.ErrCycleDetected
			},
		}

		_, err := execute(t, commands.New(loaderFor(mock, nil)), "classify")
		require.ErrorIs(t, err, domain.ErrCycleDetected)
	})

	t.Run("returns loader error", func(t *testing.T) {
		load := func(_ context.Context, _ app.BootstrapOptions) (commands.Application, error) {
			return nil, errors.New("bad config")
		}

		_, err := execute(t, commands.New(load), "classify")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "bad config")
	})
}

func TestCommands_Exists(t *testing.T) {
	var capturedName string
	mock := &mockApp{
		existsFunc: func(_ context.Context, name string) (bool, error) {
			capturedName = name
			return true, nil
		},
	}

	out, err := execute(t, commands.New(loaderFor(mock, nil)), "exists", "Rifter")
	require.NoError(t, err)
	assert.Equal(t, "Rifter", capturedName)
	assert.Equal(t, "true\n", out)
}

func TestCommands_Chain(t *testing.T) {
	mock := &mockApp{
		ancestorsFunc: func(_ context.Context, id domain.ID) (domain.AncestorChain, error) {
			return domain.AncestorChain{id, 10, 4}, nil
		},
	}

	out, err := execute(t, commands.New(loaderFor(mock, nil)), "chain", "11")
	require.NoError(t, err)
	assert.Equal(t, "11 -> 10 -> 4\n", out)

	_, err = execute(t, commands.New(loaderFor(mock, nil)), "chain", "eleven")
	require.Error(t, err)
}

func TestCommands_Key(t *testing.T) {
	out, err := execute(t, commands.New(loaderFor(&mockApp{}, nil)), "key", "sde/fsd/typeIDs.yaml")
	require.NoError(t, err)
	assert.Equal(t, "key:sde/fsd/typeIDs.yaml\n", out)
}

func TestCommands_Version(t *testing.T) {
	load := func(_ context.Context, _ app.BootstrapOptions) (commands.Application, error) {
		panic("version must not build the application")
	}

	out, err := execute(t, commands.New(load), "version")
	require.NoError(t, err)
	assert.Contains(t, out, build.Version)
	assert.Contains(t, out, build.Commit)
}
