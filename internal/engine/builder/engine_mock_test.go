package builder_test

import (
	"context"
	"testing"

	"github.com/ly1hex/elua/internal/adapters/depfile"
	"github.com/ly1hex/elua/internal/core/domain"
	"github.com/ly1hex/elua/internal/core/ports/mocks"
	"github.com/ly1hex/elua/internal/engine/builder"
	"github.com/stretchr/testify/require"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/mock/gomock"
)

// TestBuild_GenericTemplateTarget drives a single template target through
// mocked collaborators and asserts the exact expanded command line.
func TestBuild_GenericTemplateTarget(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	ctrl := gomock.NewController(t)
	executor := mocks.NewMockExecutor(ctrl)
	store := mocks.NewMockFingerprintStore(ctrl)

	rend := &recordingRenderer{}
	eng := builder.New(
		executor,
		store,
		depfile.NewParser(),
		rend,
		&recordingLogger{},
		tracenoop.NewTracerProvider().Tracer("test"),
	)

	writeOld(t, "notes.txt", "notes")
	eng.NewTarget("notes.gz", domain.Template("gzip -c $(FIRST) > $(TARGET)"), domain.KindGeneric,
		domain.RawDeps("notes.txt")...)

	store.EXPECT().
		CompareAndStore(eng.BuildDir(), builder.ClassComp, gomock.Any()).
		Return(false, nil)
	executor.EXPECT().
		Execute(gomock.Any(), "gzip -c notes.txt > notes.gz").
		Return(nil)

	require.NoError(t, eng.Build(context.Background(), "notes.gz"))
}
