package telemetry_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/sde/internal/adapters/telemetry"
	"go.trai.ch/sde/internal/core/domain"
)

func TestNoOp_Record(t *testing.T) {
	rec := telemetry.NewNoOp()
	ctx := context.Background()

	gotCtx, vertex := rec.Record(ctx, "cache lookup")
	assert.Equal(t, ctx, gotCtx)
	assert.NotNil(t, vertex)

	vertex.Log(domain.LogLevelInfo, "ignored")
	vertex.Cached()
	vertex.Complete(errors.New("ignored"))

	var buf bytes.Buffer
	assert.NoError(t, rec.Report(&buf))
	assert.Empty(t, buf.String())
	assert.NoError(t, rec.Close())
}
