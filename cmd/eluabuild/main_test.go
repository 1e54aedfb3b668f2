package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/ly1hex/elua/internal/app"
	"github.com/stretchr/testify/assert"
)

func TestRun_InitializationFailure(t *testing.T) {
	var stderr bytes.Buffer

	code := run(context.Background(), nil, &stderr, func(context.Context) (*app.Components, error) {
		return nil, errors.New("wiring failed")
	})

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "wiring failed")
}
