package logger_test

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/dmitrymomot/browserkit/pkg/logger"

	"github.com/stretchr/testify/assert"
)

func TestErrorAttr(t *testing.T) {
	err := errors.New("boom")
	attr := logger.Error(err)
	assert.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	assert.True(t, logger.Error(nil).Equal(slog.Attr{}))
}

func TestErrorsAttr(t *testing.T) {
	first := errors.New("first")
	second := errors.New("second")

	attr := logger.Errors(first, nil, second)
	assert.Equal(t, "errors", attr.Key)
	assert.Len(t, attr.Value.Group(), 2)

	assert.True(t, logger.Errors(nil, nil).Equal(slog.Attr{}))
}

func TestGroupAttr(t *testing.T) {
	attr := logger.Group("req", slog.String("method", "GET"))
	assert.Equal(t, "req", attr.Key)
	assert.Len(t, attr.Value.Group(), 1)
}

func TestComponentAttr(t *testing.T) {
	attr := logger.Component("uafacts")
	assert.Equal(t, "component", attr.Key)
	assert.Equal(t, "uafacts", attr.Value.String())

	assert.True(t, logger.Component("").Equal(slog.Attr{}))
}
