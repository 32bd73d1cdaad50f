package errors_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/Crashthatch/openroutermodeltable/pkg/errors"
)

func TestNew(t *testing.T) {
	err := pkgerrors.New("test error")
	assert.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestAPIError(t *testing.T) {
	t.Run("with status code", func(t *testing.T) {
		err := &pkgerrors.APIError{
			Endpoint:   "/api/v1/models",
			StatusCode: 500,
			Message:    "internal server error",
		}
		assert.Equal(t, "API error from /api/v1/models (status 500): internal server error", err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrUnavailable))
	})

	t.Run("without status code", func(t *testing.T) {
		err := pkgerrors.NewAPIError("/api/frontend/stats/uptime-recent", 0, "connection refused")
		assert.Equal(t, "API error from /api/frontend/stats/uptime-recent: connection refused", err.Error())
	})

	t.Run("rate limited", func(t *testing.T) {
		err := &pkgerrors.APIError{Endpoint: "/api/v1/models", StatusCode: 429, Message: "slow down"}
		assert.True(t, pkgerrors.IsRateLimited(err))
		assert.False(t, errors.Is(err, pkgerrors.ErrUnavailable))
	})

	t.Run("unwrap", func(t *testing.T) {
		base := errors.New("dial tcp: timeout")
		err := pkgerrors.WrapAPI("/api/v1/models", 0, base)
		require.Error(t, err)
		assert.True(t, errors.Is(err, base))
	})
}

func TestParseError(t *testing.T) {
	t.Run("with source", func(t *testing.T) {
		err := pkgerrors.NewParseError("json", "models_data.json", "unexpected end of input", nil)
		assert.Equal(t, "parse error in json from models_data.json: unexpected end of input", err.Error())
	})

	t.Run("without source", func(t *testing.T) {
		err := &pkgerrors.ParseError{Format: "json", Message: "invalid character"}
		assert.Equal(t, "json parse error: invalid character", err.Error())
	})

	t.Run("wrap", func(t *testing.T) {
		base := errors.New("invalid character '<'")
		err := pkgerrors.WrapParse("json", "stats endpoint", base)
		require.Error(t, err)
		assert.True(t, errors.Is(err, base))
		assert.Contains(t, err.Error(), "stats endpoint")
	})

	t.Run("wrap nil", func(t *testing.T) {
		assert.NoError(t, pkgerrors.WrapParse("json", "anything", nil))
	})
}

func TestIOError(t *testing.T) {
	t.Run("with path", func(t *testing.T) {
		err := pkgerrors.NewIOError("write", "index.html", errors.New("disk full"))
		assert.Equal(t, "IO error during write of index.html: disk full", err.Error())
	})

	t.Run("without path", func(t *testing.T) {
		err := &pkgerrors.IOError{Operation: "read", Message: "closed pipe"}
		assert.Equal(t, "IO error during read: closed pipe", err.Error())
	})

	t.Run("wrap nil", func(t *testing.T) {
		assert.NoError(t, pkgerrors.WrapIO("write", "index.html", nil))
	})
}

func TestResourceError(t *testing.T) {
	t.Run("with id", func(t *testing.T) {
		err := pkgerrors.NewResourceError("fetch", "stats", "openai/gpt-4o", errors.New("boom"))
		assert.Equal(t, "failed to fetch stats openai/gpt-4o: boom", err.Error())
	})

	t.Run("without id", func(t *testing.T) {
		err := pkgerrors.WrapResource("load", "models", "", errors.New("no snapshot"))
		require.Error(t, err)
		assert.Equal(t, "failed to load models: no snapshot", err.Error())
	})
}

func TestAggregateError(t *testing.T) {
	base := errors.New("slice bounds out of range")
	err := &pkgerrors.AggregateError{Slug: "meta-llama/llama-3-70b", Err: base}
	assert.Contains(t, err.Error(), "meta-llama/llama-3-70b")
	assert.True(t, errors.Is(err, base))
}

func TestSentinelHelpers(t *testing.T) {
	assert.True(t, pkgerrors.IsAbsent(fmt.Errorf("series: %w", pkgerrors.ErrAbsent)))
	assert.True(t, pkgerrors.IsTimeout(pkgerrors.ErrTimeout))
	assert.True(t, pkgerrors.IsCanceled(pkgerrors.ErrCanceled))
	assert.True(t, pkgerrors.IsNotFound(pkgerrors.ErrNotFound))
	assert.False(t, pkgerrors.IsAbsent(errors.New("other")))
}

func TestConfigError(t *testing.T) {
	err := &pkgerrors.ConfigError{Component: "output", Message: "unknown format"}
	assert.Equal(t, "configuration error in output: unknown format", err.Error())

	err = &pkgerrors.ConfigError{Message: "bad config"}
	assert.Equal(t, "configuration error: bad config", err.Error())
}
