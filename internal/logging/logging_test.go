package logging_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wordgrid/internal/logging"
)

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New("debug", "json", &buf)
	logger.Debug("grid loaded", "width", 10)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "grid loaded", rec["msg"])
	assert.Equal(t, "DEBUG", rec["level"])
	assert.EqualValues(t, 10, rec["width"])
}

func TestNew_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New("warn", "text", &buf)
	logger.Info("hidden")
	assert.Empty(t, buf.String())
	logger.Warn("shown")
	assert.Contains(t, buf.String(), "msg=shown")
}

func TestValidate(t *testing.T) {
	assert.NoError(t, logging.Validate("info", "text"))
	assert.NoError(t, logging.Validate("DEBUG", "JSON"))
	assert.Error(t, logging.Validate("trace", "text"))
	assert.Error(t, logging.Validate("info", "yaml"))
}
