package zero_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rowsync/rowsync/pkg/logger/zero"
)

func TestFieldsReachZerolog(t *testing.T) {
	buffer := bytes.NewBuffer(nil)
	log := zero.New(buffer)

	log.Info("command failed", "id", 3, "label", "SELECT 1")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buffer.Bytes(), &line))
	assert.Equal(t, "command failed", line["message"])
	assert.Equal(t, float64(3), line["id"])
	assert.Equal(t, "SELECT 1", line["label"])
	assert.Contains(t, line, "time")
}

func TestOddTrailingArgIsDropped(t *testing.T) {
	buffer := bytes.NewBuffer(nil)
	log := zero.New(buffer)

	log.Warn("odd args", "id", 1, "dangling")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buffer.Bytes(), &line))
	assert.Equal(t, float64(1), line["id"])
	assert.NotContains(t, line, "dangling")
}
