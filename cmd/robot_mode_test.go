package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShouldAutoJSON(t *testing.T) {
	assert.True(t, shouldAutoJSON([]string{"recipes", "--query", "soup"}, false))
	assert.True(t, shouldAutoJSON([]string{"aisles"}, false))
	assert.False(t, shouldAutoJSON([]string{"recipes", "--json"}, false))
	assert.False(t, shouldAutoJSON([]string{"completion", "zsh"}, false))
	assert.False(t, shouldAutoJSON([]string{"--help"}, false))
	assert.False(t, shouldAutoJSON([]string{"export"}, false))
	assert.False(t, shouldAutoJSON([]string{"tui"}, false))
	assert.False(t, shouldAutoJSON([]string{"recipes"}, true))
}

func TestFirstCommand_SkipsFlagValues(t *testing.T) {
	cmd := firstCommand([]string{"--list", "/tmp/list.json", "aisles"})
	assert.Equal(t, "aisles", cmd)
}

func TestFirstCommand_SkipsShorthandValues(t *testing.T) {
	cmd := firstCommand([]string{"-q", "soup", "recipes"})
	assert.Equal(t, "recipes", cmd)
}

func TestPrintCLIErrorJSON(t *testing.T) {
	var buf bytes.Buffer
	err := printCLIErrorJSON(&buf, classifyCLIError(invalidArgsError("bad flag", "recifree recipes --query soup")))
	require.NoError(t, err)

	var payload map[string]any
	err = json.Unmarshal(buf.Bytes(), &payload)
	require.NoError(t, err)

	errorObject, ok := payload["error"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "INVALID_ARGS", errorObject["code"])
	assert.Equal(t, "bad flag", errorObject["message"])
	assert.Equal(t, float64(ExitInvalidArgs), errorObject["exitCode"])
}

func TestClassifyCLIError_NotFoundPhrases(t *testing.T) {
	for _, msg := range []string{
		"recipe \"nope\" is not in the recipe catalog",
		"item \"abc\" of recipe \"soup\" is not on the shopping list",
		"no recipes match your filters",
	} {
		classified := classifyCLIError(errors.New(msg))
		assert.Equal(t, "NOT_FOUND", classified.Code, msg)
		assert.Equal(t, ExitNotFound, classified.ExitCode, msg)
	}
}

func TestClassifyCLIError_DefaultsToInternal(t *testing.T) {
	classified := classifyCLIError(errors.New("something unexpected"))

	assert.Equal(t, "INTERNAL_ERROR", classified.Code)
	assert.Equal(t, ExitInternal, classified.ExitCode)
}
