package logging_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"cratemover/internal/logging"
)

func TestNew_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	log, err := logging.New("info", &buf)
	require.NoError(t, err)

	log.V(1).Info("hidden")
	log.Info("shown", "lanes", 3)
	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), "shown")
}

func TestNew_Debug(t *testing.T) {
	var buf bytes.Buffer
	log, err := logging.New("DEBUG", &buf)
	require.NoError(t, err)

	log.V(1).Info("per move")
	require.Contains(t, buf.String(), "per move")
}

func TestNew_UnknownLevel(t *testing.T) {
	_, err := logging.New("loud", &bytes.Buffer{})
	require.Error(t, err)
}
