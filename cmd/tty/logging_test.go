package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLoggingDiscardsByDefault(t *testing.T) {
	defer log.SetOutput(os.Stderr)

	f := setupLogging("")
	assert.Nil(t, f)
	assert.Equal(t, io.Discard, log.Writer())
}

func TestSetupLoggingWritesFile(t *testing.T) {
	defer log.SetOutput(os.Stderr)
	defer log.SetFlags(log.LstdFlags)

	path := filepath.Join(t.TempDir(), "game.log")
	f := setupLogging(path)
	require.NotNil(t, f)

	log.Print("wave started")
	require.NoError(t, f.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "wave started")
}
