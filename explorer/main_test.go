package main

import (
	"bytes"
	"strings"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bikeshare/session"
)

func TestInitLogger(t *testing.T) {
	require.NoError(t, InitLogger("debug"))
	assert.Equal(t, log.DebugLevel, log.GetLevel())

	assert.Error(t, InitLogger("verbose"))

	require.NoError(t, InitLogger("info"))
	assert.Equal(t, log.InfoLevel, log.GetLevel())
}

func TestCmd_Execute(t *testing.T) {
	var output bytes.Buffer
	Cmd.SetIn(strings.NewReader("New York\nday\nthursday\nno\nno\n"))
	Cmd.SetOut(&output)
	Cmd.SetArgs([]string{"--data-dir", "../dataset/testdata", "--log-level", "error"})

	require.NoError(t, Cmd.Execute())
	assert.Contains(t, output.String(), "Calculating User Stats...")
	assert.Contains(t, output.String(), session.ClosingMessage)
}
