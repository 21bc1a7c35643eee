package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmd_Flags(t *testing.T) {
	cmd := newRootCmd()

	for _, name := range []string{"config", "prefs", "tick", "log"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), "flag --%s", name)
	}
}

func TestRootCmd_RejectsNegativeTick(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"--tick=-1"})

	err := cmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "--tick")
}

func TestRootCmd_RejectsArgs(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"extra"})

	assert.Error(t, cmd.Execute())
}
