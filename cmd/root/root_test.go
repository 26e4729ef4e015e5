package root_test

import (
	"context"
	"testing"

	"fjacquet/nexus-classifier/cmd/root"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand_Metadata(t *testing.T) {
	assert.Equal(t, "nexus-classifier", root.Cmd.Use)
	assert.Contains(t, root.Cmd.Short, "legal-support messages")
	assert.Contains(t, root.Cmd.Long, "keyword engine")
	assert.NotNil(t, root.Cmd.Run)
	assert.NotNil(t, root.Cmd.PersistentPreRunE)
	assert.True(t, root.Cmd.SilenceUsage)
}

func TestRootCommand_Flags(t *testing.T) {
	root.Init()

	inputFlag := root.Cmd.PersistentFlags().Lookup("input")
	require.NotNil(t, inputFlag)
	assert.Equal(t, "i", inputFlag.Shorthand)

	outputFlag := root.Cmd.PersistentFlags().Lookup("output")
	require.NotNil(t, outputFlag)
	assert.Equal(t, "o", outputFlag.Shorthand)

	logLevelFlag := root.Cmd.PersistentFlags().Lookup("log-level")
	require.NotNil(t, logLevelFlag)
	assert.Equal(t, "", logLevelFlag.DefValue)

	assert.Equal(t, root.Version, root.Cmd.Version)
}

func TestSharedFlags_Defaults(t *testing.T) {
	assert.Equal(t, "", root.SharedFlags.Input)
	assert.Equal(t, "", root.SharedFlags.Output)
}

func TestNewContainer_RequiresConfig(t *testing.T) {
	original := root.AppConfig
	t.Cleanup(func() { root.AppConfig = original })
	root.AppConfig = nil

	c, err := root.NewContainer(context.Background())
	require.Error(t, err)
	assert.Nil(t, c)
	assert.Contains(t, err.Error(), "configuration not loaded")
}
