package serve_test

import (
	"testing"

	"fjacquet/nexus-classifier/cmd/serve"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServeCommand_Metadata(t *testing.T) {
	assert.Equal(t, "serve", serve.Cmd.Use)
	assert.Contains(t, serve.Cmd.Short, "HTTP API")
	assert.NotNil(t, serve.Cmd.RunE)
}

func TestServeCommand_LongDescription(t *testing.T) {
	assert.Contains(t, serve.Cmd.Long, "POST /classify")
	assert.Contains(t, serve.Cmd.Long, "GET  /health")
	assert.Contains(t, serve.Cmd.Long, "SIGTERM")
}

func TestServeCommand_Flags(t *testing.T) {
	addrFlag := serve.Cmd.Flags().Lookup("addr")
	require.NotNil(t, addrFlag)
	assert.Equal(t, "", addrFlag.DefValue)
}
