package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrSnakeDoc/klub/internal/seed"
	"github.com/MrSnakeDoc/klub/internal/store"
)

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "klub", cmd.Use)
	assert.NotNil(t, cmd.RunE, "root command serves by default")
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()

	for _, name := range []string{"serve", "seed", "purge"} {
		t.Run(name, func(t *testing.T) {
			sub, _, err := cmd.Find([]string{name})
			require.NoError(t, err)
			assert.Equal(t, name, sub.Name())
		})
	}
}

func TestSeedCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	seedCmd, _, err := cmd.Find([]string{"seed"})
	require.NoError(t, err)

	resetFlag := seedCmd.Flags().Lookup("reset")
	require.NotNil(t, resetFlag)
	assert.Equal(t, "false", resetFlag.DefValue)

	formatFlag := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, formatFlag)
	assert.Equal(t, "text", formatFlag.DefValue)
}

func TestFormatValidationIntegration(t *testing.T) {
	cmd := NewRootCommand()
	cmd.SetArgs([]string{"--format", "xml", "seed"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

func memoryEnv(t *testing.T) {
	t.Setenv("CLUB_STORE_BACKEND", "memory")
	t.Setenv("CLUB_LOG_LEVEL", "error")
	t.Setenv("CLUB_PRETTY_LOG", "false")
	t.Setenv("CLUB_SEED_FILE", "")
}

func TestSeedCommandText(t *testing.T) {
	memoryEnv(t)

	var out bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"seed"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "written (6)")
	assert.Contains(t, out.String(), store.KeyArticles)
	assert.Contains(t, out.String(), "kept (0)")
}

func TestSeedCommandJSON(t *testing.T) {
	memoryEnv(t)

	var out bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--format", "json", "seed", "--reset"})

	require.NoError(t, cmd.Execute())

	var res seed.Result
	require.NoError(t, json.Unmarshal(out.Bytes(), &res))
	assert.ElementsMatch(t, store.Keys(), res.Written)
	assert.Empty(t, res.Kept)
}

func TestPurgeCommand(t *testing.T) {
	memoryEnv(t)

	var out bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"purge"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "purged (6)\n", out.String())
}
