package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandsRegistered(t *testing.T) {
	for _, name := range []string{"backfill-codes", "seed"} {
		cmd, _, err := rootCmd.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, cmd.Name())
	}
}

func TestFlagDefaults(t *testing.T) {
	dryRun := backfillCmd.Flags().Lookup("dry-run")
	require.NotNil(t, dryRun)
	assert.Equal(t, "false", dryRun.DefValue)

	file := seedCmd.Flags().Lookup("file")
	require.NotNil(t, file)
	assert.Equal(t, "cities.yaml", file.DefValue)
	assert.Equal(t, "f", file.Shorthand)
}

func TestSeedFailsOnMissingFile(t *testing.T) {
	rootCmd.SetArgs([]string{"seed", "--file", t.TempDir() + "/missing.yaml"})
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open seed file")
}
