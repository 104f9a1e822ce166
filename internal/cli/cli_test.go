package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/valvenet/internal/cli"
	"github.com/stretchr/testify/require"
)

func TestParse_Help(t *testing.T) {
	out := &bytes.Buffer{}
	cfg, exit, err := cli.Parse([]string{"-h"}, out)
	require.NoError(t, err)
	require.True(t, exit)
	require.Nil(t, cfg)
	require.Contains(t, out.String(), "Usage:")
}

func TestParse_NoInputPrintsUsage(t *testing.T) {
	out := &bytes.Buffer{}
	cfg, exit, err := cli.Parse(nil, out)
	require.NoError(t, err)
	require.True(t, exit)
	require.Nil(t, cfg)
	require.Contains(t, out.String(), "INPUT_PATH")
}

func TestParse_PositionalAndFlags(t *testing.T) {
	cfg, exit, err := cli.Parse([]string{
		"-budget", "26", "-overhead", "0", "-partition", "all", "-workers", "3",
		"-log-level", "DEBUG", "input.txt",
	}, &bytes.Buffer{})
	require.NoError(t, err)
	require.False(t, exit)
	require.Equal(t, "input.txt", cfg.Input)
	require.Equal(t, 26, cfg.Budget)
	require.Equal(t, 0, cfg.Overhead)
	require.Equal(t, "all", cfg.Partition)
	require.Equal(t, 3, cfg.Workers)
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, "AA", cfg.Start)
}

// TestParse_ConfigFileThenFlags checks that explicit flags win over the
// config file and the file wins over defaults.
func TestParse_ConfigFileThenFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte("input: from-file.txt\nbudget: 20\noverhead: 2\nmetrics: true\n"), 0o600))

	cfg, exit, err := cli.Parse([]string{"-config", path, "-budget", "24"}, &bytes.Buffer{})
	require.NoError(t, err)
	require.False(t, exit)
	require.Equal(t, "from-file.txt", cfg.Input)
	require.Equal(t, 24, cfg.Budget)
	require.Equal(t, 2, cfg.Overhead)
	require.True(t, cfg.Metrics)
}

func TestParse_Errors(t *testing.T) {
	cases := map[string][]string{
		"unknown flag":      {"-nope"},
		"bad log format":    {"-log-format", "xml", "in.txt"},
		"bad partition":     {"-partition", "thirds", "in.txt"},
		"overhead > budget": {"-budget", "3", "in.txt"},
		"missing config":    {"-config", filepath.Join(t.TempDir(), "none.toml"), "in.txt"},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			_, _, err := cli.Parse(args, &bytes.Buffer{})
			var exitErr *cli.ExitError
			require.ErrorAs(t, err, &exitErr)
			require.Equal(t, 2, exitErr.Code)
		})
	}
}
