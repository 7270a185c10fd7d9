package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"gfxprof/internal/domain"
	"gfxprof/internal/gpu"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRootCmd_Structure tests the root command wiring
func TestRootCmd_Structure(t *testing.T) {
	assert.Equal(t, "gpuswitch", rootCmd.Use)
	assert.NotEmpty(t, rootCmd.Short)
	assert.True(t, rootCmd.SilenceUsage)
	assert.True(t, rootCmd.SilenceErrors)

	var names []string
	for _, c := range rootCmd.Commands() {
		names = append(names, c.Name())
	}
	assert.Contains(t, names, "nvidia")
	assert.Contains(t, names, "intel")
	assert.Contains(t, names, "toggle")
	assert.Contains(t, names, "status")
	assert.Contains(t, names, "history")
}

// TestRootCmd_BareInvocationShowsStatusAndUsage tests that no arguments succeed
func TestRootCmd_BareInvocationShowsStatusAndUsage(t *testing.T) {
	configDir = t.TempDir()
	dataDir = t.TempDir()
	t.Cleanup(func() { configDir, dataDir = "", "" })

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"--no-color"})

	err := rootCmd.Execute()
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Current GPU mode:")
	assert.Contains(t, buf.String(), "Usage:")
}

// TestRootCmd_UnknownCommand tests that an invalid command fails
func TestRootCmd_UnknownCommand(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"amd"})

	err := rootCmd.Execute()
	assert.Error(t, err)
}

// TestPowerDownFlag tests that intel and toggle both accept --powerdown/-p
func TestPowerDownFlag(t *testing.T) {
	for _, cmd := range []struct {
		name string
		has  func(string) bool
	}{
		{"intel", func(f string) bool { return intelCmd.Flags().Lookup(f) != nil }},
		{"toggle", func(f string) bool { return toggleCmd.Flags().Lookup(f) != nil }},
	} {
		assert.True(t, cmd.has("powerdown"), cmd.name)
	}
	assert.Equal(t, "p", intelCmd.Flags().Lookup("powerdown").Shorthand)
	assert.Equal(t, "p", toggleCmd.Flags().Lookup("powerdown").Shorthand)
}

// TestStatusCmd_RequiresNoPrivilege tests that status runs read-only
func TestStatusCmd_RequiresNoPrivilege(t *testing.T) {
	configDir = t.TempDir()
	t.Cleanup(func() { configDir = "" })

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"status", "--no-color"})

	err := rootCmd.Execute()
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Current GPU mode:")
	assert.Contains(t, buf.String(), "GPU power down:")
}

// TestHistoryCmd_EmptyLog tests history against a fresh data dir
func TestHistoryCmd_EmptyLog(t *testing.T) {
	configDir = t.TempDir()
	dataDir = t.TempDir()
	t.Cleanup(func() { configDir, dataDir = "", "" })

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"history"})

	err := rootCmd.Execute()
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "No switches recorded yet.")
}

// TestMutatingCmds_PrivilegeGate tests that unprivileged mutating commands
// fail before writing any file
func TestMutatingCmds_PrivilegeGate(t *testing.T) {
	origEuid := gpu.Geteuid
	gpu.Geteuid = func() int { return 1000 }
	t.Cleanup(func() { gpu.Geteuid = origEuid })

	configDir = t.TempDir()
	dataDir = t.TempDir()
	t.Cleanup(func() { configDir, dataDir = "", "" })

	// Point every managed path into a scratch dir so a write would be visible.
	targets := t.TempDir()
	cfgYAML := fmt.Sprintf(
		"xorg_conf: %[1]s/xorg.conf\nlightdm_script: %[1]s/nvidia.sh\nlightdm_conf: %[1]s/20-nvidia.conf\nudev_rules: %[1]s/00-remove-nvidia.rules\nstate_file: %[1]s/gpu-mode.state\n",
		targets)
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte(cfgYAML), 0644))

	for _, args := range [][]string{
		{"nvidia"},
		{"intel"},
		{"intel", "--powerdown"},
		{"toggle"},
	} {
		buf := new(bytes.Buffer)
		rootCmd.SetOut(buf)
		rootCmd.SetErr(buf)
		rootCmd.SetArgs(args)

		err := rootCmd.Execute()
		require.Error(t, err, args)
		assert.True(t, errors.Is(err, domain.ErrNotRoot), args)
	}

	entries, err := os.ReadDir(targets)
	require.NoError(t, err)
	assert.Empty(t, entries, "no managed file may be written without privilege")
	assert.NoFileExists(t, filepath.Join(dataDir, "gfxprof.db"), "no switch may be recorded without privilege")
}

// TestRecordSwitchAndHistory tests the record/list round trip
func TestRecordSwitchAndHistory(t *testing.T) {
	configDir = t.TempDir()
	dataDir = t.TempDir()
	t.Cleanup(func() { configDir, dataDir = "", "" })

	out := new(bytes.Buffer)
	recordSwitch(out, "intel", "nvidia", false)
	assert.NotContains(t, out.String(), "Warning:")

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"history"})

	err := rootCmd.Execute()
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "intel")
	assert.Contains(t, buf.String(), "nvidia")
	assert.Contains(t, buf.String(), "FROM")
}
