package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dsmmcken/distman/internal/config"
	"github.com/dsmmcken/distman/internal/dist"
	"github.com/dsmmcken/distman/internal/output"
	"github.com/dsmmcken/distman/internal/platform"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execRoot(t *testing.T, stdin string, args ...string) (stdout string, err error) {
	t.Helper()
	t.Cleanup(func() {
		config.SetConfigDir("")
		output.SetFlags(false, false, false, false)
	})
	c := NewRootCmd()
	buf := new(bytes.Buffer)
	c.SetOut(buf)
	c.SetErr(buf)
	c.SetIn(strings.NewReader(stdin))
	c.SetArgs(args)
	err = c.Execute()
	return buf.String(), err
}

// newHome lays out a distman home with the given distributions installed
// and active as the active version.
func newHome(t *testing.T, active string, ids ...string) string {
	t.Helper()
	home := t.TempDir()
	for _, id := range ids {
		dir := filepath.Join(home, "dists", id)
		require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub"), 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("a"), 0o644))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "sub", "b.txt"), []byte("b"), 0o644))
	}
	if active != "" {
		require.NoError(t, config.WriteVersionFile(filepath.Join(home, "distribution-version"), active))
	}
	return home
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func TestVersion(t *testing.T) {
	out, err := execRoot(t, "", "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "distman v")
}

func TestHelpListsCommands(t *testing.T) {
	out, err := execRoot(t, "", "--help")
	require.NoError(t, err)
	for _, name := range []string{"remove", "list", "use", "clean-cache", "info", "config"} {
		assert.Contains(t, out, name)
	}
}

func TestVerboseQuietMutualExclusion(t *testing.T) {
	_, err := execRoot(t, "", "--verbose", "--quiet", "list")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")
	assert.Equal(t, output.ExitUsage, ExitCode(err))
}

func TestUsageErrorsPrintJSONEnvelope(t *testing.T) {
	for _, args := range [][]string{
		{"--json", "--verbose", "--quiet", "list"},
		{"--json", "remove", "--bogus", "dist-1.0.0"},
	} {
		out, err := execRoot(t, "", args...)
		require.Error(t, err, args)
		assert.Equal(t, output.ExitUsage, ExitCode(err))

		var got map[string]string
		require.NoError(t, json.Unmarshal([]byte(out), &got), out)
		assert.Equal(t, "usage", got["error"])
		assert.NotEmpty(t, got["message"])
	}
}

func TestUnknownFlagIsUsageError(t *testing.T) {
	_, err := execRoot(t, "", "remove", "--bogus", "dist-1.0.0")
	require.Error(t, err)
	assert.Equal(t, output.ExitUsage, ExitCode(err))
}

func TestRemoveSubcommandRegistered(t *testing.T) {
	root := NewRootCmd()

	var removeCmd *cobra.Command
	for _, c := range root.Commands() {
		if c.Name() == "remove" {
			removeCmd = c
			break
		}
	}
	require.NotNil(t, removeCmd)
	assert.NotNil(t, removeCmd.Flags().Lookup("force"))
	assert.Contains(t, removeCmd.Aliases, "rm")
}

func TestRemoveSucceeds(t *testing.T) {
	home := newHome(t, "2.0.0", "dist-1.0.0", "dist-2.0.0")

	out, err := execRoot(t, "", "--config-dir", home, "remove", "--force", "dist-1.0.0")
	require.NoError(t, err)
	assert.Contains(t, out, "Distribution 'dist-1.0.0' successfully removed")
	assert.False(t, exists(filepath.Join(home, "dists", "dist-1.0.0")))
	assert.True(t, exists(filepath.Join(home, "dists", "dist-2.0.0")))
}

func TestRemoveConfirmation(t *testing.T) {
	home := newHome(t, "", "dist-1.0.0")

	out, err := execRoot(t, "n\n", "--config-dir", home, "remove", "dist-1.0.0")
	require.NoError(t, err)
	assert.Contains(t, out, "Cancelled.")
	assert.True(t, exists(filepath.Join(home, "dists", "dist-1.0.0")))

	out, err = execRoot(t, "yes\n", "--config-dir", home, "remove", "dist-1.0.0")
	require.NoError(t, err)
	assert.Contains(t, out, "successfully removed")
	assert.False(t, exists(filepath.Join(home, "dists", "dist-1.0.0")))
}

func TestRemoveActiveProtected(t *testing.T) {
	home := newHome(t, "2.0.0", "dist-2.0.0")

	_, err := execRoot(t, "", "--config-dir", home, "remove", "--force", "dist-2.0.0")
	require.Error(t, err)
	assert.ErrorIs(t, err, dist.ErrActiveVersion)
	assert.Equal(t, output.ExitProtected, ExitCode(err))
	assert.True(t, exists(filepath.Join(home, "dists", "dist-2.0.0", "sub", "b.txt")))
}

func TestRemoveNotFound(t *testing.T) {
	home := newHome(t, "2.0.0")

	_, err := execRoot(t, "", "--config-dir", home, "remove", "--force", "dist-9.9.9")
	require.Error(t, err)
	assert.ErrorIs(t, err, dist.ErrNotFound)
	assert.Equal(t, output.ExitNotFound, ExitCode(err))
}

func TestRemoveUsageErrors(t *testing.T) {
	home := newHome(t, "")

	_, err := execRoot(t, "", "--config-dir", home, "remove")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUsage)
	assert.Contains(t, err.Error(), "a distribution is required")

	_, err = execRoot(t, "", "--config-dir", home, "remove", "a", "b")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUsage)
	assert.Contains(t, err.Error(), "too many arguments")
	assert.Equal(t, output.ExitUsage, ExitCode(err))
}

func TestRemoveJSON(t *testing.T) {
	home := newHome(t, "", "dist-1.0.0")

	out, err := execRoot(t, "", "--json", "--config-dir", home, "remove", "dist-1.0.0")
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "dist-1.0.0", got["id"])
	assert.Equal(t, "removed", got["status"])
}

func TestRemoveJSONErrorEnvelope(t *testing.T) {
	home := newHome(t, "2.0.0", "dist-2.0.0")

	out, err := execRoot(t, "", "--json", "--config-dir", home, "remove", "dist-2.0.0")
	require.Error(t, err)

	var got map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "active_distribution", got["error"])
}

func TestList(t *testing.T) {
	home := newHome(t, "2.0.0", "dist-1.0.0", "dist-2.0.0")

	out, err := execRoot(t, "", "--config-dir", home, "list")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "DISTRIBUTION")
	assert.Contains(t, lines[1], "dist-2.0.0")
	assert.Contains(t, lines[1], "*")
	assert.Contains(t, lines[2], "dist-1.0.0")
}

func TestListEmptyJSON(t *testing.T) {
	home := newHome(t, "")

	out, err := execRoot(t, "", "--json", "--config-dir", home, "list")
	require.NoError(t, err)

	var got struct {
		Installed []dist.Installed `json:"installed"`
		Active    string           `json:"active"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Empty(t, got.Installed)
	assert.Equal(t, "", got.Active)
}

func TestUseThenRemoveOldActive(t *testing.T) {
	home := newHome(t, "1.0.0", "dist-1.0.0", "dist-2.0.0")

	out, err := execRoot(t, "", "--config-dir", home, "use", "dist-2.0.0")
	require.NoError(t, err)
	assert.Contains(t, out, "Set active distribution to dist-2.0.0")

	_, err = execRoot(t, "", "--config-dir", home, "remove", "-f", "dist-1.0.0")
	require.NoError(t, err)

	_, err = execRoot(t, "", "--config-dir", home, "remove", "-f", "dist-2.0.0")
	assert.ErrorIs(t, err, dist.ErrActiveVersion)
}

func TestUseNotInstalled(t *testing.T) {
	home := newHome(t, "")

	_, err := execRoot(t, "", "--config-dir", home, "use", "dist-3.0.0")
	require.Error(t, err)
	assert.Equal(t, output.ExitNotFound, ExitCode(err))
}

func TestCleanCache(t *testing.T) {
	home := newHome(t, "")
	for _, dir := range []string{"bir_cache/mod", "jar_cache"} {
		require.NoError(t, os.MkdirAll(filepath.Join(home, dir), 0o755))
	}

	out, err := execRoot(t, "", "--config-dir", home, "clean-cache", "--bir")
	require.NoError(t, err)
	assert.Contains(t, out, "Cleared bir cache")
	assert.NotContains(t, out, "jar")
	assert.False(t, exists(filepath.Join(home, "bir_cache")))
	assert.True(t, exists(filepath.Join(home, "jar_cache")))

	out, err = execRoot(t, "", "--config-dir", home, "clean-cache")
	require.NoError(t, err)
	assert.Contains(t, out, "Cleared jar cache")
	assert.False(t, exists(filepath.Join(home, "jar_cache")))
}

func TestInfo(t *testing.T) {
	home := newHome(t, "2.0.0", "dist-2.0.0")
	orig := currentPlatform
	currentPlatform = func() platform.Platform { return platform.Windows }
	defer func() { currentPlatform = orig }()

	out, err := execRoot(t, "", "--json", "--config-dir", home, "info")
	require.NoError(t, err)

	var got map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "dist-2.0.0", got["active"])
	assert.Equal(t, "distman.bat", got["executable"])
	assert.Equal(t, "install.bat", got["install"])
	assert.Equal(t, "debug-adapter-launcher.bat", got["debug_adapter"])
	assert.Equal(t, "language-server-launcher.bat", got["lang_server"])
	assert.Equal(t, "win-64", got["platform"])
	assert.Equal(t, "dist/2.0.0 (win-64) Updater/"+Version, got["user_agent"])
}

func TestConfigSetChangesDistType(t *testing.T) {
	home := newHome(t, "")
	require.NoError(t, os.MkdirAll(filepath.Join(home, "dists", "jbal-1.0.0"), 0o755))
	require.NoError(t, config.WriteVersionFile(filepath.Join(home, "distribution-version"), "1.0.0"))

	_, err := execRoot(t, "", "--config-dir", home, "config", "set", "dist_type", "jbal")
	require.NoError(t, err)

	out, err := execRoot(t, "", "--config-dir", home, "config", "get", "dist_type")
	require.NoError(t, err)
	assert.Equal(t, "jbal\n", out)

	_, err = execRoot(t, "", "--config-dir", home, "remove", "-f", "jbal-1.0.0")
	assert.ErrorIs(t, err, dist.ErrActiveVersion)
}

func TestExitCodeDefault(t *testing.T) {
	assert.Equal(t, output.ExitSuccess, ExitCode(nil))
	assert.Equal(t, output.ExitError, ExitCode(os.ErrClosed))
}
