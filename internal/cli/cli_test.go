package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/brandkit"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRootCmd_Structure(t *testing.T) {
	cmd := NewRootCmd()
	assert.Equal(t, "brandkit", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)

	for _, name := range []string{"logo", "assets-dir", "store-dir", "icons-only", "banners-only", "screenshots-only", "verbose"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), "flag %s", name)
	}
	assert.Equal(t, brandkit.DefaultLogoPath, cmd.Flags().Lookup("logo").DefValue)
	assert.Equal(t, brandkit.DefaultAssetsDir, cmd.Flags().Lookup("assets-dir").DefValue)
	assert.Equal(t, brandkit.DefaultStoreDir, cmd.Flags().Lookup("store-dir").DefValue)
}

func TestIconsOnly(t *testing.T) {
	root := t.TempDir()
	assets := filepath.Join(root, "assets")
	store := filepath.Join(root, "store")

	out, _, err := execute(t,
		"--logo", filepath.Join(root, "missing.png"),
		"--assets-dir", assets,
		"--store-dir", store,
		"--icons-only",
	)
	require.NoError(t, err)

	assert.Contains(t, out, "WARN")
	assert.Contains(t, out, "icon-16-square.png")
	assert.Contains(t, out, "icon.svg")
	assert.Contains(t, out, "12 artifact(s) written")

	assert.FileExists(t, filepath.Join(assets, "icons", "icon-512.png"))
	assert.FileExists(t, filepath.Join(assets, "icons", "icon.svg"))
	assert.NoDirExists(t, store)
}

func TestScreenshotsOnly(t *testing.T) {
	root := t.TempDir()
	store := filepath.Join(root, "store")

	out, _, err := execute(t,
		"--assets-dir", filepath.Join(root, "assets"),
		"--store-dir", store,
		"--screenshots-only",
	)
	require.NoError(t, err)

	assert.NotContains(t, out, "WARN")
	assert.Contains(t, out, "2 artifact(s) written")
	assert.FileExists(t, filepath.Join(store, "shared", "promotional-images", "popup-screenshot.png"))
	assert.FileExists(t, filepath.Join(store, "shared", "promotional-images", "options-screenshot.png"))
}

func TestModesAreExclusive(t *testing.T) {
	root := t.TempDir()
	_, _, err := execute(t,
		"--assets-dir", root,
		"--store-dir", root,
		"--icons-only", "--banners-only",
	)
	assert.Error(t, err)
}

func TestInvalidConfig(t *testing.T) {
	_, _, err := execute(t, "--assets-dir", "", "--screenshots-only")
	require.Error(t, err)
	assert.True(t, errors.Is(err, brandkit.ErrInvalidConfig))
}

func TestFailedArtifactsFailCommand(t *testing.T) {
	root := t.TempDir()
	assets := filepath.Join(root, "assets")
	require.NoError(t, os.MkdirAll(assets, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(assets, "icons"), nil, 0o600))

	out, _, err := execute(t,
		"--logo", filepath.Join(root, "missing.png"),
		"--assets-dir", assets,
		"--store-dir", filepath.Join(root, "store"),
		"--icons-only",
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "12 of 12 artifacts failed")
	assert.Contains(t, out, "FAIL")
	assert.Contains(t, out, "12 failed")
}

func TestVerboseLogsToStderr(t *testing.T) {
	root := t.TempDir()
	_, stderr, err := execute(t,
		"--assets-dir", filepath.Join(root, "assets"),
		"--store-dir", filepath.Join(root, "store"),
		"--screenshots-only",
		"--verbose",
	)
	require.NoError(t, err)
	assert.Contains(t, stderr, "artifact written")
	assert.Contains(t, stderr, "popup-screenshot.png")
}
