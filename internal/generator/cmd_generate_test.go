package generator

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SkyMack/resgen/internal/clibase"
	"github.com/SkyMack/resgen/internal/registry"
)

func TestGenerateCmd(t *testing.T) {
	srcDir := t.TempDir()
	iconPath := filepath.Join(srcDir, "icon.png")
	splashPath := filepath.Join(srcDir, "splash.png")
	writeSource(t, iconPath, registry.IconSourceEdge, registry.IconSourceEdge)
	writeSource(t, splashPath, registry.SplashSourceEdge, registry.SplashSourceEdge)

	t.Run("Runs through the command tree with short flags", func(t *testing.T) {
		outDir := t.TempDir()
		rootCmd := clibase.New("resgen-test", "test root")
		AddCmdGenerate(rootCmd)
		rootCmd.SetArgs([]string{
			"generate",
			"-i", iconPath,
			"-s", splashPath,
			"-p", "android",
			"-o", outDir,
		})

		require.NoError(t, rootCmd.Execute())
		assert.FileExists(t, filepath.Join(outDir, "android/icon/drawable-mdpi-icon.png"))
		assert.FileExists(t, filepath.Join(outDir, "android/splash/drawable-port-hdpi-screen.png"))
	})

	t.Run("Fails when the output directory does not exist", func(t *testing.T) {
		rootCmd := clibase.New("resgen-test", "test root")
		AddCmdGenerate(rootCmd)
		rootCmd.SetArgs([]string{
			"generate",
			"--icon", iconPath,
			"--splash", splashPath,
			"--platforms", "android",
			"--outputdir", filepath.Join(t.TempDir(), "missing"),
		})

		err := rootCmd.Execute()
		assert.ErrorIs(t, err, ErrorOutputDirNotFound)
	})
}
