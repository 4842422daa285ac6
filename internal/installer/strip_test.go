package installer_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"

	"wordless/internal/installer"
	"wordless/internal/state"
)

func TestStripContent(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, []archiveEntry{
		{Name: "wp-content/index.php", Body: "<?php // Silence is golden."},
		{Name: "wp-content/plugins/akismet/akismet.php", Body: "<?php"},
		{Name: "wp-content/plugins/hello.php", Body: "<?php"},
		{Name: "wp-content/themes/twentytwentyfour/style.css", Body: "/* */"},
	})
	target := state.New(dir, "wp-content")

	gt.NoError(t, installer.StripContent(target, "index.php"))

	for _, sub := range []string{target.ThemesPath(), target.PluginsPath()} {
		gt.Equal(t, listDir(t, sub), []string{"index.php"})
		body, err := os.ReadFile(filepath.Join(sub, "index.php"))
		gt.NoError(t, err)
		gt.Equal(t, string(body), "<?php // Silence is golden.")
	}
}

func TestStripContent_MissingStubLeavesContent(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, []archiveEntry{
		{Name: "wp-content/plugins/hello.php", Body: "<?php"},
		{Name: "wp-content/themes/twentytwentyfour/style.css", Body: "/* */"},
	})
	target := state.New(dir, "wp-content")

	err := installer.StripContent(target, "index.php")
	gt.Error(t, err)
	gt.True(t, goerr.HasTag(err, installer.TagStrip))
	gt.Equal(t, listDir(t, target.PluginsPath()), []string{"hello.php"})
	gt.Equal(t, listDir(t, target.ThemesPath()), []string{"twentytwentyfour"})
}
