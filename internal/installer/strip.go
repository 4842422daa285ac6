package installer

import (
	"os"
	"path/filepath"

	"github.com/m-mizutani/goerr/v2"

	"wordless/internal/logger"
	"wordless/internal/state"
)

// StripContent replaces the bundled default themes and plugins of target with
// empty directories holding only the stub file, so the web server has nothing
// to list. The stub is copied from <content>/<stubFile> of the fresh install;
// when it is missing nothing is deleted.
func StripContent(target state.Target, stubFile string) error {
	stub := filepath.Join(target.ContentPath(), stubFile)
	info, err := os.Stat(stub)
	if err != nil || info.IsDir() {
		return goerr.New("stub file not found in installation",
			goerr.T(TagStrip), goerr.T(TagPrecondition), goerr.V("stub", stub))
	}

	for _, dir := range []string{target.ThemesPath(), target.PluginsPath()} {
		logger.Debug("[DEBUG] Replacing %s with a stub-only directory\n", dir)
		if err := os.RemoveAll(dir); err != nil {
			return goerr.Wrap(err, "failed to remove default content",
				goerr.T(TagStrip), goerr.T(TagFilesystem), goerr.V("dir", dir))
		}
		if err := os.Mkdir(dir, 0755); err != nil {
			return goerr.Wrap(err, "failed to recreate directory",
				goerr.T(TagStrip), goerr.T(TagFilesystem), goerr.V("dir", dir))
		}
		if err := copyFile(stub, filepath.Join(dir, stubFile)); err != nil {
			return goerr.Wrap(err, "failed to copy stub file",
				goerr.T(TagStrip), goerr.T(TagFilesystem), goerr.V("dir", dir))
		}
	}
	return nil
}
