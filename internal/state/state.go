package state

import (
	"os"
	"path/filepath"
)

// Kind is the structural state of an installation target, inferred from disk.
type Kind int

const (
	// Absent means the directory does not exist.
	Absent Kind = iota
	// Fresh means the directory exists but is not shaped like a WordPress root.
	Fresh
	// Root means the directory holds <content>/plugins or <content>/themes.
	Root
)

func (k Kind) String() string {
	switch k {
	case Absent:
		return "absent"
	case Fresh:
		return "fresh"
	case Root:
		return "root"
	}
	return "unknown"
}

// Target is a directory that is, or will become, a WordPress installation.
// Its Kind is inspected on every call and never cached, since each install
// step changes the layout underneath it.
type Target struct {
	Dir        string // Installation directory, e.g. "mysite" or "."
	ContentDir string // Content directory name, normally "wp-content"
}

// New returns a Target for dir using contentDir as the content directory name.
func New(dir, contentDir string) Target {
	return Target{Dir: dir, ContentDir: contentDir}
}

// ContentPath returns <dir>/<content>.
func (t Target) ContentPath() string {
	return filepath.Join(t.Dir, t.ContentDir)
}

// PluginsPath returns <dir>/<content>/plugins.
func (t Target) PluginsPath() string {
	return filepath.Join(t.ContentPath(), "plugins")
}

// ThemesPath returns <dir>/<content>/themes.
func (t Target) ThemesPath() string {
	return filepath.Join(t.ContentPath(), "themes")
}

// Kind inspects the filesystem and reports the target's current state.
func (t Target) Kind() Kind {
	if !isDir(t.Dir) {
		return Absent
	}
	if isDir(t.PluginsPath()) || isDir(t.ThemesPath()) {
		return Root
	}
	return Fresh
}

// HasPlugins reports whether the plugins directory exists.
func (t Target) HasPlugins() bool { return isDir(t.PluginsPath()) }

// HasThemes reports whether the themes directory exists.
func (t Target) HasThemes() bool { return isDir(t.ThemesPath()) }

// IsGitWorkTree reports whether the directory itself carries a .git entry
// (a directory for repositories, a file for worktrees and submodules).
func (t Target) IsGitWorkTree() bool {
	_, err := os.Stat(filepath.Join(t.Dir, ".git"))
	return err == nil
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
