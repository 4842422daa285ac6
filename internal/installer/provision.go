package installer

import (
	"context"
	"path/filepath"

	"github.com/m-mizutani/goerr/v2"

	"wordless/internal/logger"
	"wordless/internal/state"
)

// PluginRepo describes a single git-backed plugin install.
type PluginRepo struct {
	SourceURL  string // Git URL of the plugin
	TargetPath string // Directory name under <content>/plugins
}

// RepoProvisioner installs a plugin by adding its git repository under the
// installation's plugin directory.
type RepoProvisioner struct {
	runner Runner
	git    string
}

// NewRepoProvisioner creates a provisioner that invokes the git binary named git.
func NewRepoProvisioner(runner Runner, git string) *RepoProvisioner {
	return &RepoProvisioner{runner: runner, git: git}
}

// Provision checks that git is installed and that target has a plugins
// directory, in that order, then clones repo into it. Inside a git work tree
// the repository is added as a submodule instead. A failed clone is left on
// disk for inspection.
func (p *RepoProvisioner) Provision(ctx context.Context, target state.Target, repo PluginRepo) error {
	if err := requireTool(p.runner, p.git); err != nil {
		return err
	}
	if !target.HasPlugins() {
		return goerr.New("plugins directory not found, not a WordPress installation root",
			goerr.T(TagPrecondition), goerr.V("dir", target.PluginsPath()))
	}

	// Relative to the root, so submodule paths are recorded portably.
	dest := filepath.ToSlash(filepath.Join(target.ContentDir, "plugins", repo.TargetPath))
	args := []string{"clone", repo.SourceURL, dest}
	if target.IsGitWorkTree() {
		args = []string{"submodule", "add", repo.SourceURL, dest}
	}
	logger.Debug("[DEBUG] Provisioning %s into %s\n", repo.SourceURL, dest)

	return runTool(ctx, p.runner, target.Dir, p.git, args...)
}
