package installer

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/m-mizutani/goerr/v2"

	"wordless/internal/config"
	"wordless/internal/logger"
	"wordless/internal/state"
)

// DefaultDir is the directory `wp` installs into when none is given.
const DefaultDir = "wordpress"

// Reporter receives the user-facing messages of every step, classified by
// level. logger.Console is the terminal implementation.
type Reporter interface {
	Infof(format string, a ...any)
	Successf(format string, a ...any)
	Warnf(format string, a ...any)
	Errorf(format string, a ...any)
}

// WPOptions are the inputs of a single `wp` run.
type WPOptions struct {
	Dir    string // Target directory, DefaultDir when empty
	Locale string // WordPress locale, server default when empty
	Bare   bool   // Strip the bundled themes and plugins
}

// Orchestrator sequences the install steps into the user-facing operations.
// Each operation stops at the first failing step, reports it, and leaves any
// partial installation on disk; nothing is retried or rolled back.
type Orchestrator struct {
	cfg        config.Config
	httpClient *http.Client
	runner     Runner
	reporter   Reporter

	resolver    *VersionResolver
	downloader  *Downloader
	provisioner *RepoProvisioner
	scaffolder  *ThemeScaffolder
}

// Option configures an Orchestrator during construction.
type Option func(*Orchestrator)

// WithHTTPClient sets the client used for the version check and the download.
func WithHTTPClient(c *http.Client) Option {
	return func(o *Orchestrator) { o.httpClient = c }
}

// WithRunner replaces the process runner used for git and the theme generator.
func WithRunner(r Runner) Option {
	return func(o *Orchestrator) { o.runner = r }
}

// WithReporter replaces the destination of user-facing messages.
func WithReporter(r Reporter) Option {
	return func(o *Orchestrator) { o.reporter = r }
}

// New creates an Orchestrator for cfg. Defaults: http.DefaultClient,
// ExecRunner and logger.Console.
func New(cfg config.Config, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		cfg:        cfg,
		httpClient: http.DefaultClient,
		runner:     ExecRunner{},
		reporter:   logger.Console{},
	}
	for _, opt := range opts {
		opt(o)
	}
	o.resolver = NewVersionResolver(o.httpClient, cfg.VersionCheckURL, cfg.UserAgent)
	o.downloader = NewDownloader(o.httpClient, cfg.UserAgent)
	o.provisioner = NewRepoProvisioner(o.runner, cfg.Git.Binary)
	o.scaffolder = NewThemeScaffolder(o.runner, cfg.Theme.Generator, cfg.Theme.Script)
	return o
}

// WP downloads the latest WordPress into opts.Dir: resolve, download, extract,
// normalize, optionally strip, then initialize a git repository when enabled.
func (o *Orchestrator) WP(ctx context.Context, opts WPOptions) error {
	dir := opts.Dir
	if dir == "" {
		dir = DefaultDir
	}
	target := state.New(dir, o.cfg.ContentDir)

	// Taken before extraction so an archive without a wrapping directory
	// can be told apart from a site that was already there.
	before := target.Kind()
	if before == state.Root {
		o.reporter.Errorf("Directory \"%s\" already contains a WordPress installation.", dir)
		return goerr.New("target already holds a WordPress installation",
			goerr.T(TagPrecondition), goerr.V("dir", dir))
	}

	info, err := o.resolver.Resolve(ctx, opts.Locale)
	if err != nil {
		return o.fail("resolve the latest WordPress version", err)
	}
	o.reporter.Infof("Downloading WordPress %s (%s)...", info.Version, info.Locale)

	step := ""
	err = withTempArchive(o.cfg.TempDir, info.DownloadURL, func(f *os.File) error {
		if _, err := o.downloader.Download(ctx, info.DownloadURL, f); err != nil {
			step = "download WordPress"
			return err
		}
		if err := f.Close(); err != nil {
			step = "download WordPress"
			return goerr.Wrap(err, "failed to flush temporary archive", goerr.T(TagFilesystem))
		}
		if err := ExtractArchive(f.Name(), dir); err != nil {
			step = "extract WordPress"
			return err
		}
		return nil
	})
	if err != nil {
		if step == "" {
			step = "clean up the downloaded archive"
		}
		return o.fail(step, err)
	}

	res, err := NormalizeDir(target, before)
	if err != nil {
		return o.fail("normalize the WordPress directory", err)
	}
	if len(res.Skipped) > 0 {
		o.reporter.Warnf("The archive had several top-level directories; used \"%s\" and left %s in place.",
			res.Collapsed, strings.Join(res.Skipped, ", "))
	}
	o.reporter.Successf("Installed WordPress in directory \"%s\".", dir)

	if opts.Bare {
		if err := StripContent(target, o.cfg.StubFile); err != nil {
			return o.fail("remove default themes and plugins", err)
		}
		o.reporter.Successf("Removed default themes and plugins.")
	}

	if o.cfg.Git.Init {
		o.initRepository(ctx, dir)
	}
	return nil
}

// initRepository runs `git init` in dir. Problems are warnings: the
// installation itself is complete at this point.
func (o *Orchestrator) initRepository(ctx context.Context, dir string) {
	if err := requireTool(o.runner, o.cfg.Git.Binary); err != nil {
		o.reporter.Warnf("Didn't initialize git repository because git isn't installed.")
		return
	}
	if err := runTool(ctx, o.runner, dir, o.cfg.Git.Binary, "init"); err != nil {
		logger.Debug("[DEBUG] git init failed: %v\n", err)
		o.reporter.Warnf("Couldn't initialize git repository.")
		return
	}
	o.reporter.Successf("Initialized git repository.")
}

// Install provisions the configured plugin into the WordPress root at root.
func (o *Orchestrator) Install(ctx context.Context, root string) error {
	target := state.New(root, o.cfg.ContentDir)
	repo := PluginRepo{SourceURL: o.cfg.Plugin.Repo, TargetPath: o.cfg.Plugin.Path}

	if err := o.provisioner.Provision(ctx, target, repo); err != nil {
		switch {
		case IsToolMissing(err):
			o.reporter.Errorf("Git is not available. Please install git.")
		case IsPrecondition(err):
			o.reporter.Errorf("Directory '%s' not found. Make sure you're at the root level of a WordPress installation.",
				filepath.ToSlash(filepath.Join(o.cfg.ContentDir, "plugins")))
		default:
			o.reporter.Errorf("There was an error installing the %s plugin: %v", o.cfg.Plugin.Name, err)
		}
		return err
	}
	o.reporter.Successf("Installed %s plugin.", o.cfg.Plugin.Name)
	return nil
}

// Theme scaffolds a theme called name inside the WordPress root at root.
func (o *Orchestrator) Theme(ctx context.Context, root, name string) error {
	target := state.New(root, o.cfg.ContentDir)
	themes := filepath.ToSlash(filepath.Join(o.cfg.ContentDir, "themes"))

	if err := o.scaffolder.Scaffold(ctx, target, ThemeRequest{Name: name}); err != nil {
		switch {
		case IsPrecondition(err):
			o.reporter.Errorf("Directory '%s' not found. Make sure you're at the root level of a WordPress installation.", themes)
		case IsToolMissing(err):
			o.reporter.Errorf("Theme generator '%s' is not available: %v", o.generatorLine(), err)
		default:
			o.reporter.Errorf("Couldn't create %s theme: %v", o.cfg.Plugin.Name, err)
		}
		return err
	}
	o.reporter.Successf("Created a new %s theme in '%s/%s'", o.cfg.Plugin.Name, themes, name)
	return nil
}

// generatorLine renders the configured generator command for messages.
func (o *Orchestrator) generatorLine() string {
	parts := append([]string{}, o.cfg.Theme.Generator...)
	if o.cfg.Theme.Script != "" {
		parts = append(parts, o.cfg.Theme.Script)
	}
	return strings.Join(parts, " ")
}

// New runs wp (bare) into name, then install and theme inside it, stopping
// at the first step that fails.
func (o *Orchestrator) New(ctx context.Context, name, locale string) error {
	if err := o.WP(ctx, WPOptions{Dir: name, Locale: locale, Bare: true}); err != nil {
		o.reporter.Errorf("Stopped at step 'wp'; plugin and theme were not installed.")
		return err
	}
	if err := o.Install(ctx, name); err != nil {
		o.reporter.Errorf("Stopped at step 'install'; the partial installation in \"%s\" was left in place.", name)
		return err
	}
	if err := o.Theme(ctx, name, name); err != nil {
		o.reporter.Errorf("Stopped at step 'theme'; the partial installation in \"%s\" was left in place.", name)
		return err
	}
	return nil
}

// fail reports which step failed and returns err unchanged.
func (o *Orchestrator) fail(step string, err error) error {
	o.reporter.Errorf("Couldn't %s: %v", step, err)
	return err
}
