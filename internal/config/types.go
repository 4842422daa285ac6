package config

// Config is the top-level structure returned after loading defaults, the
// optional YAML file and WORDLESS_* environment overrides.
//   - VersionCheckURL: endpoint answering with the latest WordPress archive.
//   - ContentDir/StubFile: layout of a WordPress root (wp-content, index.php).
//   - Plugin: the git repository provisioned by `install`.
//   - Git/Theme: external tools invoked by the installer.
type Config struct {
	VersionCheckURL string `mapstructure:"version_check_url" yaml:"version_check_url"`
	UserAgent       string `mapstructure:"user_agent" yaml:"user_agent"`
	ContentDir      string `mapstructure:"content_dir" yaml:"content_dir"`
	StubFile        string `mapstructure:"stub_file" yaml:"stub_file"`
	TempDir         string `mapstructure:"temp_dir" yaml:"temp_dir,omitempty"`
	Plugin          Plugin `mapstructure:"plugin" yaml:"plugin"`
	Git             Git    `mapstructure:"git" yaml:"git"`
	Theme           Theme  `mapstructure:"theme" yaml:"theme"`
}

// Plugin describes the plugin installed by `install`.
// - Name: Display name used in messages.
// - Repo: Git URL cloned (or added as a submodule).
// - Path: Directory name under wp-content/plugins.
type Plugin struct {
	Name string `mapstructure:"name" yaml:"name"`
	Repo string `mapstructure:"repo" yaml:"repo"`
	Path string `mapstructure:"path" yaml:"path"`
}

// Git configures the version-control binary.
// - Binary: Executable looked up on PATH.
// - Init: Whether `wp` initializes a repository in the new installation.
type Git struct {
	Binary string `mapstructure:"binary" yaml:"binary"`
	Init   bool   `mapstructure:"init" yaml:"init"`
}

// Theme configures the external theme generator.
// - Generator: Command and its leading arguments, looked up on PATH.
// - Script: Generator script passed after them. A relative path is resolved
//   against the config file's directory, or the executable's when no file is loaded.
// The theme name is appended as the final argument.
type Theme struct {
	Generator []string `mapstructure:"generator" yaml:"generator"`
	Script    string   `mapstructure:"script" yaml:"script,omitempty"`
}

// DefaultConfig returns the configuration used when no file or environment
// override is present.
func DefaultConfig() Config {
	return Config{
		VersionCheckURL: "https://api.wordpress.org/core/version-check/1.5/",
		UserAgent:       "wordless-cli",
		ContentDir:      "wp-content",
		StubFile:        "index.php",
		Plugin: Plugin{
			Name: "Wordless",
			Repo: "https://github.com/welaika/wordless.git",
			Path: "wordless",
		},
		Git: Git{
			Binary: "git",
			Init:   true,
		},
		Theme: Theme{
			Generator: []string{"php"},
			Script:    "theme_builder.php",
		},
	}
}
