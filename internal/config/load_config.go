package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	// EnvPrefix is prepended to every environment override, e.g. WORDLESS_PLUGIN_REPO.
	EnvPrefix = "WORDLESS"
	// FileName is the config file looked up in the working and home directories.
	FileName = ".wordless.yaml"
)

// LoadOptions defines explicit configuration loading inputs.
type LoadOptions struct {
	// FilePath forces loading from a specific config file when set.
	FilePath string
	// SearchDirs overrides the directories probed for FileName (working dir, then home).
	SearchDirs []string
}

// Load builds the effective configuration: defaults, then the YAML config file
// if one is found, then WORDLESS_* environment variables.
func Load(opts LoadOptions) (Config, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("version_check_url", defaults.VersionCheckURL)
	v.SetDefault("user_agent", defaults.UserAgent)
	v.SetDefault("content_dir", defaults.ContentDir)
	v.SetDefault("stub_file", defaults.StubFile)
	v.SetDefault("temp_dir", defaults.TempDir)
	v.SetDefault("plugin.name", defaults.Plugin.Name)
	v.SetDefault("plugin.repo", defaults.Plugin.Repo)
	v.SetDefault("plugin.path", defaults.Plugin.Path)
	v.SetDefault("git.binary", defaults.Git.Binary)
	v.SetDefault("git.init", defaults.Git.Init)
	v.SetDefault("theme.generator", defaults.Theme.Generator)
	v.SetDefault("theme.script", defaults.Theme.Script)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	path, err := resolveFile(opts)
	if err != nil {
		return Config{}, err
	}
	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	cfg.Theme.Script = resolveScript(cfg.Theme.Script, path)
	return cfg, nil
}

// Validate rejects configurations the installer cannot work with.
func (c Config) Validate() error {
	switch {
	case c.VersionCheckURL == "":
		return errors.New("version_check_url must not be empty")
	case c.ContentDir == "":
		return errors.New("content_dir must not be empty")
	case c.StubFile == "":
		return errors.New("stub_file must not be empty")
	case c.Plugin.Repo == "" || c.Plugin.Path == "":
		return errors.New("plugin.repo and plugin.path must not be empty")
	case c.Git.Binary == "":
		return errors.New("git.binary must not be empty")
	case len(c.Theme.Generator) == 0:
		return errors.New("theme.generator must name a command")
	}
	return nil
}

// YAML renders the configuration for `wordless config`.
func (c Config) YAML() ([]byte, error) {
	out, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return out, nil
}

// resolveFile returns the explicit file, or the first FileName found in the
// search directories, or "" when there is none.
func resolveFile(opts LoadOptions) (string, error) {
	if opts.FilePath != "" {
		if _, err := os.Stat(opts.FilePath); err != nil {
			return "", fmt.Errorf("config file not found: %s: %w", opts.FilePath, err)
		}
		return opts.FilePath, nil
	}

	dirs := opts.SearchDirs
	if dirs == nil {
		dirs = []string{"."}
		if home, err := os.UserHomeDir(); err == nil {
			dirs = append(dirs, home)
		}
	}
	for _, dir := range dirs {
		candidate := filepath.Join(dir, FileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}
	return "", nil
}

// resolveScript makes a relative generator script absolute: next to the
// config file when one was loaded, otherwise next to the running executable.
func resolveScript(script, configFile string) string {
	if script == "" || filepath.IsAbs(script) {
		return script
	}
	var base string
	if configFile != "" {
		base = filepath.Dir(configFile)
	} else if exe, err := os.Executable(); err == nil {
		base = filepath.Dir(exe)
	} else {
		return script
	}
	abs, err := filepath.Abs(filepath.Join(base, script))
	if err != nil {
		return filepath.Join(base, script)
	}
	return abs
}
