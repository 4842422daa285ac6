package installer

import (
	"context"
	"os"

	"github.com/m-mizutani/goerr/v2"

	"wordless/internal/state"
)

// ThemeRequest names the theme to scaffold.
type ThemeRequest struct {
	Name string
}

// ThemeScaffolder runs the external theme generator. It knows nothing about
// what the generator writes; only the exit status counts.
type ThemeScaffolder struct {
	runner    Runner
	generator []string // command followed by its leading arguments
	script    string   // absolute script path, "" for a self-contained command
}

// NewThemeScaffolder creates a scaffolder for the given generator command line
// and optional script.
func NewThemeScaffolder(runner Runner, generator []string, script string) *ThemeScaffolder {
	return &ThemeScaffolder{runner: runner, generator: generator, script: script}
}

// Scaffold requires target's themes directory, the generator command and its
// script, then runs the generator from the installation root with the theme
// name as its last argument.
func (s *ThemeScaffolder) Scaffold(ctx context.Context, target state.Target, req ThemeRequest) error {
	if !target.HasThemes() {
		return goerr.New("themes directory not found, not a WordPress installation root",
			goerr.T(TagPrecondition), goerr.V("dir", target.ThemesPath()))
	}
	if len(s.generator) == 0 {
		return goerr.New("no theme generator configured", goerr.T(TagToolMissing))
	}
	if err := requireTool(s.runner, s.generator[0]); err != nil {
		return err
	}

	args := append([]string{}, s.generator[1:]...)
	if s.script != "" {
		if info, err := os.Stat(s.script); err != nil || info.IsDir() {
			return goerr.New("theme generator script not found",
				goerr.T(TagToolMissing), goerr.V("script", s.script))
		}
		args = append(args, s.script)
	}
	args = append(args, req.Name)
	return runTool(ctx, s.runner, target.Dir, s.generator[0], args...)
}
