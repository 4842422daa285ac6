package installer

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/m-mizutani/goerr/v2"

	"wordless/internal/logger"
	"wordless/internal/state"
)

// NormalizeResult reports what NormalizeDir did.
type NormalizeResult struct {
	Collapsed string   // Name of the subdirectory whose children were moved up, "" for a no-op
	Skipped   []string // Other subdirectories left untouched, in name order
}

// NormalizeDir removes the extra top-level directory an archive wraps its
// payload in (usually "wordpress", but the name is not assumed). before is the
// target's Kind as observed before extraction.
//
// The visible subdirectory with the lexicographically smallest name is selected; any
// others are listed in Skipped so the caller can warn about them. Nothing is
// done when the target has no subdirectory or when a flat archive made it
// root-shaped. A target that was already a WordPress root is refused, since
// its own directories cannot be told apart from the archive's.
func NormalizeDir(target state.Target, before state.Kind) (NormalizeResult, error) {
	if before == state.Root {
		return NormalizeResult{}, goerr.New("target already holds a WordPress installation",
			goerr.T(TagPrecondition), goerr.V("dir", target.Dir))
	}
	if target.Kind() == state.Root {
		logger.Debug("[DEBUG] %s was extracted flat, skipping normalization\n", target.Dir)
		return NormalizeResult{}, nil
	}

	entries, err := os.ReadDir(target.Dir)
	if err != nil {
		return NormalizeResult{}, goerr.Wrap(err, "failed to read target directory",
			goerr.T(TagFilesystem), goerr.V("dir", target.Dir))
	}

	var subdirs []string
	for _, e := range entries {
		// Hidden directories (.git, .idea) never come from the archive.
		if e.IsDir() && !strings.HasPrefix(e.Name(), ".") {
			subdirs = append(subdirs, e.Name())
		}
	}
	if len(subdirs) == 0 {
		return NormalizeResult{}, nil
	}
	sort.Strings(subdirs)
	selected := subdirs[0]

	// Move the selected directory aside first: a child may share its name,
	// e.g. wordpress/wordpress.
	staging, err := os.MkdirTemp(target.Dir, ".normalize-*")
	if err != nil {
		return NormalizeResult{}, goerr.Wrap(err, "failed to create staging directory",
			goerr.T(TagFilesystem), goerr.V("dir", target.Dir))
	}
	payload := filepath.Join(staging, selected)
	if err := os.Rename(filepath.Join(target.Dir, selected), payload); err != nil {
		_ = os.Remove(staging)
		return NormalizeResult{}, goerr.Wrap(err, "failed to stage extracted directory",
			goerr.T(TagFilesystem), goerr.V("dir", selected))
	}

	children, err := os.ReadDir(payload)
	if err != nil {
		return NormalizeResult{}, goerr.Wrap(err, "failed to read extracted directory",
			goerr.T(TagFilesystem), goerr.V("dir", payload), goerr.V("staging", staging))
	}
	for _, child := range children {
		if _, err := os.Lstat(filepath.Join(target.Dir, child.Name())); err == nil {
			restoreErr := unstage(payload, filepath.Join(target.Dir, selected), staging)
			return NormalizeResult{}, goerr.New("cannot move entry, destination already exists",
				goerr.T(TagFilesystem), goerr.V("entry", child.Name()), goerr.V("dir", target.Dir),
				goerr.V("staging", staging), goerr.V("restore_error", restoreErr))
		}
	}
	for _, child := range children {
		from := filepath.Join(payload, child.Name())
		to := filepath.Join(target.Dir, child.Name())
		if err := os.Rename(from, to); err != nil {
			return NormalizeResult{}, goerr.Wrap(err, "failed to move entry",
				goerr.T(TagFilesystem), goerr.V("from", from), goerr.V("to", to), goerr.V("staging", staging))
		}
	}

	if err := os.RemoveAll(staging); err != nil {
		return NormalizeResult{}, goerr.Wrap(err, "failed to remove emptied directory",
			goerr.T(TagFilesystem), goerr.V("dir", staging))
	}

	logger.Debug("[DEBUG] Moved %d entries from %s up into %s\n", len(children), selected, target.Dir)
	return NormalizeResult{Collapsed: selected, Skipped: subdirs[1:]}, nil
}

// unstage moves payload back to its original path and drops the staging directory.
func unstage(payload, original, staging string) error {
	if err := os.Rename(payload, original); err != nil {
		return err
	}
	return os.Remove(staging)
}
