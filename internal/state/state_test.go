package state

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
)

func TestTarget_Kind(t *testing.T) {
	testCases := []struct {
		name  string
		setup func(t *testing.T, dir string)
		want  Kind
	}{
		{
			name:  "missing directory",
			setup: func(t *testing.T, dir string) { gt.NoError(t, os.RemoveAll(dir)) },
			want:  Absent,
		},
		{
			name:  "empty directory",
			setup: func(t *testing.T, dir string) {},
			want:  Fresh,
		},
		{
			name: "content dir without plugins or themes",
			setup: func(t *testing.T, dir string) {
				gt.NoError(t, os.MkdirAll(filepath.Join(dir, "wp-content"), 0755))
			},
			want: Fresh,
		},
		{
			name: "plugins only",
			setup: func(t *testing.T, dir string) {
				gt.NoError(t, os.MkdirAll(filepath.Join(dir, "wp-content", "plugins"), 0755))
			},
			want: Root,
		},
		{
			name: "themes only",
			setup: func(t *testing.T, dir string) {
				gt.NoError(t, os.MkdirAll(filepath.Join(dir, "wp-content", "themes"), 0755))
			},
			want: Root,
		},
		{
			name: "themes is a file",
			setup: func(t *testing.T, dir string) {
				gt.NoError(t, os.MkdirAll(filepath.Join(dir, "wp-content"), 0755))
				gt.NoError(t, os.WriteFile(filepath.Join(dir, "wp-content", "themes"), nil, 0644))
			},
			want: Fresh,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			dir := filepath.Join(t.TempDir(), "site")
			gt.NoError(t, os.MkdirAll(dir, 0755))
			tc.setup(t, dir)

			gt.Equal(t, New(dir, "wp-content").Kind(), tc.want)
		})
	}
}

func TestTarget_KindIsNotCached(t *testing.T) {
	dir := t.TempDir()
	target := New(dir, "wp-content")
	gt.Equal(t, target.Kind(), Fresh)

	gt.NoError(t, os.MkdirAll(target.ThemesPath(), 0755))
	gt.Equal(t, target.Kind(), Root)
	gt.True(t, target.HasThemes())
	gt.False(t, target.HasPlugins())
}

func TestTarget_IsGitWorkTree(t *testing.T) {
	dir := t.TempDir()
	target := New(dir, "wp-content")
	gt.False(t, target.IsGitWorkTree())

	gt.NoError(t, os.Mkdir(filepath.Join(dir, ".git"), 0755))
	gt.True(t, target.IsGitWorkTree())
}
