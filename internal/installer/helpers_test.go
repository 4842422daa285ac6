package installer_test

import (
	"archive/tar"
	"archive/zip"
	"bytes"
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"

	"wordless/internal/installer"
)

// archiveEntry is a file (or, with a trailing slash, a directory) to pack.
type archiveEntry struct {
	Name string
	Body string
}

// wordpressPayload mirrors the top of a real WordPress archive.
var wordpressPayload = []archiveEntry{
	{Name: "wordpress/"},
	{Name: "wordpress/index.php", Body: "<?php // front controller"},
	{Name: "wordpress/wp-admin/index.php", Body: "<?php // admin"},
	{Name: "wordpress/wp-content/index.php", Body: "<?php // Silence is golden."},
	{Name: "wordpress/wp-content/plugins/akismet/akismet.php", Body: "<?php // akismet"},
	{Name: "wordpress/wp-content/plugins/hello.php", Body: "<?php // hello dolly"},
	{Name: "wordpress/wp-content/themes/twentytwentyfour/style.css", Body: "/* theme */"},
}

func buildZip(t *testing.T, entries []archiveEntry) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, e := range entries {
		w, err := zw.Create(e.Name)
		gt.NoError(t, err)
		if !strings.HasSuffix(e.Name, "/") {
			_, err = w.Write([]byte(e.Body))
			gt.NoError(t, err)
		}
	}
	gt.NoError(t, zw.Close())
	return buf.Bytes()
}

func buildTarGz(t *testing.T, entries []archiveEntry) []byte {
	t.Helper()
	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gw)
	for _, e := range entries {
		hdr := &tar.Header{Name: e.Name, Mode: 0644, Size: int64(len(e.Body)), Typeflag: tar.TypeReg}
		if strings.HasSuffix(e.Name, "/") {
			hdr = &tar.Header{Name: e.Name, Mode: 0755, Typeflag: tar.TypeDir}
		}
		gt.NoError(t, tw.WriteHeader(hdr))
		if hdr.Typeflag == tar.TypeReg {
			_, err := tw.Write([]byte(e.Body))
			gt.NoError(t, err)
		}
	}
	gt.NoError(t, tw.Close())
	gt.NoError(t, gw.Close())
	return buf.Bytes()
}

// writeTree creates files (and directories for names ending in "/") under root.
func writeTree(t *testing.T, root string, entries []archiveEntry) {
	t.Helper()
	for _, e := range entries {
		p := filepath.Join(root, filepath.FromSlash(e.Name))
		if strings.HasSuffix(e.Name, "/") {
			gt.NoError(t, os.MkdirAll(p, 0755))
			continue
		}
		gt.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
		gt.NoError(t, os.WriteFile(p, []byte(e.Body), 0644))
	}
}

// listDir returns the sorted names of dir's immediate children.
func listDir(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	gt.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names
}

// runCall records a single Runner.Run invocation.
type runCall struct {
	Dir  string
	Name string
	Args []string
}

func (c runCall) String() string {
	return c.Name + " " + strings.Join(c.Args, " ")
}

// fakeRunner is a Runner test double: tools lists installed binaries, exits
// maps "name subcommand" to an exit code, and onRun may touch the filesystem.
type fakeRunner struct {
	tools map[string]bool
	exits map[string]int
	onRun func(c runCall)
	calls []runCall
}

func newFakeRunner(tools ...string) *fakeRunner {
	r := &fakeRunner{tools: map[string]bool{}, exits: map[string]int{}}
	for _, tool := range tools {
		r.tools[tool] = true
	}
	return r
}

func (r *fakeRunner) LookPath(name string) (string, error) {
	if r.tools[name] {
		return "/usr/bin/" + name, nil
	}
	return "", fmt.Errorf("exec: %q: %w", name, errors.New("executable file not found in $PATH"))
}

func (r *fakeRunner) Run(_ context.Context, dir, name string, args ...string) (installer.Result, error) {
	c := runCall{Dir: dir, Name: name, Args: args}
	r.calls = append(r.calls, c)
	if r.onRun != nil {
		r.onRun(c)
	}
	key := name
	if len(args) > 0 {
		key += " " + args[0]
	}
	return installer.Result{ExitCode: r.exits[key], Output: []byte("fake output")}, nil
}

// message is one line reported by the orchestrator.
type message struct {
	Level string
	Text  string
}

type recordingReporter struct {
	messages []message
}

func (r *recordingReporter) add(level, format string, a ...any) {
	r.messages = append(r.messages, message{Level: level, Text: fmt.Sprintf(format, a...)})
}

func (r *recordingReporter) Infof(format string, a ...any)    { r.add("info", format, a...) }
func (r *recordingReporter) Successf(format string, a ...any) { r.add("success", format, a...) }
func (r *recordingReporter) Warnf(format string, a ...any)    { r.add("warn", format, a...) }
func (r *recordingReporter) Errorf(format string, a ...any)   { r.add("error", format, a...) }

func (r *recordingReporter) has(level, text string) bool {
	for _, m := range r.messages {
		if m.Level == level && m.Text == text {
			return true
		}
	}
	return false
}

func (r *recordingReporter) count(level string) int {
	n := 0
	for _, m := range r.messages {
		if m.Level == level {
			n++
		}
	}
	return n
}
