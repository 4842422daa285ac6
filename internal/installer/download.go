package installer

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"

	"github.com/m-mizutani/goerr/v2"

	"wordless/internal/logger"
)

// Downloader streams remote archives to disk.
type Downloader struct {
	client    *http.Client
	userAgent string
}

// NewDownloader creates a Downloader. A nil client means http.DefaultClient.
func NewDownloader(client *http.Client, userAgent string) *Downloader {
	if client == nil {
		client = http.DefaultClient
	}
	return &Downloader{client: client, userAgent: userAgent}
}

// Download copies the body at rawURL into out and returns the number of bytes
// written. A transport error, a non-2xx status or an empty body is a failure.
// Closing and removing out is the caller's job (see withTempArchive).
func (d *Downloader) Download(ctx context.Context, rawURL string, out io.Writer) (int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, http.NoBody)
	if err != nil {
		return 0, goerr.Wrap(err, "failed to create download request", goerr.T(TagNetwork), goerr.V("url", rawURL))
	}
	if d.userAgent != "" {
		req.Header.Set("User-Agent", d.userAgent)
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return 0, goerr.Wrap(err, "failed to GET archive", goerr.T(TagNetwork), goerr.V("url", rawURL))
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			logger.Warn("[WARN] Failed to close response body: %v\n", cerr)
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return 0, goerr.New("archive download returned non-success status",
			goerr.T(TagNetwork), goerr.V("url", rawURL), goerr.V("status", resp.StatusCode))
	}

	n, err := io.Copy(out, resp.Body)
	if err != nil {
		return n, goerr.Wrap(err, "failed to write response to file", goerr.T(TagNetwork), goerr.V("url", rawURL))
	}
	if n == 0 {
		return 0, goerr.New("archive download is empty", goerr.T(TagNetwork), goerr.V("url", rawURL))
	}

	logger.Debug("[DEBUG] Downloaded %d bytes from %s\n", n, rawURL)
	return n, nil
}

// withTempArchive creates a temporary file carrying the archive extension of
// rawURL, hands it to fn, then closes and unlinks it whatever fn returns.
func withTempArchive(dir, rawURL string, fn func(f *os.File) error) (err error) {
	tmp, err := os.CreateTemp(dir, "wordpress-*"+archiveExt(rawURL))
	if err != nil {
		return goerr.Wrap(err, "failed to create temporary file", goerr.T(TagFilesystem))
	}
	logger.Debug("[DEBUG] Using temporary archive %s\n", tmp.Name())
	defer func() {
		// Close errors are expected when fn already closed the file.
		_ = tmp.Close()
		if rerr := os.Remove(tmp.Name()); rerr != nil && !os.IsNotExist(rerr) && err == nil {
			err = goerr.Wrap(rerr, "failed to remove temporary file", goerr.T(TagFilesystem), goerr.V("path", tmp.Name()))
		}
	}()

	return fn(tmp)
}

// archiveExt returns the archive suffix of rawURL's path (".zip", ".tar.gz", ...),
// defaulting to ".zip", the format WordPress publishes by default.
func archiveExt(rawURL string) string {
	p := rawURL
	if u, err := url.Parse(rawURL); err == nil {
		p = u.Path
	}
	name := strings.ToLower(path.Base(p))
	for _, ext := range supportedExtensions {
		if strings.HasSuffix(name, ext) {
			return ext
		}
	}
	return ".zip"
}
