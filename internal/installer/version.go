package installer

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/m-mizutani/goerr/v2"

	"wordless/internal/logger"
)

const (
	// versionTokenOffset is the index of the download URL in the whitespace
	// separated version-check response; version and locale follow it.
	versionTokenOffset = 2

	// maxVersionResponseBytes bounds the version-check body read into memory.
	maxVersionResponseBytes = 1 << 20
)

// VersionInfo describes the archive to download. It is derived entirely from
// the version-check response and never persisted.
type VersionInfo struct {
	DownloadURL string
	Version     string
	Locale      string
}

// VersionResolver queries the version-check endpoint for the latest release.
type VersionResolver struct {
	client    *http.Client
	endpoint  string
	userAgent string
}

// NewVersionResolver creates a resolver for endpoint. A nil client means http.DefaultClient.
func NewVersionResolver(client *http.Client, endpoint, userAgent string) *VersionResolver {
	if client == nil {
		client = http.DefaultClient
	}
	return &VersionResolver{client: client, endpoint: endpoint, userAgent: userAgent}
}

// Resolve sends a single GET with the locale query parameter (empty lets the
// server pick its default) and parses the answer. There are no retries.
func (r *VersionResolver) Resolve(ctx context.Context, locale string) (VersionInfo, error) {
	reqURL, err := url.Parse(r.endpoint)
	if err != nil {
		return VersionInfo{}, goerr.Wrap(err, "invalid version check endpoint",
			goerr.T(TagVersionResolution), goerr.V("endpoint", r.endpoint))
	}
	q := reqURL.Query()
	q.Set("locale", locale)
	reqURL.RawQuery = q.Encode()
	logger.Debug("[DEBUG] Fetching version check from URL: %s\n", reqURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), http.NoBody)
	if err != nil {
		return VersionInfo{}, goerr.Wrap(err, "failed to create version check request",
			goerr.T(TagVersionResolution), goerr.V("url", reqURL.String()))
	}
	if r.userAgent != "" {
		req.Header.Set("User-Agent", r.userAgent)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return VersionInfo{}, goerr.Wrap(err, "version check request failed",
			goerr.T(TagVersionResolution), goerr.T(TagNetwork), goerr.V("url", reqURL.String()))
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			logger.Warn("[WARN] Failed to close HTTP response body: %v\n", cerr)
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return VersionInfo{}, goerr.New("version check returned non-success status",
			goerr.T(TagVersionResolution), goerr.T(TagNetwork),
			goerr.V("url", reqURL.String()), goerr.V("status", resp.StatusCode))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxVersionResponseBytes))
	if err != nil {
		return VersionInfo{}, goerr.Wrap(err, "failed to read version check response",
			goerr.T(TagVersionResolution), goerr.T(TagNetwork))
	}
	return ParseVersionResponse(string(body))
}

// ParseVersionResponse extracts (download URL, version, locale) from the
// tokens at positions 2, 3 and 4 of a whitespace-separated response.
func ParseVersionResponse(body string) (VersionInfo, error) {
	tokens := strings.Fields(body)
	if len(tokens) < versionTokenOffset+3 {
		return VersionInfo{}, goerr.New("version check response has too few tokens",
			goerr.T(TagVersionResolution), goerr.V("tokens", len(tokens)))
	}
	info := VersionInfo{
		DownloadURL: tokens[versionTokenOffset],
		Version:     tokens[versionTokenOffset+1],
		Locale:      tokens[versionTokenOffset+2],
	}
	logger.Debug("[DEBUG] Resolved WordPress %s (%s) at %s\n", info.Version, info.Locale, info.DownloadURL)
	return info, nil
}
