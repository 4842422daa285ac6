package installer_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"

	"wordless/internal/installer"
)

func TestParseVersionResponse(t *testing.T) {
	info, err := installer.ParseVersionResponse("upgrade\nhttps://downloads.example/ignored.zip\nhttps://example.org/wp-5.0-en_US.zip\n5.0\nen_US\n5.2.4\n")
	gt.NoError(t, err)
	gt.Equal(t, info, installer.VersionInfo{
		DownloadURL: "https://example.org/wp-5.0-en_US.zip",
		Version:     "5.0",
		Locale:      "en_US",
	})
}

func TestParseVersionResponse_TooFewTokens(t *testing.T) {
	for _, body := range []string{"", "upgrade", "a b c d"} {
		_, err := installer.ParseVersionResponse(body)
		gt.Error(t, err)
		gt.True(t, goerr.HasTag(err, installer.TagVersionResolution))
	}
}

func TestVersionResolver_SendsLocale(t *testing.T) {
	var gotLocale string
	var hasLocale bool
	var userAgent string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotLocale = r.URL.Query().Get("locale")
		_, hasLocale = r.URL.Query()["locale"]
		userAgent = r.Header.Get("User-Agent")
		_, _ = w.Write([]byte("x x https://example.org/wp-5.0-it_IT.zip 5.0 it_IT"))
	}))
	defer srv.Close()

	resolver := installer.NewVersionResolver(srv.Client(), srv.URL+"/core/version-check/1.5/", "wordless-test")

	info, err := resolver.Resolve(context.Background(), "it_IT")
	gt.NoError(t, err)
	gt.Equal(t, gotLocale, "it_IT")
	gt.Equal(t, info.Locale, "it_IT")
	gt.Equal(t, userAgent, "wordless-test")

	// An empty locale is still sent so the server applies its default.
	_, err = resolver.Resolve(context.Background(), "")
	gt.NoError(t, err)
	gt.True(t, hasLocale)
	gt.Equal(t, gotLocale, "")
}

func TestVersionResolver_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "maintenance", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := installer.NewVersionResolver(srv.Client(), srv.URL, "").Resolve(context.Background(), "")
	gt.Error(t, err)
	gt.True(t, installer.IsNetwork(err))
	gt.True(t, goerr.HasTag(err, installer.TagVersionResolution))
}

func TestVersionResolver_ConnectionError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	endpoint := srv.URL
	srv.Close()

	_, err := installer.NewVersionResolver(nil, endpoint, "").Resolve(context.Background(), "en_US")
	gt.Error(t, err)
	gt.True(t, installer.IsNetwork(err))
}
