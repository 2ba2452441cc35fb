package image

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(noopWriter{}, nil))
}

type noopWriter struct{}

func (noopWriter) Write(p []byte) (int, error) { return len(p), nil }

func emptyServer() *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
}

func TestResolveImagePrefersUnsplash(t *testing.T) {
	unsplash := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Client-ID key-u", r.Header.Get("Authorization"))
		w.Write([]byte(`{"results": [{"alt_description": "temple at dusk",
			"urls": {"regular": "https://img/regular", "full": "https://img/full"},
			"user": {"name": "A. Perera", "links": {"html": "https://unsplash.com/@ap"}}}]}`))
	}))
	defer unsplash.Close()
	wiki := emptyServer()
	defer wiki.Close()

	s := NewServiceWithBaseURLs(testLogger(), "key-u", "", unsplash.URL, "", wiki.URL)
	ref := s.ResolveImage(context.Background(), "Temple of the Tooth", "Kandy", "Sri Lanka", "medium")

	assert.Equal(t, "Unsplash", ref.Source)
	assert.Equal(t, "https://img/regular", ref.URL)
	assert.Equal(t, "A. Perera", ref.Photographer)
}

func TestResolveImageLargeSizeUsesFullURL(t *testing.T) {
	unsplash := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results": [{"urls": {"regular": "https://img/regular", "full": "https://img/full"},
			"user": {"name": "x", "links": {"html": ""}}}]}`))
	}))
	defer unsplash.Close()
	wiki := emptyServer()
	defer wiki.Close()

	s := NewServiceWithBaseURLs(testLogger(), "key-u", "", unsplash.URL, "", wiki.URL)
	ref := s.ResolveImage(context.Background(), "Galle Fort", "Galle", "Sri Lanka", "large")

	assert.Equal(t, "https://img/full", ref.URL)
}

func TestResolveImageFallsThroughToPexels(t *testing.T) {
	unsplash := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results": []}`))
	}))
	defer unsplash.Close()
	pexels := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "key-p", r.Header.Get("Authorization"))
		w.Write([]byte(`{"photos": [{"photographer": "B. Silva", "photographer_url": "https://pexels.com/@bs",
			"alt": "beach", "src": {"large": "https://img/l", "medium": "https://img/m"}}]}`))
	}))
	defer pexels.Close()
	wiki := emptyServer()
	defer wiki.Close()

	s := NewServiceWithBaseURLs(testLogger(), "key-u", "key-p", unsplash.URL, pexels.URL, wiki.URL)
	ref := s.ResolveImage(context.Background(), "Unawatuna Beach", "Galle", "Sri Lanka", "medium")

	assert.Equal(t, "Pexels", ref.Source)
	assert.Equal(t, "https://img/m", ref.URL)
}

func TestResolveImageFallsThroughToWikipedia(t *testing.T) {
	wiki := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"query": {"pages": {"123": {"original": {"source": "https://upload.wikimedia.org/fort.jpg"}}}}}`))
	}))
	defer wiki.Close()

	s := NewServiceWithBaseURLs(testLogger(), "", "", "", "", wiki.URL)
	ref := s.ResolveImage(context.Background(), "Galle Fort", "Galle", "Sri Lanka", "medium")

	assert.Equal(t, "Wikimedia", ref.Source)
	assert.Equal(t, "Wikimedia Commons", ref.Photographer)
}

func TestResolveImageExhaustionReturnsDefault(t *testing.T) {
	wiki := emptyServer()
	defer wiki.Close()

	s := NewServiceWithBaseURLs(testLogger(), "", "", "", "", wiki.URL)
	ref := s.ResolveImage(context.Background(), "Unknown Spot", "Nowhere", "Nowhere", "medium")

	assert.Equal(t, "Default", ref.Source)
	assert.NotEmpty(t, ref.URL)
}

func TestResolveImageCachesResult(t *testing.T) {
	calls := 0
	unsplash := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Write([]byte(`{"results": [{"urls": {"regular": "https://img/r", "full": "https://img/f"},
			"user": {"name": "x", "links": {"html": ""}}}]}`))
	}))
	defer unsplash.Close()
	wiki := emptyServer()
	defer wiki.Close()

	s := NewServiceWithBaseURLs(testLogger(), "key-u", "", unsplash.URL, wiki.URL, wiki.URL)
	s.ResolveImage(context.Background(), "Kandy Lake", "Kandy", "Sri Lanka", "medium")
	s.ResolveImage(context.Background(), "Kandy Lake", "Kandy", "Sri Lanka", "medium")

	assert.Equal(t, 1, calls)
}
