package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/praditya/siaga/internal/pkg/models"
)

func newProxyContext(t *testing.T, clip, rangeHeader string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if rangeHeader != "" {
		req.Header.Set("Range", rangeHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/video-proxy/*")
	c.SetParamNames("*")
	c.SetParamValues(clip)

	return c, rec
}

func storageConfig(baseURL string) *models.Config {
	return &models.Config{
		Storage: models.StorageConfig{
			PublicBaseURL: baseURL,
			ProxyPath:     "/video-proxy",
		},
	}
}

func TestProxy_StreamsClip(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/clip-42.mp4", r.URL.Path)
		w.Header().Set("Content-Length", "9")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("fake-mp4!"))
	}))
	defer upstream.Close()

	h := NewVideoProxyHandler(storageConfig(upstream.URL + "/"))
	c, rec := newProxyContext(t, "clip-42.mp4", "")

	require.NoError(t, h.Proxy(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "video/mp4", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, "bytes", rec.Header().Get("Accept-Ranges"))
	assert.Equal(t, "fake-mp4!", rec.Body.String())
}

func TestProxy_RangePassthrough(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "bytes=0-3", r.Header.Get("Range"))
		w.Header().Set("Content-Range", "bytes 0-3/9")
		w.WriteHeader(http.StatusPartialContent)
		w.Write([]byte("fake"))
	}))
	defer upstream.Close()

	h := NewVideoProxyHandler(storageConfig(upstream.URL + "/"))
	c, rec := newProxyContext(t, "clip-42.mp4", "bytes=0-3")

	require.NoError(t, h.Proxy(c))
	assert.Equal(t, http.StatusPartialContent, rec.Code)
	assert.Equal(t, "bytes 0-3/9", rec.Header().Get("Content-Range"))
	assert.Equal(t, "fake", rec.Body.String())
}

func TestProxy_UpstreamMiss(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer upstream.Close()

	h := NewVideoProxyHandler(storageConfig(upstream.URL + "/"))
	c, rec := newProxyContext(t, "missing.mp4", "")

	require.NoError(t, h.Proxy(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestProxy_RejectsTraversal(t *testing.T) {
	h := NewVideoProxyHandler(storageConfig("https://storage.example.com/videos/"))
	c, rec := newProxyContext(t, "../secrets.txt", "")

	require.NoError(t, h.Proxy(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProxy_StorageNotConfigured(t *testing.T) {
	h := NewVideoProxyHandler(storageConfig(""))
	c, rec := newProxyContext(t, "clip-42.mp4", "")

	require.NoError(t, h.Proxy(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
