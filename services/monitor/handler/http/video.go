package http

import (
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/praditya/siaga/internal/pkg/logger"
	"github.com/praditya/siaga/internal/pkg/models"
	"github.com/praditya/siaga/internal/utils"
)

// VideoProxyHandler streams accident clips from object storage through the
// dashboard origin, so browser playback needs no bucket CORS configuration
type VideoProxyHandler struct {
	cfg    *models.Config
	client *http.Client
}

// NewVideoProxyHandler creates a new video proxy handler
func NewVideoProxyHandler(cfg *models.Config) *VideoProxyHandler {
	return &VideoProxyHandler{
		cfg: cfg,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Proxy streams a clip, passing Range headers through so seeking works
func (h *VideoProxyHandler) Proxy(c echo.Context) error {
	clip := c.Param("*")
	if clip == "" || strings.Contains(clip, "..") {
		return utils.BadRequestResponse(c, "Invalid clip path")
	}

	if h.cfg.Storage.PublicBaseURL == "" {
		return utils.NotFoundResponse(c, "Video storage not configured")
	}

	upstreamURL := strings.TrimSuffix(h.cfg.Storage.PublicBaseURL, "/") + "/" + clip

	req, err := http.NewRequestWithContext(c.Request().Context(), http.MethodGet, upstreamURL, nil)
	if err != nil {
		return utils.InternalServerErrorResponse(c, "Failed to build storage request")
	}

	if rangeHeader := c.Request().Header.Get("Range"); rangeHeader != "" {
		req.Header.Set("Range", rangeHeader)
	}

	resp, err := h.client.Do(req)
	if err != nil {
		logger.Warn("Video proxy request failed",
			logger.String("clip", clip),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to load video")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusPartialContent {
		return utils.NotFoundResponse(c, "Video not found")
	}

	header := c.Response().Header()
	header.Set(echo.HeaderContentType, "video/mp4")
	header.Set("Accept-Ranges", "bytes")
	header.Set("Cache-Control", "no-cache")
	if cl := resp.Header.Get("Content-Length"); cl != "" {
		header.Set(echo.HeaderContentLength, cl)
	}
	if cr := resp.Header.Get("Content-Range"); cr != "" {
		header.Set("Content-Range", cr)
	}

	c.Response().WriteHeader(resp.StatusCode)
	if _, err := io.Copy(c.Response().Writer, resp.Body); err != nil {
		logger.Debug("Video stream interrupted",
			logger.String("clip", clip),
			logger.Err(err))
	}
	return nil
}
