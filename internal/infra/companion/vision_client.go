package companion

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"sahara/config"
	"sahara/internal/domain/service"

	domainerrors "sahara/internal/domain/errors"
)

const (
	defaultStatusPath    = "/fall_status"
	defaultVideoFeedPath = "/video_feed"
	defaultVisionTimeout = 5 * time.Second
)

type visionClient struct {
	client       *http.Client
	statusURL    string
	videoFeedURL string
}

// NewVisionService returns an HTTP client for the camera service, or one that
// always reports ErrCompanionUnavailable when no base URL is configured.
func NewVisionService(cfg *config.Config) service.VisionService {
	if cfg.Companion == nil || cfg.Companion.Vision.BaseURL == "" {
		return unavailableVision{}
	}

	vision := cfg.Companion.Vision

	return NewVisionClient(&http.Client{Timeout: orDefault(vision.Timeout, defaultVisionTimeout)},
		vision.BaseURL, vision.StatusPath, vision.VideoFeedPath)
}

func NewVisionClient(client *http.Client, baseURL, statusPath, videoFeedPath string) service.VisionService {
	base := strings.TrimRight(baseURL, "/")

	return &visionClient{
		client:       client,
		statusURL:    base + withLeadingSlash(statusPath, defaultStatusPath),
		videoFeedURL: base + withLeadingSlash(videoFeedPath, defaultVideoFeedPath),
	}
}

func (c *visionClient) FallStatus(ctx context.Context) (*service.FallStatus, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.statusURL, nil)
	if err != nil {
		return nil, domainerrors.ErrUpstreamFailed.WithDetails(err.Error())
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, domainerrors.ErrUpstreamFailed.WithDetails(err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, domainerrors.ErrUpstreamFailed.WithDetails("fall status returned " + resp.Status)
	}

	var status service.FallStatus
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		return nil, domainerrors.ErrUpstreamFailed.WithDetails("decode fall status: " + err.Error())
	}

	return &status, nil
}

func (c *visionClient) VideoFeedURL() string {
	return c.videoFeedURL
}

type unavailableVision struct{}

func (unavailableVision) FallStatus(context.Context) (*service.FallStatus, error) {
	return nil, domainerrors.ErrCompanionUnavailable.WithDetails("camera service is not configured")
}

func (unavailableVision) VideoFeedURL() string {
	return ""
}

func withLeadingSlash(path, fallback string) string {
	if path == "" {
		return fallback
	}
	if !strings.HasPrefix(path, "/") {
		return "/" + path
	}

	return path
}

func orDefault(d, fallback time.Duration) time.Duration {
	if d <= 0 {
		return fallback
	}

	return d
}
