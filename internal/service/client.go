// Package service is a client for the tile-stitch / timelapse HTTP
// service: one call fetches and stitches frames into a server-side
// session directory, a second interpolates them and renders a video.
package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"path"
	"strings"

	"tilelapse/internal/geom"
)

// ErrStatus marks a non-2xx response from the service.
var ErrStatus = errors.New("service error")

// Client calls the remote stitching service.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the service at baseURL. No request
// timeout is set: stitching a large time range can take minutes, and the
// panel reports whatever completion arrives.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
	}
}

// NewClientWithHTTP creates a client with a caller-supplied http.Client.
func NewClientWithHTTP(baseURL string, hc *http.Client) *Client {
	c := NewClient(baseURL)
	c.httpClient = hc
	return c
}

// FrameRequest is the body of the fetch-stitched-frames call. BBox is
// [minLon, minLat, maxLon, maxLat].
type FrameRequest struct {
	Datetime string     `json:"datetime"`
	Endtime  string     `json:"endtime"`
	BBox     [4]float64 `json:"bbox"`
	Zoom     int        `json:"zoom"`
}

// NewFrameRequest combines picker values and the drawn bbox into a wire
// request. Dates are YYYY-MM-DD, times HH:MM.
func NewFrameRequest(startDate, startTime, endDate, endTime string, b geom.BBox, zoom int) FrameRequest {
	return FrameRequest{
		Datetime: startDate + " " + startTime,
		Endtime:  endDate + " " + endTime,
		BBox:     [4]float64{b.MinLon, b.MinLat, b.MaxLon, b.MaxLat},
		Zoom:     zoom,
	}
}

type frameResponse struct {
	Message   string `json:"message"`
	Directory string `json:"directory"`
}

// FetchResult reports a completed frame fetch.
type FetchResult struct {
	Directory string
	SessionID string
}

// FetchStitchedFrames asks the service to download and stitch the frames
// covering the request. The session identifier is the final path segment
// of the returned directory.
func (c *Client) FetchStitchedFrames(ctx context.Context, req FrameRequest) (*FetchResult, error) {
	var resp frameResponse
	if err := c.post(ctx, "/fetch-stitched-frames", req, &resp); err != nil {
		return nil, err
	}
	return &FetchResult{
		Directory: resp.Directory,
		SessionID: SessionID(resp.Directory),
	}, nil
}

type videoRequest struct {
	SessionID string `json:"session_id"`
}

type videoResponse struct {
	VideoPath string `json:"video_path"`
}

// VideoResult reports a rendered video.
type VideoResult struct {
	VideoPath string
	VideoURL  string
}

// InterpolateAndGenerateVideo asks the service to interpolate the frames
// of a previously fetched session and render them into a video. The
// returned URL is the service origin plus the reported path.
func (c *Client) InterpolateAndGenerateVideo(ctx context.Context, sessionID string) (*VideoResult, error) {
	var resp videoResponse
	if err := c.post(ctx, "/interpolate-and-generate-video", videoRequest{SessionID: sessionID}, &resp); err != nil {
		return nil, err
	}
	p := resp.VideoPath
	if p != "" && !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return &VideoResult{VideoPath: resp.VideoPath, VideoURL: c.baseURL + p}, nil
}

// SessionID extracts the session identifier from a frames directory
// path, e.g. "/data/runs/abc123" -> "abc123".
func SessionID(directory string) string {
	d := strings.TrimRight(directory, "/")
	if d == "" {
		return ""
	}
	return path.Base(d)
}

func (c *Client) post(ctx context.Context, endpoint string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("%s: encode: %w", endpoint, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%s: %w", endpoint, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: %s returned %s", ErrStatus, endpoint, resp.Status)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: decode: %w", endpoint, err)
	}
	return nil
}
