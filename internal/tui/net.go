package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"tilelapse/internal/service"
)

type fetchDoneMsg struct {
	req service.FrameRequest
	res *service.FetchResult
	err error
}

type videoDoneMsg struct {
	sessionID string
	res       *service.VideoResult
	err       error
}

// fetchFramesCmd runs the fetch call off the event loop; completion
// comes back as a message. Overlapping calls are not serialized: the
// last completion to arrive owns the shared status and session id.
func fetchFramesCmd(c *service.Client, req service.FrameRequest) tea.Cmd {
	return func() tea.Msg {
		res, err := c.FetchStitchedFrames(context.Background(), req)
		return fetchDoneMsg{req: req, res: res, err: err}
	}
}

func interpolateCmd(c *service.Client, sessionID string) tea.Cmd {
	return func() tea.Msg {
		res, err := c.InterpolateAndGenerateVideo(context.Background(), sessionID)
		return videoDoneMsg{sessionID: sessionID, res: res, err: err}
	}
}
