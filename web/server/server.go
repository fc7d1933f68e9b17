package server

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image/png"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/nfnt/resize"

	"github.com/user/go-sample-pathtracer/pkg/renderer"
	"github.com/user/go-sample-pathtracer/pkg/scene"
)

// webScenes are the presets exposed over the API. The mesh preset needs a
// local file path, so it stays CLI-only.
var webScenes = []string{"cornell", "spheres"}

// Server handles web requests for live preview rendering
type Server struct {
	echo *echo.Echo
}

// NewServer creates the web server and registers its routes
func NewServer() *Server {
	e := echo.New()
	e.HideBanner = true

	s := &Server{echo: e}
	e.GET("/api/health", s.handleHealth)
	e.GET("/api/scenes", s.handleScenes)
	e.GET("/api/render", s.handleRender)
	e.Static("/", "static")

	return s
}

// Start starts the web server on the given address
func (s *Server) Start(addr string) error {
	log.Printf("Starting web server on http://localhost%s", addr)
	return s.echo.Start(addr)
}

// Handler exposes the underlying handler for tests
func (s *Server) Handler() http.Handler {
	return s.echo
}

// RenderRequest carries the render options parsed from query parameters
type RenderRequest struct {
	Scene           string
	Width           int
	Height          int
	SamplesPerPixel int
	MaxDepth        int
	Preview         bool
	ThumbWidth      int // 0 = full resolution snapshots
}

// ProgressUpdate is a single SSE event sent while rendering
type ProgressUpdate struct {
	Sample     int    `json:"sample"`
	Total      int    `json:"total"`
	ImageData  string `json:"imageData"` // Base64 encoded PNG
	ElapsedMs  int64  `json:"elapsedMs"`
	IsComplete bool   `json:"isComplete"`
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleScenes(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string][]string{"scenes": webScenes})
}

// handleRender streams render progress as SSE events, one per completed
// sample, each carrying a PNG snapshot of the accumulator
func (s *Server) handleRender(c echo.Context) error {
	req := parseRenderRequest(c)

	selectedScene, camera, err := scene.NewScene(req.Scene, "", req.Width, req.Height)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	params := scene.RenderParams{
		Width:               req.Width,
		Height:              req.Height,
		SamplesPerPixel:     req.SamplesPerPixel,
		MaxDepth:            req.MaxDepth,
		FirstBounceUSamples: 2,
		FirstBounceVSamples: 2,
		Preview:             req.Preview,
		Seed:                1,
	}
	if err := params.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	resp := c.Response()
	resp.Header().Set(echo.HeaderContentType, "text/event-stream")
	resp.Header().Set("Cache-Control", "no-cache")
	resp.Header().Set("Connection", "keep-alive")
	resp.WriteHeader(http.StatusOK)

	startTime := time.Now()
	updates := make(chan ProgressUpdate, 4)
	ctx := c.Request().Context()

	r := renderer.NewRenderer(selectedScene, camera, params, serverLogger{})
	r.SetCheckpoint(func(fb *renderer.FrameBuffer) error {
		data, err := encodeSnapshot(fb, req.ThumbWidth)
		if err != nil {
			return err
		}
		return pushUpdate(ctx, updates, ProgressUpdate{
			Sample:    fb.Samples(),
			Total:     params.SamplesPerPixel,
			ImageData: data,
			ElapsedMs: time.Since(startTime).Milliseconds(),
		})
	})

	// Render in the background; a client disconnect cancels between
	// batches via the request context.
	go func() {
		defer close(updates)
		result, err := r.Render(ctx, nil)
		if err != nil {
			log.Printf("Render aborted: %v", err)
			return
		}
		data, err := encodeSnapshot(result, req.ThumbWidth)
		if err != nil {
			log.Printf("Encoding final image failed: %v", err)
			return
		}
		if err := pushUpdate(ctx, updates, ProgressUpdate{
			Sample:     result.Samples(),
			Total:      params.SamplesPerPixel,
			ImageData:  data,
			ElapsedMs:  time.Since(startTime).Milliseconds(),
			IsComplete: true,
		}); err != nil {
			log.Printf("Client gone before final update: %v", err)
		}
	}()

	for update := range updates {
		payload, err := json.Marshal(update)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(resp, "data: %s\n\n", payload); err != nil {
			return err
		}
		resp.Flush()
	}

	return nil
}

// pushUpdate queues an update for the SSE writer loop unless the client
// has gone away. A disconnected client leaves the channel without a
// reader, so an unconditional send would block the checkpoint consumer
// and leak the render goroutines behind it.
func pushUpdate(ctx context.Context, updates chan<- ProgressUpdate, update ProgressUpdate) error {
	select {
	case updates <- update:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// parseRenderRequest reads query parameters with preview-friendly defaults
func parseRenderRequest(c echo.Context) RenderRequest {
	req := RenderRequest{
		Scene:           "cornell",
		Width:           400,
		Height:          300,
		SamplesPerPixel: 10,
		MaxDepth:        5,
	}

	if v := c.QueryParam("scene"); v != "" {
		req.Scene = v
	}
	if v, err := strconv.Atoi(c.QueryParam("width")); err == nil && v > 0 {
		req.Width = v
	}
	if v, err := strconv.Atoi(c.QueryParam("height")); err == nil && v > 0 {
		req.Height = v
	}
	if v, err := strconv.Atoi(c.QueryParam("spp")); err == nil && v > 0 {
		req.SamplesPerPixel = v
	}
	if v, err := strconv.Atoi(c.QueryParam("depth")); err == nil && v > 0 {
		req.MaxDepth = v
	}
	if v, err := strconv.ParseBool(c.QueryParam("preview")); err == nil {
		req.Preview = v
	}
	if v, err := strconv.Atoi(c.QueryParam("thumb")); err == nil && v > 0 {
		req.ThumbWidth = v
	}

	return req
}

// encodeSnapshot converts a frame buffer to a base64 PNG, downscaled to
// thumbWidth when requested
func encodeSnapshot(fb *renderer.FrameBuffer, thumbWidth int) (string, error) {
	img := fb.ToImage()

	var buf bytes.Buffer
	if thumbWidth > 0 && thumbWidth < fb.Width() {
		thumb := resize.Resize(uint(thumbWidth), 0, img, resize.Lanczos3)
		if err := png.Encode(&buf, thumb); err != nil {
			return "", err
		}
	} else {
		if err := png.Encode(&buf, img); err != nil {
			return "", err
		}
	}

	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// serverLogger adapts the standard library logger to core.Logger
type serverLogger struct{}

func (serverLogger) Printf(format string, args ...interface{}) {
	log.Printf(format, args...)
}
