package server

import (
	"bytes"
	"encoding/base64"
	"time"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/aukilabs/go-tooling/pkg/logs"
	"github.com/google/uuid"
	"github.com/magus/ray-tracer/pkg/core"
	"github.com/magus/ray-tracer/pkg/ppm"
	"github.com/magus/ray-tracer/pkg/renderer"
	"github.com/magus/ray-tracer/pkg/scene"
	"github.com/segmentio/encoding/json"
	"golang.org/x/net/websocket"
)

// RenderRequest is the first frame a client sends on the render socket
type RenderRequest struct {
	Scene       string  `json:"scene"`
	ImageHeight int     `json:"imageHeight"`
	AspectRatio float64 `json:"aspectRatio"`
	Samples     int     `json:"samples"`
	MaxDepth    int     `json:"maxDepth"`
	Seed        int64   `json:"seed"`
	Workers     int     `json:"workers"`
}

// ProgressUpdate is streamed back while the job renders. The final update
// has Complete set and carries the base64-encoded ppm image.
type ProgressUpdate struct {
	JobID     string  `json:"jobId"`
	Done      int64   `json:"done"`
	Total     int64   `json:"total"`
	Percent   float64 `json:"percent"`
	ElapsedMs int64   `json:"elapsedMs"`
	Complete  bool    `json:"complete"`
	Error     string  `json:"error,omitempty"`
	ImageData string  `json:"imageData,omitempty"`
}

// handleRender runs one render job per websocket connection
func (s *Server) handleRender(conn *websocket.Conn) {
	jobID := uuid.NewString()
	log := logs.WithTag("job_id", jobID)

	var raw string
	if err := websocket.Message.Receive(conn, &raw); err != nil {
		log.Error(errors.New("receiving render request failed").Wrap(err))
		return
	}

	var req RenderRequest
	if err := json.Unmarshal([]byte(raw), &req); err != nil {
		s.sendUpdate(conn, ProgressUpdate{JobID: jobID, Error: "invalid request"})
		log.Error(errors.New("decoding render request failed").Wrap(err))
		return
	}

	if req.ImageHeight <= 0 || req.ImageHeight > s.MaxImageHeight {
		s.sendUpdate(conn, ProgressUpdate{JobID: jobID, Error: "image height out of range"})
		return
	}

	selected, err := scene.ByName(req.Scene, req.Seed)
	if err != nil {
		s.sendUpdate(conn, ProgressUpdate{JobID: jobID, Error: "unknown scene: " + req.Scene})
		return
	}

	cameraConfig := selected.CameraConfig
	cameraConfig.ImageHeight = req.ImageHeight
	if req.AspectRatio > 0 {
		cameraConfig.AspectRatio = req.AspectRatio
	}
	if req.Samples > 0 {
		cameraConfig.SamplesPerPixel = req.Samples
	}
	if req.MaxDepth > 0 {
		cameraConfig.MaxDepth = req.MaxDepth
	}
	camera := renderer.NewCamera(cameraConfig)

	log.WithTag("scene", req.Scene).
		WithTag("width", camera.Width()).
		WithTag("height", camera.Height()).
		Info("render job started")
	instrumentJobStarted()
	start := time.Now()

	progress := renderer.NewProgress(int64(camera.Width() * camera.Height()))

	type renderResult struct {
		pixels []core.Vec3
		stats  renderer.RenderStats
	}
	resultChan := make(chan renderResult, 1)
	go func() {
		pixels, stats := camera.Render(selected.World(), renderer.RenderOptions{
			NumWorkers: req.Workers,
			Seed:       req.Seed,
			Progress:   progress,
		})
		resultChan <- renderResult{pixels: pixels, stats: stats}
	}()

	ticker := time.NewTicker(200 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.sendUpdate(conn, s.progressUpdate(jobID, progress, start))

		case result := <-resultChan:
			update := s.progressUpdate(jobID, progress, start)
			update.Complete = true

			var buf bytes.Buffer
			img := ppm.NewImage(camera.Width(), camera.Height(), result.pixels)
			if err := img.Encode(&buf); err != nil {
				update.Error = "encoding image failed"
				log.Error(errors.New("encoding rendered image failed").Wrap(err))
			} else {
				update.ImageData = base64.StdEncoding.EncodeToString(buf.Bytes())
			}

			s.sendUpdate(conn, update)
			instrumentJobFinished(result.stats.Duration)
			log.WithTag("duration", result.stats.Duration.String()).
				Info("render job complete")
			return
		}
	}
}

func (s *Server) progressUpdate(jobID string, progress *renderer.Progress, start time.Time) ProgressUpdate {
	done := progress.Current()
	total := progress.Max()
	return ProgressUpdate{
		JobID:     jobID,
		Done:      done,
		Total:     total,
		Percent:   100 * float64(done) / float64(total),
		ElapsedMs: time.Since(start).Milliseconds(),
	}
}

// sendUpdate marshals and sends one progress frame. Send failures are logged
// and otherwise ignored; the render itself always runs to completion.
func (s *Server) sendUpdate(conn *websocket.Conn, update ProgressUpdate) {
	body, err := json.Marshal(update)
	if err != nil {
		logs.Error(errors.New("encoding progress update failed").Wrap(err))
		return
	}
	if err := websocket.Message.Send(conn, string(body)); err != nil {
		instrumentSendError()
		logs.WithTag("job_id", update.JobID).
			Debug(errors.New("sending progress update failed").Wrap(err))
	}
}
