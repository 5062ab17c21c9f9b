package main

import (
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"time"
)

const (
	// Writing too many frames too fast can stall the filesystem, so the
	// writer pauses briefly between batches.
	exportPauseEvery = 200
	exportPause      = 2 * time.Second

	exportQueueDepth = 8
)

// frameExporter writes displayed frames as numbered PNGs on a background
// goroutine so encoding never blocks the render loop. Frames are dropped,
// with a log line, when the writer falls behind.
type frameExporter struct {
	dir     string
	jobs    chan *image.RGBA
	done    chan struct{}
	dropped int
}

// newFrameExporter creates the output directory and starts the writer.
func newFrameExporter(dir string) (*frameExporter, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating frame directory: %w", err)
	}
	e := &frameExporter{
		dir:  dir,
		jobs: make(chan *image.RGBA, exportQueueDepth),
		done: make(chan struct{}),
	}
	go e.loop()
	return e, nil
}

// enqueue copies the pixel buffer and hands it to the writer, dropping the
// frame if the queue is full.
func (e *frameExporter) enqueue(pixels []byte, w, h int) {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	copy(img.Pix, pixels)
	select {
	case e.jobs <- img:
	default:
		e.dropped++
		if e.dropped%60 == 1 {
			log.Printf("frame exporter falling behind, %d frames dropped", e.dropped)
		}
	}
}

func (e *frameExporter) loop() {
	defer close(e.done)
	count := 0
	for img := range e.jobs {
		path := filepath.Join(e.dir, fmt.Sprintf("wave.%05d.png", count))
		if err := writePNG(path, img); err != nil {
			log.Printf("writing %s: %v", path, err)
		}
		count++
		if count%exportPauseEvery == 0 {
			log.Printf("saved %d frames, making a short pause", count)
			time.Sleep(exportPause)
		}
	}
	log.Printf("frame exporter finished after %d frames (%d dropped)", count, e.dropped)
}

// close flushes queued frames and stops the writer.
func (e *frameExporter) close() {
	close(e.jobs)
	<-e.done
}

func writePNG(path string, img *image.RGBA) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
