package renderer

import (
	"fmt"
	"io"
	"math"
	"runtime"
	"sync"
	"time"

	"github.com/shirou/gopsutil/cpu"
	"golang.org/x/sync/errgroup"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/integrator"
)

// segmentSeedStride spreads segment ids apart in seed space
const segmentSeedStride = 1_000_003

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// WriterLogger implements core.Logger on top of an io.Writer
type WriterLogger struct {
	w io.Writer
}

// NewWriterLogger creates a logger that writes to w
func NewWriterLogger(w io.Writer) core.Logger {
	return &WriterLogger{w: w}
}

func (wl *WriterLogger) Printf(format string, args ...interface{}) {
	fmt.Fprintf(wl.w, format, args...)
}

// Scene is what the renderer needs from a scene
type Scene interface {
	integrator.Scene
	GetCamera() *Camera
}

// RenderConfig contains rendering configuration
type RenderConfig struct {
	SamplesPerPixel  int           // Number of rays per pixel
	MaxDepth         int           // Maximum ray bounce depth
	NumWorkers       int           // Worker goroutines; <= 0 uses the physical core count
	SegmentWidth     int           // Columns per work unit; <= 0 renders whole rows
	Seed             int64         // Base seed, combined with each segment id
	Gamma            float64       // Display gamma; <= 0 uses 2
	ProgressInterval time.Duration // Time between progress lines; <= 0 disables them
}

// DefaultRenderConfig returns sensible default values
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		SamplesPerPixel:  100,
		MaxDepth:         50,
		NumWorkers:       0,
		SegmentWidth:     0,
		Seed:             42,
		Gamma:            2.0,
		ProgressInterval: 2 * time.Second,
	}
}

// Renderer renders a scene into a FrameBuffer with a fixed pool of workers
type Renderer struct {
	scene      Scene
	integrator integrator.Integrator
	config     RenderConfig
	logger     core.Logger
}

// segment is one unit of work: columns [x0, x1) of row y
type segment struct {
	id     int
	y      int
	x0, x1 int
}

// NewRenderer creates a renderer; scene and integrator must not change while it runs
func NewRenderer(scene Scene, integ integrator.Integrator, config RenderConfig, logger core.Logger) *Renderer {
	if config.Gamma <= 0 {
		config.Gamma = 2.0
	}
	return &Renderer{
		scene:      scene,
		integrator: integ,
		config:     config,
		logger:     logger,
	}
}

// Render samples every pixel and returns the encoded image with statistics.
// It blocks until all workers have finished.
func (r *Renderer) Render() (*FrameBuffer, RenderStats) {
	camera := r.scene.GetCamera()
	fb := NewFrameBuffer(camera.Width(), camera.Height())
	segments := r.segments(fb.Width, fb.Height)
	workers := min(r.workerCount(), len(segments))

	r.logger.Printf("Rendering %dx%d at %d spp, depth %d: %d segments on %d workers\n",
		fb.Width, fb.Height, r.config.SamplesPerPixel, r.config.MaxDepth, len(segments), workers)

	progress := NewProgress(len(segments), r.config.ProgressInterval)
	stop := make(chan struct{})
	var reporter sync.WaitGroup
	if r.config.ProgressInterval > 0 {
		reporter.Add(1)
		go func() {
			defer reporter.Done()
			progress.Run(r.logger, r.config.ProgressInterval, stop)
		}()
	}

	start := time.Now()
	if workers == 1 {
		for _, seg := range segments {
			r.renderSegment(fb, camera, seg)
			progress.Complete()
		}
	} else {
		r.renderParallel(fb, camera, segments, workers, progress)
	}
	close(stop)
	// The reporter must be gone before anything else is logged
	reporter.Wait()

	stats := RenderStats{
		TotalPixels:  fb.Width * fb.Height,
		TotalSamples: fb.Width * fb.Height * max(0, r.config.SamplesPerPixel),
		Segments:     len(segments),
		Workers:      workers,
		Elapsed:      time.Since(start),
	}
	r.logger.Printf("Render completed in %v (%.0f samples/s)\n", stats.Elapsed.Round(time.Millisecond), stats.SamplesPerSecond())

	return fb, stats
}

// renderParallel feeds segments to a fixed pool and waits for it to drain
func (r *Renderer) renderParallel(fb *FrameBuffer, camera *Camera, segments []segment, workers int, progress *Progress) {
	queue := make(chan segment)

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for seg := range queue {
				r.renderSegment(fb, camera, seg)
				progress.Complete()
			}
			return nil
		})
	}

	for _, seg := range segments {
		queue <- seg
	}
	close(queue)

	// Workers never return an error; Wait is the join
	_ = g.Wait()
}

// renderSegment samples each pixel of seg and writes it into the segment's own span
func (r *Renderer) renderSegment(fb *FrameBuffer, camera *Camera, seg segment) {
	sampler := core.NewSeededSampler(r.config.Seed*segmentSeedStride + int64(seg.id))
	span := fb.Span(seg.y, seg.x0, seg.x1)

	for x := seg.x0; x < seg.x1; x++ {
		var ps PixelStats
		for s := 0; s < r.config.SamplesPerPixel; s++ {
			ray := camera.GetRay(x, seg.y, sampler)
			ps.AddSample(sanitize(r.integrator.RayColor(ray, r.scene, sampler, r.config.MaxDepth)))
		}

		b, g, red := toBytes(ps.GetColor(), r.config.Gamma)
		i := (x - seg.x0) * bytesPerPixel
		span[i], span[i+1], span[i+2] = b, g, red
	}
}

// segments splits every row into runs of at most SegmentWidth columns
func (r *Renderer) segments(width, height int) []segment {
	segWidth := r.config.SegmentWidth
	if segWidth <= 0 || segWidth > width {
		segWidth = width
	}

	perRow := (width + segWidth - 1) / segWidth
	segments := make([]segment, 0, perRow*height)
	for y := 0; y < height; y++ {
		for x0 := 0; x0 < width; x0 += segWidth {
			segments = append(segments, segment{
				id: len(segments),
				y:  y,
				x0: x0,
				x1: min(x0+segWidth, width),
			})
		}
	}
	return segments
}

// workerCount resolves NumWorkers, defaulting to the physical core count
func (r *Renderer) workerCount() int {
	if r.config.NumWorkers > 0 {
		return r.config.NumWorkers
	}
	if n, err := cpu.Counts(false); err == nil && n > 0 {
		return n
	}
	return runtime.NumCPU()
}

// sanitize zeroes NaN channels so one bad path can't poison a pixel
func sanitize(c core.Vec3) core.Vec3 {
	if !c.HasNaN() {
		return c
	}
	clean := func(x float64) float64 {
		if math.IsNaN(x) {
			return 0
		}
		return x
	}
	return core.NewVec3(clean(c.X), clean(c.Y), clean(c.Z))
}

// toBytes gamma-encodes a linear color, clamps it to [0,1] and scales to bytes
func toBytes(c core.Vec3, gamma float64) (b, g, r byte) {
	c = c.GammaCorrect(gamma).Clamp(0.0, 1.0)
	return uint8(255 * c.Z), uint8(255 * c.Y), uint8(255 * c.X)
}
