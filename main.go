package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/loaders"
	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/scene"
)

const version = "0.1.0"

// renderOptions holds the flags of the render command
type renderOptions struct {
	sceneType        string
	width            int
	samplesPerPixel  int // 0 keeps the scene's own setting
	maxDepth         int // 0 keeps the scene's own setting
	workers          int
	segmentWidth     int
	seed             int64
	gamma            float64
	output           string
	texture          string
	progressInterval time.Duration
}

func main() {
	if err := fang.Execute(context.Background(), newRootCmd(), fang.WithVersion(version)); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "pathtracer",
		Short:        "Offline Monte-Carlo path tracer",
		SilenceUsage: true,
	}
	root.AddCommand(newRenderCmd(), newScenesCmd())
	return root
}

func newRenderCmd() *cobra.Command {
	defaults := renderer.DefaultRenderConfig()
	opts := renderOptions{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a built-in scene to an image file",
		Long: "Render a built-in scene to an image file.\n\n" +
			"The output format follows the file extension (.tga, .png, .jpg). Without --output " +
			"the image is written to output/<scene>/render_<timestamp>.tga.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(opts, renderer.NewWriterLogger(cmd.OutOrStdout()))
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.sceneType, "scene", "s", "default", "scene to render (see 'pathtracer scenes')")
	flags.IntVarP(&opts.width, "width", "w", 0, "image width in pixels; 0 keeps the scene default")
	flags.IntVar(&opts.samplesPerPixel, "spp", 0, "samples per pixel; 0 keeps the scene default")
	flags.IntVar(&opts.maxDepth, "depth", 0, "maximum bounce depth; 0 keeps the scene default")
	flags.IntVarP(&opts.workers, "workers", "j", defaults.NumWorkers, "worker goroutines; 0 uses the physical core count")
	flags.IntVar(&opts.segmentWidth, "segment", defaults.SegmentWidth, "columns per work unit; 0 renders whole rows")
	flags.Int64Var(&opts.seed, "seed", defaults.Seed, "base random seed")
	flags.Float64Var(&opts.gamma, "gamma", defaults.Gamma, "display gamma")
	flags.StringVarP(&opts.output, "output", "o", "", "output image path")
	flags.StringVar(&opts.texture, "texture", "", "image to map onto the textures scene")
	flags.DurationVar(&opts.progressInterval, "progress", defaults.ProgressInterval, "time between progress lines; 0 disables them")

	return cmd
}

func newScenesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scenes",
		Short: "List the built-in scenes",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			listScenes(cmd.OutOrStdout())
		},
	}
}

func listScenes(w io.Writer) {
	for _, info := range scene.ListScenes() {
		fmt.Fprintf(w, "  %-12s %s\n", info.ID, info.Description)
	}
}

// createScene builds the named scene with the width override applied
func createScene(opts renderOptions) (*scene.Scene, error) {
	override := renderer.CameraConfig{Width: opts.width}

	if opts.texture != "" {
		if opts.sceneType != "textures" {
			return nil, fmt.Errorf("--texture only applies to the textures scene, not %q", opts.sceneType)
		}
		texture, err := loaders.LoadTexture(opts.texture)
		if err != nil {
			return nil, err
		}
		return scene.NewTextureScene(texture, override), nil
	}

	info, err := scene.Lookup(opts.sceneType)
	if err != nil {
		return nil, err
	}
	return info.Build(override), nil
}

// renderConfig combines the flags with the scene's preferred sampling settings
func renderConfig(opts renderOptions, sampling scene.SamplingConfig) renderer.RenderConfig {
	config := renderer.RenderConfig{
		SamplesPerPixel:  sampling.SamplesPerPixel,
		MaxDepth:         sampling.MaxDepth,
		NumWorkers:       opts.workers,
		SegmentWidth:     opts.segmentWidth,
		Seed:             opts.seed,
		Gamma:            opts.gamma,
		ProgressInterval: opts.progressInterval,
	}
	if opts.samplesPerPixel > 0 {
		config.SamplesPerPixel = opts.samplesPerPixel
	}
	if opts.maxDepth > 0 {
		config.MaxDepth = opts.maxDepth
	}
	return config
}

func runRender(opts renderOptions, logger core.Logger) error {
	if opts.width < 0 {
		return fmt.Errorf("width must not be negative, got %d", opts.width)
	}

	s, err := createScene(opts)
	if err != nil {
		return err
	}
	logger.Printf("Scene %q: %d objects", opts.sceneType, s.GetPrimitiveCount())
	if bvh, ok := s.GetWorld().(*geometry.BVHNode); ok {
		stats := bvh.Stats()
		logger.Printf(", BVH with %d nodes, depth %d", stats.Nodes, stats.MaxDepth)
	}
	logger.Printf("\n")

	output := opts.output
	if output == "" {
		timestamp := time.Now().Format("20060102_150405")
		output = filepath.Join("output", opts.sceneType, fmt.Sprintf("render_%s.tga", timestamp))
	}
	if err := os.MkdirAll(filepath.Dir(output), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	r := renderer.NewRenderer(s, integrator.NewPathTracingIntegrator(), renderConfig(opts, s.SamplingConfig), logger)
	fb, _ := r.Render()

	if err := loaders.SaveImage(output, fb); err != nil {
		return err
	}

	logger.Printf("Average luminance %.3f\n", renderer.CalculateAverageLuminance(fb))
	logger.Printf("Render saved as %s\n", output)
	return nil
}
