package renderer

import (
	"fmt"
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// CameraConfig contains all camera configuration parameters
type CameraConfig struct {
	Center          core.Vec3 // Camera position
	LookAt          core.Vec3 // Point the camera is looking at
	Up              core.Vec3 // Up direction (usually 0,1,0)
	VFov            float64   // Vertical field of view in degrees
	Width           int       // Image width in pixels
	AspectRatio     float64   // Width / height
	Aperture        float64   // Lens diameter; 0 disables depth of field
	FocusDistance   float64   // Distance to the plane in focus; <= 0 uses |Center - LookAt|
	ShutterDuration float64   // Ray times are drawn from [0, ShutterDuration]; at most 1, the end of object motion
}

// DefaultCameraConfig looks down -Z from the origin at a 16:9 image
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		Center:      core.NewVec3(0, 0, 0),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        90,
		Width:       400,
		AspectRatio: 16.0 / 9.0,
	}
}

// Camera generates primary rays. It is immutable once built and safe for
// concurrent use.
type Camera struct {
	config CameraConfig
	width  int
	height int

	center      core.Vec3
	pixel00     core.Vec3 // Center of the upper-left pixel
	pixelDeltaU core.Vec3 // Offset to the pixel on the right
	pixelDeltaV core.Vec3 // Offset to the pixel below
	u, v, w     core.Vec3 // Camera basis, w points away from the view direction
	defocusU    core.Vec3 // Lens disk horizontal radius
	defocusV    core.Vec3 // Lens disk vertical radius
}

// NewCamera derives the viewing basis and pixel grid from config.
// It panics if the configured image would have no pixels, if the view
// direction or up vector is degenerate, or if the shutter is outside [0, 1].
func NewCamera(config CameraConfig) *Camera {
	if config.Width <= 0 || config.AspectRatio <= 0 {
		panic(fmt.Sprintf("renderer: invalid image size, width %d aspect %g", config.Width, config.AspectRatio))
	}
	// Moving objects are only bounded between times 0 and 1
	if config.ShutterDuration < 0 || config.ShutterDuration > 1 {
		panic(fmt.Sprintf("renderer: shutter duration %g outside [0, 1]", config.ShutterDuration))
	}
	if config.Center.Subtract(config.LookAt).NearZero() {
		panic(fmt.Sprintf("renderer: camera center %v coincides with look-at point", config.Center))
	}
	if config.Up.Cross(config.Center.Subtract(config.LookAt)).NearZero() {
		panic(fmt.Sprintf("renderer: up vector %v is zero or parallel to the view direction", config.Up))
	}

	width := config.Width
	height := max(1, int(float64(width)/config.AspectRatio))

	focusDistance := config.FocusDistance
	if focusDistance <= 0 {
		focusDistance = config.Center.Subtract(config.LookAt).Length()
	}

	theta := config.VFov * math.Pi / 180.0
	viewportHeight := 2 * math.Tan(theta/2) * focusDistance
	viewportWidth := viewportHeight * float64(width) / float64(height)

	w := config.Center.Subtract(config.LookAt).Normalize()
	u := config.Up.Cross(w).Normalize()
	v := w.Cross(u)

	// Viewport edges run right along u and down along -v
	viewportU := u.Multiply(viewportWidth)
	viewportV := v.Multiply(-viewportHeight)
	pixelDeltaU := viewportU.Multiply(1.0 / float64(width))
	pixelDeltaV := viewportV.Multiply(1.0 / float64(height))

	upperLeft := config.Center.
		Subtract(w.Multiply(focusDistance)).
		Subtract(viewportU.Multiply(0.5)).
		Subtract(viewportV.Multiply(0.5))

	defocusRadius := config.Aperture / 2

	return &Camera{
		config:      config,
		width:       width,
		height:      height,
		center:      config.Center,
		pixel00:     upperLeft.Add(pixelDeltaU.Add(pixelDeltaV).Multiply(0.5)),
		pixelDeltaU: pixelDeltaU,
		pixelDeltaV: pixelDeltaV,
		u:           u,
		v:           v,
		w:           w,
		defocusU:    u.Multiply(defocusRadius),
		defocusV:    v.Multiply(defocusRadius),
	}
}

// Width returns the image width in pixels
func (c *Camera) Width() int {
	return c.width
}

// Height returns the image height in pixels
func (c *Camera) Height() int {
	return c.height
}

// Config returns the configuration the camera was built from
func (c *Camera) Config() CameraConfig {
	return c.config
}

// GetCameraForward returns the unit view direction
func (c *Camera) GetCameraForward() core.Vec3 {
	return c.w.Negate()
}

// GetRay returns a ray through a random point of pixel (i, j), counted from
// the upper-left corner, leaving a random point of the lens at a random time.
func (c *Camera) GetRay(i, j int, sampler core.Sampler) core.Ray {
	offset := sampler.Get2D()
	pixelSample := c.pixel00.
		Add(c.pixelDeltaU.Multiply(float64(i) + offset.X - 0.5)).
		Add(c.pixelDeltaV.Multiply(float64(j) + offset.Y - 0.5))

	origin := c.center
	if c.config.Aperture > 0 {
		p := core.SamplePointInUnitDisk(sampler.Get2D())
		origin = origin.Add(c.defocusU.Multiply(p.X)).Add(c.defocusV.Multiply(p.Y))
	}

	var time float64
	if c.config.ShutterDuration > 0 {
		time = sampler.Get1D() * c.config.ShutterDuration
	}

	return core.NewRayAtTime(origin, pixelSample.Subtract(origin), time)
}

// MergeCameraConfig returns base with every non-zero field of override applied
func MergeCameraConfig(base, override CameraConfig) CameraConfig {
	result := base
	if override.Center != (core.Vec3{}) {
		result.Center = override.Center
	}
	if override.LookAt != (core.Vec3{}) {
		result.LookAt = override.LookAt
	}
	if override.Up != (core.Vec3{}) {
		result.Up = override.Up
	}
	if override.VFov != 0 {
		result.VFov = override.VFov
	}
	if override.Width != 0 {
		result.Width = override.Width
	}
	if override.AspectRatio != 0 {
		result.AspectRatio = override.AspectRatio
	}
	if override.Aperture != 0 {
		result.Aperture = override.Aperture
	}
	if override.FocusDistance != 0 {
		result.FocusDistance = override.FocusDistance
	}
	if override.ShutterDuration != 0 {
		result.ShutterDuration = override.ShutterDuration
	}
	return result
}
