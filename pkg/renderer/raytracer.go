package renderer

import (
	"image"
	"image/color"
	"io"
	"log"
	"math"
	"math/rand"

	"github.com/glimmerlab/pathtracer/pkg/core"
)

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	SamplesPerPixel int // Number of rays per pixel
	MaxDepth        int // Maximum ray bounce depth
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		SamplesPerPixel: 100,
		MaxDepth:        50,
	}
}

// RenderStats summarizes a completed render
type RenderStats struct {
	TotalPixels     int
	TotalSamples    int
	SamplesPerPixel int
	RowsRendered    int
}

// Scene interface to avoid circular imports
type Scene interface {
	GetCamera() *Camera
	GetBackgroundColors() (topColor, bottomColor core.Vec3)
	GetWorld() core.Hittable
}

// Raytracer renders a scene into an image using a row-parallel worker pool
type Raytracer struct {
	scene      Scene
	width      int
	height     int
	config     SamplingConfig
	seed       int64
	numWorkers int
	logger     core.Logger
}

// NewRaytracer creates a new raytracer with default configuration
func NewRaytracer(scene Scene, width, height int) *Raytracer {
	return &Raytracer{
		scene:      scene,
		width:      width,
		height:     height,
		config:     DefaultSamplingConfig(),
		seed:       42, // Deterministic by default
		numWorkers: 0,  // 0 = one worker per CPU
		logger:     log.New(io.Discard, "", 0),
	}
}

// SetSamplingConfig updates the sampling configuration
func (rt *Raytracer) SetSamplingConfig(config SamplingConfig) {
	rt.config = config
}

// SetSeed sets the base seed the per-row randomness streams derive from
func (rt *Raytracer) SetSeed(seed int64) {
	rt.seed = seed
}

// SetWorkers sets the worker pool size (0 = one worker per CPU)
func (rt *Raytracer) SetWorkers(numWorkers int) {
	rt.numWorkers = numWorkers
}

// SetLogger sets the progress logger
func (rt *Raytracer) SetLogger(logger core.Logger) {
	rt.logger = logger
}

// backgroundGradient returns a vertical gradient between the scene's
// horizon and zenith colors based on ray direction
func (rt *Raytracer) backgroundGradient(r core.Ray) core.Vec3 {
	topColor, bottomColor := rt.scene.GetBackgroundColors()

	unitDirection := r.Direction.Normalize()

	// Map the y-component from [-1,1] to [0,1]
	t := 0.5 * (unitDirection.Y + 1.0)

	return bottomColor.Multiply(1.0 - t).Add(topColor.Multiply(t))
}

// rayColor returns the color gathered along a ray by recursively following
// material scatter events until absorption, escape, or the depth cap
func (rt *Raytracer) rayColor(r core.Ray, depth int, random *rand.Rand) core.Vec3 {
	// Hard recursion cutoff: no more light is gathered
	if depth >= rt.config.MaxDepth {
		return core.Vec3{}
	}

	// The 0.001 lower bound avoids self-intersection at scatter origins
	hit, isHit := rt.scene.GetWorld().Hit(r, 0.001, math.Inf(1))
	if !isHit {
		return rt.backgroundGradient(r)
	}

	scatter, didScatter := hit.Material.Scatter(r, *hit, random)
	if !didScatter {
		return core.Vec3{} // Absorbed
	}

	return scatter.Attenuation.MultiplyVec(rt.rayColor(scatter.Scattered, depth+1, random))
}

// vec3ToColor converts a linear color to 8-bit RGBA with gamma-2
// correction, [0, 0.999] clamping, and 255.99 quantization
func vec3ToColor(colorVec core.Vec3) color.RGBA {
	colorVec = colorVec.GammaCorrect(2.0)
	colorVec = colorVec.Clamp(0.0, 0.999)

	return color.RGBA{
		R: uint8(255.99 * colorVec.X),
		G: uint8(255.99 * colorVec.Y),
		B: uint8(255.99 * colorVec.Z),
		A: 255,
	}
}

// renderRow renders a single image row into a private buffer
func (rt *Raytracer) renderRow(j int, random *rand.Rand) []color.RGBA {
	camera := rt.scene.GetCamera()
	row := make([]color.RGBA, rt.width)

	for i := 0; i < rt.width; i++ {
		colorAccum := core.Vec3{}

		for sample := 0; sample < rt.config.SamplesPerPixel; sample++ {
			// Jitter within the pixel for antialiasing
			s := (float64(i) + random.Float64()) / float64(rt.width)
			t := (float64(j) + random.Float64()) / float64(rt.height)

			ray := camera.GetRay(s, t, random)
			colorAccum = colorAccum.Add(rt.rayColor(ray, 0, random))
		}

		colorVec := colorAccum.Multiply(1.0 / float64(rt.config.SamplesPerPixel))
		row[i] = vec3ToColor(colorVec)
	}

	return row
}

// rowSeed derives the seed for one row's private randomness stream
func (rt *Raytracer) rowSeed(row int) int64 {
	return rt.seed + int64(row)
}

// RenderImage renders the full image using the row worker pool and returns
// it along with render statistics. World-space row 0 is the bottom of the
// viewport; it lands in the last image row so image row 0 is the top.
func (rt *Raytracer) RenderImage() (*image.RGBA, RenderStats) {
	img := image.NewRGBA(image.Rect(0, 0, rt.width, rt.height))

	pool := NewWorkerPool(rt.numWorkers, rt.height)
	pool.Start(func(task RowTask) RowResult {
		random := rand.New(rand.NewSource(rt.rowSeed(task.Row)))
		row := rt.renderRow(task.Row, random)

		// One short critical section per completed row
		pool.WriteRow(func() {
			y := rt.height - 1 - task.Row
			for i, px := range row {
				img.SetRGBA(i, y, px)
			}
		})

		return RowResult{Row: task.Row}
	})

	for j := 0; j < rt.height; j++ {
		pool.SubmitTask(RowTask{Row: j})
	}
	pool.CloseTasks()

	rendered := 0
	for rendered < rt.height {
		result, ok := pool.GetResult()
		if !ok {
			break
		}
		rendered++
		rt.logger.Printf("Row %d of %d complete", result.Row+1, rt.height)
	}
	pool.Stop()

	return img, RenderStats{
		TotalPixels:     rt.width * rt.height,
		TotalSamples:    rt.width * rt.height * rt.config.SamplesPerPixel,
		SamplesPerPixel: rt.config.SamplesPerPixel,
		RowsRendered:    rendered,
	}
}
