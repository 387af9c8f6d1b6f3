package renderer

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
)

const tolerance = 1e-9

// testScene is a minimal Scene for exercising the renderer directly
type testScene struct {
	background core.Vec3
	ambient    lights.Light
	geometries geometry.Intersectable
	camera     *geometry.Camera
	viewPlane  geometry.ViewPlane
	lights     []lights.LightSource
}

func (s *testScene) Background() core.Vec3              { return s.background }
func (s *testScene) AmbientLight() lights.Light         { return s.ambient }
func (s *testScene) Geometries() geometry.Intersectable { return s.geometries }
func (s *testScene) Camera() *geometry.Camera           { return s.camera }
func (s *testScene) ViewPlane() geometry.ViewPlane      { return s.viewPlane }
func (s *testScene) Lights() []lights.LightSource       { return s.lights }

// newTestScene creates a scene with the camera at the origin looking along +z
func newTestScene(t *testing.T, distance float64, items ...geometry.Intersectable) *testScene {
	t.Helper()
	camera, err := geometry.NewCamera(core.Vec3{}, core.NewVec3(0, 0, 1), core.NewVec3(0, -1, 0))
	if err != nil {
		t.Fatalf("NewCamera: %v", err)
	}
	return &testScene{
		ambient:    lights.NewAmbientLight(core.Vec3{}, 0),
		geometries: geometry.NewGeometries(items...),
		camera:     camera,
		viewPlane:  geometry.ViewPlane{Distance: distance, Width: 2, Height: 2},
	}
}

// memorySink keeps rendered pixels in memory and counts writes per pixel
type memorySink struct {
	nx, ny  int
	pixels  []core.Vec3
	writes  []int
	flushes int
}

func newMemorySink(nx, ny int) *memorySink {
	return &memorySink{
		nx:     nx,
		ny:     ny,
		pixels: make([]core.Vec3, nx*ny),
		writes: make([]int, nx*ny),
	}
}

func (m *memorySink) Resolution() (int, int) {
	return m.nx, m.ny
}

func (m *memorySink) WritePixel(col, row int, color core.Vec3) {
	m.pixels[row*m.nx+col] = color
	m.writes[row*m.nx+col]++
}

func (m *memorySink) Flush() error {
	m.flushes++
	return nil
}

func (m *memorySink) at(col, row int) core.Vec3 {
	return m.pixels[row*m.nx+col]
}

// recordingLogger collects log lines from concurrent workers
type recordingLogger struct {
	mu    sync.Mutex
	lines []string
}

func (l *recordingLogger) Printf(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, fmt.Sprintf(format, args...))
}

func (l *recordingLogger) contains(substr string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, line := range l.lines {
		if strings.Contains(line, substr) {
			return true
		}
	}
	return false
}

func mustPlane(t *testing.T, point, normal core.Vec3, opts ...geometry.Option) *geometry.Plane {
	t.Helper()
	p, err := geometry.NewPlane(point, normal, opts...)
	if err != nil {
		t.Fatalf("NewPlane: %v", err)
	}
	return p
}

func mustSphere(t *testing.T, center core.Vec3, radius float64, opts ...geometry.Option) *geometry.Sphere {
	t.Helper()
	s, err := geometry.NewSphere(center, radius, opts...)
	if err != nil {
		t.Fatalf("NewSphere: %v", err)
	}
	return s
}

// zPlanes creates planes facing the camera at each z
func zPlanes(t *testing.T, zs ...float64) []geometry.Intersectable {
	t.Helper()
	items := make([]geometry.Intersectable, len(zs))
	for i, z := range zs {
		items[i] = mustPlane(t, core.NewVec3(0, 0, z), core.NewVec3(0, 0, -1))
	}
	return items
}

// panickingGeometry fails every intersection test with a numeric error
type panickingGeometry struct{}

func (panickingGeometry) FindIntersections(core.Ray) []geometry.GeoPoint {
	panic(fmt.Errorf("degenerate test geometry: %w", core.ErrInvalidVector))
}

func (panickingGeometry) BoundingBox() (core.AABB, bool) {
	return core.AABB{}, false
}

func ambientOf(color core.Vec3) lights.Light {
	return lights.NewAmbientLight(color, 1)
}

func newRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
