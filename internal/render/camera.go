package render

import "math"

type Vec3 struct {
	X, Y, Z float64
}

// Vec3 methods.
func (v Vec3) Add(o Vec3) Vec3      { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3      { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }
func (v Vec3) Length() float64      { return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z) }

// Camera orbits the origin. Elevation and Azimuth are in degrees, the
// vertical axis is Y and the camera looks down -Z before rotation.
type Camera struct {
	Elevation, Azimuth float64
	Distance           float64
	Zoom               float64
}

func NewCamera() *Camera {
	return &Camera{Elevation: 30, Azimuth: 30, Distance: 4, Zoom: 0.55}
}

// Sweep returns the camera for a given progress: it starts from a side view
// and rises toward a top view while rotating around the scene.
func Sweep(progress float64) *Camera {
	c := NewCamera()
	c.Elevation = 30 - 20*progress
	c.Azimuth = 30 + 50*progress
	return c
}

// RotatePoint turns a world point into camera space.
func (c *Camera) RotatePoint(p Vec3) Vec3 {
	az := c.Azimuth * math.Pi / 180
	el := c.Elevation * math.Pi / 180
	ca, sa := math.Cos(az), math.Sin(az)
	p.X, p.Z = p.X*ca-p.Z*sa, p.X*sa+p.Z*ca
	ce, se := math.Cos(el), math.Sin(el)
	p.Y, p.Z = p.Y*ce-p.Z*se, p.Y*se+p.Z*ce
	return p
}

// Project converts world coordinates to screen coordinates.
// Returns x, y, depth (larger is nearer) and visibility.
func (c *Camera) Project(p Vec3, sw, sh int) (int, int, float64, bool) {
	rot := c.RotatePoint(p)
	dist := c.Distance
	if rot.Z >= dist-0.1 {
		return 0, 0, 0, false
	}
	scale := dist / (dist - rot.Z)
	minDim := float64(sh)
	if float64(sw) < minDim {
		minDim = float64(sw)
	}
	pScale := minDim * c.Zoom
	sx := int(rot.X*scale*pScale) + sw/2
	sy := int(-rot.Y*scale*pScale) + sh/2
	return sx, sy, rot.Z, sx >= 0 && sx < sw && sy >= 0 && sy < sh
}

// CubeEdges returns the 12 edges of an axis-aligned cube centered on the
// origin.
func CubeEdges(size float64) [][2]Vec3 {
	s := size / 2
	v := []Vec3{{-s, -s, -s}, {s, -s, -s}, {s, s, -s}, {-s, s, -s}, {-s, -s, s}, {s, -s, s}, {s, s, s}, {-s, s, s}}
	ei := [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}, {4, 5}, {5, 6}, {6, 7}, {7, 4}, {0, 4}, {1, 5}, {2, 6}, {3, 7}}
	edges := make([][2]Vec3, len(ei))
	for i, e := range ei {
		edges[i] = [2]Vec3{v[e[0]], v[e[1]]}
	}
	return edges
}
