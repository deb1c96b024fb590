package render

import (
	"math"

	"terraglow/constant"
	"terraglow/scene"
	"terraglow/vmath"
)

// Rect is a cell-space viewport
type Rect struct {
	X, Y, W, H int
}

// Layer base colors
var (
	arcColor    = RGB{90, 160, 255}
	markerColor = RGB{255, 200, 110}
)

// DrawScene composites one frame of the globe into the viewport:
// particle shell, arc connectors, city markers, then the atmosphere rim pass.
// Particles and glow accumulate additively so draw order inside a layer
// does not matter
func DrawScene(buf *Buffer, s *scene.Scene, cam *Camera, vp Rect) {
	cx := float64(vp.X) + float64(vp.W)/2.0
	cy := float64(vp.Y) + float64(vp.H)/2.0
	scale := projScale(vp)

	for i := range s.Particles.Points {
		p := &s.Particles.Points[i]
		sx, sy, depth, ok := project(p.Pos, s.ParticleAngle, cam, cx, cy, scale)
		if !ok {
			continue
		}
		bright := p.Brightness * depthShade(depth, cam)
		// Grayscale speckle; larger grains land a touch brighter
		bright *= 0.8 + p.Size*10.0
		c := FromFloat(bright, bright, bright)
		buf.Set(int(sx), int(sy), 0, RGBBlack, c, BlendAdd, 0.55)
	}

	for i := range s.Arcs {
		arc := &s.Arcs[i]
		for _, pt := range arc.Points {
			sx, sy, depth, ok := project(pt, s.ArcAngle, cam, cx, cy, scale)
			if !ok {
				continue
			}
			shade := depthShade(depth, cam)
			buf.Set(int(sx), int(sy), 0, RGBBlack, Scale(arcColor, shade), BlendAdd, 0.7)
		}
	}

	for _, m := range s.Markers {
		sx, sy, depth, ok := project(m, s.MarkerAngle, cam, cx, cy, scale)
		if !ok {
			continue
		}
		if depth < 0 {
			// Far-side cities hide behind the particle shell
			continue
		}
		buf.Set(int(sx), int(sy), '●', markerColor, RGBBlack, BlendAlpha, 0.95)
	}

	drawAtmosphere(buf, s, cam, vp, cx, cy, scale)
}

// project rotates a scene point by its layer angle plus the camera orbit,
// then perspective-projects into cell space. ok is false when the point
// falls behind the camera or outside the viewport
func project(p vmath.Vec3, layerAngle float64, cam *Camera, cx, cy, scale float64) (sx, sy, depth float64, ok bool) {
	v := vmath.RotateY(p, layerAngle+cam.Yaw)
	v = vmath.RotateX(v, cam.Pitch)

	z := cam.Distance - v.Z
	if z < 0.5 {
		return 0, 0, 0, false
	}
	invZ := constant.CameraFocalLength / z

	sx = cx + v.X*invZ*scale*constant.CellAspect
	sy = cy - v.Y*invZ*scale
	return sx, sy, v.Z, true
}

// projScale converts world units to cells so the globe fills the viewport
// height with margin for the glow shell. At the mount distance the
// silhouette projects at focal/distance·radius ≈ 1.6 cells per world unit
// of scale, so 0.14·H keeps the shell inside the viewport across the whole
// zoom range
func projScale(vp Rect) float64 {
	return float64(vp.H) * 0.14
}

// depthShade dims far-hemisphere geometry to sell depth without a z-buffer
func depthShade(depth float64, cam *Camera) float64 {
	// depth is the rotated z in [-r, r]; map near→1.0, far→0.25
	t := (depth + constant.ArcRadius) / (2 * constant.ArcRadius)
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return 0.25 + 0.75*t
}

// drawAtmosphere runs the rim-glow pass over the viewport. The glow shell
// is slightly larger than the silhouette; intensity follows the view-angle
// curve and the pulse uniform, composited additively so it rims the globe
// instead of painting over it
func drawAtmosphere(buf *Buffer, s *scene.Scene, cam *Camera, vp Rect, cx, cy, scale float64) {
	t := s.Atmos.Time()

	// Screen radius of the nominal globe silhouette
	silhouette := constant.ParticleInnerRadius * constant.CameraFocalLength / cam.Distance * scale
	shell := silhouette * constant.AtmosShellScale
	if silhouette < 1 {
		return
	}

	minX := maxInt(vp.X, int(cx-shell*constant.CellAspect)-1)
	maxX := minInt(vp.X+vp.W-1, int(cx+shell*constant.CellAspect)+1)
	minY := maxInt(vp.Y, int(cy-shell)-1)
	maxY := minInt(vp.Y+vp.H-1, int(cy+shell)+1)

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			dx := (float64(x) + 0.5 - cx) / constant.CellAspect
			dy := float64(y) + 0.5 - cy
			q := math.Sqrt(dx*dx+dy*dy) / silhouette
			if q > constant.AtmosShellScale {
				continue
			}

			// Surface normal vs view axis at this screen radius; beyond the
			// silhouette the shell normal is edge-on, so the dot stays near zero
			var viewDot float64
			if q < 1 {
				viewDot = math.Sqrt(1 - q*q)
			}

			intensity := scene.RimIntensity(viewDot, t)
			if q > 1 {
				// Fade to nothing at the shell edge
				intensity *= 1 - (q-1)/(constant.AtmosShellScale-1)
			}
			if intensity <= 0.001 {
				continue
			}

			r, g, b, alpha := scene.RimColor(intensity)
			buf.Set(x, y, 0, RGBBlack, FromFloat(r, g, b), BlendAdd, alpha)
		}
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
