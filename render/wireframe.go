package render

import (
	"math"

	"terraglow/constant"
	"terraglow/vmath"
)

var wireColor = RGB{70, 85, 110}

// DrawWireframe paints a low-detail spinning wire sphere, used as the
// loading placeholder so the layout holds its shape while the scene builds
func DrawWireframe(buf *Buffer, vp Rect, angle float64) {
	cx := float64(vp.X) + float64(vp.W)/2.0
	cy := float64(vp.Y) + float64(vp.H)/2.0
	scale := projScale(vp)
	dist := constant.CameraDefaultDistance

	const rings = 4
	const meridians = 6
	const samples = 48
	radius := constant.ParticleInnerRadius

	plot := func(p vmath.Vec3) {
		v := vmath.RotateY(p, angle)
		z := dist - v.Z
		if z < 0.5 {
			return
		}
		invZ := constant.CameraFocalLength / z
		sx := cx + v.X*invZ*scale*constant.CellAspect
		sy := cy - v.Y*invZ*scale
		shade := depthShade(v.Z, &Camera{Distance: dist})
		buf.Set(int(sx), int(sy), '·', Scale(wireColor, shade), RGBBlack, BlendAlpha, 0.8)
	}

	for r := 0; r < rings; r++ {
		lat := (float64(r)+0.5)/rings*math.Pi - math.Pi/2
		ringR := radius * math.Cos(lat)
		y := radius * math.Sin(lat)
		for i := 0; i < samples; i++ {
			a := float64(i) / samples * 2 * math.Pi
			plot(vmath.Vec3{X: ringR * math.Cos(a), Y: y, Z: ringR * math.Sin(a)})
		}
	}

	for m := 0; m < meridians; m++ {
		lon := float64(m) / meridians * math.Pi
		sinLon, cosLon := math.Sincos(lon)
		for i := 0; i < samples; i++ {
			a := float64(i) / samples * 2 * math.Pi
			sinA, cosA := math.Sincos(a)
			plot(vmath.Vec3{
				X: radius * cosA * cosLon,
				Y: radius * sinA,
				Z: radius * cosA * sinLon,
			})
		}
	}
}
