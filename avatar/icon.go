package avatar

import (
	"image"
	"image/color"
	"io"
	"math"

	"github.com/disintegration/imaging"
)

var (
	iconIndigo = color.NRGBA{R: 99, G: 102, B: 241, A: 255} // #6366f1
	iconWhite  = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

// Icon menggambar ikon launcher PWA: smiley putih di atas indigo.
func Icon(size int) image.Image {
	if size <= 0 {
		size = 192
	}
	img := imaging.New(size, size, iconIndigo)

	s := float64(size)
	faceX := s / 2
	faceY := s/2 - s*0.1
	fillCircle(img, faceX, faceY, s*0.25, iconWhite)

	eyeY := faceY - s*0.05
	fillCircle(img, faceX-s*0.08, eyeY, s*0.03, iconIndigo)
	fillCircle(img, faceX+s*0.08, eyeY, s*0.03, iconIndigo)

	arc(img, faceX, faceY+s*0.05, s*0.15, s*0.01, iconIndigo)
	return img
}

// EncodeIconPNG menulis ikon sebagai PNG.
func EncodeIconPNG(w io.Writer, size int) error {
	return imaging.Encode(w, Icon(size), imaging.PNG)
}

func fillCircle(img *image.NRGBA, cx, cy, r float64, col color.NRGBA) {
	x0, x1 := int(cx-r), int(cx+r)
	y0, y1 := int(cy-r), int(cy+r)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			dx, dy := float64(x)-cx, float64(y)-cy
			if dx*dx+dy*dy <= r*r {
				img.SetNRGBA(x, y, col)
			}
		}
	}
}

// arc menggambar busur senyum (setengah lingkaran bawah) setebal thickness.
func arc(img *image.NRGBA, cx, cy, r, thickness float64, col color.NRGBA) {
	if thickness < 1 {
		thickness = 1
	}
	steps := int(r * 8)
	if steps < 64 {
		steps = 64
	}
	for i := 0; i <= steps; i++ {
		theta := math.Pi * float64(i) / float64(steps) // 0..180°
		x := cx + r*math.Cos(theta)
		y := cy + r*math.Sin(theta)
		fillCircle(img, x, y, thickness, col)
	}
}
