package pipeline

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"sync"
)

const placeholderSize = 64

var (
	placeholderOnce sync.Once
	placeholderPNG  []byte
)

// Placeholder returns a small generated night-sky PNG used whenever an
// item's image bytes cannot be decoded. The same bytes are returned on
// every call, so cache de-duplication applies to failed images too.
func Placeholder() []byte {
	placeholderOnce.Do(func() {
		placeholderPNG = renderPlaceholder()
	})
	return placeholderPNG
}

// starField is a fixed scatter of bright pixels; generated output must be
// byte-identical across runs.
var starField = [][2]int{
	{5, 7}, {14, 3}, {22, 12}, {31, 5}, {40, 18}, {51, 9},
	{9, 26}, {19, 33}, {58, 29}, {4, 44}, {27, 49}, {37, 41},
	{47, 55}, {56, 47}, {12, 58}, {33, 60},
}

func renderPlaceholder() []byte {
	img := image.NewNRGBA(image.Rect(0, 0, placeholderSize, placeholderSize))

	sky := color.NRGBA{R: 10, G: 12, B: 28, A: 255}
	for y := 0; y < placeholderSize; y++ {
		for x := 0; x < placeholderSize; x++ {
			img.SetNRGBA(x, y, sky)
		}
	}

	star := color.NRGBA{R: 230, G: 230, B: 245, A: 255}
	for _, pos := range starField {
		img.SetNRGBA(pos[0], pos[1], star)
	}

	// Crescent moon: a bright disc with an offset sky-colored disc cut
	// out of it.
	moon := color.NRGBA{R: 214, G: 210, B: 196, A: 255}
	const cx, cy, r = 44, 20, 9
	for y := cy - r; y <= cy+r; y++ {
		for x := cx - r; x <= cx+r; x++ {
			if inDisc(x, y, cx, cy, r) && !inDisc(x, y, cx+4, cy-2, r-1) {
				img.SetNRGBA(x, y, moon)
			}
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		// Encoding an in-memory NRGBA cannot fail.
		panic(err)
	}
	return buf.Bytes()
}

func inDisc(x, y, cx, cy, r int) bool {
	dx, dy := x-cx, y-cy
	return dx*dx+dy*dy <= r*r
}
