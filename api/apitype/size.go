package apitype

import (
	"image"
)

type Size struct {
	width  int
	height int
}

func SizeOf(width int, height int) Size {
	return Size{width, height}
}

func (s *Size) Width() int {
	return s.width
}

func (s *Size) Height() int {
	return s.height
}

// RectangleOfScaledToFit returns the largest size with the source's aspect
// ratio that fits inside the target.
func RectangleOfScaledToFit(source image.Rectangle, target Size) Size {
	sourceWidth := float64(source.Dx())
	sourceHeight := float64(source.Dy())
	ratio := sourceWidth / sourceHeight

	if sourceWidth > sourceHeight {
		width := float64(target.Width())
		return SizeOf(int(width), int(width/ratio))
	} else {
		height := float64(target.Height())
		return SizeOf(int(height*ratio), int(height))
	}
}
