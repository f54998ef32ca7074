package apitype

import (
	"image"
)

// Texture is the display-ready handle produced on the consumer thread. The
// pixel data is already oriented; a renderer can upload Image() as-is.
type Texture struct {
	image  image.Image
	width  int
	height int
}

func NewTexture(img image.Image) *Texture {
	bounds := img.Bounds()
	return &Texture{
		image:  img,
		width:  bounds.Dx(),
		height: bounds.Dy(),
	}
}

func (s *Texture) Image() image.Image {
	if s != nil {
		return s.image
	} else {
		return nil
	}
}

func (s *Texture) Width() int {
	if s != nil {
		return s.width
	} else {
		return 0
	}
}

func (s *Texture) Height() int {
	if s != nil {
		return s.height
	} else {
		return 0
	}
}

func (s *Texture) ByteSize() int {
	if s == nil {
		return 0
	}
	// Approximation using the image size
	const bytesPerPixel = 4
	return s.width * s.height * bytesPerPixel
}
