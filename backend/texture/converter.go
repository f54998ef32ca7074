package texture

import (
	"errors"
	"image"

	"github.com/disintegration/imaging"
	"vincit.fi/raw-viewer/api"
	"vincit.fi/raw-viewer/api/apitype"
)

// RGBAConverter creates display-ready handles on the consumer thread. The
// handle keeps the pixels on the CPU side; an actual GPU upload would take
// Texture.Image() from here.
type RGBAConverter struct {
	api.TextureConverter
}

func NewRGBAConverter() api.TextureConverter {
	return &RGBAConverter{}
}

// ConvertToTexture consumes the buffer and applies the Exif orientation so
// the handle is ready to draw as-is.
func (s *RGBAConverter) ConvertToTexture(buffer *apitype.PixelBuffer, orientation int) (*apitype.Texture, error) {
	if buffer.IsEmpty() {
		return nil, errors.New("empty pixel buffer")
	}

	width := buffer.Width()
	height := buffer.Height()
	stride := buffer.Stride()
	img := &image.RGBA{
		Pix:    buffer.TakePix(),
		Stride: stride,
		Rect:   image.Rect(0, 0, width, height),
	}

	return apitype.NewTexture(orientImage(img, orientation)), nil
}

// orientImage undoes the capture rotation described by an Exif orientation
// value (1..8). Unknown values are treated as upright.
func orientImage(img image.Image, orientation int) image.Image {
	switch orientation {
	case 2:
		return imaging.FlipH(img)
	case 3:
		return imaging.Rotate180(img)
	case 4:
		return imaging.FlipV(img)
	case 5:
		return imaging.Transpose(img)
	case 6:
		return imaging.Rotate270(img)
	case 7:
		return imaging.Transverse(img)
	case 8:
		return imaging.Rotate90(img)
	default:
		return img
	}
}
