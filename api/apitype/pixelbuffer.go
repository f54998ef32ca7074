package apitype

import (
	"image"
)

// PixelBuffer is a decoded CPU-side RGBA buffer. Exactly one owner may hold
// it at a time: a buffer crosses the worker/consumer boundary inside a
// LoadResult and is handed over with TakePix, after which the source is
// empty. Go has no move semantics, so the single consuming accessor is the
// transfer point.
type PixelBuffer struct {
	pix    []byte
	width  int
	height int
	stride int
}

func NewPixelBuffer(pix []byte, width int, height int, stride int) *PixelBuffer {
	return &PixelBuffer{
		pix:    pix,
		width:  width,
		height: height,
		stride: stride,
	}
}

func PixelBufferFromImage(img *image.RGBA) *PixelBuffer {
	bounds := img.Bounds()
	return NewPixelBuffer(img.Pix, bounds.Dx(), bounds.Dy(), img.Stride)
}

func (s *PixelBuffer) Width() int {
	return s.width
}

func (s *PixelBuffer) Height() int {
	return s.height
}

func (s *PixelBuffer) Stride() int {
	return s.stride
}

func (s *PixelBuffer) IsEmpty() bool {
	return s == nil || s.pix == nil
}

func (s *PixelBuffer) ByteSize() int {
	if s == nil {
		return 0
	}
	return len(s.pix)
}

// TakePix transfers ownership of the pixel data to the caller and leaves
// the buffer empty. Must only be called by the buffer's current owner.
func (s *PixelBuffer) TakePix() []byte {
	pix := s.pix
	s.pix = nil
	return pix
}
