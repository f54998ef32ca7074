package api

import (
	"vincit.fi/raw-viewer/api/apitype"
)

// ImageDecoder opens an image source for decoding. Open does the expensive
// shared work (reading the file, parsing metadata) once so that a preview
// and a full decode of the same source reuse it.
type ImageDecoder interface {
	Open(path string) (DecodedImage, error)
}

// DecodedImage is one opened source. Not safe for concurrent use; a worker
// owns it for the duration of one task.
type DecodedImage interface {
	// Orientation returns the EXIF orientation value (1..8, 1 = upright).
	Orientation() int
	DecodePreview() (*apitype.PixelBuffer, error)
	DecodeFull() (*apitype.PixelBuffer, error)
	Close()
}
