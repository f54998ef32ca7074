package api

import (
	"vincit.fi/raw-viewer/api/apitype"
)

// TextureConverter turns a decoded CPU buffer into a display-ready handle.
// Called only from the consumer thread; conversion consumes the buffer.
type TextureConverter interface {
	ConvertToTexture(buffer *apitype.PixelBuffer, orientation int) (*apitype.Texture, error)
}
