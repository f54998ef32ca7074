package decoder

import (
	"bytes"
	"image"
	"image/draw"
	"io/ioutil"

	"github.com/nfnt/resize"
	"github.com/pixiv/go-libjpeg/jpeg"
	"github.com/rwcarlsen/goexif/exif"
	"vincit.fi/raw-viewer/api"
	"vincit.fi/raw-viewer/api/apitype"
	"vincit.fi/raw-viewer/common/logger"
)

const previewBound = 256

var (
	options     = &jpeg.DecoderOptions{}
	previewSize = apitype.SizeOf(previewBound, previewBound)
)

type LibJPEGDecoder struct {
	api.ImageDecoder
}

func NewLibJPEGDecoder() api.ImageDecoder {
	return &LibJPEGDecoder{}
}

// Open reads the source file once; both decode stages work from the same
// bytes. EXIF problems are not fatal: many files simply have no metadata.
func (s *LibJPEGDecoder) Open(path string) (api.DecodedImage, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}

	decoded := &decodedImage{
		data:        data,
		orientation: 1,
	}

	if exifData, err := exif.Decode(bytes.NewReader(data)); err != nil {
		logger.Trace.Printf("No usable Exif data in '%s'", path)
	} else {
		decoded.exif = exifData
		if tag, err := exifData.Get(exif.Orientation); err == nil {
			if value, err := tag.Int(0); err == nil {
				decoded.orientation = value
			}
		}
	}

	return decoded, nil
}

type decodedImage struct {
	data        []byte
	exif        *exif.Exif
	orientation int
}

func (s *decodedImage) Orientation() int {
	return s.orientation
}

// DecodePreview prefers the embedded Exif thumbnail. A missing or broken
// thumbnail is a normal outcome, not an error; the fallback is a scaled
// decode of the main image.
func (s *decodedImage) DecodePreview() (*apitype.PixelBuffer, error) {
	if s.exif != nil {
		if thumbnail, err := s.exif.JpegThumbnail(); err == nil {
			if img, err := jpeg.Decode(bytes.NewReader(thumbnail), options); err == nil {
				return toPixelBuffer(img), nil
			}
			logger.Warn.Print("Could not decode embedded thumbnail, decoding scaled")
		}
	}

	img, err := jpeg.Decode(bytes.NewReader(s.data), &jpeg.DecoderOptions{
		ScaleTarget: image.Rect(0, 0, previewBound, previewBound),
	})
	if err != nil {
		return nil, err
	}

	// libjpeg only scales in fixed steps, finish the fit here
	bounds := img.Bounds()
	if bounds.Dx() > previewBound || bounds.Dy() > previewBound {
		fit := apitype.RectangleOfScaledToFit(bounds, previewSize)
		img = resize.Resize(uint(fit.Width()), uint(fit.Height()), img, resize.Bilinear)
	}
	return toPixelBuffer(img), nil
}

func (s *decodedImage) DecodeFull() (*apitype.PixelBuffer, error) {
	img, err := jpeg.Decode(bytes.NewReader(s.data), options)
	if err != nil {
		return nil, err
	}
	return toPixelBuffer(img), nil
}

func (s *decodedImage) Close() {
	s.data = nil
	s.exif = nil
}

func toPixelBuffer(img image.Image) *apitype.PixelBuffer {
	if rgba, ok := img.(*image.RGBA); ok {
		return apitype.PixelBufferFromImage(rgba)
	}
	rgba := image.NewRGBA(image.Rect(0, 0, img.Bounds().Dx(), img.Bounds().Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, img.Bounds().Min, draw.Src)
	return apitype.PixelBufferFromImage(rgba)
}
