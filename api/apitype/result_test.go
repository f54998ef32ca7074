package apitype

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestLoadResult_TakeBufferTransfersOwnership(t *testing.T) {
	a := assert.New(t)

	buffer := NewPixelBuffer(make([]byte, 10*10*4), 10, 10, 40)
	result := NewLoadResult(1, PreviewResult, buffer, 6, uuid.New())

	a.False(result.Failed())
	a.Equal(6, result.Orientation())

	taken := result.TakeBuffer()
	a.NotNil(taken)
	a.False(taken.IsEmpty())
	a.Equal(400, taken.ByteSize())

	// Second take finds nothing, the result no longer owns the buffer
	a.Nil(result.TakeBuffer())
}

func TestLoadResult_FailedCarriesNoBuffer(t *testing.T) {
	a := assert.New(t)

	result := NewFailedLoadResult(5, FullResult, uuid.New())

	a.True(result.Failed())
	a.Nil(result.TakeBuffer())
	a.Equal(ImageId(5), result.ImageId())
	a.Equal(FullResult, result.Kind())
}

func TestPixelBuffer_TakePixEmptiesSource(t *testing.T) {
	a := assert.New(t)

	buffer := NewPixelBuffer(make([]byte, 8), 2, 1, 8)

	a.False(buffer.IsEmpty())
	pix := buffer.TakePix()
	a.Len(pix, 8)
	a.True(buffer.IsEmpty())
	a.Nil(buffer.TakePix())

	// Dimensions describe the transferred pixels and remain readable
	a.Equal(2, buffer.Width())
	a.Equal(1, buffer.Height())
}

func TestLoadKind_Stages(t *testing.T) {
	a := assert.New(t)

	a.True(LoadKindPreview.IncludesPreview())
	a.False(LoadKindPreview.IncludesFull())

	a.False(LoadKindFull.IncludesPreview())
	a.True(LoadKindFull.IncludesFull())

	a.True(LoadKindBoth.IncludesPreview())
	a.True(LoadKindBoth.IncludesFull())
}

func TestLoadState_String(t *testing.T) {
	a := assert.New(t)

	a.Equal("NotRequested", LoadStateNotRequested.String())
	a.Equal("Requested", LoadStateRequested.String())
	a.Equal("Ready", LoadStateReady.String())
	a.Equal("Failed", LoadStateFailed.String())
}
