package apitype

import (
	"fmt"
	"github.com/google/uuid"
)

// ResultKind tells the consumer which stage a result completes.
type ResultKind int

const (
	PreviewResult ResultKind = iota
	FullResult
)

func (s ResultKind) String() string {
	switch s {
	case PreviewResult:
		return "preview"
	case FullResult:
		return "full"
	}
	return "unknown"
}

// LoadResult is the envelope sent back from a worker. A failed result
// carries no buffer. The buffer is exclusively owned by the result until
// the consumer takes it with TakeBuffer.
type LoadResult struct {
	imageId     ImageId
	kind        ResultKind
	buffer      *PixelBuffer
	orientation int
	failed      bool
	generation  uuid.UUID
}

func NewLoadResult(imageId ImageId, kind ResultKind, buffer *PixelBuffer, orientation int, generation uuid.UUID) *LoadResult {
	return &LoadResult{
		imageId:     imageId,
		kind:        kind,
		buffer:      buffer,
		orientation: orientation,
		generation:  generation,
	}
}

func NewFailedLoadResult(imageId ImageId, kind ResultKind, generation uuid.UUID) *LoadResult {
	return &LoadResult{
		imageId:    imageId,
		kind:       kind,
		failed:     true,
		generation: generation,
	}
}

func (s *LoadResult) ImageId() ImageId {
	return s.imageId
}

func (s *LoadResult) Kind() ResultKind {
	return s.kind
}

func (s *LoadResult) Orientation() int {
	return s.orientation
}

func (s *LoadResult) Failed() bool {
	return s.failed
}

func (s *LoadResult) Generation() uuid.UUID {
	return s.generation
}

// TakeBuffer transfers ownership of the decoded buffer to the caller. The
// result holds no buffer afterwards. Returns nil for failed results.
func (s *LoadResult) TakeBuffer() *PixelBuffer {
	buffer := s.buffer
	s.buffer = nil
	return buffer
}

func (s *LoadResult) String() string {
	if s.failed {
		return fmt.Sprintf("LoadResult{%d, %s, failed}", s.imageId, s.kind)
	}
	return fmt.Sprintf("LoadResult{%d, %s}", s.imageId, s.kind)
}
