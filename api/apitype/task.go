package apitype

import (
	"fmt"
	"github.com/google/uuid"
)

// LoadKind tells a worker which decode stages a task covers.
type LoadKind int

const (
	LoadKindPreview LoadKind = iota
	LoadKindFull
	// LoadKindBoth decodes the preview first and pushes its result before
	// the full decode starts so a thumbnail can show while the expensive
	// decode proceeds. Both stages run on the same worker.
	LoadKindBoth
)

func (s LoadKind) IncludesPreview() bool {
	return s == LoadKindPreview || s == LoadKindBoth
}

func (s LoadKind) IncludesFull() bool {
	return s == LoadKindFull || s == LoadKindBoth
}

func (s LoadKind) String() string {
	switch s {
	case LoadKindPreview:
		return "preview"
	case LoadKindFull:
		return "full"
	case LoadKindBoth:
		return "both"
	}
	return "unknown"
}

// LoadTask is the envelope sent to the worker pool. Immutable once created;
// owned by whichever queue or worker currently holds it.
type LoadTask struct {
	imageId    ImageId
	path       string
	kind       LoadKind
	generation uuid.UUID
}

func NewLoadTask(imageId ImageId, path string, kind LoadKind, generation uuid.UUID) *LoadTask {
	return &LoadTask{
		imageId:    imageId,
		path:       path,
		kind:       kind,
		generation: generation,
	}
}

func (s *LoadTask) ImageId() ImageId {
	return s.imageId
}

func (s *LoadTask) Path() string {
	return s.path
}

func (s *LoadTask) Kind() LoadKind {
	return s.kind
}

func (s *LoadTask) Generation() uuid.UUID {
	return s.generation
}

func (s *LoadTask) String() string {
	return fmt.Sprintf("LoadTask{%d, %s, %s}", s.imageId, s.kind, s.path)
}
