package api

import (
	"vincit.fi/raw-viewer/api/apitype"
)

// ImageDatabase serves decoded textures to a single consumer thread while
// decodes run on background workers. Only Start and Stop are safe to call
// from other goroutines; every other method must be called from the
// consumer thread, which owns all state transitions.
type ImageDatabase interface {
	// TryGetPreview returns the preview texture if it is ready. Otherwise
	// it returns nil and, if no preview load is outstanding or failed,
	// enqueues one.
	TryGetPreview(imageFile *apitype.ImageFile) *apitype.Texture
	// TryGetFull returns the full texture if it is ready. Otherwise it
	// returns nil and enqueues a full load; if the preview has not been
	// requested yet either, a single both-kind task covers both stages.
	TryGetFull(imageFile *apitype.ImageFile) *apitype.Texture

	PreviewState(imageId apitype.ImageId) apitype.LoadState
	FullState(imageId apitype.ImageId) apitype.LoadState
	IsFullyLoaded(imageId apitype.ImageId) bool

	// RequestPreviews enqueues a preview task for every image that has no
	// preview requested or loaded yet. Used to warm a thumbnail strip.
	RequestPreviews(imageFiles []*apitype.ImageFile)

	// ApplyResults drains completed results and applies them to the
	// registry. Returns the number of results applied.
	ApplyResults() int

	// Reset clears all entries, e.g. when a new directory is opened.
	// Results of in-flight tasks from before the reset are discarded.
	Reset()

	Start()
	Stop()
}
