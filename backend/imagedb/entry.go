package imagedb

import (
	"vincit.fi/raw-viewer/api/apitype"
)

// imageEntry is the registry record for one image. Owned exclusively by the
// consumer thread; workers never see it.
type imageEntry struct {
	previewState apitype.LoadState
	fullState    apitype.LoadState
	preview      *apitype.Texture
	full         *apitype.Texture
}

func newImageEntry() *imageEntry {
	return &imageEntry{
		previewState: apitype.LoadStateNotRequested,
		fullState:    apitype.LoadStateNotRequested,
	}
}

func (s *imageEntry) isFullyLoaded() bool {
	return s.previewState == apitype.LoadStateReady && s.fullState == apitype.LoadStateReady
}
