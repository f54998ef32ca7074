package api

import (
	"vincit.fi/raw-viewer/api/apitype"
)

type ImageLibrary interface {
	// InitializeFromDirectory scans the directory, persists any new image
	// files and returns the full image list with stable ids.
	InitializeFromDirectory(directory string) ([]*apitype.ImageFile, error)
}
