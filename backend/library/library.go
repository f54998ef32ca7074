package library

import (
	"io/ioutil"
	"path/filepath"
	"strings"

	"vincit.fi/raw-viewer/api"
	"vincit.fi/raw-viewer/api/apitype"
	"vincit.fi/raw-viewer/backend/database"
	"vincit.fi/raw-viewer/common/logger"
)

var supportedFileEndings = map[string]bool{".jpg": true, ".jpeg": true}

type DefaultImageLibrary struct {
	imageStore *database.ImageStore

	api.ImageLibrary
}

func NewImageLibrary(imageStore *database.ImageStore) api.ImageLibrary {
	return &DefaultImageLibrary{
		imageStore: imageStore,
	}
}

func (s *DefaultImageLibrary) InitializeFromDirectory(directory string) ([]*apitype.ImageFile, error) {
	imageFiles, err := LoadImageFiles(directory)
	if err != nil {
		return nil, err
	}

	if err := s.imageStore.AddImages(imageFiles); err != nil {
		return nil, err
	}

	return s.imageStore.GetAllImages()
}

// LoadImageFiles lists the supported image files in a directory. The
// returned files carry no ids until persisted through the store.
func LoadImageFiles(dir string) ([]*apitype.ImageFile, error) {
	var imageFiles []*apitype.ImageFile
	files, err := ioutil.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	logger.Debug.Printf("Scanning directory '%s'", dir)
	for _, file := range files {
		extension := filepath.Ext(file.Name())
		if isSupported(extension) {
			imageFiles = append(imageFiles, apitype.NewImageFile(dir, file.Name()))
		}
	}
	logger.Debug.Printf("Found %d images", len(imageFiles))

	return imageFiles, nil
}

func isSupported(extension string) bool {
	return supportedFileEndings[strings.ToLower(extension)]
}
