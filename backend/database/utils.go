package database

import (
	"vincit.fi/raw-viewer/api/apitype"
)

func toImageFile(image *Image) *apitype.ImageFile {
	return apitype.NewImageFileWithId(
		apitype.ImageId(image.Id), image.Directory, image.FileName,
	)
}

func toImageFiles(images []Image) []*apitype.ImageFile {
	imageFiles := make([]*apitype.ImageFile, len(images))
	for i, image := range images {
		imageFiles[i] = toImageFile(&image)
	}
	return imageFiles
}
