package library

import (
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"vincit.fi/raw-viewer/api/apitype"
	"vincit.fi/raw-viewer/backend/database"
)

type StubImageFileConverter struct {
	database.ImageFileConverter
}

func (s *StubImageFileConverter) ImageFileToDbImage(imageFile *apitype.ImageFile) (*database.Image, error) {
	return &database.Image{
		Name:      imageFile.FileName(),
		FileName:  imageFile.FileName(),
		Directory: imageFile.Directory(),
		ByteSize:  1234,
	}, nil
}

func createTestFiles(t *testing.T, names []string) string {
	dir := t.TempDir()
	for _, name := range names {
		if err := ioutil.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestLoadImageFiles(t *testing.T) {
	a := assert.New(t)

	dir := createTestFiles(t, []string{"a.jpg", "b.jpeg", "c.JPG", "d.png", "e.txt"})

	imageFiles, err := LoadImageFiles(dir)

	a.Nil(err)
	a.Len(imageFiles, 3)
	for _, imageFile := range imageFiles {
		a.False(imageFile.Persisted())
		a.Equal(dir, imageFile.Directory())
	}
}

func TestLoadImageFiles_MissingDirectory(t *testing.T) {
	a := assert.New(t)

	imageFiles, err := LoadImageFiles(filepath.Join(t.TempDir(), "no-such-dir"))

	a.NotNil(err)
	a.Nil(imageFiles)
}

func TestImageLibrary_InitializeFromDirectory(t *testing.T) {
	a := assert.New(t)

	dir := createTestFiles(t, []string{"b.jpg", "a.jpg"})

	db := database.NewInMemoryDatabase()
	if err := db.Migrate(); err != nil {
		t.Fatal(err)
	}
	imageStore := database.NewImageStore(db, &StubImageFileConverter{})
	imageLibrary := NewImageLibrary(imageStore)

	imageFiles, err := imageLibrary.InitializeFromDirectory(dir)

	a.Nil(err)
	a.Len(imageFiles, 2)
	a.Equal("a.jpg", imageFiles[0].FileName())
	a.Equal("b.jpg", imageFiles[1].FileName())
	for _, imageFile := range imageFiles {
		a.True(imageFile.Persisted())
	}

	t.Run("Rescan keeps ids stable", func(t *testing.T) {
		rescanned, err := imageLibrary.InitializeFromDirectory(dir)

		a.Nil(err)
		a.Len(rescanned, 2)
		a.Equal(imageFiles[0].Id(), rescanned[0].Id())
		a.Equal(imageFiles[1].Id(), rescanned[1].Id())
	})
}
