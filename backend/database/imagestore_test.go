package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"vincit.fi/raw-viewer/api/apitype"
)

type StubImageFileConverter struct {
	ImageFileConverter
}

func (s *StubImageFileConverter) ImageFileToDbImage(imageFile *apitype.ImageFile) (*Image, error) {
	return &Image{
		Name:      imageFile.FileName(),
		FileName:  imageFile.FileName(),
		Directory: imageFile.Directory(),
		ByteSize:  1234,
	}, nil
}

func newTestStore(t *testing.T) *ImageStore {
	db := NewInMemoryDatabase()
	if err := db.Migrate(); err != nil {
		t.Fatal(err)
	}
	return NewImageStore(db, &StubImageFileConverter{})
}

func TestImageStore_AddImage(t *testing.T) {
	a := assert.New(t)

	store := newTestStore(t)

	imageFile, err := store.AddImage(apitype.NewImageFile("/photos", "a.jpg"))

	a.Nil(err)
	a.NotNil(imageFile)
	a.True(imageFile.Persisted())
	a.Equal("a.jpg", imageFile.FileName())
	a.Equal("/photos", imageFile.Directory())
}

func TestImageStore_AddImageIsIdempotent(t *testing.T) {
	a := assert.New(t)

	store := newTestStore(t)

	first, err := store.AddImage(apitype.NewImageFile("/photos", "a.jpg"))
	a.Nil(err)
	second, err := store.AddImage(apitype.NewImageFile("/photos", "a.jpg"))
	a.Nil(err)

	a.Equal(first.Id(), second.Id())
	a.Equal(1, store.GetImageCount())
}

func TestImageStore_AddImages(t *testing.T) {
	a := assert.New(t)

	store := newTestStore(t)

	err := store.AddImages([]*apitype.ImageFile{
		apitype.NewImageFile("/photos", "b.jpg"),
		apitype.NewImageFile("/photos", "a.jpg"),
		apitype.NewImageFile("/photos", "c.jpg"),
	})
	a.Nil(err)
	a.Equal(3, store.GetImageCount())

	images, err := store.GetAllImages()
	a.Nil(err)
	a.Len(images, 3)
	a.Equal("a.jpg", images[0].FileName())
	a.Equal("b.jpg", images[1].FileName())
	a.Equal("c.jpg", images[2].FileName())

	t.Run("Ids are unique", func(t *testing.T) {
		a.NotEqual(images[0].Id(), images[1].Id())
		a.NotEqual(images[1].Id(), images[2].Id())
	})
}

func TestImageStore_GetImageById(t *testing.T) {
	a := assert.New(t)

	store := newTestStore(t)

	added, err := store.AddImage(apitype.NewImageFile("/photos", "a.jpg"))
	a.Nil(err)

	found := store.GetImageById(added.Id())
	a.NotNil(found)
	a.Equal(added.Id(), found.Id())
	a.Equal("a.jpg", found.FileName())

	t.Run("Unknown id", func(t *testing.T) {
		a.Nil(store.GetImageById(apitype.ImageId(4242)))
	})
}
