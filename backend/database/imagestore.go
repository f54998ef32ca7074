package database

import (
	"os"

	"github.com/upper/db/v4"
	"vincit.fi/raw-viewer/api/apitype"
	"vincit.fi/raw-viewer/common/logger"
)

// ImageFileConverter builds the database row for a scanned file. Separated
// so tests don't need real files on disk.
type ImageFileConverter interface {
	ImageFileToDbImage(imageFile *apitype.ImageFile) (*Image, error)
}

type FileSystemImageFileConverter struct {
	ImageFileConverter
}

func (s *FileSystemImageFileConverter) ImageFileToDbImage(imageFile *apitype.ImageFile) (*Image, error) {
	fileStat, err := os.Stat(imageFile.Path())
	if err != nil {
		return nil, err
	}

	return &Image{
		Name:      imageFile.FileName(),
		FileName:  imageFile.FileName(),
		Directory: imageFile.Directory(),
		ByteSize:  fileStat.Size(),
	}, nil
}

// ImageStore assigns and serves the stable ids that key the load registry.
type ImageStore struct {
	database           *Database
	collection         db.Collection
	imageFileConverter ImageFileConverter
}

func NewImageStore(database *Database, imageFileConverter ImageFileConverter) *ImageStore {
	return &ImageStore{
		database:           database,
		imageFileConverter: imageFileConverter,
	}
}

func (s *ImageStore) getCollection() db.Collection {
	if s.collection == nil {
		s.collection = s.database.Session().Collection("image")
	}
	return s.collection
}

func (s *ImageStore) AddImages(imageFiles []*apitype.ImageFile) error {
	return s.getCollection().Session().Tx(func(sess db.Session) error {
		for _, imageFile := range imageFiles {
			if _, err := s.addImage(sess, imageFile); err != nil {
				logger.Error.Printf("Error while adding image '%s' to DB", imageFile.Path())
				return err
			}
		}
		return nil
	})
}

func (s *ImageStore) AddImage(imageFile *apitype.ImageFile) (*apitype.ImageFile, error) {
	return s.addImage(s.getCollection().Session(), imageFile)
}

func (s *ImageStore) addImage(session db.Session, imageFile *apitype.ImageFile) (*apitype.ImageFile, error) {
	collection := s.getCollectionForSession(session)

	logger.Trace.Printf("Adding image '%s'", imageFile.String())

	exists, err := s.exists(collection, imageFile)
	if err != nil {
		return nil, err
	}

	if !exists {
		image, err := s.imageFileConverter.ImageFileToDbImage(imageFile)
		if err != nil {
			return nil, err
		}

		if _, err := collection.Insert(image); err != nil {
			return nil, err
		}
	}

	return s.findByDirAndFile(collection, imageFile)
}

func (s *ImageStore) GetImageCount() int {
	row, err := s.getCollection().Session().SQL().
		QueryRow("SELECT count(1) AS c FROM image")
	if err != nil {
		logger.Error.Print("Could not resolve image count ", err)
		return 0
	}

	var count int
	if err := row.Scan(&count); err != nil {
		logger.Error.Print("Could not resolve image count ", err)
		return 0
	}
	return count
}

func (s *ImageStore) GetAllImages() ([]*apitype.ImageFile, error) {
	var images []Image
	err := s.getCollection().
		Find().
		OrderBy("name").
		All(&images)
	if err != nil {
		return nil, err
	}
	return toImageFiles(images), nil
}

func (s *ImageStore) GetImageById(id apitype.ImageId) *apitype.ImageFile {
	var image Image
	err := s.getCollection().
		Find(db.Cond{"id": id}).
		One(&image)

	if err != nil {
		logger.Error.Print("Could not find image ", err)
		return nil
	}

	return toImageFile(&image)
}

func (s *ImageStore) exists(collection db.Collection, imageFile *apitype.ImageFile) (bool, error) {
	return collection.
		Find(db.Cond{
			"directory": imageFile.Directory(),
			"file_name": imageFile.FileName(),
		}).
		Exists()
}

func (s *ImageStore) findByDirAndFile(collection db.Collection, imageFile *apitype.ImageFile) (*apitype.ImageFile, error) {
	var image Image
	err := collection.
		Find(db.Cond{
			"directory": imageFile.Directory(),
			"file_name": imageFile.FileName(),
		}).
		One(&image)
	if err != nil {
		return nil, err
	}
	return toImageFile(&image), nil
}

func (s *ImageStore) getCollectionForSession(session db.Session) db.Collection {
	return session.Collection(s.getCollection().Name())
}
