package backend

import (
	"path/filepath"

	"vincit.fi/raw-viewer/api"
	"vincit.fi/raw-viewer/backend/database"
	"vincit.fi/raw-viewer/backend/decoder"
	"vincit.fi/raw-viewer/backend/imagedb"
	"vincit.fi/raw-viewer/backend/library"
	"vincit.fi/raw-viewer/backend/texture"
	"vincit.fi/raw-viewer/common"
	"vincit.fi/raw-viewer/common/event"
	"vincit.fi/raw-viewer/common/logger"
)

type Stores struct {
	ImageStore *database.ImageStore

	workDirDb *database.Database
}

func (s *Stores) Close() {
	_ = s.workDirDb.Close()
}

// InitializeStores opens the per-directory database holding the stable
// image ids for the given image directory.
func InitializeStores(directory string, databaseFileName string) *Stores {
	logger.Debug.Printf("Initialize stores...")
	workDirDb := database.NewDatabase(filepath.Join(directory, databaseFileName))
	if err := workDirDb.Migrate(); err != nil {
		logger.Error.Fatal("Error migrating database", err)
	}

	stores := &Stores{
		ImageStore: database.NewImageStore(workDirDb, &database.FileSystemImageFileConverter{}),
		workDirDb:  workDirDb,
	}
	logger.Debug.Printf("Stores initialized")
	return stores
}

type Brokers struct {
	Broker        *event.Broker
	DevNullBroker *event.Broker
}

func InitializeEventBrokers(eventBusQueueSize int) *Brokers {
	logger.Debug.Printf("Initialize event brokers...")
	brokers := &Brokers{
		Broker:        event.InitBus(eventBusQueueSize),
		DevNullBroker: event.InitDevNullBus(),
	}
	logger.Debug.Printf("Event brokers initialized")
	return brokers
}

type Services struct {
	ImageLibrary     api.ImageLibrary
	ImageDatabase    api.ImageDatabase
	ImageDecoder     api.ImageDecoder
	TextureConverter api.TextureConverter
}

func (s *Services) Close() {
	s.ImageDatabase.Stop()
}

func InitializeServices(params *common.Params, stores *Stores, brokers *Brokers) *Services {
	logger.Debug.Printf("Initialize services...")
	imageDecoder := decoder.NewLibJPEGDecoder()
	textureConverter := texture.NewRGBAConverter()
	services := &Services{
		ImageLibrary:     library.NewImageLibrary(stores.ImageStore),
		ImageDatabase:    imagedb.NewImageDatabase(params.Workers(), imageDecoder, textureConverter, brokers.Broker),
		ImageDecoder:     imageDecoder,
		TextureConverter: textureConverter,
	}
	logger.Debug.Printf("Services initialized")
	return services
}
