package main

import (
	"time"

	"vincit.fi/raw-viewer/api"
	"vincit.fi/raw-viewer/api/apitype"
	"vincit.fi/raw-viewer/backend"
	"vincit.fi/raw-viewer/common"
	"vincit.fi/raw-viewer/common/logger"
)

const eventBusQueueSize = 100

// consumerTick plays the role of the render loop's frame interval: results
// are drained between "frames", never blocking on the workers.
const consumerTick = 10 * time.Millisecond

func main() {
	params := common.ParseParams()
	logger.Initialize(logger.StringToLogLevel(params.LogLevel()))

	if params.RootPath() == "" {
		logger.Error.Fatal("No image directory given")
	}

	stores := backend.InitializeStores(params.RootPath(), params.DatabaseFile())
	defer stores.Close()

	brokers := backend.InitializeEventBrokers(eventBusQueueSize)
	services := backend.InitializeServices(params, stores, brokers)
	defer services.Close()

	brokers.Broker.Subscribe(api.ImageLoadFailed, func(command *api.ImageReadyCommand) {
		logger.Warn.Printf("Image %d: %s load failed", command.ImageId, command.Kind)
	})
	brokers.Broker.Subscribe(api.ProcessStatusUpdated, func(command *api.UpdateProgressCommand) {
		logger.Info.Printf("%s: %d/%d", command.Name, command.Current, command.Total)
	})
	brokers.Broker.Subscribe(api.ShowError, func(command *api.ErrorCommand) {
		logger.Error.Printf("%s", command.Message)
	})

	imageFiles, err := services.ImageLibrary.InitializeFromDirectory(params.RootPath())
	if err != nil {
		logger.Error.Fatal("Could not read image directory: ", err)
	}
	if len(imageFiles) == 0 {
		logger.Info.Print("No images found")
		return
	}
	logger.Info.Printf("Loaded %d images from '%s'", len(imageFiles), params.RootPath())

	services.ImageDatabase.Start()
	defer services.ImageDatabase.Stop()

	runConsumerLoop(services.ImageDatabase, brokers.Broker, imageFiles)
}

// runConsumerLoop warms every preview first, then requests the full decode
// of each image, draining results once per tick like a frame loop would.
func runConsumerLoop(imageDatabase api.ImageDatabase, sender api.Sender, imageFiles []*apitype.ImageFile) {
	reporter := api.NewSenderProgressReporter(sender)

	imageDatabase.RequestPreviews(imageFiles)
	for _, imageFile := range imageFiles {
		imageDatabase.TryGetFull(imageFile)
	}

	total := len(imageFiles) * 2
	startTime := time.Now()
	for {
		time.Sleep(consumerTick)
		if imageDatabase.ApplyResults() > 0 {
			reporter.Update("Loading images", countSettled(imageDatabase, imageFiles), total)
		}
		if countSettled(imageDatabase, imageFiles) == total {
			break
		}
	}

	loaded := 0
	for _, imageFile := range imageFiles {
		if imageDatabase.IsFullyLoaded(imageFile.Id()) {
			loaded++
		}
	}
	logger.Info.Printf("Done: %d/%d images fully loaded in %s",
		loaded, len(imageFiles), time.Since(startTime))
}

func countSettled(imageDatabase api.ImageDatabase, imageFiles []*apitype.ImageFile) int {
	settled := 0
	for _, imageFile := range imageFiles {
		if isSettled(imageDatabase.PreviewState(imageFile.Id())) {
			settled++
		}
		if isSettled(imageDatabase.FullState(imageFile.Id())) {
			settled++
		}
	}
	return settled
}

func isSettled(state apitype.LoadState) bool {
	return state == apitype.LoadStateReady || state == apitype.LoadStateFailed
}
