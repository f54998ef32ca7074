package imagedb

import (
	"github.com/google/uuid"
	"vincit.fi/raw-viewer/api"
	"vincit.fi/raw-viewer/api/apitype"
	"vincit.fi/raw-viewer/backend/queue"
	"vincit.fi/raw-viewer/common/logger"
)

// DefaultImageDatabase hands decoded textures to a single consumer thread
// while a worker pool does the decoding. The registry is deliberately not
// locked: every method except Start and Stop must be called from the
// consumer thread, which owns all state transitions. Workers communicate
// only through the two concurrent queues.
type DefaultImageDatabase struct {
	entries     map[apitype.ImageId]*imageEntry
	taskQueue   *queue.ConcurrentQueue[*apitype.LoadTask]
	resultQueue *queue.ConcurrentQueue[*apitype.LoadResult]
	pool        *workerPool
	converter   api.TextureConverter
	sender      api.Sender
	generation  uuid.UUID

	api.ImageDatabase
}

func NewImageDatabase(numWorkers int, decoder api.ImageDecoder, converter api.TextureConverter, sender api.Sender) api.ImageDatabase {
	taskQueue := queue.NewConcurrentQueue[*apitype.LoadTask]()
	resultQueue := queue.NewConcurrentQueue[*apitype.LoadResult]()
	return &DefaultImageDatabase{
		entries:     map[apitype.ImageId]*imageEntry{},
		taskQueue:   taskQueue,
		resultQueue: resultQueue,
		pool:        newWorkerPool(numWorkers, decoder, taskQueue, resultQueue),
		converter:   converter,
		sender:      sender,
		generation:  uuid.New(),
	}
}

func (s *DefaultImageDatabase) Start() {
	s.pool.start()
}

func (s *DefaultImageDatabase) Stop() {
	s.pool.stop()
}

func (s *DefaultImageDatabase) TryGetPreview(imageFile *apitype.ImageFile) *apitype.Texture {
	entry := s.getEntry(imageFile.Id())
	if entry.previewState == apitype.LoadStateReady {
		return entry.preview
	}

	if entry.previewState == apitype.LoadStateNotRequested {
		entry.previewState = apitype.LoadStateRequested
		s.enqueue(imageFile, apitype.LoadKindPreview)
	}
	return nil
}

// TryGetFull also covers the preview when neither stage has been requested
// yet: a single both-kind task decodes the preview first so the first view
// of an image shows a thumbnail while the full decode runs.
func (s *DefaultImageDatabase) TryGetFull(imageFile *apitype.ImageFile) *apitype.Texture {
	entry := s.getEntry(imageFile.Id())
	if entry.fullState == apitype.LoadStateReady {
		return entry.full
	}

	if entry.fullState == apitype.LoadStateNotRequested {
		entry.fullState = apitype.LoadStateRequested
		if entry.previewState == apitype.LoadStateNotRequested {
			entry.previewState = apitype.LoadStateRequested
			s.enqueue(imageFile, apitype.LoadKindBoth)
		} else {
			s.enqueue(imageFile, apitype.LoadKindFull)
		}
	}
	return nil
}

func (s *DefaultImageDatabase) RequestPreviews(imageFiles []*apitype.ImageFile) {
	for _, imageFile := range imageFiles {
		entry := s.getEntry(imageFile.Id())
		if entry.previewState == apitype.LoadStateNotRequested {
			entry.previewState = apitype.LoadStateRequested
			s.enqueue(imageFile, apitype.LoadKindPreview)
		}
	}
}

func (s *DefaultImageDatabase) PreviewState(imageId apitype.ImageId) apitype.LoadState {
	if entry, ok := s.entries[imageId]; ok {
		return entry.previewState
	}
	return apitype.LoadStateNotRequested
}

func (s *DefaultImageDatabase) FullState(imageId apitype.ImageId) apitype.LoadState {
	if entry, ok := s.entries[imageId]; ok {
		return entry.fullState
	}
	return apitype.LoadStateNotRequested
}

func (s *DefaultImageDatabase) IsFullyLoaded(imageId apitype.ImageId) bool {
	if entry, ok := s.entries[imageId]; ok {
		return entry.isFullyLoaded()
	}
	return false
}

// ApplyResults drains the result queue and applies each result to the
// registry. Results from before the latest Reset carry an old generation
// token and are discarded; their tasks were never cancelled, they just
// finished for nobody.
func (s *DefaultImageDatabase) ApplyResults() int {
	applied := 0
	for {
		result, ok := s.resultQueue.TryPop()
		if !ok {
			break
		}
		if result.Generation() != s.generation {
			logger.Trace.Printf("Discarding stale %s", result)
			continue
		}
		s.apply(result)
		applied++
	}
	return applied
}

// Reset clears the registry, e.g. when a new directory is opened. In-flight
// tasks keep running; ApplyResults drops their results by generation.
func (s *DefaultImageDatabase) Reset() {
	logger.Debug.Printf("Resetting image database (%d entries)", len(s.entries))
	s.entries = map[apitype.ImageId]*imageEntry{}
	s.generation = uuid.New()
}

func (s *DefaultImageDatabase) getEntry(imageId apitype.ImageId) *imageEntry {
	if entry, ok := s.entries[imageId]; ok {
		return entry
	}
	entry := newImageEntry()
	s.entries[imageId] = entry
	return entry
}

func (s *DefaultImageDatabase) enqueue(imageFile *apitype.ImageFile, kind apitype.LoadKind) {
	logger.Trace.Printf("Enqueue %s load for %s", kind, imageFile)
	s.taskQueue.Push(apitype.NewLoadTask(imageFile.Id(), imageFile.Path(), kind, s.generation))
}

func (s *DefaultImageDatabase) apply(result *apitype.LoadResult) {
	entry := s.getEntry(result.ImageId())

	if result.Failed() {
		s.setStage(entry, result.Kind(), apitype.LoadStateFailed, nil)
		s.sender.SendCommandToTopic(api.ImageLoadFailed, &api.ImageReadyCommand{
			ImageId: result.ImageId(),
			Kind:    result.Kind(),
		})
		return
	}

	texture, err := s.converter.ConvertToTexture(result.TakeBuffer(), result.Orientation())
	if err != nil {
		s.setStage(entry, result.Kind(), apitype.LoadStateFailed, nil)
		s.sender.SendError("Could not create texture", err)
		return
	}

	s.setStage(entry, result.Kind(), apitype.LoadStateReady, texture)
	if result.Kind() == apitype.PreviewResult {
		s.sender.SendCommandToTopic(api.ImagePreviewReady, &api.ImageReadyCommand{
			ImageId: result.ImageId(),
			Kind:    result.Kind(),
		})
	} else {
		s.sender.SendCommandToTopic(api.ImageFullReady, &api.ImageReadyCommand{
			ImageId: result.ImageId(),
			Kind:    result.Kind(),
		})
	}
}

func (s *DefaultImageDatabase) setStage(entry *imageEntry, kind apitype.ResultKind, state apitype.LoadState, texture *apitype.Texture) {
	if kind == apitype.PreviewResult {
		entry.previewState = state
		entry.preview = texture
	} else {
		entry.fullState = state
		entry.full = texture
	}
}
