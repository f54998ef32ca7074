package imagedb

import (
	"runtime"
	"sync"
	"time"

	"vincit.fi/raw-viewer/api"
	"vincit.fi/raw-viewer/api/apitype"
	"vincit.fi/raw-viewer/backend/queue"
	"vincit.fi/raw-viewer/common/logger"
)

// idleWait bounds both the busy-wait avoidance and the shutdown latency:
// an idle worker wakes at least this often to check the stop channel.
const idleWait = 10 * time.Millisecond

type workerPool struct {
	numWorkers  int
	decoder     api.ImageDecoder
	taskQueue   *queue.ConcurrentQueue[*apitype.LoadTask]
	resultQueue *queue.ConcurrentQueue[*apitype.LoadResult]

	stopping chan struct{}
	workers  sync.WaitGroup
	started  bool
}

func newWorkerPool(
	numWorkers int,
	decoder api.ImageDecoder,
	taskQueue *queue.ConcurrentQueue[*apitype.LoadTask],
	resultQueue *queue.ConcurrentQueue[*apitype.LoadResult]) *workerPool {

	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	if numWorkers < 1 {
		numWorkers = 1
	}
	return &workerPool{
		numWorkers:  numWorkers,
		decoder:     decoder,
		taskQueue:   taskQueue,
		resultQueue: resultQueue,
	}
}

func (s *workerPool) start() {
	if s.started {
		return
	}
	s.started = true
	s.stopping = make(chan struct{})
	logger.Debug.Printf("Starting %d decode workers", s.numWorkers)
	for i := 0; i < s.numWorkers; i++ {
		s.workers.Add(1)
		go s.run(i)
	}
}

// stop signals all workers and joins them. Queued tasks are abandoned;
// a task already being decoded runs to completion first. Safe to call
// without start and safe to call twice.
func (s *workerPool) stop() {
	if !s.started {
		return
	}
	s.started = false
	close(s.stopping)
	s.workers.Wait()
	logger.Debug.Printf("All decode workers stopped")
}

func (s *workerPool) run(workerIndex int) {
	defer s.workers.Done()
	for {
		select {
		case <-s.stopping:
			return
		default:
		}

		if task, ok := s.taskQueue.TryPop(); ok {
			s.execute(workerIndex, task)
		} else {
			select {
			case <-s.stopping:
				return
			case <-time.After(idleWait):
			}
		}
	}
}

// execute runs one task to completion. For a both-kind task the preview
// result is pushed before the full decode starts so the consumer can show
// a thumbnail while the expensive decode proceeds. Every requested stage
// yields exactly one result, failure-marked when no pixels were produced.
func (s *workerPool) execute(workerIndex int, task *apitype.LoadTask) {
	logger.Trace.Printf("Worker %d executing %s", workerIndex, task)

	decoded, err := s.decoder.Open(task.Path())
	if err != nil {
		logger.Error.Printf("Could not open '%s': %s", task.Path(), err)
		s.pushFailedStages(task)
		return
	}
	defer decoded.Close()

	orientation := decoded.Orientation()

	if task.Kind().IncludesPreview() {
		if buffer, err := decoded.DecodePreview(); err != nil {
			logger.Error.Printf("Preview decode failed for '%s': %s", task.Path(), err)
			s.resultQueue.Push(apitype.NewFailedLoadResult(task.ImageId(), apitype.PreviewResult, task.Generation()))
		} else {
			s.resultQueue.Push(apitype.NewLoadResult(task.ImageId(), apitype.PreviewResult, buffer, orientation, task.Generation()))
		}
	}

	if task.Kind().IncludesFull() {
		if buffer, err := decoded.DecodeFull(); err != nil {
			logger.Error.Printf("Full decode failed for '%s': %s", task.Path(), err)
			s.resultQueue.Push(apitype.NewFailedLoadResult(task.ImageId(), apitype.FullResult, task.Generation()))
		} else {
			s.resultQueue.Push(apitype.NewLoadResult(task.ImageId(), apitype.FullResult, buffer, orientation, task.Generation()))
		}
	}
}

func (s *workerPool) pushFailedStages(task *apitype.LoadTask) {
	if task.Kind().IncludesPreview() {
		s.resultQueue.Push(apitype.NewFailedLoadResult(task.ImageId(), apitype.PreviewResult, task.Generation()))
	}
	if task.Kind().IncludesFull() {
		s.resultQueue.Push(apitype.NewFailedLoadResult(task.ImageId(), apitype.FullResult, task.Generation()))
	}
}
