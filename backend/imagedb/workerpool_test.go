package imagedb

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"vincit.fi/raw-viewer/api/apitype"
	"vincit.fi/raw-viewer/backend/queue"
)

func newTestPool(numWorkers int, decoder *stubDecoder) (*workerPool, *queue.ConcurrentQueue[*apitype.LoadTask], *queue.ConcurrentQueue[*apitype.LoadResult]) {
	taskQueue := queue.NewConcurrentQueue[*apitype.LoadTask]()
	resultQueue := queue.NewConcurrentQueue[*apitype.LoadResult]()
	return newWorkerPool(numWorkers, decoder, taskQueue, resultQueue), taskQueue, resultQueue
}

func popResult(resultQueue *queue.ConcurrentQueue[*apitype.LoadResult]) *apitype.LoadResult {
	deadline := time.Now().Add(testTimeout)
	for time.Now().Before(deadline) {
		if result, ok := resultQueue.TryPop(); ok {
			return result
		}
		time.Sleep(time.Millisecond)
	}
	return nil
}

func TestNewWorkerPool_WorkerCount(t *testing.T) {
	a := assert.New(t)

	pool, _, _ := newTestPool(3, &stubDecoder{})
	a.Equal(3, pool.numWorkers)

	pool, _, _ = newTestPool(0, &stubDecoder{})
	a.GreaterOrEqual(pool.numWorkers, 1)

	pool, _, _ = newTestPool(-1, &stubDecoder{})
	a.GreaterOrEqual(pool.numWorkers, 1)
}

func TestWorkerPool_BothKindPushesPreviewFirst(t *testing.T) {
	a := assert.New(t)

	decoder := &stubDecoder{fullDelay: 50 * time.Millisecond}
	pool, taskQueue, resultQueue := newTestPool(1, decoder)
	taskQueue.Push(apitype.NewLoadTask(1, "/photos/a.jpg", apitype.LoadKindBoth, uuid.New()))

	pool.start()
	defer pool.stop()

	first := popResult(resultQueue)
	a.NotNil(first)
	a.Equal(apitype.PreviewResult, first.Kind())
	a.False(first.Failed())

	second := popResult(resultQueue)
	a.NotNil(second)
	a.Equal(apitype.FullResult, second.Kind())
	a.False(second.Failed())

	a.Equal(1, decoder.openCount())
}

func TestWorkerPool_OpenFailureYieldsFailureForEveryStage(t *testing.T) {
	a := assert.New(t)

	decoder := &stubDecoder{failOpen: true}
	pool, taskQueue, resultQueue := newTestPool(1, decoder)
	taskQueue.Push(apitype.NewLoadTask(1, "/photos/broken.jpg", apitype.LoadKindBoth, uuid.New()))

	pool.start()
	defer pool.stop()

	first := popResult(resultQueue)
	a.NotNil(first)
	a.True(first.Failed())
	a.Equal(apitype.PreviewResult, first.Kind())
	a.Nil(first.TakeBuffer())

	second := popResult(resultQueue)
	a.NotNil(second)
	a.True(second.Failed())
	a.Equal(apitype.FullResult, second.Kind())
}

func TestWorkerPool_StopJoinsWithTasksStillQueued(t *testing.T) {
	a := assert.New(t)

	decoder := &stubDecoder{fullDelay: 20 * time.Millisecond}
	pool, taskQueue, _ := newTestPool(2, decoder)
	generation := uuid.New()
	for i := 0; i < 100; i++ {
		taskQueue.Push(apitype.NewLoadTask(apitype.ImageId(i), "/photos/a.jpg", apitype.LoadKindFull, generation))
	}

	pool.start()
	time.Sleep(30 * time.Millisecond)

	stopStart := time.Now()
	pool.stop()
	elapsed := time.Since(stopStart)

	// Workers finish at most their in-flight task, never the whole queue
	a.Less(elapsed, time.Second)
	a.False(taskQueue.IsEmpty())

	// No task executes after the join returns
	executed := decoder.openCount()
	time.Sleep(50 * time.Millisecond)
	a.Equal(executed, decoder.openCount())
}

func TestWorkerPool_StopIsIdempotent(t *testing.T) {
	a := assert.New(t)

	pool, _, _ := newTestPool(1, &stubDecoder{})

	a.NotPanics(func() {
		pool.stop()
	})

	pool.start()
	a.NotPanics(func() {
		pool.stop()
		pool.stop()
	})
}
