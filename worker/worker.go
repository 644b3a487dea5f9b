package worker

import (
	"runtime"

	"github.com/getsentry/sentry-go"
)

var workerQueue = make(chan func(), runtime.NumCPU())

func init() {
	for i := 0; i < runtime.NumCPU(); i++ {
		go worker()
	}
}

func worker() {
	defer sentry.Recover()

	for {
		f, ok := <-workerQueue
		if !ok {
			return
		}

		f()
	}
}

// Submit queues f for execution off the simulation tick. Used for fire-and-forget
// work such as side-effect delivery; a panicking job never reaches the tick.
func Submit(f func()) {
	workerQueue <- f
}
