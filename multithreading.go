package textwidth

import (
	"sync"

	"github.com/TheNeikos/textwidth/fontutil"
)

var setupOnce sync.Once

// SetupMultithreading enables safe use of contexts from multiple
// goroutines.
//
// Make sure this runs before creating any context that will be used
// concurrently; contexts created earlier keep their single-goroutine
// caches. Repeated calls are no-ops.
func SetupMultithreading() error {
	setupOnce.Do(func() {
		fontutil.SetMultithreaded()
	})
	return nil
}
