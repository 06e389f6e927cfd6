package fontutil

import "sync/atomic"

var multithreaded int32

// SetMultithreaded makes faces built after the call safe for
// concurrent use (locked glyph caches). Faces handed out before the
// call are unaffected, but the faces caches are cleared so that later
// requests for the same options build a locked face instead of
// returning a cached unlocked one.
func SetMultithreaded() {
	if atomic.CompareAndSwapInt32(&multithreaded, 0, 1) {
		FontsMan.ClearFacesCaches()
	}
}

func Multithreaded() bool {
	return atomic.LoadInt32(&multithreaded) != 0
}
