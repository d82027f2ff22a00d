package affine3d

import (
	"fmt"
	"sync"
)

// Debug enables verbose construction logging. Off by default; callers
// flip it (typically from an env var) before building geometry.
var Debug = false

func DebugLog(format string, args ...interface{}) {
	if !Debug {
		return
	}
	fmt.Printf("[DEBUG] "+format+"\n", args...)
}

var once sync.Once

// DebugLogOnce logs the first call only, for messages that would repeat
// per ray or per matrix in a hot loop.
func DebugLogOnce(format string, args ...interface{}) {
	if !Debug {
		return
	}
	once.Do(func() {
		fmt.Printf("[DEBUG] "+format+"\n", args...)
	})
}
