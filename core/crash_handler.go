package core

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync"
)

var (
	handlerMu    sync.RWMutex
	crashHandler = defaultCrashHandler
)

// SetCrashHandler replaces the handler invoked for panics recovered by Go
// The front end installs one that restores the terminal before reporting
func SetCrashHandler(fn func(r any)) {
	handlerMu.Lock()
	defer handlerMu.Unlock()
	if fn == nil {
		fn = defaultCrashHandler
	}
	crashHandler = fn
}

// HandleCrash dispatches a recovered panic value to the installed handler
func HandleCrash(r any) {
	if r == nil {
		return
	}
	handlerMu.RLock()
	fn := crashHandler
	handlerMu.RUnlock()
	fn(r)
}

// Go runs a function in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword so a crash reaches the installed handler.
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}

func defaultCrashHandler(r any) {
	os.Stdout.Sync()
	fmt.Fprintf(os.Stderr, "\r\nCRASH DETECTED: %v\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
	os.Stderr.Sync()
	os.Exit(1)
}
