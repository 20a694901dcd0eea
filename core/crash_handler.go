package core

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync"
)

var (
	crashMu   sync.Mutex
	crashHook func()
)

// SetCrashHook registers cleanup that runs before a crash report is printed
// Used by main to release the terminal; nil clears the hook
func SetCrashHook(fn func()) {
	crashMu.Lock()
	defer crashMu.Unlock()
	crashHook = fn
}

// HandleCrash restores the terminal, prints the panic with a stack trace and exits
func HandleCrash(r any) {
	if r == nil {
		return
	}

	crashMu.Lock()
	hook := crashHook
	crashMu.Unlock()
	if hook != nil {
		hook()
	}

	fmt.Fprintf(os.Stderr, "\n\x1b[31mCRASH DETECTED: %v\x1b[0m\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
	os.Exit(1)
}

// Go runs fn in a new goroutine with panic recovery
// Use instead of the 'go' keyword so a crash never leaves the terminal in raw mode
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
