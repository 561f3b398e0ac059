package core

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"

	"go.uber.org/zap"
)

// Escape sequences restoring a terminal left in raw alternate-screen mode
var (
	seqMouseOff      = []byte("\x1b[?1003l\x1b[?1002l\x1b[?1000l\x1b[?1006l")
	seqCursorShow    = []byte("\x1b[?25h")
	seqAltScreenExit = []byte("\x1b[?1049l")
	seqSGR0          = []byte("\x1b[0m")
	seqAutoWrapOn    = []byte("\x1b[?7h")
)

var (
	crashMu     sync.Mutex
	crashReset  func()
	crashLogger           = zap.NewNop()
	crashOutput io.Writer = os.Stderr
	exit                  = os.Exit
)

// SetCrashReset registers the frontend teardown run before the crash report
// A nil reset falls back to EmergencyReset on stdout
func SetCrashReset(reset func()) {
	crashMu.Lock()
	defer crashMu.Unlock()
	crashReset = reset
}

// SetCrashLogger receives the crash report before the process exits
func SetCrashLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	crashMu.Lock()
	defer crashMu.Unlock()
	crashLogger = l
}

// EmergencyReset writes the restore sequences and re-enables line discipline
func EmergencyReset(w io.Writer) {
	w.Write(seqMouseOff)
	w.Write(seqCursorShow)
	w.Write(seqAltScreenExit)
	w.Write(seqSGR0)
	w.Write(seqAutoWrapOn)

	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// Escape sequences alone don't restore termios
	resetTerminalMode()
}

// HandleCrash is the unified panic handler that resets the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	crashMu.Lock()
	reset, log, out := crashReset, crashLogger, crashOutput
	crashMu.Unlock()

	if reset != nil {
		reset()
	} else {
		EmergencyReset(os.Stdout)
	}

	stack := debug.Stack()
	log.Error("crash", zap.Any("panic", r), zap.ByteString("stack", stack))
	_ = log.Sync()

	// \r\n keeps the report readable if raw mode survived the reset
	fmt.Fprintf(out, "\r\n\x1b[31mTEXT-ANIMATOR CRASHED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(out, "Stack Trace:\r\n%s\r\n", stack)

	exit(1)
}

// Go runs a function in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash.
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
