package renderer

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// WriterLogger implements core.Logger on top of an io.Writer. Workers report
// progress concurrently, so writes are serialized.
type WriterLogger struct {
	mu  sync.Mutex
	out io.Writer
}

// NewWriterLogger returns a logger that writes to out
func NewWriterLogger(out io.Writer) *WriterLogger {
	return &WriterLogger{out: out}
}

// NewDefaultLogger returns a logger that writes to stdout
func NewDefaultLogger() core.Logger {
	return NewWriterLogger(os.Stdout)
}

// Printf formats a message and writes it unchanged. Callers supply their own
// line endings. Write errors are ignored.
func (l *WriterLogger) Printf(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.out, format, args...)
}
