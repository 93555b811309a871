package fastscaling

import (
	"log/slog"
	"sync"
)

// Context is an out-of-band error sink for simple call sites.
//
// Every fallible operation returns its error; when a Context is attached
// (see render.WithContext) the same error value is also recorded here so
// that a caller can fetch the last message later. The zero value is ready
// to use.
//
// Thread safety: Context is safe for concurrent use.
type Context struct {
	mu   sync.Mutex
	last error
}

// NewContext returns an empty Context.
func NewContext() *Context {
	return &Context{}
}

// SetLastError records err as the most recent failure. A nil err is ignored.
// Calling SetLastError on a nil Context does nothing.
func (c *Context) SetLastError(err error) {
	if c == nil || err == nil {
		return
	}
	c.mu.Lock()
	c.last = err
	c.mu.Unlock()
	Logger().Warn("fastscaling: error recorded", slog.String("kind", KindOf(err).String()), slog.Any("err", err))
}

// LastError returns the most recently recorded error, or nil.
func (c *Context) LastError() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.last
}

// HasError reports whether an error has been recorded since the last ClearError.
func (c *Context) HasError() bool {
	return c.LastError() != nil
}

// ClearError forgets the recorded error.
func (c *Context) ClearError() {
	if c == nil {
		return
	}
	c.mu.Lock()
	c.last = nil
	c.mu.Unlock()
}

// LastErrorMessage copies the last error message into buf, truncating if
// needed, and returns the number of bytes written. It writes nothing when no
// error is recorded.
func (c *Context) LastErrorMessage(buf []byte) int {
	err := c.LastError()
	if err == nil {
		return 0
	}
	return copy(buf, err.Error())
}
