package rdf

import (
	"context"
	"io"
	"sync"
)

type contextReader struct {
	ctx context.Context
	r   io.Reader
}

func (c *contextReader) Read(p []byte) (int, error) {
	select {
	case <-c.ctx.Done():
		return 0, cancelledError(c.ctx)
	default:
		return c.r.Read(p)
	}
}

// limitReader fails with ErrInputTooLarge once more than max bytes are read.
type limitReader struct {
	r    io.Reader
	left int64
}

func newLimitReader(r io.Reader, max int64) io.Reader {
	if max <= 0 {
		return r
	}
	return &limitReader{r: r, left: max}
}

func (l *limitReader) Read(p []byte) (int, error) {
	if l.left < 0 {
		return 0, ErrInputTooLarge
	}
	if int64(len(p)) > l.left+1 {
		p = p[:l.left+1]
	}
	n, err := l.r.Read(p)
	l.left -= int64(n)
	if l.left < 0 {
		return n, ErrInputTooLarge
	}
	return n, err
}

// inputReader wraps r with the construction context and size limit.
func inputReader(r io.Reader, opts Options) io.Reader {
	return &contextReader{ctx: opts.Context, r: newLimitReader(r, opts.MaxInputBytes)}
}

// onceCloser closes the cursor input at most once.
type onceCloser struct {
	once sync.Once
	c    io.Closer
	err  error
}

func newOnceCloser(r any) *onceCloser {
	c, _ := r.(io.Closer)
	return &onceCloser{c: c}
}

func (o *onceCloser) Close() error {
	o.once.Do(func() {
		if o.c != nil {
			o.err = o.c.Close()
		}
	})
	return o.err
}
