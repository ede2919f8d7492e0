package internal

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/frankli0324/go-httpc/internal/errs"
)

// watchdog ties one exchange to its context: once armed it closes the
// connection the moment the context is cancelled, so blocked writes, the
// preamble wait and lazy body reads all abort promptly instead of hanging
// on a dead peer. It stays armed until the response body is closed.
type watchdog struct {
	ctx     context.Context
	cancel  context.CancelFunc
	done    chan struct{}
	stop    sync.Once
	guarded bool
}

func watchExchange(ctx context.Context, timeout time.Duration) *watchdog {
	w := &watchdog{done: make(chan struct{})}
	if timeout > 0 {
		w.ctx, w.cancel = context.WithTimeout(ctx, timeout)
	} else {
		w.ctx, w.cancel = context.WithCancel(ctx)
	}
	return w
}

func (w *watchdog) arm(conn io.Closer) {
	go func() {
		select {
		case <-w.ctx.Done():
			conn.Close()
		case <-w.done:
		}
	}()
}

func (w *watchdog) halt() {
	w.stop.Do(func() {
		close(w.done)
		w.cancel()
	})
}

// disarmOnError releases the watchdog when the exchange fails before the
// body was handed over; after guard the body owns the lifecycle.
func (w *watchdog) disarmOnError() {
	if !w.guarded {
		w.halt()
	}
}

// wrap attributes errors that happened under a cancelled context to the
// cancellation itself: the connection was closed under the operation, so
// the transport's error describes a symptom, not the cause.
func (w *watchdog) wrap(err error) error {
	if err == nil {
		return nil
	}
	if ctxErr := w.ctx.Err(); ctxErr != nil {
		return errs.ErrCancelled.Wrap(ctxErr)
	}
	return err
}

func (w *watchdog) guard(body io.ReadCloser) io.ReadCloser {
	w.guarded = true
	return &watchedBody{body: body, w: w}
}

type watchedBody struct {
	body io.ReadCloser
	w    *watchdog
}

func (b *watchedBody) Read(p []byte) (n int, err error) {
	n, err = b.body.Read(p)
	if err != nil && err != io.EOF {
		err = b.w.wrap(err)
	}
	return
}

func (b *watchedBody) Close() error {
	err := b.body.Close()
	b.w.halt()
	return err
}
