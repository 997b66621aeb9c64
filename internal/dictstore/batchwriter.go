package dictstore

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
)

// writeFunc performs writes inside a transaction, same shape as the
// teacher's ingest.WriteFunc.
type writeFunc func(ctx context.Context, tx *sql.Tx) error

// batchWriter buffers inserts from a dictionary seed load and commits them
// in fixed-size transactional batches, adapted from
// _examples/japaniel-readerer/pkg/ingest/batch_writer.go. AddDictionary is
// the only caller: there is no need for the teacher's background flush
// ticker since a seed load is a single bounded pass, not an open-ended
// stream, so that piece of the original is dropped (see DESIGN.md).
type batchWriter struct {
	mu     sync.Mutex
	buf    []writeFunc
	cap    int
	db     *sql.DB
	closed bool

	errMu   sync.Mutex
	lastErr error
}

func newBatchWriter(db *sql.DB, bufferSize int) *batchWriter {
	if bufferSize <= 0 {
		bufferSize = 200
	}
	return &batchWriter{
		buf: make([]writeFunc, 0, bufferSize),
		cap: bufferSize,
		db:  db,
	}
}

func (bw *batchWriter) submit(ctx context.Context, w writeFunc) error {
	bw.mu.Lock()
	defer bw.mu.Unlock()
	if bw.closed {
		return errBatchWriterClosed
	}
	bw.buf = append(bw.buf, w)
	if len(bw.buf) >= bw.cap {
		return bw.flushLocked(ctx)
	}
	return nil
}

func (bw *batchWriter) flushLocked(ctx context.Context) error {
	if len(bw.buf) == 0 {
		return nil
	}
	batch := bw.buf
	bw.buf = make([]writeFunc, 0, bw.cap)
	return bw.executeBatch(ctx, batch)
}

func (bw *batchWriter) executeBatch(ctx context.Context, batch []writeFunc) error {
	tx, err := bw.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin batch tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, w := range batch {
		if err := w(ctx, tx); err != nil {
			bw.recordErr(err)
			return err
		}
	}
	if err := tx.Commit(); err != nil {
		err = fmt.Errorf("commit batch (%d items): %w", len(batch), err)
		bw.recordErr(err)
		return err
	}
	return nil
}

func (bw *batchWriter) recordErr(err error) {
	bw.errMu.Lock()
	if bw.lastErr == nil {
		bw.lastErr = err
	}
	bw.errMu.Unlock()
}

// close flushes any buffered writes and returns the first error seen, if
// any — across flushLocked calls or the final flush.
func (bw *batchWriter) close(ctx context.Context) error {
	bw.mu.Lock()
	if bw.closed {
		bw.mu.Unlock()
		return errBatchWriterClosed
	}
	bw.closed = true
	err := bw.flushLocked(ctx)
	bw.mu.Unlock()

	bw.errMu.Lock()
	defer bw.errMu.Unlock()
	if err != nil {
		return err
	}
	return bw.lastErr
}

type batchWriterError struct{ msg string }

func (e *batchWriterError) Error() string { return e.msg }

var errBatchWriterClosed = &batchWriterError{"dictionary store batch writer closed"}
