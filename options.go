package getsfattr

import (
	"log/slog"
	"runtime"
	"time"

	"github.com/partiallyordered/getsfattr/internal/xattr"
)

// Store is an alias to xattr.Store, the attribute-store primitive the
// collector reads from.
type Store = xattr.Store

// Option configures collection, dispatch and emission.
//
// Options use the functional options pattern for clean, extensible APIs.
//
// Example:
//
//	err := getsfattr.Run(ctx, os.Stdout, paths,
//	    getsfattr.WithEncoding(getsfattr.EncodingBase64),
//	    getsfattr.WithOrder(getsfattr.OrderCompletion),
//	)
type Option func(*options)

// options holds configuration for a run.
type options struct {
	store       Store
	logger      *slog.Logger
	encoding    Encoding
	order       Order
	concurrency int           // Worker pool size (0 = runtime.NumCPU())
	fileTimeout time.Duration // Per-file deadline (0 = none)
	buffered    bool          // Hold output until the run outcome is known
}

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		store:    xattr.NewOS(),
		logger:   slog.New(slog.DiscardHandler),
		encoding: EncodingEscaped,
		order:    OrderInput,
	}
}

func applyOptions(opts []Option) *options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// workers returns the pool size for n files.
func (o *options) workers(n int) int {
	w := o.concurrency
	if w <= 0 {
		w = runtime.NumCPU()
	}
	if w > n {
		w = n
	}
	if w < 1 {
		w = 1
	}
	return w
}

// WithEncoding selects how attribute values are rendered.
//
// Default is EncodingEscaped.
func WithEncoding(enc Encoding) Option {
	return func(o *options) {
		o.encoding = enc
	}
}

// WithOrder selects the order results are delivered in.
//
// OrderInput (default) holds finished results until every earlier file is
// done. OrderCompletion delivers each result as soon as it is ready, which
// lowers latency and memory at the cost of a nondeterministic order.
func WithOrder(order Order) Option {
	return func(o *options) {
		o.order = order
	}
}

// WithConcurrency caps the number of files collected at the same time.
//
// Values <= 0 select runtime.NumCPU().
func WithConcurrency(n int) Option {
	return func(o *options) {
		o.concurrency = n
	}
}

// WithFileTimeout bounds the time spent collecting a single file.
//
// A file that exceeds it fails with an error wrapping
// context.DeadlineExceeded. Default is 0 (no limit).
func WithFileTimeout(d time.Duration) Option {
	return func(o *options) {
		o.fileTimeout = d
	}
}

// WithBufferedOutput holds the whole JSON array in memory and writes it only
// once every file succeeded.
//
// A failed run then writes nothing, instead of leaving a partial array.
func WithBufferedOutput() Option {
	return func(o *options) {
		o.buffered = true
	}
}

// WithStore replaces the host filesystem with another attribute store.
func WithStore(s Store) Option {
	return func(o *options) {
		if s != nil {
			o.store = s
		}
	}
}

// WithLogger sets the logger used for debug records. By default nothing is
// logged.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
