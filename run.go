package getsfattr

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
)

// Run collects the extended attributes of files and writes them to w as a
// JSON array, one object per file.
//
// Run is fail-fast: the first structural failure stops the scheduling of
// further files and is returned as is, so callers can inspect it with
// errors.As. In streaming mode the array written so far is left open on w;
// with WithBufferedOutput nothing is written on failure.
//
// files must contain at least one entry and no empty names.
//
// Example:
//
//	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
//	defer cancel()
//
//	if err := getsfattr.Run(ctx, os.Stdout, os.Args[1:]); err != nil {
//		fmt.Fprintf(os.Stderr, "Error!: %v\n", err)
//		os.Exit(1)
//	}
func Run(ctx context.Context, w io.Writer, files []string, opts ...Option) error {
	if err := validateFiles(files); err != nil {
		return err
	}

	o := applyOptions(opts)
	em := NewEmitter(w, o.buffered)
	start := time.Now()

	var attrs, size int
	for r := range dispatchSeq(ctx, files, o) {
		if err := em.Write(r); err != nil {
			o.logger.Debug("run failed",
				"file", r.File,
				"emitted", em.Count(),
				"error", err,
			)
			return err
		}
		attrs += len(r.Attrs)
		for _, v := range r.Attrs {
			size += len(v)
		}
	}

	if em.Count() != len(files) {
		if err := ctx.Err(); err != nil {
			return err
		}
		return fmt.Errorf("collected %d of %d files", em.Count(), len(files))
	}

	if err := em.Close(); err != nil {
		return err
	}

	o.logger.Debug("run finished",
		"files", em.Count(),
		"attrs", attrs,
		"encoded", humanize.Bytes(uint64(size)),
		"elapsed", time.Since(start),
	)
	return nil
}

func validateFiles(files []string) error {
	if len(files) == 0 {
		return ErrNoFiles
	}
	for i, f := range files {
		if f == "" {
			return fmt.Errorf("argument %d: %w", i+1, ErrEmptyFileName)
		}
	}
	return nil
}
