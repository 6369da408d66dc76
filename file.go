package getsfattr

import (
	"context"
	"errors"
	"unicode/utf8"

	"github.com/partiallyordered/getsfattr/internal/types"
	"github.com/partiallyordered/getsfattr/internal/xattr"
)

// Result is an alias to types.Result, the outcome of collecting one file.
type Result = types.Result

// FileAttrs is an alias to types.FileAttrs, the JSON shape of one file.
type FileAttrs = types.FileAttrs

// Collect reads every extended attribute of file and encodes the values.
//
// The whole file fails on the first structural problem: the names cannot be
// listed (ListNamesError), a listed value cannot be read (GetValueError) or
// has disappeared (NoValueError). Names that are not valid UTF-8 and values
// the encoding cannot represent are left out without an error.
//
// Example:
//
//	r := getsfattr.Collect(ctx, "a.txt", getsfattr.WithEncoding(getsfattr.EncodingUTF8))
//	if r.Err != nil {
//		return r.Err
//	}
//	fmt.Println(r.Attrs["user.note"])
func Collect(ctx context.Context, file string, opts ...Option) Result {
	return collect(ctx, file, applyOptions(opts))
}

func collect(ctx context.Context, file string, o *options) Result {
	fail := func(err error) Result {
		return Result{File: file, Err: err}
	}

	if err := ctx.Err(); err != nil {
		return fail(&ListNamesError{File: file, Err: err})
	}

	names, err := o.store.List(ctx, file)
	if err != nil {
		return fail(&ListNamesError{File: file, Err: err})
	}

	attrs := make(map[string]string, len(names))
	dropped := 0
	for _, name := range names {
		if !utf8.ValidString(name) {
			dropped++
			continue
		}

		if err := ctx.Err(); err != nil {
			return fail(&GetValueError{File: file, Name: name, Err: err})
		}

		raw, err := o.store.Get(ctx, file, name)
		if err != nil {
			if errors.Is(err, xattr.ErrNoValue) {
				return fail(&NoValueError{File: file, Name: name})
			}
			return fail(&GetValueError{File: file, Name: name, Err: err})
		}

		value, ok := Encode(raw, o.encoding)
		if !ok {
			dropped++
			continue
		}
		attrs[name] = value
	}

	o.logger.Debug("collected attributes",
		"file", file,
		"attrs", len(attrs),
		"dropped", dropped,
		"encoding", o.encoding.String(),
	)

	return Result{File: file, Attrs: attrs}
}
