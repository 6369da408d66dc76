// Package getsfattr reads the extended attributes of many files
// concurrently and writes them as a single JSON array.
//
// # Quick Start
//
// Writing the attributes of a few files to stdout:
//
//	err := getsfattr.Run(ctx, os.Stdout, []string{"a.txt", "b.txt"})
//	if err != nil {
//		log.Fatal(err)
//	}
//
// The output is one object per file, in input order:
//
//	[{"file_name":"a.txt","attrs":{"user.note":"AB"}},{"file_name":"b.txt","attrs":{}}]
//
// # Encodings
//
// Attribute values are raw bytes. Exactly one Encoding renders all of them:
//
//   - EncodingEscaped (default): printable ASCII kept, everything else as \xNN
//   - EncodingBase64: standard base64 with padding
//   - EncodingUTF8: values kept only if they are valid UTF-8
//
// A value the chosen encoding cannot represent is omitted from its file's
// map. Attribute names that are not valid UTF-8 are always omitted.
//
// # Architecture
//
//	[Run]              - validates input, owns the output
//	  ├─ [Dispatch]    - bounded worker pool, input or completion order
//	  │    └─ [Collect] - one file: list names, read and encode values
//	  └─ [Emitter]     - the only writer of the JSON array
//
// # Error Handling
//
// getsfattr distinguishes structural from representational failures:
//
//   - Structural failures abort the run (ListNamesError, GetValueError,
//     NoValueError, SerializationError). The first one observed stops all
//     scheduling and is returned by Run.
//   - Representational failures (a value that does not fit the encoding)
//     are silent omissions.
//
// In the default streaming mode a failed run leaves the JSON array open on
// the writer, since elements are written as soon as they are ready. Use
// WithBufferedOutput to get either a complete array or no output at all.
//
// Iterate over results without emitting JSON:
//
//	for r := range getsfattr.Dispatch(ctx, paths, getsfattr.WithOrder(getsfattr.OrderCompletion)) {
//		if r.Err != nil {
//			return r.Err
//		}
//		fmt.Println(r.File, len(r.Attrs))
//	}
package getsfattr
