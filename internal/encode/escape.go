package encode

const hexDigits = "0123456789abcdef"

// AppendEscaped appends the ASCII escape of src to dst.
//
// Tab, carriage return and newline become \t, \r and \n; backslash and both
// quote characters are backslash-prefixed; the remaining printable ASCII
// range (0x20-0x7e) is copied; every other byte becomes \xNN.
func AppendEscaped(dst, src []byte) []byte {
	for _, b := range src {
		switch {
		case b == '\t':
			dst = append(dst, '\\', 't')
		case b == '\r':
			dst = append(dst, '\\', 'r')
		case b == '\n':
			dst = append(dst, '\\', 'n')
		case b == '\\', b == '\'', b == '"':
			dst = append(dst, '\\', b)
		case b >= 0x20 && b <= 0x7e:
			dst = append(dst, b)
		default:
			dst = append(dst, '\\', 'x', hexDigits[b>>4], hexDigits[b&0x0f])
		}
	}
	return dst
}
