package logx

import "strconv"

// appendLine formats one "[tag] msg k=v ... err=..." line onto b.
func appendLine(b []byte, tag, msg string, err error, kv []KV) []byte {
	b = append(b, '[')
	b = append(b, tag...)
	b = append(b, "] "...)
	b = append(b, msg...)
	for _, f := range kv {
		b = append(b, ' ')
		b = append(b, f.Key...)
		b = append(b, '=')
		if f.isInt {
			b = strconv.AppendInt(b, f.Int, 10)
		} else {
			b = append(b, f.Str...)
		}
	}
	if err != nil {
		b = append(b, " err="...)
		b = append(b, err.Error()...)
	}
	return append(b, '\r', '\n')
}
