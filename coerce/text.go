package coerce

import (
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding/ianaindex"
)

// Text coerces to text using the strict UTF-8 codec: text passes through,
// byte buffers are decoded and rejected when invalid, any other value is
// rendered with standard formatting.
func Text(value any) (any, error) {
	switch v := value.(type) {
	default:
		return fmt.Sprintf("%v", value), nil
	case string:
		return v, nil
	case []byte:
		if !utf8.Valid(v) {
			return nil, newError(value, "text", ErrInvalidBytes)
		}

		return string(v), nil
	}
}

// TextEncoding builds a text coercion that decodes byte buffers with the
// named codec. Names follow the IANA character set registry ("UTF-8",
// "ISO-8859-1", "windows-1251", ...). The UTF-8 codec rejects invalid
// byte sequences; other codecs substitute the replacement character for
// undecodable input.
func TextEncoding(name string) (Func, error) {
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return nil, fmt.Errorf("unknown encoding %q: %w", name, err)
	}

	if enc == nil {
		return nil, fmt.Errorf("encoding %q has no decoder", name)
	}

	if canonical, err := ianaindex.IANA.Name(enc); err == nil && canonical == "UTF-8" {
		return Text, nil
	}

	return func(value any) (any, error) {
		switch v := value.(type) {
		default:
			return fmt.Sprintf("%v", value), nil
		case string:
			return v, nil
		case []byte:
			decoded, err := enc.NewDecoder().Bytes(v)
			if err != nil {
				return nil, newError(value, "text", err)
			}

			return string(decoded), nil
		}
	}, nil
}
