package coerce

import (
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/i--storm/structures/utils"
)

// Func converts an arbitrary value to the canonical representation of one
// kind. On rejected input it returns a nil value and an *Error.
type Func func(value any) (any, error)

// Int coerces to int64. Booleans become 0 or 1, floats and decimals are
// truncated toward zero, text is parsed as a base-10 integer. Fractional
// text such as "5.2" is rejected.
func Int(value any) (any, error) {
	switch v := value.(type) {
	default:
		return nil, newError(value, "integer", nil)
	case bool:
		if v {
			return int64(1), nil
		}

		return int64(0), nil
	case int, int8, int16, int32, int64:
		return reflect.ValueOf(value).Int(), nil
	case uint, uint8, uint16, uint32, uint64:
		u := reflect.ValueOf(value).Uint()
		if u > math.MaxInt64 {
			return nil, newError(value, "integer", strconv.ErrRange)
		}

		return int64(u), nil
	case float32, float64:
		return truncFloat(value, reflect.ValueOf(value).Float())
	case decimal.Decimal:
		whole := v.BigInt()
		if !whole.IsInt64() {
			return nil, newError(value, "integer", strconv.ErrRange)
		}

		return whole.Int64(), nil
	case string:
		return parseInt(value, v)
	case []byte:
		return parseInt(value, string(v))
	}
}

func truncFloat(origin any, f float64) (any, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, newError(origin, "integer", ErrNotFinite)
	}

	t := math.Trunc(f)
	if t < math.MinInt64 || t >= math.MaxInt64 {
		return nil, newError(origin, "integer", strconv.ErrRange)
	}

	return int64(t), nil
}

func parseInt(origin any, s string) (any, error) {
	cleaned, ok := stripSeparators(strings.TrimSpace(s))
	if !ok {
		return nil, newError(origin, "integer", strconv.ErrSyntax)
	}

	n, err := strconv.ParseInt(cleaned, 10, 64)
	if err != nil {
		return nil, newError(origin, "integer", err)
	}

	return n, nil
}

// stripSeparators drops `_` digit separators. Each underscore must sit
// between two digits, the way numeric literals allow them.
func stripSeparators(s string) (string, bool) {
	if !strings.ContainsRune(s, '_') {
		return s, true
	}

	var b strings.Builder

	for i := 0; i < len(s); i++ {
		if s[i] != '_' {
			b.WriteByte(s[i])
			continue
		}

		if i == 0 || i == len(s)-1 || !isDigit(s[i-1]) || !isDigit(s[i+1]) {
			return "", false
		}
	}

	return b.String(), true
}

func isDigit(b byte) bool {
	return '0' <= b && b <= '9'
}

// Float coerces to float64. Booleans become 0 or 1, integers and decimals
// are widened, text is parsed.
func Float(value any) (any, error) {
	switch v := value.(type) {
	default:
		return nil, newError(value, "float", nil)
	case bool:
		if v {
			return float64(1), nil
		}

		return float64(0), nil
	case int, int8, int16, int32, int64:
		return float64(reflect.ValueOf(value).Int()), nil
	case uint, uint8, uint16, uint32, uint64:
		return float64(reflect.ValueOf(value).Uint()), nil
	case float32, float64:
		return reflect.ValueOf(value).Float(), nil
	case decimal.Decimal:
		return v.InexactFloat64(), nil
	case string:
		return parseFloat(value, v)
	case []byte:
		return parseFloat(value, string(v))
	}
}

func parseFloat(origin any, s string) (any, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return nil, newError(origin, "float", err)
	}

	return f, nil
}

// Decimal coerces to decimal.Decimal. Floats keep their shortest decimal
// representation, text is parsed exactly.
func Decimal(value any) (any, error) {
	switch v := value.(type) {
	default:
		return nil, newError(value, "decimal", nil)
	case bool:
		if v {
			return decimal.NewFromInt(1), nil
		}

		return decimal.NewFromInt(0), nil
	case int, int8, int16, int32, int64:
		return decimal.NewFromInt(reflect.ValueOf(value).Int()), nil
	case uint, uint8, uint16, uint32, uint64:
		return decimal.NewFromUint64(reflect.ValueOf(value).Uint()), nil
	case float32, float64:
		f := reflect.ValueOf(value).Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, newError(value, "decimal", ErrNotFinite)
		}

		return decimal.NewFromFloat(f), nil
	case decimal.Decimal:
		return v, nil
	case string:
		return parseDecimal(value, v)
	case []byte:
		return parseDecimal(value, string(v))
	}
}

func parseDecimal(origin any, s string) (any, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return nil, newError(origin, "decimal", err)
	}

	return d, nil
}

// Bool coerces to bool and is total: nil, numeric zero and empty
// containers are false, everything else is true.
func Bool(value any) (any, error) {
	switch v := value.(type) {
	default:
		return truthy(value), nil
	case nil:
		return false, nil
	case bool:
		return v, nil
	case int, int8, int16, int32, int64:
		return reflect.ValueOf(value).Int() != 0, nil
	case uint, uint8, uint16, uint32, uint64:
		return reflect.ValueOf(value).Uint() != 0, nil
	case float32, float64:
		return reflect.ValueOf(value).Float() != 0, nil
	case decimal.Decimal:
		return !v.IsZero(), nil
	case string:
		return len(v) > 0, nil
	case []byte:
		return len(v) > 0, nil
	case List:
		return len(v) > 0, nil
	case Tuple:
		return len(v) > 0, nil
	case Set:
		return len(v) > 0, nil
	case FrozenSet:
		return len(v) > 0, nil
	case Dict:
		return len(v) > 0, nil
	}
}

func truthy(value any) bool {
	rv := reflect.ValueOf(value)

	switch rv.Kind() {
	default:
		return true
	case reflect.Slice, reflect.Array, reflect.Map, reflect.String, reflect.Chan:
		return rv.Len() > 0
	case reflect.Pointer, reflect.Func:
		return !rv.IsNil()
	}
}

// Bytes coerces to a byte buffer. An integer count yields a zeroed buffer
// of that length, an iterable must hold integers in range 0..255, and
// text is rejected: it has to go through a codec first.
func Bytes(value any) (any, error) {
	switch v := value.(type) {
	default:
		return bytesFromIterable(value)
	case nil:
		return nil, newError(value, "bytes", nil)
	case string:
		return nil, newError(value, "bytes", ErrUnencodedText)
	case []byte:
		return append([]byte(nil), v...), nil
	case int, int8, int16, int32, int64:
		return zeroedBytes(value, reflect.ValueOf(value).Int())
	case uint, uint8, uint16, uint32, uint64:
		u := reflect.ValueOf(value).Uint()
		if u > math.MaxInt32 {
			return nil, newError(value, "bytes", strconv.ErrRange)
		}

		return zeroedBytes(value, int64(u))
	}
}

func zeroedBytes(origin any, n int64) (any, error) {
	if n < 0 {
		return nil, newError(origin, "bytes", ErrNegativeCount)
	}

	if n > math.MaxInt32 {
		return nil, newError(origin, "bytes", strconv.ErrRange)
	}

	return make([]byte, n), nil
}

func bytesFromIterable(value any) (any, error) {
	elems, err := elements(value)
	if err != nil {
		return nil, newError(value, "bytes", err)
	}

	buf := make([]byte, 0, len(elems))

	for _, el := range elems {
		b, err := byteValue(el)
		if err != nil {
			return nil, newError(value, "bytes", err)
		}

		buf = append(buf, b)
	}

	return buf, nil
}

func byteValue(el any) (byte, error) {
	switch el.(type) {
	default:
		return 0, ErrNotAnInteger
	case int, int8, int16, int32, int64:
		n := reflect.ValueOf(el).Int()
		if !utils.IsInRange(0, n, 255) {
			return 0, ErrByteRange
		}

		return byte(n), nil
	case uint, uint8, uint16, uint32, uint64:
		u := reflect.ValueOf(el).Uint()
		if !utils.IsInRange(0, u, 255) {
			return 0, ErrByteRange
		}

		return byte(u), nil
	}
}
