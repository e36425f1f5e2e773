package field

import (
	"fmt"
	"path"
	"reflect"
	"runtime"
	"strconv"
	"strings"

	"github.com/i--storm/structures/coerce"
	"github.com/i--storm/structures/utils"
)

// Adapt wraps a strongly typed conversion function into a coerce.Func so
// it can back an ad-hoc field without the caller writing the `any`
// plumbing by hand.
//
// Recognized signatures:
//   - func(in T) R
//   - func(in T) (R, bool)
//   - func(in T) (R, error)
//   - func(in T) (R, bool, error)
//
// A false bool or a non-nil error from the function rejects the value,
// as does an input not assignable to T. Variadic functions and any other
// signature fail with ErrNotAdaptable.
func Adapt(fn any) (coerce.Func, error) {
	a, err := parseAdapter(fn)
	if err != nil {
		return nil, err
	}

	return a.coerce, nil
}

type adapter struct {
	fn      reflect.Value
	in      reflect.Type
	out     reflect.Type
	name    string
	hasBool bool
	hasErr  bool
}

func parseAdapter(fn any) (*adapter, error) {
	fnVal := reflect.ValueOf(fn)
	if fnVal.Kind() != reflect.Func {
		return nil, ErrNotAFunction
	}

	fnType := fnVal.Type()
	if fnType.IsVariadic() || fnType.NumIn() != 1 || fnType.NumOut() == 0 {
		return nil, ErrNotAdaptable
	}

	a := &adapter{
		fn:   fnVal,
		in:   fnType.In(0),
		out:  fnType.Out(0),
		name: funcName(fnVal),
	}

	switch fnType.NumOut() {
	default:
		return nil, ErrNotAdaptable

	case 1:
		return a, nil

	case 2:
		last := fnType.Out(1)

		switch {
		default:
			return nil, ErrNotAdaptable
		case last.Kind() == reflect.Bool:
			a.hasBool = true
		case isError(last):
			a.hasErr = true
		}

		return a, nil

	case 3:
		if fnType.Out(1).Kind() != reflect.Bool || !isError(fnType.Out(2)) {
			return nil, ErrNotAdaptable
		}

		a.hasBool = true
		a.hasErr = true

		return a, nil
	}
}

func (a *adapter) coerce(value any) (any, error) {
	arg, ok := argFor(value, a.in)
	if !ok {
		return nil, a.reject(value, fmt.Errorf("%s takes %s", a.name, typeStr(a.in)))
	}

	results := a.fn.Call([]reflect.Value{arg})

	if a.hasErr {
		if err, _ := results[len(results)-1].Interface().(error); err != nil {
			return nil, a.reject(value, err)
		}
	}

	if a.hasBool && !results[1].Bool() {
		return nil, a.reject(value, ErrValueRejected)
	}

	return results[0].Interface(), nil
}

func (a *adapter) reject(value any, cause error) *coerce.Error {
	return &coerce.Error{Value: value, Target: typeStr(a.out), Err: cause}
}

// argFor makes value callable as the function's single argument. nil is
// usable only with parameter types that can hold it.
func argFor(value any, in reflect.Type) (reflect.Value, bool) {
	if value == nil {
		switch in.Kind() {
		default:
			return reflect.Value{}, false
		case reflect.Pointer, reflect.Interface, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func:
			return reflect.Zero(in), true
		}
	}

	rv := reflect.ValueOf(value)
	if !rv.Type().AssignableTo(in) {
		return reflect.Value{}, false
	}

	return rv, true
}

// funcName resolves the function's short name for error messages. For
// anonymous functions it keeps the compiler-assigned suffix (funcN).
func funcName(fnVal reflect.Value) string {
	fnPC := runtime.FuncForPC(fnVal.Pointer())
	if fnPC == nil {
		return "adapted function"
	}

	short := utils.Second(path.Split(fnPC.Name()))

	_, name := utils.Unpack2(strings.SplitN(short, ".", 2))
	if name == "" {
		return short
	}

	return name
}

func typeStr(t reflect.Type) string {
	switch t.Kind() {
	case reflect.Pointer:
		return "*" + typeStr(t.Elem())
	case reflect.Slice:
		return "[]" + typeStr(t.Elem())
	case reflect.Array:
		return "[" + strconv.Itoa(t.Len()) + "]" + typeStr(t.Elem())
	case reflect.Map:
		return "map[" + typeStr(t.Key()) + "]" + typeStr(t.Elem())
	default:
		return t.String()
	}
}

func isError(t reflect.Type) bool {
	if t == nil {
		return false
	}

	terr := reflect.TypeOf((*error)(nil)).Elem()

	return t.Implements(terr)
}
