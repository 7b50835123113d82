package dynamic

import (
	"fmt"
	"reflect"
)

// Func is the native shape of a callable member value.
//
// InvokeMember calls a Func, or a plain func(...any) (any, error), directly and
// returns its result and error unmodified. Any other Go function value is
// called through reflection:
//
//   - arguments must match the parameter count (variadic functions accept any
//     count from the fixed parameters up) and be assignable to the parameter
//     types; a nil argument binds to the zero value of a nillable parameter.
//   - a trailing error result becomes the returned error.
//   - of the remaining results none yields nil, one is returned as is and
//     several are returned as a []any.
//
// Panics raised by the function are not recovered.
type Func func(args ...any) (any, error)

var errorType = reflect.TypeFor[error]()

// invoke dispatches a call to value, the member stored under name.
func invoke(name string, value any, args []any) (any, error) {
	switch fn := value.(type) {
	case Func:
		if fn == nil {
			return nil, &MemberError{Name: name}
		}
		return fn(args...)
	case func(...any) (any, error):
		if fn == nil {
			return nil, &MemberError{Name: name}
		}
		return fn(args...)
	}

	fv := reflect.ValueOf(value)
	if fv.Kind() != reflect.Func || fv.IsNil() {
		return nil, &MemberError{Name: name}
	}

	in, err := bindArgs(name, fv.Type(), args)
	if err != nil {
		return nil, err
	}

	return collectResults(fv.Call(in))
}

// bindArgs converts args into call arguments for a function of type ft.
func bindArgs(name string, ft reflect.Type, args []any) ([]reflect.Value, error) {
	fixed := ft.NumIn()
	if ft.IsVariadic() {
		fixed--
	}

	if len(args) < fixed || (!ft.IsVariadic() && len(args) > fixed) {
		want := fmt.Sprintf("%d", fixed)
		if ft.IsVariadic() {
			want = fmt.Sprintf("at least %d", fixed)
		}

		return nil, &ArgumentError{
			Member: name,
			Index:  -1,
			Reason: fmt.Sprintf("expected %s arguments, got %d", want, len(args)),
		}
	}

	in := make([]reflect.Value, len(args))
	for i, arg := range args {
		var pt reflect.Type
		if i < fixed {
			pt = ft.In(i)
		} else {
			pt = ft.In(fixed).Elem()
		}

		v, ok := bindArg(arg, pt)
		if !ok {
			return nil, &ArgumentError{
				Member: name,
				Index:  i,
				Reason: fmt.Sprintf("argument %d: %T is not assignable to %s", i, arg, pt),
			}
		}

		in[i] = v
	}

	return in, nil
}

func bindArg(arg any, pt reflect.Type) (reflect.Value, bool) {
	if arg == nil {
		switch pt.Kind() {
		case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
			return reflect.Zero(pt), true
		}
		return reflect.Value{}, false
	}

	v := reflect.ValueOf(arg)
	if !v.Type().AssignableTo(pt) {
		return reflect.Value{}, false
	}

	return v, true
}

// collectResults folds the results of a reflective call into (any, error).
func collectResults(out []reflect.Value) (any, error) {
	var err error
	if n := len(out); n > 0 && out[n-1].Type() == errorType {
		if e, ok := out[n-1].Interface().(error); ok {
			err = e
		}
		out = out[:n-1]
	}

	switch len(out) {
	case 0:
		return nil, err
	case 1:
		return out[0].Interface(), err
	}

	results := make([]any, len(out))
	for i, v := range out {
		results[i] = v.Interface()
	}

	return results, err
}
