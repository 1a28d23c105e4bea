package hostapi

import (
	"fmt"
	"math"

	"github.com/ethanolivertroy/sizeprof/internal/options"
	"github.com/spf13/cast"
)

func arity(method string, args []any, n int) error {
	if len(args) != n {
		return &options.MalformedArgumentError{
			Arg: method,
			Err: fmt.Errorf("expected %d argument(s), got %d", n, len(args)),
		}
	}
	return nil
}

func stringArg(method string, args []any) (string, error) {
	if err := arity(method, args, 1); err != nil {
		return "", err
	}
	s, ok := args[0].(string)
	if !ok {
		return "", &options.MalformedArgumentError{Arg: method, Err: fmt.Errorf("expected a string, got %T", args[0])}
	}
	return s, nil
}

func uintArg(method string, args []any) (uint32, error) {
	if err := arity(method, args, 1); err != nil {
		return 0, err
	}
	if f, ok := args[0].(float64); ok && (f != math.Trunc(f) || math.IsInf(f, 0)) {
		return 0, &options.MalformedArgumentError{Arg: method, Err: fmt.Errorf("%v is not an integer", f)}
	}
	n, err := cast.ToUint64E(args[0])
	if err != nil {
		return 0, &options.MalformedArgumentError{Arg: method, Err: err}
	}
	if n > math.MaxUint32 {
		return 0, &options.MalformedArgumentError{Arg: method, Err: fmt.Errorf("%d is not a 32-bit unsigned integer", n)}
	}
	return uint32(n), nil
}

func boolArg(method string, args []any) (bool, error) {
	if err := arity(method, args, 1); err != nil {
		return false, err
	}
	b, err := cast.ToBoolE(args[0])
	if err != nil {
		return false, &options.MalformedArgumentError{Arg: method, Err: err}
	}
	return b, nil
}

func stringSetter(method string, set func(string)) Method {
	return func(args ...any) (any, error) {
		s, err := stringArg(method, args)
		if err != nil {
			return nil, err
		}
		set(s)
		return nil, nil
	}
}

func uintSetter(method string, set func(uint32)) Method {
	return func(args ...any) (any, error) {
		n, err := uintArg(method, args)
		if err != nil {
			return nil, err
		}
		set(n)
		return nil, nil
	}
}

func boolSetter(method string, set func(bool)) Method {
	return func(args ...any) (any, error) {
		b, err := boolArg(method, args)
		if err != nil {
			return nil, err
		}
		set(b)
		return nil, nil
	}
}
