package dyn

import (
	"reflect"

	"github.com/ib-77/lazychain/pkg/lazy"
)

// binding is a callable checked against the values it will receive.
type binding struct {
	fn    reflect.Value
	bound []reflect.Value
	out   []reflect.Type
	fails bool
}

func bind(depth int, fn any, lead []reflect.Type, args []any) (binding, error) {
	name := lazy.FuncName(fn)
	if lazy.IsNil(fn) {
		return binding{}, lazy.Incompatible(depth, name, "callable is nil")
	}

	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func {
		return binding{}, lazy.Incompatible(depth, name, "%s is not a function", v.Type())
	}

	ft := v.Type()
	supplied := len(lead) + len(args)
	if ft.IsVariadic() {
		if supplied < ft.NumIn()-1 {
			return binding{}, lazy.Incompatible(depth, name,
				"needs at least %d arguments, got %d spread and %d bound", ft.NumIn()-1, len(lead), len(args))
		}
	} else if supplied != ft.NumIn() {
		return binding{}, lazy.Incompatible(depth, name,
			"needs %d arguments, got %d spread and %d bound", ft.NumIn(), len(lead), len(args))
	}

	for i, t := range lead {
		if p := paramType(ft, i); !t.AssignableTo(p) {
			return binding{}, lazy.Incompatible(depth, name,
				"spread argument %d: %s is not assignable to %s", i, t, p)
		}
	}

	bound := make([]reflect.Value, 0, len(args))
	for i, a := range args {
		p := paramType(ft, len(lead)+i)
		if a == nil {
			if !lazy.IsNillable(p) {
				return binding{}, lazy.Incompatible(depth, name, "bound argument %d: nil is not assignable to %s", i, p)
			}
			bound = append(bound, reflect.Zero(p))
			continue
		}

		av := reflect.ValueOf(a)
		if !av.Type().AssignableTo(p) {
			return binding{}, lazy.Incompatible(depth, name,
				"bound argument %d: %s is not assignable to %s", i, av.Type(), p)
		}
		bound = append(bound, av)
	}

	out := make([]reflect.Type, 0, ft.NumOut())
	for i := range ft.NumOut() {
		out = append(out, ft.Out(i))
	}
	fails := len(out) > 0 && lazy.IsErrorType(out[len(out)-1])
	if fails {
		out = out[:len(out)-1]
	}

	return binding{fn: v, bound: bound, out: out, fails: fails}, nil
}

func paramType(ft reflect.Type, i int) reflect.Type {
	if ft.IsVariadic() && i >= ft.NumIn()-1 {
		return ft.In(ft.NumIn() - 1).Elem()
	}
	return ft.In(i)
}

func (b binding) call(lead []reflect.Value) ([]reflect.Value, error) {
	in := make([]reflect.Value, 0, len(lead)+len(b.bound))
	in = append(in, lead...)
	in = append(in, b.bound...)

	results := b.fn.Call(in)
	if !b.fails {
		return results, nil
	}

	last := results[len(results)-1]
	results = results[:len(results)-1]
	if !last.IsNil() {
		return results, last.Interface().(error)
	}
	return results, nil
}
