package lazy

import (
	"reflect"
	"runtime"
	"strings"
)

var (
	tupleType = reflect.TypeFor[Tuple]()
	unitType  = reflect.TypeFor[Unit]()
	errorType = reflect.TypeFor[error]()
)

// IsNil reports whether i is nil or a nil pointer, map, slice, func or chan.
func IsNil(i interface{}) bool {
	if i == nil {
		return true
	}
	v := reflect.ValueOf(i)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}

// IsNillable reports whether a nil value can be assigned to t.
func IsNillable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return true
	}
	return false
}

// IsTupleType reports whether values of t are spread element by element.
// Only Tuple2/3/4 values qualify. Pointers to them and structs embedding them
// are passed on whole.
func IsTupleType(t reflect.Type) bool {
	return t != nil && t.Kind() == reflect.Struct &&
		t.PkgPath() == unitType.PkgPath() && t.Implements(tupleType)
}

func IsUnitType(t reflect.Type) bool {
	return t == unitType
}

func IsErrorType(t reflect.Type) bool {
	return t == errorType
}

// TupleElems returns the element types of a tuple type, in order.
func TupleElems(t reflect.Type) []reflect.Type {
	if !IsTupleType(t) {
		return nil
	}
	elems := make([]reflect.Type, 0, t.NumField())
	for i := range t.NumField() {
		elems = append(elems, t.Field(i).Type)
	}
	return elems
}

// FuncName returns a short name for fn, suitable for logs and errors.
func FuncName(fn any) string {
	if fn == nil {
		return "<nil>"
	}
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func {
		return v.Type().String()
	}
	if v.IsNil() {
		return "<nil func>"
	}
	f := runtime.FuncForPC(v.Pointer())
	if f == nil {
		return v.Type().String()
	}
	name := f.Name()
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	return name
}
