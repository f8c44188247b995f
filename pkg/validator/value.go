package validator

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
)

// Numeric is the constraint accepted by Number.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Kind tags the payload carried by a Value.
type Kind uint8

const (
	KindNull Kind = iota
	KindString
	KindNumber
	KindBool
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Value is a snapshot of a single form input. The zero Value is Null.
type Value struct {
	kind Kind
	str  string
	num  float64
	flag bool
	obj  any
}

// Null returns the absent value.
func Null() Value {
	return Value{}
}

// String wraps a string input.
func String(s string) Value {
	return Value{kind: KindString, str: s}
}

// Number wraps any numeric input as a float64.
func Number[T Numeric](n T) Value {
	return Value{kind: KindNumber, num: float64(n)}
}

// Bool wraps a boolean input.
func Bool(b bool) Value {
	return Value{kind: KindBool, flag: b}
}

// Object wraps an arbitrary non-nil value. Nil becomes Null.
func Object(v any) Value {
	if isNil(v) {
		return Null()
	}
	return Value{kind: KindObject, obj: v}
}

// Of converts a dynamic Go value into a Value.
// Nil and nil pointers become Null, pointers are dereferenced, strings, bools
// and every integer and float kind map onto their tagged counterparts.
// Anything else is carried as an Object.
func Of(v any) Value {
	switch x := v.(type) {
	case nil:
		return Null()
	case Value:
		return x
	case string:
		return String(x)
	case bool:
		return Bool(x)
	case int:
		return Number(x)
	case int8:
		return Number(x)
	case int16:
		return Number(x)
	case int32:
		return Number(x)
	case int64:
		return Number(x)
	case uint:
		return Number(x)
	case uint8:
		return Number(x)
	case uint16:
		return Number(x)
	case uint32:
		return Number(x)
	case uint64:
		return Number(x)
	case float32:
		return Number(x)
	case float64:
		return Number(x)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer:
		if rv.IsNil() {
			return Null()
		}
		return Of(rv.Elem().Interface())
	case reflect.String:
		return String(rv.String())
	case reflect.Bool:
		return Bool(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Number(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return Number(rv.Uint())
	case reflect.Float32, reflect.Float64:
		return Number(rv.Float())
	}

	return Object(v)
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

func (v Value) Kind() Kind {
	return v.kind
}

func (v Value) IsNull() bool {
	return v.kind == KindNull
}

// AsString returns the string payload and whether the value is a string.
func (v Value) AsString() (string, bool) {
	return v.str, v.kind == KindString
}

// AsNumber returns the numeric payload and whether the value is a number.
func (v Value) AsNumber() (float64, bool) {
	return v.num, v.kind == KindNumber
}

// AsBool returns the boolean payload and whether the value is a bool.
func (v Value) AsBool() (bool, bool) {
	return v.flag, v.kind == KindBool
}

// Interface returns the payload as a plain Go value (nil for Null).
func (v Value) Interface() any {
	switch v.kind {
	case KindString:
		return v.str
	case KindNumber:
		return v.num
	case KindBool:
		return v.flag
	case KindObject:
		return v.obj
	default:
		return nil
	}
}

// Equal reports strict equality: same kind and same payload.
// NaN is never equal to anything, itself included.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindString:
		return v.str == o.str
	case KindNumber:
		return v.num == o.num
	case KindBool:
		return v.flag == o.flag
	case KindObject:
		a, b := reflect.TypeOf(v.obj), reflect.TypeOf(o.obj)
		if a != b || !a.Comparable() {
			return false
		}
		return sameObject(v.obj, o.obj)
	}
	return false
}

// sameObject compares payloads of one comparable type. A struct or interface
// type may still hold an uncomparable value, which compares as unequal.
func sameObject(a, b any) (eq bool) {
	defer func() {
		if r := recover(); r != nil {
			eq = false
		}
	}()
	return a == b
}

func (v Value) String() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindNumber:
		if math.IsNaN(v.num) {
			return "NaN"
		}
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.flag)
	case KindObject:
		return fmt.Sprint(v.obj)
	default:
		return "null"
	}
}
