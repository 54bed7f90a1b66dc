package jsontree

import (
	"fmt"
	"reflect"
	"unsafe"

	"github.com/viant/xunsafe"
)

var (
	anySliceType  = reflect.TypeOf([]interface{}(nil))
	anyMapType    = reflect.TypeOf(map[string]interface{}(nil))
	stringMapType = reflect.TypeOf(map[string]string(nil))
)

// Assign writes the value into dest, which must be a non-nil pointer to a
// string, bool, numeric, []interface{}, map destination or interface{}.
// Intermediate nil pointers are allocated; a null value leaves the
// destination untouched.
func (v *Value) Assign(dest interface{}) error {
	rt := reflect.TypeOf(dest)
	if rt == nil || rt.Kind() != reflect.Ptr {
		return fmt.Errorf("destination must be a pointer, got %T", dest)
	}
	return v.assign(xunsafe.AsPointer(dest), rt.Elem())
}

func (v *Value) assign(ptr unsafe.Pointer, rt reflect.Type) error {
	if rt.Kind() == reflect.Ptr {
		if v.kind == KindNull {
			return nil
		}
		inner := xunsafe.SafeDerefPointer(ptr, rt)
		return v.assign(inner, rt.Elem())
	}
	if v.kind == KindNull {
		return nil
	}
	switch rt.Kind() {
	case reflect.Interface:
		if rt.NumMethod() != 0 {
			return fmt.Errorf("cannot assign to %s", rt)
		}
		*(*interface{})(ptr) = v.Interface()
		return nil
	case reflect.String:
		if v.kind != KindString {
			return fmt.Errorf("expected string, got %v", v.kind)
		}
		*xunsafe.AsStringPtr(ptr) = v.text
		return nil
	case reflect.Bool:
		if v.kind != KindBoolean {
			return fmt.Errorf("expected boolean, got %v", v.kind)
		}
		*xunsafe.AsBoolPtr(ptr) = v.boolean
		return nil
	case reflect.Float64:
		if v.kind != KindNumber {
			return fmt.Errorf("expected number, got %v", v.kind)
		}
		*xunsafe.AsFloat64Ptr(ptr) = v.number
		return nil
	case reflect.Float32:
		if v.kind != KindNumber {
			return fmt.Errorf("expected number, got %v", v.kind)
		}
		*xunsafe.AsFloat32Ptr(ptr) = float32(v.number)
		return nil
	case reflect.Int:
		if v.kind != KindNumber {
			return fmt.Errorf("expected number, got %v", v.kind)
		}
		*xunsafe.AsIntPtr(ptr) = int(v.number)
		return nil
	case reflect.Int64:
		if v.kind != KindNumber {
			return fmt.Errorf("expected number, got %v", v.kind)
		}
		*xunsafe.AsInt64Ptr(ptr) = int64(v.number)
		return nil
	case reflect.Slice:
		if v.kind != KindArray {
			return fmt.Errorf("expected array, got %v", v.kind)
		}
		if rt != anySliceType {
			return fmt.Errorf("unsupported slice destination %s", rt)
		}
		out := make([]interface{}, 0, len(v.items))
		for _, item := range v.items {
			out = append(out, item.Interface())
		}
		*(*[]interface{})(ptr) = out
		return nil
	case reflect.Map:
		if v.kind != KindObject {
			return fmt.Errorf("expected object, got %v", v.kind)
		}
		switch rt {
		case anyMapType:
			out := make(map[string]interface{}, len(v.fields))
			for i := range v.fields {
				out[v.fields[i].Key] = v.fields[i].Value.Interface()
			}
			*(*map[string]interface{})(ptr) = out
			return nil
		case stringMapType:
			out := make(map[string]string, len(v.fields))
			for i := range v.fields {
				member := v.fields[i].Value
				if member.Kind() != KindString {
					return fmt.Errorf("expected string member %q, got %v", v.fields[i].Key, member.Kind())
				}
				out[v.fields[i].Key] = member.Text()
			}
			*(*map[string]string)(ptr) = out
			return nil
		}
		return fmt.Errorf("unsupported map destination %s", rt)
	}
	return fmt.Errorf("unsupported destination kind %s", rt.Kind())
}
