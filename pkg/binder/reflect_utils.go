package binder

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// bindFields walks the exported fields of the struct v points to and sets each
// one from lookup(name). Fields without a tag bind to their lowercased name;
// a "-" tag skips the field.
func bindFields(v any, tagName string, lookup func(name string) []string, bindErr error) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("%w: %w", bindErr, ErrInvalidTarget)
	}
	rv = rv.Elem()
	rt := rv.Type()

	for i := range rv.NumField() {
		field := rv.Field(i)
		sf := rt.Field(i)
		if !field.CanSet() {
			continue
		}

		name, skip := parseFieldTag(sf, tagName)
		if skip {
			continue
		}

		values := lookup(name)
		if len(values) == 0 {
			continue
		}

		if err := setFieldValue(field, sf.Type, values); err != nil {
			return fmt.Errorf("%w: field %s: %v", bindErr, sf.Name, err)
		}
	}

	return nil
}

func parseFieldTag(field reflect.StructField, tagName string) (name string, skip bool) {
	tag := field.Tag.Get(tagName)
	switch tag {
	case "":
		return strings.ToLower(field.Name), false
	case "-":
		return "", true
	}
	name, _, _ = strings.Cut(tag, ",")
	return name, false
}

func setFieldValue(field reflect.Value, typ reflect.Type, values []string) error {
	if typ.Kind() == reflect.Pointer {
		if field.IsNil() {
			field.Set(reflect.New(typ.Elem()))
		}
		return setFieldValue(field.Elem(), typ.Elem(), values)
	}

	if typ.Kind() == reflect.Slice {
		return setSliceValue(field, typ, values)
	}

	value := strings.TrimSpace(values[0])

	switch typ.Kind() {
	case reflect.String:
		field.SetString(value)

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(value, 10, typ.Bits())
		if err != nil {
			return fmt.Errorf("invalid int value %q", value)
		}
		field.SetInt(n)

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(value, 10, typ.Bits())
		if err != nil {
			return fmt.Errorf("invalid uint value %q", value)
		}
		field.SetUint(n)

	case reflect.Bool:
		switch strings.ToLower(value) {
		case "1", "t", "true", "on", "yes":
			field.SetBool(true)
		case "", "0", "f", "false", "off", "no":
			field.SetBool(false)
		default:
			return fmt.Errorf("invalid bool value %q", value)
		}

	default:
		return fmt.Errorf("unsupported type %s", typ.Kind())
	}

	return nil
}

// setSliceValue accepts both repeated parameters and comma-separated lists.
func setSliceValue(field reflect.Value, typ reflect.Type, values []string) error {
	var all []string
	for _, v := range values {
		for part := range strings.SplitSeq(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				all = append(all, part)
			}
		}
	}

	slice := reflect.MakeSlice(typ, len(all), len(all))
	for i, value := range all {
		if err := setFieldValue(slice.Index(i), typ.Elem(), []string{value}); err != nil {
			return err
		}
	}
	field.Set(slice)
	return nil
}
