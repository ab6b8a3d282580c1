package las

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"
)

var (
	timeType       = reflect.TypeOf(time.Time{})
	valueType      = reflect.TypeOf(Value{})
	headerItemType = reflect.TypeOf(HeaderItem{})
)

// UnmarshalSection copies header items of s into the struct pointed to by v.
//
// Struct tags select the mnemonic, matched case-insensitively:
//   - `las:"UWI"` - maps item UWI to this field
//   - `las:"STRT,required"` - fails if the item is absent or empty
//   - `las:"-"` - ignores this field
//
// Untagged fields use the field name. Supported field types are string,
// signed and unsigned integers, floats, time.Time, Value and HeaderItem, and
// pointers to those.
//
// Example:
//
//	type WellInfo struct {
//	    UWI     string    `las:"UWI"`
//	    Start   float64   `las:"STRT,required"`
//	    Null    float64   `las:"NULL"`
//	    LogDate time.Time `las:"DATE"`
//	}
func UnmarshalSection(s *Section, v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("unmarshal target must be a non-nil pointer")
	}

	elem := rv.Elem()
	if elem.Kind() != reflect.Struct {
		return fmt.Errorf("unmarshal target must be a pointer to struct")
	}

	return unmarshalStruct(s, elem)
}

// UnmarshalWell unmarshals the ~Well section into v.
func (d *Document) UnmarshalWell(v any) error {
	return UnmarshalSection(d.Well(), v)
}

// UnmarshalParams unmarshals the ~Parameter section into v.
func (d *Document) UnmarshalParams(v any) error {
	return UnmarshalSection(d.Params(), v)
}

func unmarshalStruct(s *Section, v reflect.Value) error {
	t := v.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		fieldValue := v.Field(i)

		if !fieldValue.CanSet() {
			continue
		}

		tag := field.Tag.Get("las")
		if tag == "-" {
			continue
		}

		name, opts := parseTag(tag)
		if name == "" {
			name = field.Name
		}

		item, ok := s.Get(name)
		if !ok || item.Value.IsMissing() {
			if hasOption(opts, "required") {
				return fmt.Errorf("required item %s not found", name)
			}
			if !ok {
				continue
			}
		}

		if err := setField(fieldValue, item); err != nil {
			return fmt.Errorf("field %s: %w", field.Name, err)
		}
	}

	return nil
}

// setField stores item into field according to the field's type.
func setField(field reflect.Value, item HeaderItem) error {
	switch field.Type() {
	case headerItemType:
		field.Set(reflect.ValueOf(item))
		return nil
	case valueType:
		field.Set(reflect.ValueOf(item.Value))
		return nil
	case timeType:
		return setTime(field, item.Value)
	}

	value := item.Value
	if value.IsMissing() {
		return nil
	}

	switch field.Kind() {
	case reflect.String:
		field.SetString(FormatValue(value, item.Format))
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return setInt(field, value)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return setUint(field, value)
	case reflect.Float32, reflect.Float64:
		return setFloat(field, value)
	case reflect.Ptr:
		return setPointer(field, item)
	default:
		return fmt.Errorf("unsupported field type: %s", field.Type())
	}
	return nil
}

func setInt(field reflect.Value, value Value) error {
	if i, ok := value.Int(); ok {
		field.SetInt(i)
		return nil
	}
	if f, ok := value.Float(); ok && f == float64(int64(f)) {
		field.SetInt(int64(f))
		return nil
	}
	if s, ok := value.Text(); ok {
		i, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return fmt.Errorf("cannot parse as int: %v", err)
		}
		field.SetInt(i)
		return nil
	}
	return fmt.Errorf("cannot convert %s value %q to int", value.Kind(), value)
}

func setUint(field reflect.Value, value Value) error {
	if i, ok := value.Int(); ok && i >= 0 {
		field.SetUint(uint64(i))
		return nil
	}
	return fmt.Errorf("cannot convert %s value %q to uint", value.Kind(), value)
}

func setFloat(field reflect.Value, value Value) error {
	if f, ok := value.Float(); ok {
		field.SetFloat(f)
		return nil
	}
	return fmt.Errorf("cannot convert %s value %q to float", value.Kind(), value)
}

func setTime(field reflect.Value, value Value) error {
	if value.IsMissing() {
		return nil
	}
	t, ok := value.Time()
	if !ok {
		return fmt.Errorf("cannot convert %s value %q to time", value.Kind(), value)
	}
	field.Set(reflect.ValueOf(t))
	return nil
}

func setPointer(field reflect.Value, item HeaderItem) error {
	ptr := reflect.New(field.Type().Elem())
	if err := setField(ptr.Elem(), item); err != nil {
		return err
	}
	field.Set(ptr)
	return nil
}

func parseTag(tag string) (string, []string) {
	parts := strings.Split(tag, ",")
	return parts[0], parts[1:]
}

func hasOption(opts []string, option string) bool {
	for _, opt := range opts {
		if opt == option {
			return true
		}
	}
	return false
}
