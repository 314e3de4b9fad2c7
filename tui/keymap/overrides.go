package keymap

import (
	"reflect"
	"sort"
	"strings"
	"unicode"

	"github.com/charmbracelet/bubbles/key"
)

// Overrides is the keybindings section of partui.yml: a binding name in
// snake_case mapped to the keys that replace the defaults.
type Overrides map[string][]string

// ApplyOverrides rebinds the key.Binding fields of the struct km points to.
// PageUp is matched by "page_up". An empty key list disables the binding.
// The help text keeps its description and shows the first new key.
//
// It returns the override names that match no binding, sorted, so a typo
// in the config can be reported.
func ApplyOverrides(km interface{}, overrides Overrides) []string {
	v := reflect.ValueOf(km)
	if len(overrides) == 0 || v.Kind() != reflect.Ptr || v.Elem().Kind() != reflect.Struct {
		return nil
	}

	used := make(map[string]bool, len(overrides))
	rebind(v.Elem(), overrides, used)

	var unknown []string
	for name := range overrides {
		if !used[name] {
			unknown = append(unknown, name)
		}
	}
	sort.Strings(unknown)
	return unknown
}

var bindingType = reflect.TypeOf(key.Binding{})

func rebind(v reflect.Value, overrides Overrides, used map[string]bool) {
	t := v.Type()
	for i := 0; i < v.NumField(); i++ {
		field, sf := v.Field(i), t.Field(i)
		if !field.CanSet() {
			continue
		}
		if sf.Anonymous && field.Kind() == reflect.Struct {
			rebind(field, overrides, used)
			continue
		}
		if sf.Type != bindingType {
			continue
		}

		name := camelToSnake(sf.Name)
		keys, ok := overrides[name]
		if !ok {
			continue
		}
		used[name] = true

		desc := field.Interface().(key.Binding).Help().Desc
		if len(keys) == 0 {
			b := key.NewBinding(key.WithHelp("", desc))
			b.SetEnabled(false)
			field.Set(reflect.ValueOf(b))
			continue
		}
		field.Set(reflect.ValueOf(key.NewBinding(
			key.WithKeys(keys...),
			key.WithHelp(keys[0], desc),
		)))
	}
}

// camelToSnake turns a field name into its config name, PageDown to page_down.
func camelToSnake(s string) string {
	var b strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}
