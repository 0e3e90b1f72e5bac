package postgres

import (
	"reflect"
	"sync"
)

// column is one "db"-tagged field, possibly inside embedded structs.
type column struct {
	name  string
	index []int // path for reflect.Value.FieldByIndex
}

// columnCache maps reflect.Type to []column.
var columnCache sync.Map

// columnsOf flattens the tagged fields of t in declaration order.
// Embedded structs (entity.Catalog, entity.Document) contribute their columns
// at the position of the embed. Fields without a tag or tagged "-" are skipped.
func columnsOf(t reflect.Type) []column {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil
	}
	if cached, ok := columnCache.Load(t); ok {
		return cached.([]column)
	}

	cols := make([]column, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.Anonymous {
			for _, inner := range columnsOf(f.Type) {
				cols = append(cols, column{name: inner.name, index: append([]int{i}, inner.index...)})
			}
			continue
		}
		if tag := f.Tag.Get("db"); tag != "" && tag != "-" {
			cols = append(cols, column{name: tag, index: []int{i}})
		}
	}

	columnCache.Store(t, cols)
	return cols
}

// ExtractDBColumns lists the column names of T for SELECT lists.
//
//	columns := ExtractDBColumns[zone.Zone]()
//	// ["id", "deletion_mark", "version", "name", "warehouse_id", "type", ...]
func ExtractDBColumns[T any]() []string {
	cols := columnsOf(reflect.TypeOf((*T)(nil)).Elem())
	names := make([]string, len(cols))
	for i, c := range cols {
		names[i] = c.name
	}
	return names
}

// StructToMap returns column → value for INSERT and UPDATE builders.
// Non-struct input yields nil; a struct without tags yields an empty map.
func StructToMap(v any) map[string]any {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil
	}

	cols := columnsOf(rv.Type())
	res := make(map[string]any, len(cols))
	for _, c := range cols {
		fv, err := rv.FieldByIndexErr(c.index)
		if err != nil {
			// nil embedded pointer, колонки нет
			continue
		}
		res[c.name] = fv.Interface()
	}
	return res
}
