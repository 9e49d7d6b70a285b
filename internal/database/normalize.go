package database

import (
	"reflect"
	"strings"

	"gorm.io/gorm"
)

// RegisterNormalizer installs a single trim hook at the persistence
// boundary: every string field (and string map value) written through the
// connection is stripped of surrounding whitespace before create/update.
func RegisterNormalizer(db *gorm.DB) error {
	if err := db.Callback().Create().Before("gorm:create").Register("normalize:trim_create", trimStrings); err != nil {
		return err
	}
	return db.Callback().Update().Before("gorm:update").Register("normalize:trim_update", trimStrings)
}

func trimStrings(db *gorm.DB) {
	if db.Statement == nil {
		return
	}

	if m, ok := db.Statement.Dest.(map[string]interface{}); ok {
		for k, v := range m {
			if s, ok := v.(string); ok {
				m[k] = strings.TrimSpace(s)
			}
		}
	}

	trimValue(db.Statement.ReflectValue)
}

func trimValue(v reflect.Value) {
	switch v.Kind() {
	case reflect.Slice, reflect.Array:
		for i := 0; i < v.Len(); i++ {
			trimValue(reflect.Indirect(v.Index(i)))
		}
	case reflect.Struct:
		for i := 0; i < v.NumField(); i++ {
			f := v.Field(i)
			if f.Kind() == reflect.Ptr {
				if f.IsNil() {
					continue
				}
				f = f.Elem()
			}

			switch f.Kind() {
			case reflect.String:
				if f.CanSet() {
					f.SetString(strings.TrimSpace(f.String()))
				}
			case reflect.Struct, reflect.Slice, reflect.Array:
				trimValue(f)
			}
		}
	}
}
