package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// CategoryList is the canonical category shape: an ordered list of trimmed,
// non-empty identifiers. Legacy records stored a bare string (and a few stored
// arrays with junk elements), so the wire and column decoders accept
// string | []string | mixed arrays and normalize on read. Malformed input
// degrades to an empty list, never an error.
type CategoryList []string

// NormalizeCategories coerces any persisted category value into a CategoryList.
func NormalizeCategories(v interface{}) CategoryList {
	switch raw := v.(type) {
	case nil:
		return CategoryList{}
	case string:
		s := strings.TrimSpace(raw)
		if s == "" {
			return CategoryList{}
		}
		return CategoryList{s}
	case []string:
		out := make(CategoryList, 0, len(raw))
		for _, item := range raw {
			if s := strings.TrimSpace(item); s != "" {
				out = append(out, s)
			}
		}
		return out
	case []interface{}:
		out := make(CategoryList, 0, len(raw))
		for _, item := range raw {
			s, ok := item.(string)
			if !ok {
				continue
			}
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
		return out
	default:
		return CategoryList{}
	}
}

// Primary returns the single-select filter key used by list views.
func (l CategoryList) Primary() string {
	if len(l) == 0 {
		return ""
	}
	return l[0]
}

func (l *CategoryList) UnmarshalJSON(data []byte) error {
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		*l = CategoryList{}
		return nil
	}
	*l = NormalizeCategories(v)
	return nil
}

func (l CategoryList) MarshalJSON() ([]byte, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(l))
}

// Value implements driver.Valuer; categories are stored as a JSON array.
func (l CategoryList) Value() (driver.Value, error) {
	b, err := json.Marshal([]string(l))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner, accepting legacy column payloads.
func (l *CategoryList) Scan(src interface{}) error {
	if src == nil {
		*l = CategoryList{}
		return nil
	}
	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported category column type %T", src)
	}
	if len(data) == 0 {
		*l = CategoryList{}
		return nil
	}
	return l.UnmarshalJSON(data)
}

func (CategoryList) GormDataType() string {
	return "json"
}

func (CategoryList) GormDBDataType(db *gorm.DB, field *schema.Field) string {
	switch db.Dialector.Name() {
	case "postgres":
		return "JSONB"
	case "mysql", "sqlite":
		return "JSON"
	}
	return ""
}
