package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// ═══════════════════════════════════════════════════════════
// JSONB Scanner/Valuer helpers shared by the column types below
// ═══════════════════════════════════════════════════════════

func scanJSON(value interface{}, dest interface{}, name string) error {
	switch v := value.(type) {
	case nil:
		return nil
	case []byte:
		if len(v) == 0 {
			return nil
		}
		return json.Unmarshal(v, dest)
	case string:
		if v == "" {
			return nil
		}
		return json.Unmarshal([]byte(v), dest)
	default:
		return fmt.Errorf("failed to scan %s: unsupported type %T", name, value)
	}
}

type (
	StringList []string
	IDList     []uuid.UUID
)

func (s *StringList) Scan(value interface{}) error {
	*s = make(StringList, 0)
	return scanJSON(value, s, "StringList")
}

func (s StringList) Value() (driver.Value, error) {
	if s == nil {
		return json.Marshal([]string{})
	}
	return json.Marshal([]string(s))
}

func (l *IDList) Scan(value interface{}) error {
	*l = make(IDList, 0)
	return scanJSON(value, l, "IDList")
}

func (l IDList) Value() (driver.Value, error) {
	if l == nil {
		return json.Marshal([]uuid.UUID{})
	}
	return json.Marshal([]uuid.UUID(l))
}

// Contains reports whether id is in the list.
func (l IDList) Contains(id uuid.UUID) bool {
	for _, v := range l {
		if v == id {
			return true
		}
	}
	return false
}
