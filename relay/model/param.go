package model

import (
	"fmt"
	"strings"

	"github.com/bytedance/sonic"
)

type ParamKind int

const (
	ParamAbsent ParamKind = iota
	// ParamText is a json document passed as VARCHAR
	ParamText
	// ParamStructured is a value redshift already decoded, e.g. a SUPER column
	ParamStructured
)

func (k ParamKind) String() string {
	switch k {
	case ParamText:
		return "text"
	case ParamStructured:
		return "structured"
	default:
		return "absent"
	}
}

// ParamValue is an optional mapping argument that may arrive either as json
// text or as an already decoded value.
type ParamValue struct {
	Kind  ParamKind
	Text  string
	Value any
}

func NewParamValue(v any) ParamValue {
	switch v := v.(type) {
	case nil:
		return ParamValue{Kind: ParamAbsent}
	case string:
		return ParamValue{Kind: ParamText, Text: v}
	default:
		return ParamValue{Kind: ParamStructured, Value: v}
	}
}

// Mapping resolves the value into a json object. Absent, blank text, null and
// falsy structured values (false, 0, []) resolve to a nil map. Malformed text
// and any other non object value are errors.
func (p ParamValue) Mapping() (map[string]any, error) {
	value := p.Value

	switch p.Kind {
	case ParamAbsent:
		return nil, nil
	case ParamText:
		if strings.TrimSpace(p.Text) == "" {
			return nil, nil
		}

		if err := sonic.UnmarshalString(p.Text, &value); err != nil {
			return nil, err
		}
	case ParamStructured:
		if isFalsy(value) {
			return nil, nil
		}
	}

	switch v := value.(type) {
	case nil:
		return nil, nil
	case map[string]any:
		return v, nil
	default:
		return nil, fmt.Errorf("expected a json object, got %T", value)
	}
}

func isFalsy(v any) bool {
	switch v := v.(type) {
	case bool:
		return !v
	case float64:
		return v == 0
	case int64:
		return v == 0
	case int:
		return v == 0
	case []any:
		return len(v) == 0
	case map[string]any:
		return len(v) == 0
	default:
		return false
	}
}
