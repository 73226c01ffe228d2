package utils

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// ToInt converts various types to int using explicit type switching.
// It handles standard integer types, floats, strings, and byte slices.
func ToInt(val any) int {
	switch v := val.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case int32:
		return int(v)
	case int16:
		return int(v)
	case int8:
		return int(v)
	case uint:
		return int(v)
	case uint64:
		return int(v)
	case uint32:
		return int(v)
	case uint16:
		return int(v)
	case uint8:
		return int(v)
	case float64:
		return int(v)
	case float32:
		return int(v)
	case json.Number:
		i, _ := v.Int64()
		return int(i)
	case string:
		i, _ := strconv.Atoi(v)
		return i
	case []byte:
		i, _ := strconv.Atoi(string(v))
		return i
	default:
		s := fmt.Sprintf("%v", v)
		i, _ := strconv.Atoi(s)
		return i
	}
}

// ToFloat converts various types to float64.
func ToFloat(val any) float64 {
	switch v := val.(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int, int64, int32, int16, int8, uint, uint64, uint32, uint16, uint8:
		return float64(ToInt(v))
	case json.Number:
		f, _ := v.Float64()
		return f
	case string:
		f, _ := strconv.ParseFloat(v, 64)
		return f
	case []byte:
		f, _ := strconv.ParseFloat(string(v), 64)
		return f
	default:
		return 0
	}
}

// ToString converts various types to string. Floats holding whole numbers
// render without the decimal part, so values that travelled through JSON
// (where every number is a float) cast back to their original text form.
func ToString(val any) string {
	switch v := val.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	case float64:
		if v == float64(int64(v)) {
			return strconv.FormatInt(int64(v), 10)
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return ToString(float64(v))
	case json.Number:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// ToBool converts various types to bool.
// It handles bool, numeric types (1=true), and strings ("1", "true").
func ToBool(val any) bool {
	switch v := val.(type) {
	case bool:
		return v
	case int, int64, int32, int16, int8, uint, uint64, uint32, uint16, uint8:
		return ToInt(v) == 1
	case string:
		return v == "1" || strings.ToLower(v) == "true"
	case []byte:
		s := string(v)
		return s == "1" || strings.ToLower(s) == "true"
	default:
		return false
	}
}

// IsEmpty reports whether a scalar counts as "no value": nil or the empty
// string. Zero numbers and false are values, not emptiness.
func IsEmpty(val any) bool {
	if val == nil {
		return true
	}
	if s, ok := val.(string); ok {
		return s == ""
	}
	return false
}
