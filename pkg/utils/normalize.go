package utils

import (
	"encoding/json"
	"math"
	"strconv"
)

// NormalizeFields cleans a raw request body (decoded JSON object or
// multipart form values) before it is bound to a typed DTO. Numeric fields
// that are empty, nil, the literal "null" or non-parsable are dropped so
// the schema defaults apply; parsable ones are coerced to float64. Date
// fields are dropped when empty and otherwise passed through untouched for
// the database to parse. The input map is not modified.
func NormalizeFields(raw map[string]interface{}, numberFields, dateFields []string) map[string]interface{} {
	cleaned := make(map[string]interface{}, len(raw))
	for k, v := range raw {
		cleaned[k] = v
	}

	for _, field := range numberFields {
		value, ok := cleaned[field]
		if !ok {
			continue
		}
		if parsed, ok := toNumber(value); ok {
			cleaned[field] = parsed
		} else {
			delete(cleaned, field)
		}
	}

	for _, field := range dateFields {
		value, ok := cleaned[field]
		if !ok {
			continue
		}
		if isEmptyValue(value) {
			delete(cleaned, field)
		}
	}

	return cleaned
}

func toNumber(value interface{}) (float64, bool) {
	switch v := value.(type) {
	case nil:
		return 0, false
	case float64:
		return v, true
	case int:
		return float64(v), true
	case json.Number:
		parsed, err := v.Float64()
		if err != nil {
			return 0, false
		}
		return parsed, true
	case string:
		if v == "" || v == "null" {
			return 0, false
		}
		// ParseFloat accepts "NaN"/"Inf"; those are not usable values and
		// would not survive a JSON round-trip, so they count as non-numeric
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil || math.IsNaN(parsed) || math.IsInf(parsed, 0) {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}

func isEmptyValue(value interface{}) bool {
	if value == nil {
		return true
	}
	if s, ok := value.(string); ok {
		return s == "" || s == "null"
	}
	return false
}

// DecodeFields binds a normalized field map to a typed DTO via a JSON
// round-trip, so both body strategies share the bind path.
func DecodeFields(fields map[string]interface{}, out interface{}) error {
	data, err := json.Marshal(fields)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, out)
}
