package criteria

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go-floodlens/types"
)

// Parse decodes the raw model output into a Criteria value. The output must
// be exactly one JSON object with nothing around it; prose, markdown fencing,
// truncation, or a non-object top level all return an error so the caller
// can ask the user to rephrase rather than best-effort guessing.
//
// Key order is preserved by walking the decoder token stream instead of
// unmarshaling into a map. Scalar values are coerced to strings (the model
// occasionally emits bare numbers); nulls and nested objects are dropped but
// still counted as keys.
func Parse(raw string) (types.Criteria, error) {
	var crit types.Criteria

	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return crit, fmt.Errorf("criteria parse: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return crit, fmt.Errorf("criteria parse: top-level value is not an object")
	}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return crit, fmt.Errorf("criteria parse: %w", err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return crit, fmt.Errorf("criteria parse: unexpected token %v", keyTok)
		}

		var value any
		if err := dec.Decode(&value); err != nil {
			return crit, fmt.Errorf("criteria parse: value for %q: %w", key, err)
		}

		crit.KeyCount++

		if key == types.RainfallConditionKey {
			if s, ok := coerceScalar(value); ok {
				crit.RainfallOp = strings.ToLower(strings.TrimSpace(s))
			}
			continue
		}

		switch v := value.(type) {
		case []any:
			var alts []string
			for _, elem := range v {
				if s, ok := coerceScalar(elem); ok {
					alts = append(alts, s)
				}
			}
			crit.Entries = append(crit.Entries, types.CriterionEntry{
				Field:  key,
				Values: alts,
				IsSet:  true,
			})
		default:
			if s, ok := coerceScalar(value); ok {
				crit.Entries = append(crit.Entries, types.CriterionEntry{
					Field:  key,
					Values: []string{s},
				})
			}
		}
	}

	if _, err := dec.Token(); err != nil {
		return crit, fmt.Errorf("criteria parse: %w", err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return crit, fmt.Errorf("criteria parse: trailing content after object")
	}

	return crit, nil
}

func coerceScalar(v any) (string, bool) {
	switch s := v.(type) {
	case string:
		return s, true
	case json.Number:
		return s.String(), true
	case bool:
		return strconv.FormatBool(s), true
	default:
		return "", false
	}
}
