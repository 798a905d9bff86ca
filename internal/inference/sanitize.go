package inference

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"maps"
	"strconv"
	"strings"

	"github.com/inkspect/docverify/constants"
)

// NormalizeAndSanitizeJSON
// - Renames known synonyms (ocr_text -> text, lang -> language, score -> confidence)
// - Drops null/empty optionals
// - Coerces string/integer confidence to a number
// - Canonicalizes region against the fixed region set
// - Removes unknown keys (strict additionalProperties = false friendliness)
func NormalizeAndSanitizeJSON(raw []byte, logger *slog.Logger) ([]byte, []string, error) {
	if logger == nil {
		logger = slog.Default()
	}

	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, nil, fmt.Errorf("sanitize: decode: %w", err)
	}

	dropped := make([]string, 0, 8)
	renamed := func(from, to string) {
		if v, ok := m[from]; ok {
			// don't overwrite existing value if already present
			if _, exists := m[to]; !exists {
				m[to] = v
			}
			delete(m, from)
			dropped = append(dropped, from+"->"+to)
		}
	}

	// 1) rename synonyms to the schema
	renamed("ocr_text", "text")
	renamed("raw_text", "text")
	renamed("content", "text")
	renamed("lang", "language")
	renamed("score", "confidence")
	renamed("note", "model_note")

	// 2) coerce confidence to a number in [0,1]; anything else is dropped
	if v, ok := m["confidence"]; ok {
		switch t := v.(type) {
		case float64:
			if t < 0 || t > 1 {
				delete(m, "confidence")
				dropped = append(dropped, "confidence(range)")
			}
		case string:
			f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
			if err != nil || f < 0 || f > 1 {
				delete(m, "confidence")
				dropped = append(dropped, "confidence(string)")
			} else {
				m["confidence"] = f
			}
		case nil:
			delete(m, "confidence")
			dropped = append(dropped, "confidence(null)")
		default:
			delete(m, "confidence")
			dropped = append(dropped, "confidence(type)")
		}
	}

	// 3) canonicalize region lightly
	if v, ok := m["region"].(string); ok {
		if r, ok := constants.CanonicalizeRegion(v); ok {
			m["region"] = string(r)
		} else {
			delete(m, "region")
			dropped = append(dropped, "region(unknown)")
		}
	}

	// 4) remove unknown keys (everything not in the schema set below)
	allowed := map[string]struct{}{
		"text": {}, "region": {}, "language": {}, "confidence": {}, "model_note": {},
	}
	for k := range maps.Clone(m) {
		if _, ok := allowed[k]; !ok {
			delete(m, k)
			dropped = append(dropped, k+"(unknown)")
		}
	}

	// 5) trim strings; text stays even when empty (a blank region is a valid read)
	if v, ok := m["text"].(string); ok {
		m["text"] = strings.TrimSpace(v)
	}
	for _, k := range []string{"language", "model_note"} {
		if v, ok := m[k].(string); ok {
			s := strings.TrimSpace(v)
			if s == "" {
				delete(m, k)
				dropped = append(dropped, k+"(empty)")
			} else {
				m[k] = s
			}
		}
	}

	out, err := json.Marshal(m)
	if err != nil {
		return nil, dropped, fmt.Errorf("sanitize: encode: %w", err)
	}
	if len(dropped) > 0 {
		logger.Warn("inference.ocr.normalize_sanitize", "dropped", dropped)
	}
	return out, dropped, nil
}
