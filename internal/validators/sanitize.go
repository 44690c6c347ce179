package validators

import (
	"encoding/json"
	"html"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

const (
	// DefaultMaxStringLength is the length limit applied by SanitizeDeep.
	DefaultMaxStringLength = 1000

	// DefaultMaxJSONSize is the body size limit used for JSON payloads.
	DefaultMaxJSONSize = 1024 * 1024
)

var (
	controlCharsPattern = regexp.MustCompile(`[\x00-\x08\x0B\x0C\x0E-\x1F\x7F]`)
	emailPattern        = regexp.MustCompile(`^[a-z0-9._%+-]+@[a-z0-9.-]+\.[a-z]{2,}$`)
	pathCharsPattern    = regexp.MustCompile(`[./\\]`)
	filenamePattern     = regexp.MustCompile(`[^A-Za-z0-9_.-]`)
)

// SanitizeString makes value safe to embed in an HTML context.
//
// Control characters are removed, the reserved characters & < > " ' are
// HTML-escaped and surrounding whitespace is trimmed. Length is measured in
// runes before any transformation.
func SanitizeString(value any, maxLength int) (string, error) {
	s, ok := value.(string)
	if !ok {
		return "", newValidationError(ErrInvalidType, "Input must be a string")
	}

	if utf8.RuneCountInString(s) > maxLength {
		return "", newValidationError(ErrTooLong, "Input too long. Maximum length: %d", maxLength)
	}

	s = controlCharsPattern.ReplaceAllString(s, "")
	s = html.EscapeString(s)

	return strings.TrimSpace(s), nil
}

// ValidateEmail normalizes an address to lower case and checks it against a
// conventional local@domain.tld shape.
func ValidateEmail(value string) (string, error) {
	if value == "" {
		return "", newValidationError(ErrMissing, "Email is required")
	}

	email := strings.ToLower(strings.TrimSpace(value))
	if !emailPattern.MatchString(email) {
		return "", newValidationError(ErrInvalidFormat, "Invalid email format")
	}

	return email, nil
}

// NumericBound restricts the accepted range of ValidateNumeric.
type NumericBound func(*numericRange)

type numericRange struct {
	min, max *float64
}

// Min rejects values below v.
func Min(v float64) NumericBound {
	return func(r *numericRange) { r.min = &v }
}

// Max rejects values above v.
func Max(v float64) NumericBound {
	return func(r *numericRange) { r.max = &v }
}

// ValidateNumeric converts value to a float64 and checks the optional bounds.
// Numbers and numeric strings are accepted; booleans and NaN are not.
func ValidateNumeric(value any, bounds ...NumericBound) (float64, error) {
	num, ok := toFloat(value)
	if !ok || math.IsNaN(num) {
		return 0, newValidationError(ErrNotNumeric, "Input must be a valid number")
	}

	var r numericRange
	for _, b := range bounds {
		b(&r)
	}

	if r.min != nil && num < *r.min {
		return 0, newValidationError(ErrOutOfRange, "Value must be at least %s", formatFloat(*r.min))
	}
	if r.max != nil && num > *r.max {
		return 0, newValidationError(ErrOutOfRange, "Value must be at most %s", formatFloat(*r.max))
	}

	return num, nil
}

func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// ValidateJSON parses raw as a JSON object. The size limit is checked before
// any parsing happens.
func ValidateJSON(raw []byte, maxSize int) (map[string]any, error) {
	if len(raw) > maxSize {
		return nil, newValidationError(ErrTooLarge, "JSON payload too large")
	}

	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, newValidationError(ErrMalformedJSON, "Invalid JSON: %v", err)
	}

	object, ok := parsed.(map[string]any)
	if !ok {
		return nil, newValidationError(ErrNotAnObject, "JSON must be an object")
	}

	return object, nil
}

// SanitizeFilename neutralizes path traversal: separators and dots become
// underscores and anything outside [A-Za-z0-9_.-] is dropped.
func SanitizeFilename(value string) (string, error) {
	if value == "" {
		return "", newValidationError(ErrMissing, "Filename is required")
	}

	name := pathCharsPattern.ReplaceAllString(value, "_")
	name = filenamePattern.ReplaceAllString(name, "")

	if name == "" {
		return "", newValidationError(ErrInvalid, "Invalid filename")
	}

	return name, nil
}

// RequireFields reports the first of fields absent from body.
func RequireFields(body map[string]any, fields ...string) error {
	for _, field := range fields {
		if _, ok := body[field]; !ok {
			return newValidationError(ErrMissingField, "Missing required field: %s", field)
		}
	}

	return nil
}
