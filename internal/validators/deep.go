package validators

// MaxDepth bounds container nesting accepted by SanitizeDeep and FromAny.
const MaxDepth = 64

// SanitizeDeep applies SanitizeString with DefaultMaxStringLength to every
// string inside v, keeping the shape and every non-string value unchanged.
// Object keys are kept as they are.
func SanitizeDeep(v Value) (Value, error) {
	return sanitizeDeep(v, 0)
}

func sanitizeDeep(v Value, depth int) (Value, error) {
	if depth > MaxDepth {
		return Value{}, errTooDeep()
	}

	switch v.kind {
	case KindString:
		s, err := SanitizeString(v.s, DefaultMaxStringLength)
		if err != nil {
			return Value{}, err
		}
		return String(s), nil

	case KindObject:
		fields := make(map[string]Value, len(v.object))
		for key, item := range v.object {
			sanitized, err := sanitizeDeep(item, depth+1)
			if err != nil {
				return Value{}, err
			}
			fields[key] = sanitized
		}
		return Object(fields), nil

	case KindArray:
		items := make([]Value, 0, len(v.array))
		for _, item := range v.array {
			sanitized, err := sanitizeDeep(item, depth+1)
			if err != nil {
				return Value{}, err
			}
			items = append(items, sanitized)
		}
		return Array(items...), nil

	default:
		return v, nil
	}
}

func errTooDeep() *ValidationError {
	return newValidationError(ErrTooDeep, "Input nested too deeply. Maximum depth: %d", MaxDepth)
}
