package validators

import "context"

// RequestBodyValidator implements [Validator] for decoded JSON request
// bodies. The field names passed to Validate are the fields the body must
// contain.
type RequestBodyValidator struct {
}

// NewRequestBodyValidator constructs a new RequestBodyValidator and returns
// it as the Validator interface.
func NewRequestBodyValidator() Validator {
	return &RequestBodyValidator{}
}

// Validate accepts map[string]any or an object Value. Any other input
// returns ErrUnsupportedType.
func (v *RequestBodyValidator) Validate(_ context.Context, obj any, fields ...string) error {
	switch body := obj.(type) {
	case map[string]any:
		return RequireFields(body, fields...)
	case Value:
		if body.Kind() != KindObject {
			return newValidationError(ErrNotAnObject, "JSON must be an object")
		}
		for _, field := range fields {
			if _, ok := body.Field(field); !ok {
				return newValidationError(ErrMissingField, "Missing required field: %s", field)
			}
		}
		return nil
	default:
		return newValidationError(ErrUnsupportedType, "Unsupported request body of type %T", obj)
	}
}
