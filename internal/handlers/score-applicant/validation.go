// internal/handlers/score-applicant/validation.go
package scoreapplicant

import (
	"encoding/json"
	"errors"

	apperrors "credit-scoring-api/internal/common/errors"
	"credit-scoring-api/internal/common/validation"
)

const requestSchemaJSON = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"required": ["name", "income", "age", "existing_loans"],
	"properties": {
		"name":           {"type": "string", "minLength": 1},
		"income":         {"type": "number", "exclusiveMinimum": 0},
		"age":            {"type": "integer", "minimum": 18, "maximum": 100},
		"existing_loans": {"type": "integer", "minimum": 0, "maximum": 2147483647}
	}
}`

var requestSchema = validation.MustCompile(requestSchemaJSON)

// wireInput accepts integral fields written as floats (40.0), which the
// schema already admits as integers.
type wireInput struct {
	Name          string  `json:"name"`
	Income        float64 `json:"income"`
	Age           float64 `json:"age"`
	ExistingLoans float64 `json:"existing_loans"`
}

// decodeRequest validates body against the request schema and decodes it.
// Every failure is a client error: INVALID_JSON when the body cannot be
// parsed, VALIDATION_FAILED listing each violated field otherwise.
func decodeRequest(body []byte) (*Input, error) {
	result, err := requestSchema.ValidateBytes(body)
	if err != nil {
		if errors.Is(err, validation.ErrMalformedDocument) {
			return nil, apperrors.NewInvalidJSONError(err)
		}
		return nil, err
	}
	if !result.Valid {
		return nil, apperrors.NewValidationError(toViolations(result.Errors))
	}

	var raw wireInput
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, apperrors.NewInvalidJSONError(err)
	}

	return &Input{
		Name:          raw.Name,
		Income:        raw.Income,
		Age:           int(raw.Age),
		ExistingLoans: int(raw.ExistingLoans),
	}, nil
}

func toViolations(errs []validation.ValidationError) []apperrors.FieldViolation {
	violations := make([]apperrors.FieldViolation, 0, len(errs))
	for _, e := range errs {
		violations = append(violations, apperrors.FieldViolation{
			Field:   e.Field,
			Message: e.Message,
			Code:    e.Code,
		})
	}
	return violations
}
