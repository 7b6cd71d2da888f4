// Package schemas provides the JSON Schema validation gate for assembled
// plan documents.
package schemas

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed plan_document.schema.json
var planDocumentSchema string

//go:embed adapted_plan.schema.json
var adaptedPlanSchema string

// ValidationError represents a schema validation error with field paths
type ValidationError struct {
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// ValidatePlanDocument checks a value against the strict plan document
// schema: exactly 30 days, exactly 4 milestones and weekly features, and
// non-empty required project strings. The value may be a struct or a map.
func ValidatePlanDocument(doc any) error {
	return validate(planDocumentSchema, doc)
}

// ValidateAdaptedPlan checks a value against the loose adapted-plan schema.
// Adapted roadmaps cover only the remaining days, so only field shapes are
// enforced, not slot counts.
func ValidateAdaptedPlan(plan any) error {
	return validate(adaptedPlanSchema, plan)
}

func validate(schemaContent string, doc any) error {
	schemaLoader := gojsonschema.NewStringLoader(schemaContent)
	documentLoader := gojsonschema.NewGoLoader(doc)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("schema validation failed to run: %w", err)
	}

	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{
		Errors: make([]FieldError, 0, len(result.Errors())),
	}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}
	return validationErr
}
