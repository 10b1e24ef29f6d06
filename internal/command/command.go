// Package command defines the validated request model for the aztoken CLI
// and its translation into the azureauth helper's argument vector.
//
// A Command is built once per invocation from user input, validated at
// construction, and consumed exactly once by [Translate]. The package holds
// no state between invocations.
package command

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Action selects which helper operation a Command requests.
type Action int

const (
	// ActionAuth acquires a token for the target identity.
	ActionAuth Action = iota
	// ActionClear clears the helper's cached token for the target identity.
	ActionClear
)

// Actions lists every defined Action. Translation must handle all of them;
// the exhaustiveness test iterates this slice.
var Actions = []Action{ActionAuth, ActionClear}

// String returns the user-facing name of the action.
func (a Action) String() string {
	switch a {
	case ActionAuth:
		return "auth"
	case ActionClear:
		return "clear"
	default:
		return fmt.Sprintf("action(%d)", int(a))
	}
}

// Command is one fully-validated user request: acquire or clear a token for
// a client/tenant identity with one or more scopes. Fields are read-only
// after New returns; nothing in this package mutates them.
type Command struct {
	Action Action
	Client string   `validate:"required"`
	Tenant string   `validate:"required"`
	Scopes []string `validate:"required,min=1,dive,required"`
}

// Package-level validator shared by New and config profile validation.
var validate = validator.New(validator.WithRequiredStructEnabled())

// New constructs a Command, enforcing the model invariants: client and
// tenant must be non-empty and at least one non-empty scope is required.
// Invalid input never reaches the translator.
func New(action Action, client, tenant string, scopes []string) (Command, error) {
	cmd := Command{
		Action: action,
		Client: client,
		Tenant: tenant,
		Scopes: scopes,
	}
	if err := validate.Struct(&cmd); err != nil {
		return Command{}, formatValidationError(err)
	}
	return cmd, nil
}

// Validate runs tag-based validation on an arbitrary struct using the shared
// validator instance, rendering failures as user-facing text.
func Validate(v any) error {
	if err := validate.Struct(v); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// formatValidationError renders go-playground/validator errors as concise,
// user-facing text.
func formatValidationError(err error) error {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	var messages []string
	for _, fieldError := range validationErrors {
		messages = append(messages, formatFieldError(fieldError))
	}

	return fmt.Errorf("invalid request:\n  - %s", strings.Join(messages, "\n  - "))
}

// formatFieldError creates user-friendly error messages for field validation failures
func formatFieldError(fieldError validator.FieldError) string {
	fieldName := strings.ToLower(fieldError.Field())
	switch fieldError.Tag() {
	case "required":
		if strings.Contains(fieldError.Namespace(), ".Scopes[") {
			return "scopes must not contain empty entries"
		}
		return fmt.Sprintf("'%s' is required", fieldName)
	case "min":
		return fmt.Sprintf("'%s' requires at least %s entry", fieldName, fieldError.Param())
	default:
		return fmt.Sprintf("'%s' failed validation '%s'", fieldName, fieldError.Tag())
	}
}
