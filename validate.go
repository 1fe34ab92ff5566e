package fintrack

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/dlclark/regexp2"
)

// This file implements form validation for record fields. Rules live in an
// explicit table so each matcher can be swapped or tested on its own.

// Field names recognized by the validator.
const (
	FieldDescription = "description"
	FieldAmount      = "amount"
	FieldCategory    = "category"
	FieldDate        = "date"
)

// rule binds a field to its matcher and the message reported on failure.
type rule struct {
	field   string
	match   func(string) bool
	message string
}

var (
	// Words separated by exactly one whitespace character: no leading,
	// trailing or doubled whitespace.
	descriptionPattern = regexp.MustCompile(`^\S+(?:\s\S+)*$`)
	// 0 or an integer without leading zero, with up to two decimals.
	amountPattern = regexp.MustCompile(`^(0|[1-9]\d*)(\.\d{1,2})?$`)
	// Letter runs joined by single spaces or hyphens.
	categoryPattern = regexp.MustCompile(`^[A-Za-z]+(?:[ -][A-Za-z]+)*$`)
)

// validationRules is the rule catalog, one entry per recognized field.
// The date matcher reuses the shared pattern from types_date.go.
var validationRules = []rule{
	{FieldDescription, descriptionPattern.MatchString, "Description cannot have leading, trailing, or double spaces."},
	{FieldAmount, amountPattern.MatchString, "Enter a valid amount (e.g., 0, 12, 12.50)."},
	{FieldDate, datePattern.MatchString, "Please enter a valid date (YYYY-MM-DD)."},
	{FieldCategory, categoryPattern.MatchString, "Category must contain only letters, spaces, or hyphens."},
}

// duplicateWordPattern finds a word immediately repeated after whitespace,
// case-insensitively. The back-reference needs regexp2: the stdlib regexp
// package (RE2) cannot express \1.
var duplicateWordPattern = regexp2.MustCompile(`\b(\w+)\s+\1\b`, regexp2.IgnoreCase)

// RuleFields returns the recognized field names in rule order.
func RuleFields() []string {
	fields := make([]string, len(validationRules))
	for i, r := range validationRules {
		fields[i] = r.field
	}
	return fields
}

// FieldResult is the outcome of validating a single field.
type FieldResult struct {
	Valid   bool
	Message string
}

// FormResult is the outcome of validating a whole form.
//
// DuplicateWarning is advisory only: it never makes IsValid false.
type FormResult struct {
	IsValid          bool
	Errors           map[string]string
	DuplicateWarning string
}

// ValidateField checks a single raw value against its field's rule.
// Every field is required: an empty value is invalid regardless of pattern.
// Unknown fields are considered valid.
func ValidateField(field, value string) FieldResult {
	var r *rule
	for i := range validationRules {
		if validationRules[i].field == field {
			r = &validationRules[i]
			break
		}
	}
	if r == nil {
		return FieldResult{Valid: true}
	}

	if value == "" {
		return FieldResult{Message: capitalize(field) + " is required."}
	}
	if !r.match(value) {
		return FieldResult{Message: r.message}
	}
	return FieldResult{Valid: true}
}

// ValidateForm runs every rule over the form fields, collecting one message
// per failing field, and scans the description for duplicate consecutive
// words. ValidateForm is pure: it never touches application state.
func ValidateForm(f Fields) FormResult {
	result := FormResult{IsValid: true, Errors: make(map[string]string)}

	values := map[string]string{
		FieldDescription: f.Description,
		FieldAmount:      f.Amount,
		FieldCategory:    f.Category,
		FieldDate:        f.Date,
	}
	for _, r := range validationRules {
		if fr := ValidateField(r.field, values[r.field]); !fr.Valid {
			result.Errors[r.field] = fr.Message
			result.IsValid = false
		}
	}

	if f.Description != "" {
		if match, found := CheckDuplicateWords(f.Description); found {
			result.DuplicateWarning = fmt.Sprintf("Duplicate word detected: %q", match)
		}
	}
	return result
}

// CheckDuplicateWords reports the first occurrence of a word immediately
// followed by the identical word ("the the" matches, "the fox the" does not).
func CheckDuplicateWords(text string) (match string, found bool) {
	m, err := duplicateWordPattern.FindStringMatch(text)
	if err != nil || m == nil {
		return "", false
	}
	return m.String(), true
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
