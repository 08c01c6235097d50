package services

import (
	"math"
	"strconv"
	"strings"

	"person-roster/internal/models"
)

// Field tags a form input so the UI can mark or clear it
type Field string

const (
	FieldFirstName Field = "first_name"
	FieldLastName  Field = "last_name"
	FieldAge       Field = "age"
	FieldSalary    Field = "salary"
	FieldCountry   Field = "country"
	FieldSex       Field = "sex"
)

// AllFields lists the form fields in the order they are checked
var AllFields = []Field{FieldFirstName, FieldLastName, FieldAge, FieldSalary, FieldCountry, FieldSex}

// RawInput is the unparsed form content as captured by the UI
type RawInput struct {
	FirstName string
	LastName  string
	Age       string
	Salary    string
	Country   models.Country
	Sex       models.Sex
}

// FieldError describes a single failing field
type FieldError struct {
	Field   Field
	Message string
}

func (e FieldError) Error() string {
	return e.Message
}

// ValidationResult carries the outcome for every field. Fields maps each
// field to true when valid, so stale error marks can be cleared.
type ValidationResult struct {
	Valid  bool
	Errors []FieldError
	Fields map[Field]bool
	Input  models.PersonInput
}

// Invalid reports whether the given field failed
func (r ValidationResult) Invalid(f Field) bool {
	ok, seen := r.Fields[f]
	return seen && !ok
}

// Validator checks raw form input. All fields are checked on every call.
type Validator struct{}

func NewValidator() *Validator {
	return &Validator{}
}

// Validate checks every field independently and, when all pass, returns
// the typed input in the result.
func (v *Validator) Validate(raw RawInput) ValidationResult {
	result := ValidationResult{Fields: make(map[Field]bool, len(AllFields))}

	check := func(f Field, ok bool, message string) {
		result.Fields[f] = ok
		if !ok {
			result.Errors = append(result.Errors, FieldError{Field: f, Message: message})
		}
	}

	check(FieldFirstName, raw.FirstName != "", "Please enter a value for 'firstname'!")
	check(FieldLastName, raw.LastName != "", "Please enter a value for 'lastname'!")

	age, err := strconv.Atoi(strings.TrimSpace(raw.Age))
	check(FieldAge, err == nil && age >= 0, "Please enter a valid value for 'age'!")

	salary, err := strconv.ParseFloat(strings.TrimSpace(raw.Salary), 64)
	check(FieldSalary, err == nil && salary >= 0 && !math.IsInf(salary, 0) && !math.IsNaN(salary),
		"Please enter a valid value for 'salary'!")

	check(FieldCountry, raw.Country != models.CountryUnset, "Please choose a 'country'!")
	check(FieldSex, raw.Sex != models.SexUnset, "Please choose a 'sex'!")

	result.Valid = len(result.Errors) == 0
	if result.Valid {
		result.Input = ParseInput(raw)
	}
	return result
}

// ParseInput converts raw input without checking it. Numeric text that
// does not parse becomes 0, so callers that skip validation never fail.
func ParseInput(raw RawInput) models.PersonInput {
	age, err := strconv.Atoi(strings.TrimSpace(raw.Age))
	if err != nil {
		age = 0
	}
	salary, err := strconv.ParseFloat(strings.TrimSpace(raw.Salary), 64)
	if err != nil {
		salary = 0
	}

	return models.PersonInput{
		FirstName: raw.FirstName,
		LastName:  raw.LastName,
		Age:       age,
		Salary:    salary,
		Country:   raw.Country,
		Sex:       raw.Sex,
	}
}
