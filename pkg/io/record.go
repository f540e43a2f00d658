package io

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/matzehuels/giftcircle/pkg/circle"
	gcerrors "github.com/matzehuels/giftcircle/pkg/errors"
)

// MaxGroup is the largest accepted group number.
const MaxGroup = 65535

// Record is one participant as it appears in an input file or request body.
// A nil Group means the participant has no group.
type Record struct {
	Name  string `json:"name" validate:"required,displayname"`
	Email string `json:"email_address,omitempty" validate:"omitempty,email"`
	Group *int   `json:"group_number,omitempty" validate:"omitempty,min=0,max=65535"`
}

// Participant converts r to a participant. r should be validated first.
func (r Record) Participant() circle.Participant {
	p := circle.NewNoGroup(r.Name)
	p.Email = r.Email
	if r.Group != nil {
		p.Group = circle.GroupID(*r.Group)
	}
	return p
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())

		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if name == "" || name == "-" {
				return f.Name
			}
			return name
		})

		_ = v.RegisterValidation("displayname", func(fl validator.FieldLevel) bool {
			return gcerrors.ValidateName(fl.Field().String()) == nil
		})

		validateInst = v
	})
	return validateInst
}

// ValidateRecord trims r in place and checks every field.
func ValidateRecord(r *Record) error {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)

	if err := validatorInstance().Struct(r); err != nil {
		return convertValidationError(r, err)
	}
	return nil
}

// ToParticipants validates records and converts them in order. Errors name
// the offending record by its 1-based position.
func ToParticipants(records []Record) ([]circle.Participant, error) {
	people := make([]circle.Participant, 0, len(records))
	for i := range records {
		if err := ValidateRecord(&records[i]); err != nil {
			return nil, gcerrors.New(gcerrors.ErrCodeInvalidRecord, "participant %d: %v", i+1, err)
		}
		people = append(people, records[i].Participant())
	}
	return people, nil
}

func convertValidationError(r *Record, err error) error {
	ves, ok := err.(validator.ValidationErrors)
	if !ok || len(ves) == 0 {
		return err
	}

	fe := ves[0]
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Errorf("%s is required", field)
	case "displayname":
		if nameErr := gcerrors.ValidateName(r.Name); nameErr != nil {
			return fmt.Errorf("%s", gcerrors.UserMessage(nameErr))
		}
	case "email":
		return fmt.Errorf("%s %q is not a valid e-mail address", field, r.Email)
	case "min", "max":
		return fmt.Errorf("%s %v must be between 0 and %d", field, fe.Value(), MaxGroup)
	}
	return fmt.Errorf("%s failed validation for tag '%s'", field, fe.Tag())
}
