package service

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = func() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// в ошибках имена полей как в json
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}()

var fieldMessages = map[string]string{
	"schoolName":    "School name must be at least 2 characters",
	"contactPerson": "Contact person name required",
	"phone":         "Valid phone number required",
	"area":          "Area/Location required",
	"studentCount":  "Student count must be at least 1",
}

func (c *CustomerInput) normalize() {
	c.SchoolName = strings.TrimSpace(c.SchoolName)
	c.ContactPerson = strings.TrimSpace(c.ContactPerson)
	c.Phone = strings.TrimSpace(c.Phone)
	c.Area = strings.TrimSpace(c.Area)
}

func validateCustomer(c CustomerInput) error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	out := &ValidationError{}
	for _, fe := range verrs {
		name := fe.Field()
		msg, ok := fieldMessages[name]
		if !ok {
			msg = fe.Error()
		}
		out.Fields = append(out.Fields, FieldError{Field: name, Message: msg, Tag: fe.Tag()})
	}
	return out
}
