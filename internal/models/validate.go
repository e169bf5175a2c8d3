package models

import (
	"encoding/base64"
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// MaxAttachmentBytes - максимальный размер одного вложения после декодирования
const MaxAttachmentBytes = 10 * 1024 * 1024

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// В ошибках используем json-имена полей
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	_ = v.RegisterValidation("region", func(fl validator.FieldLevel) bool {
		return IsValidRegion(fl.Field().String())
	})
	_ = v.RegisterValidation("attachment", func(fl validator.FieldLevel) bool {
		return attachmentSize(fl.Field().String()) >= 0
	})
	v.RegisterStructValidation(incidentInputStructLevel, IncidentInput{})

	return v
}

// Validator возвращает общий экземпляр валидатора с зарегистрированными правилами домена
func Validator() *validator.Validate {
	return validate
}

func incidentInputStructLevel(sl validator.StructLevel) {
	in := sl.Current().Interface().(IncidentInput)
	if in.Type.IsValid() && !IsValidSubType(in.Type, in.SubType) {
		sl.ReportError(in.SubType, "sub_type", "SubType", "subtype", string(in.Type))
	}
}

// attachmentSize возвращает размер декодированного вложения или -1, если оно невалидно.
// Допускается как чистый Base64, так и data URL.
func attachmentSize(data string) int {
	if i := strings.Index(data, ","); strings.HasPrefix(data, "data:") && i >= 0 {
		data = data[i+1:]
	}
	if data == "" {
		return -1
	}
	decoded, err := base64.StdEncoding.DecodeString(data)
	if err != nil || len(decoded) > MaxAttachmentBytes {
		return -1
	}
	return len(decoded)
}

func validateStruct(s any) error {
	if err := validate.Struct(s); err != nil {
		return ToValidationError(err)
	}
	return nil
}

// ToValidationError сводит ошибку validator к *ValidationError по первому полю
func ToValidationError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		reason := fe.Tag()
		if fe.Param() != "" {
			reason += "=" + fe.Param()
		}
		return NewValidationError(fe.Field(), reason)
	}
	return NewValidationError("", err.Error())
}
