package service

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"ShoppingList/internal/apperr"
	"ShoppingList/internal/repo"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// Sessions выдаёт транзакционные сессии; реализуется repo.Database.
type Sessions interface {
	WithSession(ctx context.Context, fn func(s repo.Session) error) error
}

var _ Sessions = (*repo.Database)(nil)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		tag := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if tag == "" || tag == "-" {
			return f.Name
		}
		return tag
	})
	return v
}

// validateInput проверяет входную структуру и возвращает ошибку валидации с деталями по полям.
func validateInput(in any) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	var errs validator.ValidationErrors
	if errors.As(err, &errs) {
		details := map[string]string{}
		for _, fe := range errs {
			details[fe.Field()] = validationMessage(fe)
		}
		return apperr.New(apperr.CodeValidation, "validation failed").WithDetails(details)
	}
	return apperr.Wrap(apperr.CodeValidation, err, "validation failed")
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		if fe.Param() == "1" {
			return "must not be empty"
		}
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "hexcolor":
		return "must be a hex color like #6366f1"
	}
	return "is invalid"
}

// trimPtr обрезает пробелы у необязательной строки.
func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}

// mapError переводит ошибки хранилища в ошибки приложения.
// notFound: сообщение для клиента, если запись не найдена.
func mapError(err error, notFound string) error {
	switch {
	case err == nil:
		return nil
	case apperr.As(err) != nil:
		return err
	case errors.Is(err, repo.ErrDatabaseURLMissing):
		return apperr.Wrap(apperr.CodeUnavailable, err, err.Error())
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apperr.Wrap(apperr.CodeNotFound, err, notFound)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return apperr.Wrap(apperr.CodeIntegrity, err, "Store not found")
	}
	return apperr.Wrap(apperr.CodeInternal, err, "internal error")
}
