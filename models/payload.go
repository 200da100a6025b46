package models

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Схемы тел запросов. Все поля - указатели: nil значит, что ключ отсутствует.
// Те же структуры читаются из YAML сид-данных.

type UserFields struct {
	FirstName *string `json:"first_name" yaml:"first_name" validate:"required"`
	LastName  *string `json:"last_name" yaml:"last_name" validate:"required"`
	Age       *int    `json:"age" yaml:"age" validate:"required"`
	Email     *string `json:"email" yaml:"email" validate:"required"`
	Phone     *string `json:"phone" yaml:"phone" validate:"required"`
	Role      *string `json:"role" yaml:"role" validate:"required"`
}

type NewUser struct {
	ID         *int `json:"id" yaml:"id" validate:"required"`
	UserFields `yaml:",inline"`
}

type OrderFields struct {
	Name        *string `json:"name" yaml:"name" validate:"required"`
	Description *string `json:"description" yaml:"description" validate:"required"`
	Address     *string `json:"address" yaml:"address" validate:"required"`
	StartDate   *string `json:"start_date" yaml:"start_date" validate:"required"`
	EndDate     *string `json:"end_date" yaml:"end_date" validate:"required"`
	Price       *int    `json:"price" yaml:"price" validate:"required"`
	CustomerID  *int    `json:"customer_id" yaml:"customer_id" validate:"required"`
	ExecutorID  *int    `json:"executor_id" yaml:"executor_id" validate:"required"`
}

type NewOrder struct {
	ID          *int `json:"id" yaml:"id" validate:"required"`
	OrderFields `yaml:",inline"`
}

type OfferFields struct {
	OrderID    *int `json:"order_id" yaml:"order_id" validate:"required"`
	ExecutorID *int `json:"executor_id" yaml:"executor_id" validate:"required"`
}

type NewOffer struct {
	ID          *int `json:"id" yaml:"id" validate:"required"`
	OfferFields `yaml:",inline"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// В ошибках используем имена JSON-ключей, а не Go-полей
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate проверяет, что все обязательные ключи присутствуют.
// Возвращает *MissingFieldError для первого отсутствующего ключа.
func Validate(payload any) error {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return &MissingFieldError{Field: verrs[0].Field()}
	}
	return err
}

func (u UserFields) ToModel(id int) User {
	return User{
		ID:        id,
		FirstName: *u.FirstName,
		LastName:  *u.LastName,
		Age:       *u.Age,
		Email:     *u.Email,
		Phone:     *u.Phone,
		Role:      *u.Role,
	}
}

func (u NewUser) ToModel() User {
	return u.UserFields.ToModel(*u.ID)
}

func (o OrderFields) ToModel(id int) (Order, error) {
	start, err := ParseDate(*o.StartDate)
	if err != nil {
		return Order{}, err
	}
	end, err := ParseDate(*o.EndDate)
	if err != nil {
		return Order{}, err
	}
	return Order{
		ID:          id,
		Name:        *o.Name,
		Description: *o.Description,
		Address:     *o.Address,
		StartDate:   start,
		EndDate:     end,
		Price:       *o.Price,
		CustomerID:  *o.CustomerID,
		ExecutorID:  *o.ExecutorID,
	}, nil
}

func (o NewOrder) ToModel() (Order, error) {
	return o.OrderFields.ToModel(*o.ID)
}

func (o OfferFields) ToModel(id int) Offer {
	return Offer{
		ID:         id,
		OrderID:    *o.OrderID,
		ExecutorID: *o.ExecutorID,
	}
}

func (o NewOffer) ToModel() Offer {
	return o.OfferFields.ToModel(*o.ID)
}
