package models

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound - записи с таким id нет
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateID - запись с таким id уже существует
	ErrDuplicateID = errors.New("record with this id already exists")
	// ErrValueTooLong - строка не помещается в колонку
	ErrValueTooLong = errors.New("value too long")
	// ErrValueOutOfRange - число не помещается в колонку
	ErrValueOutOfRange = errors.New("numeric value out of range")
)

// ParseError - дата не в формате MM/DD/YYYY
type ParseError struct {
	Value  string
	Layout string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid date %q: expected MM/DD/YYYY", e.Value)
}

func (e *ParseError) Unwrap() error { return e.Err }

// MissingFieldError - в теле запроса нет обязательного поля
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field %q", e.Field)
}
