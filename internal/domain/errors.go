package domain

import (
	"fmt"

	"github.com/pkg/errors"
)

// Виды бизнес-ошибок. Конкретная ошибка несёт один из них в Kind.
var (
	ErrAlreadyExists = errors.New("already exists")
	ErrNotFound      = errors.New("not found")
	ErrInvalidChoice = errors.New("invalid choice")
	ErrNotConnected  = errors.New("not connected")
)

// ErrorCode - стабильный числовой код ошибки для клиентов API
type ErrorCode int

const (
	CodeRegionExist                      ErrorCode = 100
	CodeRegionNotFound                   ErrorCode = 101
	CodeRegionNameInvalid                ErrorCode = 102
	CodeOrganizationNotFound             ErrorCode = 103
	CodeOrganizationNotConnectedEmployee ErrorCode = 104
	CodeEmployeeNotFound                 ErrorCode = 105
	CodePinflOrganizationExist           ErrorCode = 106
	CodeCalculationTableNotFound         ErrorCode = 107
	CodePinflOrganizationInvalid         ErrorCode = 108
	CodeOrganizationParentInvalid        ErrorCode = 109
)

// Error - бизнес-ошибка с кодом и сообщением
type Error struct {
	Code    ErrorCode
	Kind    error
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Kind
}

func newError(code ErrorCode, kind error, format string, args ...any) *Error {
	return &Error{Code: code, Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func RegionExists(name string) *Error {
	return newError(CodeRegionExist, ErrAlreadyExists, "region %s already exist", name)
}

func RegionNotFound(id int64) *Error {
	return newError(CodeRegionNotFound, ErrNotFound, "region id %d is not found", id)
}

func RegionNameInvalid(name string) *Error {
	return newError(CodeRegionNameInvalid, ErrInvalidChoice, "region %s is invalid, choose another one", name)
}

func OrganizationNotFound(id int64) *Error {
	return newError(CodeOrganizationNotFound, ErrNotFound, "organization id %d is not found", id)
}

func OrganizationParentInvalid(id, parentID int64) *Error {
	return newError(CodeOrganizationParentInvalid, ErrInvalidChoice,
		"organization id %d cannot be a parent of organization id %d", parentID, id)
}

func OrganizationNotConnected(organizationID, employeeID int64) *Error {
	return newError(CodeOrganizationNotConnectedEmployee, ErrNotConnected,
		"organization id %d not connected to employee id %d", organizationID, employeeID)
}

func EmployeeNotFound(id int64) *Error {
	return newError(CodeEmployeeNotFound, ErrNotFound, "employee id %d is not found", id)
}

func PinflOrganizationExists(pinfl, organizationID int64) *Error {
	return newError(CodePinflOrganizationExist, ErrAlreadyExists,
		"pinfl %d and organization %d is exist already", pinfl, organizationID)
}

func PinflOrganizationInvalid(pinfl, organizationID int64) *Error {
	return newError(CodePinflOrganizationInvalid, ErrInvalidChoice,
		"pinfl %d and organization %d is invalid, choose another valid ones", pinfl, organizationID)
}

func CalculationTableNotFound(id int64) *Error {
	return newError(CodeCalculationTableNotFound, ErrNotFound, "calculation table id %d is not found", id)
}
