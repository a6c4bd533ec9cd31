package payroll

import "errors"

var (
	ErrPrimeTypeNotFound     = errors.New("prime type not found")
	ErrEmployeePrimeNotFound = errors.New("employee prime not found")
	ErrDuplicatePrimeCode    = errors.New("prime type code already exists")
)
