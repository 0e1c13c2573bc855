package service

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrNotOwner           = errors.New("not a party to this contract")
	ErrPermissionDenied   = errors.New("permission denied")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInsufficientFunds  = errors.New("insufficient funds")
	ErrDepositCapExceeded = errors.New("deposit cap exceeded")
	ErrTransferFailed     = errors.New("transfer failed")
)
