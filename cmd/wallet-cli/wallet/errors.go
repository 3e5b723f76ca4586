package wallet

import "github.com/kataras/go-errors"

var (
	ErrAccountNotFound   = errors.New("account %s not found")
	ErrAccountExists     = errors.New("account %s already exists")
	ErrAccountNotOpen    = errors.New("account %s is not open")
	ErrWrongPassphrase   = errors.New("wrong passphrase for account %s")
	ErrInvalidAddress    = errors.New("invalid address: %s")
	ErrInvalidName       = errors.New("invalid account name: %s")
	ErrZeroAmount        = errors.New("amount can't be zero")
	ErrInsufficientFunds = errors.New("insufficient funds: available %d, need %d")
	ErrUnknownPending    = errors.New("unknown pending transaction %s")
	ErrSendAborted       = errors.New("transaction aborted: %s")
)
