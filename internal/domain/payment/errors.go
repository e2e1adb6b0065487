package payment

import "errors"

var (
	ErrPaymentNotFound = errors.New("payment not found")
	ErrNotStakeholder  = errors.New("not a payment stakeholder")
)
