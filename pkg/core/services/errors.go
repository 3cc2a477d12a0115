package services

import "errors"

// Guard errors shared across services. Validation failures are reported
// before any network call is made.
var (
	ErrLoginRequired = errors.New("please login first")
	ErrManagerOnly   = errors.New("this action requires the EQUIPMENT_MANAGER or ADMIN role")
)
