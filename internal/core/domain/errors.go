package domain

import "errors"

var ErrInvalidField = errors.New("required field missing or empty")
var ErrInvalidAppointmentType = errors.New("appointment type not permitted for role")
var ErrAppointmentNotFound = errors.New("appointment not found")
var ErrClientNotFound = errors.New("client not found")
var ErrTerminalStatus = errors.New("appointment status is terminal")
var ErrIllegalTransition = errors.New("illegal status transition")
