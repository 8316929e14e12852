package service

import "errors"

var (
	// ErrPasswordMismatch indicates the signup password and its confirmation differ.
	ErrPasswordMismatch = errors.New("passwords do not match")
	// ErrSlotTaken is returned when another student booked the slot first.
	ErrSlotTaken = errors.New("slot already booked")
	// ErrSlotRequired is returned when a booking is submitted without a slot.
	ErrSlotRequired = errors.New("slot is required")
	// ErrInvalidSlot wraps landlord slot form problems.
	ErrInvalidSlot = errors.New("invalid slot")
	// ErrSessionNotFound is returned for unknown or expired sessions.
	ErrSessionNotFound = errors.New("session not found")
)
