package models

import "errors"

var (
	// ErrInvalidStatus is returned for a status outside the booking lifecycle.
	ErrInvalidStatus = errors.New("invalid booking status")

	// ErrRecordNotFound is returned when the remote store has no document with the given id.
	ErrRecordNotFound = errors.New("record not found")

	// ErrInvalidRecordID is returned for an empty document id.
	ErrInvalidRecordID = errors.New("invalid record id")

	// ErrInvalidBooking is returned when a new booking misses a required field.
	ErrInvalidBooking = errors.New("invalid booking")

	// ErrInvalidProduct is returned when a product misses a required field.
	ErrInvalidProduct = errors.New("invalid product")
)
