package booking

import "errors"

var (
	ErrNotFound  = errors.New("booking not found")
	ErrSlotTaken = errors.New("slot already taken")
)
