package model

import "errors"

// Common errors used across the application
var (
	// Configuration errors, raised before any grid is built
	ErrInvalidDimensions = errors.New("grid dimensions must be positive")
	ErrEmptyDistribution = errors.New("distribution has no entries")
	ErrNonPositiveWeight = errors.New("distribution weight must be positive")
	ErrUnknownProfile    = errors.New("unknown letter frequency profile")
	ErrUnknownDirection  = errors.New("unknown direction")
	ErrUnknownMode       = errors.New("unknown puzzle mode")
	ErrEmptyWord         = errors.New("word must not be empty")

	// Bounds errors indicate a placement-engine bug, never valid input
	ErrOutOfBounds = errors.New("cell position out of bounds")

	// Cell errors
	ErrCellOccupied = errors.New("cell is already occupied")

	// Storage errors
	ErrPuzzleNotFound = errors.New("puzzle not found")
)
