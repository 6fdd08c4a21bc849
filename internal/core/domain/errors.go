package domain

import "go.trai.ch/zerr"

var (
	// ErrConfigNotFound is returned when the pipeline config file is absent.
	// This aborts the whole batch before any target is processed.
	ErrConfigNotFound = zerr.New("pipeline config not found")

	// ErrSourceDirMissing is returned when the source model directory is
	// absent. No targets can be discovered, so the batch aborts.
	ErrSourceDirMissing = zerr.New("source directory missing")

	// ErrOutputDirMissing is returned when the export output directory is
	// absent. It fails the current target only.
	ErrOutputDirMissing = zerr.New("output directory missing")

	// ErrInvalidGender is returned when a model config names a gender outside
	// the supported variants.
	ErrInvalidGender = zerr.New("invalid gender")

	// ErrDuplicateSlot is returned when the animation slot table declares the
	// same logical slot twice.
	ErrDuplicateSlot = zerr.New("duplicate animation slot")
)
