package pointkernel

import (
	"errors"
	"fmt"
)

var (
	// ErrNilLocator is returned when a kernel is constructed without a point locator.
	ErrNilLocator = errors.New("pointkernel: locator is nil")

	// ErrNilDataset is returned when a kernel is constructed without a dataset.
	ErrNilDataset = errors.New("pointkernel: dataset is nil")

	// ErrPointNotFound indicates a basis id that does not exist in the dataset.
	ErrPointNotFound = errors.New("pointkernel: point not found")
)

// ErrUnknownPoint reports a basis id outside the dataset.
//
// It matches ErrPointNotFound via errors.Is.
type ErrUnknownPoint struct {
	ID             uint32
	NumberOfPoints int
}

func (e *ErrUnknownPoint) Error() string {
	return fmt.Sprintf("unknown point %d: dataset has %d points", e.ID, e.NumberOfPoints)
}

func (e *ErrUnknownPoint) Unwrap() error { return ErrPointNotFound }
