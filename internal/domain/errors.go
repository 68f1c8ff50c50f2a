package domain

import "errors"

var (
	// ErrInvalidCoordinate is returned when a latitude/longitude is out of range or not finite.
	ErrInvalidCoordinate = errors.New("invalid coordinate")

	// ErrInvalidRadius is returned when a search radius is negative or not finite.
	ErrInvalidRadius = errors.New("invalid radius")

	// ErrDataSource wraps every failure of a candidate fetch collaborator.
	ErrDataSource = errors.New("candidate data source failed")

	// ErrMissingBloodGroup is returned when a blood request carries no blood group.
	ErrMissingBloodGroup = errors.New("blood group is required")

	// ErrNotFound is returned by repositories when a record does not exist.
	ErrNotFound = errors.New("not found")
)
