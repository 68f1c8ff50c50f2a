package errors

import "net/http"

var (
	ErrNotFound = New(
		"NOT_FOUND",
		"Resource not found",
		http.StatusNotFound,
	)

	ErrBloodBankNotFound = New(
		"BLOOD_BANK_NOT_FOUND",
		"Blood bank not found",
		http.StatusNotFound,
	)

	ErrDonorNotFound = New(
		"DONOR_NOT_FOUND",
		"Donor not found",
		http.StatusNotFound,
	)

	ErrOxygenSupplierNotFound = New(
		"OXYGEN_SUPPLIER_NOT_FOUND",
		"Oxygen supplier not found",
		http.StatusNotFound,
	)

	ErrInvalidCoordinates = New(
		"INVALID_COORDINATES",
		"Invalid coordinates provided",
		http.StatusBadRequest,
	)

	ErrInvalidRadius = New(
		"INVALID_RADIUS",
		"Invalid radius value",
		http.StatusBadRequest,
	)

	ErrInvalidCandidateKind = New(
		"INVALID_CANDIDATE_KIND",
		"Invalid candidate kind",
		http.StatusBadRequest,
	)

	ErrDataSource = New(
		"DATA_SOURCE_ERROR",
		"Candidate data source is unavailable",
		http.StatusBadGateway,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
