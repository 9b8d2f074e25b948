package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrRecipeNotFound is returned when a query or update targets a recipe
	// id that does not exist.
	ErrRecipeNotFound = errors.New("recipe was not found")

	// ErrRecipeNotSaved is returned when an INSERT completes without error
	// but no row was actually persisted.
	ErrRecipeNotSaved = errors.New("recipe was not saved")

	// ErrStoreUnavailable is returned when the database cannot be reached at
	// all: connection refused, connection dropped, server shutting down.
	// Handlers map it to a distinct service-unavailable status so clients
	// can tell "try again" from "this will never work".
	ErrStoreUnavailable = errors.New("persistence store is unavailable")

	// ErrPendingUploadNotFound is returned by the client-local repository
	// when a pending-upload record does not exist.
	ErrPendingUploadNotFound = errors.New("pending upload was not found")
)

// Low-level database operation errors, wrapped around driver errors by
// repository methods.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a read query fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan recipe row")

	// ErrScanningRows is returned when scanning fails during multi-row
	// iteration.
	ErrScanningRows = errors.New("failed to scan recipe rows")
)
