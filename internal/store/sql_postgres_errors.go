package store

import (
	"context"
	"errors"
	"net"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification is the result type returned by
// [ErrorClassificator.Classify]. It separates connectivity-level failures,
// which callers report as service-unavailable, from everything else.
type ErrorClassification int

const (
	// Other is the default classification: statement errors, constraint
	// violations, scan failures. These indicate a bug or bad input, not an
	// outage.
	Other ErrorClassification = iota

	// Unavailable indicates the store could not be reached at all and the
	// operation may succeed once connectivity is restored.
	Unavailable
)

// ErrorClassificator classifies low-level database errors.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// PostgresErrorClassifier implements [ErrorClassificator] for PostgreSQL.
// It inspects pgconn error codes from the pgx driver plus plain network
// errors surfaced before a server response exists.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier].
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator].
//
// Unavailable codes:
//   - Class 08: connection exceptions (08000, 08003, 08006)
//   - Class 57: cannot connect now (57P03), admin/crash shutdown (57P01, 57P02)
//
// Network-level errors (connection refused, reset, timeouts) and
// context.DeadlineExceeded are also Unavailable: they mean no server ever
// answered. Everything else is Other.
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil {
		return Other
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.ConnectionException,
			pgerrcode.ConnectionDoesNotExist,
			pgerrcode.ConnectionFailure,
			pgerrcode.AdminShutdown,
			pgerrcode.CrashShutdown,
			pgerrcode.CannotConnectNow:
			return Unavailable
		}
		return Other
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return Unavailable
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return Unavailable
	}

	return Other
}
