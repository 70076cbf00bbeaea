package ports

// Logger defines the interface for logging.
//
//go:generate mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	// Info reports progress and results.
	Info(msg string)
	// Success reports a completed step, such as a removed package.
	Success(msg string)
	// Warn reports a non-fatal problem, such as a refused removal.
	Warn(msg string)
	// Error reports a failure together with its cause chain.
	Error(err error)
}
