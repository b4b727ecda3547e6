package db

import "fmt"

// DriverMissingError is returned when the configured driver is not compiled
// into the binary.
type DriverMissingError struct {
	Driver string
}

func (e *DriverMissingError) Error() string {
	return fmt.Sprintf("database driver %q is not available", e.Driver)
}

// ConnectionError wraps a failed attempt to open or reach the database.
type ConnectionError struct {
	Err error
}

func (e *ConnectionError) Error() string {
	return "connecting to database: " + e.Err.Error()
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}
