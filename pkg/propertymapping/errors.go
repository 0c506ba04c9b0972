package propertymapping

import "fmt"

// ConfigurationError reports an invalid set of registrations
type ConfigurationError struct {
	Pair   string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid property mapping for %s: %s", e.Pair, e.Reason)
}

// MappingNotFoundError is returned when no table is registered for a type pair
type MappingNotFoundError struct {
	Pair string
}

func (e *MappingNotFoundError) Error() string {
	return fmt.Sprintf("cannot find exact property mapping instance for %s", e.Pair)
}

// Unwrap exposes the failure as a ConfigurationError
func (e *MappingNotFoundError) Unwrap() error {
	return &ConfigurationError{Pair: e.Pair, Reason: "no mapping registered"}
}
