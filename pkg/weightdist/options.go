// Package weightdist implements the weight-distribution pipeline: detecting
// the numeric weight column of a table, provisioning container columns, and
// splitting each row's weight equally across them.
package weightdist

import "fmt"

// Options configures table processing.
type Options struct {
	// Containers is the number of container columns to provision.
	// Must be at least 1.
	Containers int
}

// DefaultOptions returns default processing options.
func DefaultOptions() Options {
	return Options{
		Containers: 5,
	}
}

// Validate checks that the options can drive a processing run.
func (o Options) Validate() error {
	if o.Containers < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidContainerCount, o.Containers)
	}
	return nil
}
