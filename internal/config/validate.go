package config

import (
	"fmt"
	"regexp"
)

var sqlIdentifier = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*(\.[a-zA-Z_][a-zA-Z0-9_]*)?$`)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Database.MaxConns < 1 {
		return fmt.Errorf("database.max_conns must be >= 1 (got %d)", c.Database.MaxConns)
	}
	if c.Database.MinConns < 0 || c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("database.min_conns must be within [0, max_conns] (got %d)", c.Database.MinConns)
	}

	if err := c.Assignment.validate(); err != nil {
		return fmt.Errorf("assignment: %w", err)
	}

	if err := c.Directory.validate(); err != nil {
		return fmt.Errorf("directory: %w", err)
	}

	return nil
}

func (a *AssignmentConfig) validate() error {
	if a.BatchInterval <= 0 {
		return fmt.Errorf("batch_interval must be > 0 (got %v)", a.BatchInterval)
	}
	if a.BatchBurst < 1 {
		return fmt.Errorf("batch_burst must be >= 1 (got %d)", a.BatchBurst)
	}
	if a.BatchMaxItems < 1 || a.BatchMaxItems > 1000 {
		return fmt.Errorf("batch_max_items must be within [1, 1000] (got %d)", a.BatchMaxItems)
	}
	return nil
}

func (d *DirectoryConfig) validate() error {
	if !sqlIdentifier.MatchString(d.AvailabilityFunction) {
		return fmt.Errorf("availability_function %q is not a plain SQL identifier", d.AvailabilityFunction)
	}
	return nil
}
