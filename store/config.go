package store

// Config holds configuration for the Store.
type Config struct {
	// Table is the name of the records table.
	// Default: "arbor_records"
	Table string
}

// DefaultConfig returns defaults suitable for local development.
func DefaultConfig() Config {
	return Config{Table: "arbor_records"}
}

// validate ensures config values are usable.
func (c *Config) validate() {
	if c.Table == "" {
		c.Table = "arbor_records"
	}
}
