package config

import "time"

// Config is the root application configuration.
type Config struct {
	Database   DatabaseConfig   `yaml:"database"`
	Log        LogConfig        `yaml:"log"`
	Assignment AssignmentConfig `yaml:"assignment"`
	Directory  DirectoryConfig  `yaml:"directory"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"10"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"1"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// AssignmentConfig holds assignment and batch orchestration settings.
type AssignmentConfig struct {
	// BatchInterval is the minimum spacing between two items of one batch.
	BatchInterval time.Duration `yaml:"batch_interval"  env:"ASSIGNMENT_BATCH_INTERVAL"  env-default:"100ms"`
	BatchBurst    int           `yaml:"batch_burst"     env:"ASSIGNMENT_BATCH_BURST"     env-default:"1"`
	BatchMaxItems int           `yaml:"batch_max_items" env:"ASSIGNMENT_BATCH_MAX_ITEMS" env-default:"200"`

	// DisableNotifications stops recording officer notifications after assignment.
	DisableNotifications bool `yaml:"disable_notifications" env:"ASSIGNMENT_DISABLE_NOTIFICATIONS"`
}

// DirectoryConfig holds officer directory lookup settings.
type DirectoryConfig struct {
	// AvailabilityFunction is the server-side SQL function queried first.
	AvailabilityFunction string `yaml:"availability_function" env:"DIRECTORY_AVAILABILITY_FUNCTION" env-default:"get_available_officers"`

	// DisablePrimary skips the server-side function, leaving only the direct query.
	DisablePrimary bool `yaml:"disable_primary" env:"DIRECTORY_DISABLE_PRIMARY"`
}
