package models

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NATS     NATSConfig
	Storage  StorageConfig
	Fleet    FleetConfig
	NewRelic NewRelicConfig
	Logger   LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL string
}

// StorageConfig contains object storage configuration for video clips
type StorageConfig struct {
	// PublicBaseURL is the public prefix of the clip bucket, e.g.
	// https://storage.example.com/object/public/videos/
	PublicBaseURL string
	// ProxyPath is the local path clips are served from instead of the
	// bucket, so playback stays same-origin
	ProxyPath string
}

// FleetConfig contains ambulance fleet specific configuration
type FleetConfig struct {
	SearchRadiusKm   float64 `json:"search_radius_km"` // Radius in kilometers for nearest-unit lookup
	GeohashPrecision uint    `json:"geohash_precision"`
}

// NewRelicConfig contains New Relic APM configuration
type NewRelicConfig struct {
	LicenseKey  string
	AppName     string
	Enabled     bool
	ForwardLogs bool
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}
