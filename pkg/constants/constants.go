package constants

const (
	// ConfigName is the base name of the config file (without extension).
	ConfigName = "config"

	// ConfigFormat is the config file format viper should expect.
	ConfigFormat = "yaml"

	// EnvPrefix is the prefix for environment variable overrides,
	// e.g. SURVEY_DATABASE_HOST overrides database.host.
	EnvPrefix = "SURVEY"

	// ServiceName is the default service identifier used in logs and telemetry.
	ServiceName = "survey_backend"
)
