package domain

// Config represents the devapp configuration loaded from devapp.yaml.
type Config struct {
	Defaults DefaultsConfig
	Logging  LoggingConfig
}

type DefaultsConfig struct {
	Target MachineKind
}

type LoggingConfig struct {
	Dir   string
	Debug bool
}

// DefaultConfig provides the values used when devapp.yaml is missing or partial.
func DefaultConfig() Config {
	return Config{
		Defaults: DefaultsConfig{
			Target: MachineDesktop,
		},
		Logging: LoggingConfig{
			Dir: ".devapp/logs",
		},
	}
}
