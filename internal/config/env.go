package config

import "os"

// ConfigEnv names the environment variable holding the config file path.
const ConfigEnv = "ROIDS_CONFIG"

// GetEnv returns the value of the environment variable named by the key,
// or fallback if the variable is not set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// ApplyEnv overrides file settings with environment variables.
func (c *Config) ApplyEnv() {
	c.Logging.Level = GetEnv("ROIDS_LOG_LEVEL", c.Logging.Level)
	c.Logging.Format = GetEnv("ROIDS_LOG_FORMAT", c.Logging.Format)
	c.Store.Driver = GetEnv("ROIDS_STORE", c.Store.Driver)
	c.Store.Path = GetEnv("ROIDS_STORE_PATH", c.Store.Path)

	c.SSH.Host = GetEnv("SSH_HOST", c.SSH.Host)
	c.SSH.Port = GetEnv("SSH_PORT", c.SSH.Port)
	c.SSH.HostKeyPath = GetEnv("SSH_HOST_KEY", c.SSH.HostKeyPath)

	c.Web.Host = GetEnv("WEB_HOST", c.Web.Host)
	c.Web.Port = GetEnv("WEB_PORT", c.Web.Port)
	c.Web.DisplayHost = GetEnv("SSH_DISPLAY_HOST", c.Web.DisplayHost)
}

// FromEnv loads the file named by ROIDS_CONFIG, if any, and applies the
// environment overrides.
func FromEnv() (*Config, error) {
	cfg, err := Load(GetEnv(ConfigEnv, ""))
	if err != nil {
		return nil, err
	}
	cfg.ApplyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
