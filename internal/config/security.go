package config

import (
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
)

// SecurityConfig is the optional security policy file named by CONFIG_FILE.
// Zero values leave the corresponding setting untouched.
type SecurityConfig struct {
	Security struct {
		JWT struct {
			ExpiryHours int `yaml:"expiry_hours"`
		} `yaml:"jwt"`
		Password struct {
			BcryptCost int `yaml:"bcrypt_cost"`
		} `yaml:"password"`
		CORS struct {
			AllowedOrigins []string `yaml:"allowed_origins"`
		} `yaml:"cors"`
		TrustedProxies []string `yaml:"trusted_proxies"`
	} `yaml:"security"`
}

// LoadSecurityConfig loads security configuration from YAML file.
// The path parameter is expected to come from a trusted source (environment or hardcoded default).
func LoadSecurityConfig(path string) (*SecurityConfig, error) {
	// #nosec G304 -- path comes from the operator's environment, not user input
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config SecurityConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := validateSecurityConfig(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func validateSecurityConfig(config *SecurityConfig) error {
	if h := config.Security.JWT.ExpiryHours; h < 0 {
		return fmt.Errorf("jwt expiry_hours must not be negative")
	}
	if c := config.Security.Password.BcryptCost; c != 0 && (c < bcrypt.MinCost || c > bcrypt.MaxCost) {
		return fmt.Errorf("password bcrypt_cost must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost)
	}
	return nil
}
