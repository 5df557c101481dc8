package marzpay

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// ReferenceRule selects how external references are validated. The
// hosted API accepted both shapes at different points in time, so the
// rule is an explicit configuration choice rather than a fixed rule.
type ReferenceRule string

const (
	ReferenceUUID4    ReferenceRule = "uuid4"
	ReferenceFreeform ReferenceRule = "freeform"
)

const DefaultTimeout = 30 * time.Second

type Config struct {
	BaseURL       string        `mapstructure:"base_url"`
	Username      string        `mapstructure:"username"`
	APIKey        string        `mapstructure:"api_key"`
	Timeout       time.Duration `mapstructure:"timeout"`
	ReferenceRule ReferenceRule `mapstructure:"reference_rule"`
}

// configKeys lists every key so env lookups can be bound explicitly.
var configKeys = []string{"base_url", "username", "api_key", "timeout", "reference_rule"}

// LoadConfig reads marzpay.yml from the given directory.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("marzpay")
	v.SetConfigType("yml")
	v.AddConfigPath(path)
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// ConfigFromEnv reads MARZPAY_-prefixed environment variables, e.g.
// MARZPAY_BASE_URL and MARZPAY_API_KEY.
func ConfigFromEnv() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("marzpay")
	v.AutomaticEnv()
	setDefaults(v)

	for _, key := range configKeys {
		if err := v.BindEnv(key); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("timeout", DefaultTimeout)
	v.SetDefault("reference_rule", string(ReferenceUUID4))
}
