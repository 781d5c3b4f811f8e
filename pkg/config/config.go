package config

import (
	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Auth      AuthConfig      `mapstructure:"auth"`
	Scheduler SchedulerConfig `mapstructure:"scheduler"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
	Host string `mapstructure:"host"`
}

// DatabaseConfig selects the run-history backend. An empty URL keeps history
// in memory.
type DatabaseConfig struct {
	URL string `mapstructure:"url"`
}

// RedisConfig enables the comparison-result cache. An empty Addr disables it.
type RedisConfig struct {
	Addr       string `mapstructure:"addr"`
	TTLSeconds int    `mapstructure:"ttl_seconds"`
}

type AuthConfig struct {
	JWTSecret string `mapstructure:"jwt_secret"`
}

type SchedulerConfig struct {
	DefaultTimeQuantum int `mapstructure:"default_time_quantum"`
}

func Load() (*Config, error) {
	viper.SetDefault("server.port", "8080")
	viper.SetDefault("server.host", "localhost")
	viper.SetDefault("redis.ttl_seconds", 300)
	viper.SetDefault("auth.jwt_secret", "dev-secret-change-me")
	viper.SetDefault("scheduler.default_time_quantum", 2)

	viper.AutomaticEnv()

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
