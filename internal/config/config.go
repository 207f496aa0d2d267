package config

import "github.com/spf13/viper"

type Config struct {
	DBUrl      string `mapstructure:"DB_URL"`
	RedisURL   string `mapstructure:"REDIS_URL"`
	ServerPort string `mapstructure:"SERVER_PORT"`
	Env        string `mapstructure:"ENV"`
	JWTSecret  string `mapstructure:"JWT_SECRET"`
	// DefaultCompanyID is the company loads fall back to when created
	// without an explicit company reference.
	DefaultCompanyID string `mapstructure:"DEFAULT_COMPANY_ID"`
	// DefaultMemberPassword seeds users created through driver and
	// dispatcher onboarding.
	DefaultMemberPassword string `mapstructure:"DEFAULT_PASSWORD"`
}

func Load() (Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("REDIS_URL", "redis://localhost:6379/0")
	viper.SetDefault("DEFAULT_PASSWORD", "ChangeMe@123")

	if err := viper.ReadInConfig(); err != nil {
	}

	var cfg Config
	err := viper.Unmarshal(&cfg)
	return cfg, err
}
