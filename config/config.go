package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

type Configuration struct {
	Server   ServerConfiguration
	Database DatabaseConfiguration
	JWT      JWTConfiguration
	Log      LogConfiguration
}

type ServerConfiguration struct {
	Port int `mapstructure:"port"`
}

type JWTConfiguration struct {
	SecretKey string `mapstructure:"secret_key"`
	// TokenDuration is in minutes.
	TokenDuration int `mapstructure:"token_duration"`
}

type LogConfiguration struct {
	Level  string `mapstructure:"level"`
	Pretty bool   `mapstructure:"pretty"`
}

// Load reads the optional config file at path (or config.yaml in the working
// directory when path is empty) and overlays environment variables.
func Load(path string) (Configuration, error) {
	var conf Configuration

	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	v.SetDefault("server.port", 8080)
	v.SetDefault("jwt.secret_key", "change-me")
	v.SetDefault("jwt.token_duration", 1440)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	_ = v.BindEnv("server.port", "PORT")
	_ = v.BindEnv("jwt.secret_key", "JWT_SECRET")
	_ = v.BindEnv("jwt.token_duration", "JWT_TOKEN_DURATION")
	_ = v.BindEnv("log.level", "LOG_LEVEL")
	_ = v.BindEnv("log.pretty", "LOG_PRETTY")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || path != "" {
			return conf, fmt.Errorf("reading config file: %w", err)
		}
	}

	conf.Server = ServerConfiguration{Port: v.GetInt("server.port")}
	conf.JWT = JWTConfiguration{
		SecretKey:     v.GetString("jwt.secret_key"),
		TokenDuration: v.GetInt("jwt.token_duration"),
	}
	conf.Log = LogConfiguration{
		Level:  v.GetString("log.level"),
		Pretty: v.GetBool("log.pretty"),
	}
	conf.Database = LoadDatabaseConfiguration(v)

	if conf.JWT.SecretKey == "" {
		return conf, errors.New("jwt secret key must not be empty")
	}
	if conf.JWT.TokenDuration <= 0 {
		return conf, fmt.Errorf("jwt token duration must be positive, got %d", conf.JWT.TokenDuration)
	}

	return conf, nil
}
