package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string   `mapstructure:"APP_PORT"`
	DatabaseURL       string   `mapstructure:"DATABASE_URL"`
	DatabaseName      string   `mapstructure:"DATABASE_NAME"`
	Env               string   `mapstructure:"ENV"`
	JWTSecret         string   `mapstructure:"JWT_SECRET"`
	LogLevel          string   `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int      `mapstructure:"MAX_REQUESTS_PER_MIN"`
	CORSOrigins       []string `mapstructure:"CORS_ALLOWED_ORIGINS"`

	// FeatureBookings enables the full variant of the API (featured rooms,
	// bookings and reviews). When false only the room listing endpoints
	// are served.
	FeatureBookings bool `mapstructure:"FEATURE_BOOKINGS"`

	// Redis configuration for the read cache.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB  int    `mapstructure:"REDIS_CACHE_DB"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "5000")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "dreamyDestinyDB")
	viper.SetDefault("FEATURE_BOOKINGS", true)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", []string{
		"http://localhost:5173",
		"https://dreamydestiny-hotel.web.app",
		"https://dreamydestiny-hotel.firebaseapp.com",
	})
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
