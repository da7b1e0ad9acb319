package config

import (
	"errors"
	"fmt"
	"log"
	"net/url"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
)

// ErrMissingCredentials se devuelve cuando no hay forma de armar la URI de Mongo
var ErrMissingCredentials = errors.New("database credentials not found in environment variables (set MONGO_URI or MONGO_USER/MONGO_PASSWORD/MONGO_HOST)")

type Config struct {
	MongoURI        string
	MongoDB         string
	MongoCollection string
	Port            string
	StoreTimeout    time.Duration
	ShutdownTimeout time.Duration
	Logger          LoggerConfig
}

type LoggerConfig struct {
	Mode  string // production | development
	Level string
	File  string
}

func LoadConfig() (*Config, error) {
	// Solo cargar .env en desarrollo local
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			log.Println("Error loading .env file:", err)
		}
	}

	cfg := &Config{
		MongoURI:        getEnv("MONGO_URI", ""),
		MongoDB:         getEnv("MONGO_DB", "inventory"),
		MongoCollection: getEnv("MONGO_COLLECTION", "products"),
		Port:            getEnv("PORT", "3000"),
		Logger: LoggerConfig{
			Mode:  getEnv("LOG_MODE", "development"),
			Level: getEnv("LOG_LEVEL", "info"),
			File:  getEnv("LOG_FILE", ""),
		},
	}

	var err error
	if cfg.StoreTimeout, err = getDuration("STORE_TIMEOUT", 5*time.Second); err != nil {
		return nil, err
	}
	if cfg.ShutdownTimeout, err = getDuration("SHUTDOWN_TIMEOUT", 10*time.Second); err != nil {
		return nil, err
	}

	if cfg.MongoURI == "" {
		cfg.MongoURI = atlasURI(os.Getenv("MONGO_USER"), os.Getenv("MONGO_PASSWORD"), os.Getenv("MONGO_HOST"))
	}
	if cfg.MongoURI == "" {
		return nil, ErrMissingCredentials
	}

	return cfg, nil
}

// atlasURI arma la URI mongodb+srv a partir de las credenciales sueltas
func atlasURI(user, password, host string) string {
	if user == "" || password == "" || host == "" {
		return ""
	}
	u := url.URL{
		Scheme:   "mongodb+srv",
		User:     url.UserPassword(user, password),
		Host:     host,
		Path:     "/",
		RawQuery: "retryWrites=true&w=majority",
	}
	return u.String()
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback, nil
	}
	d, err := cast.ToDurationE(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("invalid %s: must be positive", key)
	}
	return d, nil
}
