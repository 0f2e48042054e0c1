package config

import (
	"log"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

var Cfg Config

type Config struct {
	// Server
	ServerPort  string `env:"SERVER_PORT" envDefault:"8090"`
	ServerHost  string `env:"SERVER_HOST" envDefault:"0.0.0.0"`
	Environment string `env:"ENVIRONMENT" envDefault:"development"` // development, staging, production

	// MySQL
	MySQLHost     string `env:"MYSQL_HOST" envDefault:"localhost"`
	MySQLPort     string `env:"MYSQL_PORT" envDefault:"3306"`
	MySQLUser     string `env:"MYSQL_USER" envDefault:"root"`
	MySQLPassword string `env:"MYSQL_PASSWORD" envDefault:""`
	MySQLDatabase string `env:"MYSQL_DATABASE" envDefault:"ojt_tracker"`
	MySQLMaxConns int    `env:"MYSQL_MAX_CONNS" envDefault:"30"`

	// JWT
	JWTSecret        string `env:"JWT_SECRET"`
	JWTExpireMinutes int    `env:"JWT_EXPIRE_MINUTES" envDefault:"720"`

	// Documents: "disk" stores under DocumentDir, "s3" stores in DocumentBucket.
	DocumentBackend string `env:"DOCUMENT_BACKEND" envDefault:"disk"`
	DocumentDir     string `env:"DOCUMENT_DIR" envDefault:"uploads"`
	DocumentBucket  string `env:"DOCUMENT_BUCKET" envDefault:""`

	// Logging
	LoggerLevel  string `env:"LOGGER_LEVEL" envDefault:"INFO"`
	LoggerFormat string `env:"LOGGER_FORMAT" envDefault:"text"` // json, text
}

func Load() {
	if err := godotenv.Load(); err != nil {
		log.Printf("WARN: Cannot load .env file: %v, using environment variables", err)
	}

	Cfg = Config{}
	if err := env.Parse(&Cfg); err != nil {
		log.Fatalf("Failed to parse environment variables: %v", err)
	}

	validateConfig()
}

func validateConfig() {
	if Cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}

	if Cfg.DocumentBackend == "s3" && Cfg.DocumentBucket == "" {
		log.Fatal("DOCUMENT_BUCKET is required when DOCUMENT_BACKEND=s3")
	}
}

func (c *Config) GetDSN() string {
	return c.MySQLUser + ":" + c.MySQLPassword +
		"@tcp(" + c.MySQLHost + ":" + c.MySQLPort + ")/" + c.MySQLDatabase +
		"?parseTime=true&charset=utf8mb4&loc=Local"
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}
