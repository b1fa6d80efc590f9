package cmd

import "fmt"

// Config holds all application settings, populated from the environment.
type Config struct {
	HTTPPort   string `envconfig:"HTTP_PORT" default:"8080"`
	DBHost     string `envconfig:"DB_HOST" default:"localhost"`
	DBPort     string `envconfig:"DB_PORT" default:"5432"`
	DBUser     string `envconfig:"DB_USER" required:"true"`
	DBPassword string `envconfig:"DB_PASSWORD" required:"true"`
	DBName     string `envconfig:"DB_NAME" required:"true"`
	DBSslMode  string `envconfig:"DB_SSLMODE" default:"disable"`
	LogLevel   string `envconfig:"LOG_LEVEL" default:"info"`
}

// DSN builds the postgres connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}
