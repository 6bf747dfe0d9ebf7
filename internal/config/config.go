package config

import (
	"github.com/kelseyhightower/envconfig"
)

// Config holds all environment-provided settings for the server.
type Config struct {
	Port     string `envconfig:"PORT" default:"5000"`
	MongoURI string `envconfig:"MONGO_URI" default:"mongodb://localhost:27017"`
	DBName   string `envconfig:"DB_NAME" default:"aircncDB"`

	// JWT
	TokenSecret string `envconfig:"ACCESS_TOKEN_SECRET" required:"true"`

	// Stripe
	PaymentSecretKey string `envconfig:"PAYMENT_SECRET_KEY"`

	// SMTP
	SMTPHost  string `envconfig:"SMTP_HOST" default:"smtp.gmail.com"`
	SMTPPort  int    `envconfig:"SMTP_PORT" default:"587"`
	EmailUser string `envconfig:"EMAIL_USER"`
	EmailPass string `envconfig:"EMAIL_PASS"`
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	var c Config
	err := envconfig.Process("", &c)
	return c, err
}
