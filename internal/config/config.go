package config

import (
	"context"
	"errors"
	"io/fs"

	"paylink/internal/payment/accountpe"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	// Gateway credentials
	Email    string `env:"SR_EMAIL, required"`
	Password string `env:"SR_PASSWORD, required"`

	AccountPe struct {
		BaseURL     string `env:"BASE_URL, default=https://api.accountpe.com"`
		CallbackURL string `env:"CALLBACK_URL, default=https://merchant.example.com/webhook/payment_status"`
	} `env:", prefix=ACCOUNTPE_"`

	API struct {
		Port           string   `env:"PORT, default=8080"`
		AllowedOrigins []string `env:"ALLOWED_ORIGINS, default=http://localhost:4200"`
	} `env:", prefix=API_"`
}

func (c *Config) Credentials() accountpe.Credentials {
	return accountpe.Credentials{
		Email:    c.Email,
		Password: c.Password,
	}
}

// Load reads an optional .env file into the process environment and then
// decodes the environment into a Config.
func Load(ctx context.Context) (*Config, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	return LoadWith(ctx, envconfig.OsLookuper())
}

func LoadWith(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var c Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &c,
		Lookuper: lookuper,
	}); err != nil {
		return nil, err
	}

	if err := c.Credentials().Validate(); err != nil {
		return nil, err
	}

	return &c, nil
}
