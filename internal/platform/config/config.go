package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/SscSPs/money_field/internal/apperrors"
	"github.com/SscSPs/money_field/internal/core/domain"
	"github.com/SscSPs/money_field/internal/core/money"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// MoneyConfig holds the process-wide money field defaults.
type MoneyConfig struct {
	DefaultCurrency string `mapstructure:"default_currency" validate:"required,len=3,uppercase"`
	DefaultLocale   string `mapstructure:"default_locale" validate:"required"`
	DecimalDigits   int    `mapstructure:"decimal_digits" validate:"min=0,max=18"`
	SymbolPlacement string `mapstructure:"symbol_placement" validate:"oneof=before after hidden"`
	StrictParse     bool   `mapstructure:"strict_parse"`
}

// Config holds application configuration.
type Config struct {
	Port               string
	IsProduction       bool
	JWTSecret          string // empty disables bearer auth on the API
	RateLimit          string `validate:"required"`
	CORSAllowedOrigins []string
	Money              MoneyConfig
}

// FormatDefaults converts the money defaults into a format configuration.
func (c *Config) FormatDefaults() domain.FormatConfig {
	return domain.FormatConfig{
		CurrencyCode:    c.Money.DefaultCurrency,
		Locale:          c.Money.DefaultLocale,
		DecimalDigits:   c.Money.DecimalDigits,
		SymbolPlacement: domain.SymbolPlacement(c.Money.SymbolPlacement),
	}
}

// Money option keys as they appear in a config file. Each one can be
// overridden by the MONEY_-prefixed environment variable of the same name.
const (
	KeyDefaultCurrency = "default_currency"
	KeyDefaultLocale   = "default_locale"
	KeyDecimalDigits   = "decimal_digits"
	KeySymbolPlacement = "symbol_placement"
	KeyStrictParse     = "strict_parse"

	// keyLegacyPlacement is the form-scoped name of KeySymbolPlacement.
	keyLegacyPlacement = "form_currency_symbol_placement"
)

var moneyDefaults = map[string]any{
	KeyDefaultCurrency: "USD",
	KeyDefaultLocale:   "en_US",
	KeyDecimalDigits:   2,
	KeySymbolPlacement: "before",
	KeyStrictParse:     false,
}

// LoadConfig loads configuration from environment variables, a .env file if
// present, and the file named by MONEY_CONFIG_FILE. Environment variables win
// over the file. Invalid money defaults are reported here rather than on first use.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("RATE_LIMIT", "100-M")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "")
	v.AutomaticEnv()

	for key, def := range moneyDefaults {
		v.SetDefault(key, def)
		if err := v.BindEnv(key, "MONEY_"+strings.ToUpper(key)); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", key, err)
		}
	}

	if file := v.GetString("MONEY_CONFIG_FILE"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", file, err)
		}
	}
	// Registered after reading so a file value under the legacy name moves onto the canonical key.
	if !v.InConfig(KeySymbolPlacement) {
		v.RegisterAlias(keyLegacyPlacement, KeySymbolPlacement)
	}

	cfg := &Config{
		Port:         v.GetString("PORT"),
		IsProduction: v.GetBool("IS_PRODUCTION"),
		JWTSecret:    v.GetString("JWT_SECRET"),
		RateLimit:    v.GetString("RATE_LIMIT"),
		Money: MoneyConfig{
			DefaultCurrency: strings.ToUpper(strings.TrimSpace(v.GetString(KeyDefaultCurrency))),
			DefaultLocale:   strings.TrimSpace(v.GetString(KeyDefaultLocale)),
			DecimalDigits:   v.GetInt(KeyDecimalDigits),
			SymbolPlacement: strings.ToLower(strings.TrimSpace(v.GetString(KeySymbolPlacement))),
			StrictParse:     v.GetBool(KeyStrictParse),
		},
	}

	if cfg.Port == "" {
		cfg.Port = "8080" // Default port
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}
	if cfg.JWTSecret == "" && cfg.IsProduction {
		log.Println("Warning: JWT_SECRET not set. The money API will accept unauthenticated requests.")
	}
	for _, origin := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks struct tags and then the money defaults against the ISO 4217
// and locale registries.
func Validate(cfg *Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("%w: invalid configuration: %w", apperrors.ErrValidation, err)
	}
	if _, err := money.NewFormatter(cfg.FormatDefaults()); err != nil {
		return fmt.Errorf("invalid money defaults: %w", err)
	}
	return nil
}
