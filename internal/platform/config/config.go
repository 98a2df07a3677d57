package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Argon2 cost floors. Values below these are rejected at load time so a
// misconfigured environment can never weaken stored credentials.
const (
	MinArgonMemoryKiB  = 64 * 1024
	MinArgonTime       = 3
	MinArgonParallel   = 1
	defaultTokenExpiry = 168 * time.Hour // 7 days
)

// Config holds application configuration. It is built once at startup and
// passed explicitly into constructors; nothing reads it from global state.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool

	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// Argon2id cost parameters for the password hasher.
	ArgonMemoryKiB   uint32
	ArgonTime        uint32
	ArgonParallelism uint8

	// External OAuth Providers
	GoogleClientID     string `mapstructure:"GOOGLE_CLIENT_ID"`
	GoogleClientSecret string `mapstructure:"GOOGLE_CLIENT_SECRET"`
	GoogleRedirectURL  string `mapstructure:"GOOGLE_REDIRECT_URL"`

	// Static admin credentials for the dispatch endpoints.
	AdminEmail    string `mapstructure:"ADMIN_EMAIL"`
	AdminPassword string `mapstructure:"ADMIN_PASSWORD"`
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "168h")
	viper.SetDefault("JWT_ISSUER", "driver-logistics-app")
	viper.SetDefault("ARGON_MEMORY_KIB", MinArgonMemoryKiB)
	viper.SetDefault("ARGON_TIME", MinArgonTime)
	viper.SetDefault("ARGON_PARALLELISM", MinArgonParallel)
	viper.SetDefault("GOOGLE_CLIENT_ID", "")
	viper.SetDefault("GOOGLE_CLIENT_SECRET", "")
	viper.SetDefault("GOOGLE_REDIRECT_URL", "")
	viper.SetDefault("ADMIN_EMAIL", "")
	viper.SetDefault("ADMIN_PASSWORD", "")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	jwtSecret := viper.GetString("JWT_SECRET")
	if jwtSecret == "" {
		jwtSecret = "a-very-secret-key-should-be-longer-and-random" // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	// Token validity window, 7 days unless overridden.
	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = defaultTokenExpiry
		if jwtExpiryStr != "" {
			log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration.String())
		}
	}

	jwtIssuer := viper.GetString("JWT_ISSUER")
	if jwtIssuer == "" {
		jwtIssuer = "driver-logistics-app"
		log.Printf("Warning: JWT_ISSUER not set. Defaulting to %s.\n", jwtIssuer)
	}

	argonMemory := viper.GetUint32("ARGON_MEMORY_KIB")
	if argonMemory < MinArgonMemoryKiB {
		log.Printf("Warning: ARGON_MEMORY_KIB %d below floor, clamping to %d.\n", argonMemory, MinArgonMemoryKiB)
		argonMemory = MinArgonMemoryKiB
	}
	argonTime := viper.GetUint32("ARGON_TIME")
	if argonTime < MinArgonTime {
		log.Printf("Warning: ARGON_TIME %d below floor, clamping to %d.\n", argonTime, MinArgonTime)
		argonTime = MinArgonTime
	}
	argonParallelism := viper.GetUint16("ARGON_PARALLELISM")
	if argonParallelism < MinArgonParallel {
		argonParallelism = MinArgonParallel
	}

	cfg.GoogleClientID = viper.GetString("GOOGLE_CLIENT_ID")
	cfg.GoogleClientSecret = viper.GetString("GOOGLE_CLIENT_SECRET")
	cfg.GoogleRedirectURL = viper.GetString("GOOGLE_REDIRECT_URL")
	if cfg.GoogleClientID == "" {
		log.Println("Warning: GOOGLE_CLIENT_ID not set. Google sign-in will not function.")
	}

	cfg.AdminEmail = viper.GetString("ADMIN_EMAIL")
	cfg.AdminPassword = viper.GetString("ADMIN_PASSWORD")
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		log.Println("Warning: ADMIN_EMAIL/ADMIN_PASSWORD not set. Admin dispatch routes will reject all requests.")
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")
	cfg.JWTSecret = jwtSecret
	cfg.JWTExpiryDuration = jwtExpiryDuration
	cfg.JWTIssuer = jwtIssuer
	cfg.ArgonMemoryKiB = argonMemory
	cfg.ArgonTime = argonTime
	cfg.ArgonParallelism = uint8(argonParallelism)

	return cfg, nil
}
