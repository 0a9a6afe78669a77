package config

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"campuscast/internal/models"
	"campuscast/internal/session"
)

var (
	// DB is the globally accessible database handle
	DB *gorm.DB

	// env resolves settings from environment variables with defaults.
	env = viper.New()
)

func init() {
	env.AutomaticEnv()

	env.SetDefault("DB_HOST", "localhost")
	env.SetDefault("DB_PORT", "5432")
	env.SetDefault("DB_USER", "postgres")
	env.SetDefault("DB_PASSWORD", "password")
	env.SetDefault("DB_NAME", "campuscast")
	env.SetDefault("DB_SSLMODE", "disable")
	env.SetDefault("DB_TIMEZONE", "UTC")

	env.SetDefault("REDIS_ADDR", "")
	env.SetDefault("REDIS_PASSWORD", "")
	env.SetDefault("REDIS_DB", 0)

	env.SetDefault("LOCALES_PATH", "./locales/translations.yaml")
	env.SetDefault("LISTEN_ADDR", "0.0.0.0:8080")
}

// InitDB initializes the database connection using environment
// variables and migrates the four collections.
func InitDB() *gorm.DB {
	// 1) Load .env (if present)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found – relying on env vars")
	}

	// Build Data Source Name
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		env.GetString("DB_HOST"),
		env.GetString("DB_USER"),
		env.GetString("DB_PASSWORD"),
		env.GetString("DB_NAME"),
		env.GetString("DB_PORT"),
		env.GetString("DB_SSLMODE"),
		env.GetString("DB_TIMEZONE"),
	)

	// Open GORM connection
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	err = db.AutoMigrate(&models.User{}, &models.Election{}, &models.Candidate{}, &models.Vote{})
	if err != nil {
		log.Fatalf("auto-migration failed: %v", err)
	}

	// Assign to global
	DB = db
	return db
}

// NewKV builds the key-value backend for session state. With
// REDIS_ADDR set it uses Redis so sessions survive restarts;
// otherwise an in-process map stands in.
func NewKV() session.KV {
	addr := env.GetString("REDIS_ADDR")
	if addr == "" {
		log.Println("REDIS_ADDR not set – using in-memory session store")
		return session.NewMemoryKV()
	}

	kv, err := session.NewRedisKV(addr, env.GetString("REDIS_PASSWORD"), env.GetInt("REDIS_DB"))
	if err != nil {
		log.Fatalf("failed to connect to redis: %v", err)
	}
	return kv
}

// LocalesPath points at the translation table file.
func LocalesPath() string {
	return env.GetString("LOCALES_PATH")
}

// ListenAddr is the host:port the HTTP server binds.
func ListenAddr() string {
	return env.GetString("LISTEN_ADDR")
}

// GetDB returns the initialized DB handle
func GetDB() *gorm.DB {
	return DB
}
