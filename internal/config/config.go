package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Load reads .env when one is present. Deployments without a .env file fall
// back to plain environment variables.
func Load() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("⚠️  No .env file found, using system environment variables")
	}
}

type Config struct {
	Backend       string // file | redis | memory
	DataDir       string
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	IDScheme      string // lh | uuid
	RevenuePolicy string // all | delivered

	// Admin credentials. A hash wins over a plaintext password; with neither
	// set, every login is denied.
	AdminID           string
	AdminPassword     string
	AdminPasswordHash string
	SessionTTL        time.Duration
}

func FromEnv() Config {
	return Config{
		Backend:           getenv("LACTOHUB_STORE", "file"),
		DataDir:           getenv("LACTOHUB_DATA_DIR", defaultDataDir()),
		RedisAddr:         getenv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:     os.Getenv("REDIS_PASSWORD"),
		RedisDB:           getint("REDIS_DB", 0),
		IDScheme:          getenv("LACTOHUB_ORDER_ID_SCHEME", "lh"),
		RevenuePolicy:     getenv("LACTOHUB_REVENUE_POLICY", "all"),
		AdminID:           os.Getenv("LACTOHUB_ADMIN_ID"),
		AdminPassword:     os.Getenv("LACTOHUB_ADMIN_PASSWORD"),
		AdminPasswordHash: os.Getenv("LACTOHUB_ADMIN_PASSWORD_HASH"),
		SessionTTL:        getduration("LACTOHUB_SESSION_TTL", 2*time.Hour),
	}
}

func defaultDataDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "lactohub")
	}
	return ".lactohub"
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getint(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("⚠️  Invalid %s=%q, using %d", key, v, fallback)
		return fallback
	}
	return n
}

func getduration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("⚠️  Invalid %s=%q, using %s", key, v, fallback)
		return fallback
	}
	return d
}
