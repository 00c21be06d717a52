package config

import "os"

// Configuration values loaded from the environment. LoadConfig must be
// called after godotenv has populated the process environment.
var (
	Port             string
	PostgresHost     string
	PostgresPort     string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	RedisAddress     string
	RedisPassword    string
	JWTSecret        string
	ClientUrl        string
	UploadDir        string
	MailHost         string
	MailPort         string
	MailUsername     string
	MailPassword     string
	DefaultPassword  string
)

// MaxUploadSize is the upload limit for solution files (10MB)
const MaxUploadSize = 10 << 20

func LoadConfig() {
	Port = getEnv("PORT", "5000")
	PostgresHost = getEnv("POSTGRES_HOST", "localhost")
	PostgresPort = getEnv("POSTGRES_PORT", "5432")
	PostgresUser = getEnv("POSTGRES_USER", "postgres")
	PostgresPassword = getEnv("POSTGRES_PASSWORD", "postgres")
	PostgresDB = getEnv("POSTGRES_DB", "hirenext")
	RedisAddress = getEnv("REDIS_ADDRESS", "localhost:6379")
	RedisPassword = getEnv("REDIS_PASSWORD", "")
	JWTSecret = getEnv("JWT_SECRET", "")
	ClientUrl = getEnv("CLIENT_URL", "http://localhost:5173")
	UploadDir = getEnv("UPLOAD_DIR", "./uploads")
	MailHost = getEnv("MAIL_HOST", "")
	MailPort = getEnv("MAIL_PORT", "587")
	MailUsername = getEnv("MAIL_USERNAME", "")
	MailPassword = getEnv("MAIL_PASSWORD", "")
	DefaultPassword = getEnv("DEFAULT_ADMIN_PASSWORD", "")
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
