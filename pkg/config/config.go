package config

import "os"

type Config struct {
	Port                    string
	Env                     string
	AuthMode                string // "firebase" or "local"
	FirebaseCredentialsPath string
	Auth0Domain             string
	Auth0ClientID           string
	JWTSecret               string
	MinioEndpoint           string
	MinioAccessKey          string
	MinioSecretKey          string
	MinioBucket             string
	MinioUseSSL             bool
	MinioPublicBaseURL      string
	RedisAddr               string
}

func Load() *Config {
	return &Config{
		Port:                    getEnv("PORT", "8080"),
		Env:                     getEnv("ENV", "development"),
		AuthMode:                getEnv("AUTH_MODE", "firebase"),
		FirebaseCredentialsPath: getEnv("FIREBASE_CREDENTIALS_PATH", "./firebase_credentials.json"),
		Auth0Domain:             getEnv("AUTH0_DOMAIN", ""),
		Auth0ClientID:           getEnv("AUTH0_CLIENT_ID", ""),
		JWTSecret:               getEnv("JWT_SECRET", "supersecretjwtkey"),
		MinioEndpoint:           getEnv("MINIO_ENDPOINT", "localhost:9000"),
		MinioAccessKey:          getEnv("MINIO_ACCESS_KEY", ""),
		MinioSecretKey:          getEnv("MINIO_SECRET_KEY", ""),
		MinioBucket:             getEnv("MINIO_BUCKET", "post-images"),
		MinioUseSSL:             getEnv("MINIO_USE_SSL", "false") == "true",
		MinioPublicBaseURL:      getEnv("MINIO_PUBLIC_BASE_URL", ""),
		RedisAddr:               getEnv("REDIS_ADDR", ""),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
