package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config est construit une fois dans main puis injecté dans chaque composant.
type Config struct {
	Port          string
	MongoURI      string
	MongoDB       string
	RedisAddr     string
	RedisPassword string
	JWTSecret     string
	TokenTTL      time.Duration
	AllowOrigins  []string
}

func Load() Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("⚠️  Aucun fichier .env trouvé — on continue avec les variables d'environnement du système")
	} else {
		log.Println("✅ Fichier .env chargé")
	}

	cfg := Config{
		Port:          getenv("PORT", "8080"),
		MongoURI:      getenv("MONGO_URI", "mongodb://127.0.0.1:27017"),
		MongoDB:       getenv("MONGO_DB", "shoply"),
		RedisAddr:     os.Getenv("REDIS_HOST"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		JWTSecret:     getenv("JWT_SECRET", "supersecret"),
		TokenTTL:      365 * 24 * time.Hour,
		AllowOrigins:  []string{"*"},
	}

	if v := os.Getenv("TOKEN_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.TokenTTL = d
		} else {
			log.Println("⚠️  TOKEN_TTL invalide, valeur par défaut conservée:", v)
		}
	}
	if v := os.Getenv("ALLOW_ORIGINS"); v != "" {
		cfg.AllowOrigins = strings.Split(v, ",")
	}

	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
