package database

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"shoply_back_end/internal/config"
)

// Databases regroupe les connexions établies au démarrage. Redis est
// optionnel : absent, le cache produit est simplement inactif.
type Databases struct {
	Mongo *mongo.Database
	Redis *redis.Client
}

// Connect établit les connexions. Un échec MongoDB est loggé et le process
// continue : chaque opération de données échouera ensuite individuellement.
func Connect(cfg config.Config) *Databases {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbs := &Databases{}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Println("❌ db is not connected:", err)
	} else {
		if err := client.Ping(ctx, nil); err != nil {
			log.Println("❌ db is not connected:", err)
		} else {
			log.Println("✅ db is connected")
		}
		dbs.Mongo = client.Database(cfg.MongoDB)
	}

	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       0,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Println("⚠️  Redis indisponible, cache produits désactivé:", err)
		} else {
			log.Println("✅ Connecté à Redis")
			dbs.Redis = rdb
		}
	}

	return dbs
}
