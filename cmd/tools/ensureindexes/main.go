// Creates the indexes the runtime relies on. Run once per environment.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/cancoskuner690-cmd/gulum-mobilya/internal/config"
	"github.com/cancoskuner690-cmd/gulum-mobilya/internal/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	st, err := store.Connect(ctx, cfg.MongoURL, cfg.DBName)
	if err != nil {
		log.Fatalf("connect failed: %v", err)
	}
	defer st.Close(context.Background())

	type idx struct {
		collection string
		model      mongo.IndexModel
	}

	unique := options.Index().SetUnique(true)
	indexes := []idx{
		// one transaction per checkout attempt
		{"payment_transactions", mongo.IndexModel{
			Keys: bson.D{{Key: "session_id", Value: 1}}, Options: unique,
		}},
		// webhook delivery dedupe
		{"provider_events", mongo.IndexModel{
			Keys:    bson.D{{Key: "provider", Value: 1}, {Key: "event_id", Value: 1}},
			Options: unique,
		}},
		{"users", mongo.IndexModel{
			Keys: bson.D{{Key: "email", Value: 1}}, Options: unique,
		}},
		{"carts", mongo.IndexModel{
			Keys: bson.D{{Key: "session_id", Value: 1}}, Options: unique,
		}},
		{"orders", mongo.IndexModel{
			Keys: bson.D{{Key: "id", Value: 1}}, Options: unique,
		}},
		{"orders", mongo.IndexModel{
			Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}},
		}},
		{"products", mongo.IndexModel{
			Keys: bson.D{{Key: "id", Value: 1}}, Options: unique,
		}},
		{"products", mongo.IndexModel{
			Keys: bson.D{{Key: "category_id", Value: 1}},
		}},
	}

	for _, ix := range indexes {
		name, err := st.DB.Collection(ix.collection).Indexes().CreateOne(ctx, ix.model)
		if err != nil {
			fmt.Fprintf(os.Stderr, "index on %s failed: %v\n", ix.collection, err)
			os.Exit(1)
		}
		fmt.Printf("%s: %s\n", ix.collection, name)
	}
}
