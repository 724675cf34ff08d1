package database

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var (
	mongoClient *mongo.Client
	// Mongo → store de configuración (colecciones stations y currents).
	// Solo lectura: el aprovisionamiento lo hace otro sistema.
	Mongo *mongo.Database
)

func ConnectMongo() {
	log.Println("🔌 Conectando a MongoDB (configuración de estaciones)...")

	uri := fmt.Sprintf("mongodb://%s:%s@%s/%s",
		os.Getenv("MONGO_USER"),
		os.Getenv("MONGO_PASSWORD"),
		os.Getenv("MONGO_SERVER"),
		getenv("MONGO_DB", "tmes"),
	)

	opts := options.Client().
		ApplyURI(uri).
		SetMaxPoolSize(10).
		SetMinPoolSize(5).
		SetSocketTimeout(45 * time.Second).
		SetReadPreference(readpref.SecondaryPreferred())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		log.Fatalf("❌ No se pudo conectar a MongoDB: %v", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		log.Fatalf("❌ MongoDB no responde: %v", err)
	}

	mongoClient = client
	Mongo = client.Database(getenv("MONGO_DB", "tmes"))
	log.Println("✅ MongoDB conectado.")
}

func CloseMongo(ctx context.Context) {
	if mongoClient == nil {
		return
	}
	if err := mongoClient.Disconnect(ctx); err != nil {
		log.Printf("mongo disconnect err: %v", err)
	}
}
