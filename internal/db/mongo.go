package db

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const connectTimeout = 10 * time.Second

// Collection names used by the gateway.
const (
	CampaignsCollection = "campaigns"
	UsersCollection     = "users"
	DonationsCollection = "donations"
)

// ConnectMongoDB opens a client pinned to Stable API v1 and pings the
// deployment before handing it back.
func ConnectMongoDB(uri string) (*mongo.Client, error) {
	serverAPI := options.ServerAPI(options.ServerAPIVersion1).
		SetStrict(true).
		SetDeprecationErrors(true)
	clientOptions := options.Client().ApplyURI(uri).SetServerAPIOptions(serverAPI)

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := Ping(ctx, client); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	log.Println("Pinged your deployment. Connected to MongoDB")
	return client, nil
}

// Ping runs the admin ping command.
func Ping(ctx context.Context, client *mongo.Client) error {
	err := client.Database("admin").RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err()
	if err != nil {
		return fmt.Errorf("mongo ping: %w", err)
	}
	return nil
}

// Disconnect closes the client, bounded by the connect timeout.
func Disconnect(client *mongo.Client) {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	if err := client.Disconnect(ctx); err != nil {
		log.Printf("MongoDB disconnect failed: %v", err)
	}
}
