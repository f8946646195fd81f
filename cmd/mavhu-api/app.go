package main

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

type App struct {
	cfg       Config
	log       *zap.Logger
	mongo     *mongo.Client
	db        *mongo.Database
	users     *mongo.Collection
	companies *mongo.Collection
	reports   *mongo.Collection
}

func newApp(ctx context.Context, cfg Config, log *zap.Logger) (*App, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return nil, err
	}
	db := client.Database(cfg.MongoDB)

	app := &App{
		cfg:       cfg,
		log:       log,
		mongo:     client,
		db:        db,
		users:     db.Collection("users"),
		companies: db.Collection("companies"),
		reports:   db.Collection("reports"),
	}

	// Indexes. The unique company indexes carry stable names so duplicate
	// key errors can be mapped back to the offending field.
	if _, err := app.users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		return nil, err
	}
	for _, field := range uniqueCompanyFields {
		if _, err := app.companies.Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: field, Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_" + field),
		}); err != nil {
			return nil, err
		}
	}
	if _, err := app.reports.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "companyId", Value: 1}, {Key: "year", Value: -1}},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		return nil, err
	}

	return app, nil
}

func (a *App) close(ctx context.Context) { _ = a.mongo.Disconnect(ctx) }
