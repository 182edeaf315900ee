// Command seed loads the built-in demo dataset into MongoDB, replacing the
// users, wishlists and activities collections.
package main

import (
	"context"
	"time"

	"github.com/Dias221467/Giftwish/internal/config"
	"github.com/Dias221467/Giftwish/internal/database"
	"github.com/Dias221467/Giftwish/internal/mockdata"
	"github.com/Dias221467/Giftwish/internal/repository/mongodb"
	"github.com/Dias221467/Giftwish/pkg/logger"
)

func main() {
	cfg := config.LoadConfig()
	logger.InitLogger(cfg.LogLevel, cfg.LogFormat)

	if cfg.MongoURI == "" {
		logger.Log.Fatal("MONGO_URI is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	db, err := database.ConnectDB(ctx, cfg)
	if err != nil {
		logger.Log.WithError(err).Fatal("Database connection error")
	}
	defer database.Disconnect(context.Background(), db)

	if err := mongodb.Seed(ctx, db, mockdata.Default()); err != nil {
		logger.Log.WithError(err).Fatal("Seeding failed")
	}
	logger.Log.WithField("database", cfg.MongoDB).Info("Seed completed")
}
