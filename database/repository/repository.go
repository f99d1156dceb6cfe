package repository

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"rmadmin/config"
	"rmadmin/database"
	firestoreRepo "rmadmin/database/repository/firestore"
	memoryRepo "rmadmin/database/repository/memory"
	mongoRepo "rmadmin/database/repository/mongo"
	"rmadmin/services/dashboard"
)

// Store is a document store the dashboard can both subscribe to and write.
type Store interface {
	dashboard.Source
	dashboard.Mutator
}

// Re-export the backend constructors.
var (
	NewFirestoreStore = firestoreRepo.New
	NewMongoStore     = mongoRepo.New
	NewMemoryStore    = memoryRepo.New
)

// Open connects the backend named by cfg.Datastore. The returned func
// releases the connection.
func Open(ctx context.Context, cfg *config.Config, logger *zap.Logger) (Store, func(), error) {
	switch cfg.Datastore {
	case config.DatastoreFirestore:
		client, err := database.ConnectFirestore(ctx, cfg.FirebaseProjectID, cfg.FirebaseCredentialsFile)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("Connected to Firestore", zap.String("project", cfg.FirebaseProjectID))
		return NewFirestoreStore(client, logger), func() { _ = client.Close() }, nil

	case config.DatastoreMongo:
		client, err := database.ConnectMongo(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("Connected to MongoDB", zap.String("database", cfg.DatabaseName))
		closeFn := func() { _ = client.Disconnect(context.Background()) }
		return NewMongoStore(client.Database(cfg.DatabaseName), logger), closeFn, nil

	case config.DatastoreMemory:
		logger.Warn("Using the in-memory datastore; data is lost on exit")
		return NewMemoryStore(nil), func() {}, nil
	}
	return nil, nil, fmt.Errorf("unknown datastore %q", cfg.Datastore)
}
