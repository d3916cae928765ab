package main

import (
	"context"

	"go.uber.org/zap"

	dbadapter "taskflow/internal/adapter/db"
	"taskflow/internal/adapter/http/handlers"
	"taskflow/internal/adapter/memory"
	"taskflow/internal/config"
	"taskflow/internal/core/ports"
)

type storage struct {
	tasks  ports.TaskRepository
	users  ports.UserRepository
	pinger handlers.Pinger
	close  func() error
}

func (s storage) Close() error {
	return s.close()
}

// openStorage builds the repositories for cfg.DbDriver. SQLite is always
// migrated because its default database lives in memory.
func openStorage(ctx context.Context, cfg *config.Config, migrate bool) (storage, error) {
	if cfg.DbDriver == config.DriverMemory {
		store := memory.NewStore()
		return storage{
			tasks:  store.Tasks(),
			users:  store.Users(),
			pinger: store,
			close:  store.Close,
		}, nil
	}

	db, err := dbadapter.ConnectDB(cfg)
	if err != nil {
		return storage{}, err
	}

	if migrate || cfg.DbDriver == config.DriverSQLite {
		if err := dbadapter.Migrate(ctx, db, cfg.DbDriver); err != nil {
			_ = db.Close()
			return storage{}, err
		}
		zap.L().Info("schema migrated", zap.String("driver", cfg.DbDriver))
	}

	return storage{
		tasks:  dbadapter.NewTaskRepository(db),
		users:  dbadapter.NewUserRepository(db),
		pinger: db,
		close:  db.Close,
	}, nil
}
