package root

import (
	"context"
	"database/sql"

	"questbox/internal/config"
	"questbox/internal/engine"
	"questbox/internal/storage"
)

func openDB(ctx context.Context) (*sql.DB, *config.Config, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, err
	}
	path := cfg.DBPath
	if dbPathFlag != "" {
		path = dbPathFlag
	}
	db, err := storage.Open(ctx, path)
	if err != nil {
		return nil, nil, nil, err
	}
	cleanup := func() {
		_ = db.Close()
	}
	return db, cfg, cleanup, nil
}

func openService(ctx context.Context) (*engine.Service, func(), error) {
	db, cfg, cleanup, err := openDB(ctx)
	if err != nil {
		return nil, nil, err
	}
	svc := engine.NewService(
		storage.NewSQLiteStore(db),
		engine.WithSuggester(engine.StaticSuggester{Delay: cfg.SuggestDelay}),
	)
	return svc, cleanup, nil
}

// openSession resolves the resumed session, or fails with the engine's
// no-session error when nobody is logged in.
func openSession(ctx context.Context) (*engine.Service, *engine.Session, func(), error) {
	svc, cleanup, err := openService(ctx)
	if err != nil {
		return nil, nil, nil, err
	}
	sess, err := svc.Resume(ctx)
	if err != nil {
		cleanup()
		return nil, nil, nil, err
	}
	if sess == nil {
		cleanup()
		return nil, nil, nil, engine.NoSessionError{}
	}
	return svc, sess, cleanup, nil
}
