package app

import (
	"context"
	"errors"
	"fmt"

	"gemini-nlp/internal/auth/credentials"
	"gemini-nlp/internal/config"
	"gemini-nlp/internal/db"
	"gemini-nlp/internal/logger"
	"gemini-nlp/internal/redis"
	"gemini-nlp/internal/session"
	"gemini-nlp/internal/textgen"
	"gemini-nlp/internal/textgen/gemini"
)

// Infra holds the backends selected by configuration and how to close them.
type Infra struct {
	Accounts  credentials.Store
	Sessions  session.Store
	Matcher   credentials.PasswordMatcher
	Generator textgen.Generator

	closers []func() error
}

func (i *Infra) Close() error {
	var errs []error
	for n := len(i.closers) - 1; n >= 0; n-- {
		if err := i.closers[n](); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func setupInfra(ctx context.Context, cfg config.Config) (*Infra, error) {
	infra := &Infra{}

	matcher, err := credentials.NewMatcher(cfg.Auth.PasswordScheme)
	if err != nil {
		return nil, err
	}
	infra.Matcher = matcher

	switch cfg.Accounts.Backend {
	case config.BackendPostgres:
		database, err := db.Open(ctx, cfg.Database.DSN)
		if err != nil {
			return nil, err
		}
		infra.closers = append(infra.closers, database.Close)
		infra.Accounts = credentials.NewPostgresStore(database, matcher.Scheme())
		logger.Info("database ready", nil)
	default:
		infra.Accounts = credentials.NewMemoryStore()
	}

	switch cfg.Session.Backend {
	case config.BackendRedis:
		client, err := redis.New(ctx, cfg.Redis.Addr, cfg.Redis.Password)
		if err != nil {
			_ = infra.Close()
			return nil, err
		}
		infra.closers = append(infra.closers, client.Close)
		infra.Sessions = session.NewRedisStore(client)
		logger.Info("redis ready", map[string]any{"addr": cfg.Redis.Addr})
	default:
		infra.Sessions = session.NewMemoryStore()
	}

	gen, err := gemini.New(ctx, cfg.GoogleAPIKey, cfg.Gemini.Model)
	if err != nil {
		_ = infra.Close()
		return nil, fmt.Errorf("app: text generator: %w", err)
	}
	infra.Generator = gen
	logger.Info("text generator ready", map[string]any{"generator": gen.Name()})

	logger.Info("backends selected", map[string]any{
		"accounts":        cfg.Accounts.Backend,
		"sessions":        cfg.Session.Backend,
		"password_scheme": matcher.Scheme(),
	})

	return infra, nil
}
