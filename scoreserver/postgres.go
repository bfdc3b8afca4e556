package main

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore keeps the leaderboards in Postgres.
type PostgresStore struct {
	Pool *pgxpool.Pool
}

func NewPostgresStore(ctx context.Context, cfg StoreConfig) (*PostgresStore, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}
	poolCfg.MaxConns = int32(cfg.MaxOpenConns)
	poolCfg.MinConns = int32(cfg.MaxIdleConns)
	poolCfg.MaxConnLifetime = cfg.ConnMaxLifetime

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("connect to db: %w", err)
	}

	// Verify connection
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}

	if err := RunMigrations(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}

	return &PostgresStore{Pool: pool}, nil
}

func (p *PostgresStore) AddSingle(ctx context.Context, s SpHighScore) (SpHighScore, error) {
	s, err := s.normalize()
	if err != nil {
		return s, err
	}
	_, err = p.Pool.Exec(ctx,
		`INSERT INTO sp_high_scores (name, score) VALUES ($1, $2)`,
		s.Name, s.Score,
	)
	if err != nil {
		return s, fmt.Errorf("insert sp score: %w", err)
	}
	return s, nil
}

func (p *PostgresStore) AddMulti(ctx context.Context, s MpHighScore) (MpHighScore, error) {
	s, err := s.normalize()
	if err != nil {
		return s, err
	}
	_, err = p.Pool.Exec(ctx,
		`INSERT INTO mp_high_scores (player1, player2, score) VALUES ($1, $2, $3)`,
		s.Player1, s.Player2, s.Score,
	)
	if err != nil {
		return s, fmt.Errorf("insert mp score: %w", err)
	}
	return s, nil
}

func (p *PostgresStore) TopSingle(ctx context.Context, limit int) ([]SpHighScore, error) {
	rows, err := p.Pool.Query(ctx,
		`SELECT name, score FROM sp_high_scores ORDER BY score DESC, id ASC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("query sp scores: %w", err)
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (SpHighScore, error) {
		var s SpHighScore
		err := row.Scan(&s.Name, &s.Score)
		return s, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan sp scores: %w", err)
	}
	return out, nil
}

func (p *PostgresStore) TopMulti(ctx context.Context, limit int) ([]MpHighScore, error) {
	rows, err := p.Pool.Query(ctx,
		`SELECT player1, player2, score FROM mp_high_scores ORDER BY score DESC, id ASC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("query mp scores: %w", err)
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (MpHighScore, error) {
		var s MpHighScore
		err := row.Scan(&s.Player1, &s.Player2, &s.Score)
		return s, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan mp scores: %w", err)
	}
	return out, nil
}

func (p *PostgresStore) Close() {
	p.Pool.Close()
}
