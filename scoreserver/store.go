package main

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"unicode/utf8"
)

const maxNameLength = 20

var (
	ErrInvalidName  = errors.New("invalid name")
	ErrInvalidScore = errors.New("invalid score")
)

// SpHighScore is a single player result.
type SpHighScore struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// MpHighScore is a two player result; the team shares one score.
type MpHighScore struct {
	Player1 string `json:"player1"`
	Player2 string `json:"player2"`
	Score   int    `json:"score"`
}

// Store keeps both leaderboards. Top* return the best limit entries,
// highest score first; equal scores keep submission order.
type Store interface {
	AddSingle(ctx context.Context, s SpHighScore) (SpHighScore, error)
	AddMulti(ctx context.Context, s MpHighScore) (MpHighScore, error)
	TopSingle(ctx context.Context, limit int) ([]SpHighScore, error)
	TopMulti(ctx context.Context, limit int) ([]MpHighScore, error)
	Close()
}

func cleanName(raw string) (string, error) {
	name := strings.TrimSpace(raw)
	if n := utf8.RuneCountInString(name); n == 0 || n > maxNameLength {
		return "", fmt.Errorf("%w: %q must be 1 to %d characters", ErrInvalidName, raw, maxNameLength)
	}
	return name, nil
}

func checkScore(score int) error {
	if score < 0 {
		return fmt.Errorf("%w: %d is negative", ErrInvalidScore, score)
	}
	return nil
}

func (s SpHighScore) normalize() (SpHighScore, error) {
	name, err := cleanName(s.Name)
	if err != nil {
		return s, err
	}
	if err := checkScore(s.Score); err != nil {
		return s, err
	}
	return SpHighScore{Name: name, Score: s.Score}, nil
}

func (s MpHighScore) normalize() (MpHighScore, error) {
	p1, err := cleanName(s.Player1)
	if err != nil {
		return s, fmt.Errorf("player1: %w", err)
	}
	p2, err := cleanName(s.Player2)
	if err != nil {
		return s, fmt.Errorf("player2: %w", err)
	}
	if err := checkScore(s.Score); err != nil {
		return s, err
	}
	return MpHighScore{Player1: p1, Player2: p2, Score: s.Score}, nil
}

// MemoryStore is an in-memory Store. Scores are lost on restart.
type MemoryStore struct {
	mu     sync.RWMutex
	single []SpHighScore
	multi  []MpHighScore
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) AddSingle(_ context.Context, s SpHighScore) (SpHighScore, error) {
	s, err := s.normalize()
	if err != nil {
		return s, err
	}
	m.mu.Lock()
	m.single = append(m.single, s)
	sort.SliceStable(m.single, func(i, j int) bool { return m.single[i].Score > m.single[j].Score })
	m.mu.Unlock()
	return s, nil
}

func (m *MemoryStore) AddMulti(_ context.Context, s MpHighScore) (MpHighScore, error) {
	s, err := s.normalize()
	if err != nil {
		return s, err
	}
	m.mu.Lock()
	m.multi = append(m.multi, s)
	sort.SliceStable(m.multi, func(i, j int) bool { return m.multi[i].Score > m.multi[j].Score })
	m.mu.Unlock()
	return s, nil
}

func (m *MemoryStore) TopSingle(_ context.Context, limit int) ([]SpHighScore, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	n := min(limit, len(m.single))
	out := make([]SpHighScore, n)
	copy(out, m.single[:n])
	return out, nil
}

func (m *MemoryStore) TopMulti(_ context.Context, limit int) ([]MpHighScore, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	n := min(limit, len(m.multi))
	out := make([]MpHighScore, n)
	copy(out, m.multi[:n])
	return out, nil
}

func (m *MemoryStore) Close() {}
