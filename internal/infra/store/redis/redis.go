package redisx

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"

	"github.com/vaibhavipujari/myportfolio/internal/domain"
)

// Store — ContentStore поверх Redis. Контент живёт без TTL:
// это первичное хранилище, а не кеш.
type Store struct {
	rdb    *redis.Client
	logger *log.Logger
}

type Config struct {
	Addr     string
	DB       int
	Password string
}

// Ensure: Store implements domain.ContentStore
var _ domain.ContentStore = (*Store)(nil)

func New(cfg Config, logger *log.Logger) *Store {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		DB:       cfg.DB,
		Password: cfg.Password,
	})
	return &Store{rdb: rdb, logger: logger}
}

func (s *Store) Ping(ctx context.Context) error {
	err := s.rdb.Ping(ctx).Err()
	if err != nil {
		s.logger.Printf("PING failed: %v", err)
	} else {
		s.logger.Println("PING ok")
	}
	return err
}

func (s *Store) Close() {
	if s.rdb == nil {
		s.logger.Println("nothing to close")
		return
	}

	if err := s.rdb.Close(); err != nil {
		s.logger.Printf("error while closing: %v", err)
		return
	}

	s.logger.Println("closed")
}

// Get возвращает (nil, nil), если ключа нет.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	b, err := s.rdb.Get(ctx, key).Bytes()
	if err == redis.Nil {
		s.logger.Printf("GET %q: not found", key)
		return nil, nil
	}
	if err != nil {
		s.logger.Printf("GET %q: error: %v", key, err)
		return nil, err
	}
	s.logger.Printf("GET %q: ok (%d bytes)", key, len(b))
	return b, nil
}

func (s *Store) Set(ctx context.Context, key string, val []byte) error {
	err := s.rdb.Set(ctx, key, val, 0).Err()
	if err != nil {
		s.logger.Printf("SET %q failed: %v", key, err)
	} else {
		s.logger.Printf("SET %q ok (%d bytes)", key, len(val))
	}
	return err
}

func (s *Store) Incr(ctx context.Context, key string) (int64, error) {
	n, err := s.rdb.Incr(ctx, key).Result()
	if err != nil {
		s.logger.Printf("INCR %q failed: %v", key, err)
	} else {
		s.logger.Printf("INCR %q -> %d", key, n)
	}
	return n, err
}
