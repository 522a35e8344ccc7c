package domain

import (
	"context"
	"io"
	"time"
)

// Ключи контента — единое место, чтобы не расползались по коду.
const (
	KeyProfile  = "portfolio:profile"
	KeyProjects = "portfolio:projects"
	KeySkills   = "portfolio:skills"
	KeyResume   = "portfolio:resume"

	// Счётчик для выдачи id проектов
	KeyProjectSeq = "portfolio:projects:seq"
)

// Простой k/v контракт контента. Реализация — Redis.
// Get возвращает (nil, nil), если ключа нет. Атомарны только одиночные
// Get/Set; read-modify-write списков на совести вызывающего.
type ContentStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, val []byte) error
	Incr(ctx context.Context, key string) (int64, error)
	Ping(ctx context.Context) error
	Close()
}

// Хранилище бинарного контента (S3/MinIO).
type BlobStorage interface {
	// Запись объекта с перезаписью (last-write-wins)
	Put(ctx context.Context, r io.Reader, key, contentType string, size int64) error
	// Временная подписанная ссылка на скачивание
	SignedURL(ctx context.Context, key string, ttl time.Duration) (string, error)
	// Идемпотентное создание приватного бакета
	EnsureBucket(ctx context.Context) error
	Ping(ctx context.Context) error
}
