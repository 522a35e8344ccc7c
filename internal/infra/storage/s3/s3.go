package s3

import (
	"context"
	"io"
	"log"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/vaibhavipujari/myportfolio/internal/domain"
)

type Config struct {
	Endpoint  string
	Region    string
	Bucket    string
	AccessKey string
	SecretKey string
	UseSSL    bool
	PathStyle bool
}

type Storage struct {
	cl     *minio.Client
	bucket string
	region string
	logger *log.Logger
}

// Ensure: Storage implements domain.BlobStorage
var _ domain.BlobStorage = (*Storage)(nil)

func New(cfg Config, logger *log.Logger) (*Storage, error) {
	opts := &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	}
	if cfg.PathStyle {
		opts.BucketLookup = minio.BucketLookupPath
	}
	cl, err := minio.New(cfg.Endpoint, opts)
	if err != nil {
		return nil, err
	}
	return &Storage{cl: cl, bucket: cfg.Bucket, region: cfg.Region, logger: logger}, nil
}

// Put пишет объект под заданным ключом с перезаписью (last-write-wins).
// size = -1 допустим (стриминг без известной длины).
func (s *Storage) Put(ctx context.Context, r io.Reader, key, contentType string, size int64) error {
	info, err := s.cl.PutObject(ctx, s.bucket, key, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		s.logger.Printf("PUT %q failed: %v", key, err)
		return err
	}
	s.logger.Printf("PUT %q ok (%d bytes)", key, info.Size)
	return nil
}

// SignedURL выдаёт временную подписанную ссылку на скачивание.
// Сервер её не кеширует: по истечении срока клиент запрашивает новую.
func (s *Storage) SignedURL(ctx context.Context, key string, ttl time.Duration) (string, error) {
	u, err := s.cl.PresignedGetObject(ctx, s.bucket, key, ttl, nil)
	if err != nil {
		s.logger.Printf("PRESIGN %q failed: %v", key, err)
		return "", err
	}
	s.logger.Printf("PRESIGN %q ok (ttl=%s)", key, ttl)
	return u.String(), nil
}

// EnsureBucket идемпотентно создаёт приватный бакет для резюме.
func (s *Storage) EnsureBucket(ctx context.Context) error {
	exists, err := s.cl.BucketExists(ctx, s.bucket)
	if err != nil {
		return err
	}
	if exists {
		s.logger.Printf("bucket %q already exists", s.bucket)
		return nil
	}
	err = s.cl.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{Region: s.region})
	if err != nil {
		// гонка двух стартов: бакет мог появиться между проверкой и созданием
		if ok, e2 := s.cl.BucketExists(ctx, s.bucket); e2 == nil && ok {
			s.logger.Printf("bucket %q created concurrently", s.bucket)
			return nil
		}
		return err
	}
	s.logger.Printf("bucket %q created", s.bucket)
	return nil
}

func (s *Storage) Ping(ctx context.Context) error {
	_, err := s.cl.BucketExists(ctx, s.bucket)
	if err != nil {
		s.logger.Printf("ping failed: %v", err)
	}
	return err
}
