package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/qamees-next/internal/config"
)

// ObjectStorage 上传文件存储后端
type ObjectStorage interface {
	// Put 写入对象并返回可公开访问的 URL
	Put(ctx context.Context, key, contentType string, body io.Reader, size int64) (string, error)
	Driver() string
}

// New 按配置创建存储后端
func New(ctx context.Context, cfg config.StorageConfig) (ObjectStorage, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Driver)) {
	case "", "local":
		return NewLocalStorage(cfg.Local.Dir, cfg.Local.PublicBaseURL), nil
	case "s3":
		return NewS3Storage(ctx, cfg.S3)
	default:
		return nil, fmt.Errorf("unsupported storage driver: %s", cfg.Driver)
	}
}

func joinURL(base, key string) string {
	base = strings.TrimRight(strings.TrimSpace(base), "/")
	key = strings.TrimLeft(key, "/")
	if base == "" {
		return "/" + key
	}
	return base + "/" + key
}
