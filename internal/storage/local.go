package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// LocalStorage 本地磁盘存储
type LocalStorage struct {
	dir           string
	publicBaseURL string
}

// NewLocalStorage 创建本地存储
func NewLocalStorage(dir, publicBaseURL string) *LocalStorage {
	if strings.TrimSpace(dir) == "" {
		dir = "./uploads"
	}
	if strings.TrimSpace(publicBaseURL) == "" {
		publicBaseURL = "/uploads"
	}
	return &LocalStorage{dir: dir, publicBaseURL: publicBaseURL}
}

// Driver 驱动名
func (s *LocalStorage) Driver() string {
	return "local"
}

// Dir 本地根目录（用于静态文件路由）
func (s *LocalStorage) Dir() string {
	return s.dir
}

// PublicBaseURL 对外访问前缀
func (s *LocalStorage) PublicBaseURL() string {
	return s.publicBaseURL
}

// Put 写入本地文件
func (s *LocalStorage) Put(_ context.Context, key, _ string, body io.Reader, _ int64) (string, error) {
	savePath := filepath.Join(s.dir, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(savePath), 0755); err != nil {
		return "", err
	}
	dst, err := os.Create(savePath)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, body); err != nil {
		return "", err
	}
	return joinURL(s.publicBaseURL, key), nil
}
