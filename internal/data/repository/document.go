package repository

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/redis/go-redis/v9"
)

// document is a single named blob holding one JSON snapshot.
type document interface {
	Read(ctx context.Context) ([]byte, error) // ErrEmptyStore when absent
	Write(ctx context.Context, data []byte) error
	Name() string
}

type fileDocument struct {
	path string
}

func newFileDocument(path string) document {
	return &fileDocument{path: path}
}

func (d *fileDocument) Name() string { return d.path }

func (d *fileDocument) Read(ctx context.Context) ([]byte, error) {
	data, err := os.ReadFile(d.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrEmptyStore
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", d.path, err)
	}
	return data, nil
}

// Write replaces the file atomically via a temp file in the same directory.
func (d *fileDocument) Write(ctx context.Context, data []byte) error {
	dir := filepath.Dir(d.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create dir %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(d.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp for %s: %w", d.path, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), d.path); err != nil {
		return fmt.Errorf("replace %s: %w", d.path, err)
	}
	return nil
}

type redisDocument struct {
	client redis.Cmdable
	key    string
}

func newRedisDocument(client redis.Cmdable, key string) document {
	return &redisDocument{client: client, key: key}
}

func (d *redisDocument) Name() string { return "redis:" + d.key }

func (d *redisDocument) Read(ctx context.Context) ([]byte, error) {
	data, err := d.client.Get(ctx, d.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrEmptyStore
	}
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", d.key, err)
	}
	return data, nil
}

func (d *redisDocument) Write(ctx context.Context, data []byte) error {
	if err := d.client.Set(ctx, d.key, data, 0).Err(); err != nil {
		return fmt.Errorf("set %s: %w", d.key, err)
	}
	return nil
}
