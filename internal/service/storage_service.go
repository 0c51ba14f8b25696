package service

import (
	"context"
	"course_cert_backend/internal/config"
	"course_cert_backend/internal/util"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

var ErrContentNotFound = errors.New("content not found")

// ContentSource 课程定义、广告清单等只读 JSON 文档的来源
type ContentSource interface {
	// Read returns ErrContentNotFound when name does not exist.
	Read(ctx context.Context, name string) ([]byte, error)
}

func NewContentSource(cfg *config.CatalogConfig) (ContentSource, error) {
	switch cfg.Source {
	case util.CatalogMinio:
		return NewMinioContentSource(cfg)
	default:
		return &LocalContentSource{Root: cfg.LocalPath}, nil
	}
}

// LocalContentSource 本地目录实现
type LocalContentSource struct {
	Root string
}

func (p *LocalContentSource) Read(_ context.Context, name string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(p.Root, filepath.FromSlash(name)))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrContentNotFound, name)
		}
		return nil, err
	}
	return data, nil
}

// MinioContentSource 对象存储实现
type MinioContentSource struct {
	Bucket string
	Prefix string
	Client *minio.Client
}

func NewMinioContentSource(cfg *config.CatalogConfig) (*MinioContentSource, error) {
	client, err := minio.New(cfg.MinioEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinioAccessID, cfg.MinioSecret, ""),
		Secure: cfg.MinioUseSSL,
	})
	if err != nil {
		return nil, err
	}
	return &MinioContentSource{Bucket: cfg.MinioBucket, Prefix: cfg.MinioPrefix, Client: client}, nil
}

func (p *MinioContentSource) objectName(name string) string {
	if p.Prefix == "" {
		return name
	}
	return path.Join(strings.Trim(p.Prefix, "/"), name)
}

func (p *MinioContentSource) Read(ctx context.Context, name string) ([]byte, error) {
	obj, err := p.Client.GetObject(ctx, p.Bucket, p.objectName(name), minio.GetObjectOptions{})
	if err != nil {
		return nil, p.mapErr(name, err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, p.mapErr(name, err)
	}
	return data, nil
}

func (p *MinioContentSource) mapErr(name string, err error) error {
	if minio.ToErrorResponse(err).Code == "NoSuchKey" {
		return fmt.Errorf("%w: %s", ErrContentNotFound, name)
	}
	return err
}
