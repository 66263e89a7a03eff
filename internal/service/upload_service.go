package service

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/cart-it/internal/config"
	"github.com/cart-it/internal/constants"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/google/uuid"
)

// UploadResult 上传结果
type UploadResult struct {
	URL         string `json:"url"`
	Key         string `json:"key"`
	Size        int64  `json:"size"`
	ContentType string `json:"content_type"`
}

// objectStore 上传文件的落地存储
type objectStore interface {
	Put(key, contentType string, body []byte) (string, error)
}

// UploadService 商品图片上传服务（本地磁盘或 S3）
type UploadService struct {
	cfg   config.UploadConfig
	store objectStore
}

// NewUploadService 按配置创建上传服务
func NewUploadService(cfg config.UploadConfig) (*UploadService, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Storage)) {
	case "", constants.UploadStorageLocal:
		dir := strings.TrimSpace(cfg.LocalDir)
		if dir == "" {
			dir = "uploads"
		}
		return &UploadService{cfg: cfg, store: &localObjectStore{dir: dir}}, nil
	case constants.UploadStorageS3:
		store, err := newS3ObjectStore(cfg.S3)
		if err != nil {
			return nil, err
		}
		return &UploadService{cfg: cfg, store: store}, nil
	default:
		return nil, ErrUploadStorageInvalid
	}
}

// SaveProductImage 校验并保存商品图片
func (s *UploadService) SaveProductImage(file *multipart.FileHeader) (*UploadResult, error) {
	if file == nil {
		return nil, ErrInvalidInput
	}
	if s.cfg.MaxSize > 0 && file.Size > s.cfg.MaxSize {
		return nil, ErrUploadTooLarge
	}
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if len(s.cfg.AllowedExtensions) > 0 && (ext == "" || !isAllowedExtension(ext, s.cfg.AllowedExtensions)) {
		return nil, ErrUploadTypeNotAllowed
	}

	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()
	body, err := io.ReadAll(src)
	if err != nil {
		return nil, err
	}

	// 以文件头识别 MIME 类型，不信任客户端声明
	contentType := http.DetectContentType(body)
	if len(s.cfg.AllowedTypes) > 0 && !containsFold(s.cfg.AllowedTypes, contentType) {
		return nil, ErrUploadTypeNotAllowed
	}

	key := path.Join("products", time.Now().Format("2006/01"), uuid.New().String()+ext)
	url, err := s.store.Put(key, contentType, body)
	if err != nil {
		return nil, err
	}
	return &UploadResult{
		URL:         url,
		Key:         key,
		Size:        int64(len(body)),
		ContentType: contentType,
	}, nil
}

type localObjectStore struct {
	dir string
}

func (l *localObjectStore) Put(key, _ string, body []byte) (string, error) {
	target := filepath.Join(l.dir, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(target, body, 0o644); err != nil {
		return "", err
	}
	return "/uploads/" + key, nil
}

type s3ObjectStore struct {
	client        *s3.S3
	bucket        string
	publicBaseURL string
	region        string
}

func newS3ObjectStore(cfg config.S3Config) (*s3ObjectStore, error) {
	bucket := strings.TrimSpace(cfg.Bucket)
	if bucket == "" {
		return nil, ErrUploadStorageInvalid
	}
	awsCfg := &aws.Config{Region: aws.String(cfg.Region)}
	if cfg.AccessKeyID != "" {
		awsCfg.Credentials = credentials.NewStaticCredentials(cfg.AccessKeyID, cfg.SecretAccessKey, "")
	}
	if endpoint := strings.TrimSpace(cfg.Endpoint); endpoint != "" {
		awsCfg.Endpoint = aws.String(endpoint)
		awsCfg.S3ForcePathStyle = aws.Bool(true)
	}
	sess, err := session.NewSession(awsCfg)
	if err != nil {
		return nil, fmt.Errorf("create aws session failed: %w", err)
	}
	return &s3ObjectStore{
		client:        s3.New(sess),
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(strings.TrimSpace(cfg.PublicBaseURL), "/"),
		region:        cfg.Region,
	}, nil
}

func (o *s3ObjectStore) Put(key, contentType string, body []byte) (string, error) {
	_, err := o.client.PutObject(&s3.PutObjectInput{
		Bucket:        aws.String(o.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(body),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(body))),
	})
	if err != nil {
		return "", fmt.Errorf("upload to s3 failed: %w", err)
	}
	if o.publicBaseURL != "" {
		return o.publicBaseURL + "/" + key, nil
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", o.bucket, o.region, key), nil
}

func isAllowedExtension(ext string, allowed []string) bool {
	for _, allowedExt := range allowed {
		normalized := strings.ToLower(strings.TrimSpace(allowedExt))
		if normalized == "" {
			continue
		}
		if !strings.HasPrefix(normalized, ".") {
			normalized = "." + normalized
		}
		if ext == normalized {
			return true
		}
	}
	return false
}

func containsFold(values []string, target string) bool {
	for _, v := range values {
		if strings.EqualFold(strings.TrimSpace(v), target) {
			return true
		}
	}
	return false
}
