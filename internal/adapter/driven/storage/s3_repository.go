package storage

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"go.uber.org/zap"

	"github.com/diillson/carbonscope-dashboard-go/internal/domain/repository"
)

// objectPutter é o subconjunto do cliente S3 usado pelo upload.
type objectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// identityGetter é o subconjunto do cliente STS usado para identificar a conta.
type identityGetter interface {
	GetCallerIdentity(ctx context.Context, params *sts.GetCallerIdentityInput, optFns ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error)
}

// S3Options configures where reports are published.
type S3Options struct {
	Bucket  string
	Prefix  string
	Profile string
	Region  string
}

// S3ReportStorageImpl implementa o ReportStorage publicando relatórios num bucket S3.
type S3ReportStorageImpl struct {
	opts   S3Options
	logger *zap.Logger

	mu       sync.Mutex
	cfg      *aws.Config
	s3Client objectPutter
	sts      identityGetter
}

// NewS3ReportStorage cria o storage; a config AWS só é carregada no primeiro uso.
func NewS3ReportStorage(opts S3Options, logger *zap.Logger) repository.ReportStorage {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &S3ReportStorageImpl{opts: opts, logger: logger}
}

func newS3ReportStorageWithClients(opts S3Options, s3Client objectPutter, stsClient identityGetter) *S3ReportStorageImpl {
	return &S3ReportStorageImpl{
		opts:     opts,
		logger:   zap.NewNop(),
		s3Client: s3Client,
		sts:      stsClient,
	}
}

func (r *S3ReportStorageImpl) getAWSConfig(ctx context.Context) (aws.Config, error) {
	if r.cfg != nil {
		return *r.cfg, nil
	}

	var loadOpts []func(*config.LoadOptions) error
	if r.opts.Profile != "" {
		loadOpts = append(loadOpts, config.WithSharedConfigProfile(r.opts.Profile))
	}
	if r.opts.Region != "" {
		loadOpts = append(loadOpts, config.WithRegion(r.opts.Region))
	}

	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("failed to load AWS config for profile %q: %w", r.opts.Profile, err)
	}
	r.cfg = &cfg
	return cfg, nil
}

func (r *S3ReportStorageImpl) clients(ctx context.Context) (objectPutter, identityGetter, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.s3Client != nil && r.sts != nil {
		return r.s3Client, r.sts, nil
	}

	cfg, err := r.getAWSConfig(ctx)
	if err != nil {
		return nil, nil, err
	}
	if r.s3Client == nil {
		r.s3Client = s3.NewFromConfig(cfg)
	}
	if r.sts == nil {
		r.sts = sts.NewFromConfig(cfg)
	}
	return r.s3Client, r.sts, nil
}

// UploadReport envia o arquivo para s3://bucket/prefix/<nome do arquivo>.
func (r *S3ReportStorageImpl) UploadReport(ctx context.Context, localPath string) (string, error) {
	if r.opts.Bucket == "" {
		return "", fmt.Errorf("no S3 bucket configured for report upload")
	}

	s3Client, _, err := r.clients(ctx)
	if err != nil {
		return "", err
	}

	file, err := os.Open(localPath)
	if err != nil {
		return "", fmt.Errorf("error opening report %s: %w", localPath, err)
	}
	defer file.Close()

	key := objectKey(r.opts.Prefix, localPath)
	_, err = s3Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(r.opts.Bucket),
		Key:         aws.String(key),
		Body:        file,
		ContentType: aws.String(contentType(localPath)),
	})
	if err != nil {
		return "", fmt.Errorf("error uploading %s to bucket %s: %w", filepath.Base(localPath), r.opts.Bucket, err)
	}

	uri := fmt.Sprintf("s3://%s/%s", r.opts.Bucket, key)
	r.logger.Info("Report uploaded", zap.String("uri", uri))
	return uri, nil
}

// CallerIdentity retorna o account id da credencial em uso.
func (r *S3ReportStorageImpl) CallerIdentity(ctx context.Context) (string, error) {
	_, stsClient, err := r.clients(ctx)
	if err != nil {
		return "", err
	}

	result, err := stsClient.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		return "", fmt.Errorf("error getting caller identity for profile %q: %w", r.opts.Profile, err)
	}
	return aws.ToString(result.Account), nil
}

// objectKey junta o prefixo (sem barras nas pontas) ao nome base do arquivo.
func objectKey(prefix, localPath string) string {
	name := filepath.Base(localPath)
	prefix = strings.Trim(prefix, "/")
	if prefix == "" {
		return name
	}
	return path.Join(prefix, name)
}

func contentType(localPath string) string {
	switch strings.ToLower(filepath.Ext(localPath)) {
	case ".csv":
		return "text/csv"
	case ".json":
		return "application/json"
	case ".pdf":
		return "application/pdf"
	default:
		return "application/octet-stream"
	}
}
