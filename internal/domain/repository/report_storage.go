package repository

import (
	"context"
)

// ReportStorage defines the interface for publishing exported report files.
type ReportStorage interface {
	// UploadReport envia o arquivo local e retorna a URI do objeto remoto.
	UploadReport(ctx context.Context, localPath string) (string, error)
	// CallerIdentity retorna a conta usada para o upload.
	CallerIdentity(ctx context.Context) (string, error)
}
