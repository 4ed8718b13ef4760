//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package attachment

import (
	"context"
)

type BlobStore interface {
	Put(ctx context.Context, key, contentType string, data []byte) (string, error)
	Get(ctx context.Context, key string) ([]byte, string, error)
	KeyOf(ref string) (string, error)
}

type Validator interface {
	ValidateAttachment(name string, size int64) error
}

type Metrics interface {
	Upload(outcome string, size int64)
}
