//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package session

import (
	"context"

	"github.com/s21platform/quickchat/internal/model"
)

type IdentityProvider interface {
	SignIn(ctx context.Context, provider model.ProviderKind) (*model.User, error)
}

type Store interface {
	UpsertUser(ctx context.Context, user model.User) error
	GetConversation(ctx context.Context, id string) (*model.Conversation, error)
}

type TokenIssuer interface {
	GenerateSessionToken(userID, sessionID string) (string, int64, error)
}

type GIFSearcher interface {
	Search(ctx context.Context, query string) ([]model.GIF, error)
}
