//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package conversation

import (
	"context"

	"github.com/s21platform/quickchat/internal/model"
)

type Store interface {
	FindConversationByUsers(ctx context.Context, users []string) (*model.Conversation, error)
	GetConversation(ctx context.Context, id string) (*model.Conversation, error)
	CreateConversation(ctx context.Context, conversation *model.Conversation) (string, error)
	RemoveMember(ctx context.Context, conversationID, uid string, echo model.GroupEcho) error
	AddAdmin(ctx context.Context, conversationID, uid string, echo model.GroupEcho) error

	WithTx(ctx context.Context, cb func(ctx context.Context) error) error
	LockParticipants(ctx context.Context, key string) error
}

type Validator interface {
	ValidateParticipants(participants []string, requesterID string) error
}

type Metrics interface {
	ConversationLookup(created bool)
}
