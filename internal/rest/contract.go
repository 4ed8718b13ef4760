//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package rest

import (
	"context"

	"github.com/s21platform/quickchat/internal/model"
	"github.com/s21platform/quickchat/internal/service/realtime"
	"github.com/s21platform/quickchat/internal/session"
)

type Sessions interface {
	SignIn(ctx context.Context, provider model.ProviderKind) (*session.SignInResult, error)
	Get(id, uid string) (*session.Session, error)
	SignOut(id string) error
}

type Registry interface {
	CreateOrGetConversation(ctx context.Context, participants []string, requesterID string) (string, error)
}

type Membership interface {
	RemoveMember(ctx context.Context, conversationID, targetUID, actingUID string) (bool, error)
	AddAdminAs(ctx context.Context, conversationID, targetUID, actingUID string) error
}

type Sync interface {
	Conversations(ctx context.Context, uid string) (*realtime.View[model.ConversationList], error)
	Messages(ctx context.Context, conversationID string) (*realtime.View[model.MessageList], error)
	Media(ctx context.Context, conversationID string) (*realtime.View[model.MessageList], error)
	Users(ctx context.Context, uids []string) (*realtime.View[[]model.User], error)
}

type MessageStore interface {
	ListMessages(ctx context.Context, q model.MessageQuery) (model.MessageList, error)
}

type StickerCatalog interface {
	Collections(ctx context.Context) ([]model.StickerCollection, error)
}

type RecentStickers interface {
	Recent(uid string) []string
}
