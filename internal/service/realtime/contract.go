//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package realtime

import (
	"context"

	"github.com/s21platform/quickchat/internal/model"
)

type Store interface {
	SubscribeConversations(ctx context.Context, uid string, fn func(model.ConversationList, error)) (model.Subscription, error)
	SubscribeMessages(ctx context.Context, q model.MessageQuery, fn func(model.MessageList, error)) (model.Subscription, error)
	SubscribeUsers(ctx context.Context, uids []string, fn func([]model.User, error)) (model.Subscription, error)
}

type Metrics interface {
	ViewOpened()
	ViewClosed()
}
