//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package composer

import (
	"context"

	"github.com/s21platform/quickchat/internal/model"
	"github.com/s21platform/quickchat/internal/service/attachment"
)

type Store interface {
	AppendMessage(ctx context.Context, conversationID string, draft model.MessageDraft) (string, error)
	TouchConversation(ctx context.Context, conversationID string) error
}

type Uploader interface {
	Upload(ctx context.Context, file attachment.File) (string, error)
	Fetch(ctx context.Context, previewURL string) (attachment.File, error)
	State() attachment.State
}

type Validator interface {
	ValidateText(content string) error
	ValidateContentURL(url string) error
}

type Metrics interface {
	MessageSent(messageType string)
}

type RecentStickers interface {
	Add(url string) ([]string, error)
}
