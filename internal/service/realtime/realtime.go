// Package realtime exposes live, ordered projections of the store.
package realtime

import (
	"context"

	"github.com/s21platform/quickchat/internal/model"
)

type Sync struct {
	store   Store
	metrics Metrics
}

func New(store Store, metrics Metrics) *Sync {
	return &Sync{store: store, metrics: metrics}
}

// Conversations lists the conversations of uid, most recently updated first.
func (s *Sync) Conversations(ctx context.Context, uid string) (*View[model.ConversationList], error) {
	return open(s, "conversations", func(fn func(model.ConversationList, error)) (model.Subscription, error) {
		return s.store.SubscribeConversations(ctx, uid, fn)
	})
}

// Messages lists every message of a conversation, oldest first.
func (s *Sync) Messages(ctx context.Context, conversationID string) (*View[model.MessageList], error) {
	return open(s, "messages", func(fn func(model.MessageList, error)) (model.Subscription, error) {
		return s.store.SubscribeMessages(ctx, model.MessageQuery{ConversationID: conversationID}, fn)
	})
}

// Media lists the image messages of a conversation, newest first.
func (s *Sync) Media(ctx context.Context, conversationID string) (*View[model.MessageList], error) {
	imageType := model.ImageMessageType
	q := model.MessageQuery{ConversationID: conversationID, Type: &imageType, Desc: true}

	return open(s, "media", func(fn func(model.MessageList, error)) (model.Subscription, error) {
		return s.store.SubscribeMessages(ctx, q, fn)
	})
}

// Users lists the stored records of uids.
func (s *Sync) Users(ctx context.Context, uids []string) (*View[[]model.User], error) {
	return open(s, "users", func(fn func([]model.User, error)) (model.Subscription, error) {
		return s.store.SubscribeUsers(ctx, uids, fn)
	})
}

func open[T any](s *Sync, name string, subscribe func(fn func(T, error)) (model.Subscription, error)) (*View[T], error) {
	view := newView[T]()

	sub, err := subscribe(func(data T, err error) {
		view.publish(data, model.NetworkError("load "+name, err))
	})
	if err != nil {
		return nil, model.NetworkError("subscribe "+name, err)
	}

	s.metrics.ViewOpened()

	view.mu.Lock()
	view.sub = sub
	view.onClose = s.metrics.ViewClosed
	view.mu.Unlock()

	return view, nil
}

// ReplyPreview describes the message replied to by id, or a placeholder when
// it is no longer in messages.
func ReplyPreview(messages model.MessageList, id string) string {
	return model.ReplyPreview(model.FindMessage(messages, id))
}
