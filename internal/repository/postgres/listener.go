package postgres

import (
	"context"
	"fmt"

	"github.com/lib/pq"

	"github.com/s21platform/quickchat/internal/config"
	"github.com/s21platform/quickchat/internal/model"
	"github.com/s21platform/quickchat/internal/pkg/logger"
	"github.com/s21platform/quickchat/internal/repository/feed"
)

const (
	channelConversations = "quickchat_conversations"
	channelMessages      = "quickchat_messages"
	channelUsers         = "quickchat_users"
)

var channelKinds = map[string]feed.Kind{
	channelConversations: feed.Conversations,
	channelMessages:      feed.Messages,
	channelUsers:         feed.Users,
}

// Listen forwards NOTIFY payloads from the change triggers to subscribers
// until ctx is cancelled. A reconnect may have dropped notifications, so every
// subscription is refreshed after one.
func (r *Repository) Listen(ctx context.Context) error {
	log := logger.FromContext(ctx, config.KeyLogger)
	log.AddFuncName("Listen")

	listener := pq.NewListener(r.conStr, r.minWait, r.maxWait, func(ev pq.ListenerEventType, err error) {
		if err != nil {
			log.Warn(fmt.Sprintf("listener event %d: %v", ev, err))
		}
	})
	defer func() { _ = listener.Close() }()

	for channel := range channelKinds {
		if err := listener.Listen(channel); err != nil {
			return fmt.Errorf("failed to listen %s: %v", channel, err)
		}
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case n := <-listener.Notify:
			r.hub.Publish(topicFor(n))
		}
	}
}

func topicFor(n *pq.Notification) feed.Topic {
	if n == nil {
		return feed.Topic{Kind: feed.All}
	}
	kind, ok := channelKinds[n.Channel]
	if !ok {
		return feed.Topic{Kind: feed.All}
	}
	return feed.Topic{Kind: kind, Key: n.Extra}
}

func (r *Repository) SubscribeConversations(ctx context.Context, uid string, fn func(model.ConversationList, error)) (model.Subscription, error) {
	return r.hub.Subscribe(ctx, feed.MatchKind(feed.Conversations), func(ctx context.Context) {
		fn(r.ListConversations(ctx, uid))
	}), nil
}

func (r *Repository) SubscribeMessages(ctx context.Context, q model.MessageQuery, fn func(model.MessageList, error)) (model.Subscription, error) {
	return r.hub.Subscribe(ctx, feed.MatchKey(feed.Messages, q.ConversationID), func(ctx context.Context) {
		fn(r.ListMessages(ctx, q))
	}), nil
}

func (r *Repository) SubscribeUsers(ctx context.Context, uids []string, fn func([]model.User, error)) (model.Subscription, error) {
	return r.hub.Subscribe(ctx, feed.MatchKeys(feed.Users, uids), func(ctx context.Context) {
		fn(r.GetUsers(ctx, uids))
	}), nil
}
