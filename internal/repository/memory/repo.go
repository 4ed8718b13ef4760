// Package memory is an in-process document store with the same query and
// subscription semantics as the postgres repository.
package memory

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/s21platform/quickchat/internal/model"
	"github.com/s21platform/quickchat/internal/repository/feed"
)

type Repository struct {
	mu            sync.RWMutex
	txMu          sync.Mutex
	hub           *feed.Hub
	conversations map[string]*model.Conversation
	messages      map[string]model.MessageList
	users         map[string]model.User
	lastTS        time.Time
}

func New() *Repository {
	return &Repository{
		hub:           feed.NewHub(),
		conversations: make(map[string]*model.Conversation),
		messages:      make(map[string]model.MessageList),
		users:         make(map[string]model.User),
	}
}

func (r *Repository) Close() {}

// now returns a strictly increasing timestamp. Must be called with mu held.
func (r *Repository) now() time.Time {
	ts := time.Now().UTC()
	if !ts.After(r.lastTS) {
		ts = r.lastTS.Add(time.Microsecond)
	}
	r.lastTS = ts
	return ts
}

// WithTx serialises callers of WithTx against each other. Plain reads and
// writes are not blocked.
func (r *Repository) WithTx(ctx context.Context, cb func(ctx context.Context) error) error {
	r.txMu.Lock()
	defer r.txMu.Unlock()
	return cb(ctx)
}

// LockParticipants is a no-op: WithTx already holds the only lock.
func (r *Repository) LockParticipants(ctx context.Context, key string) error {
	return nil
}

func (r *Repository) FindConversationByUsers(ctx context.Context, users []string) (*model.Conversation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	// map order is random; pick the lowest id so lookups are deterministic
	var found *model.Conversation
	for _, c := range r.conversations {
		if slices.Equal(c.Users, users) && (found == nil || c.ID < found.ID) {
			found = c
		}
	}
	if found == nil {
		return nil, model.ErrNotFound
	}
	return cloneConversation(found), nil
}

func (r *Repository) GetConversation(ctx context.Context, id string) (*model.Conversation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.conversations[id]
	if !ok {
		return nil, fmt.Errorf("conversation %s: %w", id, model.ErrNotFound)
	}
	return cloneConversation(c), nil
}

func (r *Repository) CreateConversation(ctx context.Context, conversation *model.Conversation) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	r.mu.Lock()
	c := cloneConversation(conversation)
	c.ID = uuid.NewString()
	c.UpdatedAt = r.now()
	if c.Seen == nil {
		c.Seen = map[string]time.Time{}
	}
	r.conversations[c.ID] = c
	r.mu.Unlock()

	r.hub.Publish(feed.Topic{Kind: feed.Conversations, Key: c.ID})

	return c.ID, nil
}

func (r *Repository) RemoveMember(ctx context.Context, conversationID, uid string, echo model.GroupEcho) error {
	return r.updateConversation(ctx, conversationID, func(c *model.Conversation) {
		c.Users = lo.Without(c.Users, uid)
		if c.Group == nil {
			c.Group = &model.Group{}
		}
		c.Group.Admins = lo.Without(c.Group.Admins, uid)
		c.Group.GroupName = echo.GroupName
		c.Group.GroupImage = echo.GroupImage
	})
}

func (r *Repository) AddAdmin(ctx context.Context, conversationID, uid string, echo model.GroupEcho) error {
	return r.updateConversation(ctx, conversationID, func(c *model.Conversation) {
		if c.Group == nil {
			c.Group = &model.Group{}
		}
		if !lo.Contains(c.Group.Admins, uid) {
			c.Group.Admins = append(c.Group.Admins, uid)
		}
		c.Group.GroupName = echo.GroupName
		c.Group.GroupImage = echo.GroupImage
	})
}

func (r *Repository) TouchConversation(ctx context.Context, conversationID string) error {
	return r.updateConversation(ctx, conversationID, func(c *model.Conversation) {})
}

func (r *Repository) updateConversation(ctx context.Context, id string, mutate func(c *model.Conversation)) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	c, ok := r.conversations[id]
	if !ok {
		r.mu.Unlock()
		return fmt.Errorf("conversation %s: %w", id, model.ErrNotFound)
	}
	mutate(c)
	c.UpdatedAt = r.now()
	r.mu.Unlock()

	r.hub.Publish(feed.Topic{Kind: feed.Conversations, Key: id})

	return nil
}

func (r *Repository) ListConversations(ctx context.Context, uid string) (model.ConversationList, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	result := make(model.ConversationList, 0)
	for _, c := range r.conversations {
		if lo.Contains(c.Users, uid) {
			result = append(result, *cloneConversation(c))
		}
	}
	r.mu.RUnlock()

	sort.SliceStable(result, func(i, j int) bool {
		if result[i].UpdatedAt.Equal(result[j].UpdatedAt) {
			return result[i].ID < result[j].ID
		}
		return result[i].UpdatedAt.After(result[j].UpdatedAt)
	})

	return result, nil
}

func (r *Repository) AppendMessage(ctx context.Context, conversationID string, draft model.MessageDraft) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	r.mu.Lock()
	if _, ok := r.conversations[conversationID]; !ok {
		r.mu.Unlock()
		return "", fmt.Errorf("conversation %s: %w", conversationID, model.ErrNotFound)
	}
	msg := model.Message{
		ID:        uuid.NewString(),
		Sender:    draft.Sender,
		Type:      draft.Type,
		Content:   draft.Content,
		File:      cloneFile(draft.File),
		CreatedAt: r.now(),
	}
	if draft.ReplyTo != nil {
		msg.ReplyTo = lo.ToPtr(*draft.ReplyTo)
	}
	r.messages[conversationID] = append(r.messages[conversationID], msg)
	r.mu.Unlock()

	r.hub.Publish(feed.Topic{Kind: feed.Messages, Key: conversationID})

	return msg.ID, nil
}

func (r *Repository) ListMessages(ctx context.Context, q model.MessageQuery) (model.MessageList, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	result := make(model.MessageList, 0, len(r.messages[q.ConversationID]))
	for _, m := range r.messages[q.ConversationID] {
		if q.Type != nil && m.Type != *q.Type {
			continue
		}
		m.File = cloneFile(m.File)
		result = append(result, m)
	}
	r.mu.RUnlock()

	// appended in createdAt order already
	if q.Desc {
		slices.Reverse(result)
	}

	return result, nil
}

func (r *Repository) UpsertUser(ctx context.Context, user model.User) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	r.users[user.UID] = user
	r.mu.Unlock()

	r.hub.Publish(feed.Topic{Kind: feed.Users, Key: user.UID})

	return nil
}

func (r *Repository) GetUsers(ctx context.Context, uids []string) ([]model.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]model.User, 0, len(uids))
	for _, uid := range uids {
		if u, ok := r.users[uid]; ok {
			result = append(result, u)
		}
	}
	return result, nil
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

func cloneConversation(c *model.Conversation) *model.Conversation {
	out := *c
	out.Users = slices.Clone(c.Users)
	if c.Group != nil {
		g := *c.Group
		g.Admins = slices.Clone(c.Group.Admins)
		out.Group = &g
	}
	if c.Seen != nil {
		out.Seen = make(map[string]time.Time, len(c.Seen))
		for k, v := range c.Seen {
			out.Seen[k] = v
		}
	}
	return &out
}

func cloneFile(f *model.FileInfo) *model.FileInfo {
	if f == nil {
		return nil
	}
	out := *f
	return &out
}
