// Package conversation resolves participant sets to conversations and
// enforces group membership rules.
package conversation

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/s21platform/quickchat/internal/config"
	"github.com/s21platform/quickchat/internal/model"
	"github.com/s21platform/quickchat/internal/pkg/logger"
)

type Registry struct {
	store     Store
	validator Validator
	metrics   Metrics
	// StrictDedup runs lookup and creation under one participant lock. When
	// off, two concurrent first messages between the same users can create
	// two conversations.
	StrictDedup bool
}

func NewRegistry(store Store, validator Validator, metrics Metrics, strictDedup bool) *Registry {
	return &Registry{
		store:       store,
		validator:   validator,
		metrics:     metrics,
		StrictDedup: strictDedup,
	}
}

// Canonical returns the sorted, de-duplicated member list for a conversation
// between participants and the requester. Blank ids are dropped.
func Canonical(participants []string, requesterID string) []string {
	users := lo.Uniq(lo.Compact(append(lo.Map(participants, func(id string, _ int) string {
		return strings.TrimSpace(id)
	}), strings.TrimSpace(requesterID))))
	sort.Strings(users)
	return users
}

// CreateOrGetConversation returns the id of the conversation whose users are
// exactly the canonical set, creating it when none exists.
func (r *Registry) CreateOrGetConversation(ctx context.Context, participants []string, requesterID string) (string, error) {
	log := logger.FromContext(ctx, config.KeyLogger)
	log.AddFuncName("CreateOrGetConversation")

	if err := r.validator.ValidateParticipants(participants, requesterID); err != nil {
		return "", err
	}

	users := Canonical(participants, requesterID)

	var id string
	var err error
	if r.StrictDedup {
		err = r.store.WithTx(ctx, func(ctx context.Context) error {
			if err := r.store.LockParticipants(ctx, strings.Join(users, ",")); err != nil {
				return err
			}
			var err error
			id, err = r.findOrCreate(ctx, users, requesterID)
			return err
		})
	} else {
		id, err = r.findOrCreate(ctx, users, requesterID)
	}
	if err != nil {
		log.Error(fmt.Sprintf("failed to resolve conversation: %v", err))
		if errors.Is(err, model.ErrNetwork) {
			return "", err
		}
		return "", model.NetworkError("resolve conversation", err)
	}

	return id, nil
}

func (r *Registry) findOrCreate(ctx context.Context, users []string, requesterID string) (string, error) {
	existing, err := r.store.FindConversationByUsers(ctx, users)
	if err == nil {
		r.metrics.ConversationLookup(false)
		return existing.ID, nil
	}
	if !errors.Is(err, model.ErrNotFound) {
		return "", model.NetworkError("find conversation", err)
	}

	conversation := &model.Conversation{
		Users:     users,
		UpdatedAt: time.Now(),
		Seen:      map[string]time.Time{},
		Theme:     model.DefaultTheme,
	}
	if len(users) > 2 {
		conversation.Group = &model.Group{Admins: []string{requesterID}}
	}

	id, err := r.store.CreateConversation(ctx, conversation)
	if err != nil {
		return "", model.NetworkError("create conversation", err)
	}

	r.metrics.ConversationLookup(true)

	return id, nil
}
