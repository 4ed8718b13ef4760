package conversation

import (
	"context"
	"fmt"

	"github.com/s21platform/quickchat/internal/config"
	"github.com/s21platform/quickchat/internal/model"
	"github.com/s21platform/quickchat/internal/pkg/logger"
)

// Membership applies member and admin changes to group conversations. There
// is no optimistic concurrency: the last write wins.
type Membership struct {
	store Store
}

func NewMembership(store Store) *Membership {
	return &Membership{store: store}
}

// RemoveMember kicks target out of the group, or lets an admin leave when
// target is the acting user. left reports the latter so the caller can
// navigate away. The sole admin can never be removed.
func (m *Membership) RemoveMember(ctx context.Context, conversationID, targetUID, actingUID string) (bool, error) {
	log := logger.FromContext(ctx, config.KeyLogger)
	log.AddFuncName("RemoveMember")

	conversation, err := m.store.GetConversation(ctx, conversationID)
	if err != nil {
		return false, model.NetworkError("get conversation", err)
	}

	if !conversation.IsGroup() {
		return false, model.ErrNotGroup
	}
	if !conversation.IsAdmin(actingUID) {
		return false, model.ErrNotAdmin
	}
	if conversation.IsSoleAdmin(targetUID) {
		return false, model.ErrLastAdmin
	}

	if err := m.store.RemoveMember(ctx, conversationID, targetUID, conversation.Echo()); err != nil {
		log.Error(fmt.Sprintf("failed to remove member: %v", err))
		return false, model.NetworkError("remove member", err)
	}

	return targetUID == actingUID, nil
}

// AddAdmin adds target to the group admins. Adding an existing admin is a
// no-op apart from bumping updatedAt.
func (m *Membership) AddAdmin(ctx context.Context, conversationID, targetUID string) error {
	conversation, err := m.store.GetConversation(ctx, conversationID)
	if err != nil {
		return model.NetworkError("get conversation", err)
	}

	return m.addAdmin(ctx, conversation, targetUID)
}

// AddAdminAs is AddAdmin restricted to current admins.
func (m *Membership) AddAdminAs(ctx context.Context, conversationID, targetUID, actingUID string) error {
	conversation, err := m.store.GetConversation(ctx, conversationID)
	if err != nil {
		return model.NetworkError("get conversation", err)
	}

	if !conversation.IsAdmin(actingUID) {
		return model.ErrNotAdmin
	}

	return m.addAdmin(ctx, conversation, targetUID)
}

func (m *Membership) addAdmin(ctx context.Context, conversation *model.Conversation, targetUID string) error {
	log := logger.FromContext(ctx, config.KeyLogger)
	log.AddFuncName("AddAdmin")

	if !conversation.IsGroup() {
		return model.ErrNotGroup
	}

	if err := m.store.AddAdmin(ctx, conversation.ID, targetUID, conversation.Echo()); err != nil {
		log.Error(fmt.Sprintf("failed to add admin: %v", err))
		return model.NetworkError("add admin", err)
	}

	return nil
}

// CanRemoveMembers reports whether member removal is offered at all for the
// conversation. RemoveMember itself does not enforce it.
func (m *Membership) CanRemoveMembers(conversation *model.Conversation) bool {
	return conversation.CanRemoveMembers()
}
