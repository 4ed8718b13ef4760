package model

import (
	"time"

	"github.com/samber/lo"
)

const DefaultTheme = "#0D90F3"

type ConversationList []Conversation

type Conversation struct {
	ID        string               `json:"id"`
	Users     []string             `json:"users"`
	Group     *Group               `json:"group,omitempty"`
	UpdatedAt time.Time            `json:"updatedAt"`
	Seen      map[string]time.Time `json:"seen"`
	Theme     string               `json:"theme"`
}

// Group is only set for conversations with more than two users.
type Group struct {
	Admins     []string `json:"admins"`
	GroupName  *string  `json:"groupName"`
	GroupImage *string  `json:"groupImage"`
}

func (c *Conversation) IsGroup() bool {
	return c.Group != nil
}

func (c *Conversation) IsAdmin(uid string) bool {
	return c.Group != nil && lo.Contains(c.Group.Admins, uid)
}

func (c *Conversation) IsMember(uid string) bool {
	return lo.Contains(c.Users, uid)
}

// IsSoleAdmin reports whether uid is the only admin left in the group.
func (c *Conversation) IsSoleAdmin(uid string) bool {
	return c.Group != nil && len(c.Group.Admins) == 1 && c.Group.Admins[0] == uid
}

// CanRemoveMembers mirrors the member list rule: kicking and leaving are only
// offered once the group has more than three users.
func (c *Conversation) CanRemoveMembers() bool {
	return c.Group != nil && len(c.Users) > 3
}

// GroupEcho carries the group name and image written back unchanged together
// with a membership update.
type GroupEcho struct {
	GroupName  *string
	GroupImage *string
}

func (c *Conversation) Echo() GroupEcho {
	if c.Group == nil {
		return GroupEcho{}
	}
	return GroupEcho{GroupName: c.Group.GroupName, GroupImage: c.Group.GroupImage}
}
