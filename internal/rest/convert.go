package rest

import (
	"github.com/samber/lo"

	api "github.com/s21platform/quickchat/internal/generated"
	"github.com/s21platform/quickchat/internal/model"
	"github.com/s21platform/quickchat/internal/service/composer"
	"github.com/s21platform/quickchat/internal/service/realtime"
)

func toAPIUser(u model.User) api.User {
	return api.User{Uid: u.UID, DisplayName: u.DisplayName, PhotoURL: u.PhotoURL}
}

func toAPIConversation(c model.Conversation, _ int) api.Conversation {
	out := api.Conversation{
		Id:        c.ID,
		Users:     c.Users,
		UpdatedAt: c.UpdatedAt,
		Seen:      c.Seen,
		Theme:     c.Theme,
	}
	if c.Group != nil {
		out.Group = &api.Group{
			Admins:     c.Group.Admins,
			GroupName:  c.Group.GroupName,
			GroupImage: c.Group.GroupImage,
		}
	}
	return out
}

func toAPIMessage(m model.Message) api.Message {
	out := api.Message{
		Id:        m.ID,
		Sender:    m.Sender,
		Type:      api.MessageType(m.Type),
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
		ReplyTo:   m.ReplyTo,
	}
	if m.File != nil {
		out.File = &api.FileInfo{Name: m.File.Name, Size: m.File.Size}
	}
	return out
}

// toAPIMessages resolves reply previews against the list itself, so a reply
// to a message missing from it gets the removed-message placeholder.
func toAPIMessages(messages model.MessageList) any {
	return lo.Map(messages, func(m model.Message, _ int) api.Message {
		out := toAPIMessage(m)
		if m.ReplyTo != nil {
			out.ReplyPreview = lo.ToPtr(realtime.ReplyPreview(messages, *m.ReplyTo))
		}
		return out
	})
}

func toAPIStickerCollection(c model.StickerCollection, _ int) api.StickerCollection {
	return api.StickerCollection{
		Id:   c.ID,
		Name: c.Name,
		Icon: c.Icon,
		Stickers: lo.Map(c.Stickers, func(s model.Sticker, _ int) api.Sticker {
			return api.Sticker{SpriteURL: s.SpriteURL}
		}),
	}
}

func toAPIGIF(g model.GIF, _ int) api.GIF {
	return api.GIF{Id: g.ID, Url: g.URL}
}

func composerState(c *composer.Composer) api.ComposerState {
	state := api.ComposerState{
		Previews:  c.Previews(),
		Uploading: c.Uploading(),
	}
	if state.Previews == nil {
		state.Previews = []string{}
	}
	if reply := c.Reply(); reply != nil {
		state.Reply = lo.ToPtr(toAPIMessage(*reply))
	}
	return state
}
