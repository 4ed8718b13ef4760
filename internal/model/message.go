package model

import (
	"strings"
	"time"
)

type MessageType string

const (
	TextMessageType    MessageType = "text"
	ImageMessageType   MessageType = "image"
	StickerMessageType MessageType = "sticker"
	FileMessageType    MessageType = "file"
)

const RemovedMessagePlaceholder = "Message has been removed"

type MessageList []Message

type Message struct {
	ID        string      `db:"id" json:"id"`
	Sender    string      `db:"sender" json:"sender"`
	Type      MessageType `db:"type" json:"type"`
	Content   string      `db:"content" json:"content"`
	File      *FileInfo   `db:"-" json:"file,omitempty"`
	CreatedAt time.Time   `db:"created_at" json:"createdAt"`
	// ReplyTo is not checked against existing messages and may dangle.
	ReplyTo *string `db:"reply_to" json:"replyTo,omitempty"`
}

type FileInfo struct {
	Name string `json:"name"`
	Size int64  `json:"size"`
}

// MessageDraft is what the composer hands to the store; id and createdAt are
// assigned by the store.
type MessageDraft struct {
	Sender  string
	Type    MessageType
	Content string
	File    *FileInfo
	ReplyTo *string
}

// AttachmentType maps a MIME type to the message type used for an uploaded attachment.
func AttachmentType(mimeType string) MessageType {
	if strings.HasPrefix(mimeType, "image") {
		return ImageMessageType
	}
	return FileMessageType
}

// ReplyPreview describes the message a reply points at. A nil target is a
// reference to a message that no longer exists.
func ReplyPreview(target *Message) string {
	if target == nil {
		return RemovedMessagePlaceholder
	}
	switch target.Type {
	case TextMessageType:
		return target.Content
	case ImageMessageType:
		return "An image"
	case FileMessageType:
		return "A file"
	case StickerMessageType:
		return "A sticker"
	default:
		return RemovedMessagePlaceholder
	}
}

// FindMessage resolves a soft reference inside a loaded message list.
func FindMessage(messages MessageList, id string) *Message {
	for i := range messages {
		if messages[i].ID == id {
			return &messages[i]
		}
	}
	return nil
}

// MessageQuery selects the messages of one conversation, optionally of a
// single type, in createdAt order.
type MessageQuery struct {
	ConversationID string
	Type           *MessageType
	Desc           bool
}
