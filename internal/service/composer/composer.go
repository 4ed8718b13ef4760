// Package composer turns user input into messages of one conversation.
package composer

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/samber/lo"

	"github.com/s21platform/quickchat/internal/config"
	"github.com/s21platform/quickchat/internal/model"
	"github.com/s21platform/quickchat/internal/pkg/logger"
	"github.com/s21platform/quickchat/internal/service/attachment"
)

// Composer is the input box of one user in one conversation. It holds the
// queued image previews and the message being replied to.
type Composer struct {
	conversationID string
	sender         string

	store     Store
	uploader  Uploader
	validator Validator
	metrics   Metrics
	recent    RecentStickers
	shortcuts Table

	mu       sync.Mutex
	previews []string
	reply    *model.Message
}

func New(
	conversationID string,
	sender string,
	store Store,
	uploader Uploader,
	validator Validator,
	metrics Metrics,
	recent RecentStickers,
	shortcuts Table,
) *Composer {
	return &Composer{
		conversationID: conversationID,
		sender:         sender,
		store:          store,
		uploader:       uploader,
		validator:      validator,
		metrics:        metrics,
		recent:         recent,
		shortcuts:      shortcuts,
	}
}

func (c *Composer) ConversationID() string {
	return c.conversationID
}

// AddPreview queues a pasted or dropped image for the next Submit.
func (c *Composer) AddPreview(url string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.previews = append(c.previews, url)
}

func (c *Composer) RemovePreview(url string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.previews = lo.Without(c.previews, url)
}

func (c *Composer) Previews() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	return slices.Clone(c.previews)
}

// SetReply makes msg the reply target of the next text or attachment. nil
// clears it.
func (c *Composer) SetReply(msg *model.Message) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.reply = msg
}

func (c *Composer) Reply() *model.Message {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.reply
}

// Uploading reports whether a file upload of this composer is still running.
func (c *Composer) Uploading() bool {
	return c.uploader.State() == attachment.Uploading
}

func (c *Composer) replyID() *string {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.reply == nil {
		return nil
	}
	return lo.ToPtr(c.reply.ID)
}

// Submit sends the queued previews, if any, and then input as a text message.
// Without queued previews a running file upload blocks the send with
// model.ErrUploadInProgress. Blank input sends no text and returns "".
func (c *Composer) Submit(ctx context.Context, input string) (string, error) {
	if err := c.validator.ValidateText(input); err != nil {
		return "", err
	}

	c.mu.Lock()
	hasPreviews := len(c.previews) > 0
	c.mu.Unlock()

	if hasPreviews {
		c.SendPreviews(ctx)
	} else if c.uploader.State() == attachment.Uploading {
		return "", model.ErrUploadInProgress
	}

	if strings.TrimSpace(input) == "" {
		return "", nil
	}

	text := c.shortcuts.Normalize(input)

	c.mu.Lock()
	var replyTo *string
	if c.reply != nil {
		replyTo = lo.ToPtr(c.reply.ID)
	}
	c.reply = nil
	c.mu.Unlock()

	return c.send(ctx, model.MessageDraft{
		Sender:  c.sender,
		Type:    model.TextMessageType,
		Content: text,
		ReplyTo: replyTo,
	})
}

// SendPreviews uploads the queued previews one at a time and returns the ids
// of the messages that made it. A failed item is logged and skipped; earlier
// items stay sent.
func (c *Composer) SendPreviews(ctx context.Context) []string {
	log := logger.FromContext(ctx, config.KeyLogger)
	log.AddFuncName("SendPreviews")

	c.mu.Lock()
	previews := c.previews
	c.previews = nil
	c.mu.Unlock()

	ids := make([]string, 0, len(previews))
	for _, url := range previews {
		file, err := c.uploader.Fetch(ctx, url)
		if err != nil {
			log.Warn(fmt.Sprintf("failed to read preview %s: %v", url, err))
			continue
		}

		id, err := c.sendAttachment(ctx, file)
		if err != nil {
			log.Warn(fmt.Sprintf("failed to send preview %s: %v", url, err))
			continue
		}
		ids = append(ids, id)
	}

	return ids
}

// UploadFile sends a file chosen with the file picker. Only validation errors
// such as model.ErrFileTooLarge are returned; transport failures are logged
// and yield "".
func (c *Composer) UploadFile(ctx context.Context, file attachment.File) (string, error) {
	log := logger.FromContext(ctx, config.KeyLogger)
	log.AddFuncName("UploadFile")

	id, err := c.sendAttachment(ctx, file)
	if err != nil {
		if errors.Is(err, model.ErrValidation) {
			return "", err
		}
		log.Error(fmt.Sprintf("failed to send %q: %v", file.Name, err))
		return "", nil
	}

	return id, nil
}

// DropFiles sends dropped files in order, skipping the ones that fail.
func (c *Composer) DropFiles(ctx context.Context, files []attachment.File) []string {
	log := logger.FromContext(ctx, config.KeyLogger)
	log.AddFuncName("DropFiles")

	ids := make([]string, 0, len(files))
	for _, file := range files {
		id, err := c.UploadFile(ctx, file)
		if err != nil {
			log.Warn(fmt.Sprintf("dropped file %q skipped: %v", file.Name, err))
			continue
		}
		if id != "" {
			ids = append(ids, id)
		}
	}

	return ids
}

func (c *Composer) sendAttachment(ctx context.Context, file attachment.File) (string, error) {
	url, err := c.uploader.Upload(ctx, file)
	if err != nil {
		return "", err
	}

	draft := model.MessageDraft{
		Sender:  c.sender,
		Type:    model.AttachmentType(file.ContentType()),
		Content: url,
		ReplyTo: c.replyID(),
	}
	if draft.Type == model.FileMessageType {
		draft.File = &model.FileInfo{Name: file.Name, Size: file.Size()}
	}

	return c.send(ctx, draft)
}

// SendSticker sends a catalog sticker and records it as recently used. Stickers
// never carry the reply target.
func (c *Composer) SendSticker(ctx context.Context, url string) (string, error) {
	log := logger.FromContext(ctx, config.KeyLogger)
	log.AddFuncName("SendSticker")

	if err := c.validator.ValidateContentURL(url); err != nil {
		return "", err
	}

	id, err := c.send(ctx, model.MessageDraft{
		Sender:  c.sender,
		Type:    model.StickerMessageType,
		Content: url,
	})
	if err != nil {
		return id, err
	}

	if _, err := c.recent.Add(url); err != nil {
		log.Warn(fmt.Sprintf("failed to remember sticker: %v", err))
	}

	return id, nil
}

// SendGIF sends a GIF as an image message without file metadata. GIFs never
// carry the reply target, unlike uploaded images.
func (c *Composer) SendGIF(ctx context.Context, url string) (string, error) {
	if err := c.validator.ValidateContentURL(url); err != nil {
		return "", err
	}

	return c.send(ctx, model.MessageDraft{
		Sender:  c.sender,
		Type:    model.ImageMessageType,
		Content: url,
	})
}

// LiveReplace applies the shortcut table to the word before the caret.
func (c *Composer) LiveReplace(input string, caret, selectionEnd int) (string, int) {
	return c.shortcuts.LiveReplace(input, caret, selectionEnd)
}

// send appends draft and then bumps the conversation. The bump only runs
// after a successful append; if it fails the message stays with a stale
// conversation recency and its id is returned with the error.
func (c *Composer) send(ctx context.Context, draft model.MessageDraft) (string, error) {
	log := logger.FromContext(ctx, config.KeyLogger)
	log.AddFuncName("send")

	id, err := c.store.AppendMessage(ctx, c.conversationID, draft)
	if err != nil {
		log.Error(fmt.Sprintf("failed to append %s message: %v", draft.Type, err))
		return "", model.NetworkError("append message", err)
	}

	c.metrics.MessageSent(string(draft.Type))

	if err := c.store.TouchConversation(ctx, c.conversationID); err != nil {
		log.Error(fmt.Sprintf("failed to update conversation recency: %v", err))
		return id, model.NetworkError("touch conversation", err)
	}

	return id, nil
}
