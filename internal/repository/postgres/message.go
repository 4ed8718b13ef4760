package postgres

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/s21platform/quickchat/internal/model"
)

type messageRow struct {
	ID        string    `db:"id"`
	Sender    string    `db:"sender"`
	Type      string    `db:"type"`
	Content   string    `db:"content"`
	FileName  *string   `db:"file_name"`
	FileSize  *int64    `db:"file_size"`
	ReplyTo   *string   `db:"reply_to"`
	CreatedAt time.Time `db:"created_at"`
}

func (row messageRow) toModel() model.Message {
	m := model.Message{
		ID:        row.ID,
		Sender:    row.Sender,
		Type:      model.MessageType(row.Type),
		Content:   row.Content,
		CreatedAt: row.CreatedAt,
		ReplyTo:   row.ReplyTo,
	}
	if row.FileName != nil {
		m.File = &model.FileInfo{Name: *row.FileName}
		if row.FileSize != nil {
			m.File.Size = *row.FileSize
		}
	}
	return m
}

// AppendMessage inserts a message. reply_to carries no foreign key, so a
// reply may outlive its target.
func (r *Repository) AppendMessage(ctx context.Context, conversationID string, draft model.MessageDraft) (string, error) {
	var fileName *string
	var fileSize *int64
	if draft.File != nil {
		fileName = &draft.File.Name
		fileSize = &draft.File.Size
	}

	query, args, err := sq.Insert("messages").
		Columns("conversation_id", "sender", "type", "content", "file_name", "file_size", "reply_to").
		Values(conversationID, draft.Sender, string(draft.Type), draft.Content, fileName, fileSize, draft.ReplyTo).
		Suffix("RETURNING id").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("failed to build sql query: %v", err)
	}

	var messageID string
	err = r.Chk(ctx).GetContext(ctx, &messageID, query, args...)
	if err != nil {
		return "", fmt.Errorf("failed to save message: %v", err)
	}

	return messageID, nil
}

func (r *Repository) ListMessages(ctx context.Context, q model.MessageQuery) (model.MessageList, error) {
	order := "ASC"
	if q.Desc {
		order = "DESC"
	}

	queryBuilder := sq.Select(
		"id",
		"sender",
		"type",
		"content",
		"file_name",
		"file_size",
		"reply_to",
		"created_at",
	).
		From("messages").
		Where(sq.Eq{"conversation_id": q.ConversationID}).
		OrderBy("created_at "+order, "id "+order)

	if q.Type != nil {
		queryBuilder = queryBuilder.Where(sq.Eq{"type": string(*q.Type)})
	}

	query, args, err := queryBuilder.PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var rows []messageRow
	err = r.Chk(ctx).SelectContext(ctx, &rows, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get messages: %v", err)
	}

	messages := make(model.MessageList, len(rows))
	for i, row := range rows {
		messages[i] = row.toModel()
	}

	return messages, nil
}
