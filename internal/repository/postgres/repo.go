package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/s21platform/quickchat/internal/config"
	"github.com/s21platform/quickchat/internal/model"
	"github.com/s21platform/quickchat/internal/repository/feed"
)

var conversationColumns = []string{
	"id",
	"users",
	"is_group",
	"group_admins",
	"group_name",
	"group_image",
	"seen",
	"theme",
	"updated_at",
}

type Repository struct {
	connection *sqlx.DB
	conStr     string
	hub        *feed.Hub
	minWait    time.Duration
	maxWait    time.Duration
}

func New(cfg *config.Config) *Repository {
	conStr := fmt.Sprintf("user=%s password=%s dbname=%s host=%s port=%s sslmode=disable",
		cfg.Postgres.User, cfg.Postgres.Password, cfg.Postgres.Database, cfg.Postgres.Host, cfg.Postgres.Port)

	conn, err := sqlx.Connect("postgres", conStr)
	if err != nil {
		log.Fatal("error connect: ", err)
	}

	return &Repository{
		connection: conn,
		conStr:     conStr,
		hub:        feed.NewHub(),
		minWait:    cfg.Postgres.ListenerMinReconnect,
		maxWait:    cfg.Postgres.ListenerMaxReconnect,
	}
}

func (r *Repository) Close() {
	_ = r.connection.Close()
}

type txKey struct{}

type executor interface {
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

// Chk returns the transaction bound to ctx by WithTx, or the pool.
func (r *Repository) Chk(ctx context.Context) executor {
	if tx, ok := ctx.Value(txKey{}).(*sqlx.Tx); ok {
		return tx
	}
	return r.connection
}

func (r *Repository) WithTx(ctx context.Context, cb func(ctx context.Context) error) error {
	tx, err := r.connection.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %v", err)
	}

	if err := cb(context.WithValue(ctx, txKey{}, tx)); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %v", err)
	}

	return nil
}

// LockParticipants takes a transaction-scoped advisory lock on the canonical
// participant key. Only meaningful inside WithTx.
func (r *Repository) LockParticipants(ctx context.Context, key string) error {
	_, err := r.Chk(ctx).ExecContext(ctx, "SELECT pg_advisory_xact_lock(hashtext($1))", key)
	if err != nil {
		return fmt.Errorf("failed to lock participants: %v", err)
	}
	return nil
}

type conversationRow struct {
	ID          string         `db:"id"`
	Users       pq.StringArray `db:"users"`
	IsGroup     bool           `db:"is_group"`
	GroupAdmins pq.StringArray `db:"group_admins"`
	GroupName   *string        `db:"group_name"`
	GroupImage  *string        `db:"group_image"`
	Seen        []byte         `db:"seen"`
	Theme       string         `db:"theme"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

func (row conversationRow) toModel() (model.Conversation, error) {
	c := model.Conversation{
		ID:        row.ID,
		Users:     []string(row.Users),
		UpdatedAt: row.UpdatedAt,
		Seen:      map[string]time.Time{},
		Theme:     row.Theme,
	}
	if row.IsGroup {
		c.Group = &model.Group{
			Admins:     []string(row.GroupAdmins),
			GroupName:  row.GroupName,
			GroupImage: row.GroupImage,
		}
	}
	if len(row.Seen) > 0 {
		if err := json.Unmarshal(row.Seen, &c.Seen); err != nil {
			return model.Conversation{}, fmt.Errorf("failed to decode seen: %v", err)
		}
	}
	return c, nil
}

func (r *Repository) FindConversationByUsers(ctx context.Context, users []string) (*model.Conversation, error) {
	query, args, err := sq.Select(conversationColumns...).
		From("conversations").
		Where("users = ?::text[]", pq.Array(users)).
		OrderBy("updated_at ASC").
		Limit(1).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	return r.getConversation(ctx, query, args)
}

func (r *Repository) GetConversation(ctx context.Context, id string) (*model.Conversation, error) {
	query, args, err := sq.Select(conversationColumns...).
		From("conversations").
		Where(sq.Eq{"id": id}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	return r.getConversation(ctx, query, args)
}

func (r *Repository) getConversation(ctx context.Context, query string, args []interface{}) (*model.Conversation, error) {
	var row conversationRow
	err := r.Chk(ctx).GetContext(ctx, &row, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get conversation: %v", err)
	}

	conversation, err := row.toModel()
	if err != nil {
		return nil, err
	}

	return &conversation, nil
}

func (r *Repository) CreateConversation(ctx context.Context, conversation *model.Conversation) (string, error) {
	seen, err := json.Marshal(conversation.Seen)
	if err != nil {
		return "", fmt.Errorf("failed to encode seen: %v", err)
	}
	if conversation.Seen == nil {
		seen = []byte("{}")
	}

	admins := []string{}
	var groupName, groupImage *string
	if conversation.Group != nil {
		admins = conversation.Group.Admins
		groupName = conversation.Group.GroupName
		groupImage = conversation.Group.GroupImage
	}

	query, args, err := sq.Insert("conversations").
		Columns("users", "is_group", "group_admins", "group_name", "group_image", "seen", "theme", "updated_at").
		Values(
			pq.Array(conversation.Users),
			conversation.Group != nil,
			pq.Array(admins),
			groupName,
			groupImage,
			string(seen),
			conversation.Theme,
			sq.Expr("now()"),
		).
		Suffix("RETURNING id").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("failed to build sql query: %v", err)
	}

	var conversationID string
	err = r.Chk(ctx).GetContext(ctx, &conversationID, query, args...)
	if err != nil {
		return "", fmt.Errorf("failed to create conversation: %v", err)
	}

	return conversationID, nil
}

// RemoveMember drops uid from users and admins. array_remove keeps the
// remaining users in their sorted order.
func (r *Repository) RemoveMember(ctx context.Context, conversationID, uid string, echo model.GroupEcho) error {
	query, args, err := sq.Update("conversations").
		Set("users", sq.Expr("array_remove(users, ?::text)", uid)).
		Set("group_admins", sq.Expr("array_remove(group_admins, ?::text)", uid)).
		Set("group_name", echo.GroupName).
		Set("group_image", echo.GroupImage).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": conversationID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	return r.execUpdate(ctx, conversationID, query, args)
}

func (r *Repository) AddAdmin(ctx context.Context, conversationID, uid string, echo model.GroupEcho) error {
	query, args, err := sq.Update("conversations").
		Set("group_admins", sq.Expr(
			"CASE WHEN ?::text = ANY(group_admins) THEN group_admins ELSE array_append(group_admins, ?::text) END",
			uid, uid,
		)).
		Set("group_name", echo.GroupName).
		Set("group_image", echo.GroupImage).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": conversationID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	return r.execUpdate(ctx, conversationID, query, args)
}

func (r *Repository) TouchConversation(ctx context.Context, conversationID string) error {
	query, args, err := sq.Update("conversations").
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": conversationID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	return r.execUpdate(ctx, conversationID, query, args)
}

func (r *Repository) execUpdate(ctx context.Context, conversationID, query string, args []interface{}) error {
	res, err := r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update conversation: %v", err)
	}

	affected, err := res.RowsAffected()
	if err == nil && affected == 0 {
		return fmt.Errorf("conversation %s: %w", conversationID, model.ErrNotFound)
	}

	return nil
}

func (r *Repository) ListConversations(ctx context.Context, uid string) (model.ConversationList, error) {
	query, args, err := sq.Select(conversationColumns...).
		From("conversations").
		Where("?::text = ANY(users)", uid).
		OrderBy("updated_at DESC", "id").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var rows []conversationRow
	err = r.Chk(ctx).SelectContext(ctx, &rows, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get conversations: %v", err)
	}

	conversations := make(model.ConversationList, 0, len(rows))
	for _, row := range rows {
		c, err := row.toModel()
		if err != nil {
			return nil, err
		}
		conversations = append(conversations, c)
	}

	return conversations, nil
}

func (r *Repository) UpsertUser(ctx context.Context, user model.User) error {
	query, args, err := sq.Insert("users").
		Columns("uid", "display_name", "photo_url").
		Values(user.UID, user.DisplayName, user.PhotoURL).
		Suffix("ON CONFLICT (uid) DO UPDATE SET display_name = EXCLUDED.display_name, photo_url = EXCLUDED.photo_url").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to save user: %v", err)
	}

	return nil
}

func (r *Repository) GetUsers(ctx context.Context, uids []string) ([]model.User, error) {
	if len(uids) == 0 {
		return []model.User{}, nil
	}

	query, args, err := sq.Select("uid", "display_name", "photo_url").
		From("users").
		Where(sq.Eq{"uid": uids}).
		OrderBy("uid").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var users []model.User
	err = r.Chk(ctx).SelectContext(ctx, &users, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get users: %v", err)
	}

	return users, nil
}
