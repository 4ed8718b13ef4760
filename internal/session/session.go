// Package session tracks signed-in users and everything they hold open.
package session

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/s21platform/quickchat/internal/config"
	"github.com/s21platform/quickchat/internal/model"
	"github.com/s21platform/quickchat/internal/pkg/debounce"
	"github.com/s21platform/quickchat/internal/pkg/logger"
	"github.com/s21platform/quickchat/internal/service/composer"
)

// ComposerFactory builds the composer of uid in a conversation.
type ComposerFactory func(conversationID, uid string) *composer.Composer

// Session is one signed-in user. Closing it closes every view it tracks.
type Session struct {
	ID   string
	User model.User

	store       Store
	gifs        GIFSearcher
	debouncer   *debounce.Debouncer
	newComposer ComposerFactory

	mu        sync.Mutex
	closed    bool
	views     map[string]io.Closer
	composers map[string]*composer.Composer
}

// Composer returns the session's composer for a conversation the user is a
// member of.
func (s *Session) Composer(ctx context.Context, conversationID string) (*composer.Composer, error) {
	s.mu.Lock()
	c, ok := s.composers[conversationID]
	closed := s.closed
	s.mu.Unlock()

	if closed {
		return nil, ErrClosed
	}
	if ok {
		return c, nil
	}

	if err := s.CheckMember(ctx, conversationID); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if c, ok := s.composers[conversationID]; ok {
		return c, nil
	}
	c = s.newComposer(conversationID, s.User.UID)
	s.composers[conversationID] = c

	return c, nil
}

// CheckMember fails with model.ErrNotFound unless the user belongs to the
// conversation.
func (s *Session) CheckMember(ctx context.Context, conversationID string) error {
	conversation, err := s.store.GetConversation(ctx, conversationID)
	if err != nil {
		return model.NetworkError("get conversation", err)
	}
	if !conversation.IsMember(s.User.UID) {
		return fmt.Errorf("conversation %s: %w", conversationID, model.ErrNotFound)
	}

	return nil
}

// Track takes ownership of view and returns a handle for Release. A closed
// session closes view right away.
func (s *Session) Track(view io.Closer) (string, error) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		_ = view.Close()
		return "", ErrClosed
	}
	handle := uuid.NewString()
	s.views[handle] = view
	s.mu.Unlock()

	return handle, nil
}

// Release closes a tracked view. Unknown handles are ignored.
func (s *Session) Release(handle string) error {
	s.mu.Lock()
	view, ok := s.views[handle]
	delete(s.views, handle)
	s.mu.Unlock()

	if !ok {
		return nil
	}
	return view.Close()
}

// Views returns the number of tracked views.
func (s *Session) Views() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.views)
}

// SearchGIFs queries the GIF catalog once typing pauses. Calls overtaken by a
// newer one return debounce.ErrSuperseded without querying.
func (s *Session) SearchGIFs(ctx context.Context, query string) ([]model.GIF, error) {
	if err := s.debouncer.Wait(ctx); err != nil {
		return nil, err
	}

	gifs, err := s.gifs.Search(ctx, query)
	if err != nil {
		return nil, model.NetworkError("search gifs", err)
	}

	return gifs, nil
}

// Close releases every tracked view and drops pending searches.
func (s *Session) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	views := s.views
	s.views = map[string]io.Closer{}
	s.composers = map[string]*composer.Composer{}
	s.mu.Unlock()

	s.debouncer.Cancel()

	var firstErr error
	for _, view := range views {
		if err := view.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	return firstErr
}

type Manager struct {
	identity    IdentityProvider
	store       Store
	tokens      TokenIssuer
	gifs        GIFSearcher
	newComposer ComposerFactory
	gifDelay    time.Duration

	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewManager(
	identity IdentityProvider,
	store Store,
	tokens TokenIssuer,
	gifs GIFSearcher,
	newComposer ComposerFactory,
	gifDelay time.Duration,
) *Manager {
	return &Manager{
		identity:    identity,
		store:       store,
		tokens:      tokens,
		gifs:        gifs,
		newComposer: newComposer,
		gifDelay:    gifDelay,
		sessions:    make(map[string]*Session),
	}
}

type SignInResult struct {
	Session   *Session
	Token     string
	ExpiresAt int64
}

// SignIn authenticates through the identity provider, saves the user record
// and opens a session for it.
func (m *Manager) SignIn(ctx context.Context, provider model.ProviderKind) (*SignInResult, error) {
	log := logger.FromContext(ctx, config.KeyLogger)
	log.AddFuncName("SignIn")

	user, err := m.identity.SignIn(ctx, provider)
	if err != nil {
		log.Error(fmt.Sprintf("failed to sign in with %s: %v", provider, err))
		return nil, model.NetworkError("sign in", err)
	}

	if err := m.store.UpsertUser(ctx, *user); err != nil {
		log.Error(fmt.Sprintf("failed to save user %s: %v", user.UID, err))
		return nil, model.NetworkError("save user", err)
	}

	s := &Session{
		ID:          uuid.NewString(),
		User:        *user,
		store:       m.store,
		gifs:        m.gifs,
		debouncer:   debounce.New(m.gifDelay),
		newComposer: m.newComposer,
		views:       make(map[string]io.Closer),
		composers:   make(map[string]*composer.Composer),
	}

	token, expiresAt, err := m.tokens.GenerateSessionToken(user.UID, s.ID)
	if err != nil {
		log.Error(fmt.Sprintf("failed to issue token: %v", err))
		return nil, err
	}

	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()

	log.Info(fmt.Sprintf("user %s signed in", user.UID))

	return &SignInResult{Session: s, Token: token, ExpiresAt: expiresAt}, nil
}

// Get returns the open session id belonging to uid.
func (m *Manager) Get(id, uid string) (*Session, error) {
	m.mu.RLock()
	s, ok := m.sessions[id]
	m.mu.RUnlock()

	if !ok || s.User.UID != uid {
		return nil, fmt.Errorf("session %s: %w", id, model.ErrNotFound)
	}

	return s, nil
}

// SignOut closes the session and forgets it.
func (m *Manager) SignOut(id string) error {
	m.mu.Lock()
	s, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()

	if !ok {
		return nil
	}
	return s.Close()
}

// Close signs every session out.
func (m *Manager) Close() {
	m.mu.Lock()
	sessions := m.sessions
	m.sessions = make(map[string]*Session)
	m.mu.Unlock()

	for _, s := range sessions {
		_ = s.Close()
	}
}
