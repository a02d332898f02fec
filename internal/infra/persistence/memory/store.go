// Package memory contains the in-process implementation of the persistence layer.
// All entities live in one process-wide store guarded by a single lock.
package memory

import (
	"context"
	"maps"
	"slices"
	"sync"
	"time"

	"lawyerup/internal/domain/entity"

	"github.com/pkg/errors"
)

// state is one consistent version of every collection.
type state struct {
	users         table[*entity.User]
	requests      table[*entity.ClientRequest]
	cases         table[*entity.Case]
	chats         table[*entity.Chat]
	posts         table[*entity.Post]
	notifications table[*entity.Notification]
	news          []entity.NewsArticle
	newsFetchedAt time.Time
	transcripts   map[string][]entity.ChatMessage
}

func newState() *state {
	return &state{
		users:         newTable[*entity.User](),
		requests:      newTable[*entity.ClientRequest](),
		cases:         newTable[*entity.Case](),
		chats:         newTable[*entity.Chat](),
		posts:         newTable[*entity.Post](),
		notifications: newTable[*entity.Notification](),
		transcripts:   make(map[string][]entity.ChatMessage),
	}
}

// clone copies every collection header. Rows are shared until a writer replaces them.
func (s *state) clone() *state {
	return &state{
		users:         s.users.clone(),
		requests:      s.requests.clone(),
		cases:         s.cases.clone(),
		chats:         s.chats.clone(),
		posts:         s.posts.clone(),
		notifications: s.notifications.clone(),
		news:          slices.Clone(s.news),
		newsFetchedAt: s.newsFetchedAt,
		transcripts:   maps.Clone(s.transcripts),
	}
}

// source gives repositories access to a state, either the live store or a transaction draft.
type source interface {
	read(ctx context.Context, fn func(st *state) error) error
	write(ctx context.Context, fn func(st *state) error) error
}

// Store owns the application state.
type Store struct {
	mu sync.RWMutex
	st *state
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{st: newState()}
}

func (s *Store) read(ctx context.Context, fn func(st *state) error) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return fn(s.st)
}

// write applies fn to a draft and publishes it only when fn succeeds,
// so a failed single-repository write leaves nothing behind either.
func (s *Store) write(ctx context.Context, fn func(st *state) error) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	draft := s.st.clone()
	if err := fn(draft); err != nil {
		return err
	}
	s.st = draft

	return nil
}

// txSource runs against a draft owned by an in-flight transaction; the
// transaction already holds the store lock.
type txSource struct {
	st *state
}

func (t *txSource) read(ctx context.Context, fn func(st *state) error) error {
	return fn(t.st)
}

func (t *txSource) write(ctx context.Context, fn func(st *state) error) error {
	return fn(t.st)
}
