// Package session implements server-side admin sessions: an opaque session
// record in Redis with a 24-hour TTL, referenced by id from a signed token.
// Expiry is enforced here, not by the client.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

// TTL is the session lifetime. A token older than this is treated exactly
// like no token at all.
const TTL = 24 * time.Hour

var ErrNotFound = errors.New("session not found or expired")

type Session struct {
	AdminID   uint      `json:"admin_id"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	LoginTime time.Time `json:"login_time"`
}

type Store struct {
	rdb *redis.Client
}

func NewStore(rdb *redis.Client) *Store {
	return &Store{rdb: rdb}
}

func key(id string) string {
	return "admin_session:" + id
}

// Create persists a new session and returns its id.
func (s *Store) Create(ctx context.Context, sess Session) (string, error) {
	id := uuid.NewString()

	b, err := json.Marshal(sess)
	if err != nil {
		return "", err
	}

	if err := s.rdb.Set(ctx, key(id), b, TTL).Err(); err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) Get(ctx context.Context, id string) (*Session, error) {
	b, err := s.rdb.Get(ctx, key(id)).Bytes()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var sess Session
	if err := json.Unmarshal(b, &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

// Delete revokes a session. Deleting an absent session is not an error.
func (s *Store) Delete(ctx context.Context, id string) error {
	return s.rdb.Del(ctx, key(id)).Err()
}
