// Copyright (C) 2025 codexprt.dev <team@codexprt.dev>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/codexprt-cs-guide-hackathon-project/codexprt/backend/models"
)

const (
	// Sessions are ephemeral; a snapshot that has not been touched for a
	// day belongs to a room nobody is coming back to.
	SnapshotTTL = 24 * time.Hour

	// Redis key prefixes
	sessionPrefix = "collab:session:" // collab:session:{sessionId} - full snapshot
	eventsPrefix  = "collab:events:"  // collab:events:{sessionId} - pubsub channel
)

// SessionStore mirrors relay session state into Redis. The in-memory hub
// stays authoritative while the process runs; the mirror answers snapshot
// reads after a restart and feeds external subscribers via pubsub.
type SessionStore struct {
	rdb *redis.Client
	ctx context.Context
}

func NewSessionStore(rdb *redis.Client) *SessionStore {
	return &SessionStore{
		rdb: rdb,
		ctx: context.Background(),
	}
}

// SaveSnapshot overwrites the stored snapshot and refreshes its TTL.
func (s *SessionStore) SaveSnapshot(session models.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	key := sessionPrefix + session.ID
	if err := s.rdb.Set(s.ctx, key, data, SnapshotTTL).Err(); err != nil {
		return fmt.Errorf("failed to store session snapshot: %w", err)
	}
	return nil
}

// GetSnapshot returns nil (not an error) when no snapshot exists.
func (s *SessionStore) GetSnapshot(sessionID string) (*models.Session, error) {
	data, err := s.rdb.Get(s.ctx, sessionPrefix+sessionID).Result()
	if err == redis.Nil {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get session snapshot: %w", err)
	}

	var session models.Session
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		// Corrupt snapshot, treat as absent
		return nil, nil
	}
	return &session, nil
}

func (s *SessionStore) DeleteSnapshot(sessionID string) error {
	return s.rdb.Del(s.ctx, sessionPrefix+sessionID).Err()
}

// PublishEvent forwards a relay envelope to the session's pubsub channel for
// external consumers (dashboards, future relay peers).
func (s *SessionStore) PublishEvent(sessionID string, payload []byte) error {
	return s.rdb.Publish(s.ctx, eventsPrefix+sessionID, payload).Err()
}

// SubscribeEvents subscribes to the event stream of one session. The channel
// closes once the returned cancel function is called.
func (s *SessionStore) SubscribeEvents(sessionID string) (<-chan []byte, func()) {
	sub := s.rdb.Subscribe(s.ctx, eventsPrefix+sessionID)
	events := make(chan []byte)

	go func() {
		defer close(events)
		for msg := range sub.Channel() {
			events <- []byte(msg.Payload)
		}
	}()

	return events, func() { sub.Close() }
}
