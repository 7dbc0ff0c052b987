// internal/store/store.go
package store

import (
	"context"
	"errors"
	"strconv"
)

// ErrNotFound is returned by Get when the key holds no value.
var ErrNotFound = errors.New("store: key not found")

// Store is the shared key-value adapter: JSON-serialized values over
// string keys. The backing store offers no atomic multi-key operations,
// so every caller owns its own read-modify-write consistency.
type Store interface {
	// Get deserializes the value at key into dest, or returns ErrNotFound.
	Get(ctx context.Context, key string, dest interface{}) error
	// Set serializes value to JSON and overwrites key whole.
	Set(ctx context.Context, key string, value interface{}) error
	// Delete removes keys. It is key-only; there is no value-matched delete.
	Delete(ctx context.Context, keys ...string) error
	// Close releases the underlying client.
	Close() error
}

const (
	lobbyKeyPrefix     = "lobby:"
	userLobbyKeyPrefix = "user_lobby:"
)

// LobbyKey is the record key for a lobby, keyed by its code.
func LobbyKey(code string) string {
	return lobbyKeyPrefix + code
}

// UserLobbyKey is the index key mapping a user to their lobby code.
func UserLobbyKey(userID int64) string {
	return userLobbyKeyPrefix + strconv.FormatInt(userID, 10)
}
