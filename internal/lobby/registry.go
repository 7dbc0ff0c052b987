// internal/lobby/registry.go
package lobby

import (
	"context"
	"errors"

	"github.com/bunker-game/bunker-service/internal/models"
	"github.com/bunker-game/bunker-service/internal/store"
)

// Registry owns the canonical lobby-by-code records and the derived
// user→code index. It performs single-record round trips only; callers
// (the Service) serialize multi-step cycles per code.
type Registry struct {
	store store.Store
}

// NewRegistry wraps the given store.
func NewRegistry(st store.Store) *Registry {
	return &Registry{store: st}
}

// GetByCode loads a lobby record, or fails with NotFound.
func (r *Registry) GetByCode(ctx context.Context, code string) (*models.Lobby, error) {
	var l models.Lobby
	err := r.store.Get(ctx, store.LobbyKey(code), &l)
	if errors.Is(err, store.ErrNotFound) {
		return nil, notFound(msgLobbyNotFound)
	}
	if err != nil {
		return nil, internal(err)
	}
	return &l, nil
}

// UserCode resolves the code of the lobby the user belongs to, or
// fails with NotFound if the user has no recorded lobby.
func (r *Registry) UserCode(ctx context.Context, userID int64) (string, error) {
	var code string
	err := r.store.Get(ctx, store.UserLobbyKey(userID), &code)
	if errors.Is(err, store.ErrNotFound) {
		return "", notFound(msgUserNotInLobby)
	}
	if err != nil {
		return "", internal(err)
	}
	return code, nil
}

// GetByUser resolves the user's lobby through the index. A stale index
// entry pointing at a deleted lobby is reported as NotFound and
// opportunistically cleaned up.
func (r *Registry) GetByUser(ctx context.Context, userID int64) (*models.Lobby, error) {
	code, err := r.UserCode(ctx, userID)
	if err != nil {
		return nil, err
	}
	l, err := r.GetByCode(ctx, code)
	if KindOf(err) == KindNotFound {
		// Self-healing is best-effort; the read path is correct without it.
		_ = r.store.Delete(ctx, store.UserLobbyKey(userID))
		return nil, notFound(msgUserNotInLobby)
	}
	if err != nil {
		return nil, err
	}
	return l, nil
}

// Create writes a brand-new lobby record and its owner's index entry.
// It fails with BadRequest if the code is already taken; it does not
// retry with a new code, that is the caller's call.
func (r *Registry) Create(ctx context.Context, l *models.Lobby) error {
	_, err := r.GetByCode(ctx, l.Code)
	if err == nil {
		return badRequest(msgCodeTaken)
	}
	if KindOf(err) != KindNotFound {
		return err
	}

	if err := r.Save(ctx, l); err != nil {
		return err
	}
	return r.SetUserCode(ctx, l.Owner.UserID, l.Code)
}

// Save overwrites the full lobby record.
func (r *Registry) Save(ctx context.Context, l *models.Lobby) error {
	if err := r.store.Set(ctx, store.LobbyKey(l.Code), l); err != nil {
		return internal(err)
	}
	return nil
}

// Delete removes the lobby record entirely.
func (r *Registry) Delete(ctx context.Context, code string) error {
	if err := r.store.Delete(ctx, store.LobbyKey(code)); err != nil {
		return internal(err)
	}
	return nil
}

// SetUserCode records the user→code index entry.
func (r *Registry) SetUserCode(ctx context.Context, userID int64, code string) error {
	if err := r.store.Set(ctx, store.UserLobbyKey(userID), code); err != nil {
		return internal(err)
	}
	return nil
}

// ClearUserCode removes the user's index entry. Key-only delete.
func (r *Registry) ClearUserCode(ctx context.Context, userID int64) error {
	if err := r.store.Delete(ctx, store.UserLobbyKey(userID)); err != nil {
		return internal(err)
	}
	return nil
}
