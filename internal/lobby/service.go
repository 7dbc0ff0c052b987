// internal/lobby/service.go
package lobby

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/sirupsen/logrus"

	"github.com/bunker-game/bunker-service/internal/models"
	"github.com/bunker-game/bunker-service/internal/notify"
	"github.com/bunker-game/bunker-service/internal/store"
)

// maxCodeAttempts bounds the create retry loop on code collisions.
const maxCodeAttempts = 5

// Service implements the lobby session lifecycle: create, join, leave,
// game start with card assignment, and reveal tracking. Every mutation
// is a read-modify-write against the shared store, serialized per
// lobby code; fan-out notifications are sent after the store writes.
type Service struct {
	reg       *Registry
	notifier  notify.Notifier
	scenarios []models.Scenario
	log       *logrus.Logger
	locks     *codeLocks
}

// NewService wires the service from its injected dependencies. The
// scenario set must be non-empty; the loader guarantees that at startup.
func NewService(st store.Store, n notify.Notifier, scenarios []models.Scenario, logger *logrus.Logger) *Service {
	return &Service{
		reg:       NewRegistry(st),
		notifier:  n,
		scenarios: scenarios,
		log:       logger,
		locks:     newCodeLocks(),
	}
}

// Registry exposes the underlying record access, mainly for read paths
// and tests that need a lobby with a known code.
func (s *Service) Registry() *Registry { return s.reg }

// GetByUser resolves the caller's current lobby.
func (s *Service) GetByUser(ctx context.Context, userID int64) (*models.Lobby, error) {
	return s.reg.GetByUser(ctx, userID)
}

// Create builds a new lobby owned by the requester. On a code
// collision it retries with a fresh code a bounded number of times;
// the registry itself never retries.
func (s *Service) Create(ctx context.Context, ownerID int64, username string) (*models.Lobby, error) {
	var err error
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		l := &models.Lobby{
			Code:    GenerateCode(),
			Owner:   models.Player{UserID: ownerID, Username: username},
			Players: []models.Player{{UserID: ownerID, Username: username}},
		}

		mu := s.locks.acquire(l.Code)
		err = s.reg.Create(ctx, l)
		mu.Unlock()

		if err == nil {
			s.log.WithFields(logrus.Fields{"code": l.Code, "owner": ownerID}).Info("lobby created")
			return l, nil
		}
		if KindOf(err) != KindBadRequest {
			return nil, err
		}
	}
	return nil, err
}

// Join adds the user to the lobby with the given code and notifies the
// other members. The user must not be in any lobby yet.
func (s *Service) Join(ctx context.Context, userID int64, username, code string) (*models.Lobby, error) {
	mu := s.locks.acquire(code)
	defer mu.Unlock()

	l, err := s.reg.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	existing, err := s.reg.UserCode(ctx, userID)
	switch {
	case err == nil && existing == code:
		return nil, badRequest(msgAlreadyJoined)
	case err == nil:
		return nil, badRequest(msgAlreadyInLobby)
	case KindOf(err) != KindNotFound:
		return nil, err
	}

	l.Players = append(l.Players, models.Player{UserID: userID, Username: username})
	if err := s.reg.Save(ctx, l); err != nil {
		return nil, err
	}
	if err := s.reg.SetUserCode(ctx, userID, code); err != nil {
		return nil, err
	}

	s.notifyOthers(ctx, l, userID, fmt.Sprintf("%s присоединился к лобби", username))
	return l, nil
}

// Leave removes the user from their current lobby. Ownership moves to
// the earliest-joined remaining player; the last player leaving
// deletes the lobby record entirely. The user's index entry is always
// cleared on success.
func (s *Service) Leave(ctx context.Context, userID int64, username string) (*models.Lobby, error) {
	code, err := s.reg.UserCode(ctx, userID)
	if err != nil {
		return nil, err
	}

	mu := s.locks.acquire(code)
	defer mu.Unlock()

	l, err := s.reg.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	// Re-check under the lock: a concurrent leave/join may have moved us.
	current, err := s.reg.UserCode(ctx, userID)
	if err != nil {
		return nil, err
	}
	if current != l.Code {
		return nil, badRequest(msgWrongLobby)
	}

	for i := range l.Players {
		if l.Players[i].UserID == userID {
			l.Players = append(l.Players[:i], l.Players[i+1:]...)
			break
		}
	}

	if l.Owner.UserID == userID && len(l.Players) > 0 {
		l.Owner = l.Players[0]
	}

	if len(l.Players) == 0 {
		if err := s.reg.Delete(ctx, code); err != nil {
			return nil, err
		}
		s.locks.forget(code)
	} else {
		if err := s.reg.Save(ctx, l); err != nil {
			return nil, err
		}
	}

	if err := s.reg.ClearUserCode(ctx, userID); err != nil {
		return nil, err
	}

	s.notifyOthers(ctx, l, userID, fmt.Sprintf("%s вышел из лобби", username))
	return l, nil
}

// StartGame flips the started flag, notifies the members, then picks a
// random scenario and assigns cards in a second independent write. The
// two writes are deliberately not atomic; a failure between them
// leaves started=true with no cards, which every read path tolerates.
func (s *Service) StartGame(ctx context.Context, requesterID int64) (*models.Lobby, error) {
	code, err := s.reg.UserCode(ctx, requesterID)
	if err != nil {
		return nil, err
	}

	mu := s.locks.acquire(code)
	defer mu.Unlock()

	l, err := s.reg.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if l.Owner.UserID != requesterID {
		return nil, forbidden(msgOnlyOwnerStarts)
	}

	l.Started = true
	if err := s.reg.Save(ctx, l); err != nil {
		return nil, err
	}

	s.notifyOthers(ctx, l, requesterID, "Игра началась!")

	sc := s.scenarios[rand.IntN(len(s.scenarios))]
	assignCards(l, sc)
	if err := s.reg.Save(ctx, l); err != nil {
		s.log.WithError(err).WithField("code", l.Code).Error("card assignment write failed; lobby started without cards")
		return nil, err
	}

	s.log.WithFields(logrus.Fields{"code": l.Code, "scenario": sc.ID}).Info("game started")
	return l, nil
}

// RevealValue marks one of the caller's card names as disclosed and
// notifies the other members. It reports false without error when the
// player or card is absent or the name is already revealed; reveal is
// idempotent.
func (s *Service) RevealValue(ctx context.Context, userID int64, name string) (bool, error) {
	code, err := s.reg.UserCode(ctx, userID)
	if err != nil {
		if KindOf(err) == KindNotFound {
			return false, nil
		}
		return false, err
	}

	mu := s.locks.acquire(code)
	defer mu.Unlock()

	l, err := s.reg.GetByCode(ctx, code)
	if err != nil {
		if KindOf(err) == KindNotFound {
			return false, nil
		}
		return false, err
	}

	p := l.FindPlayer(userID)
	if p == nil || p.Cards == nil {
		return false, nil
	}
	if p.Cards.Revealed(name) {
		return false, nil
	}

	p.Cards.RevealedValues = append(p.Cards.RevealedValues, name)
	if err := s.reg.Save(ctx, l); err != nil {
		return false, err
	}

	s.notifyOthers(ctx, l, userID, fmt.Sprintf("%s раскрыл %s", p.Username, name))
	return true, nil
}

// notifyOthers delivers text to every current member except the actor.
// Each attempt is independent; a failed delivery is logged and never
// aborts the operation or the rest of the batch.
func (s *Service) notifyOthers(ctx context.Context, l *models.Lobby, actorID int64, text string) {
	for _, p := range l.Players {
		if p.UserID == actorID {
			continue
		}
		if err := s.notifier.Notify(ctx, p.UserID, text); err != nil {
			s.log.WithError(err).WithFields(logrus.Fields{
				"code":    l.Code,
				"user_id": p.UserID,
			}).Warn("notification delivery failed")
		}
	}
}
