// Package bridge connects game events to persistent storage: finished games
// become score rows, new records update the player's profile, and suspended
// games are kept per player.
package bridge

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/spacebattle/internal/core"
	"github.com/vovakirdan/spacebattle/internal/savegame"
	"github.com/vovakirdan/spacebattle/internal/storage"
)

// DefaultPlayer is used when no player name is known.
const DefaultPlayer = "player"

// Store is the persistence the bridge writes to.
type Store interface {
	SaveScore(gameID, player string, score int, at time.Time) (int64, error)
	PlayerHighScore(gameID, player string) (int, error)
	Put(key string, data []byte) error
	Get(key string) ([]byte, error)
	Delete(key string) error
}

// Bridge records the events of one player's games.
type Bridge struct {
	store  Store
	logger *log.Logger
	gameID string
	player string
}

// New creates a bridge for player's games of gameID. A nil logger uses the
// default logger.
func New(store Store, logger *log.Logger, gameID, player string) *Bridge {
	if logger == nil {
		logger = log.Default()
	}
	if player == "" {
		player = DefaultPlayer
	}
	return &Bridge{
		store:  store,
		logger: logger.With("game", gameID, "player", player),
		gameID: gameID,
		player: player,
	}
}

// Player returns the player name the bridge records under.
func (b *Bridge) Player() string {
	return b.player
}

// Handle records one event. Unknown events are ignored.
func (b *Bridge) Handle(ev core.Event) error {
	switch ev := ev.(type) {
	case core.GameResultEvent:
		if _, err := b.store.SaveScore(b.gameID, b.player, ev.Score, ev.Timestamp); err != nil {
			return fmt.Errorf("bridge: cannot record result: %w", err)
		}
		b.logger.Info("game over", "score", ev.Score)
	case core.HighScoreUpdatedEvent:
		if err := b.saveProfile(savegame.Profile{HighScore: ev.Score}); err != nil {
			return err
		}
		b.logger.Info("new high score", "score", ev.Score)
	}
	return nil
}

// HandleAll records events in order and returns every error joined.
func (b *Bridge) HandleAll(events []core.Event) error {
	var errs []error
	for _, ev := range events {
		if err := b.Handle(ev); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// HighScore returns the player's stored high score: the better of the saved
// profile and the best recorded game.
func (b *Bridge) HighScore() (int, error) {
	profile, err := b.loadProfile()
	if err != nil {
		return 0, err
	}
	best, err := b.store.PlayerHighScore(b.gameID, b.player)
	if err != nil {
		return 0, fmt.Errorf("bridge: cannot load high score: %w", err)
	}
	return max(profile.HighScore, best), nil
}

func (b *Bridge) loadProfile() (savegame.Profile, error) {
	data, err := b.store.Get(savegame.ProfileKey(b.player))
	if errors.Is(err, storage.ErrNotFound) {
		return savegame.Profile{}, nil
	}
	if err != nil {
		return savegame.Profile{}, fmt.Errorf("bridge: cannot load profile: %w", err)
	}
	profile, err := savegame.DecodeProfile(data)
	if err != nil {
		// A corrupt profile is rebuilt from the score table.
		b.logger.Warn("ignoring unreadable profile", "error", err)
		return savegame.Profile{}, nil
	}
	return profile, nil
}

func (b *Bridge) saveProfile(p savegame.Profile) error {
	data, err := savegame.EncodeProfile(p)
	if err != nil {
		return err
	}
	if err := b.store.Put(savegame.ProfileKey(b.player), data); err != nil {
		return fmt.Errorf("bridge: cannot save profile: %w", err)
	}
	return nil
}

// Suspend stores an encoded game for the player, replacing an older one.
func (b *Bridge) Suspend(data []byte) error {
	if err := b.store.Put(savegame.SaveKey(b.gameID, b.player), data); err != nil {
		return fmt.Errorf("bridge: cannot suspend game: %w", err)
	}
	b.logger.Info("game suspended", "bytes", len(data))
	return nil
}

// Resume loads the player's suspended game. ok is false when there is none.
func (b *Bridge) Resume() (data []byte, ok bool, err error) {
	data, err = b.store.Get(savegame.SaveKey(b.gameID, b.player))
	if errors.Is(err, storage.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("bridge: cannot resume game: %w", err)
	}
	return data, true, nil
}

// Discard deletes the player's suspended game.
func (b *Bridge) Discard() error {
	if err := b.store.Delete(savegame.SaveKey(b.gameID, b.player)); err != nil {
		return fmt.Errorf("bridge: cannot discard saved game: %w", err)
	}
	return nil
}
