// Package savegame encodes engine save states and player profiles with
// MessagePack for the storage layer.
package savegame

import (
	"errors"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/vovakirdan/spacebattle/internal/shooter"
)

// ErrVersion is returned when a save was written by an incompatible version.
var ErrVersion = errors.New("savegame: unsupported version")

// Profile is the persisted per-player record.
type Profile struct {
	HighScore int `msgpack:"highScore"`
}

// Encode serializes a save state.
func Encode(st shooter.SaveState) ([]byte, error) {
	data, err := msgpack.Marshal(&st)
	if err != nil {
		return nil, fmt.Errorf("savegame: cannot encode state: %w", err)
	}
	return data, nil
}

// Decode parses a save state written by Encode.
func Decode(data []byte) (shooter.SaveState, error) {
	var st shooter.SaveState
	if err := msgpack.Unmarshal(data, &st); err != nil {
		return shooter.SaveState{}, fmt.Errorf("savegame: cannot decode state: %w", err)
	}
	if st.Version != shooter.SaveVersion {
		return shooter.SaveState{}, fmt.Errorf("%w: %d", ErrVersion, st.Version)
	}
	return st, nil
}

// EncodeProfile serializes a player profile.
func EncodeProfile(p Profile) ([]byte, error) {
	data, err := msgpack.Marshal(&p)
	if err != nil {
		return nil, fmt.Errorf("savegame: cannot encode profile: %w", err)
	}
	return data, nil
}

// DecodeProfile parses a player profile. Empty data is an empty profile.
func DecodeProfile(data []byte) (Profile, error) {
	var p Profile
	if len(data) == 0 {
		return p, nil
	}
	if err := msgpack.Unmarshal(data, &p); err != nil {
		return Profile{}, fmt.Errorf("savegame: cannot decode profile: %w", err)
	}
	return p, nil
}

// SaveKey returns the storage key of a player's suspended game of gameID.
// Each game mode keeps its own save.
func SaveKey(gameID, player string) string {
	return "save_" + gameID + "_" + player
}

// ProfileKey returns the storage key of a player's profile.
func ProfileKey(player string) string {
	return "player_" + player
}
