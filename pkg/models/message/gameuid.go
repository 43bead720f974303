package message

import "github.com/google/uuid"

// GameUid identifies a session or a self-play game.
type GameUid string

func NewGameUid() GameUid {
	return GameUid(uuid.New().String())
}

func (g GameUid) Valid() bool {
	_, err := uuid.Parse(string(g))
	return err == nil
}
