package game

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Repo.Load when no session is stored for
// the requested date.
var ErrNotFound = errors.New("game: session not found")

// Repo persists daily session state. Implementations must treat Save
// as a full overwrite of the entry for the state's date and must
// return the stored bytes decoded field-for-field on Load; a Load of a
// missing date returns ErrNotFound.
type Repo interface {
	Load(ctx context.Context, dateKey string) (*State, error)
	Save(ctx context.Context, state *State) error
	List(ctx context.Context) ([]*State, error)
	Delete(ctx context.Context, dateKey string) error
	DeleteAll(ctx context.Context) error
}
