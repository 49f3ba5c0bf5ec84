package aim

import "fmt"

// Op is a mutation applied to a stored aim.
type Op string

const (
	OpDelete          Op = "delete"
	OpSetFavorited    Op = "set_favorited"
	OpSetAccomplished Op = "set_accomplished"
)

// Command is the single mutation entry point for stored aims.
// Value is the new flag for the set_* operations and ignored for delete.
type Command struct {
	Op    Op
	ID    int64
	Value bool
}

// DeleteCommand removes an aim.
func DeleteCommand(id int64) Command {
	return Command{Op: OpDelete, ID: id}
}

// FavoriteCommand sets the favorite flag of an aim.
func FavoriteCommand(id int64, favorited bool) Command {
	return Command{Op: OpSetFavorited, ID: id, Value: favorited}
}

// AccomplishCommand sets the accomplished flag of an aim.
func AccomplishCommand(id int64, accomplished bool) Command {
	return Command{Op: OpSetAccomplished, ID: id, Value: accomplished}
}

// Validate checks that the command can be applied.
func (c Command) Validate() error {
	if c.ID == 0 {
		return ErrMissingID
	}
	switch c.Op {
	case OpDelete, OpSetFavorited, OpSetAccomplished:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownOp, c.Op)
	}
}

// Apply applies a flag operation to a. Delete is a no-op here; stores
// handle removal themselves.
func (c Command) Apply(a *Aim) error {
	if err := c.Validate(); err != nil {
		return err
	}
	switch c.Op {
	case OpSetFavorited:
		a.Favorited = c.Value
	case OpSetAccomplished:
		a.Accomplished = c.Value
		if !c.Value {
			// Favorites are limited to accomplished aims.
			a.Favorited = false
		}
	}
	return nil
}

// String describes the command for logs.
func (c Command) String() string {
	if c.Op == OpDelete {
		return fmt.Sprintf("%s #%d", c.Op, c.ID)
	}
	return fmt.Sprintf("%s #%d=%t", c.Op, c.ID, c.Value)
}
