package service

import (
	"errors"
	"strings"

	"github.com/portfolio/internal/db"
)

// Direction is a single-step move within an ordered collection.
type Direction string

const (
	MoveUp   Direction = "up"
	MoveDown Direction = "down"
)

var (
	// ErrPositionOutOfRange is returned when the index does not address a row.
	ErrPositionOutOfRange = errors.New("position out of range")
	// ErrInvalidDirection is returned for anything other than up or down.
	ErrInvalidDirection = errors.New("invalid move direction")
)

// ParseDirection normalizes user input into a Direction.
func ParseDirection(raw string) (Direction, error) {
	switch Direction(strings.ToLower(strings.TrimSpace(raw))) {
	case MoveUp:
		return MoveUp, nil
	case MoveDown:
		return MoveDown, nil
	default:
		return "", ErrInvalidDirection
	}
}

// MoveAdjacent moves items[index] one step in direction by exchanging its
// sort position with the neighbor's. When the positions are not strictly
// increasing (ties left behind by a delete followed by a create) every row is
// first renumbered to its list index, so the move always takes effect.
// It returns the reordered copy and every row whose position changed. At a
// boundary the copy is returned unchanged with no changed rows. The input
// slice is never modified.
func MoveAdjacent[T any, P interface {
	*T
	db.Sortable
}](items []T, index int, direction Direction) ([]T, []T, error) {
	if index < 0 || index >= len(items) {
		return nil, nil, ErrPositionOutOfRange
	}

	var neighbor int
	switch direction {
	case MoveUp:
		neighbor = index - 1
	case MoveDown:
		neighbor = index + 1
	default:
		return nil, nil, ErrInvalidDirection
	}

	out := append([]T(nil), items...)
	if neighbor < 0 || neighbor >= len(out) {
		return out, nil, nil
	}

	if !strictlyIncreasing[T, P](out) {
		for i := range out {
			P(&out[i]).SetPosition(i)
		}
	}

	moving, other := P(&out[index]), P(&out[neighbor])
	movingPos, otherPos := moving.Position(), other.Position()
	moving.SetPosition(otherPos)
	other.SetPosition(movingPos)
	out[index], out[neighbor] = out[neighbor], out[index]

	before := make(map[string]int, len(items))
	for i := range items {
		row := P(&items[i])
		before[row.Key()] = row.Position()
	}
	var changed []T
	for i := range out {
		row := P(&out[i])
		if before[row.Key()] != row.Position() {
			changed = append(changed, out[i])
		}
	}
	return out, changed, nil
}

func strictlyIncreasing[T any, P interface {
	*T
	db.Sortable
}](items []T) bool {
	for i := 1; i < len(items); i++ {
		if P(&items[i]).Position() <= P(&items[i-1]).Position() {
			return false
		}
	}
	return true
}
