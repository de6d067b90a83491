package table

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrEmptyLabel       = errors.New("table label cannot be empty")
	ErrInvalidCapacity  = errors.New("table capacity must be positive")
	ErrInvalidPartySize = errors.New("party size must be positive")
)

// ActiveState keeps "explicitly inactive" apart from "no opinion".
type ActiveState int

const (
	ActiveUnspecified ActiveState = iota
	ActiveYes
	ActiveNo
)

// ActiveStateFromPtr maps a nullable flag: nil is Unspecified.
func ActiveStateFromPtr(b *bool) ActiveState {
	switch {
	case b == nil:
		return ActiveUnspecified
	case *b:
		return ActiveYes
	default:
		return ActiveNo
	}
}

// IsEffective treats everything except an explicit Inactive as active.
func (s ActiveState) IsEffective() bool {
	return s != ActiveNo
}

func (s ActiveState) String() string {
	switch s {
	case ActiveYes:
		return "active"
	case ActiveNo:
		return "inactive"
	default:
		return "unspecified"
	}
}

type Table struct {
	id           uuid.UUID
	locationID   uuid.UUID
	seatingMapID uuid.UUID
	label        string
	capacity     int
	active       ActiveState
	mapActive    ActiveState
}

func NewTable(id, locationID, seatingMapID uuid.UUID, label string, capacity int, active, mapActive ActiveState) (*Table, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return nil, ErrEmptyLabel
	}
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	return &Table{
		id:           id,
		locationID:   locationID,
		seatingMapID: seatingMapID,
		label:        label,
		capacity:     capacity,
		active:       active,
		mapActive:    mapActive,
	}, nil
}

// IsBookable requires both the table and its seating map to be effectively active.
func (t *Table) IsBookable() bool {
	return t.active.IsEffective() && t.mapActive.IsEffective()
}

func (t *Table) Seats(partySize int) bool {
	return t.capacity >= partySize
}

func (t *Table) ID() uuid.UUID           { return t.id }
func (t *Table) LocationID() uuid.UUID   { return t.locationID }
func (t *Table) SeatingMapID() uuid.UUID { return t.seatingMapID }
func (t *Table) Label() string           { return t.label }
func (t *Table) Capacity() int           { return t.capacity }
func (t *Table) Active() ActiveState     { return t.active }
func (t *Table) MapActive() ActiveState  { return t.mapActive }
