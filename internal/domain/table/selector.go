package table

import (
	"cmp"
	"slices"
)

// SelectCandidates returns the bookable tables that seat partySize,
// smallest capacity first. Equal capacities keep their input order.
func SelectCandidates(partySize int, tables []*Table) ([]*Table, error) {
	if partySize <= 0 {
		return nil, ErrInvalidPartySize
	}

	candidates := make([]*Table, 0, len(tables))
	for _, t := range tables {
		if t == nil || !t.IsBookable() || !t.Seats(partySize) {
			continue
		}
		candidates = append(candidates, t)
	}

	slices.SortStableFunc(candidates, func(a, b *Table) int {
		return cmp.Compare(a.capacity, b.capacity)
	})
	return candidates, nil
}
