package reservation

// Booked is an existing reservation as seen by the conflict check.
type Booked struct {
	Slot            Slot
	DurationMinutes int
	Status          Status
}

func (b Booked) Interval() (Interval, error) {
	return b.Slot.Interval(minutes(b.DurationMinutes))
}

// Conflicts reports whether requested overlaps any non-terminal booking.
// Bookings with an unusable duration cannot occupy the table and are skipped.
func Conflicts(requested Interval, existing []Booked) bool {
	for _, b := range existing {
		if b.Status.IsTerminal() {
			continue
		}
		iv, err := b.Interval()
		if err != nil {
			continue
		}
		if requested.Overlaps(iv) {
			return true
		}
	}
	return false
}
