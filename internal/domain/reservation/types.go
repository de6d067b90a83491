package reservation

type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusSeated    Status = "seated"
	StatusCancelled Status = "cancelled"
	StatusNoShow    Status = "no_show"
	StatusCompleted Status = "completed"
)

// TerminalStatuses no longer hold a table and are ignored by conflict checks.
var TerminalStatuses = []Status{StatusCancelled, StatusNoShow, StatusCompleted}

func (s Status) String() string {
	return string(s)
}

func ParseStatus(raw string) (Status, error) {
	s := Status(raw)
	if !s.IsValid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}

func (s Status) IsValid() bool {
	switch s {
	case StatusConfirmed, StatusSeated, StatusCancelled, StatusNoShow, StatusCompleted:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	switch s {
	case StatusCancelled, StatusNoShow, StatusCompleted:
		return true
	default:
		return false
	}
}

type Source string

const (
	SourceOnline Source = "online"
	SourceStaff  Source = "staff"
)

func (s Source) String() string {
	return string(s)
}

func TerminalStatusStrings() []string {
	out := make([]string, len(TerminalStatuses))
	for i, s := range TerminalStatuses {
		out[i] = s.String()
	}
	return out
}
