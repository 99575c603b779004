package core

// Mode defines the traversal strategy for a playlist.
type Mode int

const (
	ModeSequential Mode = iota // authoring order
	ModeRandom                 // shuffled order
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeRandom:
		return "random"
	default:
		return "sequential"
	}
}

// ParseMode converts a string to a Mode. Unrecognized values fall back
// to sequential.
func ParseMode(s string) Mode {
	switch s {
	case "random", "shuffle", "shuffled":
		return ModeRandom
	default:
		return ModeSequential
	}
}
