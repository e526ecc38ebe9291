package modes

type Mode uint8

const (
	ModeProduction Mode = iota + 1
	ModeDevelopment
)

func (m Mode) String() string {
	switch m {
	case ModeProduction:
		return "production"
	case ModeDevelopment:
		return "development"
	}
	return "unknown"
}

// Interactive reports whether the mode may touch the user's terminal and system services.
func (m Mode) Interactive() bool {
	return m == ModeProduction
}
