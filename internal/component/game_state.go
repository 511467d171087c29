package component

// GameState — фаза сессии.
type GameState int

const (
	Playing GameState = iota
	Won
	Lost
)

func (s GameState) String() string {
	switch s {
	case Playing:
		return "playing"
	case Won:
		return "won"
	case Lost:
		return "lost"
	}
	return "unknown"
}

// Terminal — партия завершена, симуляция заморожена.
func (s GameState) Terminal() bool {
	return s == Won || s == Lost
}
