package component

// Health — компонент здоровья с верхней и нижней границей.
type Health struct {
	Value int
	Max   int
}

// Damage уменьшает здоровье, не опуская его ниже нуля.
func (h *Health) Damage(amount int) {
	h.Value -= amount
	if h.Value < 0 {
		h.Value = 0
	}
}

// Dead — здоровье исчерпано.
func (h Health) Dead() bool {
	return h.Value <= 0
}
