// internal/component/player.go
package component

// Mana копится за убийства и целиком тратится на лазер.
type Mana struct {
	Value int
	Max   int
}

// Add прибавляет ману с ограничением сверху и возвращает фактический прирост.
func (m *Mana) Add(amount int) int {
	before := m.Value
	m.Value += amount
	if m.Value > m.Max {
		m.Value = m.Max
	}
	return m.Value - before
}

// Full — мана накоплена полностью.
func (m Mana) Full() bool {
	return m.Value >= m.Max
}

// Laser хранит оставшееся время луча в кадрах. Ноль — луч выключен.
type Laser struct {
	Remaining int
}

func (l Laser) Active() bool {
	return l.Remaining > 0
}
