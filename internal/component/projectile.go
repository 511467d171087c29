// internal/component/projectile.go
package component

// Projectile — пуля игрока или яйцо врага. Летит строго по вертикали.
type Projectile struct {
	Rect
	VY int // отрицательная скорость — вверх (пули), положительная — вниз (яйца)
}

// Step сдвигает снаряд на один кадр.
func (p *Projectile) Step() {
	p.Y += p.VY
}

// StepAll двигает снаряды и возвращает только те, что остались в арене.
// Фильтр пишет в тот же backing array, поэтому проход идет по снимку длины
// и ни один элемент не пропускается и не обрабатывается дважды.
func StepAll(ps []Projectile, arenaHeight int) []Projectile {
	kept := ps[:0]
	for i := range ps {
		p := ps[i]
		p.Step()
		if p.VY < 0 && p.Y < 0 {
			continue
		}
		if p.VY > 0 && p.Y > arenaHeight {
			continue
		}
		kept = append(kept, p)
	}
	return kept
}
