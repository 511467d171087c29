package utils

// ScriptedRand отдает заранее заданные значения по очереди.
// Когда очередь пуста, Float64 возвращает 1 (ни один бросок не срабатывает),
// а Intn возвращает 0. Используется в тестах и для воспроизведения записей.
type ScriptedRand struct {
	Floats []float64
	Ints   []int
}

var _ Rand = (*ScriptedRand)(nil)

func (s *ScriptedRand) Float64() float64 {
	if len(s.Floats) == 0 {
		return 1
	}
	v := s.Floats[0]
	s.Floats = s.Floats[1:]
	return v
}

func (s *ScriptedRand) Intn(n int) int {
	if len(s.Ints) == 0 {
		return 0
	}
	v := s.Ints[0]
	s.Ints = s.Ints[1:]
	return Clamp(v, 0, n-1)
}
