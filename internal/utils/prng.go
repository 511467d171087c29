package utils

import (
	"math/rand"
	"time"
)

// Rand — минимальный источник случайности, который нужен симуляции.
// Все броски (яйца, призыв саппортов, разброс позиций) идут через него,
// поэтому тесты могут подставить детерминированную реализацию.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// PRNGService — это обертка над стандартным генератором случайных чисел Go,
// которая позволяет использовать предсказуемый (seeded) рандом во всей игре.
type PRNGService struct {
	seed int64
	rng  *rand.Rand
}

var _ Rand = (*PRNGService)(nil)

// NewPRNGService создает новый экземпляр сервиса с указанным сидом.
// Если сид равен 0, используется текущее время.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{
		seed: seed,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// Seed возвращает фактически использованный сид (для воспроизведения партии).
func (s *PRNGService) Seed() int64 {
	return s.seed
}

// Intn возвращает случайное целое число в диапазоне [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Float64 возвращает случайное число с плавающей точкой в диапазоне [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// Roll возвращает true с вероятностью p.
func Roll(r Rand, p float64) bool {
	return r.Float64() < p
}

// RangeInt возвращает случайное целое в замкнутом диапазоне [lo, hi].
func RangeInt(r Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.Intn(hi-lo+1)
}
