package utils

// Clamp ограничивает значение диапазоном [lo, hi].
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Abs возвращает модуль целого числа.
func Abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
