package random

import "math/rand/v2"

// Source - источник случайных чисел для барабанов.
// IntN возвращает число в полуинтервале [0, n).
type Source interface {
	IntN(n int) int
}

type global struct{}

// NewDefault возвращает источник на общем генераторе math/rand/v2
func NewDefault() Source {
	return global{}
}

func (global) IntN(n int) int {
	return rand.IntN(n)
}

// Scripted отдаёт заранее заданные значения по кругу.
// Каждое значение приводится к [0, n).
type Scripted struct {
	values []int
	pos    int
}

func NewScripted(values ...int) *Scripted {
	return &Scripted{values: values}
}

func (s *Scripted) IntN(n int) int {
	if len(s.values) == 0 || n <= 0 {
		return 0
	}
	v := s.values[s.pos%len(s.values)]
	s.pos++

	v %= n
	if v < 0 {
		v += n
	}
	return v
}

// Draws - сколько значений уже выдано
func (s *Scripted) Draws() int {
	return s.pos
}
