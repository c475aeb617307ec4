package slot

const (
	// Множитель за три одинаковых символа, умножается ещё на (символ + 1)
	threeOfAKindMultiplier = 10
	// Множитель за пару
	pairMultiplier = 2
)

// CalculateWinnings считает выигрыш по текущим барабанам и ставке.
// Правила проверяются по порядку, первое совпадение выигрывает:
// тройка всегда совпадает и с правилом пары, поэтому проверяется первой.
func (s *serv) CalculateWinnings() int {
	r := s.reelValues

	// Три одинаковых: старшие символы платят больше
	if r[0] == r[1] && r[1] == r[2] {
		return s.betAmount * (r[0] + 1) * threeOfAKindMultiplier
	}

	// Пара
	if r[0] == r[1] || r[1] == r[2] || r[0] == r[2] {
		return s.betAmount * pairMultiplier
	}

	return 0
}

func (s *serv) CheckWin() bool {
	return s.CalculateWinnings() > 0
}
