package ngram

// CharProbability estimates the probability of c following ctx.
//
// The longest suffix of ctx that the model can use (at most order-1
// characters) is tried first, then progressively shorter ones. The first
// order whose context was observed answers with an additively smoothed
// estimate; orders are not blended. When no order matches, the uniform
// probability 1/AlphabetSize is returned. The result is always in (0, 1].
//
// Bytes outside the alphabet are folded onto it: uppercase letters are
// lowered and anything else is treated as the boundary symbol.
func (m *Model) CharProbability(ctx string, c byte) float64 {
	ctx = foldString(ctx)
	c = fold(c)

	maxOrder := min(len(ctx)+1, m.order)
	for j := maxOrder; j >= 1; j-- {
		nexts, total, ok := m.tables.lookup(j, ctx[len(ctx)-(j-1):])
		if !ok || total == 0 {
			continue
		}
		return smooth(nexts[c], total)
	}
	return 1.0 / AlphabetSize
}

// smooth applies add-Alpha smoothing over the full alphabet.
func smooth(count, total int) float64 {
	return (float64(count) + Alpha) / (float64(total) + Alpha*AlphabetSize)
}
