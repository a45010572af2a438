package ngram

// countTable holds the per-order context statistics.
// Index j of counts and totals belongs to order j; order 0 has no table.
type countTable struct {
	order  int
	counts []map[string]map[byte]int
	totals []map[string]int
}

func newCountTable(order int) *countTable {
	t := &countTable{
		order:  order,
		counts: make([]map[string]map[byte]int, order+1),
		totals: make([]map[string]int, order+1),
	}
	for j := 1; j <= order; j++ {
		t.counts[j] = make(map[string]map[byte]int)
		t.totals[j] = make(map[string]int)
	}
	return t
}

func (t *countTable) add(order int, ctx string, next byte) {
	nexts, ok := t.counts[order][ctx]
	if !ok {
		nexts = make(map[byte]int)
		t.counts[order][ctx] = nexts
	}
	nexts[next]++
	t.totals[order][ctx]++
}

// lookup returns the next-character counts and their total for ctx.
func (t *countTable) lookup(order int, ctx string) (map[byte]int, int, bool) {
	if order < 1 || order > t.order {
		return nil, 0, false
	}
	nexts, ok := t.counts[order][ctx]
	if !ok {
		return nil, 0, false
	}
	return nexts, t.totals[order][ctx], true
}

// observed reports whether ctx was seen as an order-j context.
func (t *countTable) observed(order int, ctx string) bool {
	if order < 1 || order > t.order {
		return false
	}
	_, ok := t.totals[order][ctx]
	return ok
}

// train scans stream once and counts, for every position i up to
// len(stream)-order and every order j with enough history, the character at i
// after the j-1 characters that precede it.
func train(stream string, order int) *countTable {
	t := newCountTable(order)
	for i := 0; i+order <= len(stream); i++ {
		next := stream[i]
		for j := 1; j <= order; j++ {
			if i < j-1 {
				break
			}
			t.add(j, stream[i-(j-1):i], next)
		}
	}
	return t
}
