package ngram

const (
	backoffSupported   = 0.4
	backoffUnsupported = 0.1
)

// backoffWeights assigns every observed context of order >= 2 a weight that
// depends on whether its shorter context was observed one order down.
func backoffWeights(t *countTable) []map[string]float64 {
	weights := make([]map[string]float64, t.order+1)
	for j := 2; j <= t.order; j++ {
		weights[j] = make(map[string]float64, len(t.totals[j]))
		for ctx := range t.totals[j] {
			if t.observed(j-1, ctx[1:]) {
				weights[j][ctx] = backoffSupported
			} else {
				weights[j][ctx] = backoffUnsupported
			}
		}
	}
	return weights
}

// BackoffWeight returns the weight computed for ctx at the given order.
// The estimator does not blend orders, so weights are informational.
// ok is false for orders below 2 and for unseen contexts.
func (m *Model) BackoffWeight(order int, ctx string) (weight float64, ok bool) {
	if order < 2 || order > m.order {
		return 0, false
	}
	weight, ok = m.weights[order][ctx]
	return weight, ok
}
