package qualify

// CostTracker converts token usage into an estimated dollar cost using
// per-million-token prices. Unknown models fall back to the default price
// rather than reporting zero, so cost reports stay conservative when a new
// model is rolled out before its price entry lands.
type CostTracker struct {
	prices       map[string]ModelPrice
	defaultPrice ModelPrice
}

func NewCostTracker(prices map[string]ModelPrice, defaultPrice ModelPrice) *CostTracker {
	return &CostTracker{prices: prices, defaultPrice: defaultPrice}
}

// Cost returns the estimated dollar cost of one qualifier call.
func (t *CostTracker) Cost(model string, usage TokenUsage) float64 {
	price, ok := t.prices[model]
	if !ok {
		price = t.defaultPrice
	}
	inputCost := float64(usage.PromptTokens) / 1_000_000 * price.Input
	outputCost := float64(usage.CompletionTokens) / 1_000_000 * price.Output
	return inputCost + outputCost
}
