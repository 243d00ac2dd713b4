package indicators

// MACDResult holds the final values of the MACD lines plus crossover flags.
// A nil result means the series was too short to qualify (N < slow period).
type MACDResult struct {
	Line      float64 `json:"line"`
	Signal    float64 `json:"signal"`
	Histogram float64 `json:"histogram"`
	Bullish   bool    `json:"bullish"`
	Bearish   bool    `json:"bearish"`
}

// MACD computes the Moving Average Convergence Divergence indicator.
type MACD struct {
	fastPeriod   int
	slowPeriod   int
	signalPeriod int
}

// NewMACD creates a new MACD instance with specified fast, slow, and signal periods.
func NewMACD(fast, slow, signal int) *MACD {
	return &MACD{
		fastPeriod:   fast,
		slowPeriod:   slow,
		signalPeriod: signal,
	}
}

// Calculate computes the MACD line as a full series (fast EMA minus slow EMA
// over their overlap), the signal line as an EMA of that series, and the
// histogram as their difference. Returns nil when the series is shorter than
// the slow period.
func (m *MACD) Calculate(prices []float64) *MACDResult {
	if len(prices) < m.slowPeriod {
		return nil
	}

	fastSeries := NewEMA(m.fastPeriod).Series(prices)
	slowSeries := NewEMA(m.slowPeriod).Series(prices)

	// Both series end at the last price; align them from the tail.
	overlap := len(slowSeries)
	if len(fastSeries) < overlap {
		overlap = len(fastSeries)
	}
	macdLine := make([]float64, overlap)
	for i := 0; i < overlap; i++ {
		fast := fastSeries[len(fastSeries)-overlap+i]
		slow := slowSeries[len(slowSeries)-overlap+i]
		macdLine[i] = fast - slow
	}

	signal := NewEMA(m.signalPeriod).Calculate(macdLine)
	line := macdLine[len(macdLine)-1]
	histogram := line - signal

	return &MACDResult{
		Line:      line,
		Signal:    signal,
		Histogram: histogram,
		Bullish:   line > signal && histogram > 0,
		Bearish:   line < signal && histogram < 0,
	}
}
