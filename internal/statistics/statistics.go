package statistics

import (
	"fmt"
	"math"
	"sort"

	"github.com/lox/pokerforms/poker"
	"github.com/lox/pokerforms/scenario"
)

// ChiSquareCritical51 is the 99.9% critical value of the chi-square
// distribution with 51 degrees of freedom (52 first-card outcomes).
const ChiSquareCritical51 = 87.97

// Series tracks a running sample of chip amounts
type Series struct {
	N      int
	Sum    float64
	Sum2   float64   // Sum of squares for variance calculation
	Values []float64 // Kept for median/percentile
	Min    int
	Max    int
}

// Add incorporates one value
func (s *Series) Add(v int) {
	f := float64(v)
	if s.N == 0 || v < s.Min {
		s.Min = v
	}
	if s.N == 0 || v > s.Max {
		s.Max = v
	}
	s.N++
	s.Sum += f
	s.Sum2 += f * f
	s.Values = append(s.Values, f)
}

// Mean returns the arithmetic mean
func (s *Series) Mean() float64 {
	if s.N == 0 {
		return 0
	}
	return s.Sum / float64(s.N)
}

// Variance returns the sample variance
func (s *Series) Variance() float64 {
	if s.N < 2 {
		return 0
	}
	mean := s.Mean()
	v := (s.Sum2 - float64(s.N)*mean*mean) / float64(s.N-1)
	if v < 0 {
		// rounding on near-constant samples
		return 0
	}
	return v
}

// StdDev returns the sample standard deviation
func (s *Series) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean
func (s *Series) StdError() float64 {
	if s.N == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.N))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
func (s *Series) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// Median returns the median value
func (s *Series) Median() float64 {
	return s.Percentile(0.5)
}

// Percentile returns the value at the given percentile (0.0 to 1.0)
func (s *Series) Percentile(p float64) float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1

	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// Collector accumulates distribution figures over generated scenarios
type Collector struct {
	Scenarios int

	FirstCard     [poker.DeckSize]int // Hero's first dealt card
	HeroPositions [6]int
	OppPositions  [6]int
	BoardSizes    map[int]int
	Checks        int

	HeroStacks Series
	Pots       Series
	Bets       Series // Only scenarios facing a bet
}

// NewCollector returns an empty collector
func NewCollector() *Collector {
	return &Collector{BoardSizes: make(map[int]int)}
}

// Add incorporates one scenario
func (c *Collector) Add(sc *scenario.Scenario) {
	if c.BoardSizes == nil {
		c.BoardSizes = make(map[int]int)
	}
	c.Scenarios++
	if len(sc.HeroHand) > 0 && sc.HeroHand[0].Valid() {
		c.FirstCard[sc.HeroHand[0]]++
	}
	if int(sc.HeroPosition) < len(c.HeroPositions) {
		c.HeroPositions[sc.HeroPosition]++
	}
	if int(sc.OpponentPosition) < len(c.OppPositions) {
		c.OppPositions[sc.OpponentPosition]++
	}
	c.BoardSizes[len(sc.Board)]++
	c.HeroStacks.Add(sc.HeroStack)
	c.Pots.Add(sc.PotSize)
	if sc.IsCheck() {
		c.Checks++
	} else {
		c.Bets.Add(sc.BetSize)
	}
}

// AddAll incorporates every scenario in order
func (c *Collector) AddAll(scs []*scenario.Scenario) {
	for _, sc := range scs {
		c.Add(sc)
	}
}

// CheckRate returns the share of scenarios where the hero faces a check
func (c *Collector) CheckRate() float64 {
	if c.Scenarios == 0 {
		return 0
	}
	return float64(c.Checks) / float64(c.Scenarios)
}

// ChiSquareFirstCard returns the chi-square statistic of the first dealt card
// against a uniform 1/52 expectation
func (c *Collector) ChiSquareFirstCard() float64 {
	if c.Scenarios == 0 {
		return 0
	}
	expected := float64(c.Scenarios) / poker.DeckSize
	chi := 0.0
	for _, n := range c.FirstCard {
		d := float64(n) - expected
		chi += d * d / expected
	}
	return chi
}

// MaxFirstCardDeviation returns the largest relative deviation of any
// first-card count from its expectation, and the card it belongs to
func (c *Collector) MaxFirstCardDeviation() (float64, poker.Card) {
	if c.Scenarios == 0 {
		return 0, 0
	}
	expected := float64(c.Scenarios) / poker.DeckSize
	worst, card := 0.0, poker.Card(0)
	for i, n := range c.FirstCard {
		dev := math.Abs(float64(n)-expected) / expected
		if dev > worst {
			worst, card = dev, poker.Card(i)
		}
	}
	return worst, card
}

// Uniform reports whether the first-card distribution passes the chi-square
// test at the 99.9% level
func (c *Collector) Uniform() bool {
	return c.ChiSquareFirstCard() <= ChiSquareCritical51
}

// Validate checks the counters agree with each other
func (c *Collector) Validate() error {
	if c.Scenarios <= 0 {
		return fmt.Errorf("invalid scenario count: %d", c.Scenarios)
	}

	firsts := 0
	for _, n := range c.FirstCard {
		firsts += n
	}
	if firsts != c.Scenarios {
		return fmt.Errorf("first-card total (%d) does not match scenarios (%d)", firsts, c.Scenarios)
	}

	hero, opp := 0, 0
	for i := range c.HeroPositions {
		hero += c.HeroPositions[i]
		opp += c.OppPositions[i]
	}
	if hero != c.Scenarios || opp != c.Scenarios {
		return fmt.Errorf("position totals (%d, %d) do not match scenarios (%d)", hero, opp, c.Scenarios)
	}

	if c.Checks+c.Bets.N != c.Scenarios {
		return fmt.Errorf("checks (%d) plus bets (%d) do not match scenarios (%d)",
			c.Checks, c.Bets.N, c.Scenarios)
	}
	return nil
}
