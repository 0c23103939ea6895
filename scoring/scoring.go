package scoring

import "errors"

// ErrInvalidWeights is returned when the weight sum is zero. The ambition
// invariant (every weight >= 1) makes this unreachable through the API, but a
// row edited behind the application's back must not turn into NaN or Inf.
var ErrInvalidWeights = errors.New("sum of weights must be positive")

// Scores holds the five raw subject scores of one attempt.
type Scores struct {
	Math         float64
	Languages    float64
	Science      float64
	HumanScience float64
	Essay        float64
}

// Weights holds an ambition's five subject weights.
type Weights struct {
	Math         uint
	Languages    uint
	Science      uint
	HumanScience uint
	Essay        uint
}

// Sum returns the total of the five weights.
func (w Weights) Sum() uint {
	return w.Math + w.Languages + w.Science + w.HumanScience + w.Essay
}

// ComputeFinalScore returns the weighted mean of the five subject scores:
// sum(score_i * weight_i) / sum(weight_i). Full-precision float64 division,
// no rounding.
func ComputeFinalScore(s Scores, w Weights) (float64, error) {
	total := w.Sum()
	if total == 0 {
		return 0, ErrInvalidWeights
	}

	weighted := s.Math*float64(w.Math) +
		s.Languages*float64(w.Languages) +
		s.Science*float64(w.Science) +
		s.HumanScience*float64(w.HumanScience) +
		s.Essay*float64(w.Essay)

	return weighted / float64(total), nil
}
