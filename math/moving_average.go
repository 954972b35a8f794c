package math

// MovingAverage is a fixed window mean. The first sample fills the whole
// window so the estimate starts at that sample instead of ramping up from 0.
type MovingAverage struct {
	values   []float64
	index    int
	sum      float64
	seeded   bool
	Estimate float64
}

func (a *MovingAverage) Init(size int) {
	if size < 1 {
		size = 1
	}
	a.values = make([]float64, size)
	a.Reset()
}

func (a *MovingAverage) Reset() {
	a.seeded = false
	a.index = 0
	a.sum = 0
	a.Estimate = 0
}

func (a *MovingAverage) Update(val float64) float64 {
	if len(a.values) == 0 {
		a.Init(1)
	}
	if !a.seeded {
		for i := range a.values {
			a.values[i] = val
		}
		a.sum = val * float64(len(a.values))
		a.seeded = true
		a.Estimate = val
		return val
	}
	a.index = (a.index + 1) % len(a.values)
	a.sum += val - a.values[a.index]
	a.values[a.index] = val
	a.Estimate = a.sum / float64(len(a.values))
	return a.Estimate
}

// Raw is the most recent sample.
func (a *MovingAverage) Raw() float64 {
	if len(a.values) == 0 {
		return 0
	}
	return a.values[a.index]
}
