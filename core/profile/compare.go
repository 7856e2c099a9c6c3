package profile

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Descriptive holds the usual summary of one GC-content distribution.
type Descriptive struct {
	Count  int
	Mean   float64
	Std    float64 // sample standard deviation
	Min    float64
	Q25    float64
	Median float64
	Q75    float64
	Max    float64
}

// Side is one genome's half of a comparison report.
type Side struct {
	Descriptive
	OrfCount int
}

// Report is the output of Compare. TStat and PValue come from a
// pooled-variance two-sample t-test over the GC-content distributions.
type Report struct {
	A, B   Side
	TStat  float64
	PValue float64
}

// Describe computes descriptive statistics over xs.
func Describe(xs []float64) Descriptive {
	d := Descriptive{Count: len(xs)}
	if len(xs) == 0 {
		return d
	}
	sorted := append([]float64(nil), xs...)
	sort.Float64s(sorted)

	d.Mean = stat.Mean(xs, nil)
	if len(xs) > 1 {
		d.Std = stat.StdDev(xs, nil)
	}
	d.Min = sorted[0]
	d.Max = sorted[len(sorted)-1]
	d.Q25 = stat.Quantile(0.25, stat.LinInterp, sorted, nil)
	d.Median = stat.Quantile(0.5, stat.LinInterp, sorted, nil)
	d.Q75 = stat.Quantile(0.75, stat.LinInterp, sorted, nil)
	return d
}

// TTest runs a pooled-variance (Student) two-sample t-test and returns the
// statistic and the two-sided p-value. Fewer than two observations on
// either side yields NaNs. Two degenerate equal-mean samples (zero pooled
// variance) yield t=0, p=1.
func TTest(a, b []float64) (float64, float64) {
	na, nb := len(a), len(b)
	if na < 2 || nb < 2 {
		return math.NaN(), math.NaN()
	}
	ma, mb := stat.Mean(a, nil), stat.Mean(b, nil)
	va, vb := stat.Variance(a, nil), stat.Variance(b, nil)

	df := float64(na + nb - 2)
	sp2 := (float64(na-1)*va + float64(nb-1)*vb) / df
	se := math.Sqrt(sp2 * (1/float64(na) + 1/float64(nb)))
	if se == 0 {
		if ma == mb {
			return 0, 1
		}
		return math.Inf(sign(ma - mb)), 0
	}

	t := (ma - mb) / se
	dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}
	return t, 2 * dist.Survival(math.Abs(t))
}

func sign(x float64) int {
	if x < 0 {
		return -1
	}
	return 1
}

// Compare builds the two-genome report from already-computed Stats.
func Compare(a, b Stats) Report {
	t, p := TTest(a.GCContents, b.GCContents)
	return Report{
		A:      Side{Descriptive: Describe(a.GCContents), OrfCount: a.OrfCount},
		B:      Side{Descriptive: Describe(b.GCContents), OrfCount: b.OrfCount},
		TStat:  t,
		PValue: p,
	}
}
