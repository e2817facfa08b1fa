package remc

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/archfold/hpremc/foldmanager"
	"github.com/archfold/hpremc/geometry"
	"github.com/archfold/hpremc/polarity"
	"github.com/archfold/hpremc/protein"
)

func chainProtein(t *testing.T, tags string) *protein.Protein {
	t.Helper()
	seq := make([]protein.AminoAcid, len(tags))
	for i, r := range tags {
		pol := polarity.Polar
		if r == 'H' {
			pol = polarity.Hydrophobic
		}
		seq[i] = protein.NewAminoAcid(i, string(r), string(r), pol)
	}
	p, err := protein.NewProtein("chain", seq, -100, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return p
}

func TestOptions_Validate(t *testing.T) {
	cases := []struct {
		name string
		opts Options
		ok   bool
	}{
		{"valid", Options{Phi: 1, K: 2, Tmin: 1, Tmax: 5, MaxIter: 1, EStar: -100}, true},
		{"Tmin>Tmax", Options{Phi: 1, K: 1, Tmin: 5, Tmax: 1, MaxIter: 1}, false},
		{"K too large", Options{Phi: 1, K: 10, Tmin: 1, Tmax: 3, MaxIter: 1}, false},
		{"K zero", Options{Phi: 1, K: 0, Tmin: 1, Tmax: 3, MaxIter: 1}, false},
		{"Phi<1", Options{Phi: 0, K: 1, Tmin: 1, Tmax: 3, MaxIter: 1}, false},
		{"MaxIter<1", Options{Phi: 1, K: 1, Tmin: 1, Tmax: 3, MaxIter: 0}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.opts.Validate()
			if tc.ok && err != nil {
				t.Errorf("Validate() = %v; want nil", err)
			}
			if !tc.ok && err != ErrHyperparameter {
				t.Errorf("Validate() = %v; want ErrHyperparameter", err)
			}
		})
	}
}

func setupRun(t *testing.T, opts Options) Result {
	t.Helper()
	p := chainProtein(t, "HPHPHPH")
	rng := rand.New(rand.NewSource(1))
	mgr, err := foldmanager.New(p, geometry.Dims2{X: 8, Y: 8}, rng)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	x0, err := mgr.InitialConformation()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	result, err := Run(x0, mgr, opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return result
}

// TestRun_TemperatureSamplingIsAPermutationSubset checks P4: the K sampled
// temperatures are always distinct values drawn from [Tmin,Tmax].
func TestRun_TemperatureSamplingIsAPermutationSubset(t *testing.T) {
	opts := Options{Phi: 2, K: 4, Tmin: 1, Tmax: 10, MaxIter: 3, EStar: -1000, Seed: 5}
	result := setupRun(t, opts)
	if len(result.History) == 0 {
		t.Fatal("expected at least one iteration")
	}
	temps := result.History[0].Temperatures
	if len(temps) != opts.K {
		t.Fatalf("len(Temperatures) = %d; want %d", len(temps), opts.K)
	}
	seen := make(map[int]bool, len(temps))
	for _, tp := range temps {
		if tp < opts.Tmin || tp > opts.Tmax {
			t.Errorf("temperature %d out of range [%d,%d]", tp, opts.Tmin, opts.Tmax)
		}
		if seen[tp] {
			t.Errorf("temperature %d sampled twice", tp)
		}
		seen[tp] = true
	}
}

// TestRun_BestEnergyIsMonotonicallyNonIncreasing checks P5: the recorded
// best-energy-so-far never increases across iterations.
func TestRun_BestEnergyIsMonotonicallyNonIncreasing(t *testing.T) {
	opts := Options{Phi: 3, K: 3, Tmin: 1, Tmax: 8, MaxIter: 10, EStar: -1000, Seed: 11}
	result := setupRun(t, opts)
	for i := 1; i < len(result.History); i++ {
		if result.History[i].BestEnergy > result.History[i-1].BestEnergy {
			t.Errorf("iteration %d BestEnergy = %d > previous %d",
				result.History[i].Iter, result.History[i].BestEnergy, result.History[i-1].BestEnergy)
		}
	}
	if result.BestEnergy != result.History[len(result.History)-1].BestEnergy {
		t.Errorf("Result.BestEnergy = %d; want final history entry %d",
			result.BestEnergy, result.History[len(result.History)-1].BestEnergy)
	}
}

// TestRun_StopsEarlyAtEStar exercises the early-exit condition: once the
// best energy reaches EStar, no further iterations run.
func TestRun_StopsEarlyAtEStar(t *testing.T) {
	p := chainProtein(t, "HPHPHPH")
	rng := rand.New(rand.NewSource(1))
	mgr, err := foldmanager.New(p, geometry.Dims2{X: 8, Y: 8}, rng)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	x0, err := mgr.InitialConformation()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	opts := Options{Phi: 2, K: 3, Tmin: 1, Tmax: 8, MaxIter: 50, EStar: x0.Energy(), Seed: 2}
	result, err := Run(x0, mgr, opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Iterations > 0 && result.BestEnergy > opts.EStar {
		t.Errorf("BestEnergy = %d never reached EStar = %d over %d iterations",
			result.BestEnergy, opts.EStar, result.Iterations)
	}
}

// TestResult_SwapCounts exercises scenario 4: every recorded swap pairs
// adjacent replica slots, and SwapCounts tallies them consistently with
// Swaps.
func TestResult_SwapCounts(t *testing.T) {
	opts := Options{Phi: 2, K: 4, Tmin: 1, Tmax: 10, MaxIter: 5, EStar: -1000, Seed: 3}
	result := setupRun(t, opts)

	counts := result.SwapCounts()
	var total int
	for pair, n := range counts {
		require.Lessf(t, pair[0], pair[1], "pair %v not ordered i<j", pair)
		require.Equalf(t, 1, pair[1]-pair[0], "pair %v not adjacent", pair)
		require.Positivef(t, n, "pair %v has non-positive count", pair)
		total += n
	}
	require.Equal(t, len(result.Swaps), total, "SwapCounts total must match len(Swaps)")
}

func TestResult_SwapCounts_NoSwapsIsEmpty(t *testing.T) {
	// K=2 never swaps (the pass starts at slot offset+1 >= 1, so i+1<K
	// never holds); force zero iterations too by an EStar the initial
	// conformation already satisfies, so Swaps stays nil.
	p := chainProtein(t, "HPHPHPH")
	rng := rand.New(rand.NewSource(1))
	mgr, err := foldmanager.New(p, geometry.Dims2{X: 8, Y: 8}, rng)
	require.NoError(t, err)
	x0, err := mgr.InitialConformation()
	require.NoError(t, err)

	opts := Options{Phi: 1, K: 2, Tmin: 1, Tmax: 2, MaxIter: 1, EStar: x0.Energy(), Seed: 1}
	result, err := Run(x0, mgr, opts)
	require.NoError(t, err)
	require.Empty(t, result.SwapCounts())
}
