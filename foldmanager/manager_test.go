package foldmanager

import (
	"math/rand"
	"testing"

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

func TestNew_BadDimension(t *testing.T) {
	p := chainProtein(t, "HPH")
	_, err := New(p, dims1D{}, rand.New(rand.NewSource(1)))
	if err != ErrBadDimension {
		t.Errorf("err = %v; want ErrBadDimension", err)
	}
}

// dims1D is a Dimensionality implementation with neither 2 nor 3 axes, used
// only to exercise the validation path in New.
type dims1D struct{}

func (dims1D) Len() int   { return 1 }
func (dims1D) At(int) int { return 1 }

func TestInitialConformation_Succeeds(t *testing.T) {
	p := chainProtein(t, "HPHPH")
	rng := rand.New(rand.NewSource(42))
	m, err := New(p, geometry.Dims2{X: 10, Y: 10}, rng)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	conf, err := m.InitialConformation()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !conf.IsValid() {
		t.Error("expected a valid conformation")
	}
	if len(conf.Coordinates()) != p.Len() {
		t.Errorf("coordinate count = %d; want %d", len(conf.Coordinates()), p.Len())
	}
}

// TestInitialConformation_RefusesOverTightLattice exercises scenario 5: a
// lattice too small to hold a self-avoiding chain of this length must
// eventually refuse with ErrInitialPlacementFailed rather than loop forever.
func TestInitialConformation_RefusesOverTightLattice(t *testing.T) {
	p := chainProtein(t, "HPHPHPHPHP")
	rng := rand.New(rand.NewSource(7))
	m, err := New(p, geometry.Dims2{X: 1, Y: 1}, rng, WithMaxSAWAttempts(20))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err = m.InitialConformation()
	if err != ErrInitialPlacementFailed {
		t.Errorf("err = %v; want ErrInitialPlacementFailed", err)
	}
}

// TestVHSdNeighbourhood_DisplacesExactlyOneResidue checks P3: every
// neighbour conformation is valid and differs from x at exactly one
// residue's coordinate.
func TestVHSdNeighbourhood_DisplacesExactlyOneResidue(t *testing.T) {
	p := chainProtein(t, "HPHPH")
	rng := rand.New(rand.NewSource(99))
	m, err := New(p, geometry.Dims2{X: 6, Y: 6}, rng)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	x, err := m.InitialConformation()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	neighbours := m.VHSdNeighbourhood(x)
	if len(neighbours) == 0 {
		t.Fatal("expected at least one neighbour")
	}
	for _, nb := range neighbours {
		if !nb.IsValid() {
			t.Error("neighbour conformation must satisfy I3")
		}
		diffs := 0
		for i := 0; i < p.Len(); i++ {
			a, _ := x.CoordinateOf(i)
			b, _ := nb.CoordinateOf(i)
			if a.Key() != b.Key() {
				diffs++
			}
		}
		if diffs != 1 {
			t.Errorf("displaced residue count = %d; want 1", diffs)
		}
	}
}
