package protein

import (
	"errors"
	"testing"

	"github.com/archfold/hpremc/polarity"
)

func hpSeq(tags string) []AminoAcid {
	seq := make([]AminoAcid, len(tags))
	for i, c := range tags {
		p := polarity.Polar
		if c == 'H' {
			p = polarity.Hydrophobic
		}
		seq[i] = NewAminoAcid(i, string(c), string(c), p)
	}
	return seq
}

func TestNewProtein_Valid(t *testing.T) {
	p, err := NewProtein("HH", hpSeq("HH"), 0, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Len() != 2 {
		t.Errorf("Len() = %d; want 2", p.Len())
	}
}

func TestNewProtein_TooShort(t *testing.T) {
	_, err := NewProtein("H", hpSeq("H"), 0, 2)
	if !errors.Is(err, ErrTooShort) {
		t.Errorf("err = %v; want ErrTooShort", err)
	}
}

func TestNewProtein_BadDimension(t *testing.T) {
	_, err := NewProtein("HH", hpSeq("HH"), 0, 4)
	if !errors.Is(err, ErrBadDimension) {
		t.Errorf("err = %v; want ErrBadDimension", err)
	}
}

func TestNewProtein_BadResidueIDs(t *testing.T) {
	seq := hpSeq("HPH")
	seq[1] = NewAminoAcid(5, "P", "P", polarity.Polar)
	_, err := NewProtein("HPH", seq, 0, 2)
	if !errors.Is(err, ErrBadResidueIDs) {
		t.Errorf("err = %v; want ErrBadResidueIDs", err)
	}
}

func TestAreSequenceNeighbours(t *testing.T) {
	p, err := NewProtein("HPHP", hpSeq("HPHP"), 0, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !p.AreSequenceNeighbours(0, 1) {
		t.Error("0,1 should be sequence neighbours")
	}
	if p.AreSequenceNeighbours(0, 2) {
		t.Error("0,2 should not be sequence neighbours")
	}
	if p.AreSequenceNeighbours(0, 99) {
		t.Error("absent id should not be a neighbour")
	}
}

func TestIsEndpoint(t *testing.T) {
	p, _ := NewProtein("HPHP", hpSeq("HPHP"), 0, 2)
	if !p.IsEndpoint(0) || !p.IsEndpoint(3) {
		t.Error("residues 0 and 3 should be endpoints")
	}
	if p.IsEndpoint(1) || p.IsEndpoint(2) {
		t.Error("residues 1 and 2 should not be endpoints")
	}
}
