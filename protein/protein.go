package protein

import "github.com/archfold/hpremc/polarity"

// AminoAcid is an immutable HP residue. ID is the identity used by every
// lookup in this module — never the slice index, never a pointer identity.
type AminoAcid struct {
	id           int
	name         string
	abbreviation string
	pol          polarity.Polarity
}

// NewAminoAcid constructs an AminoAcid with the given stable id.
func NewAminoAcid(id int, name, abbreviation string, pol polarity.Polarity) AminoAcid {
	return AminoAcid{id: id, name: name, abbreviation: abbreviation, pol: pol}
}

// ID returns the stable residue identity.
func (a AminoAcid) ID() int { return a.id }

// Name returns the residue's opaque display name.
func (a AminoAcid) Name() string { return a.name }

// Abbreviation returns the residue's opaque short form.
func (a AminoAcid) Abbreviation() string { return a.abbreviation }

// Polarity returns the HP tag.
func (a AminoAcid) Polarity() polarity.Polarity { return a.pol }

// Protein is an immutable HP sequence with a cached id→index map.
type Protein struct {
	name                 string
	sequence             []AminoAcid
	eStar                int
	recommendedDimension int
	indexByID            map[int]int
}

// NewProtein validates and constructs a Protein.
//
// Invariant enforced: the set of residue ids equals {0,...,n-1} in
// positional order (spec §3). Returns ErrTooShort, ErrBadResidueIDs, or
// ErrBadDimension on violation.
func NewProtein(name string, sequence []AminoAcid, eStar, recommendedDimension int) (*Protein, error) {
	if len(sequence) < 2 {
		return nil, ErrTooShort
	}
	if recommendedDimension != 2 && recommendedDimension != 3 {
		return nil, ErrBadDimension
	}
	idx := make(map[int]int, len(sequence))
	for i, aa := range sequence {
		if aa.id != i {
			return nil, ErrBadResidueIDs
		}
		idx[aa.id] = i
	}
	seqCopy := make([]AminoAcid, len(sequence))
	copy(seqCopy, sequence)

	return &Protein{
		name:                 name,
		sequence:             seqCopy,
		eStar:                eStar,
		recommendedDimension: recommendedDimension,
		indexByID:            idx,
	}, nil
}

// Name returns the protein's display name.
func (p *Protein) Name() string { return p.name }

// Len returns the residue count n.
func (p *Protein) Len() int { return len(p.sequence) }

// EStar returns the target energy E*.
func (p *Protein) EStar() int { return p.eStar }

// RecommendedDimension returns 2 or 3.
func (p *Protein) RecommendedDimension() int { return p.recommendedDimension }

// At returns the residue at sequence position i.
func (p *Protein) At(i int) AminoAcid { return p.sequence[i] }

// Sequence returns a read-only view of the residues in sequence order.
func (p *Protein) Sequence() []AminoAcid {
	out := make([]AminoAcid, len(p.sequence))
	copy(out, p.sequence)
	return out
}

// IndexOf returns the sequence index of the residue with the given id.
func (p *Protein) IndexOf(id int) (int, bool) {
	i, ok := p.indexByID[id]
	return i, ok
}

// AreSequenceNeighbours reports whether residues a and b are adjacent in
// the primary sequence (their indices differ by exactly 1). False if
// either id is absent. O(1) via the cached id→index map.
func (p *Protein) AreSequenceNeighbours(a, b int) bool {
	ia, ok := p.indexByID[a]
	if !ok {
		return false
	}
	ib, ok := p.indexByID[b]
	if !ok {
		return false
	}
	d := ia - ib
	if d < 0 {
		d = -d
	}
	return d == 1
}

// First returns the id of the first residue in the chain.
func (p *Protein) First() int { return p.sequence[0].id }

// Last returns the id of the last residue in the chain.
func (p *Protein) Last() int { return p.sequence[len(p.sequence)-1].id }

// IsEndpoint reports whether residueID is the first or last residue.
func (p *Protein) IsEndpoint(residueID int) bool {
	return residueID == p.First() || residueID == p.Last()
}
