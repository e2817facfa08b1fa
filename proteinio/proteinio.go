// Package proteinio loads proteins from the JSON wire format: a top-level
// array of protein objects, each carrying a name, an ordered sequence of
// residues (name, abbreviation, polarity), a target energy e_star, and a
// recommended lattice dimension. Grounded on JSONProteinIO.py for the wire
// schema and bebop-poly/io/polyjson for the Parse/Read split, adapted to
// return errors rather than swallow them.
package proteinio

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/archfold/hpremc/polarity"
	"github.com/archfold/hpremc/protein"
)

// wireAminoAcid mirrors one entry of a protein's "sequence" array.
type wireAminoAcid struct {
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
	Polarity     string `json:"polarity"`
}

// wireProtein mirrors one top-level array entry.
type wireProtein struct {
	Name                 string          `json:"name"`
	Sequence             []wireAminoAcid `json:"sequence"`
	EStar                int             `json:"e_star"`
	RecommendedDimension int             `json:"recommended_dimension"`
}

// ParseProteins decodes data as a JSON array of proteins. Residue ids are
// not present on the wire; each amino acid's id is assigned as its index
// within its protein's sequence, matching protein.NewProtein's positional
// id invariant. Returns ErrEmptyFile if the array is empty, ErrInvalidPolarity
// if any residue's polarity is not "H" or "P", or any error protein.NewProtein
// returns for a malformed sequence.
func ParseProteins(data []byte) ([]*protein.Protein, error) {
	var wire []wireProtein
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, fmt.Errorf("proteinio: decode: %w", err)
	}
	if len(wire) == 0 {
		return nil, ErrEmptyFile
	}

	proteins := make([]*protein.Protein, 0, len(wire))
	for _, wp := range wire {
		seq := make([]protein.AminoAcid, len(wp.Sequence))
		for i, wa := range wp.Sequence {
			pol, err := polarity.Parse(wa.Polarity)
			if err != nil {
				return nil, fmt.Errorf("proteinio: protein %q residue %d: %w", wp.Name, i, ErrInvalidPolarity)
			}
			seq[i] = protein.NewAminoAcid(i, wa.Name, wa.Abbreviation, pol)
		}

		p, err := protein.NewProtein(wp.Name, seq, wp.EStar, wp.RecommendedDimension)
		if err != nil {
			return nil, fmt.Errorf("proteinio: protein %q: %w", wp.Name, err)
		}
		proteins = append(proteins, p)
	}
	return proteins, nil
}

// ReadProteins reads path and parses it via ParseProteins.
func ReadProteins(path string) ([]*protein.Protein, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("proteinio: read %s: %w", path, err)
	}
	return ParseProteins(data)
}
