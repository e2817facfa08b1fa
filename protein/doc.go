// Package protein defines the immutable AminoAcid/Protein record and the
// sequence-adjacency query the lattice move generators rely on.
//
// Both types are built once via constructors and never mutated afterwards;
// Protein caches an id→index map so AreSequenceNeighbours and lookups used
// inside the Metropolis hot loop run in O(1) rather than the O(n) scan the
// specification merely tolerates.
package protein
