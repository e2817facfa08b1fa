// Package hpremc implements Replica Exchange Monte Carlo (REMC) folding of
// HP-model proteins on a square or cubic lattice.
//
// A protein is an ordered chain of hydrophobic (H) or polar (P) residues
// (package protein). A conformation embeds that chain, self-avoiding, into
// a bounded lattice (packages lattice, conformation) and scores it by its
// H-H topological contact count (package conformation). foldmanager builds
// an initial self-avoiding walk and enumerates the VHSd neighbourhood used
// by both the single-temperature Metropolis sampler (package metropolis)
// and the outer multi-replica, parallel-tempering loop (package remc).
// proteinio loads protein definitions from JSON; metrics computes
// structural diagnostics over a finished conformation; cmd/hpremc wires
// all of it into a command-line tool.
//
// Subpackages:
//
//	polarity/     — the two-valued H/P tag and its wire-format parsing
//	geometry/     — 2D/3D lattice coordinates and ℓ1 adjacency
//	protein/      — the immutable residue chain
//	lattice/      — the occupancy grid and end/corner move generators
//	conformation/ — the embedding, its validity predicate, and its energy
//	foldmanager/  — initial placement and VHSd neighbourhood enumeration
//	metropolis/   — single-temperature Metropolis sampling
//	remc/         — the replica exchange outer loop
//	metrics/      — contact components, compactness, chain span
//	proteinio/    — JSON protein loading
package hpremc
