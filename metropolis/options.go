package metropolis

// defaultSteps is phi, the fixed step count of the inner Metropolis loop
// (spec §4.6), mirroring tsp.DefaultOptions's convention of a sensible,
// named default for every tunable.
const defaultSteps = 500

// Options configures a single call to Optimize.
type Options struct {
	// Steps is phi, the number of Metropolis iterations to run.
	Steps int
}

// DefaultOptions returns Options{Steps: defaultSteps}.
func DefaultOptions() Options {
	return Options{Steps: defaultSteps}
}
