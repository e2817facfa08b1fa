package remc

// Options configures a single call to Run. Grounded on tsp.Options's
// single-struct-of-tunables convention (no functional options here: every
// field is required, there is no sensible zero-value default for a
// replica count or a temperature range).
type Options struct {
	// Phi is the number of Metropolis steps run per replica per iteration.
	Phi int

	// K is the number of replicas.
	K int

	// Tmin, Tmax bound the integer temperature range replicas are sampled
	// from, without replacement.
	Tmin, Tmax int

	// MaxIter bounds the number of outer REMC iterations.
	MaxIter int

	// EStar is the target energy; Run stops early once the best replica
	// reaches it.
	EStar int

	// Seed seeds the single *rand.Rand Run derives all randomness from.
	Seed int64
}

// Validate enforces the hyperparameter constraints of spec §7:
// Tmin must not exceed Tmax, K must fit in [Tmin,Tmax] without replacement,
// and Phi must be at least 1.
func (o Options) Validate() error {
	if o.Tmin > o.Tmax {
		return ErrHyperparameter
	}
	if o.K < 1 || o.K > o.Tmax-o.Tmin+1 {
		return ErrHyperparameter
	}
	if o.Phi < 1 {
		return ErrHyperparameter
	}
	if o.MaxIter < 1 {
		return ErrHyperparameter
	}
	return nil
}
