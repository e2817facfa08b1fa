package foldmanager

// Option configures a Manager at construction (teacher's functional-options
// convention, e.g. tsp.Options).
type Option func(*Manager)

// defaultMaxSAWAttempts bounds the retry loop in InitialConformation.
// Spec §4.4 permits a bounded number of attempts before giving up; the
// Python reference loops forever, which this module deliberately does not.
const defaultMaxSAWAttempts = 1000

// WithMaxSAWAttempts overrides the number of self-avoiding-walk placement
// attempts before InitialConformation gives up with ErrInitialPlacementFailed.
func WithMaxSAWAttempts(n int) Option {
	return func(m *Manager) {
		if n > 0 {
			m.maxSAWAttempts = n
		}
	}
}
