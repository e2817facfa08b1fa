package remc

import "errors"

// ErrHyperparameter indicates Options.Validate found an inconsistent
// configuration (spec §7's HyperparameterError, surfaced before any work
// begins — remc.Run calls Validate first).
var ErrHyperparameter = errors.New("remc: invalid hyperparameters")
