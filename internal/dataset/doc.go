// Package dataset builds the simulated fb2nep cohort: covariates drawn from
// fixed distributions and a disease outcome from a logistic model.
//
// It never imports output, writers, cli or app; keep it domain-only.
// Generation consumes a randomstate.State in a fixed column order, so the
// same seed always gives the same Dataset.
package dataset
