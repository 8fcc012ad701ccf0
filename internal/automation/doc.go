// Package automation runs batches of simulations: parameter sweeps over one
// run parameter and replicate runs that differ only in their noise seed.
package automation
