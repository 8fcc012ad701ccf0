// Package amplify models qPCR amplification as compounding per-cycle growth
// with additive noise, and detects the cycle threshold (Ct).
//
//   - [Params]: cycle count, efficiency and detection threshold
//   - [Noise]: injectable per-cycle perturbation ([Uniform], [NoNoise])
//   - [Observer]: receives each reading as it is produced
//   - [Simulate]: runs one curve and reports the first threshold crossing
//
// # Example
//
//	noise := amplify.NewUniform(0.1, rand.New(rand.NewSource(seed)))
//	res, err := amplify.Simulate(amplify.Params{Cycles: 40, Efficiency: 0.95, Threshold: 1e6}, noise)
//
// Simulate keeps no package state; a nil Noise behaves like [NoNoise].
package amplify
