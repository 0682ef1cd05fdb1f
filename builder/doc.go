// Package builder provides reusable “functional-options”-style generators of
// junction-box point sets for tests, benchmarks, examples and the CLI.
//
// The package offers the following key components:
//
//   - Orchestrator:
//     – BuildPoints(opts, cons...) resolves one builderConfig and concatenates
//     the output of every Constructor in order.
//   - Constructors:
//     – Cloud(n):            n points uniform in [origin, origin+extent)³ (needs an RNG).
//     – Lattice(nx, ny, nz): regular grid, x varying fastest.
//     – Line(n):             n points along +X.
//     – Square():            the four corners of a square in the z=0 plane.
//     – Coincident(n, p):    n distinct records at the same coordinate.
//   - Options: WithSeed, WithRand, WithExtent, WithSpacing, WithOrigin, WithIntegral.
//   - RNG policy: NewRand(seed) with seed==0 mapped to a fixed default.
//
// Guarantees:
//
//   - Determinism: the same options, seed and constructor order give identical points.
//   - Option constructors panic on meaningless values; constructors return
//     sentinel errors (ErrTooFewPoints, ErrNeedRandSource, ErrConstructFailed)
//     wrapped with the constructor name.
package builder
