// Package polyroots is your in-memory toolbox for locating every complex
// root of a real-coefficient polynomial — simultaneously, to machine
// precision, with either a sequential or a data-parallel driver.
//
// 🚀 What is polyroots?
//
//	A modern numerical library that brings together:
//		• Horner evaluation: real & complex polynomial evaluation in O(n)
//		• Initial placement: principal-branch circle seeding around the centroid
//		• Aberth iteration: Newton steps with mutual root repulsion
//		• Two drivers: Gauss-Seidel (in-place, fast passes) and
//		  Jacobi (snapshot-based, embarrassingly parallel)
//
// ✨ Why choose polyroots?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – strict sentinel errors, documented branch choices
//   - Deterministic – no randomness, no time-based behavior
//   - Honest results – best-effort estimates plus an explicit convergence flag
//
// Everything lives under a single subpackage:
//
//	aberth/ — evaluation, seeding, both iteration drivers and the Solve dispatcher
//
// Quick sketch of the correction each root estimate receives:
//
//	              P(z_i)
//	z_i ← z_i - ─────────────────────────────
//	            P′(z_i) - Σ_{j≠i} P(z_i)/(z_i-z_j)
//
// Dive into aberth/doc.go for contracts, complexity and worked examples.
//
//	go get github.com/katalvlaran/polyroots/aberth
package polyroots
