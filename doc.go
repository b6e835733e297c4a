// Package fred analyzes polygonal curves: finite ordered sequences of
// points in d-dimensional Euclidean space, interpreted as piecewise-linear.
// It answers three related questions for sets of such curves:
//
//   - How similar are two curves under the continuous Fréchet, discrete
//     Fréchet, and discrete Dynamic Time Warping (DTW) distances?
//   - How can a high-complexity curve be reduced to an ℓ-vertex curve that
//     preserves its shape with minimum error (curve simplification)?
//   - Given n curves, how can we find k representative curves of complexity
//     at most ℓ under the (k, ℓ)-center and (k, ℓ)-median objectives
//     (clustering)?
//
// # Distances
//
// [ContinuousFrechet] computes the continuous Fréchet distance up to a
// configurable relative error by binary-searching a free-space diagram.
// [DiscreteFrechet] and [DiscreteDTW] compute their respective distances
// exactly via bottom-up dynamic programs; DiscreteDTW additionally
// reconstructs a vertex-to-vertex matching and can enforce contingency
// constraints on consecutive repeated matches.
//
// # Simplification
//
// [ShortcutGraph.MinimumErrorSimplification] solves the exact minimum-error
// simplification problem on the complete shortcut graph of a curve.
// [ApproximateMinimumLinkSimplification] and
// [ApproximateMinimumErrorSimplification] trade exactness for speed via
// exponential doubling and binary search.
//
// # Clustering
//
// [KLCenter] and [KLMedian] solve the (k, ℓ)-center and (k, ℓ)-median
// problems by farthest-first seeding over lazily computed simplifications
// of the input curves, with optional local search. A [ClusteringContext]
// holds the lazily populated distance and simplification caches that make
// repeated calls over the same input cheap; it is not safe for concurrent
// use. [ClusteringResult.ComputeCenterEnclosingBalls] computes, for each
// vertex of each returned center, a bounding sphere over the matching
// points contributed by its assigned input curves.
//
// # Configuration
//
// Package-wide behavior (relative error tolerance, rounding, thread count,
// memoization, DTW contingency, memory budget, diagnostic verbosity) is
// controlled by [Config], read via [GetConfig] and set via [SetConfig];
// [LoadConfig] and [LoadConfigYAML] build a Config without installing it.
// Invalid input, such as curves with fewer than two vertices
// or mismatched dimensions, never panics: distance calls return a NaN value
// accompanied by a verbosity-gated diagnostic.
//
// # Projection
//
// The jl subpackage provides a Johnson-Lindenstrauss random projection as
// an external collaborator that only consumes the Curve/Points contracts
// defined here.
package fred
