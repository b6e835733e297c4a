package fred

// CenterBall is the bounding sphere around one vertex of a cluster center,
// built from the matching points contributed by every curve assigned to
// that center.
type CenterBall struct {
	Center Point
	Radius float64
}

// ComputeCenterEnclosingBalls computes, for each center and each vertex of
// that center, the bounding sphere of the matching points contributed by
// every curve assigned to the center. Requires r.Assignment to be set;
// ComputeAssignment is called first if it is nil.
func (r *ClusteringResult) ComputeCenterEnclosingBalls(ctx *ClusteringContext, curves Curves, ell int, fastSimplification bool) [][]CenterBall {
	if r.Assignment == nil {
		r.ComputeAssignment(ctx, curves, ell, fastSimplification)
	}

	result := make([][]CenterBall, len(r.CenterIndices))
	for ci, centerIdx := range r.CenterIndices {
		centerCurve := ctx.simplification(curves, centerIdx, ell, fastSimplification)
		numVertices := centerCurve.Complexity()
		perVertex := make([]Points, numVertices)

		for _, inputIdx := range r.Assignment[centerIdx] {
			inputCurve := curves.Get(inputIdx)
			matches := vertexMatchingPoints(ctx, curves, inputIdx, centerIdx, centerCurve, inputCurve, ell, fastSimplification, r.DistanceFunc)
			for v := 0; v < numVertices && v < len(matches); v++ {
				perVertex[v] = append(perVertex[v], matches[v])
			}
		}

		balls := make([]CenterBall, numVertices)
		for v := 0; v < numVertices; v++ {
			center, radius := boundingSphere(perVertex[v])
			balls[v] = CenterBall{Center: center, Radius: radius}
		}
		result[ci] = balls
	}
	return result
}

// vertexMatchingPoints returns, for each vertex of centerCurve, the point of
// inputCurve matched to it under the clustering's selected distance.
func vertexMatchingPoints(ctx *ClusteringContext, curves Curves, inputIdx, centerIdx int, centerCurve, inputCurve Curve, ell int, fastSimplification bool, kind DistanceKind) Points {
	switch kind {
	case DistanceDTW:
		return dtwVertexMatches(inputCurve, centerCurve)
	case DistanceDiscreteFrechet:
		return nearestVertexMatches(inputCurve, centerCurve)
	default:
		d := ctx.distance(curves, inputIdx, centerIdx, ell, fastSimplification, kind)
		return VerticesMatchingPoints(centerCurve, inputCurve, d.Value)
	}
}

// dtwVertexMatches matches each vertex of center to the centroid of every
// point of input that DTW pairs with it.
func dtwVertexMatches(input, center Curve) Points {
	d := DiscreteDTW(input, center)
	numVertices := center.Complexity()
	buckets := make([]Points, numVertices)
	for _, pair := range d.Matching {
		i, j := pair[0], pair[1]
		if j >= 0 && j < numVertices {
			buckets[j] = append(buckets[j], input.At(i))
		}
	}
	out := make(Points, numVertices)
	for v := 0; v < numVertices; v++ {
		if len(buckets[v]) == 0 {
			out[v] = center.At(v)
			continue
		}
		out[v] = Centroid(buckets[v])
	}
	return out
}

// nearestVertexMatches matches each vertex of center to its nearest vertex
// of input, used as the discrete Fréchet analogue of vertex-to-vertex
// matching (the discrete Fréchet DP does not itself expose a matching the
// way DTW's predecessor table does).
func nearestVertexMatches(input, center Curve) Points {
	out := make(Points, center.Complexity())
	for v := 0; v < center.Complexity(); v++ {
		best := input.At(0)
		bestDist := center.At(v).SquaredDistance(best)
		for i := 1; i < input.Complexity(); i++ {
			if d := center.At(v).SquaredDistance(input.At(i)); d < bestDist {
				bestDist = d
				best = input.At(i)
			}
		}
		out[v] = best
	}
	return out
}
