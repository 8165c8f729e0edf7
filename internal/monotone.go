package internal

// Facilities for converting a Y-monotone polygon into triangles. A Y monotone
// polygon is a simple polygon such that any horizontal line intersects at most
// two edges.
//
// The lexicographic Coordinate.Below() method is used to simulate a slightly
// rotated coordinate system that eliminates horizontal segments but note that
// this affects where horizontal segments are allowed while maintaining strict
// monotonicity. Specifically, on the left chain, a horizontal edge must sit
// _above_ the inside of the polygon, while on the right chain, it must sit
// _below_.
//
// Vertices are tracked by their index in the polygon rather than by value,
// since a polygon may legitimately visit the same coordinates twice.
//
// Note that the polygon must be counterclockwise.

func TriangulateMonotone(polygon Polygon) TriangleList {
	points := polygon.Points
	if len(points) < 3 {
		throw(ErrDegeneratePolygon, "cannot triangulate polygon with point count: %d", len(points))
	}
	if !polygon.IsMonotone() {
		throw(ErrNotMonotone, "cannot triangulate %s", polygon)
	}
	if !polygon.IsCCW() {
		throw(ErrDegeneratePolygon, "polygon must wind counterclockwise with nonzero area")
	}
	if len(points) == 3 {
		return TriangleList{{points[0], points[1], points[2]}}
	}

	triangles := make(TriangleList, 0, len(points)-2)

	// Sort vertices so the top vertex is at the start of the slice.
	sorted := make([]int, 0, len(points))

	// Find the top point
	var topIndex int
	for i, point := range points {
		if point.Above(points[topIndex]) {
			topIndex = i
		}
	}

	sorted = append(sorted, topIndex)

	// Structure for determining which chain a vertex is on
	leftChain := map[int]struct{}{}
	var isLeft = func(i int) bool {
		_, ok := leftChain[i]
		return ok
	}

	// Merge sort vertices starting from top, noting which are on the left
	// chain, and track the bottom vertex separately
	leftOffset := 1
	rightOffset := 1
	var bottom int
	for {
		left := CircularIndex(topIndex+leftOffset, len(points))
		right := CircularIndex(topIndex-rightOffset, len(points))

		// If we've met up, we're done. We don't add the bottom vertex to the
		// list, as it's handled at the very end.
		if left == right {
			bottom = left
			break
		}

		if points[left].Above(points[right]) {
			leftChain[left] = struct{}{}
			sorted = append(sorted, left)
			leftOffset++
		} else {
			sorted = append(sorted, right)
			rightOffset++
		}
	}

	tri := func(a, b, c int) Triangle {
		return Triangle{points[a], points[b], points[c]}
	}

	// Create the stack and populate it with the first two vertices
	stack := make(IndexStack, 0)
	stack.Push(sorted[0])
	stack.Push(sorted[1])
	// Iterate over the remainder of the sorted vertices
	for i, p := range sorted[2:] {
		// Adjust index to account for the offset
		i := i + 2

		left := isLeft(p)
		if left != isLeft(stack.Peek()) { // If switched to opposite side chain
			// If we've jumped to the other chain, monotonicity guarantees that all
			// stack vertices are visible from the current one. We can therefore
			// empty the entire stack, making new triangles
			for !stack.Empty() {
				a := stack.Pop()
				if !stack.Empty() {
					b := stack.Peek()
					if left {
						/*
						              b
						             /|
						 diagonal-> / |
						           p--a
						*/
						triangles = appendTriangle(triangles, tri(p, a, b))
					} else {
						/*
							b
							|\ <- Diagonal
							| \
							a--p
						*/
						triangles = appendTriangle(triangles, tri(a, p, b))
					}
				}
			}
			// Put the last two vertices on the stack
			stack.Push(sorted[i-1])
			stack.Push(sorted[i])
		} else { // Same side chain
			// Always pop the last vertex off. If we don't create any triangles this
			// time, we'll put it back
			v := stack.Pop()

			for !stack.Empty() {
				topOfStack := stack.Peek()
				// The easiest way to see if the vertex "sees" the top of the stack is
				// to try creating the triangle, and see if it's CCW
				var potential Triangle
				if left {
					/*
						q
						|\
						v \
						  \\ <- diagonal
						    \
						     p
					*/
					potential = tri(p, topOfStack, v)
				} else {
					/*
						               q
						              /|
						             / v
						            / /
						diagonal-> //
						          /
						         p
					*/
					potential = tri(p, v, topOfStack)
				}
				if potential.IsCCW() {
					v = stack.Pop()
					triangles = append(triangles, potential)
				} else {
					// Stop looping if we can't see the next vertex
					break
				}
			}

			// Put the last v back on the stack, and then the current vertex
			stack.Push(v)
			stack.Push(p)
		}
	}

	// Finally, add triangles for all remaining vertices on the stack. Note that
	// we always have two.
	l := stack.Pop()
	for !stack.Empty() {
		p := stack.Pop()
		// Note that if we were just creating diagonals, as you'll sometimes see
		// with this algorithm, we would stop at the last vertex. However, we need
		// to generate the final triangle. Observe, for example, that in a case
		// where only two vertices remained on the stack, stopping before the last
		// one would completely remove the bottom vertex from the final triangle
		// list.

		// Check if last vertex is on the left chain
		if isLeft(l) {
			/*
					 p
				 / |
				l  | <- diagonal
				 \ |
				   b
			*/
			triangles = appendTriangle(triangles, tri(bottom, p, l))
		} else {
			/*
				            p
				            | \
				diagonal -> |  l
				            | /
				            b
			*/
			triangles = appendTriangle(triangles, tri(bottom, l, p))
		}
		l = p
	}
	return triangles
}

// This is pulled out so that it's easy to add instrumentation.
func appendTriangle(triangles TriangleList, t Triangle) TriangleList {
	if t.IsCW() {
		fatalf("triangle is clockwise: %v", t)
	}

	return append(triangles, t)
}
