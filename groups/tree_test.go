package groups

import "testing"

func TestTree_AddAndTotal(t *testing.T) {
	tree := NewTree(4)

	tree.Add(0, 1)
	tree.Add(1, 2)
	tree.Add(2, 3)
	tree.Add(3, 4)

	if got, want := tree.Total(), 10.0; got != want {
		t.Errorf("Total(): want %v, got %v", want, got)
	}

	tree.Add(1, -2) // group 1 back to zero
	if got, want := tree.Total(), 8.0; got != want {
		t.Errorf("Total() after removing group 1: want %v, got %v", want, got)
	}
}

func TestTree_Clear(t *testing.T) {
	tree := NewTree(4)
	tree.Add(0, 5)
	tree.Add(3, 7)

	tree.Clear()

	if got, want := tree.Total(), 0.0; got != want {
		t.Errorf("Total() after Clear(): want %v, got %v", want, got)
	}
}

func TestTree_Locate(t *testing.T) {
	// Weights are group0=1, group1=1, group2=2 (total 4), chosen as exact
	// binary fractions so every partition boundary below is exact in
	// float64. The flat-array layout used by Tree doesn't place leaves in
	// ascending group order for a non-power-of-two leaf count (group1 ends
	// up as the tree's leftmost leaf here) -- that's fine, since Locate only
	// promises that each group's share of [0,1) has length weight(g)/Total,
	// not that the shares appear left to right in group order.
	tree := NewTree(3)
	tree.Add(0, 1)
	tree.Add(1, 1)
	tree.Add(2, 2)

	testCases := []struct {
		r    float64
		want int
	}{
		{r: 0, want: 1},
		{r: 0.2, want: 1},
		{r: 0.25, want: 1}, // tie at target=1: equal to left subtree sum stays left
		{r: 0.3, want: 2},
		{r: 0.6, want: 2},
		{r: 0.75, want: 2}, // tie at target=3: equal to left subtree sum stays left
		{r: 0.8, want: 0},
		{r: 0.999999999, want: 0},
	}

	for _, tc := range testCases {
		if got := tree.Locate(tc.r); got != tc.want {
			t.Errorf("Locate(%v): want %d, got %d", tc.r, tc.want, got)
		}
	}
}

func TestTree_LocatePartitionsUnitInterval(t *testing.T) {
	// For an arbitrary set of weights, sampling many r values uniformly and
	// tallying which group each lands in should reproduce each group's
	// weight share, regardless of the internal tree shape.
	weights := []float64{3, 1, 4, 1, 5, 9, 2, 6}
	tree := NewTree(len(weights))
	total := 0.0
	for g, w := range weights {
		tree.Add(g, w)
		total += w
	}

	const nSamples = 100000
	counts := make([]int, len(weights))
	for i := 0; i < nSamples; i++ {
		r := float64(i) / float64(nSamples)
		counts[tree.Locate(r)]++
	}

	for g, w := range weights {
		want := w / total
		got := float64(counts[g]) / float64(nSamples)
		if diff := got - want; diff > 0.01 || diff < -0.01 {
			t.Errorf("group %d: want share %.4f, got %.4f", g, want, got)
		}
	}
}

func TestTree_singleLeaf(t *testing.T) {
	tree := NewTree(1)
	tree.Add(0, 42)

	if got, want := tree.Locate(0), 0; got != want {
		t.Errorf("Locate(0): want %d, got %d", want, got)
	}
	if got, want := tree.Locate(0.999), 0; got != want {
		t.Errorf("Locate(0.999): want %d, got %d", want, got)
	}
}
