package astar

import "golang.org/x/exp/slices"

// Reconstruct walks prev backward from goal until a vertex without a predecessor is
// reached, and returns the visited vertices in start-to-goal order.
//
// A goal without a predecessor yields the single-element route [goal]. That is the
// trivial self-route, but it is also what an unreached goal produces; callers use
// Result.Found rather than the route length to tell them apart.
//
// The walk follows at most len(prev) links, so a malformed cyclic table cannot loop.
func Reconstruct(prev map[string]string, goal string) []string {
	path := []string{goal}
	cur := goal
	for steps := 0; steps < len(prev); steps++ {
		p, ok := prev[cur]
		if !ok {
			break
		}
		path = append(path, p)
		cur = p
	}
	slices.Reverse(path)

	return path
}
