// Package field builds the scalar navigation potential over an inflated
// occupancy grid.
//
// For every free cell q the field is the superposition
//
//	U(q) = U_att(q) + U_rep(q)
//
// with a quadratic attractive well centred on the goal,
//
//	U_att(q) = 0.5 · kAtt · dist(q, goal)²
//
// and a bounded repulsive term active within the obstacle influence
// radius rho0,
//
//	U_rep(q) = 0.5 · kRep · (1/d_obs(q) − 1/rho0)²   when d_obs(q) ≤ rho0
//	U_rep(q) = 0                                      otherwise
//
// where d_obs(q) is the exact Euclidean distance from q to the nearest
// obstacle cell. Obstacle cells carry +Inf and are never traversable.
//
// The quadratic attractive term keeps the gradient bounded and smooth
// at the goal, so the same field serves both as the search heuristic
// and as the surface for the steepest-descent fallback.
//
// Determinism: Build walks cells and obstacles in fixed row-major order
// with no data-dependent reordering, so identical inputs produce
// bit-identical fields.
//
// Complexity: O(rows·cols·obstacles) time, O(rows·cols) memory.
package field
