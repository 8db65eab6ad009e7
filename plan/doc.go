// Package plan extracts collision-free paths from a potential field and
// records one immutable statistics snapshot per attempt.
//
// Two strategies operate over the inflated grid and its field:
//
//  1. Search — heuristic graph search on the 8-connected grid. Edge
//     costs are 1 for cardinal and √2 for diagonal moves; the node's
//     potential value serves directly as the heuristic h(n), so paths
//     follow the field's guidance but are not guaranteed globally
//     shortest. The frontier is a min-heap keyed by f=g+h with ties
//     broken by insertion sequence, which keeps runs deterministic.
//     Popping is capped at rows·cols·4.
//
//  2. Descend — steepest descent on the field, used only when Search
//     fails. Each step moves to the strictly lowest-potential neighbor
//     (cardinals preferred over diagonals, then lowest row, lowest
//     column). A 20-entry ring of recently visited cells guards against
//     cycles, and steps are capped at 2·rows·cols.
//
// Plan orchestrates the full pipeline: footprint inflation, endpoint
// validation, field construction, Search, and the Descend fallback.
// Descend failures propagate to the caller unchanged; there are no
// retries beyond the two stages.
//
// Every attempt is single-threaded and owns its inflated grid, field
// and Statistics value, so independent Plan calls may run concurrently
// without coordination.
package plan
