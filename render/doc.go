// Package render turns grids, fields and planning outcomes into
// visual artifacts.
//
//   - PathChart: interactive HTML scatter of the potential field with
//     obstacles and the planned path overlaid (go-echarts).
//   - BenchmarkChart: HTML bar chart comparing scenario runs
//     (go-echarts).
//   - WritePathPNG / SavePathPNG: static PNG of the grid and path
//     (gonum/plot).
//
// HTML renderers stream to an io.Writer; SavePathPNG writes a file.
package render
