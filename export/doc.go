// Package export serializes planned paths and run outcomes for
// external tooling.
//
// Two formats are supported:
//
//   - WriteCSV: one row per waypoint (step,row,col), ready for
//     spreadsheet or plotting pipelines.
//   - WriteJSON: a full outcome record with status, strategy and the
//     statistics of the attempt.
//
// Both writers stream to an io.Writer and never touch the filesystem
// themselves.
package export
