// Package resultdb persists planning run history in a local SQLite
// database, so benchmark runs can be compared across invocations.
//
// The store is a single runs table created on Open. Each recorded
// outcome gets a fresh UUID run identifier.
package resultdb
