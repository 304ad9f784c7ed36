// Package store persists named levels with their provenance.
//
// What:
//
//   - Storage is the persistence contract shared by the CLI and the
//     generation service.
//   - JSONStore keeps every record in one JSON file, tiles as base64 .lvl
//     bytes. Suitable for a single process.
//   - PostgresStore keeps records in a "levels" table with the .lvl bytes in
//     a BYTEA column, upserting on name.
//
// Both implementations are safe for concurrent use and return independent
// copies of stored levels.
//
// Errors:
//
//   - ErrNotFound:      no record with the requested name.
//   - ErrInvalidRecord: a record without a name or level was saved.
package store
