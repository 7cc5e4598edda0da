// Package sqlite provides the local persistence layer: listings entered by
// the user and the most recent cached fit result, stored in a single SQLite
// database file.
//
// The database lives at <dataDir>/houseprice.db (default
// ~/.houseprice/data/houseprice.db), opened in WAL mode. Schema changes ship
// as embedded .up.sql migrations applied on open.
//
// The fit cache holds exactly one row: the latest FitResult together with
// the fingerprint of the listing collection it was computed from. Callers
// compare that fingerprint against the current collection to decide whether
// the cached fit is still valid or must be recomputed.
package sqlite
