// Package snapshot saves and loads the listing collection as a flat file,
// for backup and for moving datasets between machines.
//
// A snapshot is a JSON array of listings, optionally compressed with one of
// the codecs from the compress package. The codec is chosen explicitly via
// WithCompression or inferred from the file extension:
//
//	listings.json       plain JSON
//	listings.json.zst   Zstandard
//	listings.json.s2    S2
//	listings.json.lz4   LZ4
//
// Snapshots are plain data files, not a wire format: the JSON layout is the
// exported Listing struct and the compression is a standard stream codec.
package snapshot
