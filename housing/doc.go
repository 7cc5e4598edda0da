// Package housing holds the domain records of the house price tool: the
// user-entered (area, price) listings that feed the regression core.
//
// A Listing is one training sample with identity and timestamps; the
// regression core itself only sees the anonymous (x, y) pairs produced by
// Observations. Fingerprint identifies a snapshot of the collection so that
// cached fit results can be invalidated when the collection changes.
package housing
