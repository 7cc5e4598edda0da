// Package compress provides the compression codecs used for dataset
// snapshots.
//
// Snapshot payloads are JSON-encoded listing arrays, which compress well:
// the field names repeat per element and numeric values share long prefixes.
// Four codecs are available:
//
//   - None: no compression, payload stored as-is
//   - Zstd: best ratio, good speed (pure-Go by default, cgo via the gozstd
//     build tag)
//   - S2: fastest, moderate ratio
//   - LZ4: fast with a slightly better ratio than S2 on text payloads
//
// Codecs are selected by CompressionType, typically derived from a snapshot
// file extension or the config file:
//
//	codec, err := compress.CreateCodec(compress.CompressionZstd, "snapshot")
//	if err != nil {
//	    return err
//	}
//	compressed, err := codec.Compress(payload)
//
// All codecs are safe for concurrent use; the zstd and lz4 implementations
// pool their encoder/decoder state internally.
package compress
