// Package compress provides streaming compression codecs for NBT documents.
//
// NBT files are conventionally stored gzip-compressed; region-style storage
// uses raw zlib streams, and uncompressed files appear in tooling and test
// fixtures. This package wraps the supported algorithms behind one streaming
// Codec interface so the document and stream layers never branch on the
// algorithm:
//   - None: pass-through (format.CompressionNone)
//   - Gzip: RFC 1952 via klauspost/compress (format.CompressionGzip)
//   - Zlib: RFC 1950 via klauspost/compress (format.CompressionZlib)
//   - LZ4: frame format via pierrec/lz4 (format.CompressionLZ4)
//   - Zstd: pure Go by default, cgo via the cgo_zstd build tag
//     (format.CompressionZstd)
//
// LZ4 and Zstd are extensions beyond the conventional NBT container formats;
// readers must be told which algorithm a stream uses, as none is sniffed.
//
// Codec writers flush and terminate their own framing on Close but never
// close the underlying destination, so a document can be appended to an
// already-open file or network stream.
package compress
