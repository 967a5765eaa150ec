package compress

// ZstdCodec wraps documents in Zstandard streams. An extension format with
// a better ratio than gzip at comparable speed.
//
// The default implementation is the pure Go klauspost/compress/zstd; build
// with the cgo_zstd tag to use the libzstd binding instead, which trades a
// cgo dependency for faster compression of large documents.
type ZstdCodec struct{}

var _ Codec = ZstdCodec{}
