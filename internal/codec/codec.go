package codec

// Codec compresses and decompresses index payloads.
type Codec interface {
	// MethodByte returns the single-byte codec identifier stored in block headers.
	MethodByte() byte
	Compress(src []byte) ([]byte, error)
	Decompress(src []byte, decompressedSize int) ([]byte, error)
}

// Method byte constants, ClickHouse-compatible values.
const (
	MethodNone byte = 0x02
	MethodLZ4  byte = 0x82
)

// ByMethod returns the codec for a method byte, or nil if unknown.
func ByMethod(method byte) Codec {
	switch method {
	case MethodNone:
		return &NoneCodec{}
	case MethodLZ4:
		return &LZ4Codec{}
	default:
		return nil
	}
}
