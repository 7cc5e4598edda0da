package compress

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// snapshotPayload builds a JSON-like payload resembling a real listing
// snapshot, repetitive enough for all codecs to actually shrink it.
func snapshotPayload() []byte {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i := 0; i < 200; i++ {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(`{"id":"0b6e6d1e-8f4b-4ad4-9d5e-000000000000","area":75.5,"price":151000}`)
	}
	buf.WriteByte(']')

	return buf.Bytes()
}

func allCodecTypes() []CompressionType {
	return []CompressionType{CompressionNone, CompressionZstd, CompressionS2, CompressionLZ4}
}

func TestCodecRoundTrip(t *testing.T) {
	payload := snapshotPayload()

	for _, ct := range allCodecTypes() {
		t.Run(ct.String(), func(t *testing.T) {
			codec, err := CreateCodec(ct, "test")
			require.NoError(t, err)

			compressed, err := codec.Compress(payload)
			require.NoError(t, err)

			restored, err := codec.Decompress(compressed)
			require.NoError(t, err)
			assert.Equal(t, payload, restored)
		})
	}
}

func TestCodecCompressionEffective(t *testing.T) {
	payload := snapshotPayload()

	for _, ct := range []CompressionType{CompressionZstd, CompressionS2, CompressionLZ4} {
		t.Run(ct.String(), func(t *testing.T) {
			codec, err := GetCodec(ct)
			require.NoError(t, err)

			compressed, err := codec.Compress(payload)
			require.NoError(t, err)
			assert.Less(t, len(compressed), len(payload),
				"repetitive snapshot payload should shrink")
		})
	}
}

func TestCodecEmptyInput(t *testing.T) {
	for _, ct := range allCodecTypes() {
		t.Run(ct.String(), func(t *testing.T) {
			codec, err := GetCodec(ct)
			require.NoError(t, err)

			compressed, err := codec.Compress(nil)
			require.NoError(t, err)

			restored, err := codec.Decompress(compressed)
			require.NoError(t, err)
			assert.Empty(t, restored)
		})
	}
}

func TestCodecCorruptInput(t *testing.T) {
	garbage := []byte{0xde, 0xad, 0xbe, 0xef, 0x00, 0x01, 0x02, 0x03}

	for _, ct := range []CompressionType{CompressionZstd, CompressionS2} {
		t.Run(ct.String(), func(t *testing.T) {
			codec, err := GetCodec(ct)
			require.NoError(t, err)

			_, err = codec.Decompress(garbage)
			assert.Error(t, err, "corrupt data must not decompress silently")
		})
	}
}

func TestCreateCodecInvalidType(t *testing.T) {
	_, err := CreateCodec(CompressionType(0xFF), "snapshot")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "snapshot")
}

func TestGetCodecInvalidType(t *testing.T) {
	_, err := GetCodec(CompressionType(0))
	assert.Error(t, err)
}

func TestCompressionTypeString(t *testing.T) {
	tests := []struct {
		ct   CompressionType
		want string
	}{
		{CompressionNone, "none"},
		{CompressionZstd, "zstd"},
		{CompressionS2, "s2"},
		{CompressionLZ4, "lz4"},
		{CompressionType(0xFF), "unknown"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.ct.String())
	}
}

func TestParseCompressionType(t *testing.T) {
	tests := []struct {
		name    string
		want    CompressionType
		wantErr bool
	}{
		{"none", CompressionNone, false},
		{"", CompressionNone, false},
		{"zstd", CompressionZstd, false},
		{"ZSTD", CompressionZstd, false},
		{"s2", CompressionS2, false},
		{"Lz4", CompressionLZ4, false},
		{"gzip", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCompressionType(tt.name)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNoOpPassthrough(t *testing.T) {
	codec := NewNoOpCompressor()
	data := []byte("as-is")

	out, err := codec.Compress(data)
	require.NoError(t, err)
	assert.Equal(t, data, out)

	out, err = codec.Decompress(data)
	require.NoError(t, err)
	assert.Equal(t, data, out)
}

func BenchmarkCodecCompress(b *testing.B) {
	payload := snapshotPayload()

	for _, ct := range allCodecTypes() {
		codec, err := GetCodec(ct)
		if err != nil {
			b.Fatal(err)
		}

		b.Run(ct.String(), func(b *testing.B) {
			b.SetBytes(int64(len(payload)))
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := codec.Compress(payload); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
