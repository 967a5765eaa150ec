package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTagTypeString(t *testing.T) {
	assert.Equal(t, "TAG_End", TagEnd.String())
	assert.Equal(t, "TAG_Byte", TagByte.String())
	assert.Equal(t, "TAG_Compound", TagCompound.String())
	assert.Equal(t, "TAG_Int_Array", TagIntArray.String())
	assert.Equal(t, "Unknown (13)", TagType(13).String())
}

func TestTagTypeIsValid(t *testing.T) {
	for typ := TagEnd; typ < TagCount; typ++ {
		assert.True(t, typ.IsValid(), typ)
	}
	assert.False(t, TagType(12).IsValid())
	assert.False(t, TagType(255).IsValid())
}

func TestTagTypeDescribe(t *testing.T) {
	assert.Equal(t, "TAG_Compound (10)", TagCompound.Describe())
	assert.Equal(t, "Unknown (13)", TagType(13).Describe())
}

func TestCompressionTypeString(t *testing.T) {
	tests := []struct {
		compression CompressionType
		want        string
	}{
		{CompressionNone, "None"},
		{CompressionGzip, "Gzip"},
		{CompressionZlib, "Zlib"},
		{CompressionLZ4, "LZ4"},
		{CompressionZstd, "Zstd"},
		{CompressionType(99), "Unknown"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.compression.String())
	}
}
