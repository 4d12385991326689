package hash

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRecord(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want uint64
	}{
		{"empty", nil, 0xef46db3751d8e999},
		{"short", []byte("test"), 0x4fdcca5ddb678139},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Record(tt.data))
		})
	}
}

func TestRecord_DistinguishesRecords(t *testing.T) {
	a := []byte{0x14, 0, 0, 0, 0, 0}
	b := []byte{0x15, 0, 0, 0, 0, 0}

	require.NotEqual(t, Record(a), Record(b))
	require.Equal(t, Record(a), Record([]byte{0x14, 0, 0, 0, 0, 0}))
}

func BenchmarkRecord(b *testing.B) {
	rec := []byte{0x14, 0x2a, 0, 0, 0x01, 0}

	b.ReportAllocs()
	for b.Loop() {
		Record(rec)
	}
}
