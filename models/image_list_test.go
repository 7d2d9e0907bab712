package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImageListScan(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value any
		want  ImageList
	}{
		{"null column", nil, nil},
		{"empty string", "", nil},
		{"json array", `["/uploads/a.png","/uploads/b.png"]`, ImageList{"/uploads/a.png", "/uploads/b.png"}},
		{"json array bytes", []byte(`["/uploads/a.png"]`), ImageList{"/uploads/a.png"}},
		{"empty json array", "[]", ImageList{}},
		{"legacy single url", "/uploads/old.png", ImageList{"/uploads/old.png"}},
		{"legacy external url", "https://cdn.example.com/x.png", ImageList{"https://cdn.example.com/x.png"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			var list ImageList
			require.NoError(t, list.Scan(tc.value))
			assert.Equal(t, tc.want, list)
		})
	}
}

func TestImageListScanRejectsBadInput(t *testing.T) {
	t.Parallel()

	var list ImageList
	assert.Error(t, list.Scan(`[not json`))
	assert.Error(t, list.Scan(42))
}

func TestImageListValue(t *testing.T) {
	t.Parallel()

	empty, err := ImageList(nil).Value()
	require.NoError(t, err)
	assert.Nil(t, empty)

	empty, err = ImageList{}.Value()
	require.NoError(t, err)
	assert.Nil(t, empty)

	encoded, err := ImageList{"/uploads/a.png"}.Value()
	require.NoError(t, err)
	assert.Equal(t, `["/uploads/a.png"]`, encoded)
}

func TestImageListRoundTrip(t *testing.T) {
	t.Parallel()

	original := ImageList{"/uploads/a.png", "https://cdn.example.com/b.jpg"}

	encoded, err := original.Value()
	require.NoError(t, err)

	var decoded ImageList
	require.NoError(t, decoded.Scan(encoded))
	assert.Equal(t, original, decoded)
}
