package housing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewListing(t *testing.T) {
	l, err := NewListing(75.5, 151000)
	require.NoError(t, err)

	assert.NotEmpty(t, l.ID)
	assert.Equal(t, 75.5, l.Area)
	assert.Equal(t, 151000.0, l.Price)
	assert.False(t, l.CreatedAt.IsZero())
	assert.Equal(t, l.CreatedAt, l.UpdatedAt)

	other, err := NewListing(75.5, 151000)
	require.NoError(t, err)
	assert.NotEqual(t, l.ID, other.ID, "each listing gets its own ID")
}

func TestListingValidate(t *testing.T) {
	tests := []struct {
		name    string
		area    float64
		price   float64
		wantErr error
	}{
		{"valid", 50, 100000, nil},
		{"zero price is allowed", 50, 0, nil},
		{"zero area", 0, 100000, ErrInvalidArea},
		{"negative area", -10, 100000, ErrInvalidArea},
		{"NaN area", math.NaN(), 100000, ErrInvalidArea},
		{"infinite area", math.Inf(1), 100000, ErrInvalidArea},
		{"negative price", 50, -1, ErrInvalidPrice},
		{"NaN price", 50, math.NaN(), ErrInvalidPrice},
		{"infinite price", 50, math.Inf(-1), ErrInvalidPrice},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewListing(tt.area, tt.price)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestObservations(t *testing.T) {
	listings := []Listing{
		{ID: "a", Area: 50, Price: 100000},
		{ID: "b", Area: 100, Price: 200000},
	}

	obs := Observations(listings)
	require.Len(t, obs, 2)
	assert.Equal(t, 50.0, obs[0].X)
	assert.Equal(t, 100000.0, obs[0].Y)
	assert.Equal(t, 100.0, obs[1].X)
	assert.Equal(t, 200000.0, obs[1].Y)

	assert.Empty(t, Observations(nil))
}

func TestFingerprint(t *testing.T) {
	a := []Listing{{ID: "a", Area: 50, Price: 100000}, {ID: "b", Area: 100, Price: 200000}}
	same := []Listing{{ID: "x", Area: 50, Price: 100000}, {ID: "y", Area: 100, Price: 200000}}

	assert.Equal(t, Fingerprint(a), Fingerprint(same),
		"identity fields must not affect the fingerprint")

	edited := []Listing{{Area: 50, Price: 100001}, {Area: 100, Price: 200000}}
	assert.NotEqual(t, Fingerprint(a), Fingerprint(edited))

	removed := a[:1]
	assert.NotEqual(t, Fingerprint(a), Fingerprint(removed))

	added := append(append([]Listing{}, a...), Listing{Area: 70, Price: 140000})
	assert.NotEqual(t, Fingerprint(a), Fingerprint(added))
}

func TestFingerprintEmpty(t *testing.T) {
	assert.Equal(t, Fingerprint(nil), Fingerprint([]Listing{}))
}
