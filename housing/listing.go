package housing

import (
	"encoding/binary"
	"errors"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/husein14azimi/house-price-prediction-simple-lr/internal/hash"
	"github.com/husein14azimi/house-price-prediction-simple-lr/regression"
)

var (
	// ErrInvalidArea is returned for areas that are not positive finite
	// numbers.
	ErrInvalidArea = errors.New("invalid area: must be a positive finite number")

	// ErrInvalidPrice is returned for prices that are negative or not
	// finite.
	ErrInvalidPrice = errors.New("invalid price: must be a non-negative finite number")
)

// Listing is one user-entered (area, price) sample.
type Listing struct {
	// ID is the unique listing identifier (UUID).
	ID string `json:"id"`
	// Area is the living area in square meters.
	Area float64 `json:"area"`
	// Price is the listing price.
	Price float64 `json:"price"`
	// CreatedAt is when the listing was first entered.
	CreatedAt time.Time `json:"created_at"`
	// UpdatedAt is when the listing was last modified.
	UpdatedAt time.Time `json:"updated_at"`
}

// NewListing creates a validated listing with a fresh UUID and UTC
// timestamps.
func NewListing(area, price float64) (Listing, error) {
	now := time.Now().UTC()
	l := Listing{
		ID:        uuid.NewString(),
		Area:      area,
		Price:     price,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := l.Validate(); err != nil {
		return Listing{}, err
	}

	return l, nil
}

// Validate checks the listing's numeric fields. The regression core performs
// no domain validation, so range checks happen here at the entry boundary.
func (l Listing) Validate() error {
	if l.Area <= 0 || math.IsNaN(l.Area) || math.IsInf(l.Area, 0) {
		return ErrInvalidArea
	}
	if l.Price < 0 || math.IsNaN(l.Price) || math.IsInf(l.Price, 0) {
		return ErrInvalidPrice
	}

	return nil
}

// Observation converts the listing to a regression training sample.
func (l Listing) Observation() regression.Observation {
	return regression.Observation{X: l.Area, Y: l.Price}
}

// Observations converts a listing collection to regression training samples,
// preserving order.
func Observations(listings []Listing) []regression.Observation {
	obs := make([]regression.Observation, len(listings))
	for i, l := range listings {
		obs[i] = l.Observation()
	}

	return obs
}

// Fingerprint computes an xxHash64 digest over the (area, price) pairs in
// collection order. Two collections with the same samples in the same order
// share a fingerprint; any add, edit or removal changes it. Identity fields
// and timestamps are deliberately excluded: a fit result depends only on the
// numeric samples.
func Fingerprint(listings []Listing) uint64 {
	buf := make([]byte, 0, len(listings)*16)
	var scratch [8]byte
	for _, l := range listings {
		binary.LittleEndian.PutUint64(scratch[:], math.Float64bits(l.Area))
		buf = append(buf, scratch[:]...)
		binary.LittleEndian.PutUint64(scratch[:], math.Float64bits(l.Price))
		buf = append(buf, scratch[:]...)
	}

	return hash.Fingerprint(buf)
}
