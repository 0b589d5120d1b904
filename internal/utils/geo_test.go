package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodePosition(t *testing.T) {
	cell := EncodePosition(-6.2, 106.8, 6)
	assert.Len(t, cell, 6)

	// Nearby points share a coarse cell
	other := EncodePosition(-6.2001, 106.8001, 5)
	assert.Equal(t, cell[:5], other)
}

func TestDecodeGeohash(t *testing.T) {
	cell := EncodePosition(-6.2, 106.8, 9)

	lat, lon := DecodeGeohash(cell)
	assert.InDelta(t, -6.2, lat, 0.001)
	assert.InDelta(t, 106.8, lon, 0.001)
}

func TestCalculateDistance(t *testing.T) {
	monas := GeoPoint{Latitude: -6.1754, Longitude: 106.8272}
	ancol := GeoPoint{Latitude: -6.1223, Longitude: 106.8317}

	distance := CalculateDistance(monas, ancol)
	assert.InDelta(t, 5.9, distance, 0.3)

	assert.Zero(t, CalculateDistance(monas, monas))
}
