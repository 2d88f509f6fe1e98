package service

import (
	"bytes"
	"testing"
	"time"

	"custodial-voucher/internal/core/ports"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBuildParams() ports.BuildParams {
	return ports.BuildParams{
		ReservationID:  uuid.MustParse("6f9d0f1e-3a61-4c55-9b39-0d1b4a6f7e21"),
		TargetAddress:  "TARGETADDRESS",
		AssetTitle:     "Golden Dragon",
		AssetType:      "card",
		Rarity:         "legendary",
		Level:          3,
		MetadataURI:    "ipfs://bafy/dragon.json",
		IssuerIdentity: "b7a3c1de-0000-4000-8000-000000000001",
		ExpiryDays:     7,
	}
}

func TestVoucherBuilder_Build(t *testing.T) {
	b := NewVoucherBuilder(newFakeClock(testEpoch))
	p := testBuildParams()

	v, err := b.Build(p)
	require.NoError(t, err)

	assert.Regexp(t, `^[0-9a-f]{64}$`, v.VoucherID)
	assert.Equal(t, p.ReservationID, v.ReservationID)
	assert.Equal(t, p.TargetAddress, v.TargetAddress)
	assert.Equal(t, p.AssetTitle, v.AssetTitle)
	assert.Equal(t, p.Level, v.Level)
	assert.Equal(t, testEpoch.Unix()+7*86400, v.Expiry)
}

func TestVoucherBuilder_SameInstantIsReproducible(t *testing.T) {
	b := NewVoucherBuilder(newFakeClock(testEpoch))

	v1, err := b.Build(testBuildParams())
	require.NoError(t, err)
	v2, err := b.Build(testBuildParams())
	require.NoError(t, err)

	assert.Equal(t, v1, v2)
	assert.Equal(t, CanonicalPayload(v1), CanonicalPayload(v2))
}

func TestVoucherBuilder_DifferentInstantsDiffer(t *testing.T) {
	clock := newFakeClock(testEpoch)
	b := NewVoucherBuilder(clock)

	v1, err := b.Build(testBuildParams())
	require.NoError(t, err)
	clock.Advance(time.Second)
	v2, err := b.Build(testBuildParams())
	require.NoError(t, err)

	assert.NotEqual(t, v1.VoucherID, v2.VoucherID)
	assert.NotEqual(t, v1.Expiry, v2.Expiry)
}

func TestVoucherBuilder_IDDependsOnIssuer(t *testing.T) {
	b := NewVoucherBuilder(newFakeClock(testEpoch))
	p := testBuildParams()

	v1, err := b.Build(p)
	require.NoError(t, err)
	p.IssuerIdentity = "someone-else"
	v2, err := b.Build(p)
	require.NoError(t, err)

	assert.NotEqual(t, v1.VoucherID, v2.VoucherID)
}

func TestVoucherBuilder_RejectsInvalidParams(t *testing.T) {
	b := NewVoucherBuilder(newFakeClock(testEpoch))

	tests := []struct {
		name   string
		mutate func(p *ports.BuildParams)
	}{
		{"nil reservation", func(p *ports.BuildParams) { p.ReservationID = uuid.Nil }},
		{"empty address", func(p *ports.BuildParams) { p.TargetAddress = " " }},
		{"empty issuer", func(p *ports.BuildParams) { p.IssuerIdentity = "" }},
		{"zero expiry", func(p *ports.BuildParams) { p.ExpiryDays = 0 }},
		{"negative expiry", func(p *ports.BuildParams) { p.ExpiryDays = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := testBuildParams()
			tt.mutate(&p)
			v, err := b.Build(p)
			assert.Nil(t, v)
			assert.Error(t, err)
		})
	}
}

// Moving characters between adjacent fields must change the payload:
// with a delimiter join "ab|c" and "a|bc" style splits would collide.
func TestCanonicalPayload_NoFieldBoundaryAmbiguity(t *testing.T) {
	a := testVoucher()
	a.AssetTitle = "Dragon|card"
	a.AssetType = ""

	b := testVoucher()
	b.AssetTitle = "Dragon"
	b.AssetType = "|card"

	assert.False(t, bytes.Equal(CanonicalPayload(a), CanonicalPayload(b)))
}

func TestCanonicalPayload_Layout(t *testing.T) {
	v := testVoucher()
	payload := CanonicalPayload(v)

	// First record: voucher id tag, 4-byte length, bytes.
	require.GreaterOrEqual(t, len(payload), 5+len(v.VoucherID))
	assert.Equal(t, tagVoucherID, payload[0])
	assert.Equal(t, []byte{0, 0, 0, byte(len(v.VoucherID))}, payload[1:5])
	assert.Equal(t, v.VoucherID, string(payload[5:5+len(v.VoucherID)]))

	// Last record: 8-byte big-endian expiry.
	tail := payload[len(payload)-13:]
	assert.Equal(t, tagExpiry, tail[0])
	assert.Equal(t, []byte{0, 0, 0, 8}, tail[1:5])
}
