package service

import (
	"sync"
	"time"

	"custodial-voucher/internal/core/domain"

	"github.com/google/uuid"
)

// fakeClock is a settable ports.Clock.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock(t time.Time) *fakeClock { return &fakeClock{now: t} }

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

var testEpoch = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func testVoucher() *domain.Voucher {
	return &domain.Voucher{
		VoucherID:     "4f1c0a",
		ReservationID: uuid.MustParse("6f9d0f1e-3a61-4c55-9b39-0d1b4a6f7e21"),
		TargetAddress: "TARGETADDRESS",
		AssetTitle:    "Golden Dragon",
		AssetType:     "card",
		Rarity:        "legendary",
		Level:         3,
		MetadataURI:   "ipfs://bafy/dragon.json",
		Expiry:        testEpoch.Unix() + 7*secondsPerDay,
	}
}
