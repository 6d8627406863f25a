package rewriter

import (
	"testing"

	"pgregory.net/rapid"
)

// TestShopSlots_EncodeDecode_RoundTrip_Property checks the shop-slot
// codec against the teacher's property-testing style (pkg/graph,
// pkg/synthesis use pgregory.net/rapid the same way): across the full
// valid input space — every field stays clear of the +1 byte-overflow
// boundary the encoding relies on, and the un-offset low bytes of
// Price/SetFlag stay non-zero since the format has no zero byte —
// Decode(Encode(s)) always recovers s exactly.
func TestShopSlots_EncodeDecode_RoundTrip_Property(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		var slots [3]ShopSlot
		for i := range slots {
			slots[i] = ShopSlot{
				Kind:      ShopSlotKind(rapid.IntRange(1, 3).Draw(t, "kind")),
				Number:    uint8(rapid.IntRange(0, 254).Draw(t, "number")),
				Price:     uint16(rapid.IntRange(0, 254).Draw(t, "priceHi")<<8 | rapid.IntRange(1, 255).Draw(t, "priceLo")),
				AmmoCount: uint8(rapid.IntRange(0, 254).Draw(t, "ammo")),
				SetFlag:   uint16(rapid.IntRange(0, 254).Draw(t, "setFlagHi")<<8 | rapid.IntRange(1, 255).Draw(t, "setFlagLo")),
			}
		}

		text, err := EncodeShopSlots(slots)
		if err != nil {
			t.Fatalf("EncodeShopSlots: %v", err)
		}
		back, err := DecodeShopSlots(text)
		if err != nil {
			t.Fatalf("DecodeShopSlots: %v", err)
		}
		if back != slots {
			t.Fatalf("round trip mismatch: got %+v, want %+v", back, slots)
		}
	})
}
