package rewriter

import (
	"fmt"
	"regexp"

	"github.com/duskvale/relicshuffle/pkg/script/charset"
)

// noSetFlag is the sentinel meaning "this slot has no completion flag
// of its own" (spec.md §4.7).
const noSetFlag uint16 = 254*256 + 255

// shopTalkCells is the display-cell budget an item name substituted
// into a shop's prose must fit; anything past it is truncated to spaces
// (spec.md §4.7).
const shopTalkCells = 22

// ShopSlotKind tags the three kinds a shop slot's byte 0 distinguishes.
type ShopSlotKind uint8

const (
	ShopSlotSubWeapon ShopSlotKind = iota + 1
	ShopSlotEquipment
	ShopSlotRom
)

// ShopSlot is the decoded form of one 7-byte shop-item record
// (spec.md §4.7's byte table).
type ShopSlot struct {
	Kind      ShopSlotKind
	Number    uint8
	Price     uint16
	AmmoCount uint8 // 0 means body/no-ammo
	SetFlag   uint16
}

// DecodeShopSlots turns the 21-character shop-slot Talk text into its
// three decoded records.
func DecodeShopSlots(text string) ([3]ShopSlot, error) {
	var slots [3]ShopSlot
	data, err := charset.TextToBytes(text)
	if err != nil {
		return slots, fmt.Errorf("rewriter: decode shop slots: %w", err)
	}
	if len(data) != 7*3 {
		return slots, fmt.Errorf("rewriter: decode shop slots: want %d bytes, got %d", 7*3, len(data))
	}
	for i := range slots {
		s, err := decodeSlot(data[i*7 : i*7+7])
		if err != nil {
			return slots, fmt.Errorf("rewriter: decode shop slot %d: %w", i, err)
		}
		slots[i] = s
	}
	return slots, nil
}

func decodeSlot(b []byte) (ShopSlot, error) {
	if b[0] == 0 || b[1] == 0 {
		return ShopSlot{}, fmt.Errorf("tag/number byte is zero")
	}
	return ShopSlot{
		Kind:      ShopSlotKind(b[0]),
		Number:    b[1] - 1,
		Price:     uint16(b[2]-1)<<8 | uint16(b[3]),
		AmmoCount: b[4] - 1,
		SetFlag:   uint16(b[5]-1)<<8 | uint16(b[6]),
	}, nil
}

// EncodeShopSlots is the inverse of DecodeShopSlots.
func EncodeShopSlots(slots [3]ShopSlot) (string, error) {
	data := make([]byte, 0, 7*3)
	for _, s := range slots {
		data = append(data, encodeSlot(s)...)
	}
	text, err := charset.BytesToText(data)
	if err != nil {
		return "", fmt.Errorf("rewriter: encode shop slots: %w", err)
	}
	return text, nil
}

func encodeSlot(s ShopSlot) []byte {
	return []byte{
		byte(s.Kind),
		s.Number + 1,
		byte(s.Price>>8) + 1,
		byte(s.Price & 0xFF),
		s.AmmoCount + 1,
		byte(s.SetFlag>>8) + 1,
		byte(s.SetFlag & 0xFF),
	}
}

// ShopPlacement describes one slot's new content. A nil *ShopPlacement
// in ReplaceShopSlots leaves that slot's ShopSlot untouched.
type ShopPlacement struct {
	Kind      ShopSlotKind
	Number    uint8
	AmmoCount uint8
	SetFlag   uint16
}

// ReplaceShopSlots applies new placements onto old, slot by slot. Price
// is always kept from the old slot: this rewrite has no canonical
// per-item catalog price table (out of scope, see DESIGN.md), so the
// shop's existing economy numbers are left exactly as they were and
// only item identity/flag change.
func ReplaceShopSlots(old [3]ShopSlot, new [3]*ShopPlacement) [3]ShopSlot {
	out := old
	for i, p := range new {
		if p == nil {
			continue
		}
		out[i] = ShopSlot{
			Kind:      p.Kind,
			Number:    p.Number,
			Price:     old[i].Price,
			AmmoCount: p.AmmoCount,
			SetFlag:   p.SetFlag,
		}
	}
	return out
}

// NormalizeRule is one entry of the catalog-to-prose spelling
// normalization table applied before substituting an item name into a
// shopkeeper's dialogue (spec.md §4.7). The original's ~19-entry table
// is tied to the source game's actual Japanese/English prose strings;
// this rewrite's item vocabulary is the symbolic StrategyFlag names
// pkg/storage uses instead, so the table here is a same-shaped,
// illustrative set rather than a byte-for-byte port — see DESIGN.md.
type NormalizeRule struct {
	Pattern     *regexp.Regexp
	Replacement string
}

var normalizeTable = []NormalizeRule{
	{regexp.MustCompile(`(?i)\bthrowing knives\b`), "Throwing Knife"},
	{regexp.MustCompile(`(?i)\bflares?(?: gun)?\b`), "Flare Gun"},
	{regexp.MustCompile(`(?i)\b(?:silver )?shield\b`), "Silver Shield"},
	{regexp.MustCompile(`(?i)\bammo\b`), "Ammunition"},
}

// ReplaceShopItemName patches a shop's prose dialogue: the normalize
// table runs first over the words of the talk, then a case-insensitive
// substitution of oldName for newName, with newName first truncated to
// the shopTalkCells budget. ok is false when neither pattern matched,
// meaning the caller should warn and leave the text as normalized but
// unsubstituted rather than fail outright (spec.md §4.7: "a warning is
// emitted but the process continues").
func ReplaceShopItemName(talk, oldName, newName string) (result string, ok bool) {
	normalized := talk
	for _, rule := range normalizeTable {
		normalized = rule.Pattern.ReplaceAllString(normalized, rule.Replacement)
	}
	pattern := regexp.MustCompile("(?i)" + regexp.QuoteMeta(oldName))
	replaced := pattern.ReplaceAllString(normalized, TruncateDisplay(newName))
	if replaced == normalized {
		return normalized, false
	}
	return replaced, true
}

// TruncateDisplay enforces the 22-display-cell overflow rule, replacing
// overflow characters with spaces while preserving combining marks.
func TruncateDisplay(text string) string {
	return charset.Truncate(text, shopTalkCells)
}
