package rewriter

import (
	"testing"

	"github.com/duskvale/relicshuffle/pkg/flag"
	"github.com/duskvale/relicshuffle/pkg/script"
	"github.com/duskvale/relicshuffle/pkg/storage"
)

func chestPedestal() script.Object {
	return script.Object{
		Number: script.ObjectChest,
		X:      10, Y: 20,
		Op1: 7, Op2: 3, Op3: 500, Op4: 0,
		Starts: []script.Start{
			{Flag: 500, RunWhenUnset: true},
			{Flag: 12, RunWhenUnset: false},
		},
	}
}

func TestRewriteChest_Equipment_SingleObject(t *testing.T) {
	item := ResolveItem(storage.NewChestItem(9, flag.New("boots")))
	got, err := RewriteChest(chestPedestal(), item)
	if err != nil {
		t.Fatalf("RewriteChest: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d objects, want 1", len(got))
	}
	openFlag, itemNumber, newFlag, ok := got[0].ChestItem()
	if !ok {
		t.Fatal("expected a chest interpretation")
	}
	if openFlag != 7 {
		t.Fatalf("op1 (chest skin) changed: got %d, want 7", openFlag)
	}
	if itemNumber != int16(item.Number) {
		t.Fatalf("item number = %d, want %d", itemNumber, item.Number)
	}
	if newFlag != int32(item.Flag) {
		t.Fatalf("flag = %d, want %d", newFlag, item.Flag)
	}
}

func TestRewriteChest_MainWeapon_TwoObjects(t *testing.T) {
	item := ResolveItem(storage.NewMainWeapon(0, flag.New("handScanner")))
	got, err := RewriteChest(chestPedestal(), item)
	if err != nil {
		t.Fatalf("RewriteChest: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d objects, want 2 (frame + pedestal)", len(got))
	}
	_, itemNumber, _, ok := got[0].ChestItem()
	if !ok || itemNumber != -1 {
		t.Fatalf("frame object should be an emptied chest, got %+v", got[0])
	}
	number, flagVal, ok := got[1].MainWeapon()
	if !ok {
		t.Fatal("second object should be a main weapon pedestal")
	}
	if number != item.Number || flagVal != int32(item.Flag) {
		t.Fatalf("main weapon fields = %d,%d want %d,%d", number, flagVal, item.Number, item.Flag)
	}
	// The sentinel and the chest's own open flag must both appear,
	// run-when-unset, on the new pedestal object.
	foundSentinel, foundOpenFlag := false, false
	for _, s := range got[1].Starts {
		if s.Flag == sentinelFlag && s.RunWhenUnset {
			foundSentinel = true
		}
		if s.Flag == 7 && s.RunWhenUnset {
			foundOpenFlag = true
		}
	}
	if !foundSentinel || !foundOpenFlag {
		t.Fatalf("missing expected starts: %+v", got[1].Starts)
	}
}

func TestRewriteShutter_Equipment_HidesAtStartup(t *testing.T) {
	old := script.Object{
		Number: script.ObjectSeal,
		Op1: 2, Op2: 12,
		Starts: []script.Start{{Flag: 12, RunWhenUnset: false}},
	}
	item := ResolveItem(storage.NewChestItem(1, flag.New("boots")))
	got, err := RewriteShutter(old, 300, item)
	if err != nil {
		t.Fatalf("RewriteShutter: %v", err)
	}
	openFlag, _, _, ok := got.ChestItem()
	if !ok {
		t.Fatal("expected chest interpretation")
	}
	if openFlag != decorativeChestSkin {
		t.Fatalf("op1 = %d, want decorative skin %d", openFlag, decorativeChestSkin)
	}
	var hasSentinel, hasStartFlag bool
	for _, s := range got.Starts {
		if s.Flag == sentinelFlag && s.RunWhenUnset {
			hasSentinel = true
		}
		if s.Flag == 300 && s.RunWhenUnset {
			hasStartFlag = true
		}
	}
	if !hasSentinel || !hasStartFlag {
		t.Fatalf("missing hide-at-startup starts: %+v", got.Starts)
	}
}

func TestRewriteSpecialChest_DropsOldFlagOnly(t *testing.T) {
	old := script.Object{
		Number: script.ObjectChest,
		Op1: 3, Op2: 5, Op3: 696,
		Starts: []script.Start{{Flag: 696, RunWhenUnset: true}, {Flag: 50, RunWhenUnset: true}},
	}
	item := ResolveItem(storage.NewSeal(0, flag.New("sealOfTheSun")))
	got, err := RewriteSpecialChest(old, item)
	if err != nil {
		t.Fatalf("RewriteSpecialChest: %v", err)
	}
	for _, s := range got.Starts {
		if s.Flag == 696 {
			t.Fatal("old item flag must not survive in a special chest rewrite")
		}
	}
	found50 := false
	for _, s := range got.Starts {
		if s.Flag == 50 {
			found50 = true
		}
	}
	if !found50 {
		t.Fatal("unrelated starts must be preserved")
	}
}

func TestDecodeShopSlots_EncodeShopSlots_RoundTrip(t *testing.T) {
	slots := [3]ShopSlot{
		{Kind: ShopSlotSubWeapon, Number: 2, Price: 20, AmmoCount: 0, SetFlag: 696},
		{Kind: ShopSlotSubWeapon, Number: 1, Price: 500, AmmoCount: 5, SetFlag: 65279},
		{Kind: ShopSlotEquipment, Number: 3, Price: 80, AmmoCount: 0, SetFlag: 697},
	}
	text, err := EncodeShopSlots(slots)
	if err != nil {
		t.Fatalf("EncodeShopSlots: %v", err)
	}
	if got := len([]rune(text)); got != 21 {
		t.Fatalf("encoded text has %d runes, want 21", got)
	}
	back, err := DecodeShopSlots(text)
	if err != nil {
		t.Fatalf("DecodeShopSlots: %v", err)
	}
	if back != slots {
		t.Fatalf("round trip mismatch: got %+v, want %+v", back, slots)
	}
}

func TestEncodeSlot_KindByteMatchesSpecTable(t *testing.T) {
	// spec.md §4.7/§8 scenario S5: a sub-weapon slot's first byte is 1,
	// not 2 — ShopSlotKind's values are the encoded byte directly, with
	// no additional +1 offset (unlike Number/Price/AmmoCount/SetFlag,
	// which are all offset to dodge the reserved zero byte).
	got := encodeSlot(ShopSlot{Kind: ShopSlotSubWeapon, Number: 0})
	if got[0] != 1 {
		t.Fatalf("sub-weapon kind byte = %d, want 1", got[0])
	}
	got = encodeSlot(ShopSlot{Kind: ShopSlotEquipment, Number: 0})
	if got[0] != 2 {
		t.Fatalf("equipment kind byte = %d, want 2", got[0])
	}
	got = encodeSlot(ShopSlot{Kind: ShopSlotRom, Number: 0})
	if got[0] != 3 {
		t.Fatalf("rom kind byte = %d, want 3", got[0])
	}
}

func TestReplaceShopSlots_KeepsOldPrice(t *testing.T) {
	old := [3]ShopSlot{
		{Kind: ShopSlotSubWeapon, Number: 2, Price: 20, SetFlag: 696},
		{Kind: ShopSlotEquipment, Number: 3, Price: 80, SetFlag: 697},
		{Kind: ShopSlotRom, Number: 1, Price: 10, SetFlag: 10},
	}
	new := [3]*ShopPlacement{
		nil,
		{Kind: ShopSlotSubWeapon, Number: 5, SetFlag: 900},
		nil,
	}
	got := ReplaceShopSlots(old, new)
	if got[0] != old[0] {
		t.Fatalf("untouched slot changed: %+v", got[0])
	}
	if got[1].Price != 80 || got[1].Number != 5 || got[1].SetFlag != 900 {
		t.Fatalf("replaced slot = %+v", got[1])
	}
	if got[2] != old[2] {
		t.Fatalf("untouched slot changed: %+v", got[2])
	}
}

func TestReplaceShopItemName_NormalizesAndSubstitutes(t *testing.T) {
	got, ok := ReplaceShopItemName("A box of Ammo for sale.", "Ammunition", "Bombs")
	if !ok {
		t.Fatal("expected a substitution")
	}
	if got != "A box of Bombs for sale." {
		t.Fatalf("got %q", got)
	}
}

func TestReplaceShopItemName_WarnsWithoutMatch(t *testing.T) {
	_, ok := ReplaceShopItemName("Nothing relevant here.", "Ammunition", "Bombs")
	if ok {
		t.Fatal("expected no substitution")
	}
}

func TestTruncateDisplay_OverflowBecomesSpaces(t *testing.T) {
	long := ""
	for i := 0; i < 30; i++ {
		long += "x"
	}
	got := TruncateDisplay(long)
	runes := []rune(got)
	if len(runes) != 30 {
		t.Fatalf("length changed: got %d runes", len(runes))
	}
	for i := shopTalkCells; i < len(runes); i++ {
		if runes[i] != ' ' {
			t.Fatalf("rune %d not replaced with space: %q", i, runes[i])
		}
	}
}
