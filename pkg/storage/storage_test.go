package storage

import (
	"testing"

	"github.com/duskvale/relicshuffle/pkg/flag"
)

func TestNewShopSpot_NameJoinsThreeParts(t *testing.T) {
	spot := NewShopSpot(FieldSurface, 0, [3]string{"a", "b", "c"}, nil)
	if spot.Name != "a,b,c" {
		t.Fatalf("Name = %q, want %q", spot.Name, "a,b,c")
	}
	if spot.Kind != SpotShop {
		t.Fatalf("Kind = %v, want SpotShop", spot.Kind)
	}
}

func TestSpot_ReachableUnconditional(t *testing.T) {
	spot := NewSpot(SpotChest, FieldSurface, 0, "chest", nil)
	if !spot.Reachable(map[string]struct{}{}, 0) {
		t.Fatal("spot with nil requirements must be reachable")
	}
}

func TestStorage_AllSpotsOrder(t *testing.T) {
	s := &Storage{
		MainWeaponSpots: []Spot{NewSpot(SpotMainWeapon, FieldSurface, 0, "mw", nil)},
		SubWeaponSpots:  []Spot{NewSpot(SpotSubWeapon, FieldSurface, 0, "sw", nil)},
		ChestSpots:      []Spot{NewSpot(SpotChest, FieldSurface, 0, "chest", nil)},
		SealSpots:       []Spot{NewSpot(SpotSeal, FieldSurface, 0, "seal", nil)},
		ShopSpots:       []Spot{NewShopSpot(FieldSurface, 0, [3]string{"x", "y", "z"}, nil)},
	}
	all := s.AllSpots()
	if len(all) != 5 {
		t.Fatalf("len(AllSpots()) = %d, want 5", len(all))
	}
	wantKinds := []SpotKind{SpotMainWeapon, SpotSubWeapon, SpotChest, SpotSeal, SpotShop}
	for i, k := range wantKinds {
		if all[i].Kind != k {
			t.Fatalf("AllSpots()[%d].Kind = %v, want %v", i, all[i].Kind, k)
		}
	}
}

func TestStorage_CloneIndependentBackingArrays(t *testing.T) {
	s := &Storage{ChestSpots: []Spot{NewSpot(SpotChest, FieldSurface, 0, "chest", nil)}}
	clone := s.Clone()
	clone.ChestSpots[0].Name = "mutated"
	if s.ChestSpots[0].Name == "mutated" {
		t.Fatal("Clone must not share backing arrays with the original")
	}
}

func TestItem_CanDisplayInShop(t *testing.T) {
	cases := []struct {
		item Item
		want bool
	}{
		{NewMainWeapon(0, flag.New("mainWeapon")), false},
		{NewSubWeaponBody(0, flag.New("pistol")), true},
		{NewSubWeaponBody(0, flag.New("shieldA")), false},
		{NewSubWeaponAmmo(0, flag.New("ammo")), true},
		{NewSeal(0, flag.New("seal1")), false},
		{NewChestItem(0, flag.New("boots")), false},
		{NewChestItem(0, flag.New("mapGateOfGuidance")), false},
		{NewChestItem(0, flag.New("ankhJewel")), true},
		{NewChestItem(0, flag.NewSacredOrb(1)), false},
		{NewShopItem(0, 0, flag.New("anything")), true},
	}
	for _, c := range cases {
		if got := c.item.CanDisplayInShop(); got != c.want {
			t.Errorf("Item{%v}.CanDisplayInShop() = %v, want %v", c.item, got, c.want)
		}
	}
}

func TestItem_IsMap(t *testing.T) {
	m := NewChestItem(0, flag.New("mapGateOfGuidance"))
	if !m.IsMap() {
		t.Fatal("mapGateOfGuidance must be recognized as a map item")
	}
	nonMap := NewChestItem(0, flag.New("boots"))
	if nonMap.IsMap() {
		t.Fatal("boots must not be recognized as a map item")
	}
}

func TestItem_IsConsumable(t *testing.T) {
	if !NewSubWeaponAmmo(0, flag.New("ammo")).IsConsumable() {
		t.Fatal("sub weapon ammo must be consumable")
	}
	if NewSubWeaponBody(0, flag.New("pistol")).IsConsumable() {
		t.Fatal("sub weapon body must not be consumable")
	}
}
