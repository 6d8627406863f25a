//go:build debugassert

package validate

import (
	"fmt"

	"github.com/duskvale/relicshuffle/pkg/storage"
)

// uniquenessExceptions names items allowed to repeat even though they
// are not consumable, per spec.md §4.4.
var uniquenessExceptions = map[string]bool{
	"shellHorn": true,
	"finder":    true,
}

// AssertUnique panics if any non-consumable, non-excepted item name
// repeats within a kind-class group (spec.md §4.4: main+sub weapons
// together, chests alone, seals alone, shops alone). Built only under
// the debugassert tag, the Go analogue of Rust's cfg!(debug_assertions)
// gate around the original's assert_unique — release builds never pay
// for this check and must never rely on it firing.
func AssertUnique(st *storage.Storage) {
	assertGroupUnique("weapon", append(append([]storage.Item(nil), st.MainWeaponItems...), st.SubWeaponItems...))
	assertGroupUnique("chest", st.ChestItems)
	assertGroupUnique("seal", st.SealItems)
	assertGroupUnique("shop", st.ShopItems)
}

func assertGroupUnique(group string, items []storage.Item) {
	seen := make(map[string]bool, len(items))
	for _, it := range items {
		if it.IsConsumable() || uniquenessExceptions[it.Name.Name()] {
			continue
		}
		key := fmt.Sprintf("%s:%s", group, it.Name.Name())
		if seen[key] {
			panic(fmt.Sprintf("duplicate item: %s", key))
		}
		seen[key] = true
	}
}
