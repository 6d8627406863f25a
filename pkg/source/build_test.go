package source

import "testing"

func testFiles() SupplementFiles {
	return SupplementFiles{
		WeaponsYML: `
main_weapons:
  - name: mainWeaponA
    requirements: []
  - name: mainWeaponB
    requirements: ["mainWeaponA"]
sub_weapons:
  - name: pistol
    requirements: []
`,
		ChestsYML: `
chests:
  - name: chestItemA
    requirements: ["event:openedGate"]
`,
		SealsYML: `
seals:
  - name: seal1
    requirements: []
`,
		ShopsYML: `
shops:
  - names: "shopA,shopB,shopC"
    requirements: []
`,
		EventsYML: `
events:
  - name: openedGate
    requirements: ["mainWeaponA"]
`,
	}
}

func TestBuildSource_Basic(t *testing.T) {
	st, warnings, err := BuildSource(testFiles())
	if err != nil {
		t.Fatalf("BuildSource: %v", err)
	}
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}

	if len(st.MainWeaponSpots) != 2 {
		t.Fatalf("len(MainWeaponSpots) = %d, want 2", len(st.MainWeaponSpots))
	}
	if len(st.ShopSpots) != 1 || st.ShopSpots[0].Name != "shopA,shopB,shopC" {
		t.Fatalf("unexpected shop spots: %+v", st.ShopSpots)
	}
	if len(st.ShopItems) != 3 {
		t.Fatalf("len(ShopItems) = %d, want 3", len(st.ShopItems))
	}

	// The chest's event:openedGate requirement must have been fully
	// substituted by mainWeaponA's requirement; no event: reference
	// should survive source construction (spec.md §8 invariant 2).
	chestReq := st.ChestSpots[0].Requirements
	if chestReq.HasEventReference() {
		t.Fatalf("chest requirement still references an event: %+v", chestReq)
	}
}

func TestBuildSource_MissingRequirementWarns(t *testing.T) {
	files := testFiles()
	files.ChestsYML = `
chests:
  - name: chestItemA
    requirements: ["itemThatDoesNotExist"]
`
	_, warnings, err := BuildSource(files)
	if err != nil {
		t.Fatalf("BuildSource: %v", err)
	}
	if len(warnings) == 0 {
		t.Fatal("expected a missing-requirement warning")
	}
}

func TestBuildSource_MalformedShopNamesErrors(t *testing.T) {
	files := testFiles()
	files.ShopsYML = `
shops:
  - names: "onlyOneName"
    requirements: []
`
	_, _, err := BuildSource(files)
	if err == nil {
		t.Fatal("expected an error for a shop record with != 3 names")
	}
}

func TestHashSupplements_Deterministic(t *testing.T) {
	files := testFiles()
	h1 := HashSupplements(files)
	h2 := HashSupplements(files)
	if h1 != h2 {
		t.Fatalf("HashSupplements not deterministic: %q vs %q", h1, h2)
	}
	if len(h1) != 128 {
		t.Fatalf("len(hash) = %d, want 128 (SHA3-512 hex)", len(h1))
	}
}
