package script

import "testing"

const sampleScript = `<TALK>
Hello
</TALK>
<TALK>
</TALK>
<WORLD 0>
<FIELD 1,2,3,4,5>
<CHIPLINE 10,20>
<HIT -1,2>
<ANIME 1,2,3>
<OBJECT 1,100,200,-1,5,696,0>
<START 99999,1>
<START 58,0>
</OBJECT>
<MAP 0,0,0>
<UP -1,-1,-1,-1>
<RIGHT 1,0,0,0>
<DOWN -1,-1,-1,-1>
<LEFT -1,-1,-1,-1>
<OBJECT 77,50,60,2,4002,0,0>
</OBJECT>
</MAP>
</FIELD>
</WORLD>
`

func TestParseScript_RoundTrip(t *testing.T) {
	s, err := ParseScript(sampleScript)
	if err != nil {
		t.Fatalf("ParseScript: %v", err)
	}
	out := StringifyScript(s)
	if out != sampleScript {
		t.Fatalf("round trip mismatch:\n--- got ---\n%s\n--- want ---\n%s", out, sampleScript)
	}
}

func TestParseScript_TalkCount(t *testing.T) {
	s, err := ParseScript(sampleScript)
	if err != nil {
		t.Fatalf("ParseScript: %v", err)
	}
	if len(s.Talks) != 2 {
		t.Fatalf("got %d talks, want 2", len(s.Talks))
	}
	if s.Talks[0] != "Hello\n" {
		t.Fatalf("talk[0] = %q", s.Talks[0])
	}
}

func TestParseScript_ObjectFields(t *testing.T) {
	s, err := ParseScript(sampleScript)
	if err != nil {
		t.Fatalf("ParseScript: %v", err)
	}
	field := s.Worlds[0].Fields[0]
	chest := field.Objects[0]
	openFlag, itemNumber, flag, ok := chest.ChestItem()
	if !ok {
		t.Fatal("expected chest interpretation")
	}
	if openFlag != -1 || itemNumber != 5 || flag != 696 {
		t.Fatalf("ChestItem() = %d,%d,%d", openFlag, itemNumber, flag)
	}
	if len(chest.Starts) != 2 || chest.Starts[0].Flag != 99999 || !chest.Starts[0].RunWhenUnset {
		t.Fatalf("unexpected starts: %+v", chest.Starts)
	}

	m := field.Maps[0]
	mainWeapon := m.Objects[0]
	number, flag, ok := mainWeapon.MainWeapon()
	if !ok || number != 2 || flag != 4002 {
		t.Fatalf("MainWeapon() = %d,%d,%v", number, flag, ok)
	}
}

func TestParseScript_MissingCloseTag(t *testing.T) {
	if _, err := ParseScript("<TALK>\nunterminated"); err == nil {
		t.Fatal("expected an error for an unterminated <TALK>")
	}
}

func TestParseScript_WrongAttrCount(t *testing.T) {
	if _, err := ParseScript("<WORLD 0>\n<FIELD 1,2,3>\n</FIELD>\n</WORLD>\n"); err == nil {
		t.Fatal("expected an error for a <FIELD> with too few attributes")
	}
}
