package script

import (
	"strconv"
	"strings"
)

// StringifyScript renders a Script back to tag-soup text. It is the
// exact inverse of ParseScript: parsing its own output must reproduce
// the same Script.
func StringifyScript(s *Script) string {
	var b strings.Builder
	for _, t := range s.Talks {
		b.WriteString("<TALK>\n")
		b.WriteString(string(t))
		b.WriteString("</TALK>\n")
	}
	for _, w := range s.Worlds {
		stringifyWorld(&b, w)
	}
	return b.String()
}

func stringifyWorld(b *strings.Builder, w World) {
	b.WriteString("<WORLD ")
	b.WriteString(strconv.Itoa(int(w.Number)))
	b.WriteString(">\n")
	for _, f := range w.Fields {
		stringifyField(b, f)
	}
	b.WriteString("</WORLD>\n")
}

func stringifyField(b *strings.Builder, f Field) {
	b.WriteString("<FIELD ")
	writeInts(b, int(f.Attrs[0]), int(f.Attrs[1]), int(f.Attrs[2]), int(f.Attrs[3]), int(f.Attrs[4]))
	b.WriteString(">\n")

	b.WriteString("<CHIPLINE ")
	writeInts(b, int(f.ChipLine[0]), int(f.ChipLine[1]))
	b.WriteString(">\n")

	for _, hit := range f.Hits {
		b.WriteString("<HIT ")
		writeInts(b, int(hit[0]), int(hit[1]))
		b.WriteString(">\n")
	}
	for _, anime := range f.Animes {
		b.WriteString("<ANIME ")
		ints := make([]int, len(anime))
		for i, v := range anime {
			ints[i] = int(v)
		}
		writeInts(b, ints...)
		b.WriteString(">\n")
	}
	for _, o := range f.Objects {
		stringifyObject(b, o)
	}
	for _, m := range f.Maps {
		stringifyMap(b, m)
	}
	b.WriteString("</FIELD>\n")
}

func stringifyObject(b *strings.Builder, o Object) {
	b.WriteString("<OBJECT ")
	writeInts(b, int(o.Number), int(o.X), int(o.Y), int(o.Op1), int(o.Op2), int(o.Op3), int(o.Op4))
	b.WriteString(">\n")
	for _, s := range o.Starts {
		b.WriteString("<START ")
		runWhen := 0
		if s.RunWhenUnset {
			runWhen = 1
		}
		writeInts(b, int(s.Flag), runWhen)
		b.WriteString(">\n")
	}
	b.WriteString("</OBJECT>\n")
}

func stringifyMap(b *strings.Builder, m Map) {
	b.WriteString("<MAP ")
	writeInts(b, int(m.Attrs[0]), int(m.Attrs[1]), int(m.Attrs[2]))
	b.WriteString(">\n")

	writeDirection(b, "UP", m.Up)
	writeDirection(b, "RIGHT", m.Right)
	writeDirection(b, "DOWN", m.Down)
	writeDirection(b, "LEFT", m.Left)

	for _, o := range m.Objects {
		stringifyObject(b, o)
	}
	b.WriteString("</MAP>\n")
}

func writeDirection(b *strings.Builder, name string, dir [4]int8) {
	b.WriteString("<")
	b.WriteString(name)
	b.WriteString(" ")
	writeInts(b, int(dir[0]), int(dir[1]), int(dir[2]), int(dir[3]))
	b.WriteString(">\n")
}

func writeInts(b *strings.Builder, values ...int) {
	for i, v := range values {
		if i > 0 {
			b.WriteString(",")
		}
		b.WriteString(strconv.Itoa(v))
	}
}
