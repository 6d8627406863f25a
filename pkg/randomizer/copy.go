package randomizer

import "github.com/duskvale/relicshuffle/pkg/script"

// cloneScript deep-copies s so RewriteScript can edit the copy in
// place without mutating its input — the Object Rewriter must be a
// pure function of (old model, spoiler log), per spec.md §4.6.
func cloneScript(s *script.Script) *script.Script {
	out := &script.Script{
		Talks:  append([]script.Talk{}, s.Talks...),
		Worlds: make([]script.World, len(s.Worlds)),
	}
	for i, w := range s.Worlds {
		out.Worlds[i] = cloneWorld(w)
	}
	return out
}

func cloneWorld(w script.World) script.World {
	fields := make([]script.Field, len(w.Fields))
	for i, f := range w.Fields {
		fields[i] = cloneField(f)
	}
	return script.World{Number: w.Number, Fields: fields}
}

func cloneField(f script.Field) script.Field {
	out := script.Field{
		Attrs:    f.Attrs,
		ChipLine: f.ChipLine,
		Hits:     append([][2]int16{}, f.Hits...),
		Objects:  make([]script.Object, len(f.Objects)),
		Maps:     make([]script.Map, len(f.Maps)),
	}
	out.Animes = make([][]uint16, len(f.Animes))
	for i, a := range f.Animes {
		out.Animes[i] = append([]uint16{}, a...)
	}
	for i, o := range f.Objects {
		out.Objects[i] = cloneObject(o)
	}
	for i, m := range f.Maps {
		out.Maps[i] = cloneMap(m)
	}
	return out
}

func cloneMap(m script.Map) script.Map {
	out := script.Map{
		Attrs: m.Attrs, Up: m.Up, Right: m.Right, Down: m.Down, Left: m.Left,
		Objects: make([]script.Object, len(m.Objects)),
	}
	for i, o := range m.Objects {
		out.Objects[i] = cloneObject(o)
	}
	return out
}

func cloneObject(o script.Object) script.Object {
	out := o
	out.Starts = append([]script.Start{}, o.Starts...)
	return out
}
