package script

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// tagPattern matches one tag of the script's SGML-like tag soup: an
// optional leading slash (close tag), a bare name, and a comma-joined
// decimal attribute list with no `=value` pairs — this is not real
// HTML, just a convenient angle-bracket delimiter the original format
// borrows (see DESIGN.md's Open Question decision on this package).
var tagPattern = regexp.MustCompile(`<(/?)([A-Za-z]+)\s*([^>]*)>`)

type tagToken struct {
	name    string
	closing bool
	attrs   []int64
	start   int // index of '<' in the source text
	end     int // index just past the matching '>'
}

func tokenize(text string) ([]tagToken, error) {
	matches := tagPattern.FindAllStringSubmatchIndex(text, -1)
	tokens := make([]tagToken, 0, len(matches))
	for _, m := range matches {
		closing := text[m[2]:m[3]] == "/"
		name := strings.ToLower(text[m[4]:m[5]])
		rawAttrs := strings.TrimSpace(text[m[6]:m[7]])
		var attrs []int64
		if rawAttrs != "" {
			for _, part := range strings.Split(rawAttrs, ",") {
				v, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
				if err != nil {
					return nil, fmt.Errorf("parse script: tag %q: attribute %q: %w", name, part, err)
				}
				attrs = append(attrs, v)
			}
		}
		tokens = append(tokens, tagToken{
			name:    name,
			closing: closing,
			attrs:   attrs,
			start:   m[0],
			end:     m[1],
		})
	}
	return tokens, nil
}

// ParseScript parses the tag-soup script text into a Script. Round-
// tripping through StringifyScript must reproduce the input exactly
// (spec.md §6).
func ParseScript(text string) (*Script, error) {
	tokens, err := tokenize(text)
	if err != nil {
		return nil, err
	}

	var talks []Talk
	var worlds []World
	i := 0
	for i < len(tokens) {
		tok := tokens[i]
		switch {
		case tok.name == "talk" && !tok.closing:
			body, next, err := parseTalkBody(text, tokens, i)
			if err != nil {
				return nil, err
			}
			talks = append(talks, Talk(body))
			i = next
		case tok.name == "world" && !tok.closing:
			w, next, err := parseWorld(tokens, i)
			if err != nil {
				return nil, err
			}
			worlds = append(worlds, w)
			i = next
		default:
			i++
		}
	}
	return &Script{Talks: talks, Worlds: worlds}, nil
}

func parseTalkBody(text string, tokens []tagToken, i int) (string, int, error) {
	if i+1 >= len(tokens) || tokens[i+1].name != "talk" || !tokens[i+1].closing {
		return "", 0, fmt.Errorf("parse script: <TALK> at offset %d has no matching </TALK>", tokens[i].start)
	}
	body := text[tokens[i].end:tokens[i+1].start]
	return strings.TrimLeft(body, "\n"), i + 2, nil
}

func expectAttrs(tok tagToken, n int) error {
	if len(tok.attrs) != n {
		return fmt.Errorf("parse script: <%s> at offset %d: expected %d attribute(s), got %d", strings.ToUpper(tok.name), tok.start, n, len(tok.attrs))
	}
	return nil
}

func parseWorld(tokens []tagToken, i int) (World, int, error) {
	open := tokens[i]
	if err := expectAttrs(open, 1); err != nil {
		return World{}, 0, err
	}
	w := World{Number: uint8(open.attrs[0])}
	i++
	for i < len(tokens) {
		tok := tokens[i]
		if tok.name == "world" && tok.closing {
			return w, i + 1, nil
		}
		if tok.name != "field" || tok.closing {
			return World{}, 0, fmt.Errorf("parse script: unexpected <%s> inside <WORLD %d>", tok.name, w.Number)
		}
		f, next, err := parseField(tokens, i)
		if err != nil {
			return World{}, 0, err
		}
		w.Fields = append(w.Fields, f)
		i = next
	}
	return World{}, 0, fmt.Errorf("parse script: <WORLD %d> has no matching </WORLD>", w.Number)
}

func parseField(tokens []tagToken, i int) (Field, int, error) {
	open := tokens[i]
	if err := expectAttrs(open, 5); err != nil {
		return Field{}, 0, err
	}
	f := Field{Attrs: [5]uint8{
		uint8(open.attrs[0]), uint8(open.attrs[1]), uint8(open.attrs[2]), uint8(open.attrs[3]), uint8(open.attrs[4]),
	}}
	i++
	for i < len(tokens) {
		tok := tokens[i]
		switch {
		case tok.name == "field" && tok.closing:
			return f, i + 1, nil
		case tok.name == "chipline":
			if err := expectAttrs(tok, 2); err != nil {
				return Field{}, 0, err
			}
			f.ChipLine = [2]uint16{uint16(tok.attrs[0]), uint16(tok.attrs[1])}
			i++
		case tok.name == "hit":
			if err := expectAttrs(tok, 2); err != nil {
				return Field{}, 0, err
			}
			f.Hits = append(f.Hits, [2]int16{int16(tok.attrs[0]), int16(tok.attrs[1])})
			i++
		case tok.name == "anime":
			anime := make([]uint16, len(tok.attrs))
			for j, a := range tok.attrs {
				anime[j] = uint16(a)
			}
			f.Animes = append(f.Animes, anime)
			i++
		case tok.name == "object" && !tok.closing:
			o, next, err := parseObject(tokens, i)
			if err != nil {
				return Field{}, 0, err
			}
			f.Objects = append(f.Objects, o)
			i = next
		case tok.name == "map" && !tok.closing:
			m, next, err := parseMap(tokens, i)
			if err != nil {
				return Field{}, 0, err
			}
			f.Maps = append(f.Maps, m)
			i = next
		default:
			return Field{}, 0, fmt.Errorf("parse script: unexpected <%s> inside <FIELD>", tok.name)
		}
	}
	return Field{}, 0, fmt.Errorf("parse script: <FIELD> has no matching </FIELD>")
}

func parseObject(tokens []tagToken, i int) (Object, int, error) {
	open := tokens[i]
	if err := expectAttrs(open, 7); err != nil {
		return Object{}, 0, err
	}
	o := Object{
		Number: uint16(open.attrs[0]),
		X:      int32(open.attrs[1]),
		Y:      int32(open.attrs[2]),
		Op1:    int32(open.attrs[3]),
		Op2:    int32(open.attrs[4]),
		Op3:    int32(open.attrs[5]),
		Op4:    int32(open.attrs[6]),
	}
	i++
	for i < len(tokens) {
		tok := tokens[i]
		if tok.name == "object" && tok.closing {
			return o, i + 1, nil
		}
		if tok.name != "start" {
			return Object{}, 0, fmt.Errorf("parse script: unexpected <%s> inside <OBJECT>", tok.name)
		}
		if err := expectAttrs(tok, 2); err != nil {
			return Object{}, 0, err
		}
		o.Starts = append(o.Starts, Start{
			Flag:         uint32(tok.attrs[0]),
			RunWhenUnset: tok.attrs[1] != 0,
		})
		i++
	}
	return Object{}, 0, fmt.Errorf("parse script: <OBJECT> has no matching </OBJECT>")
}

func parseMap(tokens []tagToken, i int) (Map, int, error) {
	open := tokens[i]
	if err := expectAttrs(open, 3); err != nil {
		return Map{}, 0, err
	}
	m := Map{Attrs: [3]uint8{uint8(open.attrs[0]), uint8(open.attrs[1]), uint8(open.attrs[2])}}
	i++
	var haveUp, haveRight, haveDown, haveLeft bool
	for i < len(tokens) {
		tok := tokens[i]
		switch {
		case tok.name == "map" && tok.closing:
			if !haveUp || !haveRight || !haveDown || !haveLeft {
				return Map{}, 0, fmt.Errorf("parse script: <MAP %d,%d,%d> missing one of UP/RIGHT/DOWN/LEFT", m.Attrs[0], m.Attrs[1], m.Attrs[2])
			}
			return m, i + 1, nil
		case tok.name == "up":
			dir, err := parseDirection(tok)
			if err != nil {
				return Map{}, 0, err
			}
			m.Up, haveUp = dir, true
			i++
		case tok.name == "right":
			dir, err := parseDirection(tok)
			if err != nil {
				return Map{}, 0, err
			}
			m.Right, haveRight = dir, true
			i++
		case tok.name == "down":
			dir, err := parseDirection(tok)
			if err != nil {
				return Map{}, 0, err
			}
			m.Down, haveDown = dir, true
			i++
		case tok.name == "left":
			dir, err := parseDirection(tok)
			if err != nil {
				return Map{}, 0, err
			}
			m.Left, haveLeft = dir, true
			i++
		case tok.name == "object" && !tok.closing:
			o, next, err := parseObject(tokens, i)
			if err != nil {
				return Map{}, 0, err
			}
			m.Objects = append(m.Objects, o)
			i = next
		default:
			return Map{}, 0, fmt.Errorf("parse script: unexpected <%s> inside <MAP>", tok.name)
		}
	}
	return Map{}, 0, fmt.Errorf("parse script: <MAP> has no matching </MAP>")
}

func parseDirection(tok tagToken) ([4]int8, error) {
	if err := expectAttrs(tok, 4); err != nil {
		return [4]int8{}, err
	}
	return [4]int8{int8(tok.attrs[0]), int8(tok.attrs[1]), int8(tok.attrs[2]), int8(tok.attrs[3])}, nil
}
