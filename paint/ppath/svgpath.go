// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// The SVG path data parser is adapted from https://github.com/tdewolff/canvas
// Copyright (c) 2015 Taco de Wolff, under an MIT License.

package ppath

import (
	"fmt"
	"strings"

	"cogentcore.org/canvas/math32"
	"github.com/tdewolff/parse/v2/strconv"
)

// SVGData returns the path in SVG path data format, in local coordinates.
// Straight segments are written as lines, curved ones as cubic beziers.
func (p *Path) SVGData() string {
	n := len(p.Points)
	if n == 0 {
		return ""
	}
	var sb strings.Builder
	f := p.Points[0]
	fmt.Fprintf(&sb, "M%g %g", f.X, f.Y)
	for i := range p.NumSegments() {
		s := p.Segment(i)
		last := p.Closed && i == n-1
		switch {
		case s.IsLine() && last:
			// drawn by the close
		case s.IsLine():
			fmt.Fprintf(&sb, "L%g %g", s.P3.X, s.P3.Y)
		default:
			fmt.Fprintf(&sb, "C%g %g %g %g %g %g", s.P1.X, s.P1.Y, s.P2.X, s.P2.Y, s.P3.X, s.P3.Y)
		}
	}
	if p.Closed {
		sb.WriteString("Z")
	}
	return sb.String()
}

func skipCommaWhitespace(path []byte) int {
	i := 0
	for i < len(path) && (path[i] == ' ' || path[i] == ',' || path[i] == '\n' || path[i] == '\r' || path[i] == '\t') {
		i++
	}
	return i
}

// MustParseSVGPath parses an SVG path data string and panics if it fails.
func MustParseSVGPath(s string) []*Path {
	ps, err := ParseSVGPath(s)
	if err != nil {
		panic(err)
	}
	return ps
}

// ParseSVGPath parses an SVG path data string into one [Path] per subpath.
// Quadratic beziers are converted to cubic ones. Arcs are not supported.
// A closing segment that returns exactly onto the first point is merged
// into it.
func ParseSVGPath(s string) ([]*Path, error) {
	path := []byte(s)
	i := skipCommaWhitespace(path)
	if i >= len(path) {
		return nil, nil
	}
	if path[i] < 'A' {
		return nil, fmt.Errorf("bad path: path should start with command")
	}

	cmdLens := map[byte]int{
		'M': 2,
		'Z': 0,
		'L': 2,
		'H': 1,
		'V': 1,
		'C': 6,
		'S': 4,
		'Q': 4,
		'T': 2,
		'A': 7,
	}
	f := [7]float32{}

	var paths []*Path
	var cur *Path
	var q, c math32.Vector2
	var p0, p1 math32.Vector2
	prevCmd := byte('z')

	// lineTo appends a new point, with the given handles on the
	// previous point and the new one. Handles on their anchor are dropped.
	lineTo := func(cp1, cp2 *math32.Vector2, end math32.Vector2) {
		if cur == nil {
			cur = New(NewAnchorPoint(p0.X, p0.Y))
			paths = append(paths, cur)
		}
		if cp1 != nil && *cp1 != p0 {
			cur.Last().HR = cp1
		}
		np := NewAnchorPoint(end.X, end.Y)
		if cp2 != nil && *cp2 != end {
			np.HL = cp2
		}
		cur.Points = append(cur.Points, np)
		np.Parent = cur
	}

	for {
		i += skipCommaWhitespace(path[i:])
		if len(path) <= i {
			break
		}

		cmd := prevCmd
		repeat := true
		if cmd == 'z' || cmd == 'Z' || !(path[i] >= '0' && path[i] <= '9' || path[i] == '.' || path[i] == '-' || path[i] == '+') {
			cmd = path[i]
			repeat = false
			i++
			i += skipCommaWhitespace(path[i:])
		}

		CMD := cmd
		if 'a' <= cmd && cmd <= 'z' {
			CMD -= 'a' - 'A'
		}
		nargs, ok := cmdLens[CMD]
		if !ok {
			return nil, fmt.Errorf("bad path: unknown command '%c' at position %d", cmd, i)
		}
		if CMD == 'A' {
			return nil, fmt.Errorf("bad path: arc command '%c' at position %d is not supported", cmd, i)
		}
		for j := range nargs {
			num, n := strconv.ParseFloat(path[i:])
			if n == 0 {
				if repeat && j == 0 && i < len(path) {
					return nil, fmt.Errorf("bad path: unknown command '%c' at position %d", path[i], i+1)
				} else if 1 < nargs {
					return nil, fmt.Errorf("bad path: sets of %d numbers should follow command '%c' at position %d", nargs, cmd, i+1)
				}
				return nil, fmt.Errorf("bad path: number should follow command '%c' at position %d", cmd, i+1)
			}
			f[j] = float32(num)
			i += n
			i += skipCommaWhitespace(path[i:])
		}

		rel := 'a' <= cmd && cmd <= 'z'
		abs := func(v math32.Vector2) math32.Vector2 {
			if rel {
				return v.Add(p0)
			}
			return v
		}
		switch CMD {
		case 'M':
			p1 = abs(math32.Vec2(f[0], f[1]))
			cur = New(NewAnchorPoint(p1.X, p1.Y))
			paths = append(paths, cur)
			if rel {
				cmd = 'l'
			} else {
				cmd = 'L'
			}
		case 'Z':
			if cur != nil {
				p1 = cur.First().Pos()
				closePath(cur)
				cur = nil
			}
		case 'L':
			p1 = abs(math32.Vec2(f[0], f[1]))
			lineTo(nil, nil, p1)
		case 'H':
			p1.X = f[0]
			if rel {
				p1.X += p0.X
			}
			lineTo(nil, nil, p1)
		case 'V':
			p1.Y = f[0]
			if rel {
				p1.Y += p0.Y
			}
			lineTo(nil, nil, p1)
		case 'C':
			cp1 := abs(math32.Vec2(f[0], f[1]))
			cp2 := abs(math32.Vec2(f[2], f[3]))
			p1 = abs(math32.Vec2(f[4], f[5]))
			lineTo(&cp1, &cp2, p1)
			c = cp2
		case 'S':
			cp1 := p0
			cp2 := abs(math32.Vec2(f[0], f[1]))
			p1 = abs(math32.Vec2(f[2], f[3]))
			if prevCmd == 'C' || prevCmd == 'c' || prevCmd == 'S' || prevCmd == 's' {
				cp1 = p0.MulScalar(2).Sub(c)
			}
			lineTo(&cp1, &cp2, p1)
			c = cp2
		case 'Q', 'T':
			var cp math32.Vector2
			if CMD == 'Q' {
				cp = abs(math32.Vec2(f[0], f[1]))
				p1 = abs(math32.Vec2(f[2], f[3]))
			} else {
				cp = p0
				p1 = abs(math32.Vec2(f[0], f[1]))
				if prevCmd == 'Q' || prevCmd == 'q' || prevCmd == 'T' || prevCmd == 't' {
					cp = p0.MulScalar(2).Sub(q)
				}
			}
			cp1 := p0.Lerp(cp, 2.0/3)
			cp2 := p1.Lerp(cp, 2.0/3)
			lineTo(&cp1, &cp2, p1)
			q = cp
		}
		prevCmd = cmd
		p0 = p1
	}
	return paths, nil
}

// closePath closes the path, merging a last point that coincides
// with the first one.
func closePath(p *Path) {
	p.Closed = true
	n := len(p.Points)
	if n < 2 {
		return
	}
	first, last := p.Points[0], p.Points[n-1]
	if first.Pos() == last.Pos() {
		first.HL = last.HL
		p.Points = p.Points[:n-1]
		last.Parent = nil
	}
}
