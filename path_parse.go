package clip

import (
	"fmt"

	"github.com/tdewolff/parse/v2/strconv"
)

// ParseSVGPath parses an SVG path data string into a Path. Only the straight
// commands MoveTo, LineTo, Horizontal/VerticalLineTo and ClosePath are
// supported, in their absolute and relative forms. Curve commands return an
// error; flatten curves before parsing.
func ParseSVGPath(s string) (*Path, error) {
	b := []byte(s)
	p := &Path{}
	var prevCmd byte
	i := 0
	for i < len(b) {
		if b[i] == ' ' || b[i] == ',' || b[i] == '\n' || b[i] == '\r' || b[i] == '\t' {
			i++
			continue
		}

		cmd := b[i]
		if '0' <= cmd && cmd <= '9' || cmd == '.' || cmd == '-' || cmd == '+' {
			// implicit repetition of the previous command
			if prevCmd == 0 || prevCmd == 'Z' || prevCmd == 'z' {
				return nil, fmt.Errorf("bad path: expected command at position %d", i+1)
			}
			cmd = prevCmd
			if cmd == 'M' {
				cmd = 'L'
			} else if cmd == 'm' {
				cmd = 'l'
			}
		} else {
			i++
		}

		x, y := p.Pos()
		switch cmd {
		case 'M', 'm':
			a, n, err := parseNum(b, i)
			if err != nil {
				return nil, err
			}
			c, n2, err := parseNum(b, n)
			if err != nil {
				return nil, err
			}
			i = n2
			if cmd == 'm' {
				a += x
				c += y
			}
			p.MoveTo(a, c)
		case 'L', 'l':
			a, n, err := parseNum(b, i)
			if err != nil {
				return nil, err
			}
			c, n2, err := parseNum(b, n)
			if err != nil {
				return nil, err
			}
			i = n2
			if cmd == 'l' {
				a += x
				c += y
			}
			p.LineTo(a, c)
		case 'H', 'h':
			a, n, err := parseNum(b, i)
			if err != nil {
				return nil, err
			}
			i = n
			if cmd == 'h' {
				a += x
			}
			p.LineTo(a, y)
		case 'V', 'v':
			a, n, err := parseNum(b, i)
			if err != nil {
				return nil, err
			}
			i = n
			if cmd == 'v' {
				a += y
			}
			p.LineTo(x, a)
		case 'Z', 'z':
			p.Close()
		case 'C', 'c', 'S', 's', 'Q', 'q', 'T', 't', 'A', 'a':
			return nil, fmt.Errorf("bad path: curve command '%c' not supported", cmd)
		default:
			return nil, fmt.Errorf("bad path: unknown command '%c' at position %d", cmd, i)
		}
		prevCmd = cmd
	}
	return p, nil
}

// MustParseSVGPath is like ParseSVGPath but panics on error.
func MustParseSVGPath(s string) *Path {
	p, err := ParseSVGPath(s)
	if err != nil {
		panic(err)
	}
	return p
}

func parseNum(b []byte, i int) (float64, int, error) {
	for i < len(b) && (b[i] == ' ' || b[i] == ',' || b[i] == '\n' || b[i] == '\r' || b[i] == '\t') {
		i++
	}
	f, n := strconv.ParseFloat(b[i:])
	if n == 0 {
		return 0.0, i, fmt.Errorf("bad path: expected number at position %d", i+1)
	}
	return f, i + n, nil
}
