package clip

import (
	"fmt"
	"io"
	"strings"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/xml"
)

// Precision is the number of significant digits written for coordinates in
// SVG output.
var Precision = 6

type num float64

func (f num) String() string {
	s := fmt.Sprintf("%.*g", Precision, float64(f))
	return string(minify.Number([]byte(s), Precision))
}

// pathData returns the SVG path data of p with minified numbers.
func pathData(p *Path) string {
	sb := strings.Builder{}
	i := 0
	for _, cmd := range p.cmds {
		switch cmd {
		case MoveToCmd:
			sb.WriteString("M")
			sb.WriteString(num(p.d[i]).String())
			sb.WriteString(" ")
			sb.WriteString(num(p.d[i+1]).String())
			i += 2
		case LineToCmd:
			sb.WriteString("L")
			sb.WriteString(num(p.d[i]).String())
			sb.WriteString(" ")
			sb.WriteString(num(p.d[i+1]).String())
			i += 2
		case CloseCmd:
			sb.WriteString("z")
		}
	}
	return sb.String()
}

// WriteSVG writes the paths as an SVG document with the given view box size.
func WriteSVG(w io.Writer, paths []*Path, width, height float64) error {
	sb := strings.Builder{}
	sb.WriteString(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 `)
	sb.WriteString(num(width).String())
	sb.WriteString(" ")
	sb.WriteString(num(height).String())
	sb.WriteString(`">`)
	for _, p := range paths {
		if p.Empty() {
			continue
		}
		sb.WriteString(`<path d="`)
		sb.WriteString(pathData(p))
		sb.WriteString(`"/>`)
	}
	sb.WriteString("</svg>\n")
	_, err := w.Write([]byte(sb.String()))
	return err
}

// ReadSVGPaths extracts the path data of all path elements in an SVG
// document.
func ReadSVGPaths(r io.Reader) ([]*Path, error) {
	var paths []*Path
	l := xml.NewLexer(parse.NewInput(r))
	tag := ""
	for {
		tt, _ := l.Next()
		switch tt {
		case xml.ErrorToken:
			if l.Err() == io.EOF {
				return paths, nil
			}
			return nil, l.Err()
		case xml.StartTagToken:
			tag = string(l.Text())
		case xml.AttributeToken:
			if tag != "path" || string(l.Text()) != "d" {
				break
			}
			val := l.AttrVal()
			if len(val) > 1 && (val[0] == '\'' || val[0] == '"') && val[0] == val[len(val)-1] {
				val = val[1 : len(val)-1]
			}
			p, err := ParseSVGPath(string(val))
			if err != nil {
				return nil, fmt.Errorf("bad path element: %w", err)
			}
			paths = append(paths, p)
		}
	}
}
