package main

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"os"
	"strings"

	"github.com/tdewolff/argp"
	"golang.org/x/image/vector"

	"github.com/vecpath/clip"
)

type Main struct {
	A      string `short:"a" desc:"First path in SVG path data notation"`
	B      string `short:"b" desc:"Second path in SVG path data notation"`
	Input  string `short:"i" desc:"Input SVG file providing the two paths"`
	Op     string `default:"intersection" desc:"Operation: intersection, union, difference, difference-reversed, xor"`
	Output string `short:"o" desc:"Output file (.svg or .png), writes SVG path data to stdout when absent"`
	Size   int    `default:"512" desc:"Output image width in pixels for PNG output"`
}

func main() {
	root := argp.NewCmd(&Main{}, "Boolean operations on closed SVG paths")
	root.Parse()
	root.PrintHelp()
}

func (cmd *Main) Run() error {
	op, err := clip.ParseOp(cmd.Op)
	if err != nil {
		return err
	}

	var a, b *clip.Path
	if cmd.Input != "" {
		f, err := os.Open(cmd.Input)
		if err != nil {
			return err
		}
		paths, err := clip.ReadSVGPaths(f)
		f.Close()
		if err != nil {
			return err
		} else if len(paths) < 2 {
			return fmt.Errorf("%s: expected at least two path elements", cmd.Input)
		}
		a, b = paths[0], paths[1]
	} else if cmd.A != "" && cmd.B != "" {
		if a, err = clip.ParseSVGPath(cmd.A); err != nil {
			return err
		}
		if b, err = clip.ParseSVGPath(cmd.B); err != nil {
			return err
		}
	} else {
		return argp.ShowUsage
	}

	paths, err := clip.Clip(a, b, op)
	if err != nil {
		return err
	}

	if cmd.Output == "" {
		for _, p := range paths {
			fmt.Println(p)
		}
		return nil
	}

	f, err := os.Create(cmd.Output)
	if err != nil {
		return err
	}
	defer f.Close()

	if strings.HasSuffix(cmd.Output, ".png") {
		return writePNG(f, paths, cmd.Size)
	}
	width, height := bounds(paths)
	return clip.WriteSVG(f, paths, width, height)
}

// bounds returns the extent of the paths from the origin, with a margin.
func bounds(paths []*clip.Path) (float64, float64) {
	width, height := 1.0, 1.0
	for _, p := range paths {
		for _, coord := range p.Coords() {
			width = math.Max(width, coord.X)
			height = math.Max(height, coord.Y)
		}
	}
	return width + 1.0, height + 1.0
}

func writePNG(f *os.File, paths []*clip.Path, size int) error {
	width, height := bounds(paths)
	scale := float64(size) / width
	h := int(math.Ceil(height * scale))

	img := image.NewRGBA(image.Rect(0, 0, size, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	ras := vector.NewRasterizer(size, h)
	for _, p := range paths {
		for _, sp := range p.Subpaths() {
			coords := sp.Coords()
			if len(coords) == 0 {
				continue
			}
			ras.MoveTo(float32(coords[0].X*scale), float32(coords[0].Y*scale))
			for _, coord := range coords[1:] {
				ras.LineTo(float32(coord.X*scale), float32(coord.Y*scale))
			}
			ras.ClosePath()
		}
	}
	ras.Draw(img, img.Bounds(), image.NewUniform(color.Black), image.Point{})
	return png.Encode(f, img)
}
