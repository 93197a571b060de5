package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"flaggallery/flags"
	"flaggallery/names"
	"flaggallery/render"
	"flaggallery/shape"
	"flaggallery/turtle"
)

const margin = 10

func main() {
	var (
		outPath = flag.String("out", "", "Output file (.png or .svg).")
		code    = flag.String("code", "", "Numeric country code, e.g. 250.")
		width   = flag.Int("width", 300, "Flag width in pixels.")
		lang    = flag.String("lang", "", "Label language (empty = no label).")
		list    = flag.Bool("list", false, "List the available codes and exit.")
	)
	flag.Parse()

	cat := flags.Default()
	if *list {
		tab := names.Load(names.Embedded(), names.BaseLanguage(*lang), names.DefaultLanguage, nil)
		for _, f := range cat.All() {
			fmt.Printf("%s\t%.3f\t%s\n", f.Code(), f.Ratio(), tab.Name(f.Code()))
		}
		return
	}

	if *outPath == "" || *code == "" {
		fatalf("usage: mkflag -code 250 -out fr.svg [-width 300] [-lang fr]\n       mkflag -list [-lang fr]")
	}
	n, err := strconv.Atoi(*code)
	if err != nil {
		fatalf("bad code %q", *code)
	}
	f, err := cat.Get(flags.Code(n))
	if err != nil {
		fatalf("%v", err)
	}
	if *width <= 0 {
		fatalf("bad width %d", *width)
	}

	var label string
	if *lang != "" {
		tab := names.Load(names.Embedded(), names.BaseLanguage(*lang), names.DefaultLanguage, nil)
		label = tab.Name(f.Code())
	}

	fr, err := draw(f, float64(*width), label)
	if err != nil {
		fatalf("draw %s: %v", f.Code(), err)
	}
	if err := render.WriteFile(*outPath, fr); err != nil {
		fatalf("write: %v", err)
	}
}

// draw renders f centered in a canvas just large enough for it, its outline
// and an optional label.
func draw(f flags.Flag, w float64, label string) (render.Frame, error) {
	h := w * f.Ratio()
	vp := turtle.Viewport{Width: w + 2*margin, Height: h + 2*margin}
	if label != "" {
		vp.Height += 20
	}
	o := turtle.Pt(-w/2, vp.Height/2-margin)

	rec := turtle.NewRecorder()
	c := turtle.New(rec, nil)
	if err := f.Draw(c, o, w, h); err != nil {
		return render.Frame{}, err
	}
	c.SetColor(turtle.Black)
	shape.Rectangle(c, o, w, h, 0)
	if label != "" {
		c.Text(turtle.Pt(0, o.Y-h-14), label)
	}
	if err := c.Flush(); err != nil {
		return render.Frame{}, err
	}
	return render.Frame{Ops: rec, Viewport: vp, Background: turtle.White, Title: label}, nil
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(2)
}
