package main

import (
	"fmt"
	"math"
	"math/rand"
	"os"
	"time"

	"github.com/tdewolff/argp"
	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers"
	"github.com/tdewolff/sweep"
)

type Run struct {
	Output string `short:"o" default:"" desc:"Output file (default <input>.i)"`
	Quiet  bool   `short:"q" desc:"Do not print the intersection count"`
	Input  string `index:"0" desc:"Input file with one segment per line: x1 y1 x2 y2"`
}

type Gen struct {
	N      int     `short:"n" default:"1000" desc:"Number of segments"`
	Length float64 `short:"l" default:"10" desc:"Maximum segment length"`
	Seed   int64   `short:"s" default:"0" desc:"Random seed (0 seeds from the clock)"`
	Output string  `short:"o" default:"" desc:"Output file (default s_<n>_<length>.dat)"`
}

type Draw struct {
	Output string  `short:"o" default:"" desc:"Output image file (png, jpg, svg, pdf; default <input>.svg)"`
	Size   float64 `default:"200" desc:"Canvas size in millimeters of the longest side"`
	Input  string  `index:"0" desc:"Input file with one segment per line: x1 y1 x2 y2"`
}

func main() {
	root := argp.NewCmd(&Run{}, "Line segment intersection using the Bentley-Ottmann sweep line algorithm")
	root.AddCmd(&Gen{}, "gen", "Generate random input segments")
	root.AddCmd(&Draw{}, "draw", "Render segments and their intersections to an image")
	root.Parse()
	root.PrintHelp()
}

func (cmd *Run) Run() error {
	if cmd.Input == "" {
		return argp.ShowUsage
	}

	b, err := os.ReadFile(cmd.Input)
	if err != nil {
		return err
	}
	segments, err := sweep.ParseSegments(b)
	if err != nil {
		return fmt.Errorf("%v: %w", cmd.Input, err)
	}

	points, err := sweep.Intersections(segments)
	if err != nil {
		return err
	}
	if !cmd.Quiet {
		fmt.Println("intersections:", len(points))
	}

	output := cmd.Output
	if output == "" {
		output = cmd.Input + ".i"
	}
	f, err := os.Create(output)
	if err != nil {
		return err
	}
	if err := sweep.WritePoints(f, points); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func (cmd *Gen) Run() error {
	seed := cmd.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	r := rand.New(rand.NewSource(seed))

	segments := make([]sweep.Segment, cmd.N)
	for i := range segments {
		length := 0.01 + r.Float64()*(cmd.Length-0.01)
		angle := r.Float64() * 2.0 * math.Pi
		x1 := r.Float64() * 10000.0
		y1 := r.Float64() * 10000.0
		segments[i] = sweep.Segment{
			P: sweep.Point{X: x1, Y: y1},
			Q: sweep.Point{
				X: math.Abs(x1 + length*math.Cos(angle)),
				Y: math.Abs(y1 + length*math.Sin(angle)),
			},
		}
	}

	output := cmd.Output
	if output == "" {
		output = fmt.Sprintf("s_%d_%g.dat", cmd.N, cmd.Length)
	}
	f, err := os.Create(output)
	if err != nil {
		return err
	}
	if err := sweep.WriteSegments(f, segments); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func (cmd *Draw) Run() error {
	if cmd.Input == "" {
		return argp.ShowUsage
	}

	b, err := os.ReadFile(cmd.Input)
	if err != nil {
		return err
	}
	segments, err := sweep.ParseSegments(b)
	if err != nil {
		return fmt.Errorf("%v: %w", cmd.Input, err)
	}

	// use the computed intersections when present, otherwise run the sweep
	var points []sweep.Point
	if b, err := os.ReadFile(cmd.Input + ".i"); err == nil {
		if points, err = sweep.ParsePoints(b); err != nil {
			return fmt.Errorf("%v.i: %w", cmd.Input, err)
		}
	} else if points, err = sweep.Intersections(segments); err != nil {
		return err
	}

	xmin, ymin := math.Inf(1), math.Inf(1)
	xmax, ymax := math.Inf(-1), math.Inf(-1)
	for _, segment := range segments {
		xmin = math.Min(xmin, math.Min(segment.P.X, segment.Q.X))
		xmax = math.Max(xmax, math.Max(segment.P.X, segment.Q.X))
		ymin = math.Min(ymin, math.Min(segment.P.Y, segment.Q.Y))
		ymax = math.Max(ymax, math.Max(segment.P.Y, segment.Q.Y))
	}
	if len(segments) == 0 {
		xmin, ymin, xmax, ymax = 0.0, 0.0, 1.0, 1.0
	}

	const margin = 5.0 // mm
	scale := (cmd.Size - 2.0*margin) / math.Max(xmax-xmin, ymax-ymin)
	toCanvas := func(p sweep.Point) (float64, float64) {
		return margin + (p.X-xmin)*scale, margin + (p.Y-ymin)*scale
	}

	c := canvas.New(2.0*margin+(xmax-xmin)*scale, 2.0*margin+(ymax-ymin)*scale)
	ctx := canvas.NewContext(c)

	ctx.SetFillColor(canvas.White)
	ctx.DrawPath(0.0, 0.0, canvas.Rectangle(c.W, c.H))

	lines := &canvas.Path{}
	for _, segment := range segments {
		lines.MoveTo(toCanvas(segment.P))
		lines.LineTo(toCanvas(segment.Q))
	}
	ctx.SetFillColor(canvas.Transparent)
	ctx.SetStrokeColor(canvas.Blue)
	ctx.SetStrokeWidth(0.25)
	ctx.DrawPath(0.0, 0.0, lines)

	ctx.SetStrokeColor(canvas.Transparent)
	ctx.SetFillColor(canvas.Red)
	for _, p := range points {
		x, y := toCanvas(p)
		ctx.DrawPath(x, y, canvas.Circle(0.5))
	}

	output := cmd.Output
	if output == "" {
		output = cmd.Input + ".svg"
	}
	return renderers.Write(output, c)
}
