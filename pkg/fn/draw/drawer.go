package draw

import (
	"fmt"
	"io"
	"os"

	"github.com/dominikbraun/graph"
	"github.com/pkg/errors"
	colors "gopkg.in/go-playground/colors.v1"

	"github.com/kestrel-ui/fnkit/pkg/fn"
	"github.com/kestrel-ui/fnkit/pkg/fn/trace"
)

// Drawer accumulates pipeline structure as a directed graph and renders it
// as DOT.
type Drawer struct {
	graph    graph.Graph[string, string]
	recorder *trace.Recorder
	steps    int
	groups   int
}

// Option configures a Drawer.
type Option func(*Drawer)

// WithRecorder attaches a recorder whose average durations are rendered as
// vertex xlabels.
func WithRecorder(rec *trace.Recorder) Option {
	return func(d *Drawer) {
		d.recorder = rec
	}
}

// New creates an empty drawer.
func New(opts ...Option) *Drawer {
	d := &Drawer{
		graph: graph.New(graph.StringHash, graph.Directed()),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Pipeline adds one pipeline to the graph: a root vertex under the given
// name, then one vertex per entry, linked left to right. Nil entries are
// omitted, matching their runtime skip.
func Pipeline[T, E any](d *Drawer, name string, entries ...fn.Entry[T, E]) error {
	if err := d.addVertex(name, 0); err != nil {
		return err
	}

	_, err := addEntries(d, name, 1, entries)
	return err
}

func addEntries[T, E any](d *Drawer, prev string, depth int, entries []fn.Entry[T, E]) (string, error) {
	for _, entry := range entries {
		if skipped(entry) {
			continue
		}

		switch e := entry.(type) {
		case fn.Labeled[T, E]:
			if err := d.link(prev, e.Name, depth); err != nil {
				return "", err
			}
			prev = e.Name

		case fn.Group[T, E]:
			d.groups++
			name := fmt.Sprintf("group-%d", d.groups)
			if err := d.link(prev, name, depth); err != nil {
				return "", err
			}
			var err error
			prev, err = addEntries(d, name, depth+1, e)
			if err != nil {
				return "", err
			}

		default:
			d.steps++
			name := fmt.Sprintf("step-%d", d.steps)
			if err := d.link(prev, name, depth); err != nil {
				return "", err
			}
			prev = name
		}
	}
	return prev, nil
}

// skipped reports entries that apply as identity at runtime: nil entries,
// nil steps, and labels wrapping either.
func skipped[T, E any](entry fn.Entry[T, E]) bool {
	switch e := entry.(type) {
	case nil:
		return true
	case fn.Step[T, E]:
		return e == nil
	case fn.Labeled[T, E]:
		return skipped(e.Entry)
	}
	return false
}

func (d *Drawer) link(from, to string, depth int) error {
	if err := d.addVertex(to, depth); err != nil {
		return err
	}
	return d.addEdge(from, to)
}

func (d *Drawer) addVertex(name string, depth int) error {
	hex, err := depthColor(depth)
	if err != nil {
		return err
	}

	attrs := []func(*graph.VertexProperties){
		graph.VertexAttribute("color", hex),
	}
	if d.recorder != nil {
		if avg := d.recorder.AVGDuration(name); avg != 0 {
			attrs = append(attrs, graph.VertexAttribute("xlabel", avg.String()))
		}
	}

	err = d.graph.AddVertex(name, attrs...)
	if err != nil {
		return errors.Wrapf(err, "unable to add vertex %s", name)
	}
	return nil
}

func (d *Drawer) addEdge(from, to string) error {
	err := d.graph.AddEdge(from, to)
	if err != nil {
		return errors.Wrapf(err, "unable to add edge from %s to %s", from, to)
	}
	return nil
}

// Draw renders the accumulated graph as DOT.
func (d *Drawer) Draw(wrt io.Writer) error {
	desc, err := generateDOT(d.graph)
	if err != nil {
		return errors.Wrap(err, "unable to generate DOT description")
	}
	return renderDOT(wrt, desc)
}

// DrawFile renders the accumulated graph as DOT into the given file.
func (d *Drawer) DrawFile(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "unable to create file %s", path)
	}
	defer file.Close()

	return d.Draw(file)
}

const maxRGB = 240
const maxGradientDepth = 4

// depthColor maps nesting depth onto a blue-to-red gradient.
func depthColor(depth int) (string, error) {
	if depth > maxGradientDepth {
		depth = maxGradientDepth
	}

	fraction := float64(depth) / float64(maxGradientDepth)
	red := uint8(maxRGB * fraction)
	blue := uint8(maxRGB - maxRGB*fraction)

	c, err := colors.RGB(red, 0, blue)
	if err != nil {
		return "", errors.Wrap(err, "unable to get colour")
	}
	return c.ToHEX().String(), nil
}
