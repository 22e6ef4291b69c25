package scene

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	json "github.com/json-iterator/go"
	"gopkg.in/yaml.v3"

	"github.com/grindlemire/go-layout/internal/canvas"
)

// Result pairs a scene name with its computed root box.
type Result struct {
	Scene string `json:"scene" yaml:"scene"`
	Root  Box    `json:"root" yaml:"root"`
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	idStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	geomStyle  = lipgloss.NewStyle().Faint(true)
	guideStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// RenderTree writes each result as an indented tree, one node per line:
// id, then position and size.
func RenderTree(w io.Writer, results ...Result) error {
	var sb strings.Builder
	for i, r := range results {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(titleStyle.Render(r.Scene))
		sb.WriteByte('\n')
		writeBox(&sb, r.Root, "", "")
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func writeBox(sb *strings.Builder, b Box, prefix, connector string) {
	sb.WriteString(guideStyle.Render(prefix + connector))
	sb.WriteString(idStyle.Render(b.ID))
	sb.WriteByte(' ')
	sb.WriteString(geomStyle.Render(fmt.Sprintf("(%s, %s) %s×%s",
		trim(b.X), trim(b.Y), trim(b.Width), trim(b.Height))))
	sb.WriteByte('\n')

	childPrefix := prefix
	switch connector {
	case "├── ":
		childPrefix += "│   "
	case "└── ":
		childPrefix += "    "
	}
	for i, c := range b.Children {
		next := "├── "
		if i == len(b.Children)-1 {
			next = "└── "
		}
		writeBox(sb, c, childPrefix, next)
	}
}

func trim(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// RenderJSON writes the results as an indented JSON array.
func RenderJSON(w io.Writer, results ...Result) error {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	_, err = w.Write(append(data, '\n'))
	return err
}

// RenderYAML writes the results as a YAML sequence.
func RenderYAML(w io.Writer, results ...Result) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(results); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}

// RenderASCII draws each result as nested frames in terminal cells, one
// cell per unit. Nodes too small to frame show their id instead.
func RenderASCII(w io.Writer, results ...Result) error {
	var sb strings.Builder
	for i, r := range results {
		if i > 0 {
			sb.WriteByte('\n')
		}
		c := canvas.New(cells(r.Root.Width), cells(r.Root.Height))
		drawBox(c, r.Root, 0, 0, 0)
		sb.WriteString(r.Scene)
		sb.WriteByte('\n')
		sb.WriteString(c.String())
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

var depthBorders = []canvas.Border{canvas.BorderDouble, canvas.BorderRounded, canvas.BorderSingle}

func drawBox(c *canvas.Canvas, b Box, originX, originY float64, depth int) {
	x, y := originX+b.X, originY+b.Y
	rect := canvas.Rect{
		X:      cells(x),
		Y:      cells(y),
		Width:  cells(x+b.Width) - cells(x),
		Height: cells(y+b.Height) - cells(y),
	}
	if rect.Width >= 2 && rect.Height >= 2 {
		c.DrawBoxWithTitle(rect, depthBorders[min(depth, len(depthBorders)-1)], b.ID)
	} else if !rect.Empty() {
		c.SetString(rect.X, rect.Y, b.ID, rect)
	}
	for _, child := range b.Children {
		drawBox(c, child, x, y, depth+1)
	}
}

func cells(v float64) int {
	return int(math.Round(v))
}

// Render dispatches on an output format name: tree, json, yaml or ascii.
func Render(w io.Writer, format string, results ...Result) error {
	switch format {
	case "ascii":
		return RenderASCII(w, results...)
	case "json":
		return RenderJSON(w, results...)
	case "yaml":
		return RenderYAML(w, results...)
	case "tree", "":
		return RenderTree(w, results...)
	}
	return fmt.Errorf("%w: output format %q", ErrUnknownFormat, format)
}
