package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/goccy/go-yaml"
	"github.com/vmihailenco/msgpack/v5"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00ff9f")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	missStyle   = cellStyle.Foreground(lipgloss.Color("#6e7681"))
)

// Write renders runs to w in format. A single run is written as one
// document, several runs as a list.
func Write(w io.Writer, format Format, runs ...Summary) error {
	var doc any = runs
	if len(runs) == 1 {
		doc = runs[0]
	}

	switch format {
	case FormatYAML, "":
		return writeYAML(w, doc)
	case FormatJSON:
		return writeJSON(w, doc)
	case FormatMsgpack:
		return writeMsgpack(w, doc)
	case FormatTable:
		return writeTable(w, runs)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}
}

func writeYAML(w io.Writer, doc any) error {
	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("report: failed to format output: %w", err)
	}
	_, err = w.Write(data)
	return err
}

func writeJSON(w io.Writer, doc any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

func writeMsgpack(w io.Writer, doc any) error {
	return msgpack.NewEncoder(w).Encode(doc)
}

// writeTable prints one row per run. A lone run also gets its path and,
// for grids, its picture.
func writeTable(w io.Writer, runs []Summary) error {
	rows := make([][]string, 0, len(runs))
	for _, s := range runs {
		found := "yes"
		if !s.Found {
			found = "no"
		}
		if s.Error != "" {
			found = "error"
		}
		rows = append(rows, []string{
			s.Algorithm,
			found,
			strconv.Itoa(s.Depth),
			s.CostString(),
			strconv.Itoa(s.Expanded),
			strconv.Itoa(s.Generated),
			strconv.Itoa(s.MaxFrontier),
			s.Elapsed,
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("#00ff9f"))).
		Headers("ALGORITHM", "FOUND", "DEPTH", "COST", "EXPANDED", "GENERATED", "MAX FRONTIER", "ELAPSED").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case row >= 0 && row < len(runs) && !runs[row].Found:
				return missStyle
			default:
				return cellStyle
			}
		})

	var b strings.Builder
	if len(runs) > 0 && runs[0].Problem != "" {
		b.WriteString(headerStyle.Render(runs[0].Problem))
		b.WriteByte('\n')
	}
	b.WriteString(t.String())
	b.WriteByte('\n')
	if len(runs) == 1 {
		s := runs[0]
		fmt.Fprintf(&b, "path: %s\n", s.Path())
		if s.Error != "" {
			fmt.Fprintf(&b, "error: %s\n", s.Error)
		}
		if s.Picture != "" {
			b.WriteString(s.Picture)
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}
