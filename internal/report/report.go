// Package report renders simulation results for the terminal.
package report

import (
	"encoding/json"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"cratemover/internal/domain"
)

// Supported stack dump formats.
const (
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// Tops joins the top crates in lane order and quotes the result, e.g. "CMZ".
func Tops(tops []domain.Crate) string {
	var b strings.Builder
	for _, c := range tops {
		b.WriteString(string(c))
	}
	return strconv.Quote(b.String())
}

// Lane is one stack in a dump, crates listed bottom to top.
type Lane struct {
	Lane   domain.Lane    `json:"lane" yaml:"lane"`
	Crates []domain.Crate `json:"crates" yaml:"crates,flow"`
	Top    domain.Crate   `json:"top,omitempty" yaml:"top,omitempty"`
}

// Dump is the serialisable view of a stack set.
type Dump struct {
	Total int    `json:"total" yaml:"total"`
	Lanes []Lane `json:"lanes" yaml:"lanes"`
}

// NewDump captures the current contents of set.
func NewDump(set *domain.StackSet) Dump {
	d := Dump{Total: set.Total(), Lanes: make([]Lane, 0, set.Len())}
	for i, crates := range set.Snapshot() {
		lane := Lane{Lane: domain.Lane(i + 1), Crates: crates}
		if lane.Crates == nil {
			lane.Crates = []domain.Crate{}
		} else {
			lane.Top = crates[len(crates)-1]
		}
		d.Lanes = append(d.Lanes, lane)
	}
	return d
}

// Write renders set to w in format.
func Write(w io.Writer, set *domain.StackSet, format string) error {
	d := NewDump(set)
	switch format {
	case FormatYAML, "":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(d); err != nil {
			return err
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(d)
	default:
		return errors.Errorf("unknown output format %q (expected yaml or json)", format)
	}
}
