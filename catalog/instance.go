// SPDX-License-Identifier: MIT

package catalog

import (
	"fmt"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/dpkit/dtw"
	"github.com/katalvlaran/dpkit/knapsack"
	"github.com/katalvlaran/dpkit/matrixchain"
	"github.com/katalvlaran/dpkit/memo"
	"gopkg.in/yaml.v3"
)

// Instance is one problem with its parameters. Each problem reads only the
// fields listed by Describe; the rest are ignored.
type Instance struct {
	Name    string  `yaml:"name,omitempty"`
	Problem Problem `yaml:"problem"`

	N        int               `yaml:"n,omitempty"`
	Array    []int             `yaml:"array,omitempty"`
	Coins    []int             `yaml:"coins,omitempty"`
	Amount   int               `yaml:"amount,omitempty"`
	Items    []knapsack.Item   `yaml:"items,omitempty"`
	Capacity int               `yaml:"capacity,omitempty"`
	Eggs     int               `yaml:"eggs,omitempty"`
	Floors   int               `yaml:"floors,omitempty"`
	Prices   []int             `yaml:"prices,omitempty"`
	Length   int               `yaml:"length,omitempty"`
	Dims     []matrixchain.Dim `yaml:"dims,omitempty"`
	Cells    [][]bool          `yaml:"cells,omitempty"`
	Matrix   [][]int           `yaml:"matrix,omitempty"`
	Height   int               `yaml:"height,omitempty"`
	Width    int               `yaml:"width,omitempty"`
	Row      int               `yaml:"row,omitempty"`
	Col      int               `yaml:"col,omitempty"`
	Moves    int               `yaml:"moves,omitempty"`
	Target   int               `yaml:"target,omitempty"`
	A        []float64         `yaml:"a,omitempty"`
	B        []float64         `yaml:"b,omitempty"`
	Warp     dtw.Params        `yaml:"warp,omitempty"`
	Dist     [][]float64       `yaml:"dist,omitempty"`

	// Expect, when set, is the expected Value.String() of the result.
	Expect string `yaml:"expect,omitempty"`
}

// Label returns Name, or the problem name when Name is empty.
func (in Instance) Label() string {
	if in.Name != "" {
		return in.Name
	}

	return string(in.Problem)
}

// Check compares v against Expect. An empty Expect always passes.
func (in Instance) Check(v Value) error {
	if in.Expect == "" || in.Expect == v.String() {
		return nil
	}

	return errors.Wrapf(ErrUnexpected, "instance %s: got %s, want %s", in.Label(), v, in.Expect)
}

type file struct {
	Instances []Instance `yaml:"instances"`
}

// Decode reads an `instances:` document from r. Unknown keys and unknown
// problems are rejected; unnamed instances are named "<problem>#<index>".
func Decode(r io.Reader) ([]Instance, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f file
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, memo.Tag(errors.Wrap(err, "catalog: decode"), ErrDecode)
	}
	for i := range f.Instances {
		in := &f.Instances[i]
		if _, ok := registry[in.Problem]; !ok {
			return nil, errors.Wrapf(ErrUnknownProblem, "instances[%d]: %q", i, string(in.Problem))
		}
		if in.Name == "" {
			in.Name = fmt.Sprintf("%s#%d", in.Problem, i)
		}
	}

	return f.Instances, nil
}

// LoadFile decodes the instance file at path.
func LoadFile(path string) ([]Instance, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "catalog: open %s", path)
	}
	defer fh.Close()

	list, err := Decode(fh)
	if err != nil {
		return nil, errors.Wrapf(err, "catalog: %s", path)
	}

	return list, nil
}

// Encode writes instances as an `instances:` document.
func Encode(w io.Writer, instances []Instance) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(file{Instances: instances}); err != nil {
		return errors.Wrap(err, "catalog: encode")
	}

	return enc.Close()
}
