// Package sprite holds the inline robot bitmaps and the per-role palettes
// used to colour them.
package sprite

import "fmt"

// PaintClass is the symbolic colour slot of a sprite cell
type PaintClass uint8

const (
	Clear PaintClass = iota
	Outline
	Body
	Eye
	Visor
	Accent
	NumClasses
)

// classCodes maps the single-character codes used in bitmap rows
var classCodes = map[byte]PaintClass{
	'.': Clear,
	'1': Outline,
	'2': Body,
	'3': Eye,
	'4': Visor,
	'5': Accent,
}

// Definition is an immutable rectangular grid of paint classes
type Definition struct {
	cols, rows int
	cells      []PaintClass
}

// Parse builds a definition from bitmap rows. All rows must have the same
// length and contain only known codes.
func Parse(rows ...string) (*Definition, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("sprite: empty bitmap")
	}
	d := &Definition{cols: len(rows[0]), rows: len(rows)}
	d.cells = make([]PaintClass, 0, d.cols*d.rows)
	for r, line := range rows {
		if len(line) != d.cols {
			return nil, fmt.Errorf("sprite: row %d has %d cells, want %d", r, len(line), d.cols)
		}
		for c := 0; c < len(line); c++ {
			pc, ok := classCodes[line[c]]
			if !ok {
				return nil, fmt.Errorf("sprite: row %d col %d: unknown code %q", r, c, line[c])
			}
			d.cells = append(d.cells, pc)
		}
	}
	return d, nil
}

// MustParse is Parse for package-level bitmaps
func MustParse(rows ...string) *Definition {
	d, err := Parse(rows...)
	if err != nil {
		panic(err)
	}
	return d
}

func (d *Definition) Cols() int { return d.cols }
func (d *Definition) Rows() int { return d.rows }

// At returns the class at (col, row); out of range reads are Clear
func (d *Definition) At(col, row int) PaintClass {
	if col < 0 || row < 0 || col >= d.cols || row >= d.rows {
		return Clear
	}
	return d.cells[row*d.cols+col]
}
