// Command export writes the tile and column polygons of all test cases to
// JSON, for checking other implementations against this one.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/lattice"
	"seehuhn.de/go/lattice/testcases"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			jtc, err := toJSON(category, tc)
			if err != nil {
				panic(err)
			}
			out.TestCases = append(out.TestCases, jtc)
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/tiles.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name    string       `json:"name"`
	Basis   string       `json:"basis"`
	Size    float64      `json:"size"`
	Width   float64      `json:"width"`
	Height  float64      `json:"height"`
	Tiles   []jsonTile   `json:"tiles"`
	Columns []jsonColumn `json:"columns,omitempty"`
}

type jsonTile struct {
	X       int         `json:"x"`
	Y       int         `json:"y"`
	Odd     bool        `json:"odd"`
	Corners [][]float64 `json:"corners"`
}

type jsonColumn struct {
	At     []float64     `json:"at"`
	Height float64       `json:"height"`
	Faces  [][][]float64 `json:"faces"` // left, top, right
}

func toJSON(category string, tc testcases.TestCase) (jsonTestCase, error) {
	s := tc.Scene
	jtc := jsonTestCase{
		Name:   category + "_" + tc.Name,
		Basis:  s.Basis.String(),
		Size:   s.Size,
		Width:  s.Width,
		Height: s.Height,
	}

	bd := &lattice.Board{Width: s.Width, Height: s.Height, Size: s.Size, Basis: s.Basis}
	tiles, err := bd.Tiles()
	if err != nil {
		return jtc, err
	}
	for t := range tiles {
		q := lattice.TileQuad(s.Basis, t.Origin(s.Basis, s.Size), s.Size)
		jtc.Tiles = append(jtc.Tiles, jsonTile{
			X:       t.X,
			Y:       t.Y,
			Odd:     t.Odd(),
			Corners: quadToJSON(q),
		})
	}

	for _, c := range s.ColumnsAt(tc.Time) {
		faces := lattice.ColumnFaces(c.At, c.Height, s.Size, s.Basis)
		jc := jsonColumn{
			At:     pt(c.At),
			Height: c.Height,
		}
		for _, q := range faces {
			jc.Faces = append(jc.Faces, quadToJSON(q))
		}
		jtc.Columns = append(jtc.Columns, jc)
	}
	return jtc, nil
}

func quadToJSON(q lattice.Quad) [][]float64 {
	res := make([][]float64, len(q))
	for i, p := range q {
		res[i] = pt(p)
	}
	return res
}

func pt(p vec.Vec2) []float64 {
	return []float64{p.X, p.Y}
}
