// Command export writes the input tensors of all test cases to
// testdata/<category>_<name>.cbor, for feeding them to landmark-overlay
// or to other implementations of the decoder.
// Run from the module root directory.
package main

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/landmarks/tensor"
	"seehuhn.de/go/landmarks/testcases"
)

const outDir = "testdata"

func main() {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			if err := export(tc, filepath.Join(outDir, name+".cbor")); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func export(tc testcases.TestCase, fname string) error {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}

	frame := &tensor.Frame{
		InputWidth:  tc.InputWidth,
		InputHeight: tc.InputHeight,
		Tensors:     tc.Tensors(),
	}
	if err := tensor.Write(f, frame); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
