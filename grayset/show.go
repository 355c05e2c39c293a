package grayset

import (
	"fmt"
	"io"

	"github.com/tuannh982/grayset/grayset/commons"
	"github.com/tuannh982/grayset/utils/collections"
)

// Show writes the set as "label: {", rows of perLine tab-indented values, then "}".
func Show[V any](w io.Writer, label string, set collections.HashSet[V], perLine int) {
	fmt.Fprintf(w, "%s: {\n", label)
	col := 0
	for v := range set.All() {
		if col == 0 {
			fmt.Fprint(w, "\t")
		}
		fmt.Fprintf(w, "%v, ", v)
		col++
		if col == perLine {
			col = 0
			fmt.Fprintln(w)
		}
	}
	if col != 0 {
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w, "}")
}

// ShowTable writes the decoded value next to every gray code of the set.
func ShowTable(w io.Writer, set collections.HashSet[commons.Gray]) error {
	fmt.Fprintf(w, "Value\tGray\n")
	fmt.Fprintf(w, "------------\n")
	for g := range set.All() {
		value, err := g.Decode()
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%d\t%s\n", value, g)
	}
	fmt.Fprintln(w)
	return nil
}

func ShowAnalysis[V any](w io.Writer, label string, set collections.HashSet[V]) {
	fmt.Fprintf(w, "%s: {\n", label)
	for _, p := range set.Analysis() {
		fmt.Fprintf(w, "\t%v x%d\n", p.First(), p.Second())
	}
	fmt.Fprintln(w, "}")
}
