// derivcmp reads sampled (x, y) columns from a whitespace-separated table
// file, prints every derivative estimate the library computes, and saves a
// figure comparing them. Useful for eyeballing estimator disagreement on
// real data.
package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	plt "github.com/phil-mansfield/pyplot"
	"github.com/phil-mansfield/table"

	"github.com/jgamble/derivative"
)

func main() {
	if len(os.Args) != 5 {
		log.Fatalf(
			"Required file use: $ %s table_file x_col y_col out_png",
			os.Args[0],
		)
	}
	file, outFile := os.Args[1], os.Args[4]
	xCol, err := strconv.Atoi(os.Args[2])
	if err != nil {
		log.Fatal(err.Error())
	}
	yCol, err := strconv.Atoi(os.Args[3])
	if err != nil {
		log.Fatal(err.Error())
	}

	cols, err := table.ReadTable(file, []int{xCol, yCol}, nil)
	if err != nil {
		log.Fatal(err.Error())
	}
	xs, ys := cols[0], cols[1]
	if len(xs) < 3 {
		log.Fatalf("Table %s only has %d rows.", file, len(xs))
	}

	fds := derivative.ForwardDiff(xs, ys)
	cds := derivative.CentralDiff(xs, ys)
	d2s := derivative.SecondDX(xs, ys)

	fmt.Println("# x y forward central second")
	for i := range xs {
		fmt.Printf("%10.5g %10.5g %10.5g %10.5g %10.5g\n",
			xs[i], ys[i], fds[i], cds[i], d2s[i])
	}

	plt.Reset()
	plt.Figure()
	plt.Plot(xs, fds, "ob", plt.LW(2))
	plt.Plot(xs, cds, "r", plt.LW(3))
	plt.Plot(xs, d2s, "g", plt.LW(2))
	plt.Title(fmt.Sprintf("%s: forward (b), central (r), second (g)", file))
	plt.XLabel(`$x$`, plt.FontSize(16))
	plt.YLabel(`$dy/dx$, $d^2y/dx^2$`, plt.FontSize(16))
	plt.SaveFig(outFile)
	plt.Execute()
}
