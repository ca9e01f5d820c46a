// Command report prints top-N frequency tables for a catalog CSV straight
// to the terminal, for quick looks without starting the server.
//
//	report -file catalog.csv -attr brand -top 15
//	report -file catalog.csv -attr Occasion-Fit
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"fashion-dashboard/internal/config"
	"fashion-dashboard/internal/engine"
)

func main() {
	file := flag.String("file", "", "path to the catalog CSV")
	attr := flag.String("attr", "brand", "attribute to tally")
	top := flag.Int("top", 15, "number of entries to print (-1 for all)")
	flag.Parse()

	if *file == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	f, err := os.Open(*file)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	dataset, err := engine.Load(f)
	if err != nil {
		log.Fatalf("failed to load %s: %v", *file, err)
	}
	if !dataset.HasAttribute(*attr) {
		log.Fatalf("attribute %q not present in %s", *attr, *file)
	}

	var table engine.FrequencyTable
	if *attr == cfg.MultiValueAttr {
		table = engine.CountValues(engine.Explode(dataset, *attr, cfg.TagDelimiter))
	} else {
		table = engine.ValueCounts(dataset, *attr)
	}
	n := *top
	if n < 0 {
		n = len(table)
	}
	ranked := engine.Rank(table, n)

	tw := tablewriter.NewWriter(os.Stdout)
	tw.SetHeader([]string{*attr, "Count"})
	for _, e := range ranked {
		tw.Append([]string{e.Value, strconv.Itoa(e.Count)})
	}
	tw.SetFooter([]string{"Total", strconv.Itoa(table.Total())})
	tw.Render()

	fmt.Printf("%d rows, %d distinct values\n", dataset.Len(), len(table))
}
