package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/dm-vev/metafluids/server/block"
)

func main() {
	file := flag.String("file", "fluid_palette.nbt", "palette file exported by the server")
	filter := flag.String("filter", "", "only print states whose name contains this string")
	flag.Parse()

	f, err := os.Open(*file)
	if err != nil {
		panic(err)
	}
	defer f.Close()

	states, err := block.ReadPalette(f)
	if err != nil {
		panic(err)
	}
	var n int
	for _, s := range states {
		if *filter != "" && !strings.Contains(s.Name, *filter) {
			continue
		}
		fmt.Printf("%10d %s => %+v\n", uint32(s.RuntimeID), s.Name, s.Properties)
		n++
	}
	fmt.Printf("%d/%d block states\n", n, len(states))
}
