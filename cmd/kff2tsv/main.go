// Command kff2tsv dumps every k-mer in a KFF file as a TSV line of
// "sequence\thex-encoded data" to stdout.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/Kmer-File-Format/kff-go"
)

func main() {
	path := flag.String("in", "", "path to the .kff file to read")
	flag.Parse()

	if *path == "" {
		log.Fatal("kff2tsv: -in is required")
	}

	f, err := kff.Open(*path)
	if err != nil {
		log.Fatalf("kff2tsv: %v", err)
	}
	defer f.Close()

	enc, err := f.Encoding()
	if err != nil {
		log.Fatalf("kff2tsv: %v", err)
	}

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	count := 0
	for km, err := range f.Kmers() {
		if err != nil {
			log.Fatalf("kff2tsv: %v", err)
		}

		seq := enc.BitsToSeq(km.Bits.ToNucBits())
		fmt.Fprintf(out, "%s\t%x\n", seq, km.Data)
		count++
	}

	fmt.Fprintf(os.Stderr, "kff2tsv: wrote %d k-mers\n", count)
}
