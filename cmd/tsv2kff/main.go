// Command tsv2kff reads TSV lines of "sequence\thex-encoded data" from
// stdin, one line per k-mer, and writes them as a single Raw section in a
// new KFF file.
package main

import (
	"bufio"
	"encoding/hex"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/Kmer-File-Format/kff-go"
	"github.com/Kmer-File-Format/kff-go/bitio"
	"github.com/Kmer-File-Format/kff-go/format"
	"github.com/Kmer-File-Format/kff-go/section"
)

func main() {
	path := flag.String("out", "", "path to the .kff file to write")
	k := flag.Int("k", 0, "k-mer length of every input row")
	dataSize := flag.Int("data-size", 0, "byte length of the per-k-mer payload")
	flag.Parse()

	if *path == "" || *k <= 0 || *dataSize < 0 {
		log.Fatal("tsv2kff: -out and -k are required, -data-size must be >= 0")
	}

	enc, err := format.New(format.DefaultByte)
	if err != nil {
		log.Fatalf("tsv2kff: %v", err)
	}

	header, err := section.NewHeader(1, 0, enc.Byte(), false, false, nil)
	if err != nil {
		log.Fatalf("tsv2kff: %v", err)
	}

	f, err := kff.Create(*path, header)
	if err != nil {
		log.Fatalf("tsv2kff: %v", err)
	}
	defer f.Close()

	if err := f.WriteValues(section.Values{
		section.KeyK:        uint64(*k),
		section.KeyMax:      1,
		section.KeyDataSize: uint64(*dataSize),
	}); err != nil {
		log.Fatalf("tsv2kff: %v", err)
	}

	var blocks []section.Block

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		cols := strings.SplitN(scanner.Text(), "\t", 2)
		if len(cols) != 2 {
			log.Fatalf("tsv2kff: malformed row %q", scanner.Text())
		}

		seq := cols[0]
		if len(seq) != *k {
			log.Fatalf("tsv2kff: row sequence length %d != k=%d", len(seq), *k)
		}

		data, err := hex.DecodeString(cols[1])
		if err != nil {
			log.Fatalf("tsv2kff: %v", err)
		}
		if len(data) != *dataSize {
			log.Fatalf("tsv2kff: row payload length %d != data-size=%d", len(data), *dataSize)
		}

		codes := enc.SeqToBits([]byte(seq))
		blocks = append(blocks, section.Block{
			K:        uint64(*k),
			DataSize: uint64(*dataSize),
			Kmer:     bitio.FromNucBits(codes),
			Data:     data,
		})
	}
	if err := scanner.Err(); err != nil {
		log.Fatalf("tsv2kff: %v", err)
	}

	if err := f.WriteRaw(blocks); err != nil {
		log.Fatalf("tsv2kff: %v", err)
	}

	if err := f.Finalize(); err != nil {
		log.Fatalf("tsv2kff: %v", err)
	}

	fmt.Fprintf(os.Stderr, "tsv2kff: wrote %d k-mers to %s\n", len(blocks), *path)
}
