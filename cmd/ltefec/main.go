package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/openradio/ltefec/cmd/txrx"
	"github.com/openradio/ltefec/conv"
	"github.com/openradio/ltefec/crc"
)

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: ltefec [encode|decode|selftest] [OPTION]...")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "encode -in FILE -out FILE")
	fmt.Fprintln(os.Stderr, "  Attach a CRC-24A and convolutionally encode a packed payload file.")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "decode -in FILE -out FILE")
	fmt.Fprintln(os.Stderr, "  Viterbi-decode a packed coded file and check its CRC-24A.")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "selftest [-trials N] [-bits N] [-errors N]")
	fmt.Fprintln(os.Stderr, "  Round-trip random payloads through the pipeline with injected errors.")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Flags:")
	flag.PrintDefaults()
}

func checkArgs() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}
}

func main() {
	flag.Usage = usage
	checkArgs()

	command := os.Args[1]
	os.Args = append(os.Args[:1], os.Args[2:]...)

	switch command {
	case "encode":
		var in, out string
		flag.StringVar(&in, "in", "", "input packed payload file")
		flag.StringVar(&out, "out", "", "output packed coded file")
		flag.Parse()
		if err := txrx.Encode(in, out, crc.CRC24A, conv.LTESpec); err != nil {
			log.Fatalf("%+v", err)
		}

	case "decode":
		var in, out string
		flag.StringVar(&in, "in", "", "input packed coded file")
		flag.StringVar(&out, "out", "", "output packed payload file")
		flag.Parse()
		if err := txrx.Decode(in, out, crc.CRC24A, conv.LTESpec); err != nil {
			log.Fatalf("%+v", err)
		}

	case "selftest":
		var trials, payloadBits, errBurst int
		flag.IntVar(&trials, "trials", 200, "number of random frames to round-trip")
		flag.IntVar(&payloadBits, "bits", 256, "payload length in bits")
		flag.IntVar(&errBurst, "errors", 3, "bit errors injected per 18-bit window")
		flag.Parse()
		passed, err := txrx.SelfTest(trials, payloadBits, errBurst, crc.CRC24A, conv.LTESpec)
		if err != nil {
			log.Fatalf("%+v", err)
		}
		fmt.Printf("%d/%d frames round-tripped correctly\n", passed, trials)

	default:
		log.Fatalf("Unknown command: %s", command)
	}
}
