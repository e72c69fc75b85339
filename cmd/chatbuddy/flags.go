// ABOUTME: CLI flag parsing using stdlib flag package
// ABOUTME: Supports --kb, --threshold, --plain, --no-emotion, --seed, -p, --version

package main

import "flag"

type cliArgs struct {
	kbPath    string
	threshold float64
	replies   string
	name      string
	plain     bool
	noEmotion bool
	seed      int64
	prompt    string
	verbose   bool
	version   bool
}

func parseFlags() cliArgs {
	var args cliArgs

	flag.StringVar(&args.kbPath, "kb", "", "Path to the knowledge base JSON file")
	flag.Float64Var(&args.threshold, "threshold", 0, "KB match threshold in (0, 1]; 0 uses the configured value")
	flag.StringVar(&args.replies, "replies", "", "Directory of YAML reply packs")
	flag.StringVar(&args.name, "name", "", "Bot display name")
	flag.BoolVar(&args.plain, "plain", false, "Line-oriented mode even on a TTY")
	flag.BoolVar(&args.noEmotion, "no-emotion", false, "Disable emotion detection")
	flag.Int64Var(&args.seed, "seed", 0, "Reply selection seed; 0 uses the clock")
	flag.StringVar(&args.prompt, "p", "", "Answer a single prompt and exit")
	flag.BoolVar(&args.verbose, "verbose", false, "Enable debug logging")
	flag.BoolVar(&args.version, "version", false, "Show version and exit")

	flag.Parse()
	return args
}
