package main

import (
	"bufio"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// nolint: gochecknoglobals
var (
	outputFormat string
	layoutPath   string
	fieldSpecs   []string
	readRest     bool
	lzfSize      int
	redisAddr    string
	redisKey     string
	verbose      bool

	rootCmd = &cobra.Command{
		Use:   "binread [path]",
		Short: "Decode little-endian values from a binary buffer",
		Args:  cobra.MaximumNArgs(1),
		Example: formatExamples([][]string{
			{"Decode a header from a file.", "binread -f magic:string:4 -f version:u16 -f size:u32 path/to/file.bin"},
			{"Decode stdin with a layout file.", "cat file | binread -l layout.toml"},
			{"Decode a LZF-compressed Redis value.", "binread --redis-addr localhost:6379 --redis-key blob --lzf-size 1024 -f count:u32 --rest"},
		}),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(verbose)

			if err != nil {
				return err
			}

			defer func() {
				_ = logger.Sync()
			}()

			fields, err := buildFields(layoutPath, fieldSpecs, readRest)

			if err != nil {
				return err
			}

			writer := bufio.NewWriter(os.Stdout)
			defer writer.Flush()

			printer, err := newPrinter(outputFormat, writer)

			if err != nil {
				return err
			}

			input := inputOptions{
				RedisAddr: redisAddr,
				RedisKey:  redisKey,
				LZFSize:   lzfSize,
			}

			if len(args) > 0 {
				input.Path = args[0]
			}

			data, release, err := readInput(input, bufio.NewReader(os.Stdin))

			if err != nil {
				return err
			}

			defer func() {
				if err := release(); err != nil {
					logger.Warn("failed to release input", zap.Error(err))
				}
			}()

			logger.Debug("input loaded", zap.Int("size", len(data)), zap.Int("fields", len(fields)))

			return printLayout(data, fields, printer, logger)
		},
	}
)

func formatExamples(examples [][]string) string {
	lines := make([]string, len(examples))
	indent := "  "

	for i, v := range examples {
		lines[i] = indent + "# " + v[0] + "\n" + indent + v[1]
	}

	return strings.Join(lines, "\n\n")
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if !verbose {
		return zap.NewNop(), nil
	}

	return zap.NewDevelopment()
}

func main() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&outputFormat, "output", "o", "json", "output format (json, text, dump)")
	flags.StringVarP(&layoutPath, "layout", "l", "", "path to a TOML layout file")
	flags.StringArrayVarP(&fieldSpecs, "field", "f", nil, "field to decode in the form of name:type[:length]")
	flags.BoolVar(&readRest, "rest", false, "decode the remaining bytes as a field named rest")
	flags.IntVar(&lzfSize, "lzf-size", 0, "decompress LZF input into the given number of bytes")
	flags.StringVar(&redisAddr, "redis-addr", "localhost:6379", "redis server address")
	flags.StringVar(&redisKey, "redis-key", "", "read the input from a redis key")
	flags.BoolVarP(&verbose, "verbose", "v", false, "print debug logs to stderr")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
