// Command spm is a command-line frontend for the sentencepiece
// bindings, covering the roles of the native spm_encode, spm_decode and
// spm_export_vocab tools: encode text line by line, decode ids or
// pieces back into text, re-export a loaded model, and print model
// information.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/danieldk/sentencepiece"
)

type config struct {
	Model        string  `mapstructure:"model"`
	Mode         string  `mapstructure:"mode"`
	Input        string  `mapstructure:"input"`
	Output       string  `mapstructure:"output"`
	OutputFormat string  `mapstructure:"output-format"`
	NBest        int     `mapstructure:"nbest"`
	Alpha        float64 `mapstructure:"alpha"`
}

func loadConfig() (*config, error) {
	// Defaults
	viper.SetDefault("mode", "encode")
	viper.SetDefault("output-format", "piece")
	viper.SetDefault("nbest", 10)
	viper.SetDefault("alpha", 0.5)

	// Flags
	pflag.String("model", "", "Path to the sentencepiece model file (required)")
	pflag.String("mode", "encode", "Mode: encode | sample-encode | decode-ids | decode-pieces | export-model | info")
	pflag.String("input", "", "Input file (default: stdin)")
	pflag.String("output", "", "Output file (default: stdout)")
	pflag.String("output-format", "piece", "Encode output format: piece | id")
	pflag.Int("nbest", 10, "Number of segmentation candidates for sample-encode")
	pflag.Float64("alpha", 0.5, "Sampling smoothing temperature for sample-encode")
	pflag.Parse()

	if err := viper.BindPFlags(pflag.CommandLine); err != nil {
		return nil, fmt.Errorf("failed to bind flags: %w", err)
	}

	// Environment variables (prefix SPM_)
	viper.SetEnvPrefix("SPM")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	var cfg config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	if cfg.Model == "" {
		return nil, fmt.Errorf("--model is required")
	}
	switch cfg.OutputFormat {
	case "piece", "id":
	default:
		return nil, fmt.Errorf("unknown output format %q", cfg.OutputFormat)
	}

	return &cfg, nil
}

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg, err := loadConfig()
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid configuration")
	}

	spp, err := sentencepiece.Open(cfg.Model)
	if err != nil {
		logger.Fatal().Err(err).Str("model", cfg.Model).Msg("failed to load model")
	}
	defer spp.Close()
	logger.Debug().Str("model", cfg.Model).Int("vocab_size", spp.VocabSize()).Msg("model loaded")

	in, out, cleanup, err := openStreams(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to open input/output")
	}
	defer cleanup()

	if err := run(cfg, spp, in, out); err != nil {
		logger.Fatal().Err(err).Str("mode", cfg.Mode).Msg("command failed")
	}
}

func openStreams(cfg *config) (io.Reader, io.Writer, func(), error) {
	in := io.Reader(os.Stdin)
	out := io.Writer(os.Stdout)
	closers := []io.Closer{}

	if cfg.Input != "" {
		f, err := os.Open(cfg.Input)
		if err != nil {
			return nil, nil, nil, err
		}
		in = f
		closers = append(closers, f)
	}
	if cfg.Output != "" {
		f, err := os.Create(cfg.Output)
		if err != nil {
			for _, c := range closers {
				c.Close()
			}
			return nil, nil, nil, err
		}
		out = f
		closers = append(closers, f)
	}

	cleanup := func() {
		for _, c := range closers {
			c.Close()
		}
	}
	return in, out, cleanup, nil
}

func run(cfg *config, spp *sentencepiece.Processor, in io.Reader, out io.Writer) error {
	w := bufio.NewWriter(out)
	defer w.Flush()

	switch cfg.Mode {
	case "export-model":
		data, err := spp.ToSerializedProto()
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err

	case "info":
		fmt.Fprintf(w, "vocab_size\t%d\n", spp.VocabSize())
		fmt.Fprintf(w, "bos_id\t%d\n", spp.BOSID())
		fmt.Fprintf(w, "eos_id\t%d\n", spp.EOSID())
		fmt.Fprintf(w, "pad_id\t%d\n", spp.PadID())
		fmt.Fprintf(w, "unk_id\t%d\n", spp.UnkID())
		return nil

	case "encode", "sample-encode", "decode-ids", "decode-pieces":
		return runLines(cfg, spp, in, w)

	default:
		return fmt.Errorf("unknown mode %q", cfg.Mode)
	}
}

func runLines(cfg *config, spp *sentencepiece.Processor, in io.Reader, w *bufio.Writer) error {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 1024*1024), 16*1024*1024)

	for scanner.Scan() {
		line := scanner.Text()

		var result string
		var err error
		switch cfg.Mode {
		case "encode":
			var pieces []sentencepiece.Piece
			pieces, err = spp.Encode(line)
			if err == nil {
				result = formatPieces(pieces, cfg.OutputFormat)
			}
		case "sample-encode":
			var pieces []sentencepiece.Piece
			pieces, err = spp.SampleEncode(line, cfg.NBest, float32(cfg.Alpha))
			if err == nil {
				result = formatPieces(pieces, cfg.OutputFormat)
			}
		case "decode-ids":
			var ids []int
			ids, err = parseIDs(line)
			if err == nil {
				result, err = spp.DecodeIDs(ids)
			}
		case "decode-pieces":
			result, err = spp.DecodePieces(strings.Fields(line))
		}
		if err != nil {
			return err
		}

		if _, err := fmt.Fprintln(w, result); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func formatPieces(pieces []sentencepiece.Piece, format string) string {
	parts := make([]string, len(pieces))
	for i, piece := range pieces {
		if format == "id" {
			parts[i] = strconv.Itoa(piece.ID)
		} else {
			parts[i] = piece.Piece
		}
	}
	return strings.Join(parts, " ")
}

func parseIDs(line string) ([]int, error) {
	fields := strings.Fields(line)
	ids := make([]int, len(fields))
	for i, field := range fields {
		id, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("invalid piece id %q: %w", field, err)
		}
		ids[i] = id
	}
	return ids, nil
}
