package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mkoehn/suchselgen/internal/dependencies/random"
	"github.com/mkoehn/suchselgen/internal/model"
	"github.com/mkoehn/suchselgen/internal/output"
	"github.com/mkoehn/suchselgen/internal/services/session"
	"github.com/mkoehn/suchselgen/internal/services/wordlist"
)

type generateOptions struct {
	width      int
	height     int
	mode       string
	contiguous bool
	directions string

	fill    bool
	profile string
	seed    int64

	placeAttempts    int
	creationAttempts int

	wordsPath        string
	displayNamesPath string

	format     string
	outputPath string
	solution   bool
}

func newGenerateCmd() *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a puzzle from a word list",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts)
		},
	}

	cmd.Flags().IntVar(&opts.width, "width", 20, "Grid width")
	cmd.Flags().IntVar(&opts.height, "height", 20, "Grid height")
	cmd.Flags().StringVar(&opts.mode, "mode", "suchsel", "Puzzle mode: suchsel, crossword")
	cmd.Flags().BoolVar(&opts.contiguous, "contiguous", false, "Allow words to overlap on matching letters (suchsel mode)")
	cmd.Flags().StringVar(&opts.directions, "directions", "", "Comma-separated direction tokens with optional weights, e.g. lr=2,tb=1,dbr (default: all eight, equally likely)")
	cmd.Flags().BoolVar(&opts.fill, "fill", true, "Fill leftover cells with filler letters")
	cmd.Flags().StringVar(&opts.profile, "profile", session.DefaultProfile, "Letter frequency profile: english, german, uniform")
	cmd.Flags().Int64Var(&opts.seed, "seed", -1, "Random seed for reproducible output (negative: time-seeded)")
	cmd.Flags().IntVar(&opts.placeAttempts, "place-attempts", session.DefaultPlaceAttempts, "Placement attempts per word")
	cmd.Flags().IntVar(&opts.creationAttempts, "creation-attempts", session.DefaultCreationAttempts, "Whole-grid creation attempts")
	cmd.Flags().StringVar(&opts.wordsPath, "words", "", "Word list file: one word per line, # comments")
	cmd.Flags().StringVar(&opts.displayNamesPath, "display-names", "", "Optional NDJSON word-to-display-text mapping")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "text", "Output format: text, svg, xlsx")
	cmd.Flags().StringVarP(&opts.outputPath, "output", "o", "", "Output file (default: stdout)")
	cmd.Flags().BoolVar(&opts.solution, "solution", false, "Emit the solution (letters in SVG, solution sheet in xlsx)")
	_ = cmd.MarkFlagRequired("words")

	return cmd
}

func runGenerate(cmd *cobra.Command, opts *generateOptions) error {
	words, err := wordlist.LoadFile(opts.wordsPath)
	if err != nil {
		return err
	}

	var displayNames map[string]string
	if opts.displayNamesPath != "" {
		displayNames, err = wordlist.LoadDisplayNamesFile(opts.displayNamesPath)
		if err != nil {
			return err
		}
	}

	directions, err := parseDirections(opts.directions)
	if err != nil {
		return err
	}

	var rnd random.Random
	if opts.seed >= 0 {
		rnd = random.NewSeeded(opts.seed)
	} else {
		rnd = random.New()
	}

	controller, err := session.New(session.Config{
		Width:            opts.width,
		Height:           opts.height,
		Mode:             opts.mode,
		Contiguous:       opts.contiguous,
		Directions:       directions,
		Fill:             opts.fill,
		Profile:          opts.profile,
		PlaceAttempts:    opts.placeAttempts,
		CreationAttempts: opts.creationAttempts,
	}, rnd, logger)
	if err != nil {
		return err
	}

	result, err := controller.Generate(cmd.Context(), words)
	if err != nil {
		return err
	}

	// Soft failures never abort the run; they only show up here.
	for _, word := range result.Unplaced {
		if word == result.Hidden {
			continue
		}
		logger.Info("word not placed", slog.String("word", word))
	}
	if result.Hidden != "" {
		logger.Info("word hidden in filler", slog.String("word", result.Hidden))
	}
	if verbose {
		fmt.Fprint(os.Stderr, output.TextString(result.Grid))
	}

	return writeOutput(opts, result, displayNames)
}

func writeOutput(opts *generateOptions, result *session.Result, displayNames map[string]string) error {
	var out io.Writer = os.Stdout
	if opts.outputPath != "" {
		f, err := os.Create(opts.outputPath)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	switch opts.format {
	case "text":
		return output.RenderText(out, result.Grid)
	case "svg":
		output.RenderSVG(out, result.Grid, output.SVGOptions{Letters: opts.solution})
		return nil
	case "xlsx":
		return output.WriteSheet(out, result.Grid, output.SheetOptions{
			Solution:     opts.solution,
			HiddenWord:   result.Hidden,
			DisplayNames: displayNames,
		})
	default:
		return fmt.Errorf("unknown output format %q", opts.format)
	}
}

// parseDirections parses "lr=2,tb=1,dbr" into a weight map; tokens
// without a weight get weight 1. Empty input means the default
// distribution.
func parseDirections(spec string) (map[string]float64, error) {
	if spec == "" {
		return nil, nil
	}
	weights := make(map[string]float64)
	for _, part := range strings.Split(spec, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		token, weightStr, found := strings.Cut(part, "=")
		if _, err := model.ParseDirection(token); err != nil {
			return nil, fmt.Errorf("%w: %q", err, token)
		}
		weight := 1.0
		if found {
			var err error
			weight, err = strconv.ParseFloat(weightStr, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid weight for %q: %w", token, err)
			}
		}
		weights[token] = weight
	}
	if len(weights) == 0 {
		return nil, model.ErrEmptyDistribution
	}
	return weights, nil
}
