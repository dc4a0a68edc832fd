package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/bjaus/repr"
)

var errBadFlag = errors.New("invalid flag")

var (
	flagCompact       bool
	flagIndent        string
	flagMaxDepth      int
	flagMaxComplexity int
	flagMaxString     int
	flagColor         string
	flagInput         string
)

var rootCmd = &cobra.Command{
	Use:   "repr [file...]",
	Short: "Pretty-print structured data files",
	Long: `repr decodes JSON, YAML, TOML, or MessagePack documents and renders
them as structured values: cycles referenced, keys sorted, layout chosen
per subtree. Reads stdin when no files are given.`,
	Args:          cobra.ArbitraryArgs,
	RunE:          runRoot,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Flags().BoolVar(&flagCompact, "compact", false, "force single-line output")
	rootCmd.Flags().StringVar(&flagIndent, "indent", "  ", "indentation unit")
	rootCmd.Flags().IntVar(&flagMaxDepth, "max-depth", 0, "elide values nested deeper than this (0 = unlimited)")
	rootCmd.Flags().IntVar(&flagMaxComplexity, "max-complexity", 0, "multi-line complexity threshold (0 = default)")
	rootCmd.Flags().IntVar(&flagMaxString, "max-string", 0, "truncate strings wider than this (0 = unlimited)")
	rootCmd.Flags().StringVar(&flagColor, "color", "auto", "colorize output (auto|on|off)")
	rootCmd.Flags().StringVar(&flagInput, "input", "", "input format (json|yaml|toml|msgpack), default by extension")
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func runRoot(cmd *cobra.Command, args []string) error {
	opts, err := buildOptions()
	if err != nil {
		return err
	}

	if len(args) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return err
		}
		format := flagInput
		if format == "" {
			format = "json"
		}
		v, err := decode(data, format)
		if err != nil {
			return err
		}
		return printDoc(os.Stdout, v, opts)
	}

	// Decode in parallel, print in argument order.
	docs := make([]any, len(args))
	var g errgroup.Group
	for i, path := range args {
		g.Go(func() error {
			v, err := decodeFile(path, flagInput)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			docs[i] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	for _, v := range docs {
		if err := printDoc(os.Stdout, v, opts); err != nil {
			return err
		}
	}
	return nil
}

func printDoc(w io.Writer, v any, opts repr.Options) error {
	if err := repr.Write(w, v, opts); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w)
	return err
}

func buildOptions() (repr.Options, error) {
	var style repr.Styler
	switch flagColor {
	case "on":
		style = repr.ANSIStyle
	case "off":
		style = repr.NoStyle
	case "auto":
		style = repr.AutoStyle(os.Stdout)
	default:
		return repr.Options{}, fmt.Errorf("%w: --color must be auto, on, or off, got %q", errBadFlag, flagColor)
	}
	return repr.Options{
		Pretty:        !flagCompact,
		Indent:        flagIndent,
		MaxDepth:      flagMaxDepth,
		MaxComplexity: flagMaxComplexity,
		MaxString:     flagMaxString,
		Style:         style,
	}, nil
}
