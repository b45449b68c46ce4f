// Package commands implements CLI command handlers for neurokit.
package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Dzjnt/NeuroKit/complexity"
	"github.com/Dzjnt/NeuroKit/internal/config"
	"github.com/Dzjnt/NeuroKit/signal"
)

// ErrNoInput is returned when the analyze command gets no input file.
var ErrNoInput = errors.New(
	"no input file. Pass a CSV path, e.g.: neurokit analyze recording.csv",
)

// ChannelResult holds per-channel analysis results for JSON export.
type ChannelResult struct {
	Name       string  `json:"name"`
	Samples    int     `json:"samples"`
	Complexity float64 `json:"complexity"`
	Entropy    float64 `json:"entropy,omitempty"`
}

// SurrogateReport holds surrogate test results for JSON export.
type SurrogateReport struct {
	Observed      float64 `json:"observed"`
	SurrogateMean float64 `json:"surrogate_mean"`
	SurrogateStd  float64 `json:"surrogate_std"`
	ZScore        float64 `json:"z_score"`
	PValue        float64 `json:"p_value"`
	N             int     `json:"n"`
}

// AnalysisReport holds the full analysis results for one input file.
type AnalysisReport struct {
	File           string           `json:"file"`
	Threshold      string           `json:"threshold"`
	ThresholdValue float64          `json:"threshold_value,omitempty"`
	Normalize      bool             `json:"normalize"`
	SamplingRate   float64          `json:"sampling_rate,omitempty"`
	EntropyBins    int              `json:"entropy_bins,omitempty"`
	Channels       []ChannelResult  `json:"channels"`
	MeanComplexity float64          `json:"mean_complexity"`
	Surrogate      *SurrogateReport `json:"surrogate,omitempty"`
}

// AnalyzeCommand holds configuration for the analyze command.
type AnalyzeCommand struct {
	input       string
	columns     []string
	idColumn    string
	idFilter    string
	valueColumn string

	threshold   string
	normalize   bool
	entropyBins int

	surrogate  bool
	surrogates int
	seed       int64

	jsonPath   string
	configPath string
}

// NewAnalyzeCommand creates the analyze command.
func NewAnalyzeCommand() *cobra.Command {
	ac := &AnalyzeCommand{}

	cmd := &cobra.Command{
		Use:   "analyze [file]",
		Short: "Compute Lempel-Ziv complexity of recorded signals",
		Long: "Compute the Lempel-Ziv complexity of each channel in a CSV recording,\n" +
			"along with the Shannon entropy of its amplitude distribution.",
		Args: cobra.MaximumNArgs(1),
		RunE: ac.run,
	}

	cmd.Flags().StringVarP(&ac.input, "input", "i", "", "Input CSV file")
	cmd.Flags().StringSliceVarP(&ac.columns, "columns", "c", nil,
		"Channel columns to analyze (default: all numeric columns)")
	cmd.Flags().StringVar(&ac.idColumn, "id-column", "id", "Filter column for long-format files")
	cmd.Flags().StringVar(&ac.idFilter, "id-filter", "", "Filter value selecting one channel in a long-format file")
	cmd.Flags().StringVar(&ac.valueColumn, "value-column", "value", "Value column for long-format files")

	cmd.Flags().StringVar(&ac.threshold, "threshold", "", "Binarization threshold: median or mean")
	cmd.Flags().BoolVar(&ac.normalize, "normalize", true, "Normalize the phrase count by n/log2(n)")
	cmd.Flags().IntVar(&ac.entropyBins, "entropy-bins", 0, "Histogram bins for Shannon entropy (0 = config value)")

	cmd.Flags().BoolVar(&ac.surrogate, "surrogate", false, "Run a shuffle-surrogate significance test")
	cmd.Flags().IntVar(&ac.surrogates, "surrogates", 0, "Surrogate count for the test (0 = config value)")
	cmd.Flags().Int64Var(&ac.seed, "seed", 0, "RNG seed for the surrogate test")

	cmd.Flags().StringVar(&ac.jsonPath, "json", "", "Write results to this JSON file")
	cmd.Flags().StringVar(&ac.configPath, "config", "", "Config file path (default: .neurokit.yaml)")

	return cmd
}

func (ac *AnalyzeCommand) run(cmd *cobra.Command, args []string) error {
	input := ac.input
	if len(args) > 0 {
		input = args[0]
	}
	if input == "" {
		return ErrNoInput
	}

	cfg, err := config.Load(ac.configPath)
	if err != nil {
		return err
	}

	opts := ac.options(cmd, cfg)
	bins := cfg.Analysis.EntropyBins
	if ac.entropyBins > 0 {
		bins = ac.entropyBins
	}

	slog.Debug("loading signals", "file", input)
	channels, err := ac.load(input)
	if err != nil {
		return err
	}
	slog.Debug("signals loaded", "channels", len(channels))

	report, err := ac.analyze(input, channels, opts, bins)
	if err != nil {
		return err
	}

	if ac.surrogate {
		if len(channels) == 1 {
			report.Surrogate, err = ac.runSurrogate(cmd, cfg, channels[0], opts)
			if err != nil {
				return err
			}
		} else {
			slog.Warn("surrogate test needs a single channel, skipping",
				"channels", len(channels))
		}
	}

	printReport(cmd.OutOrStdout(), report)

	if ac.jsonPath != "" {
		if err := exportReport(report, ac.jsonPath); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "\nExported results to %s\n", ac.jsonPath)
	}

	return nil
}

// options resolves complexity options from config, then explicit flags.
func (ac *AnalyzeCommand) options(cmd *cobra.Command, cfg *config.Config) complexity.Options {
	opts := cfg.Options()
	if cmd.Flags().Changed("threshold") {
		opts.Threshold = complexity.ThresholdMode(ac.threshold)
	}
	if cmd.Flags().Changed("normalize") {
		opts.Normalize = ac.normalize
	}
	return opts
}

func (ac *AnalyzeCommand) load(input string) ([]*signal.Signal, error) {
	if ac.idFilter != "" {
		s, err := signal.LoadCSVFiltered(input, ac.idColumn, ac.idFilter, ac.valueColumn)
		if err != nil {
			return nil, err
		}
		return []*signal.Signal{s}, nil
	}

	return signal.LoadCSVChannels(input, ac.columns, nil)
}

func (ac *AnalyzeCommand) analyze(input string, channels []*signal.Signal,
	opts complexity.Options, bins int) (*AnalysisReport, error) {
	report := &AnalysisReport{
		File:         input,
		Threshold:    string(opts.Threshold),
		Normalize:    opts.Normalize,
		SamplingRate: channels[0].SamplingRate,
		EntropyBins:  bins,
		Channels:     make([]ChannelResult, 0, len(channels)),
	}

	switch len(channels) {
	case 1:
		value, params, err := complexity.LempelZiv(channels[0], opts)
		if err != nil {
			return nil, err
		}
		report.MeanComplexity = value
		report.ThresholdValue = params.ThresholdValue
		report.Channels = append(report.Channels, ChannelResult{
			Name:       channelName(channels[0], 0),
			Samples:    channels[0].Len(),
			Complexity: value,
		})
	default:
		mean, params, err := complexity.LempelZivChannels(channels, opts)
		if err != nil {
			return nil, err
		}
		report.MeanComplexity = mean
		for i, ch := range channels {
			report.Channels = append(report.Channels, ChannelResult{
				Name:       channelName(ch, i),
				Samples:    ch.Len(),
				Complexity: params.Values[i],
			})
		}
	}

	if bins > 0 {
		for i, ch := range channels {
			h, err := complexity.ShannonEntropy(ch.Values, bins)
			if err != nil {
				return nil, fmt.Errorf("entropy of channel %s: %w", report.Channels[i].Name, err)
			}
			report.Channels[i].Entropy = h
		}
	}

	return report, nil
}

func (ac *AnalyzeCommand) runSurrogate(cmd *cobra.Command, cfg *config.Config,
	s *signal.Signal, opts complexity.Options) (*SurrogateReport, error) {
	sc := cfg.SurrogateSettings()
	if ac.surrogates > 0 {
		sc.N = ac.surrogates
	}
	if cmd.Flags().Changed("seed") {
		sc.Seed = ac.seed
	}

	slog.Debug("running surrogate test", "n", sc.N, "seed", sc.Seed)
	result, err := complexity.SurrogateTest(s, opts, sc)
	if err != nil {
		return nil, err
	}

	return &SurrogateReport{
		Observed:      result.Observed,
		SurrogateMean: result.SurrogateMean,
		SurrogateStd:  result.SurrogateStd,
		ZScore:        result.ZScore,
		PValue:        result.PValue,
		N:             result.N,
	}, nil
}

func channelName(s *signal.Signal, index int) string {
	if s.Name != "" {
		return s.Name
	}
	return fmt.Sprintf("ch%d", index+1)
}

func printReport(out io.Writer, report *AnalysisReport) {
	banner := strings.Repeat("=", 80)

	fmt.Fprintln(out, banner)
	fmt.Fprintf(out, "NeuroKit Analysis - %s\n", report.File)
	fmt.Fprintln(out, banner)

	if report.SamplingRate > 0 {
		fmt.Fprintf(out, "Channels: %d   Sampling rate: %.1f Hz\n",
			len(report.Channels), report.SamplingRate)
	} else {
		fmt.Fprintf(out, "Channels: %d\n", len(report.Channels))
	}
	fmt.Fprintf(out, "Threshold: %s   Normalize: %v\n\n", report.Threshold, report.Normalize)

	fmt.Fprintf(out, "  %-20s %8s %12s %12s\n", "Channel", "Samples", "LZC", "Entropy")
	for _, ch := range report.Channels {
		entropy := "-"
		if report.EntropyBins > 0 {
			entropy = fmt.Sprintf("%.4f", ch.Entropy)
		}
		fmt.Fprintf(out, "  %-20s %8d %12.4f %12s\n", ch.Name, ch.Samples, ch.Complexity, entropy)
	}

	fmt.Fprintf(out, "\nMean complexity: %.4f\n", report.MeanComplexity)

	if report.Surrogate != nil {
		sr := report.Surrogate
		fmt.Fprintf(out, "\nSurrogate test (%d shuffles):\n", sr.N)
		fmt.Fprintf(out, "  Observed: %.4f   Surrogate mean: %.4f (std %.4f)\n",
			sr.Observed, sr.SurrogateMean, sr.SurrogateStd)
		fmt.Fprintf(out, "  Z-score: %.4f   P-value: %.4g\n", sr.ZScore, sr.PValue)
	}
}

func exportReport(report *AnalysisReport, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}

	return nil
}
