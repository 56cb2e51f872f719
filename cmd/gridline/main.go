package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/yourusername/gridline/internal/analysis"
	"github.com/yourusername/gridline/internal/config"
	applogger "github.com/yourusername/gridline/internal/logger"
	"github.com/yourusername/gridline/internal/metrics"
	"github.com/yourusername/gridline/internal/models"
	"github.com/yourusername/gridline/internal/odds"
	"github.com/yourusername/gridline/internal/settlement"
)

// Build information - set via ldflags
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var (
	configFile string
	outputFile string

	oddsFile     string
	rankingsFile string
	profilesFile string
	topN         int

	betsFile   string
	resultFile string

	logger *logrus.Logger
	cfg    *config.Config
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "./config/config.yaml", "Path to configuration file")
	rootCmd.PersistentFlags().StringVarP(&outputFile, "output", "o", "", "Write JSON output to file instead of stdout")

	analyzeCmd.Flags().StringVar(&oddsFile, "odds", "", "Path to odds payload JSON (required)")
	analyzeCmd.Flags().StringVar(&rankingsFile, "rankings", "", "Path to ranking tables JSON (required)")
	analyzeCmd.Flags().StringVar(&profilesFile, "profiles", "", "Path to team profiles JSON (required)")
	analyzeCmd.Flags().IntVar(&topN, "top", 0, "Override the number of recommendations")
	_ = analyzeCmd.MarkFlagRequired("odds")
	_ = analyzeCmd.MarkFlagRequired("rankings")
	_ = analyzeCmd.MarkFlagRequired("profiles")

	settleCmd.Flags().StringVar(&betsFile, "bets", "", "Path to recommendations JSON (required)")
	settleCmd.Flags().StringVar(&resultFile, "result", "", "Path to game result JSON (required)")
	_ = settleCmd.MarkFlagRequired("bets")
	_ = settleCmd.MarkFlagRequired("result")
}

var rootCmd = &cobra.Command{
	Use:   "gridline",
	Short: "EV analysis and settlement for sports betting markets",
	Long:  `Gridline scores betting opportunities by expected value against team and player statistics, and settles recommendations against finalized box scores.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.LoadWithDefaults(configFile)
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		if err := config.Validate(cfg); err != nil {
			return err
		}

		logger = applogger.NewLogger(cfg.App.LogLevel)
		applogger.WithComponent(logger, "cli").
			WithField("config", configFile).
			Debug("Configuration loaded")

		if cfg.Metrics.Enabled {
			go serveMetrics(cfg.Metrics.Address)
		}
		return nil
	},
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Score and rank opportunities from an odds payload",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAnalyze()
	},
}

var settleCmd = &cobra.Command{
	Use:   "settle",
	Short: "Grade recommendations against a finalized game result",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSettle()
	},
}

func main() {
	rootCmd.AddCommand(analyzeCmd, settleCmd, versionCmd)

	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print build information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gridline %s (commit %s, built %s)\n", Version, GitCommit, BuildDate)
	},
}

func runAnalyze() error {
	var payload models.OddsPayload
	if err := readJSON(oddsFile, &payload); err != nil {
		return fmt.Errorf("reading odds payload: %w", err)
	}

	var rankings []models.RankingTable
	if err := readJSON(rankingsFile, &rankings); err != nil {
		return fmt.Errorf("reading ranking tables: %w", err)
	}

	var profiles map[string]models.TeamProfile
	if err := readJSON(profilesFile, &profiles); err != nil {
		return fmt.Errorf("reading team profiles: %w", err)
	}

	engineCfg := analysis.Config{
		Conservative:        cfg.Engine.ConservativeFactor,
		MinEV:               cfg.Engine.MinEVPercent,
		TopN:                cfg.Engine.TopN,
		DedupPlayers:        cfg.Engine.DedupPlayers,
		MaxReceiversPerTeam: cfg.Engine.MaxReceiversPerTeam,
	}
	if topN > 0 {
		engineCfg.TopN = topN
	}

	band := odds.Band{Min: cfg.Engine.OddsBandMin, Max: cfg.Engine.OddsBandMax}
	engine := analysis.NewEngine(band, engineCfg, logger)

	report, err := engine.Analyze(&payload, rankings, profiles)
	if err != nil {
		return err
	}
	return writeJSON(report)
}

func runSettle() error {
	var recs []models.Recommendation
	if err := readJSON(betsFile, &recs); err != nil {
		return fmt.Errorf("reading recommendations: %w", err)
	}

	var result models.GameResult
	if err := readJSON(resultFile, &result); err != nil {
		return fmt.Errorf("reading game result: %w", err)
	}

	checker := settlement.NewCheckerWith(
		logger,
		cfg.Settlement.MatchThreshold,
		decimal.NewFromFloat(cfg.Settlement.StakeUnits),
	)
	report := checker.Settle(recs, &result)

	logger.WithFields(logrus.Fields{
		"total_bets": report.Summary.TotalBets,
		"won":        report.Summary.BetsWon,
		"lost":       report.Summary.BetsLost,
		"profit":     report.Summary.TotalProfit,
	}).Info("Settlement complete")

	return writeJSON(report)
}

func serveMetrics(addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler())
	if err := http.ListenAndServe(addr, mux); err != nil {
		logger.WithError(err).Error("Metrics server stopped")
	}
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

func writeJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	if outputFile == "" {
		fmt.Println(string(data))
		return nil
	}
	return os.WriteFile(outputFile, append(data, '\n'), 0o644)
}
