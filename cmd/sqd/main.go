// Command sqd analyzes narration scripts from the terminal and can run the
// HTTP server. `sqd analyze script.txt` prints a full quality and tone
// report; `sqd serve` starts the API.
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"script_dashboard/internal/api"
	"script_dashboard/internal/cache"
	"script_dashboard/internal/ingest"
	"script_dashboard/internal/quality"
	"script_dashboard/internal/sentiment"
	"script_dashboard/internal/store"
)

func main() {
	root := &cobra.Command{
		Use:   "sqd",
		Short: "Script quality dashboard",
		Long:  "Analyze product-demo narration scripts for quality, tone, and delivery issues.",
	}
	root.AddCommand(newAnalyzeCmd(), newServeCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newAnalyzeCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "analyze <file>",
		Short: "Score a narration script file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			script, err := ingest.ParseFile(args[0])
			if err != nil {
				return fmt.Errorf("read script: %w", err)
			}

			metrics := quality.Score(script.Text, nil, nil)
			tone := sentiment.Analyze(script.Text, nil)

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(map[string]interface{}{
					"quality":   metrics,
					"sentiment": tone,
				})
			}

			printReport(cmd, script.Title, metrics, tone)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit the raw analysis as JSON")
	return cmd
}

func printReport(cmd *cobra.Command, title string, m quality.Metrics, t sentiment.Result) {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Script: %s\n", title)
	fmt.Fprintf(out, "%s\n\n", strings.Repeat("=", 8+len(title)))

	fmt.Fprintf(out, "Overall score: %d (%s)\n", m.OverallScore, m.Grade)
	fmt.Fprintf(out, "  Clarity:            %d\n", m.Breakdown.Clarity)
	fmt.Fprintf(out, "  Engagement:         %d\n", m.Breakdown.Engagement)
	fmt.Fprintf(out, "  Professionalism:    %d\n", m.Breakdown.Professionalism)
	fmt.Fprintf(out, "  Technical accuracy: %d\n", m.Breakdown.TechnicalAccuracy)
	fmt.Fprintf(out, "Words: %d  Sentences: %d  Avg length: %.1f  Reading ease: %.1f\n\n",
		m.WordCount, m.SentenceCount, m.AverageSentenceLength, m.FleschReadingEase)

	fmt.Fprintf(out, "Tone: %s (confidence %.2f)\n", t.OverallSentiment, t.Confidence)
	fmt.Fprintf(out, "  Engagement %.2f  Professionalism %.2f  Clarity %.2f\n\n",
		t.EngagementScore, t.ProfessionalismScore, t.ClarityScore)

	if len(m.Strengths) > 0 {
		fmt.Fprintln(out, "Strengths:")
		for _, s := range m.Strengths {
			fmt.Fprintf(out, "  + %s\n", s)
		}
	}
	if len(m.Improvements) > 0 {
		fmt.Fprintln(out, "Improvements:")
		for _, s := range m.Improvements {
			fmt.Fprintf(out, "  - %s\n", s)
		}
	}
	if len(t.Warnings) > 0 {
		fmt.Fprintln(out, "Warnings:")
		for _, w := range t.Warnings {
			fmt.Fprintf(out, "  [%s/%s] %s\n", w.Type, w.Severity, w.Suggestion)
		}
	}
	if len(t.ImprovementSuggestions) > 0 {
		fmt.Fprintln(out, "Suggestions:")
		for _, s := range t.ImprovementSuggestions {
			fmt.Fprintf(out, "  * %s\n", s)
		}
	}
}

func newServeCmd() *cobra.Command {
	var (
		port     string
		dbPath   string
		cacheDir string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the analysis HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := godotenv.Load(); err != nil {
				log.Println("[WARN] no .env file found, relying on environment")
			}
			if port == "" {
				port = getenv("PORT", "8080")
			}
			if dbPath == "" {
				dbPath = getenv("SCRIPT_DB_PATH", "sessions.db")
			}
			if cacheDir == "" {
				cacheDir = getenv("SCRIPT_CACHE_DIR", ".analysis_cache")
			}

			st, err := store.Open(dbPath)
			if err != nil {
				return fmt.Errorf("open session store: %w", err)
			}
			defer st.Close()

			srv := api.New(st, cache.New(cacheDir))
			log.Printf("[INFO] script analysis server listening on :%s (db=%s cache=%s)", port, dbPath, cacheDir)
			return http.ListenAndServe(":"+port, srv.Routes())
		},
	}
	cmd.Flags().StringVar(&port, "port", "", "listen port (default $PORT or 8080)")
	cmd.Flags().StringVar(&dbPath, "db", "", "sqlite database path (default $SCRIPT_DB_PATH or sessions.db)")
	cmd.Flags().StringVar(&cacheDir, "cache-dir", "", "analysis cache directory (default $SCRIPT_CACHE_DIR or .analysis_cache)")
	return cmd
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
