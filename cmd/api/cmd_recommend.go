package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/wavelength-labs/tastemaker/internal/core/domain"
)

var (
	recommendSeeds []string
	recommendLimit int
)

var recommendCmd = &cobra.Command{
	Use:     "recommend",
	Short:   "Run a one-shot recommendation against the configured catalog",
	Example: `  tastemaker recommend --seed "Beat It:1982" --seed "Billie Jean:1982" --limit 10`,
	RunE:    runRecommend,
}

func init() {
	recommendCmd.Flags().StringArrayVar(&recommendSeeds, "seed", nil, `seed song as "Title:Year" (repeatable)`)
	recommendCmd.Flags().IntVar(&recommendLimit, "limit", 10, "number of recommendations")
}

func runRecommend(cmd *cobra.Command, args []string) error {
	if err := loadConfig(); err != nil {
		return err
	}

	seeds, err := parseSeeds(recommendSeeds)
	if err != nil {
		return err
	}

	engine, closeEngine, err := buildEngine()
	if err != nil {
		return err
	}
	defer closeEngine()

	result, err := engine.Recommend(context.Background(), seeds, recommendLimit)
	if err != nil {
		return err
	}

	switch result.Status {
	case domain.StatusNoInput:
		fmt.Println("no seed songs given; pass at least one --seed \"Title:Year\"")
		return nil
	case domain.StatusNoMatches:
		fmt.Println("no recommendations found; try different seed songs")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "#\tTITLE\tYEAR\tPOPULARITY\tARTISTS")
	for i, t := range result.Tracks {
		fmt.Fprintf(w, "%d\t%s\t%d\t%d\t%s\n", i+1, t.Title, t.Year, t.Popularity, t.Artists)
	}
	return w.Flush()
}

// parseSeeds splits "Title:Year" pairs on the last colon so titles may
// contain colons themselves.
func parseSeeds(raw []string) ([]domain.SeedSong, error) {
	seeds := make([]domain.SeedSong, 0, len(raw))
	for _, s := range raw {
		idx := strings.LastIndex(s, ":")
		if idx <= 0 || idx == len(s)-1 {
			return nil, fmt.Errorf("invalid seed %q, want \"Title:Year\"", s)
		}
		year, err := strconv.Atoi(strings.TrimSpace(s[idx+1:]))
		if err != nil {
			return nil, fmt.Errorf("invalid seed year in %q: %w", s, err)
		}
		seeds = append(seeds, domain.SeedSong{
			Title: strings.TrimSpace(s[:idx]),
			Year:  year,
		})
	}
	return seeds, nil
}
