package command

import (
	"fmt"
	"strconv"
	"strings"

	"cineverse/cmd/cli/command/client"

	"github.com/spf13/cobra"
)

var movieCmd = &cobra.Command{
	Use:   "movie",
	Short: "Browse the movie catalog",
	Long:  `Browse trending and latest movies, list by genre, search, and show details or reviews.`,
}

var trendingCmd = &cobra.Command{
	Use:   "trending",
	Short: "Movies trending this week",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		page, err := newClient().Trending(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to get trending movies: %w", err)
		}
		printMoviePage(cmd, "Trending this week", page)
		return nil
	},
}

var latestCmd = &cobra.Command{
	Use:   "latest",
	Short: "Most recent releases",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		pageNum, _ := cmd.Flags().GetInt("page")
		page, err := newClient().Latest(cmd.Context(), pageNum)
		if err != nil {
			return fmt.Errorf("failed to get latest movies: %w", err)
		}
		printMoviePage(cmd, "Latest releases", page)
		return nil
	},
}

var genreCmd = &cobra.Command{
	Use:   "genre [name]",
	Short: "Popular movies in a genre (e.g. action, sci-fi, war_politics)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pageNum, _ := cmd.Flags().GetInt("page")
		page, err := newClient().ByGenre(cmd.Context(), args[0], pageNum)
		if err != nil {
			return fmt.Errorf("failed to get %s movies: %w", args[0], err)
		}
		printMoviePage(cmd, "Genre: "+args[0], page)
		return nil
	},
}

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search movies by title",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := strings.Join(args, " ")
		pageNum, _ := cmd.Flags().GetInt("page")
		page, err := newClient().Search(cmd.Context(), query, pageNum)
		if err != nil {
			return fmt.Errorf("search failed: %w", err)
		}
		printMoviePage(cmd, fmt.Sprintf("Results for %q", query), page)
		return nil
	},
}

var showMovieCmd = &cobra.Command{
	Use:   "show [tmdb-id]",
	Short: "Movie details",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseIDArg(args[0], "movie")
		if err != nil {
			return err
		}

		movie, err := newClient().MovieDetails(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("failed to get movie: %w", err)
		}

		heading(cmd, "%s (%s)", movie.Title, releaseYear(movie.ReleaseDate))
		if movie.Tagline != "" {
			printf(cmd, "%s\n", movie.Tagline)
		}
		printf(cmd, "TMDb ID: %d\n", movie.ID)
		printf(cmd, "Rating:  %s\n", formatScore(movie.VoteAverage))
		if movie.Runtime > 0 {
			printf(cmd, "Runtime: %d min\n", movie.Runtime)
		}
		if len(movie.Genres) > 0 {
			names := make([]string, 0, len(movie.Genres))
			for _, g := range movie.Genres {
				names = append(names, g.Name)
			}
			printf(cmd, "Genres:  %s\n", strings.Join(names, ", "))
		}
		if movie.Overview != "" {
			printf(cmd, "\n%s\n", movie.Overview)
		}
		return nil
	},
}

var externalReviewsCmd = &cobra.Command{
	Use:   "reviews [tmdb-id]",
	Short: "Critic reviews from TMDb",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseIDArg(args[0], "movie")
		if err != nil {
			return err
		}
		pageNum, _ := cmd.Flags().GetInt("page")

		page, err := newClient().ExternalReviews(cmd.Context(), id, pageNum)
		if err != nil {
			return fmt.Errorf("failed to get reviews: %w", err)
		}

		if len(page.Results) == 0 {
			printf(cmd, "No reviews yet.\n")
			return nil
		}
		heading(cmd, "Reviews (page %d of %d)", page.Page, page.TotalPages)
		for _, r := range page.Results {
			printf(cmd, "%s\n%s\n", r.Author, truncate(r.Content, 280))
			printf(cmd, "%s\n", strings.Repeat("-", 50))
		}
		return nil
	},
}

func printMoviePage(cmd *cobra.Command, title string, page *client.MoviePage) {
	if len(page.Results) == 0 {
		printf(cmd, "No movies found.\n")
		return
	}

	if page.TotalPages > 1 {
		heading(cmd, "%s (page %d of %d)", title, page.Page, page.TotalPages)
	} else {
		heading(cmd, "%s", title)
	}
	for _, m := range page.Results {
		printf(cmd, "%-8d %s (%s)  %s\n", m.ID, m.Title, releaseYear(m.ReleaseDate), formatScore(m.VoteAverage))
	}
}

func parseIDArg(arg, what string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s ID: %q", what, arg)
	}
	return id, nil
}

// releaseYear keeps the year of a YYYY-MM-DD date.
func releaseYear(date string) string {
	if len(date) < 4 {
		return "n/a"
	}
	return date[:4]
}

func formatScore(score float64) string {
	if score <= 0 {
		return "unrated"
	}
	return fmt.Sprintf("★ %.1f", score)
}

func truncate(s string, limit int) string {
	s = strings.TrimSpace(s)
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit]) + "…"
}

func init() {
	movieCmd.AddCommand(trendingCmd)
	movieCmd.AddCommand(latestCmd)
	movieCmd.AddCommand(genreCmd)
	movieCmd.AddCommand(searchCmd)
	movieCmd.AddCommand(showMovieCmd)
	movieCmd.AddCommand(externalReviewsCmd)

	for _, c := range []*cobra.Command{latestCmd, genreCmd, searchCmd, externalReviewsCmd} {
		c.Flags().Int("page", 1, "Result page")
	}
}
