package command

import (
	"fmt"

	"cineverse/cmd/cli/command/client"

	"github.com/spf13/cobra"
)

var watchlistCmd = &cobra.Command{
	Use:   "watchlist",
	Short: "Manage your watchlist",
	Long:  `Add, remove, and list movies you want to watch later`,
}

var watchlistListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your watchlist",
	RunE: func(cmd *cobra.Command, args []string) error {
		httpClient, err := authenticatedClient()
		if err != nil {
			return err
		}

		entries, err := httpClient.Watchlist(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to fetch watchlist: %w", err)
		}

		if len(entries) == 0 {
			printf(cmd, "Your watchlist is empty\n")
			return nil
		}

		heading(cmd, "Your watchlist (%d movies)", len(entries))
		for i, e := range entries {
			printf(cmd, "%d. %s (TMDb %d, entry %d) added %s\n",
				i+1, e.Title, e.TMDBID, e.ID, e.AddedAt.Format("2006-01-02"))
		}
		return nil
	},
}

var watchlistAddCmd = &cobra.Command{
	Use:   "add [tmdb-id]",
	Short: "Add a movie to your watchlist",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tmdbID, err := parseIDArg(args[0], "movie")
		if err != nil {
			return err
		}

		httpClient, err := authenticatedClient()
		if err != nil {
			return err
		}

		req := client.AddToWatchlistRequest{TMDBID: tmdbID}
		req.Title, _ = cmd.Flags().GetString("title")
		req.Poster, _ = cmd.Flags().GetString("poster")

		// fill the title from the catalog when not given
		if req.Title == "" {
			if movie, err := httpClient.MovieDetails(cmd.Context(), tmdbID); err == nil {
				req.Title = movie.Title
				req.Poster = movie.PosterPath
			}
		}

		entry, err := httpClient.AddToWatchlist(cmd.Context(), &req)
		if err != nil {
			return fmt.Errorf("failed to add to watchlist: %w", err)
		}

		success(cmd, "Added %s to your watchlist (entry %d)", entry.Title, entry.ID)
		return nil
	},
}

var watchlistRemoveCmd = &cobra.Command{
	Use:   "remove [entry-id]",
	Short: "Remove an entry from your watchlist",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		entryID, err := parseIDArg(args[0], "entry")
		if err != nil {
			return err
		}

		httpClient, err := authenticatedClient()
		if err != nil {
			return err
		}

		if err := httpClient.RemoveFromWatchlist(cmd.Context(), entryID); err != nil {
			return fmt.Errorf("failed to remove entry: %w", err)
		}

		success(cmd, "Removed entry %d", entryID)
		return nil
	},
}

func init() {
	watchlistCmd.AddCommand(watchlistListCmd)
	watchlistCmd.AddCommand(watchlistAddCmd)
	watchlistCmd.AddCommand(watchlistRemoveCmd)

	watchlistAddCmd.Flags().String("title", "", "Movie title (looked up when empty)")
	watchlistAddCmd.Flags().String("poster", "", "Poster path")
}
