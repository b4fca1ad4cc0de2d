package command

import (
	"fmt"
	"strings"

	"cineverse/cmd/cli/command/client"

	"github.com/spf13/cobra"
)

var collectionCmd = &cobra.Command{
	Use:   "collection",
	Short: "Curate movie collections",
	Long:  `Create, list, view and delete collections, and add or remove their movies`,
}

var collectionListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your collections",
	RunE: func(cmd *cobra.Command, args []string) error {
		httpClient, err := authenticatedClient()
		if err != nil {
			return err
		}

		collections, err := httpClient.Collections(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to fetch collections: %w", err)
		}

		if len(collections) == 0 {
			printf(cmd, "You have no collections yet\n")
			return nil
		}

		heading(cmd, "Your collections (%d)", len(collections))
		for _, c := range collections {
			printf(cmd, "%-6d %s [%s] %d movies\n", c.ID, c.Title, visibility(c.IsPublic), c.ItemCount)
		}
		return nil
	},
}

var collectionCreateCmd = &cobra.Command{
	Use:   "create [title]",
	Short: "Create a collection",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		httpClient, err := authenticatedClient()
		if err != nil {
			return err
		}

		req := client.CreateCollectionRequest{Title: strings.Join(args, " ")}
		req.Description, _ = cmd.Flags().GetString("description")
		req.IsPublic, _ = cmd.Flags().GetBool("public")

		collection, err := httpClient.CreateCollection(cmd.Context(), &req)
		if err != nil {
			return fmt.Errorf("failed to create collection: %w", err)
		}

		success(cmd, "Collection %q created (ID %d)", collection.Title, collection.ID)
		return nil
	},
}

var collectionShowCmd = &cobra.Command{
	Use:   "show [collection-id]",
	Short: "Show a collection and its movies",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseIDArg(args[0], "collection")
		if err != nil {
			return err
		}

		// public collections are readable without a session
		httpClient, err := authenticatedClient()
		if err != nil {
			httpClient = newClient()
		}

		collection, err := httpClient.Collection(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("failed to get collection: %w", err)
		}

		heading(cmd, "%s [%s]", collection.Title, visibility(collection.IsPublic))
		if collection.Description != "" {
			printf(cmd, "%s\n", collection.Description)
		}
		if len(collection.Items) == 0 {
			printf(cmd, "No movies yet.\n")
			return nil
		}
		for i, item := range collection.Items {
			printf(cmd, "%d. %s (%s) TMDb %d\n", i+1, item.Title, releaseYear(item.ReleaseDate), item.TMDBID)
		}
		return nil
	},
}

var collectionDeleteCmd = &cobra.Command{
	Use:   "delete [collection-id]",
	Short: "Delete a collection",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseIDArg(args[0], "collection")
		if err != nil {
			return err
		}

		httpClient, err := authenticatedClient()
		if err != nil {
			return err
		}

		if err := httpClient.DeleteCollection(cmd.Context(), id); err != nil {
			return fmt.Errorf("failed to delete collection: %w", err)
		}
		success(cmd, "Collection %d deleted", id)
		return nil
	},
}

var collectionAddCmd = &cobra.Command{
	Use:   "add [collection-id] [tmdb-id]",
	Short: "Add a movie to a collection",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		collectionID, err := parseIDArg(args[0], "collection")
		if err != nil {
			return err
		}
		tmdbID, err := parseIDArg(args[1], "movie")
		if err != nil {
			return err
		}

		httpClient, err := authenticatedClient()
		if err != nil {
			return err
		}

		req := client.AddCollectionItemRequest{TMDBID: tmdbID}
		req.Title, _ = cmd.Flags().GetString("title")
		if req.Title == "" {
			if movie, err := httpClient.MovieDetails(cmd.Context(), tmdbID); err == nil {
				req.Title = movie.Title
				req.PosterPath = movie.PosterPath
				req.ReleaseDate = movie.ReleaseDate
			}
		}

		item, err := httpClient.AddCollectionItem(cmd.Context(), collectionID, &req)
		if err != nil {
			return fmt.Errorf("failed to add movie: %w", err)
		}
		success(cmd, "Added %s to collection %d", item.Title, collectionID)
		return nil
	},
}

var collectionRemoveCmd = &cobra.Command{
	Use:   "remove [collection-id] [tmdb-id]",
	Short: "Remove a movie from a collection",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		collectionID, err := parseIDArg(args[0], "collection")
		if err != nil {
			return err
		}
		tmdbID, err := parseIDArg(args[1], "movie")
		if err != nil {
			return err
		}

		httpClient, err := authenticatedClient()
		if err != nil {
			return err
		}

		if err := httpClient.RemoveCollectionItem(cmd.Context(), collectionID, tmdbID); err != nil {
			return fmt.Errorf("failed to remove movie: %w", err)
		}
		success(cmd, "Removed movie %d from collection %d", tmdbID, collectionID)
		return nil
	},
}

func visibility(public bool) string {
	if public {
		return "public"
	}
	return "private"
}

func init() {
	collectionCmd.AddCommand(collectionListCmd)
	collectionCmd.AddCommand(collectionCreateCmd)
	collectionCmd.AddCommand(collectionShowCmd)
	collectionCmd.AddCommand(collectionDeleteCmd)
	collectionCmd.AddCommand(collectionAddCmd)
	collectionCmd.AddCommand(collectionRemoveCmd)

	collectionCreateCmd.Flags().StringP("description", "d", "", "Collection description")
	collectionCreateCmd.Flags().Bool("public", false, "Make the collection visible to everyone")

	collectionAddCmd.Flags().String("title", "", "Movie title (looked up when empty)")
}
