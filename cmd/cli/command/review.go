package command

import (
	"fmt"
	"strings"

	"cineverse/cmd/cli/command/client"

	"github.com/spf13/cobra"
)

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Read and write CineVerse reviews",
}

var reviewListCmd = &cobra.Command{
	Use:   "list [tmdb-id]",
	Short: "Latest reviews for a movie",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tmdbID, err := parseIDArg(args[0], "movie")
		if err != nil {
			return err
		}

		reviews, err := newClient().Reviews(cmd.Context(), tmdbID)
		if err != nil {
			return fmt.Errorf("failed to get reviews: %w", err)
		}

		if len(reviews) == 0 {
			printf(cmd, "No reviews yet. Be the first!\n")
			return nil
		}

		heading(cmd, "Reviews for %d (%d)", tmdbID, len(reviews))
		for _, r := range reviews {
			printf(cmd, "#%d %s  %s  %s\n", r.ID, r.User.Name, formatRating(r.Rating), r.CreatedAt.Format("2006-01-02"))
			printf(cmd, "%s\n", r.Content)
			printf(cmd, "%s\n", strings.Repeat("-", 50))
		}
		return nil
	},
}

var reviewAddCmd = &cobra.Command{
	Use:   "add [tmdb-id] [text]",
	Short: "Write a review",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		tmdbID, err := parseIDArg(args[0], "movie")
		if err != nil {
			return err
		}

		httpClient, err := authenticatedClient()
		if err != nil {
			return err
		}

		req := client.CreateReviewRequest{TMDBID: tmdbID, Content: strings.Join(args[1:], " ")}
		if cmd.Flags().Changed("rating") {
			rating, _ := cmd.Flags().GetFloat64("rating")
			if rating < 0 || rating > 10 {
				return fmt.Errorf("rating must be between 0 and 10")
			}
			req.Rating = &rating
		}

		review, err := httpClient.AddReview(cmd.Context(), &req)
		if err != nil {
			return fmt.Errorf("failed to post review: %w", err)
		}
		success(cmd, "Review posted (ID %d)", review.ID)
		return nil
	},
}

var reviewDeleteCmd = &cobra.Command{
	Use:   "delete [review-id]",
	Short: "Delete one of your reviews",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reviewID, err := parseIDArg(args[0], "review")
		if err != nil {
			return err
		}

		httpClient, err := authenticatedClient()
		if err != nil {
			return err
		}

		if err := httpClient.DeleteReview(cmd.Context(), reviewID); err != nil {
			return fmt.Errorf("failed to delete review: %w", err)
		}
		success(cmd, "Review %d deleted", reviewID)
		return nil
	},
}

func formatRating(rating *float64) string {
	if rating == nil {
		return "no rating"
	}
	return fmt.Sprintf("%.1f/10", *rating)
}

func init() {
	reviewCmd.AddCommand(reviewListCmd)
	reviewCmd.AddCommand(reviewAddCmd)
	reviewCmd.AddCommand(reviewDeleteCmd)

	reviewAddCmd.Flags().Float64P("rating", "r", 0, "Rating from 0 to 10")
}
