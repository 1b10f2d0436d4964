package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/tuguldur-s/travelfeed/internal/client/api"
	"github.com/tuguldur-s/travelfeed/internal/client/models"
)

// Feed fetches and prints the post feed.
func (a *App) Feed(ctx context.Context) error {
	if err := a.store.FetchPosts(ctx); err != nil {
		fmt.Println("Could not load feed:", err)
		return err
	}

	posts := a.store.PostsState().Posts
	if len(posts) == 0 {
		fmt.Println("The feed is empty.")
		return nil
	}
	for _, p := range posts {
		fmt.Println(formatPostLine(&p))
	}
	return nil
}

// Show prints one post in detail, with comments.
func (a *App) Show(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Println("Usage: show <post-id>")
		return nil
	}
	id := args[0]

	for _, p := range a.store.PostsState().Posts {
		if p.ID == id {
			printPostDetail(&p)
			return nil
		}
	}
	fmt.Println("Post not found, try 'feed' first.")
	return nil
}

// Like likes a post optimistically.
func (a *App) Like(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Println("Usage: like <post-id>")
		return nil
	}
	if err := a.store.Like(ctx, args[0]); err != nil {
		fmt.Println("Like failed:", err)
		return err
	}
	return nil
}

// Unlike removes a like optimistically.
func (a *App) Unlike(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Println("Usage: unlike <post-id>")
		return nil
	}
	if err := a.store.Unlike(ctx, args[0]); err != nil {
		fmt.Println("Unlike failed:", err)
		return err
	}
	return nil
}

// Tap simulates the double-tap gesture on a post.
func (a *App) Tap(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Println("Usage: tap <post-id>")
		return nil
	}
	if err := a.store.DoubleTap(ctx, args[0]); err != nil {
		fmt.Println("Like failed:", err)
		return err
	}
	return nil
}

// Comment prompts for text and comments on a post.
func (a *App) Comment(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Println("Usage: comment <post-id>")
		return nil
	}

	content, err := GetMultiline(a.reader, "Enter comment", os.Stdout)
	if err != nil {
		return err
	}

	draft := api.CommentDraft{PostID: args[0], Content: content}
	if _, err := a.store.CreateComment(ctx, draft); err != nil {
		fmt.Println("Comment failed:", err)
		return err
	}
	fmt.Println("Comment added.")
	return nil
}

func formatPostLine(p *models.Post) string {
	liked := " "
	if p.IsLiked {
		liked = "♥"
	}
	return fmt.Sprintf("%s %s [%d likes, %d comments] %s", liked, p.ID, p.LikesCount, len(p.Comments), p.Description)
}

func printPostDetail(p *models.Post) {
	fmt.Println(formatPostLine(p))
	if p.Location != "" {
		fmt.Println("  location:", p.Location)
	}
	if p.Category != "" {
		fmt.Println("  category:", p.Category)
	}
	for _, img := range p.Images {
		fmt.Println("  image:", img)
	}
	for _, c := range p.Comments {
		fmt.Printf("  %s: %s\n", c.AuthorID, c.Content)
	}
}
