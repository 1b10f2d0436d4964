package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/tuguldur-s/travelfeed/internal/client/api"
	"github.com/tuguldur-s/travelfeed/internal/filex"
)

// NewPost interactively builds a post draft and uploads it. Images are read
// from local paths; at least one is required by the backend.
func (a *App) NewPost(ctx context.Context) error {
	description, err := GetMultiline(a.reader, "Enter description", os.Stdout)
	if err != nil {
		return err
	}

	location, err := getSimpleText(a.reader, "Enter location (optional)", os.Stdout)
	if err != nil {
		return err
	}

	category, err := getSimpleText(a.reader, "Enter category (optional)", os.Stdout)
	if err != nil {
		return err
	}

	paths, err := GetLines(a.reader, "Enter image paths, one per line", os.Stdout)
	if err != nil {
		return err
	}

	draft := api.PostDraft{Description: description, Location: location, Category: category}
	for _, path := range paths {
		name, contentType, data, err := filex.ReadImage(path)
		if err != nil {
			fmt.Println("Could not read image:", err)
			return err
		}
		draft.Images = append(draft.Images, api.ImageFile{Name: name, ContentType: contentType, Data: data})
	}

	post, err := a.store.CreatePost(ctx, draft)
	if err != nil {
		fmt.Println("Post failed:", err)
		return err
	}

	fmt.Println("Posted:", post.ID)
	return nil
}
