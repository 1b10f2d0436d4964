package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/tuguldur-s/travelfeed/internal/client/api"
)

// Products fetches and prints the marketplace listings.
func (a *App) Products(ctx context.Context) error {
	if err := a.store.FetchProducts(ctx); err != nil {
		fmt.Println("Could not load products:", err)
		return err
	}

	products := a.store.ProductsState().Products
	if len(products) == 0 {
		fmt.Println("No products yet.")
		return nil
	}
	for _, p := range products {
		fmt.Printf("%s %-30s %8.2f  %s\n", p.ID, p.Name, p.Price, p.Category)
	}
	return nil
}

// AddProduct interactively creates a listing.
func (a *App) AddProduct(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter product name", os.Stdout)
	if err != nil {
		return err
	}

	description, err := GetMultiline(a.reader, "Enter description", os.Stdout)
	if err != nil {
		return err
	}

	priceText, err := getSimpleText(a.reader, "Enter price", os.Stdout)
	if err != nil {
		return err
	}
	price, err := strconv.ParseFloat(priceText, 64)
	if err != nil {
		fmt.Println("Invalid price:", priceText)
		return err
	}

	category, err := getSimpleText(a.reader, "Enter category (optional)", os.Stdout)
	if err != nil {
		return err
	}

	draft := api.ProductDraft{Name: name, Description: description, Price: price, Category: category}
	product, err := a.store.CreateProduct(ctx, draft)
	if err != nil {
		fmt.Println("Listing failed:", err)
		return err
	}

	fmt.Println("Listed:", product.ID)
	return nil
}

// Categories fetches and prints the category list.
func (a *App) Categories(ctx context.Context) error {
	if err := a.store.FetchCategories(ctx); err != nil {
		fmt.Println("Could not load categories:", err)
		return err
	}

	for _, c := range a.store.CategoriesState().Categories {
		fmt.Printf("%s  %s\n", c.ID, c.Name)
	}
	return nil
}

// Profile prints a user's profile.
func (a *App) Profile(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Println("Usage: profile <user-id>")
		return nil
	}
	if err := a.store.FetchUserProfile(ctx, args[0]); err != nil {
		fmt.Println("Could not load profile:", err)
		return err
	}

	u := a.store.ProfileState().Profile
	fmt.Printf("%s <%s> (id %s)\n", u.Name, u.Email, u.ID)
	return nil
}
