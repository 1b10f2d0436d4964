package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/tuguldur-s/travelfeed/internal/client/state"
)

// Search runs a search with the current filters. Arguments form the query
// text; "key=value" tokens set filters instead:
//
//	search beach sunset
//	search type=products category=gear tent
//	search type=users anna
func (a *App) Search(ctx context.Context, args []string) error {
	var words []string
	a.store.UpdateSearchFilters(func(f *state.SearchFilters) {
		for _, arg := range args {
			key, value, ok := strings.Cut(arg, "=")
			if !ok {
				words = append(words, arg)
				continue
			}
			switch key {
			case "type":
				f.Type = value
			case "category":
				f.Category = value
			case "price":
				f.PriceRange = value
			case "location":
				f.Location = value
			case "sort":
				f.SortBy = value
			default:
				words = append(words, arg)
			}
		}
		if len(words) > 0 {
			f.Query = strings.Join(words, " ")
		}
	})

	if err := a.store.Search(ctx); err != nil {
		fmt.Println("Search failed:", err)
		return err
	}

	a.printSearchResults()
	return nil
}

// NextPage advances search pagination.
func (a *App) NextPage(ctx context.Context) error {
	before := a.store.SearchState().Results.Pagination.Page
	if err := a.store.NextSearchPage(ctx); err != nil {
		fmt.Println("Search failed:", err)
		return err
	}
	if a.store.SearchState().Results.Pagination.Page == before {
		fmt.Println("No more pages.")
		return nil
	}

	a.printSearchResults()
	return nil
}

func (a *App) printSearchResults() {
	st := a.store.SearchState()
	p := st.Results.Pagination

	switch {
	case len(st.Results.Posts) > 0:
		for _, post := range st.Results.Posts {
			fmt.Println(formatPostLine(&post))
		}
	case len(st.Results.Products) > 0:
		for _, product := range st.Results.Products {
			fmt.Printf("%s %-30s %8.2f\n", product.ID, product.Name, product.Price)
		}
	case len(st.Results.Users) > 0:
		for _, user := range st.Results.Users {
			fmt.Printf("%s  %s\n", user.ID, user.Name)
		}
	default:
		fmt.Println("No results.")
		return
	}

	if p.Pages > 1 {
		fmt.Printf("Page %d of %d (%d results), 'next' for more\n", p.Page, p.Pages, p.Total)
	}
}
