package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"estatesalehub/internal/infrastructure/salesapi"
	"estatesalehub/internal/usecase"
)

func main() {
	baseURL := flag.String("base", envOr("SALES_API_URL", "http://localhost:8080"), "sales API base URL")
	city := flag.String("city", "", "filter by city (substring match)")
	state := flag.String("state", "", "filter by state code")
	saleType := flag.String("type", "", "filter by sale type (estate_sale, moving_sale, auction, garage_sale)")
	featured := flag.Bool("featured", false, "featured sales only")
	limit := flag.Int("limit", 0, "max results (default 20, capped at 100)")
	query := flag.String("query", "", "free-text refinement over the results")
	saleID := flag.Int("id", 0, "show the detail view for one sale instead of the feed")
	flag.Parse()

	client := salesapi.NewClient(*baseURL)
	discovery := usecase.NewDiscoveryUseCase(client)

	ctx := context.Background()

	if *saleID > 0 {
		if err := showDetail(ctx, discovery, *saleID); err != nil {
			log.Fatalf("Failed to load sale %d: %v", *saleID, err)
		}
		return
	}

	if err := showFeed(ctx, discovery, usecase.SearchInput{
		City:         *city,
		State:        *state,
		SaleType:     *saleType,
		FeaturedOnly: *featured,
		Limit:        *limit,
		Query:        *query,
	}); err != nil {
		log.Fatalf("Failed to load sales: %v", err)
	}
}

func showFeed(ctx context.Context, discovery *usecase.DiscoveryUseCase, input usecase.SearchInput) error {
	session := usecase.NewBrowseSession(discovery)
	if err := session.Search(ctx, input); err != nil {
		return err
	}
	if err := session.Err(); err != nil {
		return err
	}

	visible := session.Visible()
	if len(visible) == 0 {
		fmt.Println("No sales found.")
		return nil
	}

	cards := session.Cards()
	for i, summary := range visible {
		card := cards[i]

		badge := ""
		if card.Badge != nil {
			badge = " [" + card.Badge.Label + "]"
		}
		marker := ""
		if card.Featured {
			marker = " *"
		}

		fmt.Printf("%s%s%s\n", summary.Title, badge, marker)
		if summary.HasAddress() {
			fmt.Printf("  %s, %s, %s %s\n", summary.Address, summary.City, summary.State, summary.ZipCode)
		} else {
			fmt.Printf("  %s, %s (address TBA)\n", summary.City, summary.State)
		}
		if card.SourceName != "" {
			fmt.Printf("  via %s: %s\n", card.SourceName, card.Target)
		} else {
			fmt.Printf("  %s\n", card.Target)
		}
		fmt.Println()
	}

	fmt.Printf("%d sales\n", len(visible))
	return nil
}

func showDetail(ctx context.Context, discovery *usecase.DiscoveryUseCase, id int) error {
	session := usecase.NewDetailSession(discovery)
	if err := session.Load(ctx, id); err != nil {
		if session.NotFound() {
			fmt.Printf("Sale %d not found. Try browsing all sales instead.\n", id)
			return nil
		}
		return err
	}

	view := session.View()
	fmt.Println(view.Title)
	if view.Badge != nil {
		fmt.Printf("[%s]\n", view.Badge.Label)
	}
	if view.AddressLine1 != "" {
		fmt.Println(view.AddressLine1)
	}
	if view.AddressLine2 != "" {
		fmt.Println(view.AddressLine2)
	}
	fmt.Println(view.CityStateZip)

	fmt.Printf("Starts %s at %s\n", view.StartDateLine, view.StartTime)
	if view.EndDateLine != "" {
		fmt.Printf("Ends %s at %s\n", view.EndDateLine, view.EndTime)
	} else {
		fmt.Printf("Ends at %s\n", view.EndTime)
	}
	if view.SaleHours != "" {
		fmt.Printf("Hours: %s\n", view.SaleHours)
	}
	if view.DrivingDirections != "" {
		fmt.Printf("Getting there: %s\n", view.DrivingDirections)
	}
	if view.ParkingInfo != "" {
		fmt.Printf("Parking: %s\n", view.ParkingInfo)
	}

	fmt.Printf("Directions: %s\n", view.DirectionsURL)

	gallery := session.Gallery()
	if gallery.Len() > 0 {
		fmt.Printf("\nPhotos (%d):\n", gallery.Len())
		for i, img := range gallery.Images() {
			marker := " "
			if i == gallery.Index() {
				marker = ">"
			}
			fmt.Printf("%s %s\n", marker, img.ImageURL)
		}
	}

	if view.Description != "" {
		fmt.Printf("\n%s\n", view.Description)
	}

	return nil
}

func envOr(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
