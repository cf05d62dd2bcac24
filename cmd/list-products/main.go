package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/arvarik/paddle-go/paddle"
)

// Walks the full product catalog twice: once page by page, once with the
// aggregate All call. Run with PADDLE_API_KEY set (a sandbox key works with
// -sandbox semantics via PADDLE_SANDBOX=1).
func main() {
	_ = godotenv.Load()

	apiKey := os.Getenv("PADDLE_API_KEY")
	if apiKey == "" {
		log.Fatal("PADDLE_API_KEY environment variable is required")
	}

	opts := []paddle.Option{}
	if os.Getenv("PADDLE_SANDBOX") != "" {
		opts = append(opts, paddle.WithSandbox())
	}

	client := paddle.NewClient(apiKey, opts...)
	ctx := context.Background()

	// Page at a time.
	products := client.Products.List(&paddle.ProductListParams{
		ListParams: paddle.ListParams{PerPage: 20, OrderBy: "id[ASC]"},
	})

	pageNo := 0
	for {
		page, err := products.Next(ctx)
		if err != nil {
			log.Fatalf("fetching page %d: %v", pageNo, err)
		}
		if page == nil {
			break
		}
		pageNo++
		fmt.Printf("page %d (%d items, request %s)\n", pageNo, len(page.Data), page.RequestID)
		for _, p := range page.Data {
			fmt.Printf("  %s  %-30s %s\n", p.ID, p.Name, p.Status)
		}
	}

	// Whole collection at once.
	all, err := client.Products.List(nil).All(ctx)
	if err != nil {
		log.Fatalf("fetching all products: %v", err)
	}
	fmt.Printf("total products: %d\n", len(all))
}
