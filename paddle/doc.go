// Package paddle provides a Go client for the Paddle Billing API.
//
// The client handles API-key authentication, local rate limiting, automatic
// retries with exponential backoff on 429 responses, webhook signature
// verification via HMAC-SHA256, and cursor-based pagination.
//
// # Quick Start
//
//	client := paddle.NewClient(os.Getenv("PADDLE_API_KEY"))
//
//	product, err := client.Products.Get(ctx, "pro_01gsz4t5hdjse780zja8vvr7jg")
//
// Sandbox API keys require the sandbox endpoint:
//
//	client := paddle.NewClient(apiKey, paddle.WithSandbox())
//
// # Pagination
//
// List methods return a Paginator that follows the `after` cursor:
//
//	products := client.Products.List(&paddle.ProductListParams{
//	    ListParams: paddle.ListParams{PerPage: 50},
//	})
//	for {
//	    page, err := products.Next(ctx)
//	    if err != nil {
//	        return err
//	    }
//	    if page == nil {
//	        break // collection exhausted
//	    }
//	    for _, p := range page.Data { /* process product */ }
//	}
//
// or fetch the whole collection at once with All:
//
//	all, err := client.Products.List(nil).All(ctx)
//
// # Webhooks
//
// Use Unmarshal or ParseWebhook to verify that received events are genuinely
// sent from Paddle before acting on them:
//
//	event, err := paddle.ParseWebhook(r, os.Getenv("PADDLE_WEBHOOK_SECRET"))
package paddle
