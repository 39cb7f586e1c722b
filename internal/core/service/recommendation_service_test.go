package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/storefront/ecommerce-services/internal/core/domain"
)

func seedRecommendationData() (*stubReviewRepo, *stubProductRepo) {
	reviews := newStubReviewRepo()
	ctx := context.Background()
	add := func(customer, product uint, rating int) {
		_ = reviews.Create(ctx, &domain.Review{CustomerID: customer, ProductID: product, Rating: rating})
	}
	add(1, 1, 4)
	add(2, 1, 4)
	add(2, 2, 5)
	add(2, 3, 3) // product 3 is not in the catalog

	products := newStubProductRepo()
	_ = products.Create(ctx, &domain.Product{Name: "Widget"})
	_ = products.Create(ctx, &domain.Product{Name: "Gadget"})
	return reviews, products
}

func TestRecommendationService_JoinsCatalog(t *testing.T) {
	reviews, products := seedRecommendationData()
	svc := NewRecommendationService(reviews, products, zerolog.Nop())

	got, err := svc.Recommend(context.Background(), 1, 5)
	if err != nil {
		t.Fatalf("Recommend returned error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 recommendations (missing product skipped), got %+v", got)
	}
	if got[0].Product.Name != "Widget" || got[1].Product.Name != "Gadget" {
		t.Errorf("unexpected order %+v", got)
	}
	if got[0].Score <= got[1].Score {
		t.Errorf("expected descending scores, got %v then %v", got[0].Score, got[1].Score)
	}
}

func TestRecommendationService_CustomerWithoutReviews(t *testing.T) {
	reviews, products := seedRecommendationData()
	svc := NewRecommendationService(reviews, products, zerolog.Nop())

	got, err := svc.Recommend(context.Background(), 42, 5)
	if err != nil {
		t.Fatalf("Recommend returned error: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("expected empty list, got %+v", got)
	}
}

func TestRecommendationService_StoreError(t *testing.T) {
	reviews, products := seedRecommendationData()
	reviews.listErr = errors.New("db down")
	svc := NewRecommendationService(reviews, products, zerolog.Nop())

	if _, err := svc.Recommend(context.Background(), 1, 5); err == nil {
		t.Fatal("expected error")
	}
}
