package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/breakroom-app/breakroom/internal/domain"
)

func TestCompanySearch(t *testing.T) {
	uc := NewCompanyUsecase(seedCompanies())

	all, err := uc.Search(context.Background(), "")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("empty query should return everything, got %v", all)
	}

	matched, err := uc.Search(context.Background(), "ACME")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(matched) != 1 || matched[0].ID != "acme" {
		t.Fatalf("expected case-insensitive substring match, got %v", matched)
	}

	none, err := uc.Search(context.Background(), "nonesuch")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(none) != 0 {
		t.Fatalf("expected no matches, got %v", none)
	}
}

func TestCompanyCreateSlugAndCollision(t *testing.T) {
	uc := NewCompanyUsecase(seedCompanies())

	company, err := uc.Create(context.Background(), CreateCompanyInput{Name: "Stark Industries"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if company.ID != "stark-industries" {
		t.Fatalf("expected slug id, got %q", company.ID)
	}

	// Collision policy: reject. A case variant slugs to the same id.
	if _, err := uc.Create(context.Background(), CreateCompanyInput{Name: "stark industries"}); !errors.Is(err, domain.ErrCompanyExists) {
		t.Fatalf("expected collision rejection, got %v", err)
	}
}

func TestCompanyCreateEmptyName(t *testing.T) {
	uc := NewCompanyUsecase(seedCompanies())

	if _, err := uc.Create(context.Background(), CreateCompanyInput{Name: "  ?! "}); !errors.Is(err, domain.ErrEmptyName) {
		t.Fatalf("expected empty name rejection, got %v", err)
	}
}

func TestCompanySearchSeesNewCompanies(t *testing.T) {
	uc := NewCompanyUsecase(seedCompanies())

	// Warm the cache, then add a company; the cache must not mask it.
	if _, err := uc.Search(context.Background(), "wayne"); err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if _, err := uc.Create(context.Background(), CreateCompanyInput{Name: "Wayne Enterprises"}); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	matched, err := uc.Search(context.Background(), "wayne")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(matched) != 1 {
		t.Fatalf("expected new company to be searchable, got %v", matched)
	}
}
