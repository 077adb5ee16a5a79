package content

import (
	"os"
	"path/filepath"
	"testing"

	"zapbytes/pkg/logger"
)

func TestMain(m *testing.M) {
	if err := logger.InitLogger(true, ""); err != nil {
		os.Exit(1)
	}
	os.Exit(m.Run())
}

func TestDefaultCatalog(t *testing.T) {
	catalog := DefaultCatalog()

	if len(catalog.MonthlyPlans) == 0 || len(catalog.AnnualPlans) == 0 {
		t.Fatal("default catalog missing plans")
	}
	if len(catalog.Bundles) == 0 || len(catalog.FAQs) == 0 {
		t.Fatal("default catalog missing bundles or FAQs")
	}

	for _, plan := range catalog.MonthlyPlans {
		if plan.ID == "" || plan.Price <= 0 || plan.Speed <= 0 {
			t.Errorf("invalid plan: %+v", plan)
		}
	}
}

func TestLoadCatalogMissingFileFallsBack(t *testing.T) {
	catalog, err := LoadCatalog("/nonexistent/catalog.yaml")
	if err != nil {
		t.Fatalf("LoadCatalog failed: %v", err)
	}
	if len(catalog.MonthlyPlans) == 0 {
		t.Error("expected default catalog")
	}
}

func TestLoadCatalogFromYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	data := `
monthly_plans:
  - id: test-50
    name: Test
    speed: 50
    speed_unit: Mbps
    price: 499
    period: month
    features:
      - Unlimited Data
faqs:
  - id: f1
    question: Q?
    answer: A.
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("failed to write catalog: %v", err)
	}

	catalog, err := LoadCatalog(path)
	if err != nil {
		t.Fatalf("LoadCatalog failed: %v", err)
	}
	if len(catalog.MonthlyPlans) != 1 || catalog.MonthlyPlans[0].ID != "test-50" {
		t.Errorf("unexpected plans: %+v", catalog.MonthlyPlans)
	}
	if catalog.MonthlyPlans[0].Price != 499 {
		t.Errorf("unexpected price: %d", catalog.MonthlyPlans[0].Price)
	}
	if len(catalog.FAQs) != 1 {
		t.Errorf("unexpected FAQs: %+v", catalog.FAQs)
	}
}

func TestLoadCatalogInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(path, []byte("monthly_plans: {bad"), 0644); err != nil {
		t.Fatalf("failed to write catalog: %v", err)
	}

	if _, err := LoadCatalog(path); err == nil {
		t.Error("expected parse error")
	}
}
