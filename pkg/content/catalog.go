package content

import (
	"fmt"
	"os"

	"zapbytes/internal/models"
	"zapbytes/pkg/logger"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Catalog holds the landing page marketing content. It is loaded once
// at startup and read-only afterwards.
type Catalog struct {
	MonthlyPlans []models.Plan          `json:"monthlyPlans" yaml:"monthly_plans"`
	AnnualPlans  []models.Plan          `json:"annualPlans" yaml:"annual_plans"`
	Bundles      []models.BundlePackage `json:"bundles" yaml:"bundles"`
	Features     []models.Feature       `json:"features" yaml:"features"`
	Testimonials []models.Testimonial   `json:"testimonials" yaml:"testimonials"`
	FAQs         []models.FAQ           `json:"faqs" yaml:"faqs"`
}

// LoadCatalog reads the content catalog from a YAML file. An empty
// path or a missing file falls back to the built-in defaults.
func LoadCatalog(path string) (*Catalog, error) {
	if path == "" {
		return DefaultCatalog(), nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		logger.Warn("Content catalog file missing, using defaults", zap.String("path", path))
		return DefaultCatalog(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read content catalog: %w", err)
	}

	catalog := &Catalog{}
	if err := yaml.Unmarshal(data, catalog); err != nil {
		return nil, fmt.Errorf("failed to parse content catalog: %w", err)
	}

	logger.Info("Content catalog loaded",
		zap.String("path", path),
		zap.Int("plans", len(catalog.MonthlyPlans)+len(catalog.AnnualPlans)),
		zap.Int("bundles", len(catalog.Bundles)))

	return catalog, nil
}

// DefaultCatalog returns the built-in zapbytes content
func DefaultCatalog() *Catalog {
	return &Catalog{
		MonthlyPlans: []models.Plan{
			{
				ID: "basic-40", Name: "Basic", Speed: 40, SpeedUnit: "Mbps",
				Price: 424, Period: "month",
				Features: []string{"Unlimited Data", "Free Installation", "24x7 Support"},
			},
			{
				ID: "smart-100", Name: "Smart", Speed: 100, SpeedUnit: "Mbps",
				Price: 599, Period: "month",
				Features: []string{"Unlimited Data", "Free Installation", "Free Dual Band Router", "24x7 Support"},
				Popular:  true, Badge: "Most Popular",
			},
			{
				ID: "pro-200", Name: "Pro", Speed: 200, SpeedUnit: "Mbps",
				Price: 799, Period: "month",
				Features: []string{"Unlimited Data", "Free Installation", "Free Dual Band Router", "Priority Support"},
			},
			{
				ID: "ultra-400", Name: "Ultra", Speed: 400, SpeedUnit: "Mbps",
				Price: 999, Period: "month",
				Features: []string{"Unlimited Data", "Free Installation", "Free Wi-Fi 6 Router", "Priority Support"},
			},
		},
		AnnualPlans: []models.Plan{
			{
				ID: "basic-40-annual", Name: "Basic", Speed: 40, SpeedUnit: "Mbps",
				Price: 4240, OriginalPrice: 5088, Period: "year",
				Features: []string{"Unlimited Data", "Free Installation", "2 Months Free", "24x7 Support"},
			},
			{
				ID: "smart-100-annual", Name: "Smart", Speed: 100, SpeedUnit: "Mbps",
				Price: 5990, OriginalPrice: 7188, Period: "year",
				Features: []string{"Unlimited Data", "Free Installation", "Free Dual Band Router", "2 Months Free"},
				Popular:  true, Badge: "Best Value",
			},
			{
				ID: "pro-200-annual", Name: "Pro", Speed: 200, SpeedUnit: "Mbps",
				Price: 7990, OriginalPrice: 9588, Period: "year",
				Features: []string{"Unlimited Data", "Free Installation", "Free Dual Band Router", "2 Months Free"},
			},
			{
				ID: "ultra-400-annual", Name: "Ultra", Speed: 400, SpeedUnit: "Mbps",
				Price: 9990, OriginalPrice: 11988, Period: "year",
				Features: []string{"Unlimited Data", "Free Installation", "Free Wi-Fi 6 Router", "2 Months Free"},
			},
		},
		Bundles: []models.BundlePackage{
			{
				ID: "stream-100", Name: "Stream", Speed: 100, SpeedUnit: "Mbps",
				Price: 799, Period: "month", OTTCount: 12, Channels: 350,
				Features: []string{"Unlimited Data", "12 OTT Apps", "350+ Live TV Channels", "Free Android Box"},
			},
			{
				ID: "stream-plus-200", Name: "Stream Plus", Speed: 200, SpeedUnit: "Mbps",
				Price: 999, Period: "month", OTTCount: 16, Channels: 450, Badge: "Most Popular",
				Features: []string{"Unlimited Data", "16 OTT Apps", "450+ Live TV Channels", "Free Android Box"},
			},
			{
				ID: "stream-max-400", Name: "Stream Max", Speed: 400, SpeedUnit: "Mbps",
				Price: 1299, Period: "month", OTTCount: 22, Channels: 550,
				Features: []string{"Unlimited Data", "22 OTT Apps", "550+ Live TV Channels", "Free 4K Android Box"},
			},
		},
		Features: []models.Feature{
			{ID: "speed", Icon: "zap", Title: "Blazing Fast Speeds", Description: "Enjoy buffer-free 4K streaming on multiple devices with speeds up to 400 Mbps."},
			{ID: "symmetric", Icon: "arrow-up-down", Title: "Symmetrical Upload", Description: "Crystal clear video calls, instant file uploads, and seamless cloud access with symmetrical speeds."},
			{ID: "unlimited", Icon: "infinity", Title: "Truly Unlimited", Description: "No FUP, no throttling. Every plan comes with genuinely unlimited data."},
			{ID: "support", Icon: "headset", Title: "24x7 Local Support", Description: "Round-the-clock support from engineers based in your neighbourhood."},
		},
		Testimonials: []models.Testimonial{
			{ID: "t1", Name: "Rahul Sharma", Role: "Work-from-home Engineer", Rating: 5, Content: "Switched from my old provider and the difference is night and day. Video calls never drop anymore."},
			{ID: "t2", Name: "Priya Mehta", Role: "Content Creator", Rating: 5, Content: "Uploading 4K videos used to take hours. Now it is done before my coffee gets cold."},
			{ID: "t3", Name: "Amit Gupta", Role: "Small Business Owner", Rating: 4, Content: "Reliable connection for my shop's billing and CCTV. Support actually picks up the phone."},
		},
		FAQs: []models.FAQ{
			{ID: "f1", Question: "Is installation really free?", Answer: "Yes, installation is free on all plans. Installation charges may apply only for non-standard wiring requirements."},
			{ID: "f2", Question: "Are the plans truly unlimited?", Answer: "All plans come with unlimited data and no fair-usage throttling."},
			{ID: "f3", Question: "Which areas do you serve?", Answer: "We currently serve Delhi NCR and are expanding rapidly. Submit your pincode and we will confirm availability."},
			{ID: "f4", Question: "How fast can I get connected?", Answer: "Most installations are completed within 24 to 48 hours of booking."},
		},
	}
}
