package models

// Plan is a standalone internet plan
type Plan struct {
	ID            string   `json:"id" yaml:"id"`
	Name          string   `json:"name" yaml:"name"`
	Speed         int      `json:"speed" yaml:"speed"`
	SpeedUnit     string   `json:"speedUnit" yaml:"speed_unit"`
	Price         int      `json:"price" yaml:"price"`
	OriginalPrice int      `json:"originalPrice,omitempty" yaml:"original_price,omitempty"`
	Period        string   `json:"period" yaml:"period"`
	Features      []string `json:"features" yaml:"features"`
	Popular       bool     `json:"popular,omitempty" yaml:"popular,omitempty"`
	Badge         string   `json:"badge,omitempty" yaml:"badge,omitempty"`
}

// BundlePackage is an internet plan bundled with OTT and IPTV
type BundlePackage struct {
	ID        string   `json:"id" yaml:"id"`
	Name      string   `json:"name" yaml:"name"`
	Speed     int      `json:"speed" yaml:"speed"`
	SpeedUnit string   `json:"speedUnit" yaml:"speed_unit"`
	Price     int      `json:"price" yaml:"price"`
	Period    string   `json:"period" yaml:"period"`
	Features  []string `json:"features" yaml:"features"`
	OTTCount  int      `json:"ottCount,omitempty" yaml:"ott_count,omitempty"`
	Channels  int      `json:"channels,omitempty" yaml:"channels,omitempty"`
	Badge     string   `json:"badge,omitempty" yaml:"badge,omitempty"`
}

// Feature is a marketing highlight shown on the landing page
type Feature struct {
	ID          string `json:"id" yaml:"id"`
	Icon        string `json:"icon" yaml:"icon"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
}

// Testimonial is a customer quote
type Testimonial struct {
	ID      string `json:"id" yaml:"id"`
	Name    string `json:"name" yaml:"name"`
	Role    string `json:"role" yaml:"role"`
	Content string `json:"content" yaml:"content"`
	Rating  int    `json:"rating" yaml:"rating"`
}

// FAQ is a frequently asked question entry
type FAQ struct {
	ID       string `json:"id" yaml:"id"`
	Question string `json:"question" yaml:"question"`
	Answer   string `json:"answer" yaml:"answer"`
}
