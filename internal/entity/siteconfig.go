package entity

type NavLink struct {
	ID        string `json:"id"`
	Label     string `json:"label"`
	Target    string `json:"target"`
	IsSpecial bool   `json:"isSpecial,omitempty"`
}

type HeroSlide struct {
	ID       string `json:"id"`
	Image    string `json:"image"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	CTA      string `json:"cta"`
}

// SiteConfig is the editable marketing content managed from the admin CMS.
type SiteConfig struct {
	LogoText       string      `json:"logoText"`
	LogoColorClass string      `json:"logoColorClass"`
	LogoImage      string      `json:"logoImage,omitempty"`
	NavLinks       []NavLink   `json:"navLinks"`
	HeroSlides     []HeroSlide `json:"heroSlides"`
	SpecialOffers  OfferImages `json:"specialOfferImages"`
}

type OfferImages struct {
	HeroBackground string `json:"heroBackground"`
	SideImage      string `json:"sideImage"`
}

// DefaultSiteConfig is served when neither the database nor the cache has a
// stored config.
func DefaultSiteConfig() SiteConfig {
	return SiteConfig{
		LogoText:       "DTH Store",
		LogoColorClass: "text-blue-600",
		NavLinks: []NavLink{
			{ID: "nav-home", Label: "Home", Target: "home"},
			{ID: "nav-dth", Label: "DTH Plans", Target: "dth"},
			{ID: "nav-broadband", Label: "Broadband", Target: "broadband"},
			{ID: "nav-offer", Label: "Special Offer", Target: "offer", IsSpecial: true},
		},
		HeroSlides: []HeroSlide{
			{
				ID:       "slide-1",
				Title:    "New DTH Connection in 2 Hours",
				Subtitle: "All operators. Free installation. Best prices guaranteed.",
				CTA:      "Book Now",
			},
		},
	}
}
