package constants

// Route constants
const (
	PublicRoute   = "/"
	FeaturesRoute = "/features"
	PricingRoute  = "/pricing"
	ContactRoute  = "/contact"
	AdminLeads    = "/admin/leads"
	APIPrefix     = "/api/"
)

// QuoteRoute is the public page of a saved quote.
func QuoteRoute(uuid string) string {
	return "/quote/" + uuid
}
