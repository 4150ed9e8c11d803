package catalog

// Names of the countable page features. Business type page defaults map onto them.
const (
	StaticPage  = "Static Page"
	DynamicPage = "Dynamic Page"
)

func tiers(basic, standard, advanced Money, basicDesc, standardDesc, advancedDesc string) []FeatureTier {
	return []FeatureTier{
		{Name: TierBasic, Description: basicDesc, Price: basic},
		{Name: TierStandard, Description: standardDesc, Price: standard},
		{Name: TierAdvanced, Description: advancedDesc, Price: advanced},
	}
}

// Default returns the studio's built-in catalog. Every call returns a fresh copy.
func Default() *Catalog {
	return &Catalog{
		Currency: "USD",
		Groups: []FeatureGroup{
			{
				Name: "Pages",
				Features: []Feature{
					{
						Name:        StaticPage,
						Description: "Content pages that rarely change, such as About or Services.",
						Tiers: tiers(1500, 2200, 3000,
							"Template layout with your content",
							"Custom layout with section variations",
							"Bespoke design with motion and illustrations"),
						Countable: true,
						MinCount:  1,
					},
					{
						Name:        DynamicPage,
						Description: "Pages driven by data, such as blog listings or product pages.",
						Tiers: tiers(3000, 4500, 6500,
							"List and detail view",
							"Filtering, pagination and search",
							"Personalised content and live data"),
						Countable: true,
						MinCount:  0,
					},
				},
			},
			{
				Name: "Design",
				Features: []Feature{
					{
						Name:        "UI/UX Design",
						Description: "Wireframes, visual design and a clickable prototype.",
						Tiers: tiers(2500, 5000, 9000,
							"Style guide applied to a proven template",
							"Custom design for key screens",
							"Full design system and user testing"),
					},
					{
						Name:        "Branding",
						Description: "Logo, colour palette and typography.",
						Tiers: tiers(1500, 3500, 7000,
							"Logo refresh and palette",
							"Logo, palette, typography and brand sheet",
							"Complete brand identity and guidelines"),
					},
				},
			},
			{
				Name: "Functionality",
				Features: []Feature{
					{
						Name:        "Contact Form",
						Description: "Enquiry forms delivered to your inbox.",
						Tiers: tiers(500, 1200, 2500,
							"Single form with email delivery",
							"Multiple forms with spam protection",
							"CRM integration and auto-responders"),
					},
					{
						Name:        "Content Management",
						Description: "Edit pages and posts without a developer.",
						Tiers: tiers(2000, 4000, 8000,
							"Editable text and images",
							"Blog, media library and roles",
							"Headless CMS with workflows"),
					},
					{
						Name:        "User Accounts",
						Description: "Sign-up, login and member areas.",
						Tiers: tiers(3000, 5500, 9500,
							"Email and password login",
							"Social login and profiles",
							"Roles, teams and single sign-on"),
					},
					{
						Name:        "Payment Integration",
						Description: "Accept payments online.",
						Tiers: tiers(4000, 7000, 12000,
							"Hosted checkout",
							"Embedded checkout with invoices",
							"Subscriptions and multi-currency"),
					},
					{
						Name:        "Booking System",
						Description: "Let customers book appointments or tables.",
						Tiers: tiers(3500, 6000, 10000,
							"Calendar requests by email",
							"Live availability and reminders",
							"Staff scheduling and payments"),
					},
					{
						Name:        "Search",
						Description: "Site-wide search.",
						Tiers: tiers(1000, 2500, 5000,
							"Keyword search",
							"Instant search with filters",
							"Faceted search with typo tolerance"),
					},
				},
			},
			{
				Name: "Marketing",
				Features: []Feature{
					{
						Name:        "SEO Optimization",
						Description: "Get found on search engines.",
						Tiers: tiers(800, 2000, 4500,
							"Meta tags and sitemap",
							"Keyword research and structured data",
							"Technical audit and content strategy"),
					},
					{
						Name:        "Analytics",
						Description: "Understand how visitors use your site.",
						Tiers: tiers(400, 1200, 3000,
							"Traffic analytics",
							"Goals and conversion tracking",
							"Custom dashboards and A/B reports"),
					},
				},
			},
			{
				Name: "Support",
				Features: []Feature{
					{
						Name:        "Hosting & Deployment",
						Description: "We run the site for you.",
						Tiers: tiers(600, 1500, 3500,
							"Shared hosting setup",
							"Managed cloud hosting with CDN",
							"High availability with staging"),
					},
					{
						Name:        "Maintenance",
						Description: "Updates, backups and fixes after launch.",
						Tiers: tiers(1000, 2500, 5000,
							"Three months of updates",
							"Twelve months with monthly backups",
							"Twelve months with priority support"),
					},
				},
			},
		},
		BusinessTypes: []BusinessType{
			{
				Key:         "portfolio",
				Name:        "Portfolio",
				Description: "Showcase your work with a fast, polished personal site.",
				BasePrice:   12000,
				Timeline:    "2-3 weeks",
				DefaultPages: DefaultPageConfig{
					Static:  PageConfig{Count: 4, Names: []string{"Home", "About", "Work", "Contact"}},
					Dynamic: PageConfig{Count: 0, Names: []string{}},
				},
				Defaults: map[string]TierName{
					StaticPage:             TierStandard,
					"UI/UX Design":         TierBasic,
					"Contact Form":         TierBasic,
					"SEO Optimization":     TierBasic,
					"Hosting & Deployment": TierBasic,
				},
			},
			{
				Key:         "business",
				Name:        "Business",
				Description: "A credible company site that turns visitors into leads.",
				BasePrice:   25000,
				Timeline:    "4-6 weeks",
				DefaultPages: DefaultPageConfig{
					Static:  PageConfig{Count: 6, Names: []string{"Home", "About", "Services", "Team", "Pricing", "Contact"}},
					Dynamic: PageConfig{Count: 1, Names: []string{"News"}},
				},
				Defaults: map[string]TierName{
					StaticPage:             TierStandard,
					DynamicPage:            TierBasic,
					"UI/UX Design":         TierStandard,
					"Contact Form":         TierStandard,
					"Content Management":   TierBasic,
					"SEO Optimization":     TierStandard,
					"Analytics":            TierBasic,
					"Hosting & Deployment": TierStandard,
				},
			},
			{
				Key:         "ecommerce",
				Name:        "E-Commerce",
				Description: "An online shop with catalogue, cart and checkout.",
				BasePrice:   48000,
				Timeline:    "8-12 weeks",
				DefaultPages: DefaultPageConfig{
					Static:  PageConfig{Count: 5, Names: []string{"Home", "About", "Shipping", "Returns", "Contact"}},
					Dynamic: PageConfig{Count: 3, Names: []string{"Shop", "Product", "Cart"}},
				},
				Defaults: map[string]TierName{
					StaticPage:             TierStandard,
					DynamicPage:            TierStandard,
					"UI/UX Design":         TierStandard,
					"Contact Form":         TierBasic,
					"User Accounts":        TierBasic,
					"Payment Integration":  TierStandard,
					"Search":               TierStandard,
					"SEO Optimization":     TierStandard,
					"Analytics":            TierStandard,
					"Hosting & Deployment": TierStandard,
				},
			},
			{
				Key:         "blog",
				Name:        "Blog & Magazine",
				Description: "Publish articles with an editor your team will enjoy.",
				BasePrice:   18000,
				Timeline:    "3-5 weeks",
				DefaultPages: DefaultPageConfig{
					Static:  PageConfig{Count: 3, Names: []string{"Home", "About", "Contact"}},
					Dynamic: PageConfig{Count: 2, Names: []string{"Articles", "Article"}},
				},
				Defaults: map[string]TierName{
					StaticPage:             TierBasic,
					DynamicPage:            TierStandard,
					"Content Management":   TierStandard,
					"Search":               TierBasic,
					"SEO Optimization":     TierStandard,
					"Hosting & Deployment": TierBasic,
				},
			},
			{
				Key:         "landing",
				Name:        "Landing Page",
				Description: "One focused page for a launch or campaign.",
				BasePrice:   6000,
				Timeline:    "1 week",
				DefaultPages: DefaultPageConfig{
					Static:  PageConfig{Count: 1, Names: []string{"Landing"}},
					Dynamic: PageConfig{Count: 0, Names: []string{}},
				},
				Defaults: map[string]TierName{
					StaticPage:     TierAdvanced,
					"Contact Form": TierBasic,
					"Analytics":    TierBasic,
				},
			},
		},
	}
}
