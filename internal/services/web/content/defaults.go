package content

const (
	unsplashBefore = "https://images.unsplash.com/photo-1607868544592-0d2f8e9f4097?q=80&w=1200&auto=format&fit=crop"
	unsplashAfter  = "https://images.unsplash.com/photo-1493238792000-8113da705763?q=80&w=1200&auto=format&fit=crop"
)

// Default returns the built-in catalog used when no content file is configured.
func Default() Catalog {
	return Catalog{
		Business: Business{
			Name:        "Preston Hollow Mobile Car Detailing",
			Tagline:     "Professional detailing at your doorstep",
			ServiceArea: "Preston Hollow • North Dallas • Park Cities",
			Phone:       "+12148102476",
			Email:       "prestonhollowdetailing@gmail.com",
		},
		Booking: Booking{
			ScriptURL: "https://app.squareup.com/appointments/buyer/widget/40rsi5zy5ksrjt/LKV2VGK3PZ4G4.js",
			MountID:   DefaultMountID,
		},
		MaintenanceNote: "Maintenance Detail: book within 6 weeks of your last full detail and save 50% on the same package.",
		Packages: []ServicePackage{
			{
				Name:     "Exterior Only",
				Price:    55,
				Duration: "~2 hours",
				Features: []string{
					"Foam cannon wash & rinse",
					"Wheels, tires, and tire shine",
					"Windows cleaned",
					"Spray-on wax/sealant included",
				},
			},
			{
				Name:     "Standard Interior",
				Price:    99,
				Duration: "~2 hours",
				Features: []string{
					"Full vacuum (carpets, seats, trunk)",
					"Dashboard, doors, mats, windows cleaned",
				},
			},
			{
				Name:     "Premium Interior",
				Price:    189,
				Duration: "~2 hours",
				Features: []string{
					"Steam cleaning & sanitation",
					"Seat shampoo/extraction (fabric)",
					"Leather clean & condition",
					"Pet hair removal",
				},
			},
			{
				Name:     "Standard Detail (Interior + Exterior)",
				Price:    129,
				Duration: "~4 hours",
				Features: []string{
					"Foam cannon wash & rinse",
					"Wheels, tires, and tire shine",
					"Windows cleaned inside & out",
					"Interior vacuum & wipe-down (dash, doors, mats)",
					"Light dusting throughout",
					"Spray-on wax/sealant included",
				},
			},
			{
				Name:     "Premium Detail (Interior + Exterior)",
				Price:    229,
				Duration: "~5 hours",
				Features: []string{
					"Everything in Standard",
					"Steam cleaning (vents, panels, deep sanitation)",
					"Seat shampoo & extraction (fabric)",
					"Leather cleaning & conditioning",
					"Extreme pet hair removal",
					"Added paint protection",
				},
			},
		},
		Materials: []MaterialEntry{
			{UseCase: "Trim & tires", Explanation: "Water-based dressing for a deep, satin finish without sling; safe on rubber, plastic, and vinyl."},
			{UseCase: "Glass", Explanation: "Streak-free cleaner for interior & exterior windows."},
			{UseCase: "Sanitation", Explanation: "High-temp steam lifts grime in vents, crevices, and fabrics while neutralizing odors."},
			{UseCase: "Interior protectant", Explanation: "UV-guard helps prevent fading and cracking on plastics & vinyl."},
			{UseCase: "Leather care", Explanation: "Cleans and conditions with a natural, non-shiny finish; optional fresh scent on request."},
			{UseCase: "Upholstery", Explanation: "Fabric guard repels spills and makes future cleanups easier."},
			{UseCase: "3-step stain system", Explanation: "Breaks down spots, lifts stains, then neutralizes residues for a true clean."},
			{UseCase: "Interior cleaner", Explanation: "Gentle cleaner for dashboards, door panels, and touch surfaces."},
			{UseCase: "Textiles", Explanation: "Low-foam cleaner safe for Alcantara and delicate fabrics."},
			{UseCase: "Wheels", Explanation: "Acid-free wheel & tire cleaner that cuts through brake dust and browning."},
			{UseCase: "Paint protectant", Explanation: "Spray sealant adds gloss and hydrophobics for weeks."},
			{UseCase: "All-purpose cleaner", Explanation: "APC/degreaser for tough grime in safe dilutions."},
			{UseCase: "Pre-wash", Explanation: "Thick foam loosens dirt to reduce wash-induced marring."},
		},
		Gallery: []Comparison{
			{ID: "exterior-gloss", Label: "Exterior Gloss", Before: unsplashBefore, After: unsplashAfter},
			{ID: "interior-refresh", Label: "Interior Refresh", Before: unsplashBefore, After: unsplashAfter},
		},
	}
}
