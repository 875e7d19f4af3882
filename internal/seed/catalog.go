package seed

// LegacyProperty is one template of the fixed legacy catalog. MediaFiles
// name files under the orchestrator's asset directory.
type LegacyProperty struct {
	Title        string
	Location     string
	Description  string
	Price        float64
	PropertyType string
	Status       string
	Bedrooms     int
	Bathrooms    int
	Toilets      int
	Kitchens     int
	AreaSqm      float64
	Features     []string
	MediaFiles   []string
}

// Catalog is the legacy listing set imported from the pre-CMS site.
var Catalog = []LegacyProperty{
	{
		Title:        "Lekki Phase 1 Smart Villa",
		Location:     "Lekki Phase 1, Lagos",
		Description:  "Fully automated five bedroom villa with a private cinema, rooftop lounge and a fitted kitchen, minutes from the Lekki-Ikoyi link bridge.",
		Price:        450_000_000,
		PropertyType: "house",
		Status:       "published",
		Bedrooms:     5,
		Bathrooms:    5,
		Toilets:      6,
		Kitchens:     2,
		AreaSqm:      620,
		Features:     []string{"Smart home automation", "Private cinema", "Rooftop lounge", "24/7 security"},
		MediaFiles:   []string{"lekki-villa-front.jpg", "lekki-villa-lounge.jpg", "lekki-villa-pool.jpg"},
	},
	{
		Title:        "Ikoyi Parkview Apartment",
		Location:     "Parkview Estate, Ikoyi, Lagos",
		Description:  "Three bedroom serviced apartment overlooking the lagoon, with a shared gym, standby power and concierge services.",
		Price:        180_000_000,
		PropertyType: "apartment",
		Status:       "published",
		Bedrooms:     3,
		Bathrooms:    3,
		Toilets:      4,
		Kitchens:     1,
		AreaSqm:      240,
		Features:     []string{"Lagoon view", "Shared gym", "Standby generator", "Concierge"},
		MediaFiles:   []string{"ikoyi-apartment-living.jpg", "ikoyi-apartment-view.jpg"},
	},
	{
		Title:        "Abuja Maitama Duplex",
		Location:     "Maitama, Abuja",
		Description:  "Four bedroom semi-detached duplex with a boys' quarter, landscaped garden and ample parking in a serene diplomatic zone.",
		Price:        320_000_000,
		PropertyType: "duplex",
		Status:       "published",
		Bedrooms:     4,
		Bathrooms:    4,
		Toilets:      5,
		Kitchens:     1,
		AreaSqm:      480,
		Features:     []string{"Boys' quarter", "Landscaped garden", "Gated estate"},
		MediaFiles:   []string{"maitama-duplex-front.jpg", "maitama-duplex-garden.jpg"},
	},
	{
		Title:        "Victoria Island Commercial Plaza",
		Location:     "Adeola Odeku, Victoria Island, Lagos",
		Description:  "Six floor commercial plaza with open-plan floors, dedicated parking and a backup transformer, suited for corporate headquarters.",
		Price:        1_200_000_000,
		PropertyType: "commercial",
		Status:       "published",
		Bedrooms:     0,
		Bathrooms:    0,
		Toilets:      12,
		Kitchens:     0,
		AreaSqm:      2400,
		Features:     []string{"Open-plan floors", "Dedicated parking", "Backup transformer", "Elevator"},
		MediaFiles:   []string{"vi-plaza-exterior.jpg", "vi-plaza-lobby.jpg"},
	},
	{
		Title:        "Epe Waterfront Land",
		Location:     "Epe, Lagos",
		Description:  "Two plots of dry waterfront land with a governor's consent title, ideal for a private resort or residential development.",
		Price:        45_000_000,
		PropertyType: "land",
		Status:       "published",
		AreaSqm:      1300,
		Features:     []string{"Waterfront", "Governor's consent", "Dry land"},
		MediaFiles:   []string{"epe-land-aerial.jpg"},
	},
	{
		Title:        "Gwarinpa Family Bungalow",
		Location:     "Gwarinpa, Abuja",
		Description:  "Renovated three bedroom bungalow on a corner piece with a large compound, borehole and solar backup.",
		Price:        85_000_000,
		PropertyType: "bungalow",
		Status:       "draft",
		Bedrooms:     3,
		Bathrooms:    2,
		Toilets:      3,
		Kitchens:     1,
		AreaSqm:      310,
		Features:     []string{"Corner piece", "Borehole", "Solar backup"},
		MediaFiles:   []string{"gwarinpa-bungalow-front.jpg", "gwarinpa-bungalow-compound.jpg"},
	},
}
