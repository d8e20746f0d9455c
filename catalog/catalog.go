// Package catalog holds the static reference catalog of offered services.
// Bookings copy the id, name and quoted price range from here at creation;
// the catalog itself is read-only data, not a store.
package catalog

type Service struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description"`
	PriceRange  string `json:"priceRange"`
}

var services = []Service{
	{
		ID:          "plumbing",
		Name:        "Plumbing",
		Category:    "Repair",
		Description: "Leak fixes, tap and pipe installation, drainage issues.",
		PriceRange:  "₹500-800",
	},
	{
		ID:          "electrical",
		Name:        "Electrical",
		Category:    "Repair",
		Description: "Wiring, switchboard repair, appliance installation.",
		PriceRange:  "₹400-900",
	},
	{
		ID:          "cleaning",
		Name:        "Home Cleaning",
		Category:    "Cleaning",
		Description: "Deep cleaning for kitchens, bathrooms and full homes.",
		PriceRange:  "₹800-1500",
	},
	{
		ID:          "carpentry",
		Name:        "Carpentry",
		Category:    "Repair",
		Description: "Furniture repair, door and window fitting, custom shelves.",
		PriceRange:  "₹600-1200",
	},
	{
		ID:          "painting",
		Name:        "Painting",
		Category:    "Renovation",
		Description: "Interior and exterior wall painting, touch-ups.",
		PriceRange:  "₹2000-5000",
	},
	{
		ID:          "pest-control",
		Name:        "Pest Control",
		Category:    "Cleaning",
		Description: "Cockroach, termite and rodent treatment.",
		PriceRange:  "₹900-1800",
	},
	{
		ID:          "ac-service",
		Name:        "AC Service",
		Category:    "Appliances",
		Description: "AC servicing, gas refill, installation and removal.",
		PriceRange:  "₹500-1500",
	},
	{
		ID:          "gardening",
		Name:        "Gardening",
		Category:    "Outdoor",
		Description: "Lawn mowing, plant care, garden setup.",
		PriceRange:  "₹300-700",
	},
}

// All returns every service in the catalog.
func All() []Service {
	return services
}

// Find returns the service with the given id.
func Find(id string) (Service, bool) {
	for _, s := range services {
		if s.ID == id {
			return s, true
		}
	}
	return Service{}, false
}
