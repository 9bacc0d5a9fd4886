package store

import (
	"log"

	"homeharbor/internal/domain"
)

// Seed loads the demo catalog: one admin account, three featured listings and
// three blog articles. Ids are assigned by the store as usual, so after
// seeding an empty store the listings are 1..3.
func Seed(s *MemStore) {
	log.Println("[seed] inserting demo account/properties/blog posts")

	admin := true
	s.CreateAccount(domain.NewAccount{
		Username: "admin",
		Password: "admin123",
		IsAdmin:  &admin,
	})

	featured := true
	s.CreateProperty(domain.NewProperty{
		Title:       "Luxury Villa with Ocean View",
		Description: "Beautiful luxury villa with stunning ocean views. This property features high-end finishes, spacious rooms, and a private pool.",
		Price:       850000,
		Status:      "For Sale",
		Type:        "Villa",
		Location:    "Beachside",
		Address:     "123 Coastal Drive, Beachside",
		Bedrooms:    4,
		Bathrooms:   3,
		Area:        3200,
		ImageURL:    "https://images.unsplash.com/photo-1600596542815-ffad4c1539a9?auto=format&fit=crop&w=800&h=500&q=80",
		Lat:         "40.7128",
		Lng:         "-74.0060",
		Featured:    &featured,
	})
	s.CreateProperty(domain.NewProperty{
		Title:       "Modern Apartment in Downtown",
		Description: "Contemporary apartment in the heart of downtown. Features modern design, great city views, and is close to restaurants and shopping.",
		Price:       2500,
		Status:      "For Rent",
		Type:        "Apartment",
		Location:    "Downtown",
		Address:     "456 Urban Street, Downtown",
		Bedrooms:    2,
		Bathrooms:   2,
		Area:        1200,
		ImageURL:    "https://images.unsplash.com/photo-1605276374104-dee2a0ed3cd6?auto=format&fit=crop&w=800&h=500&q=80",
		Lat:         "40.7138",
		Lng:         "-74.0070",
		Featured:    &featured,
	})
	s.CreateProperty(domain.NewProperty{
		Title:       "Spacious Family Home with Garden",
		Description: "Perfect family home with a large garden. Features open living spaces, updated kitchen, and a great neighborhood for children.",
		Price:       420000,
		Status:      "For Sale",
		Type:        "House",
		Location:    "Suburbs",
		Address:     "789 Maple Avenue, Suburbs",
		Bedrooms:    5,
		Bathrooms:   3,
		Area:        2800,
		ImageURL:    "https://images.unsplash.com/photo-1613490493576-7fde63acd811?auto=format&fit=crop&w=800&h=500&q=80",
		Lat:         "40.7148",
		Lng:         "-74.0080",
		Featured:    &featured,
	})

	s.CreatePost(domain.NewPost{
		Title:    "Real Estate Market Trends to Watch",
		Author:   "John Smith",
		Excerpt:  "Discover the emerging trends that will shape the real estate market this year and how they might affect your property investment decisions.",
		ImageURL: "https://images.unsplash.com/photo-1560520031-3a4dc4e9de0c?auto=format&fit=crop&w=800&h=500&q=80",
		Content: "The real estate market is constantly evolving, and staying ahead of trends is crucial for both buyers and sellers.\n\n" +
			"First, interest rates continue to fluctuate, affecting mortgage availability and terms. Buyers should closely monitor these rates and be prepared to act quickly when favorable conditions arise.\n\n" +
			"Second, the demand for sustainable and energy-efficient homes is growing stronger than ever. Properties with green features are attracting environmentally conscious buyers and proving to offer better long-term value.\n\n" +
			"Third, remote work continues to influence housing preferences, with many buyers seeking homes with dedicated office spaces or relocating to areas that previously weren't on their radar.\n\n" +
			"Finally, smart home features like automated lighting, security systems, and energy management are increasingly expected rather than considered luxury additions.",
	})
	s.CreatePost(domain.NewPost{
		Title:    "Top 5 Home Renovations That Add Value",
		Author:   "Sarah Johnson",
		Excerpt:  "Learn which home improvements can significantly increase your property's market value and provide the best return on investment.",
		ImageURL: "https://images.unsplash.com/photo-1626178793926-22b28830aa30?auto=format&fit=crop&w=800&h=500&q=80",
		Content: "When it comes to home renovations, not all projects deliver equal return on investment. Focusing on these five key renovations can make a significant difference.\n\n" +
			"1. Kitchen updates: even minor renovations like replacing cabinet fronts, updating hardware, or installing new appliances can yield substantial returns.\n\n" +
			"2. Bathroom improvements: consider replacing outdated fixtures, adding efficient storage, or upgrading to water-saving features.\n\n" +
			"3. Energy efficiency upgrades: better insulation, energy-efficient windows, or solar panels reduce utility costs and appeal to environmentally conscious buyers.\n\n" +
			"4. Outdoor living spaces: decks, patios, or landscaped gardens extend the living area and add immediate appeal.\n\n" +
			"5. Fresh paint and flooring: these relatively affordable upgrades can transform the look and feel of your entire home.",
	})
	s.CreatePost(domain.NewPost{
		Title:    "First-Time Buyer's Guide to Property Investment",
		Author:   "Michael Brown",
		Excerpt:  "Essential tips and advice for first-time property buyers to navigate the complex process and make informed decisions.",
		ImageURL: "https://images.unsplash.com/photo-1560520653-9e0e4c89eb11?auto=format&fit=crop&w=800&h=500&q=80",
		Content: "Entering the real estate market for the first time can be both exciting and overwhelming.\n\n" +
			"First, establish a clear budget before you begin your search, accounting for closing costs, taxes, insurance, and potential renovation expenses.\n\n" +
			"Second, get pre-approved for a mortgage. This gives you a clear picture of what you can afford and makes you a more attractive buyer in competitive markets.\n\n" +
			"Third, research neighborhoods thoroughly: future development plans, school quality, and accessibility to services you value.\n\n" +
			"Fourth, assemble a reliable team including a knowledgeable agent, a thorough home inspector, and a responsive mortgage broker.\n\n" +
			"Finally, don't rush the process. Finding the right property at the right price takes time, and it's better to wait than to settle.",
	})
}
