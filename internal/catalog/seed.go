package catalog

import (
	"time"

	"expo-ticketing/internal/models"
)

// futureDate keeps the seed catalog current: listings always start and end
// relative to process start.
func futureDate(daysFromNow int) time.Time {
	return time.Now().AddDate(0, 0, daysFromNow).Truncate(24 * time.Hour)
}

var seedCities = []string{
	"Mumbai", "Delhi", "Bangalore", "Chennai", "Kolkata", "Hyderabad",
	"Pune", "Ahmedabad", "Jaipur", "Kochi", "Lucknow", "Chandigarh",
	"Goa", "Udaipur",
}

var seedCategories = []string{
	"Art & Culture", "Science & Tech", "History & Heritage", "Photography",
	"Fashion", "Music", "Food & Lifestyle", "Trade Shows", "Automotive",
	"Nature & Wildlife", "Sports & Gaming", "Kids & Family",
}

var seedStallTypes = []models.StallType{
	{
		ID: "basic", Name: "Basic Stall", Size: "3m x 3m (9 sqm)", Price: 15000,
		Description: "Perfect for startups and small businesses",
		Features:    []string{"9 sqm open space", "Basic lighting", "1 power socket", "1 table + 2 chairs"},
		Available:   true,
	},
	{
		ID: "standard", Name: "Standard Stall", Size: "4m x 3m (12 sqm)", Price: 25000,
		Description: "Ideal for established businesses",
		Features:    []string{"12 sqm with partition walls", "Enhanced lighting", "3 power sockets", "2 tables + 4 chairs", "Company fascia board"},
		Popular:     true,
		Available:   true,
	},
	{
		ID: "premium", Name: "Premium Stall", Size: "6m x 3m (18 sqm)", Price: 45000,
		Description: "For maximum visibility and impact",
		Features:    []string{"18 sqm corner location", "Premium lighting setup", "5 power sockets", "Display shelves included", "Company fascia board", "Carpet flooring"},
		Available:   true,
	},
	{
		ID: "custom", Name: "Custom Pavilion", Size: "9m x 6m (54 sqm)", Price: 120000,
		Description: "Exclusive branded pavilion space",
		Features:    []string{"54 sqm prime location", "Custom booth design", "Dedicated power line", "Premium furniture set", "Branding opportunities", "Storage room included", "VIP meeting area"},
		Available:   true,
	},
}

var seedAddOns = []models.AddOn{
	{ID: "wifi", Name: "Dedicated WiFi", Price: 2500},
	{ID: "furniture", Name: "Extra Furniture Set", Price: 3500},
	{ID: "lighting", Name: "Spotlight Package", Price: 4000},
	{ID: "display", Name: "Digital Display Screen", Price: 8000},
}

// Seed returns the static catalog loaded at startup.
func Seed() ([]models.Exhibition, []string, []string, []models.StallType, []models.AddOn) {
	exhibitions := []models.Exhibition{
		{
			ID:          "1",
			Title:       "The Future of Art: AI & Creativity",
			Subtitle:    "Where Technology Meets Imagination",
			Description: "Explore the intersection of artificial intelligence and artistic expression, featuring works created by human-AI collaboration.",
			Venue:       "National Gallery of Modern Art",
			VenueAddress: "Jaipur House, India Gate, New Delhi - 110003",
			City:        "Delhi",
			Category:    "Art & Culture",
			StartDate:   futureDate(7),
			EndDate:     futureDate(120),
			Timing:      "10:00 AM - 6:00 PM (Closed on Mondays)",
			PriceRange:  models.PriceRange{Min: 299, Max: 1499},
			Tickets: []models.TicketType{
				{ID: "t1", Name: "General Entry", Description: "Access to all exhibition halls", Price: 299, Available: true,
					Benefits: []string{"All exhibition access", "Audio guide (app)", "Photography allowed"}},
				{ID: "t2", Name: "Premium Experience", Description: "Skip the line + exclusive areas", Price: 799, OriginalPrice: 999, Available: true,
					Benefits: []string{"Skip-the-line entry", "VIP lounge access", "Exclusive workshop", "Complimentary refreshments"}},
				{ID: "t3", Name: "Family Pack", Description: "2 Adults + 2 Children (under 12)", Price: 1499, OriginalPrice: 1796, Available: true,
					Benefits: []string{"Family entry (4 members)", "Kids activity zone", "Souvenir guide book", "Priority seating"}},
			},
			Images:    []string{"https://images.unsplash.com/photo-1541367777708-7905fe3296c0?w=800"},
			Featured:  true,
			Organizer: models.Organizer{Name: "Cultural Foundation of India", Logo: "CFI", Description: "India's premier cultural organization promoting art and heritage since 1952."},
			FAQs: []models.FAQ{
				{Question: "Is photography allowed?", Answer: "Yes, personal photography without flash is permitted in most areas."},
				{Question: "Are guided tours available?", Answer: "Yes, guided tours run at 11 AM, 2 PM and 4 PM. Advance booking recommended."},
			},
			Rating:  4.8,
			Reviews: 1247,
		},
		{
			ID:          "2",
			Title:       "Mughal Splendour",
			Subtitle:    "The Golden Age of Indian Heritage",
			Description: "A magnificent showcase of Mughal art, architecture models, and precious artifacts from the golden era of Indian history.",
			Venue:       "Chhatrapati Shivaji Maharaj Vastu Sangrahalaya",
			VenueAddress: "159-161, Mahatma Gandhi Road, Fort, Mumbai - 400023",
			City:        "Mumbai",
			Category:    "History & Heritage",
			StartDate:   futureDate(3),
			EndDate:     futureDate(150),
			Timing:      "10:15 AM - 6:00 PM (Open all days)",
			PriceRange:  models.PriceRange{Min: 199, Max: 899},
			Tickets: []models.TicketType{
				{ID: "t1", Name: "Standard Entry", Description: "Full exhibition access", Price: 199, Available: true,
					Benefits: []string{"All galleries access", "Self-guided tour"}},
				{ID: "t2", Name: "Curator's Tour", Description: "Guided by exhibition curators", Price: 599, Available: true,
					Benefits: []string{"Expert-led tour", "Behind-the-scenes access", "Q&A session"}},
				{ID: "t3", Name: "Royal Experience", Description: "The complete heritage journey", Price: 899, Available: true,
					Benefits: []string{"Private viewing slot", "High tea service", "Exclusive catalog", "Photo opportunity"}},
			},
			Images:    []string{"https://images.unsplash.com/photo-1564507592333-c60657eea523?w=800"},
			Featured:  true,
			Organizer: models.Organizer{Name: "Heritage India Trust", Logo: "HIT", Description: "Preserving and promoting India's rich cultural heritage for future generations."},
			FAQs: []models.FAQ{
				{Question: "Are children allowed?", Answer: "Yes, children of all ages are welcome. Special interactive sessions for kids on weekends."},
			},
			Rating:  4.6,
			Reviews: 892,
		},
		{
			ID:          "3",
			Title:       "Wild Lens",
			Subtitle:    "India Through the Photographer's Eye",
			Description: "Award-winning wildlife photography from India's national parks, curated by leading conservation photographers.",
			Venue:       "Karnataka Chitrakala Parishath",
			VenueAddress: "Kumara Krupa Road, Bangalore - 560001",
			City:        "Bangalore",
			Category:    "Photography",
			StartDate:   futureDate(14),
			EndDate:     futureDate(60),
			Timing:      "11:00 AM - 7:00 PM (Open all days)",
			PriceRange:  models.PriceRange{Min: 149, Max: 499},
			Tickets: []models.TicketType{
				{ID: "t1", Name: "Entry Pass", Description: "Gallery access", Price: 149, Available: true,
					Benefits: []string{"All galleries access"}},
				{ID: "t2", Name: "Photo Walk Combo", Description: "Entry + guided photo walk", Price: 499, OriginalPrice: 649, Available: true,
					Benefits: []string{"Gallery access", "Guided photo walk", "Print voucher"}},
				{ID: "t3", Name: "Masterclass Seat", Description: "Workshop with the curators", Price: 1299, Available: false,
					Benefits: []string{"Full-day masterclass", "Portfolio review"}},
			},
			Images:    []string{"https://images.unsplash.com/photo-1549366021-9f761d450615?w=800"},
			Featured:  false,
			Organizer: models.Organizer{Name: "Wildscreen Collective", Logo: "WSC", Description: "A collective of conservation photographers documenting India's wild spaces."},
			FAQs: []models.FAQ{
				{Question: "Can I buy prints?", Answer: "Yes, limited-edition prints are available at the gallery store."},
			},
			Rating:  4.4,
			Reviews: 367,
		},
		{
			ID:          "4",
			Title:       "AutoSphere Expo",
			Subtitle:    "Mobility, Electric & Beyond",
			Description: "India's largest automotive trade show with concept cars, EV launches, and supplier pavilions.",
			Venue:       "Bombay Exhibition Centre",
			VenueAddress: "NESCO Complex, Goregaon East, Mumbai - 400063",
			City:        "Mumbai",
			Category:    "Automotive",
			StartDate:   futureDate(30),
			EndDate:     futureDate(37),
			Timing:      "9:30 AM - 8:00 PM",
			PriceRange:  models.PriceRange{Min: 399, Max: 2499},
			Tickets: []models.TicketType{
				{ID: "t1", Name: "Visitor Pass", Description: "Single-day entry", Price: 399, Available: true,
					Benefits: []string{"All pavilions", "Test-drive registration"}},
				{ID: "t2", Name: "Trade Pass", Description: "Business visitor, all days", Price: 2499, Available: true,
					Benefits: []string{"All-days entry", "B2B lounge", "Match-making app access"}},
			},
			Images:    []string{"https://images.unsplash.com/photo-1492144534655-ae79c964c9d7?w=800"},
			Featured:  true,
			Organizer: models.Organizer{Name: "ExpoWorks India", Logo: "EWI", Description: "Trade show organizers across automotive and manufacturing sectors."},
			FAQs: []models.FAQ{
				{Question: "Is parking available?", Answer: "Paid parking is available at the venue; public transport is recommended on weekends."},
			},
			Rating:  4.2,
			Reviews: 2210,
		},
		{
			ID:          "5",
			Title:       "Flavours of the South",
			Subtitle:    "A Culinary Heritage Festival",
			Description: "Regional cuisine, live kitchens, and food history exhibits celebrating South Indian culinary traditions.",
			Venue:       "Chennai Trade Centre",
			VenueAddress: "Mount Poonamallee Road, Nandambakkam, Chennai - 600089",
			City:        "Chennai",
			Category:    "Food & Lifestyle",
			StartDate:   futureDate(10),
			EndDate:     futureDate(20),
			Timing:      "12:00 PM - 10:00 PM",
			PriceRange:  models.PriceRange{Min: 249, Max: 999},
			Tickets: []models.TicketType{
				{ID: "t1", Name: "Day Entry", Description: "Festival entry with tasting coupons", Price: 249, Available: true,
					Benefits: []string{"Entry", "4 tasting coupons"}},
				{ID: "t2", Name: "Gourmet Pass", Description: "Entry + chef's table session", Price: 999, OriginalPrice: 1249, Available: true,
					Benefits: []string{"Entry", "Chef's table", "Recipe book", "10 tasting coupons"}},
			},
			Images:    []string{"https://images.unsplash.com/photo-1504674900247-0877df9cc836?w=800"},
			Featured:  false,
			Organizer: models.Organizer{Name: "Southern Spice Guild", Logo: "SSG", Description: "Promoting the culinary heritage of South India."},
			FAQs: []models.FAQ{
				{Question: "Are vegetarian options available?", Answer: "Yes, over half the live kitchens are pure vegetarian."},
			},
			Rating:  4.7,
			Reviews: 1534,
		},
	}

	return exhibitions, seedCities, seedCategories, seedStallTypes, seedAddOns
}
