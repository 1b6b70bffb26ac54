package catalog

import "github.com/unistay/student-housing/internal/model"

// seedProperties returns a fresh copy of the built-in listing catalog.
// The catalog is fixed and deterministic; it is the only source of
// Property records in the system.  A copy is returned so each store
// instance owns its own bookmarked flags.
func seedProperties() []model.Property {
	src := []model.Property{
		{
			ID: "1", Title: "Modern Studio Apartment",
			Location:  "Near University Campus, City Center",
			Price:     8500, PriceUnit: model.PricePerMonth, Type: model.TypeStudio,
			Bedrooms:  1, Bathrooms: 1, Size: 35, Distance: 0.5, DistanceUnit: "km",
			Images:    []string{model.PlaceholderImage},
			Description: "A cozy studio apartment perfect for students. Fully furnished with high-speed internet included.",
			Facilities:  []string{"Wi-Fi", "Furnished", "Washing Machine", "Kitchen"},
			Rating:      4.5, ReviewCount: 12, IsAvailable: true, Featured: true,
			LandlordName: "John Smith", LandlordRating: 4.8, Deposit: 1100,
			Utilities:    &model.Utilities{Internet: 500, Electricity: 7, Water: 18},
		},
		{
			ID: "2", Title: "Shared Dormitory Room",
			Location:  "TU Student Village, East Campus",
			Price:     6500, PriceUnit: model.PricePerMonth, Type: model.TypeDorm,
			Bedrooms:  1, Bathrooms: 1, Size: 20, Distance: 0.2, DistanceUnit: "km",
			Images:    []string{model.PlaceholderImage},
			Description: "Shared room in the student village with access to common areas and meal plans.",
			Facilities:  []string{"Meal Plan", "Laundry", "Study Room", "Wi-Fi"},
			Rating:      4.0, ReviewCount: 28, IsAvailable: true,
		},
		{
			ID: "3", Title: "Luxury 2-Bedroom Apartment",
			Location:  "Downtown, City Center",
			Price:     14500, PriceUnit: model.PricePerMonth, Type: model.TypeApartment,
			Bedrooms:  2, Bathrooms: 1, Size: 65, Distance: 1.8, DistanceUnit: "km",
			Images:    []string{model.PlaceholderImage},
			Description: "Modern apartment with high-end finishes, perfect for sharing with a roommate.",
			Facilities:  []string{"Balcony", "Dishwasher", "Gym Access", "Parking"},
			Rating:      4.8, ReviewCount: 9, IsAvailable: true, Featured: true,
		},
		{
			ID: "4", Title: "Cozy 1-Bedroom Near Library",
			Location:  "North Campus Area",
			Price:     8900, PriceUnit: model.PricePerMonth, Type: model.TypeApartment,
			Bedrooms:  1, Bathrooms: 1, Size: 40, Distance: 0.7, DistanceUnit: "km",
			Images:    []string{model.PlaceholderImage},
			Description: "Perfect student apartment located near the university library. Quiet neighborhood ideal for studying.",
			Facilities:  []string{"Wi-Fi", "Study Desk", "Washing Machine", "Heating"},
			Rating:      4.3, ReviewCount: 17, IsAvailable: true,
		},
		{
			ID: "5", Title: "Spacious 3-Bedroom House",
			Location:  "Residential Area, 10 min from Campus",
			Price:     15000, PriceUnit: model.PricePerMonth, Type: model.TypeHouse,
			Bedrooms:  3, Bathrooms: 2, Size: 110, Distance: 2.5, DistanceUnit: "km",
			Images:    []string{model.PlaceholderImage},
			Description: "Large house perfect for a group of students. Features a backyard and plenty of space.",
			Facilities:  []string{"Garden", "Parking", "Dishwasher", "Laundry Room"},
			Rating:      4.7, ReviewCount: 8, IsAvailable: true,
		},
		{
			ID: "6", Title: "Economy Single Dorm",
			Location:  "TU Main Campus",
			Price:     6900, PriceUnit: model.PricePerMonth, Type: model.TypeDorm,
			Bedrooms:  1, Bathrooms: 1, Size: 15, Distance: 0.1, DistanceUnit: "km",
			Images:    []string{model.PlaceholderImage},
			Description: "Budget-friendly single dorm room with shared kitchen and bathroom facilities.",
			Facilities:  []string{"Shared Kitchen", "Laundry", "Internet", "Heating"},
			Rating:      3.8, ReviewCount: 32, IsAvailable: true,
		},
		{
			ID: "7", Title: "Modern Studio with View",
			Location:  "City Center, 15 min to Campus",
			Price:     9500, PriceUnit: model.PricePerMonth, Type: model.TypeStudio,
			Bedrooms:  1, Bathrooms: 1, Size: 38, Distance: 3.0, DistanceUnit: "km",
			Images:    []string{model.PlaceholderImage},
			Description: "Contemporary studio apartment with city views and excellent transport connections.",
			Facilities:  []string{"City View", "Security System", "Modern Kitchen", "Wi-Fi"},
			Rating:      4.6, ReviewCount: 14, IsAvailable: true, Featured: true,
		},
		{
			ID: "8", Title: "Shared 2-Bedroom Flat",
			Location:  "Student District",
			Price:     7200, PriceUnit: model.PricePerMonth, Type: model.TypeApartment,
			Bedrooms:  1, Bathrooms: 1, Size: 60, Distance: 1.2, DistanceUnit: "km",
			Images:    []string{model.PlaceholderImage},
			Description: "Share a room in this well-maintained apartment. Price is per person.",
			Facilities:  []string{"Shared Living Room", "Washing Machine", "Balcony", "Wi-Fi"},
			Rating:      4.2, ReviewCount: 23, IsAvailable: true,
		},
		{
			ID: "9", Title: "Premium Private Room",
			Location:  "Luxury Student Residence",
			Price:     9800, PriceUnit: model.PricePerMonth, Type: model.TypeDorm,
			Bedrooms:  1, Bathrooms: 1, Size: 25, Distance: 0.8, DistanceUnit: "km",
			Images:    []string{model.PlaceholderImage},
			Description: "Upscale private room in student residence with access to premium amenities.",
			Facilities:  []string{"Gym", "Swimming Pool", "Study Rooms", "24/7 Security"},
			Rating:      4.9, ReviewCount: 19, IsAvailable: true, Featured: true,
		},
		{
			ID: "10", Title: "Rustic Cottage Studio",
			Location:  "Quiet Area, 5 min from Campus",
			Price:     8800, PriceUnit: model.PricePerMonth, Type: model.TypeStudio,
			Bedrooms:  1, Bathrooms: 1, Size: 30, Distance: 1.0, DistanceUnit: "km",
			Images:    []string{model.PlaceholderImage},
			Description: "Charming rustic studio with wooden finishes and a cozy atmosphere.",
			Facilities:  []string{"Private Garden", "Wooden Interior", "Fully Equipped", "Quiet Area"},
			Rating:      4.4, ReviewCount: 11, IsAvailable: true,
		},
		{
			ID: "11", Title: "Budget Student Apartment",
			Location:  "South Campus",
			Price:     7500, PriceUnit: model.PricePerMonth, Type: model.TypeApartment,
			Bedrooms:  1, Bathrooms: 1, Size: 35, Distance: 0.9, DistanceUnit: "km",
			Images:    []string{model.PlaceholderImage},
			Description: "Affordable apartment close to campus with basic amenities for students.",
			Facilities:  []string{"Basic Furniture", "Heating", "Shared Laundry", "Bike Storage"},
			Rating:      3.9, ReviewCount: 27, IsAvailable: true,
		},
		{
			ID: "12", Title: "Upscale 2-Bedroom Flat",
			Location:  "Premium Residence Area",
			Price:     13800, PriceUnit: model.PricePerMonth, Type: model.TypeApartment,
			Bedrooms:  2, Bathrooms: 2, Size: 75, Distance: 2.2, DistanceUnit: "km",
			Images:    []string{model.PlaceholderImage},
			Description: "Premium apartment with high-end finishes and spacious rooms in quiet area.",
			Facilities:  []string{"Smart Home System", "Underground Parking", "Concierge Service", "Modern Design"},
			Rating:      4.8, ReviewCount: 7, IsAvailable: true, Featured: true,
		},
		{
			ID: "13", Title: "Townhouse for Students",
			Location:  "15 min bus to Campus",
			Price:     14000, PriceUnit: model.PricePerMonth, Type: model.TypeHouse,
			Bedrooms:  4, Bathrooms: 2, Size: 120, Distance: 3.5, DistanceUnit: "km",
			Images:    []string{model.PlaceholderImage},
			Description: "Spacious townhouse perfect for a group of 4 students with shared living spaces.",
			Facilities:  []string{"Backyard", "2 Floors", "Furnished", "Storage Room"},
			Rating:      4.5, ReviewCount: 13, IsAvailable: true,
		},
	}
	out := make([]model.Property, len(src))
	copy(out, src)
	return out
}

// seedReviews returns the sample reviews shown before any tenant has
// submitted one.  They are replaced by the persisted review list once a
// review has been stored.
func seedReviews() []model.Review {
	return []model.Review{
		{
			ID: "r1", PropertyID: "1", Author: "Nicha", Rating: 4,
			Hygiene: 4, Location: 5, Service: 4,
			Comment:    "Great place to stay. The landlord was very responsive and helpful.",
			GuestType:  model.GuestStayed, StayPeriod: "> 1 year", Date: "2024-11-02T00:00:00Z",
		},
		{
			ID: "r2", PropertyID: "1", Author: "Ploy", Rating: 5,
			Hygiene: 5, Location: 5, Service: 5,
			Comment:    "I've been living here for two years and I love it. The facilities are well-maintained.",
			GuestType:  model.GuestCurrently, StayPeriod: "> 2 year", Date: "2025-01-15T00:00:00Z",
		},
		{
			ID: "r3", PropertyID: "2", Author: "Mark", Rating: 3,
			Hygiene: 3, Location: 4, Service: 3,
			Comment:    "Decent for the price but the walls are a bit thin. Great location though.",
			GuestType:  model.GuestStayed, StayPeriod: "< 1 year", Date: "2025-03-20T00:00:00Z",
		},
	}
}
