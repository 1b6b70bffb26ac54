package model

// PriceUnit enumerates the billing period attached to a listing price.
type PriceUnit string

const (
	PricePerMonth PriceUnit = "per month"
	PricePerWeek  PriceUnit = "per week"
	PricePerNight PriceUnit = "per night"
)

// PropertyType enumerates the kinds of accommodation in the catalog.
type PropertyType string

const (
	TypeApartment PropertyType = "apartment"
	TypeHouse     PropertyType = "house"
	TypeStudio    PropertyType = "studio"
	TypeDorm      PropertyType = "dorm"
)

// Utilities breaks down the recurring utility costs a tenant pays on top
// of rent.  Amounts use the same currency as the listing price; internet
// is a flat monthly fee while electricity and water are per-unit rates.
type Utilities struct {
	Internet    float64 `json:"internet"`
	Electricity float64 `json:"electricity"`
	Water       float64 `json:"water"`
}

// Property is a single accommodation listing.  The catalog is seeded once
// at startup and every field except Bookmarked is immutable afterwards.
//
// Fields:
//  ID           – stable unique identifier within the catalog.
//  Title        – display name of the listing.
//  Location     – free-text address or area description.
//  Price        – rent amount, interpreted per PriceUnit.
//  Type         – accommodation category (apartment, house, studio, dorm).
//  Distance     – distance from campus, interpreted per DistanceUnit.
//  Images       – ordered image URLs; never empty (placeholder fallback).
//  Facilities   – amenity tags shown on the listing.
//  Rating       – aggregate rating on a 0–5 scale.
//  Bookmarked   – the only mutable field; flipped by the catalog store.
type Property struct {
	ID            string       `json:"id"`
	Title         string       `json:"title"`
	Location      string       `json:"location"`
	Price         float64      `json:"price"`
	PriceUnit     PriceUnit    `json:"priceUnit"`
	Type          PropertyType `json:"type"`
	Bedrooms      int          `json:"bedrooms"`
	Bathrooms     int          `json:"bathrooms"`
	Size          float64      `json:"size"`
	Distance      float64      `json:"distance"`
	DistanceUnit  string       `json:"distanceUnit"`
	Images        []string     `json:"images"`
	Description   string       `json:"description"`
	Facilities    []string     `json:"facilities"`
	Rating        float64      `json:"rating"`
	ReviewCount   int          `json:"reviewCount"`
	IsAvailable   bool         `json:"isAvailable"`
	Featured      bool         `json:"featured,omitempty"`
	LandlordID    string       `json:"landlordId,omitempty"`
	LandlordName  string       `json:"landlordName,omitempty"`
	LandlordRating float64     `json:"landlordRating,omitempty"`
	Bookmarked    bool         `json:"bookmarked"`
	Deposit       float64      `json:"deposit,omitempty"`
	Utilities     *Utilities   `json:"utilities,omitempty"`
}

// PlaceholderImage is substituted when a listing carries no image URLs so
// that Images is never empty.
const PlaceholderImage = "/placeholder.svg"
