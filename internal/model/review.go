package model

// GuestType categorizes the reviewer's relationship to the property at the
// time of writing.
type GuestType string

const (
	GuestStayed    GuestType = "Stayed"    // past tenant
	GuestCurrently GuestType = "Currently" // current tenant
	GuestCalled    GuestType = "Called"    // only enquired by phone
)

// Review is a tenant-submitted rating of a property.  Reviews are
// append-only; they are never edited or deleted.  PropertyID is a
// denormalized reference and is not validated against the catalog, so a
// review may outlive the listing it refers to.
//
// Rating is the overall score; Hygiene, Location and Service are
// sub-scores.  All scores are on a 0–5 scale.
type Review struct {
	ID         string    `json:"id"`
	PropertyID string    `json:"propertyId"`
	Author     string    `json:"author"`
	Rating     float64   `json:"rating"`
	Hygiene    float64   `json:"hygiene"`
	Location   float64   `json:"location"`
	Service    float64   `json:"service"`
	Comment    string    `json:"comment"`
	GuestType  GuestType `json:"guestType"`
	StayPeriod string    `json:"stayPeriod"`
	Date       string    `json:"date"` // submission date, RFC3339
}

// ReviewInput carries the caller-supplied fields of a new review.  The
// store assigns the ID and submission date itself.
type ReviewInput struct {
	PropertyID string    `json:"propertyId"`
	Author     string    `json:"author"`
	Rating     float64   `json:"rating"`
	Hygiene    float64   `json:"hygiene"`
	Location   float64   `json:"location"`
	Service    float64   `json:"service"`
	Comment    string    `json:"comment"`
	GuestType  GuestType `json:"guestType"`
	StayPeriod string    `json:"stayPeriod"`
}
