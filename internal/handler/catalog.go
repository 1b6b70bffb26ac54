// Package handler exposes HTTP handlers for the catalog and booking APIs.
// This file defines the catalog browsing, bookmarking and review
// endpoints.  Browsing requires no authentication; request-shape
// validation happens here so the stores can trust their inputs.
package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/unistay/student-housing/internal/catalog"
	"github.com/unistay/student-housing/internal/model"
)

// CatalogHandler serves the property catalog, the bookmarked subset and
// per-property reviews.
type CatalogHandler struct {
	Catalog *catalog.Store // catalog store owning listings and reviews
}

// NewCatalogHandler constructs a CatalogHandler and panics if the store is nil.
func NewCatalogHandler(store *catalog.Store) *CatalogHandler {
	if store == nil {
		panic("nil store passed to NewCatalogHandler")
	}
	return &CatalogHandler{Catalog: store}
}

// GetProperties handles GET /v1/properties.  It returns the full catalog
// in seed order, or only the featured subset when ?featured=true is set.
func (h *CatalogHandler) GetProperties(c echo.Context) error {
	var items []model.Property
	if c.QueryParam("featured") == "true" {
		items = h.Catalog.ListFeatured()
	} else {
		items = h.Catalog.ListProperties()
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// GetProperty handles GET /v1/properties/:id.  An unknown id is a normal
// outcome answered with 404 and an error envelope, never a server fault.
func (h *CatalogHandler) GetProperty(c echo.Context) error {
	p, ok := h.Catalog.GetProperty(c.Param("id"))
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "property not found"})
	}
	return c.JSON(http.StatusOK, p)
}

// GetBookmarks handles GET /v1/bookmarks.  It returns the bookmarked
// subset of the catalog in catalog order.
func (h *CatalogHandler) GetBookmarks(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"items": h.Catalog.ListBookmarked()})
}

// ToggleBookmark handles POST /v1/properties/:id/bookmark.  It flips the
// bookmarked flag and reports the new state of the listing.  Toggling an
// unknown id returns 404 and changes nothing.
func (h *CatalogHandler) ToggleBookmark(c echo.Context) error {
	id := c.Param("id")
	if !h.Catalog.ToggleBookmark(c.Request().Context(), id) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "property not found"})
	}
	p, _ := h.Catalog.GetProperty(id)
	return c.JSON(http.StatusOK, echo.Map{"id": p.ID, "bookmarked": p.Bookmarked})
}

// GetReviews handles GET /v1/properties/:id/reviews.  The id is not
// checked against the catalog: reviews referencing a listing that is no
// longer present are still served.
func (h *CatalogHandler) GetReviews(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"items": h.Catalog.ListReviews(c.Param("id"))})
}

// reviewBody is the request payload for submitting a review.  The
// property id comes from the path, not the body.
type reviewBody struct {
	Author     string  `json:"author"`
	Rating     float64 `json:"rating"`
	Hygiene    float64 `json:"hygiene"`
	Location   float64 `json:"location"`
	Service    float64 `json:"service"`
	Comment    string  `json:"comment"`
	GuestType  string  `json:"guestType"`
	StayPeriod string  `json:"stayPeriod"`
}

// AddReview handles POST /v1/properties/:id/reviews.  All field
// validation lives here; the store itself performs none.  Scores must be
// on the 0–5 scale and the guest type must be one of the known
// categories.
func (h *CatalogHandler) AddReview(c echo.Context) error {
	var body reviewBody
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	for _, score := range []float64{body.Rating, body.Hygiene, body.Location, body.Service} {
		if score < 0 || score > 5 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "scores must be between 0 and 5"})
		}
	}
	guestType := model.GuestType(body.GuestType)
	switch guestType {
	case model.GuestStayed, model.GuestCurrently, model.GuestCalled:
	default:
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown guest type"})
	}
	review := h.Catalog.AddReview(c.Request().Context(), model.ReviewInput{
		PropertyID: c.Param("id"),
		Author:     body.Author,
		Rating:     body.Rating,
		Hygiene:    body.Hygiene,
		Location:   body.Location,
		Service:    body.Service,
		Comment:    body.Comment,
		GuestType:  guestType,
		StayPeriod: body.StayPeriod,
	})
	return c.JSON(http.StatusCreated, review)
}
