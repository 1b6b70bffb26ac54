package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/unistay/student-housing/internal/catalog"
	"github.com/unistay/student-housing/internal/handler"
	"github.com/unistay/student-housing/internal/model"
	"github.com/unistay/student-housing/internal/storage"
)

func newCatalogHandler(t *testing.T) *handler.CatalogHandler {
	t.Helper()
	store := catalog.NewStore(context.Background(), storage.NewMemoryKV())
	return handler.NewCatalogHandler(store)
}

func TestGetPropertiesEnvelope(t *testing.T) {
	h := newCatalogHandler(t)
	e := echo.New()

	c, rec := doJSON(e, http.MethodGet, "/v1/properties", "")
	if err := h.GetProperties(c); err != nil {
		t.Fatal(err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200", rec.Code)
	}
	var resp struct {
		Items []model.Property `json:"items"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Items) == 0 {
		t.Fatal("catalog listing came back empty")
	}
	if resp.Items[0].ID != "1" {
		t.Fatalf("first listing id = %s; want 1 (seed order)", resp.Items[0].ID)
	}
}

func TestGetPropertiesFeaturedFilter(t *testing.T) {
	h := newCatalogHandler(t)
	e := echo.New()

	c, rec := doJSON(e, http.MethodGet, "/v1/properties?featured=true", "")
	if err := h.GetProperties(c); err != nil {
		t.Fatal(err)
	}
	var resp struct {
		Items []model.Property `json:"items"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	for _, p := range resp.Items {
		if !p.Featured {
			t.Fatalf("non-featured listing %s in featured response", p.ID)
		}
	}
}

func TestGetPropertyNotFoundEndpoint(t *testing.T) {
	h := newCatalogHandler(t)
	e := echo.New()

	c, rec := doJSON(e, http.MethodGet, "/v1/properties/does-not-exist", "")
	c.SetParamNames("id")
	c.SetParamValues("does-not-exist")
	if err := h.GetProperty(c); err != nil {
		t.Fatal(err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d; want 404", rec.Code)
	}
}

func TestToggleBookmarkEndpoint(t *testing.T) {
	h := newCatalogHandler(t)
	e := echo.New()

	c, rec := doJSON(e, http.MethodPost, "/v1/properties/1/bookmark", "")
	c.SetParamNames("id")
	c.SetParamValues("1")
	if err := h.ToggleBookmark(c); err != nil {
		t.Fatal(err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200", rec.Code)
	}
	var resp struct {
		ID         string `json:"id"`
		Bookmarked bool   `json:"bookmarked"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.ID != "1" || !resp.Bookmarked {
		t.Fatalf("toggle response = %+v; want id=1 bookmarked=true", resp)
	}
}

func TestAddReviewValidation(t *testing.T) {
	h := newCatalogHandler(t)
	e := echo.New()

	// Score out of range.
	c, rec := doJSON(e, http.MethodPost, "/v1/properties/1/reviews", `{"rating":9,"guestType":"Stayed"}`)
	c.SetParamNames("id")
	c.SetParamValues("1")
	if err := h.AddReview(c); err != nil {
		t.Fatal(err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("out-of-range rating: status = %d; want 400", rec.Code)
	}

	// Unknown guest type.
	c, rec = doJSON(e, http.MethodPost, "/v1/properties/1/reviews", `{"rating":4,"guestType":"Ghost"}`)
	c.SetParamNames("id")
	c.SetParamValues("1")
	if err := h.AddReview(c); err != nil {
		t.Fatal(err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("bad guest type: status = %d; want 400", rec.Code)
	}

	// Valid submission.
	body := `{"author":"Fah","rating":4,"hygiene":4,"location":5,"service":4,"comment":"nice","guestType":"Stayed","stayPeriod":"6-12months"}`
	c, rec = doJSON(e, http.MethodPost, "/v1/properties/1/reviews", body)
	c.SetParamNames("id")
	c.SetParamValues("1")
	if err := h.AddReview(c); err != nil {
		t.Fatal(err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("valid review: status = %d; want 201 (body: %s)", rec.Code, rec.Body.String())
	}
	var review model.Review
	if err := json.Unmarshal(rec.Body.Bytes(), &review); err != nil {
		t.Fatal(err)
	}
	if review.PropertyID != "1" || review.ID == "" {
		t.Fatalf("review = %+v; want propertyId=1 and an assigned id", review)
	}
}
