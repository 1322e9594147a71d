package handlers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/ghuser/curio/pkg/errhttp"
	"github.com/ghuser/curio/pkg/httpx"
	appsvcs "github.com/ghuser/curio/services/catalog/application/services"
)

// FeedEntryResponse is one feed grid tile.
type FeedEntryResponse struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	ImageURL *string   `json:"image_url"`
} // @name FeedEntryResponse

// FeedHandler handles GET /feed requests.
type FeedHandler struct {
	svc *appsvcs.Services
}

// NewFeedHandler returns a FeedHandler backed by the given services.
func NewFeedHandler(svc *appsvcs.Services) *FeedHandler {
	return &FeedHandler{svc: svc}
}

// Execute returns all items newest-first. The optional q parameter filters
// by case-insensitive name match.
//
//	@Summary		Feed
//	@Description	Returns all items newest-first, optionally filtered by name
//	@Tags			catalog
//	@Produce		json
//	@Param			q	query	string	false	"Name filter"
//	@Success		200	{array}	FeedEntryResponse
//	@Router			/feed [get]
func (h *FeedHandler) Execute(w http.ResponseWriter, r *http.Request) {
	entries, err := h.svc.Items.Feed(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	resp := make([]FeedEntryResponse, len(entries))
	for i, e := range entries {
		resp[i] = FeedEntryResponse{ID: e.ID, Name: e.Name, ImageURL: e.ImageURL}
	}
	httpx.JSON(w, http.StatusOK, resp)
}
