package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ghuser/curio/pkg/auth"
	"github.com/ghuser/curio/pkg/errhttp"
	"github.com/ghuser/curio/pkg/httpx"
	pkgvalidator "github.com/ghuser/curio/pkg/validator"
	appsvcs "github.com/ghuser/curio/services/catalog/application/services"
)

// GetOrCreateCollectionRequest is the request body for POST /collections.
type GetOrCreateCollectionRequest struct {
	Name string `json:"name" validate:"required,max=100"`
} // @name GetOrCreateCollectionRequest

// CollectionResponse is the collection shape.
type CollectionResponse struct {
	ID        uuid.UUID `json:"id"`
	OwnerID   uuid.UUID `json:"owner_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
} // @name CollectionResponse

// GetOrCreateCollectionHandler handles POST /collections requests.
type GetOrCreateCollectionHandler struct {
	svc *appsvcs.Services
}

// NewGetOrCreateCollectionHandler returns a handler backed by the given services.
func NewGetOrCreateCollectionHandler(svc *appsvcs.Services) *GetOrCreateCollectionHandler {
	return &GetOrCreateCollectionHandler{svc: svc}
}

// Execute resolves a name to the signed-in user's collection, creating it
// when absent. Submitting an existing name returns the existing identity.
//
//	@Summary		Get or create collection
//	@Description	Resolves a collection name to its identity, creating it if needed
//	@Tags			catalog
//	@Accept			json
//	@Produce		json
//	@Param			request	body		GetOrCreateCollectionRequest	true	"Collection name"
//	@Success		200		{object}	CollectionResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/collections [post]
func (h *GetOrCreateCollectionHandler) Execute(w http.ResponseWriter, r *http.Request) {
	ownerID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		httpx.JSONError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	req, ok := pkgvalidator.ValidateRequest[GetOrCreateCollectionRequest](w, r)
	if !ok {
		return
	}

	collection, err := h.svc.Collections.GetOrCreate(r.Context(), ownerID, req.Name)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, CollectionResponse{
		ID:        collection.ID,
		OwnerID:   collection.OwnerID,
		Name:      collection.Name.String(),
		CreatedAt: collection.CreatedAt,
	})
}

// ListCollectionItemsHandler handles GET /collections/{collectionID}/items requests.
type ListCollectionItemsHandler struct {
	svc *appsvcs.Services
}

// NewListCollectionItemsHandler returns a handler backed by the given services.
func NewListCollectionItemsHandler(svc *appsvcs.Services) *ListCollectionItemsHandler {
	return &ListCollectionItemsHandler{svc: svc}
}

// Execute lists a collection's items newest-first.
//
//	@Summary		List collection items
//	@Description	Returns a collection's items newest-first
//	@Tags			catalog
//	@Produce		json
//	@Param			collectionID	path	string	true	"Collection ID"
//	@Success		200				{array}	ItemResponse
//	@Failure		404				{object}	ErrorResponse
//	@Router			/collections/{collectionID}/items [get]
func (h *ListCollectionItemsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	collectionID, err := uuid.Parse(chi.URLParam(r, "collectionID"))
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid collection id")
		return
	}

	// Existence check so an unknown collection is a 404, not an empty list.
	if _, err := h.svc.Collections.Get(r.Context(), collectionID); err != nil {
		errhttp.WriteError(w, err)
		return
	}

	items, err := h.svc.Items.ListForCollection(r.Context(), collectionID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	resp := make([]ItemResponse, len(items))
	for i, item := range items {
		resp[i] = toItemResponse(item)
	}
	httpx.JSON(w, http.StatusOK, resp)
}
