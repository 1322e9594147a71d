package handlers

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/curio/pkg/auth"
	"github.com/ghuser/curio/pkg/errhttp"
	"github.com/ghuser/curio/pkg/httpx"
	pkgvalidator "github.com/ghuser/curio/pkg/validator"
	appsvcs "github.com/ghuser/curio/services/catalog/application/services"
	"github.com/ghuser/curio/services/catalog/domain/models"
)

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"item not found"`
} // @name CatalogErrorResponse

// CreateItemRequest is the request body for POST /items.
type CreateItemRequest struct {
	Name         string     `json:"name" validate:"required,max=255"`
	Description  *string    `json:"description" validate:"omitempty,max=2000"`
	Author       *string    `json:"author" validate:"omitempty,max=255"`
	Year         *int       `json:"year" validate:"omitempty,min=0"`
	ImageURLs    []string   `json:"image_urls" validate:"required,min=1,dive,url"`
	IsForSale    bool       `json:"is_for_sale"`
	Price        *float64   `json:"price" validate:"omitempty,min=0"`
	CollectionID *uuid.UUID `json:"collection_id"`
} // @name CreateItemRequest

// ItemResponse is the full item shape.
type ItemResponse struct {
	ID           uuid.UUID  `json:"id"`
	OwnerID      uuid.UUID  `json:"owner_id"`
	CollectionID *uuid.UUID `json:"collection_id"`
	Name         string     `json:"name"`
	Description  *string    `json:"description"`
	Author       *string    `json:"author"`
	Year         *int       `json:"year"`
	ImageURLs    []string   `json:"image_urls"`
	IsForSale    bool       `json:"is_for_sale"`
	Price        *float64   `json:"price"`
	CreatedAt    time.Time  `json:"created_at"`
} // @name ItemResponse

func toItemResponse(item *models.Item) ItemResponse {
	return ItemResponse{
		ID:           item.ID,
		OwnerID:      item.OwnerID,
		CollectionID: item.CollectionID,
		Name:         item.Name.String(),
		Description:  item.Description,
		Author:       item.Author,
		Year:         item.Year,
		ImageURLs:    item.ImageURLs,
		IsForSale:    item.IsForSale,
		Price:        item.Price,
		CreatedAt:    item.CreatedAt,
	}
}

// PostItemHandler handles POST /items requests.
type PostItemHandler struct {
	svc *appsvcs.Services
}

// NewPostItemHandler returns a PostItemHandler backed by the given services.
func NewPostItemHandler(svc *appsvcs.Services) *PostItemHandler {
	return &PostItemHandler{svc: svc}
}

// Execute creates an item owned by the signed-in user.
//
//	@Summary		Create item
//	@Description	Creates a collectible item owned by the current user
//	@Tags			catalog
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateItemRequest	true	"Item fields"
//	@Success		201		{object}	ItemResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/items [post]
func (h *PostItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	ownerID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		httpx.JSONError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	req, ok := pkgvalidator.ValidateRequest[CreateItemRequest](w, r)
	if !ok {
		return
	}

	item, err := h.svc.Items.Create(r.Context(), ownerID, appsvcs.CreateItemInput{
		Name:         req.Name,
		Description:  req.Description,
		Author:       req.Author,
		Year:         req.Year,
		ImageURLs:    req.ImageURLs,
		IsForSale:    req.IsForSale,
		Price:        req.Price,
		CollectionID: req.CollectionID,
	})
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, toItemResponse(item))
}
