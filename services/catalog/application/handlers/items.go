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

// UpdateItemRequest is the request body for PATCH /items/{itemID}.
type UpdateItemRequest struct {
	Name        string  `json:"name" validate:"required,max=255"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
} // @name UpdateItemRequest

// ItemDetailResponse is the composed item page.
type ItemDetailResponse struct {
	Item          ItemResponse            `json:"item"`
	OwnerUsername *string                 `json:"owner_username"`
	LikeCount     int                     `json:"like_count"`
	ViewerLiked   bool                    `json:"viewer_liked"`
	Comments      []DetailCommentResponse `json:"comments"`
} // @name ItemDetailResponse

// DetailCommentResponse is one comment on the item detail page.
type DetailCommentResponse struct {
	ID        uuid.UUID `json:"id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	Author    struct {
		Username  string  `json:"username"`
		AvatarURL *string `json:"avatar_url"`
	} `json:"author"`
} // @name DetailCommentResponse

// GetItemHandler handles GET /items/{itemID} requests.
type GetItemHandler struct {
	svc *appsvcs.Services
}

// NewGetItemHandler returns a GetItemHandler backed by the given services.
func NewGetItemHandler(svc *appsvcs.Services) *GetItemHandler {
	return &GetItemHandler{svc: svc}
}

// Execute returns the composed item detail: the row plus owner username,
// like count, viewer-liked flag, and newest-first comments.
//
//	@Summary		Get item detail
//	@Description	Returns an item with its social context
//	@Tags			catalog
//	@Produce		json
//	@Param			itemID	path		string	true	"Item ID"
//	@Success		200		{object}	ItemDetailResponse
//	@Failure		404		{object}	ErrorResponse
//	@Router			/items/{itemID} [get]
func (h *GetItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	itemID, err := uuid.Parse(chi.URLParam(r, "itemID"))
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	viewerID := auth.ViewerFromCtx(r.Context())

	detail, err := h.svc.Details.Load(r.Context(), itemID, viewerID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	resp := ItemDetailResponse{
		Item:          toItemResponse(detail.Item),
		OwnerUsername: detail.OwnerUsername,
		LikeCount:     detail.LikeCount,
		ViewerLiked:   detail.ViewerLiked,
		Comments:      make([]DetailCommentResponse, len(detail.Comments)),
	}
	for i, c := range detail.Comments {
		resp.Comments[i].ID = c.ID
		resp.Comments[i].Content = c.Content
		resp.Comments[i].CreatedAt = c.CreatedAt
		resp.Comments[i].Author.Username = c.AuthorUsername
		resp.Comments[i].Author.AvatarURL = c.AuthorAvatarURL
	}

	httpx.JSON(w, http.StatusOK, resp)
}

// UpdateItemHandler handles PATCH /items/{itemID} requests.
type UpdateItemHandler struct {
	svc *appsvcs.Services
}

// NewUpdateItemHandler returns an UpdateItemHandler backed by the given services.
func NewUpdateItemHandler(svc *appsvcs.Services) *UpdateItemHandler {
	return &UpdateItemHandler{svc: svc}
}

// Execute applies name and description changes. Owner-only.
//
//	@Summary		Update item
//	@Description	Updates an item's name and description
//	@Tags			catalog
//	@Accept			json
//	@Produce		json
//	@Param			itemID	path		string				true	"Item ID"
//	@Param			request	body		UpdateItemRequest	true	"Editable fields"
//	@Success		200		{object}	ItemResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		403		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Router			/items/{itemID} [patch]
func (h *UpdateItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	itemID, err := uuid.Parse(chi.URLParam(r, "itemID"))
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	actorID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		httpx.JSONError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	req, ok := pkgvalidator.ValidateRequest[UpdateItemRequest](w, r)
	if !ok {
		return
	}

	item, err := h.svc.Items.Update(r.Context(), actorID, itemID, appsvcs.UpdateItemInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toItemResponse(item))
}

// DeleteItemHandler handles DELETE /items/{itemID} requests.
type DeleteItemHandler struct {
	svc *appsvcs.Services
}

// NewDeleteItemHandler returns a DeleteItemHandler backed by the given services.
func NewDeleteItemHandler(svc *appsvcs.Services) *DeleteItemHandler {
	return &DeleteItemHandler{svc: svc}
}

// Execute deletes an item. Owner-only; likes and comments cascade.
//
//	@Summary		Delete item
//	@Description	Deletes an item owned by the current user
//	@Tags			catalog
//	@Param			itemID	path	string	true	"Item ID"
//	@Success		204
//	@Failure		401	{object}	ErrorResponse
//	@Failure		403	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/items/{itemID} [delete]
func (h *DeleteItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	itemID, err := uuid.Parse(chi.URLParam(r, "itemID"))
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	actorID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		httpx.JSONError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	if err := h.svc.Items.Delete(r.Context(), actorID, itemID); err != nil {
		errhttp.WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
