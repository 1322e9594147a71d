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
	appsvcs "github.com/ghuser/curio/services/social/application/services"
	"github.com/ghuser/curio/services/social/domain/models"
)

// PostCommentRequest is the request body for POST /items/{itemID}/comments.
// Content is trimmed server-side; whitespace-only text is rejected.
type PostCommentRequest struct {
	Content string `json:"content" validate:"required,max=2000"`
} // @name PostCommentRequest

// CommentResponse is one comment with its resolved author display identity.
type CommentResponse struct {
	ID        uuid.UUID `json:"id"`
	ItemID    uuid.UUID `json:"item_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	Author    struct {
		Username  string  `json:"username"`
		AvatarURL *string `json:"avatar_url"`
	} `json:"author"`
} // @name CommentResponse

func toCommentResponse(c *models.Comment) CommentResponse {
	resp := CommentResponse{
		ID:        c.ID,
		ItemID:    c.ItemID,
		Content:   c.Content,
		CreatedAt: c.CreatedAt,
	}
	author := c.DisplayAuthor()
	resp.Author.Username = author.Username
	resp.Author.AvatarURL = author.AvatarURL
	return resp
}

// PostCommentHandler handles POST /items/{itemID}/comments requests.
type PostCommentHandler struct {
	svc *appsvcs.Services
}

// NewPostCommentHandler returns a PostCommentHandler backed by the given services.
func NewPostCommentHandler(svc *appsvcs.Services) *PostCommentHandler {
	return &PostCommentHandler{svc: svc}
}

// Execute appends a comment and returns the confirmed row, ready to prepend
// to the client's newest-first list.
//
//	@Summary		Post comment
//	@Description	Appends a comment to an item after server confirmation
//	@Tags			social
//	@Accept			json
//	@Produce		json
//	@Param			itemID	path		string				true	"Item ID"
//	@Param			request	body		PostCommentRequest	true	"Comment text"
//	@Success		201		{object}	CommentResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/items/{itemID}/comments [post]
func (h *PostCommentHandler) Execute(w http.ResponseWriter, r *http.Request) {
	itemID, err := uuid.Parse(chi.URLParam(r, "itemID"))
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	req, ok := pkgvalidator.ValidateRequest[PostCommentRequest](w, r)
	if !ok {
		return
	}

	actorID := auth.ViewerFromCtx(r.Context())

	comment, err := h.svc.Comments.Post(r.Context(), itemID, actorID, req.Content)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, toCommentResponse(comment))
}

// ListCommentsHandler handles GET /items/{itemID}/comments requests.
type ListCommentsHandler struct {
	svc *appsvcs.Services
}

// NewListCommentsHandler returns a ListCommentsHandler backed by the given services.
func NewListCommentsHandler(svc *appsvcs.Services) *ListCommentsHandler {
	return &ListCommentsHandler{svc: svc}
}

// Execute lists an item's comments newest-first.
//
//	@Summary		List comments
//	@Description	Returns an item's comments newest-first
//	@Tags			social
//	@Produce		json
//	@Param			itemID	path	string	true	"Item ID"
//	@Success		200		{array}	CommentResponse
//	@Failure		400		{object}	ErrorResponse
//	@Router			/items/{itemID}/comments [get]
func (h *ListCommentsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	itemID, err := uuid.Parse(chi.URLParam(r, "itemID"))
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	comments, err := h.svc.Comments.ListForItem(r.Context(), itemID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	resp := make([]CommentResponse, len(comments))
	for i, c := range comments {
		resp[i] = toCommentResponse(c)
	}
	httpx.JSON(w, http.StatusOK, resp)
}
