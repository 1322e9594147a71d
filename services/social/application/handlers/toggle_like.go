package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ghuser/curio/pkg/auth"
	"github.com/ghuser/curio/pkg/errhttp"
	"github.com/ghuser/curio/pkg/httpx"
	pkgvalidator "github.com/ghuser/curio/pkg/validator"
	appsvcs "github.com/ghuser/curio/services/social/application/services"
	"github.com/ghuser/curio/services/social/domain/models"
)

// ToggleRequest carries the projection the client is currently displaying.
type ToggleRequest struct {
	Active bool `json:"active"`
	Count  int  `json:"count" validate:"min=0"`
} // @name ToggleRequest

// ToggleResponse is the optimistic projection the client should display
// immediately. It is not a confirmed server count.
type ToggleResponse struct {
	Active bool `json:"active"`
	Count  int  `json:"count"`
} // @name ToggleResponse

// ToggleLikeHandler handles POST /items/{itemID}/like requests.
type ToggleLikeHandler struct {
	svc *appsvcs.Services
}

// NewToggleLikeHandler returns a ToggleLikeHandler backed by the given services.
func NewToggleLikeHandler(svc *appsvcs.Services) *ToggleLikeHandler {
	return &ToggleLikeHandler{svc: svc}
}

// Execute flips the liked state for the signed-in user.
//
//	@Summary		Toggle like
//	@Description	Optimistically flips the liked state of an item for the current user
//	@Tags			social
//	@Accept			json
//	@Produce		json
//	@Param			itemID	path		string			true	"Item ID"
//	@Param			request	body		ToggleRequest	true	"Currently displayed projection"
//	@Success		200		{object}	ToggleResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/items/{itemID}/like [post]
func (h *ToggleLikeHandler) Execute(w http.ResponseWriter, r *http.Request) {
	itemID, err := uuid.Parse(chi.URLParam(r, "itemID"))
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	req, ok := pkgvalidator.ValidateRequest[ToggleRequest](w, r)
	if !ok {
		return
	}

	// The engine, not the router, refuses missing actors: anonymous requests
	// reach it with uuid.Nil and come back as 401 without any gateway call.
	actorID := auth.ViewerFromCtx(r.Context())

	next, err := h.svc.Interactions.ToggleLike(r.Context(), actorID, itemID, models.Projection{
		Active: req.Active,
		Count:  req.Count,
	})
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, ToggleResponse{Active: next.Active, Count: next.Count})
}
