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

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"authentication required"`
} // @name ErrorResponse

// ToggleFollowHandler handles POST /profiles/{profileID}/follow requests.
type ToggleFollowHandler struct {
	svc *appsvcs.Services
}

// NewToggleFollowHandler returns a ToggleFollowHandler backed by the given services.
func NewToggleFollowHandler(svc *appsvcs.Services) *ToggleFollowHandler {
	return &ToggleFollowHandler{svc: svc}
}

// Execute flips the following state between the signed-in user and a profile.
//
//	@Summary		Toggle follow
//	@Description	Optimistically flips the following state for the current user
//	@Tags			social
//	@Accept			json
//	@Produce		json
//	@Param			profileID	path		string			true	"Profile ID"
//	@Param			request		body		ToggleRequest	true	"Currently displayed projection"
//	@Success		200			{object}	ToggleResponse
//	@Failure		401			{object}	ErrorResponse
//	@Failure		422			{object}	ErrorResponse
//	@Router			/profiles/{profileID}/follow [post]
func (h *ToggleFollowHandler) Execute(w http.ResponseWriter, r *http.Request) {
	profileID, err := uuid.Parse(chi.URLParam(r, "profileID"))
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid profile id")
		return
	}

	req, ok := pkgvalidator.ValidateRequest[ToggleRequest](w, r)
	if !ok {
		return
	}

	actorID := auth.ViewerFromCtx(r.Context())

	next, err := h.svc.Interactions.ToggleFollow(r.Context(), actorID, profileID, models.Projection{
		Active: req.Active,
		Count:  req.Count,
	})
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, ToggleResponse{Active: next.Active, Count: next.Count})
}
