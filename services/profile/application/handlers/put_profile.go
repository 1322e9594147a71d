package handlers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/ghuser/curio/pkg/auth"
	"github.com/ghuser/curio/pkg/errhttp"
	"github.com/ghuser/curio/pkg/httpx"
	pkgvalidator "github.com/ghuser/curio/pkg/validator"
	appsvcs "github.com/ghuser/curio/services/profile/application/services"
)

// UpdateProfileRequest is the request body for PUT /profiles/me. The avatar
// URL is stored as given; file upload happens elsewhere.
type UpdateProfileRequest struct {
	Username  string  `json:"username" validate:"required,max=50"`
	AvatarURL *string `json:"avatar_url" validate:"omitempty,url"`
} // @name UpdateProfileRequest

// ProfileResponse is the stored profile row.
type ProfileResponse struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	AvatarURL *string   `json:"avatar_url"`
} // @name ProfileResponse

// UpdateProfileHandler handles PUT /profiles/me requests.
type UpdateProfileHandler struct {
	svc *appsvcs.Services
}

// NewUpdateProfileHandler returns an UpdateProfileHandler backed by the given services.
func NewUpdateProfileHandler(svc *appsvcs.Services) *UpdateProfileHandler {
	return &UpdateProfileHandler{svc: svc}
}

// Execute writes the signed-in user's display fields, creating the profile
// row on first save.
//
//	@Summary		Update own profile
//	@Description	Creates or updates the current user's profile display fields
//	@Tags			profile
//	@Accept			json
//	@Produce		json
//	@Param			request	body		UpdateProfileRequest	true	"Profile fields"
//	@Success		200		{object}	ProfileResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/profiles/me [put]
func (h *UpdateProfileHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		httpx.JSONError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	req, ok := pkgvalidator.ValidateRequest[UpdateProfileRequest](w, r)
	if !ok {
		return
	}

	profile, err := h.svc.Profiles.UpdateProfile(r.Context(), userID, req.Username, req.AvatarURL)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, ProfileResponse{
		ID:        profile.ID,
		Username:  profile.Username,
		AvatarURL: profile.AvatarURL,
	})
}
