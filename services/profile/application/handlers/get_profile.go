package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ghuser/curio/pkg/auth"
	"github.com/ghuser/curio/pkg/errhttp"
	"github.com/ghuser/curio/pkg/httpx"
	appsvcs "github.com/ghuser/curio/services/profile/application/services"
)

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"load profile view failed"`
} // @name ProfileErrorResponse

// ProfileViewResponse is the composed profile page. Profile is null when the
// subject has no profile row.
type ProfileViewResponse struct {
	SubjectID uuid.UUID `json:"subject_id"`
	Profile   *struct {
		Username  string  `json:"username"`
		AvatarURL *string `json:"avatar_url"`
	} `json:"profile"`
	Collections    []CollectionTileResponse `json:"collections"`
	FollowerCount  int                      `json:"follower_count"`
	FollowingCount int                      `json:"following_count"`
	IsFollowing    bool                     `json:"is_following"`
	IsSelf         bool                     `json:"is_self"`
	Stale          bool                     `json:"stale"`
} // @name ProfileViewResponse

// CollectionTileResponse is one collection tile with its derived cover.
type CollectionTileResponse struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	CoverImageURL *string   `json:"cover_image_url"`
} // @name CollectionTileResponse

// GetProfileHandler handles GET /profiles/{profileID} requests.
type GetProfileHandler struct {
	svc *appsvcs.Services
}

// NewGetProfileHandler returns a GetProfileHandler backed by the given services.
func NewGetProfileHandler(svc *appsvcs.Services) *GetProfileHandler {
	return &GetProfileHandler{svc: svc}
}

// Execute rebuilds the profile view for the subject as seen by the current
// viewer, anonymous or signed in.
//
//	@Summary		Get profile view
//	@Description	Returns the aggregated profile page for a user
//	@Tags			profile
//	@Produce		json
//	@Param			profileID	path		string	true	"Profile ID"
//	@Success		200			{object}	ProfileViewResponse
//	@Failure		400			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Router			/profiles/{profileID} [get]
func (h *GetProfileHandler) Execute(w http.ResponseWriter, r *http.Request) {
	subjectID, err := uuid.Parse(chi.URLParam(r, "profileID"))
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid profile id")
		return
	}

	viewerID := auth.ViewerFromCtx(r.Context())

	view, err := h.svc.Aggregator.LoadView(r.Context(), subjectID, viewerID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	resp := ProfileViewResponse{
		SubjectID:      view.SubjectID,
		Collections:    make([]CollectionTileResponse, len(view.Collections)),
		FollowerCount:  view.FollowerCount,
		FollowingCount: view.FollowingCount,
		IsFollowing:    view.IsFollowing,
		IsSelf:         view.IsSelf,
		Stale:          view.Stale,
	}
	if view.Profile != nil {
		resp.Profile = &struct {
			Username  string  `json:"username"`
			AvatarURL *string `json:"avatar_url"`
		}{Username: view.Profile.Username, AvatarURL: view.Profile.AvatarURL}
	}
	for i, c := range view.Collections {
		resp.Collections[i] = CollectionTileResponse{
			ID:            c.ID,
			Name:          c.Name,
			CoverImageURL: c.CoverImageURL,
		}
	}

	httpx.JSON(w, http.StatusOK, resp)
}
