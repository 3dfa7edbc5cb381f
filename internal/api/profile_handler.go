package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	app_errors "healthquest/backend/internal/errors"
	"healthquest/backend/internal/interfaces"
	"healthquest/backend/internal/model"
)

type ProfileHandler struct {
	profiles interfaces.ProfileService
}

func NewProfileHandler(profiles interfaces.ProfileService) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

// GetProfile godoc
// @Summary      Get the user profile
// @Tags         profile
// @Produce      json
// @Success      200 {object} model.UserProfile
// @Router       /profile [get]
func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.profiles.Get(r.Context()))
}

// UpdateProfile godoc
// @Summary      Replace the user profile
// @Description  The profile is saved wholesale; all six fields are free text.
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        request body model.UserProfile true "New profile"
// @Success      200 {object} StatusResponse
// @Failure      400 {object} ErrorResponse
// @Router       /profile [put]
func (h *ProfileHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var profile model.UserProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		respondWithError(w, fmt.Errorf("%w: invalid request body", app_errors.ErrValidation))
		return
	}
	h.profiles.Save(r.Context(), profile)
	respondWithJSON(w, http.StatusOK, StatusResponse{Status: "ok"})
}

// GetWelcome godoc
// @Summary      Welcome-screen content
// @Description  Greeting (personalized when a profile name exists) and suggested prompts.
// @Tags         profile
// @Produce      json
// @Success      200 {object} service.WelcomeResponse
// @Router       /welcome [get]
func (h *ProfileHandler) GetWelcome(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.profiles.Welcome(r.Context()))
}
