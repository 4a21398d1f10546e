// Public intake: POST /applications — validated submission of a candidacy.
package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/mail"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/transrodar/backend/internal/applications"
	"github.com/transrodar/backend/internal/domain"
	"github.com/transrodar/backend/internal/response"
	"github.com/transrodar/backend/internal/util"
)

// ApplicationCreator persists a validated submission.
// *applications.Repo is the production implementation.
type ApplicationCreator interface {
	Create(ctx context.Context, n applications.NewApplication) (*applications.Application, error)
}

// SubmitApplicationRequest is the public form payload.
type SubmitApplicationRequest struct {
	FullName string `json:"full_name"`
	CPF      string `json:"cpf"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	City     string `json:"city"`
	State    string `json:"state"`

	VehicleTypes    []string `json:"vehicle_types"`
	ExperienceYears int      `json:"experience_years"`
	Availability    string   `json:"availability"`
	Schedule        string   `json:"schedule"`

	OwnsVehicle        bool `json:"owns_vehicle"`
	CargoExperience    bool `json:"cargo_experience"`
	AvailableForTravel bool `json:"available_for_travel"`
	AcceptedTerms      bool `json:"accepted_terms"`
}

// brStates — the 26 UFs plus DF.
var brStates = map[string]bool{
	"AC": true, "AL": true, "AP": true, "AM": true, "BA": true, "CE": true,
	"DF": true, "ES": true, "GO": true, "MA": true, "MT": true, "MS": true,
	"MG": true, "PA": true, "PB": true, "PR": true, "PE": true, "PI": true,
	"RJ": true, "RN": true, "RS": true, "RO": true, "RR": true, "SC": true,
	"SP": true, "SE": true, "TO": true,
}

// validateSubmit normalizes and validates the payload; the returned error
// message goes to the client verbatim.
func validateSubmit(req *SubmitApplicationRequest) (applications.NewApplication, error) {
	var n applications.NewApplication

	n.FullName = strings.TrimSpace(req.FullName)
	if l := len(n.FullName); l < 3 || l > 120 {
		return n, fmt.Errorf("full_name must be between 3 and 120 characters")
	}

	cpf, err := util.NormalizeCPF(req.CPF)
	if err != nil {
		return n, err
	}
	n.CPF = cpf

	phone, err := util.NormalizeBRPhone(req.Phone)
	if err != nil {
		return n, err
	}
	n.Phone = phone

	email := strings.TrimSpace(req.Email)
	if email == "" {
		return n, fmt.Errorf("email is required")
	}
	if addr, err := mail.ParseAddress(email); err != nil || addr.Address != email {
		return n, fmt.Errorf("email is invalid")
	}
	n.Email = strings.ToLower(email)

	n.City = strings.TrimSpace(req.City)
	if n.City == "" {
		return n, fmt.Errorf("city is required")
	}
	n.State = strings.ToUpper(strings.TrimSpace(req.State))
	if !brStates[n.State] {
		return n, fmt.Errorf("state must be a valid UF code")
	}

	if len(req.VehicleTypes) == 0 {
		return n, fmt.Errorf("at least one vehicle type is required")
	}
	seen := map[string]bool{}
	for _, v := range req.VehicleTypes {
		if !domain.VehicleType(v).Valid() {
			return n, fmt.Errorf("invalid vehicle type: %s", v)
		}
		if seen[v] {
			continue
		}
		seen[v] = true
		n.VehicleTypes = append(n.VehicleTypes, v)
	}

	if req.ExperienceYears < 0 || req.ExperienceYears > 60 {
		return n, fmt.Errorf("experience_years must be between 0 and 60")
	}
	n.ExperienceYears = req.ExperienceYears

	if !domain.Availability(req.Availability).Valid() {
		return n, fmt.Errorf("invalid availability: %s", req.Availability)
	}
	n.Availability = req.Availability

	if !domain.Schedule(req.Schedule).Valid() {
		return n, fmt.Errorf("invalid schedule: %s", req.Schedule)
	}
	n.Schedule = req.Schedule

	if !req.AcceptedTerms {
		return n, fmt.Errorf("accepted_terms must be true")
	}
	n.OwnsVehicle = req.OwnsVehicle
	n.CargoExperience = req.CargoExperience
	n.AvailableForTravel = req.AvailableForTravel
	n.AcceptedTerms = req.AcceptedTerms

	return n, nil
}

// SubmitApplication handles POST /applications.
func SubmitApplication(repo ApplicationCreator) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SubmitApplicationRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Error(c, http.StatusBadRequest, "invalid request body")
			return
		}
		n, err := validateSubmit(&req)
		if err != nil {
			response.Error(c, http.StatusBadRequest, err.Error())
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		a, err := repo.Create(ctx, n)
		if err != nil {
			if errors.Is(err, applications.ErrDuplicateCPF) {
				response.Error(c, http.StatusConflict, "an open application already exists for this cpf")
				return
			}
			response.Error(c, http.StatusInternalServerError, "internal error")
			return
		}
		response.Created(c, gin.H{
			"id":     a.ID,
			"status": a.Status,
		})
	}
}
