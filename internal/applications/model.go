package applications

import "time"

// Mirrors DB columns from the single table `applications`.
type Application struct {
	ID string `json:"id"`

	FullName string `json:"full_name"`
	CPF      string `json:"cpf"`   // digits only in DB; masked on detail views
	Phone    string `json:"phone"` // digits only in DB; masked on detail views
	Email    string `json:"email"`
	City     string `json:"city"`
	State    string `json:"state"` // 2-letter UF

	VehicleTypes    []string `json:"vehicle_types"` // jsonb array of tags
	ExperienceYears int      `json:"experience_years"`
	Availability    string   `json:"availability"`
	Schedule        string   `json:"schedule"`

	OwnsVehicle        bool `json:"owns_vehicle"`
	CargoExperience    bool `json:"cargo_experience"`
	AvailableForTravel bool `json:"available_for_travel"`
	AcceptedTerms      bool `json:"accepted_terms"`

	Status     string     `json:"status"`
	StatusNote *string    `json:"status_note"`
	ReviewedBy *string    `json:"reviewed_by"`
	ReviewedAt *time.Time `json:"reviewed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Stats is the five-bucket aggregation by status.
type Stats struct {
	Total     int64 `json:"total"`
	Pendente  int64 `json:"pendente"`
	EmAnalise int64 `json:"em_analise"`
	Aprovado  int64 `json:"aprovado"`
	Rejeitado int64 `json:"rejeitado"`
}

// NewApplication carries the validated fields for an insert.
type NewApplication struct {
	FullName string
	CPF      string
	Phone    string
	Email    string
	City     string
	State    string

	VehicleTypes    []string
	ExperienceYears int
	Availability    string
	Schedule        string

	OwnsVehicle        bool
	CargoExperience    bool
	AvailableForTravel bool
	AcceptedTerms      bool
}
