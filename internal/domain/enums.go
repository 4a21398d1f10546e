package domain

// Enumerated values mirror the CHECK constraints on the applications table.
// Wire values are the Portuguese tags the public form submits.

type Status string

const (
	StatusPendente  Status = "pendente"
	StatusEmAnalise Status = "em_analise"
	StatusAprovado  Status = "aprovado"
	StatusRejeitado Status = "rejeitado"
)

// Statuses in display order (stats buckets, reference data).
var Statuses = []Status{StatusPendente, StatusEmAnalise, StatusAprovado, StatusRejeitado}

func (s Status) Valid() bool {
	switch s {
	case StatusPendente, StatusEmAnalise, StatusAprovado, StatusRejeitado:
		return true
	}
	return false
}

type Availability string

const (
	AvailabilityImediata Availability = "imediata"
	Availability15Dias   Availability = "15_dias"
	Availability30Dias   Availability = "30_dias"
)

var Availabilities = []Availability{AvailabilityImediata, Availability15Dias, Availability30Dias}

func (a Availability) Valid() bool {
	switch a {
	case AvailabilityImediata, Availability15Dias, Availability30Dias:
		return true
	}
	return false
}

type Schedule string

const (
	ScheduleManha    Schedule = "manha"
	ScheduleTarde    Schedule = "tarde"
	ScheduleNoite    Schedule = "noite"
	ScheduleIntegral Schedule = "integral"
)

var Schedules = []Schedule{ScheduleManha, ScheduleTarde, ScheduleNoite, ScheduleIntegral}

func (s Schedule) Valid() bool {
	switch s {
	case ScheduleManha, ScheduleTarde, ScheduleNoite, ScheduleIntegral:
		return true
	}
	return false
}

type VehicleType string

const (
	VehicleMoto     VehicleType = "moto"
	VehicleCarro    VehicleType = "carro"
	VehicleVan      VehicleType = "van"
	VehicleCaminhao VehicleType = "caminhao"
	VehicleOnibus   VehicleType = "onibus"
)

var VehicleTypes = []VehicleType{VehicleMoto, VehicleCarro, VehicleVan, VehicleCaminhao, VehicleOnibus}

func (v VehicleType) Valid() bool {
	switch v {
	case VehicleMoto, VehicleCarro, VehicleVan, VehicleCaminhao, VehicleOnibus:
		return true
	}
	return false
}

// Admin roles. Only RoleAdmin may read or mutate applications.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleUser
}
