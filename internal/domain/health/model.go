package health

import "time"

// Record representa un registro de salud de un animal: diagnóstico,
// tratamiento, vacuna y el factor de penalidad que el servicio de
// producción usa para ajustar sus cálculos.
type Record struct {
	ID       string
	AnimalID string

	Diagnosis string
	Treatment string
	Vaccine   string
	Notes     string

	// Fecha del registro (solo fecha, sin hora). Opcional.
	Date *time.Time

	// Penalidad >= 0. nil = sin penalidad (cuenta como 0 en el agregado).
	Penalty *float64

	// Usuario que creó el registro; base del control de acceso.
	// Solo un admin puede reasignarlo.
	OwnerUsername string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// PenaltyOrZero trata la penalidad ausente como 0 para la suma agregada.
func (r Record) PenaltyOrZero() float64 {
	if r.Penalty == nil {
		return 0
	}
	return *r.Penalty
}
