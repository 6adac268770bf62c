package health

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"animal-health-service/internal/domain/authz"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("health record not found")
	ErrForbidden    = errors.New("forbidden")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type CreateInput struct {
	AnimalID  string
	Diagnosis string
	Treatment string
	Vaccine   string
	Notes     string
	Date      *time.Time
	Penalty   *float64
}

// Create registra un nuevo health record. El dueño queda SIEMPRE en el
// username del caller: cualquier owner que venga del cliente se ignora.
func (s *Service) Create(ctx context.Context, caller authz.Identity, in CreateInput) (Record, error) {
	if !caller.HasRecognizedRole() {
		return Record{}, ErrForbidden
	}
	if strings.TrimSpace(in.AnimalID) == "" {
		return Record{}, fmt.Errorf("%w: animal id required", ErrInvalidInput)
	}
	if in.Penalty != nil && *in.Penalty < 0 {
		return Record{}, fmt.Errorf("%w: penalty must be >= 0", ErrInvalidInput)
	}

	now := s.now()
	rec := Record{
		ID:            uuid.NewString(),
		AnimalID:      strings.TrimSpace(in.AnimalID),
		Diagnosis:     strings.TrimSpace(in.Diagnosis),
		Treatment:     strings.TrimSpace(in.Treatment),
		Vaccine:       strings.TrimSpace(in.Vaccine),
		Notes:         strings.TrimSpace(in.Notes),
		Date:          in.Date,
		Penalty:       in.Penalty,
		OwnerUsername: caller.Username,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.repo.Create(ctx, rec); err != nil {
		return Record{}, err
	}
	return rec, nil
}

// GetByID valida ownership: admin o dueño. Not-found se reporta como tal
// para cualquier caller (no se disfraza de forbidden).
func (s *Service) GetByID(ctx context.Context, caller authz.Identity, id string) (Record, error) {
	rec, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Record{}, ErrNotFound
	}
	if !caller.CanAccessRecord(rec.OwnerUsername) {
		return Record{}, fmt.Errorf("%w: read health record %s", ErrForbidden, id)
	}
	return rec, nil
}

// ListByAnimal devuelve los registros del animal con política todo-o-nada:
// si el caller no es admin y algún registro es de otro dueño, se niega la
// lista completa. Nunca se devuelve un subconjunto filtrado.
func (s *Service) ListByAnimal(ctx context.Context, caller authz.Identity, animalID string) ([]Record, error) {
	records, err := s.repo.ListByAnimal(ctx, animalID)
	if err != nil {
		return nil, err
	}

	owners := make([]string, 0, len(records))
	for _, rec := range records {
		owners = append(owners, rec.OwnerUsername)
	}
	if !caller.CanAccessAll(owners) {
		return nil, fmt.Errorf("%w: records for animal %s", ErrForbidden, animalID)
	}
	return records, nil
}

// ListForUser filtra del lado del servidor: admin ve todo, el resto ve
// exactamente sus propios registros. (A diferencia de ListByAnimal, acá
// sí se filtra; ambas políticas son deliberadamente distintas.)
func (s *Service) ListForUser(ctx context.Context, caller authz.Identity) ([]Record, error) {
	if caller.IsAdmin() {
		return s.repo.ListAll(ctx)
	}
	return s.repo.ListByOwner(ctx, caller.Username)
}

type UpdateInput struct {
	Diagnosis string
	Treatment string
	Vaccine   string
	Notes     string
	Date      *time.Time
	Penalty   *float64

	// Solo un admin puede reasignar el dueño; para el resto se ignora
	// en silencio (no es error).
	OwnerUsername string
}

// Update reemplaza los campos clínicos del registro (semántica PUT).
func (s *Service) Update(ctx context.Context, caller authz.Identity, id string, in UpdateInput) (Record, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Record{}, ErrNotFound
	}
	if !caller.CanAccessRecord(existing.OwnerUsername) {
		return Record{}, fmt.Errorf("%w: update health record %s", ErrForbidden, id)
	}
	if in.Penalty != nil && *in.Penalty < 0 {
		return Record{}, fmt.Errorf("%w: penalty must be >= 0", ErrInvalidInput)
	}

	existing.Diagnosis = strings.TrimSpace(in.Diagnosis)
	existing.Treatment = strings.TrimSpace(in.Treatment)
	existing.Vaccine = strings.TrimSpace(in.Vaccine)
	existing.Notes = strings.TrimSpace(in.Notes)
	existing.Date = in.Date
	existing.Penalty = in.Penalty

	if caller.IsAdmin() && strings.TrimSpace(in.OwnerUsername) != "" {
		existing.OwnerUsername = strings.TrimSpace(in.OwnerUsername)
	}

	existing.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, existing); err != nil {
		return Record{}, err
	}
	return existing, nil
}

func (s *Service) Delete(ctx context.Context, caller authz.Identity, id string) error {
	rec, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return ErrNotFound
	}
	if !caller.CanAccessRecord(rec.OwnerUsername) {
		return fmt.Errorf("%w: delete health record %s", ErrForbidden, id)
	}
	return s.repo.Delete(ctx, id)
}

// PenaltyForAnimal suma las penalidades de todos los registros del animal
// (nil cuenta como 0). Sin chequeo de ownership: cualquier caller con rol
// reconocido puede consultar cualquier animal. Comportamiento heredado;
// no unificar con el resto del modelo de acceso.
func (s *Service) PenaltyForAnimal(ctx context.Context, caller authz.Identity, animalID string) (float64, error) {
	records, err := s.repo.ListByAnimal(ctx, animalID)
	if err != nil {
		return 0, err
	}

	total := 0.0
	for _, rec := range records {
		total += rec.PenaltyOrZero()
	}
	return total, nil
}
