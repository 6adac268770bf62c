package health

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"animal-health-service/internal/domain/authz"
	"animal-health-service/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/health", func(hr chi.Router) {
		hr.Post("/", createRecordHandler(svc))
		hr.Get("/", listRecordsHandler(svc))

		hr.Get("/{recordID}", getRecordHandler(svc))
		hr.Put("/{recordID}", updateRecordHandler(svc))
		hr.Delete("/{recordID}", deleteRecordHandler(svc))

		// Registros por animal (política todo-o-nada para no-admin)
		hr.Get("/animal/{animalID}", listByAnimalHandler(svc))

		// Penalidad acumulada (consumida por el servicio de producción)
		hr.Get("/condition/{animalID}", penaltyHandler(svc))
	})
}

// recordRequest es el cuerpo para crear o actualizar un health record.
type recordRequest struct {
	AnimalID  string   `json:"animal_id" validate:"required"`
	Diagnosis string   `json:"diagnosis"`
	Treatment string   `json:"treatment"`
	Vaccine   string   `json:"vaccine"`
	Notes     string   `json:"notes"`
	Date      string   `json:"date"` // YYYY-MM-DD opcional
	Penalty   *float64 `json:"penalty" validate:"omitempty,gte=0"`

	// Solo en PUT y solo para admins; se ignora en el resto de los casos.
	OwnerUsername string `json:"owner_username"`
}

// recordResponse representa un health record devuelto por la API.
type recordResponse struct {
	ID            string     `json:"id"`
	AnimalID      string     `json:"animal_id"`
	Diagnosis     string     `json:"diagnosis"`
	Treatment     string     `json:"treatment"`
	Vaccine       string     `json:"vaccine"`
	Notes         string     `json:"notes"`
	Date          *time.Time `json:"date,omitempty"`
	Penalty       *float64   `json:"penalty,omitempty"`
	OwnerUsername string     `json:"owner_username"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// identityFrom arma la identidad del request desde los claims verificados.
// ok=false => no hubo autenticación (401).
func identityFrom(r *http.Request) (authz.Identity, bool) {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok {
		return authz.Identity{}, false
	}
	id := authz.NewIdentity(claims.Username, claims.Roles)
	return id, id.IsAuthenticated()
}

// requireIdentity corta con 401 (sin identidad) o 403 (autenticado pero
// sin rol reconocido). Equivale al gate USER/ADMIN que llevan todos los
// endpoints.
func requireIdentity(w http.ResponseWriter, r *http.Request) (authz.Identity, bool) {
	caller, ok := identityFrom(r)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return authz.Identity{}, false
	}
	if !caller.HasRecognizedRole() {
		http.Error(w, "forbidden", http.StatusForbidden)
		return authz.Identity{}, false
	}
	return caller, true
}

// createRecordHandler godoc
// @Summary Crear health record
// @Description Registra un health record para un animal. El owner_username queda siempre en el username del token; lo que mande el cliente se ignora.
// @Tags health
// @Accept json
// @Produce json
// @Param Authorization header string false "Bearer token"
// @Param payload body recordRequest true "Datos del registro; date en formato YYYY-MM-DD"
// @Success 200 {object} recordResponse
// @Failure 400 {string} string "invalid json / animal_id requerido / penalty negativa"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Router /health [post]
func createRecordHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, ok := requireIdentity(w, r)
		if !ok {
			return
		}

		req, date, ok := decodeRecordRequest(w, r)
		if !ok {
			return
		}

		rec, err := svc.Create(r.Context(), caller, CreateInput{
			AnimalID:  req.AnimalID,
			Diagnosis: req.Diagnosis,
			Treatment: req.Treatment,
			Vaccine:   req.Vaccine,
			Notes:     req.Notes,
			Date:      date,
			Penalty:   req.Penalty,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toRecordResponse(rec))
	}
}

// getRecordHandler godoc
// @Summary Obtener health record
// @Description Devuelve un registro por id. Solo el dueño o un admin pueden verlo.
// @Tags health
// @Produce json
// @Param Authorization header string false "Bearer token"
// @Param recordID path string true "ID del registro"
// @Success 200 {object} recordResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "health record not found"
// @Router /health/{recordID} [get]
func getRecordHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, ok := requireIdentity(w, r)
		if !ok {
			return
		}

		rec, err := svc.GetByID(r.Context(), caller, chi.URLParam(r, "recordID"))
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toRecordResponse(rec))
	}
}

// listByAnimalHandler godoc
// @Summary Listar registros de un animal
// @Description Lista todos los registros del animal. Para no-admin la política es todo-o-nada: si algún registro pertenece a otro usuario, 403 (nunca un subconjunto filtrado).
// @Tags health
// @Produce json
// @Param Authorization header string false "Bearer token"
// @Param animalID path string true "ID del animal"
// @Success 200 {array} recordResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Router /health/animal/{animalID} [get]
func listByAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, ok := requireIdentity(w, r)
		if !ok {
			return
		}

		records, err := svc.ListByAnimal(r.Context(), caller, chi.URLParam(r, "animalID"))
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toRecordResponses(records))
	}
}

// listRecordsHandler godoc
// @Summary Listar registros visibles
// @Description Admin ve todos los registros; el resto ve exactamente los propios (filtrado en servidor).
// @Tags health
// @Produce json
// @Param Authorization header string false "Bearer token"
// @Success 200 {array} recordResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Router /health [get]
func listRecordsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, ok := requireIdentity(w, r)
		if !ok {
			return
		}

		records, err := svc.ListForUser(r.Context(), caller)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, toRecordResponses(records))
	}
}

// updateRecordHandler godoc
// @Summary Actualizar health record
// @Description Reemplaza los campos clínicos del registro (PUT). Solo dueño o admin. owner_username del body se aplica únicamente si el caller es admin; para el resto se ignora en silencio.
// @Tags health
// @Accept json
// @Produce json
// @Param Authorization header string false "Bearer token"
// @Param recordID path string true "ID del registro"
// @Param payload body recordRequest true "Nuevos datos del registro"
// @Success 200 {object} recordResponse
// @Failure 400 {string} string "invalid json / penalty negativa"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "health record not found"
// @Router /health/{recordID} [put]
func updateRecordHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, ok := requireIdentity(w, r)
		if !ok {
			return
		}

		req, date, ok := decodeRecordRequest(w, r)
		if !ok {
			return
		}

		rec, err := svc.Update(r.Context(), caller, chi.URLParam(r, "recordID"), UpdateInput{
			Diagnosis:     req.Diagnosis,
			Treatment:     req.Treatment,
			Vaccine:       req.Vaccine,
			Notes:         req.Notes,
			Date:          date,
			Penalty:       req.Penalty,
			OwnerUsername: req.OwnerUsername,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toRecordResponse(rec))
	}
}

// deleteRecordHandler godoc
// @Summary Eliminar health record
// @Description Elimina un registro. Solo dueño o admin. Un id inexistente devuelve 404 para cualquier caller.
// @Tags health
// @Param Authorization header string false "Bearer token"
// @Param recordID path string true "ID del registro"
// @Success 204 {string} string "sin contenido"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "health record not found"
// @Router /health/{recordID} [delete]
func deleteRecordHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, ok := requireIdentity(w, r)
		if !ok {
			return
		}

		if err := svc.Delete(r.Context(), caller, chi.URLParam(r, "recordID")); err != nil {
			writeServiceError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// penaltyHandler godoc
// @Summary Penalidad acumulada de un animal
// @Description Suma las penalidades de todos los registros del animal (sin penalidad = 0). Cualquier usuario con rol reconocido puede consultar cualquier animal; este endpoint no valida ownership.
// @Tags health
// @Produce json
// @Param Authorization header string false "Bearer token"
// @Param animalID path string true "ID del animal"
// @Success 200 {number} number "suma de penalidades"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Router /health/condition/{animalID} [get]
func penaltyHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, ok := requireIdentity(w, r)
		if !ok {
			return
		}

		total, err := svc.PenaltyForAnimal(r.Context(), caller, chi.URLParam(r, "animalID"))
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, total)
	}
}

// decodeRecordRequest decodifica y valida el body común de POST/PUT.
// ok=false => ya se escribió la respuesta de error.
func decodeRecordRequest(w http.ResponseWriter, r *http.Request) (recordRequest, *time.Time, bool) {
	var req recordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return recordRequest{}, nil, false
	}

	if err := validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return recordRequest{}, nil, false
	}

	var date *time.Time
	if req.Date != "" {
		t, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			http.Error(w, "date must be YYYY-MM-DD", http.StatusBadRequest)
			return recordRequest{}, nil, false
		}
		date = &t
	}

	return req, date, true
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrForbidden):
		http.Error(w, "forbidden", http.StatusForbidden)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "health record not found", http.StatusNotFound)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func toRecordResponse(rec Record) recordResponse {
	return recordResponse{
		ID:            rec.ID,
		AnimalID:      rec.AnimalID,
		Diagnosis:     rec.Diagnosis,
		Treatment:     rec.Treatment,
		Vaccine:       rec.Vaccine,
		Notes:         rec.Notes,
		Date:          rec.Date,
		Penalty:       rec.Penalty,
		OwnerUsername: rec.OwnerUsername,
		CreatedAt:     rec.CreatedAt,
		UpdatedAt:     rec.UpdatedAt,
	}
}

func toRecordResponses(records []Record) []recordResponse {
	out := make([]recordResponse, 0, len(records))
	for _, rec := range records {
		out = append(out, toRecordResponse(rec))
	}
	return out
}

// writeJSON vive en este paquete (y no en un helper común) siguiendo la
// convención del resto del código: cada módulo maneja su serialización.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
