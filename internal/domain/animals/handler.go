package animals

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/breeds", listBreedsHandler())

	r.Route("/animals", func(ar chi.Router) {
		ar.Post("/", createAnimalHandler(svc))
		ar.Get("/", listAnimalsHandler(svc))
		ar.Get("/{animalID}", getAnimalHandler(svc))
	})
}

// createAnimalRequest es el formulario tal cual lo escribe el usuario.
// Los numéricos llegan como texto: parsearlos es parte de la validación.
type createAnimalRequest struct {
	Name   string `json:"name"`
	Breed  string `json:"breed" enums:"dog,cat,rabbit,bird,hamster,horse"` // opcional, default dog
	Age    string `json:"age"`
	Weight string `json:"weight"`
	Height string `json:"height"`
}

// animalResponse representa un animal registrado.
type animalResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Breed     Breed     `json:"breed"`
	Age       int       `json:"age"`
	Weight    float64   `json:"weight"`
	Height    float64   `json:"height"`
	CreatedAt time.Time `json:"created_at"`
}

// validationErrorResponse lleva el tipo de error y el mensaje fijo para la UI.
type validationErrorResponse struct {
	Error   ErrorKind `json:"error" enums:"EMPTY_NAME,INVALID_AGE,INVALID_WEIGHT,INVALID_HEIGHT"`
	Message string    `json:"message"`
}

type breedResponse struct {
	Value   Breed `json:"value"`
	Default bool  `json:"default"`
}

// createAnimalHandler godoc
// @Summary Crear animal
// @Description Valida el formulario en orden (name, age, weight, height) y reporta solo el primer error. Si todo es válido agrega el animal al store y responde con `Location: /animals` para volver al listado.
// @Tags animals
// @Accept json
// @Produce json
// @Param payload body createAnimalRequest true "Valores crudos del formulario"
// @Success 201 {object} animalResponse
// @Failure 400 {object} validationErrorResponse
// @Failure 500 {string} string "internal error"
// @Router /animals [post]
func createAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createAnimalRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		breed, err := ParseBreed(req.Breed)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		a, err := svc.Create(r.Context(), CreateInput{
			Name:   req.Name,
			Breed:  breed,
			Age:    req.Age,
			Weight: req.Weight,
			Height: req.Height,
		})
		if err != nil {
			var verr *ValidationError
			if errors.As(err, &verr) {
				writeJSON(w, http.StatusBadRequest, validationErrorResponse{
					Error:   verr.Kind,
					Message: verr.Message(),
				})
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		// Equivalente HTTP de la navegación de vuelta al listado.
		w.Header().Set("Location", "/animals")
		writeJSON(w, http.StatusCreated, toAnimalResponse(a))
	}
}

// listAnimalsHandler godoc
// @Summary Listar animales
// @Description Devuelve los animales en orden de inserción.
// @Tags animals
// @Produce json
// @Success 200 {array} animalResponse
// @Failure 500 {string} string "internal error"
// @Router /animals [get]
func listAnimalsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]animalResponse, 0, len(items))
		for _, a := range items {
			out = append(out, toAnimalResponse(a))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// getAnimalHandler godoc
// @Summary Ver animal
// @Tags animals
// @Produce json
// @Param animalID path string true "ID del animal"
// @Success 200 {object} animalResponse
// @Failure 404 {string} string "animal not found"
// @Failure 500 {string} string "internal error"
// @Router /animals/{animalID} [get]
func getAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, err := svc.GetByID(r.Context(), chi.URLParam(r, "animalID"))
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				http.Error(w, "animal not found", http.StatusNotFound)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, toAnimalResponse(a))
	}
}

// listBreedsHandler godoc
// @Summary Listar razas
// @Description Catálogo cerrado en orden de declaración; el primero es el default.
// @Tags animals
// @Produce json
// @Success 200 {array} breedResponse
// @Router /breeds [get]
func listBreedsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		def := DefaultBreed()
		all := Breeds()
		out := make([]breedResponse, 0, len(all))
		for _, b := range all {
			out = append(out, breedResponse{Value: b, Default: b == def})
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func toAnimalResponse(a Animal) animalResponse {
	return animalResponse{
		ID:        a.ID,
		Name:      a.Name,
		Breed:     a.Breed,
		Age:       a.Age,
		Weight:    a.Weight,
		Height:    a.Height,
		CreatedAt: a.CreatedAt,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
