package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/rentora/rentora/modules/fleet/domain/aggregates/vehicle"
	"github.com/rentora/rentora/modules/fleet/infrastructure/persistence"
	"github.com/rentora/rentora/modules/fleet/services"
	"github.com/rentora/rentora/pkg/httpapi"
	"github.com/rentora/rentora/pkg/server"
)

type vehicleViewModel struct {
	ID               uint   `json:"id"`
	PlateNumber      string `json:"plate_number"`
	Brand            string `json:"brand"`
	Model            string `json:"model"`
	Year             int    `json:"year"`
	Color            string `json:"color,omitempty"`
	Status           string `json:"status"`
	DailyRate        string `json:"daily_rate"`
	InsuranceExpiry  string `json:"insurance_expiry,omitempty"`
	InspectionExpiry string `json:"inspection_expiry,omitempty"`
}

func toVehicleViewModel(v *vehicle.Vehicle) vehicleViewModel {
	vm := vehicleViewModel{
		ID:          v.ID(),
		PlateNumber: v.PlateNumber(),
		Brand:       v.Brand(),
		Model:       v.Model(),
		Year:        v.Year(),
		Color:       v.Color(),
		Status:      string(v.Status()),
		DailyRate:   v.DailyRate().String(),
	}
	if t := v.InsuranceExpiry(); t != nil {
		vm.InsuranceExpiry = t.Format(time.DateOnly)
	}
	if t := v.InspectionExpiry(); t != nil {
		vm.InspectionExpiry = t.Format(time.DateOnly)
	}
	return vm
}

type VehiclesController struct {
	vehicleService *services.VehicleService
}

func NewVehiclesController(vehicleService *services.VehicleService) server.Controller {
	return &VehiclesController{vehicleService: vehicleService}
}

func (c *VehiclesController) Key() string {
	return "/fleet/vehicles"
}

func (c *VehiclesController) Register(r *mux.Router) {
	router := r.PathPrefix("/fleet/vehicles").Subrouter()
	router.HandleFunc("", c.list).Methods(http.MethodGet)
	router.HandleFunc("", c.create).Methods(http.MethodPost)
	router.HandleFunc("/{id:[0-9]+}", c.get).Methods(http.MethodGet)
}

func (c *VehiclesController) list(w http.ResponseWriter, r *http.Request) {
	params := &vehicle.FindParams{
		Search: r.URL.Query().Get("search"),
		Status: vehicle.Status(r.URL.Query().Get("status")),
	}
	if limit, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil {
		params.Limit = limit
	}
	if offset, err := strconv.Atoi(r.URL.Query().Get("offset")); err == nil {
		params.Offset = offset
	}

	vehicles, err := c.vehicleService.GetPaginated(r.Context(), params)
	if err != nil {
		_ = httpapi.WriteError(w, http.StatusInternalServerError, "VEHICLES_LIST_FAILED", err.Error(), nil)
		return
	}

	viewModels := make([]vehicleViewModel, 0, len(vehicles))
	for _, v := range vehicles {
		viewModels = append(viewModels, toVehicleViewModel(v))
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, viewModels)
}

func (c *VehiclesController) get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "VEHICLES_BAD_ID", "invalid vehicle id", nil)
		return
	}

	v, err := c.vehicleService.GetByID(r.Context(), uint(id))
	if err != nil {
		if errors.Is(err, persistence.ErrVehicleNotFound) {
			_ = httpapi.WriteError(w, http.StatusNotFound, "VEHICLES_NOT_FOUND", "vehicle not found", nil)
			return
		}
		_ = httpapi.WriteError(w, http.StatusInternalServerError, "VEHICLES_GET_FAILED", err.Error(), nil)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, toVehicleViewModel(v))
}

func (c *VehiclesController) create(w http.ResponseWriter, r *http.Request) {
	var dto vehicle.CreateDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "VEHICLES_BAD_BODY", err.Error(), nil)
		return
	}

	if fieldErrors, ok := dto.Ok(); !ok {
		_ = httpapi.WriteError(w, http.StatusUnprocessableEntity, "VEHICLES_VALIDATION_FAILED", "validation failed", fieldErrors)
		return
	}

	created, err := c.vehicleService.Create(r.Context(), dto.ToEntity())
	if err != nil {
		_ = httpapi.WriteError(w, http.StatusInternalServerError, "VEHICLES_CREATE_FAILED", err.Error(), nil)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusCreated, toVehicleViewModel(created))
}
