package handler

import (
	"net/http"

	"github.com/qanyare/restaurant-service/internal/api"
	"github.com/qanyare/restaurant-service/internal/models"
	"github.com/qanyare/restaurant-service/internal/service"
)

// StaffHandler handles staff members and dining tables
type StaffHandler struct {
	staffService *service.StaffService
	tableService *service.TableService
}

// NewStaffHandler creates a new staff handler
func NewStaffHandler(staffService *service.StaffService, tableService *service.TableService) *StaffHandler {
	return &StaffHandler{
		staffService: staffService,
		tableService: tableService,
	}
}

func (h *StaffHandler) ListStaff(w http.ResponseWriter, r *http.Request) {
	staff, err := h.staffService.List(r.Context(), models.StaffFilter{
		IncludeInactive: queryBool(r, "includeInactive"),
	})
	if err != nil {
		api.InternalServerError(w, r, err, "Failed to fetch staff")
		return
	}

	respondJSON(w, staff)
}

func (h *StaffHandler) GetStaff(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	member, err := h.staffService.Get(r.Context(), id)
	if err != nil {
		api.Error(w, r, err, "Staff member not found", "Failed to fetch staff member")
		return
	}

	respondJSON(w, member)
}

func (h *StaffHandler) CreateStaff(w http.ResponseWriter, r *http.Request) {
	var req models.StaffRequest
	if !decodeBody(w, r, &req) {
		return
	}

	member, err := h.staffService.Create(r.Context(), req)
	if err != nil {
		api.Error(w, r, err, "Staff member not found", "Failed to create staff member")
		return
	}

	api.JSON(w, http.StatusCreated, member)
}

func (h *StaffHandler) UpdateStaff(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var patch models.StaffPatch
	if !decodeBody(w, r, &patch) {
		return
	}

	member, err := h.staffService.Update(r.Context(), id, patch)
	if err != nil {
		api.Error(w, r, err, "Staff member not found", "Failed to update staff member")
		return
	}

	respondJSON(w, member)
}

func (h *StaffHandler) DeleteStaff(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	existed, err := h.staffService.Delete(r.Context(), id)
	if err != nil {
		api.InternalServerError(w, r, err, "Failed to delete staff member")
		return
	}

	respondDeleted(w, existed, "Staff member")
}

func (h *StaffHandler) ListTables(w http.ResponseWriter, r *http.Request) {
	tables, err := h.tableService.List(r.Context())
	if err != nil {
		api.InternalServerError(w, r, err, "Failed to fetch tables")
		return
	}

	respondJSON(w, tables)
}

func (h *StaffHandler) GetTable(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	table, err := h.tableService.Get(r.Context(), id)
	if err != nil {
		api.Error(w, r, err, "Table not found", "Failed to fetch table")
		return
	}

	respondJSON(w, table)
}

func (h *StaffHandler) CreateTable(w http.ResponseWriter, r *http.Request) {
	var req models.TableRequest
	if !decodeBody(w, r, &req) {
		return
	}

	table, err := h.tableService.Create(r.Context(), req)
	if err != nil {
		api.Error(w, r, err, "Table not found", "Failed to create table")
		return
	}

	api.JSON(w, http.StatusCreated, table)
}

func (h *StaffHandler) UpdateTable(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var patch models.TablePatch
	if !decodeBody(w, r, &patch) {
		return
	}

	table, err := h.tableService.Update(r.Context(), id, patch)
	if err != nil {
		api.Error(w, r, err, "Table not found", "Failed to update table")
		return
	}

	respondJSON(w, table)
}

func (h *StaffHandler) DeleteTable(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	existed, err := h.tableService.Delete(r.Context(), id)
	if err != nil {
		api.InternalServerError(w, r, err, "Failed to delete table")
		return
	}

	respondDeleted(w, existed, "Table")
}
