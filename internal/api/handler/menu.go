package handler

import (
	"net/http"
	"strconv"

	"github.com/qanyare/restaurant-service/internal/api"
	"github.com/qanyare/restaurant-service/internal/models"
	"github.com/qanyare/restaurant-service/internal/service"
)

// MenuHandler handles categories and menu items
type MenuHandler struct {
	menuService *service.MenuService
}

// NewMenuHandler creates a new menu handler
func NewMenuHandler(menuService *service.MenuService) *MenuHandler {
	return &MenuHandler{menuService: menuService}
}

// ListCategories lists categories, active ones unless includeInactive is set
func (h *MenuHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.menuService.ListCategories(r.Context(), models.CategoryFilter{
		IncludeInactive: queryBool(r, "includeInactive"),
	})
	if err != nil {
		api.InternalServerError(w, r, err, "Failed to fetch categories")
		return
	}

	respondJSON(w, categories)
}

func (h *MenuHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	category, err := h.menuService.GetCategory(r.Context(), id)
	if err != nil {
		api.Error(w, r, err, "Category not found", "Failed to fetch category")
		return
	}

	respondJSON(w, category)
}

func (h *MenuHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req models.CategoryRequest
	if !decodeBody(w, r, &req) {
		return
	}

	category, err := h.menuService.CreateCategory(r.Context(), req)
	if err != nil {
		api.Error(w, r, err, "Category not found", "Failed to create category")
		return
	}

	api.JSON(w, http.StatusCreated, category)
}

func (h *MenuHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var patch models.CategoryPatch
	if !decodeBody(w, r, &patch) {
		return
	}

	category, err := h.menuService.UpdateCategory(r.Context(), id, patch)
	if err != nil {
		api.Error(w, r, err, "Category not found", "Failed to update category")
		return
	}

	respondJSON(w, category)
}

func (h *MenuHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	existed, err := h.menuService.DeleteCategory(r.Context(), id)
	if err != nil {
		api.Error(w, r, err, "Category not found", "Failed to delete category")
		return
	}

	respondDeleted(w, existed, "Category")
}

// ListItems lists menu items, optionally for one category
func (h *MenuHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	filter := models.MenuItemFilter{IncludeInactive: queryBool(r, "includeInactive")}

	if raw := r.URL.Query().Get("categoryId"); raw != "" {
		categoryID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			api.BadRequest(w, "Invalid categoryId")
			return
		}
		filter.CategoryID = &categoryID
	}

	items, err := h.menuService.ListItems(r.Context(), filter)
	if err != nil {
		api.InternalServerError(w, r, err, "Failed to fetch menu items")
		return
	}

	respondJSON(w, items)
}

func (h *MenuHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	item, err := h.menuService.GetItem(r.Context(), id)
	if err != nil {
		api.Error(w, r, err, "Menu item not found", "Failed to fetch menu item")
		return
	}

	respondJSON(w, item)
}

func (h *MenuHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	var req models.MenuItemRequest
	if !decodeBody(w, r, &req) {
		return
	}

	item, err := h.menuService.CreateItem(r.Context(), req)
	if err != nil {
		api.Error(w, r, err, "Menu item not found", "Failed to create menu item")
		return
	}

	api.JSON(w, http.StatusCreated, item)
}

func (h *MenuHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var patch models.MenuItemPatch
	if !decodeBody(w, r, &patch) {
		return
	}

	item, err := h.menuService.UpdateItem(r.Context(), id, patch)
	if err != nil {
		api.Error(w, r, err, "Menu item not found", "Failed to update menu item")
		return
	}

	respondJSON(w, item)
}

func (h *MenuHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	existed, err := h.menuService.DeleteItem(r.Context(), id)
	if err != nil {
		api.InternalServerError(w, r, err, "Failed to delete menu item")
		return
	}

	respondDeleted(w, existed, "Menu item")
}
