package handlers

import (
	"fmt"
	"net/http"
	"time"

	"biodata-api/internal/api/middleware"
	"biodata-api/internal/export"
	"biodata-api/internal/models"
	"biodata-api/internal/services"
	"biodata-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// BiodataHandler serves both the owner routes and the admin routes. Owner
// routes scope every call to the caller; admin routes are unscoped.
type BiodataHandler struct {
	svc       services.BiodataService
	validator *validator.Validate
}

func NewBiodataHandler(svc services.BiodataService, validate *validator.Validate) *BiodataHandler {
	return &BiodataHandler{svc: svc, validator: validate}
}

func (h *BiodataHandler) writeList(c *gin.Context, list []models.Biodata) {
	if wantsLegacy(c) {
		c.JSON(http.StatusOK, dto.NewLegacyBiodataList(list))
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *BiodataHandler) writeOne(c *gin.Context, b *models.Biodata) {
	if wantsLegacy(c) {
		c.JSON(http.StatusOK, dto.NewLegacyBiodata(*b))
		return
	}
	c.JSON(http.StatusOK, b)
}

func (h *BiodataHandler) bindInput(c *gin.Context) (*models.BiodataInput, bool) {
	var in models.BiodataInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return nil, false
	}
	if err := h.validator.Struct(in); err != nil {
		respondValidation(c, err)
		return nil, false
	}
	return &in, true
}

func callerID(c *gin.Context) (int64, bool) {
	claims, err := middleware.GetClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Access denied. No token provided."})
		return 0, false
	}
	return claims.UserID, true
}

func biodataID(c *gin.Context) (int64, bool) {
	id, ok := parseID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid biodata id"})
	}
	return id, ok
}

// ListOwn godoc
// @Summary      List own biodata
// @Description  Lists every biodata owned by the caller with its children.
// @Tags         biodata
// @Produce      json
// @Security     BearerAuth
// @Param        format query     string false "Set to legacy for delimiter-encoded children" Enums(json, legacy)
// @Success      200    {array}   models.Biodata
// @Failure      401    {object}  dto.ErrorResponse
// @Failure      500    {object}  dto.ErrorResponse
// @Router       /api/biodata [get]
func (h *BiodataHandler) ListOwn(c *gin.Context) {
	ownerID, ok := callerID(c)
	if !ok {
		return
	}
	list, err := h.svc.ListForOwner(c.Request.Context(), ownerID)
	if err != nil {
		respondError(c, err, "Database error")
		return
	}
	h.writeList(c, list)
}

// GetOwn godoc
// @Summary      Get own biodata
// @Tags         biodata
// @Produce      json
// @Security     BearerAuth
// @Param        id     path      int    true  "Biodata ID"
// @Param        format query     string false "Set to legacy for delimiter-encoded children" Enums(json, legacy)
// @Success      200    {object}  models.Biodata
// @Failure      404    {object}  dto.ErrorResponse "Biodata not found"
// @Router       /api/biodata/{id} [get]
func (h *BiodataHandler) GetOwn(c *gin.Context) {
	ownerID, ok := callerID(c)
	if !ok {
		return
	}
	id, ok := biodataID(c)
	if !ok {
		return
	}
	b, err := h.svc.Get(c.Request.Context(), id, &ownerID)
	if err != nil {
		respondError(c, err, "Database error")
		return
	}
	h.writeOne(c, b)
}

// CreateOwn godoc
// @Summary      Submit a biodata
// @Description  Stores the profile and all child rows in one transaction.
// @Tags         biodata
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body      models.BiodataInput true "Biodata"
// @Success      201  {object}  dto.CreatedResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/biodata [post]
func (h *BiodataHandler) CreateOwn(c *gin.Context) {
	ownerID, ok := callerID(c)
	if !ok {
		return
	}
	in, ok := h.bindInput(c)
	if !ok {
		return
	}
	id, err := h.svc.Create(c.Request.Context(), ownerID, in)
	if err != nil {
		respondError(c, err, "Error creating biodata")
		return
	}
	c.JSON(http.StatusCreated, dto.CreatedResponse{Message: "Biodata created successfully", ID: id})
}

// UpdateOwn godoc
// @Summary      Replace own biodata
// @Description  Overwrites the profile and replaces every child collection.
// @Tags         biodata
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int                 true "Biodata ID"
// @Param        body body      models.BiodataInput true "Biodata"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse "Biodata not found"
// @Router       /api/biodata/{id} [put]
func (h *BiodataHandler) UpdateOwn(c *gin.Context) {
	ownerID, ok := callerID(c)
	if !ok {
		return
	}
	h.update(c, &ownerID, "Biodata updated successfully")
}

// DeleteOwn godoc
// @Summary      Delete own biodata
// @Tags         biodata
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true "Biodata ID"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse "Biodata not found"
// @Router       /api/biodata/{id} [delete]
func (h *BiodataHandler) DeleteOwn(c *gin.Context) {
	ownerID, ok := callerID(c)
	if !ok {
		return
	}
	h.delete(c, &ownerID, "Biodata deleted successfully")
}

// ListAll godoc
// @Summary      List all biodata (admin)
// @Description  Lists biodata across all owners, newest first, with the owner's email.
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        search query     string false "Case-insensitive substring"
// @Param        by     query     string false "Field to search" Enums(nama, posisi, pendidikan)
// @Param        limit  query     int    false "Page size"
// @Param        offset query     int    false "Rows to skip"
// @Param        format query     string false "Set to legacy for delimiter-encoded children" Enums(json, legacy)
// @Success      200    {array}   models.Biodata
// @Failure      400    {object}  dto.ErrorResponse
// @Failure      403    {object}  dto.ErrorResponse "Access denied. Admin only."
// @Router       /api/admin/biodata [get]
func (h *BiodataHandler) ListAll(c *gin.Context) {
	query, ok := h.bindListQuery(c)
	if !ok {
		return
	}
	list, err := h.svc.ListAll(c.Request.Context(), query.Filter())
	if err != nil {
		respondError(c, err, "Database error")
		return
	}
	h.writeList(c, list)
}

// Export godoc
// @Summary      Export biodata (admin)
// @Description  Downloads the filtered listing as an Excel workbook.
// @Tags         admin
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security     BearerAuth
// @Param        search query     string false "Case-insensitive substring"
// @Param        by     query     string false "Field to search" Enums(nama, posisi, pendidikan)
// @Success      200    {file}    file
// @Failure      403    {object}  dto.ErrorResponse "Access denied. Admin only."
// @Router       /api/admin/biodata/export [get]
func (h *BiodataHandler) Export(c *gin.Context) {
	query, ok := h.bindListQuery(c)
	if !ok {
		return
	}
	list, err := h.svc.ListAll(c.Request.Context(), query.Filter())
	if err != nil {
		respondError(c, err, "Database error")
		return
	}

	filename := fmt.Sprintf("biodata-%s.xlsx", time.Now().Format("20060102-150405"))
	c.Header("Content-Type", xlsxContentType)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Status(http.StatusOK)
	if err := export.WriteBiodataWorkbook(c.Writer, list); err != nil {
		middleware.LoggerFromContext(c).Error("export workbook failed", "error", err)
		_ = c.Error(err)
	}
}

// GetAny godoc
// @Summary      Get any biodata (admin)
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id     path      int    true  "Biodata ID"
// @Param        format query     string false "Set to legacy for delimiter-encoded children" Enums(json, legacy)
// @Success      200    {object}  models.Biodata
// @Failure      403    {object}  dto.ErrorResponse "Access denied. Admin only."
// @Failure      404    {object}  dto.ErrorResponse "Biodata not found"
// @Router       /api/admin/biodata/{id} [get]
func (h *BiodataHandler) GetAny(c *gin.Context) {
	id, ok := biodataID(c)
	if !ok {
		return
	}
	b, err := h.svc.Get(c.Request.Context(), id, nil)
	if err != nil {
		respondError(c, err, "Database error")
		return
	}
	h.writeOne(c, b)
}

// UpdateAny godoc
// @Summary      Replace any biodata (admin)
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int                 true "Biodata ID"
// @Param        body body      models.BiodataInput true "Biodata"
// @Success      200  {object}  dto.MessageResponse
// @Failure      403  {object}  dto.ErrorResponse "Access denied. Admin only."
// @Failure      404  {object}  dto.ErrorResponse "Biodata not found"
// @Router       /api/admin/biodata/{id} [put]
func (h *BiodataHandler) UpdateAny(c *gin.Context) {
	h.update(c, nil, "Biodata updated successfully by admin")
}

// DeleteAny godoc
// @Summary      Delete any biodata (admin)
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true "Biodata ID"
// @Success      200  {object}  dto.MessageResponse
// @Failure      403  {object}  dto.ErrorResponse "Access denied. Admin only."
// @Failure      404  {object}  dto.ErrorResponse "Biodata not found"
// @Router       /api/admin/biodata/{id} [delete]
func (h *BiodataHandler) DeleteAny(c *gin.Context) {
	h.delete(c, nil, "Biodata deleted successfully by admin")
}

func (h *BiodataHandler) update(c *gin.Context, ownerID *int64, message string) {
	id, ok := biodataID(c)
	if !ok {
		return
	}
	in, ok := h.bindInput(c)
	if !ok {
		return
	}
	if err := h.svc.Update(c.Request.Context(), id, ownerID, in); err != nil {
		respondError(c, err, "Error updating biodata")
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: message})
}

func (h *BiodataHandler) delete(c *gin.Context, ownerID *int64, message string) {
	id, ok := biodataID(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id, ownerID); err != nil {
		respondError(c, err, "Error deleting biodata")
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: message})
}

func (h *BiodataHandler) bindListQuery(c *gin.Context) (dto.BiodataListQuery, bool) {
	var query dto.BiodataListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return query, false
	}
	if err := h.validator.Struct(query); err != nil {
		respondValidation(c, err)
		return query, false
	}
	return query, true
}
