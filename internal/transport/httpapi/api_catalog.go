package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	catalogdomain "github.com/autobatya/workshop-api/internal/domains/catalog/domain"
	catalogports "github.com/autobatya/workshop-api/internal/domains/catalog/ports"
)

// CatalogAPI wires HTTP transport with the parts and services catalog.
type CatalogAPI struct {
	service catalogports.Service
}

// NewCatalogAPI creates a CatalogAPI backed by the provided service.
func NewCatalogAPI(service catalogports.Service) CatalogAPI {
	return CatalogAPI{service: service}
}

type partPayload struct {
	ID       int64           `json:"id"`
	Name     string          `json:"name" binding:"required"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
	Supplier string          `json:"supplier"`
}

func (p partPayload) toDomain() *catalogdomain.Part {
	return &catalogdomain.Part{ID: p.ID, Name: p.Name, Price: p.Price, Quantity: p.Quantity, Supplier: p.Supplier}
}

func fromDomainPart(part *catalogdomain.Part) partPayload {
	if part == nil {
		return partPayload{}
	}
	return partPayload{ID: part.ID, Name: part.Name, Price: part.Price, Quantity: part.Quantity, Supplier: part.Supplier}
}

type servicePayload struct {
	ID            int64           `json:"id"`
	Name          string          `json:"name" binding:"required"`
	Price         decimal.Decimal `json:"price"`
	DurationHours float64         `json:"duration_hours"`
}

func (p servicePayload) toDomain() *catalogdomain.Service {
	return &catalogdomain.Service{ID: p.ID, Name: p.Name, Price: p.Price, DurationHours: p.DurationHours}
}

func fromDomainService(svc *catalogdomain.Service) servicePayload {
	if svc == nil {
		return servicePayload{}
	}
	return servicePayload{ID: svc.ID, Name: svc.Name, Price: svc.Price, DurationHours: svc.DurationHours}
}

// Post /parts/
func (api *CatalogAPI) CreatePart(c *gin.Context) {
	var payload partPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBadRequest(c, err)
		return
	}
	created, err := api.service.CreatePart(c.Request.Context(), payload.toDomain())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, fromDomainPart(created))
}

// Get /parts/
func (api *CatalogAPI) ListParts(c *gin.Context) {
	offset, limit, ok := parsePagination(c)
	if !ok {
		return
	}
	parts, err := api.service.ListParts(c.Request.Context(), offset, limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	result := make([]partPayload, 0, len(parts))
	for _, part := range parts {
		result = append(result, fromDomainPart(part))
	}
	c.JSON(http.StatusOK, result)
}

// Get /parts/:id
func (api *CatalogAPI) GetPart(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	part, err := api.service.GetPart(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, fromDomainPart(part))
}

// Put /parts/:id
func (api *CatalogAPI) UpdatePart(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var payload partPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBadRequest(c, err)
		return
	}
	payload.ID = id
	updated, err := api.service.UpdatePart(c.Request.Context(), payload.toDomain())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, fromDomainPart(updated))
}

// Delete /parts/:id
func (api *CatalogAPI) DeletePart(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := api.service.DeletePart(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Post /services/
func (api *CatalogAPI) CreateService(c *gin.Context) {
	var payload servicePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBadRequest(c, err)
		return
	}
	created, err := api.service.CreateService(c.Request.Context(), payload.toDomain())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, fromDomainService(created))
}

// Get /services/
func (api *CatalogAPI) ListServices(c *gin.Context) {
	offset, limit, ok := parsePagination(c)
	if !ok {
		return
	}
	services, err := api.service.ListServices(c.Request.Context(), offset, limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	result := make([]servicePayload, 0, len(services))
	for _, svc := range services {
		result = append(result, fromDomainService(svc))
	}
	c.JSON(http.StatusOK, result)
}

// Get /services/:id
func (api *CatalogAPI) GetService(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	svc, err := api.service.GetService(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, fromDomainService(svc))
}

// Put /services/:id
func (api *CatalogAPI) UpdateService(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var payload servicePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBadRequest(c, err)
		return
	}
	payload.ID = id
	updated, err := api.service.UpdateService(c.Request.Context(), payload.toDomain())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, fromDomainService(updated))
}

// Delete /services/:id
func (api *CatalogAPI) DeleteService(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := api.service.DeleteService(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
