package handlers

import (
	"github.com/gin-gonic/gin"

	"capplan/internal/core/apperror"
	"capplan/internal/core/id"
	"capplan/internal/domain"
	"capplan/internal/domain/catalogs/client"
	"capplan/internal/domain/catalogs/norm"
	"capplan/internal/domain/catalogs/product"
	"capplan/internal/domain/catalogs/resource"
	"capplan/internal/domain/catalogs/warehouse"
	"capplan/internal/domain/catalogs/zone"
	"capplan/internal/domain/filter"
	"capplan/internal/domain/registers/availability"
	"capplan/internal/infrastructure/http/v1/dto"
)

type (
	ClientHTTPHandler       = CatalogHandler[*client.Client, dto.CreateClientRequest, dto.UpdateClientRequest]
	WarehouseHTTPHandler    = CatalogHandler[*warehouse.Warehouse, dto.CreateWarehouseRequest, dto.UpdateWarehouseRequest]
	ZoneHTTPHandler         = CatalogHandler[*zone.Zone, dto.CreateZoneRequest, dto.UpdateZoneRequest]
	ProductHTTPHandler      = CatalogHandler[*product.Product, dto.CreateProductRequest, dto.UpdateProductRequest]
	ResourceHTTPHandler     = CatalogHandler[*resource.Resource, dto.CreateResourceRequest, dto.UpdateResourceRequest]
	NormHTTPHandler         = CatalogHandler[*norm.Norm, dto.CreateNormRequest, dto.UpdateNormRequest]
	AvailabilityHTTPHandler = CatalogHandler[*availability.Record, dto.CreateAvailabilityRequest, dto.UpdateAvailabilityRequest]
)

// NewClientHandler - Клиенты
func NewClientHandler(base *BaseHandler, service CatalogService[*client.Client]) *ClientHTTPHandler {
	return NewCatalogHandler(base, CatalogHandlerConfig[*client.Client, dto.CreateClientRequest, dto.UpdateClientRequest]{
		Service:      service,
		EntityName:   "client",
		MapCreateDTO: func(req dto.CreateClientRequest) *client.Client { return req.ToEntity() },
		MapUpdateDTO: func(req dto.UpdateClientRequest, existing *client.Client) *client.Client {
			req.ApplyTo(existing)
			return existing
		},
		MapToDTO: func(e *client.Client) any { return dto.FromClient(e) },
	})
}

// NewWarehouseHandler - Склады
func NewWarehouseHandler(base *BaseHandler, service CatalogService[*warehouse.Warehouse]) *WarehouseHTTPHandler {
	return NewCatalogHandler(base, CatalogHandlerConfig[*warehouse.Warehouse, dto.CreateWarehouseRequest, dto.UpdateWarehouseRequest]{
		Service:      service,
		EntityName:   "warehouse",
		MapCreateDTO: func(req dto.CreateWarehouseRequest) *warehouse.Warehouse { return req.ToEntity() },
		MapUpdateDTO: func(req dto.UpdateWarehouseRequest, existing *warehouse.Warehouse) *warehouse.Warehouse {
			req.ApplyTo(existing)
			return existing
		},
		MapToDTO: func(e *warehouse.Warehouse) any { return dto.FromWarehouse(e) },
	})
}

// NewZoneHandler - Зоны. Supports ?warehouseId= filtering.
func NewZoneHandler(base *BaseHandler, service CatalogService[*zone.Zone]) *ZoneHTTPHandler {
	return NewCatalogHandler(base, CatalogHandlerConfig[*zone.Zone, dto.CreateZoneRequest, dto.UpdateZoneRequest]{
		Service:      service,
		EntityName:   "zone",
		MapCreateDTO: func(req dto.CreateZoneRequest) *zone.Zone { return req.ToEntity() },
		MapUpdateDTO: func(req dto.UpdateZoneRequest, existing *zone.Zone) *zone.Zone {
			req.ApplyTo(existing)
			return existing
		},
		MapToDTO:   func(e *zone.Zone) any { return dto.FromZone(e) },
		ListFilter: eqFilter("warehouseId", "warehouse_id"),
	})
}

// NewProductHandler - Товары (SKU). Supports ?clientId= filtering.
func NewProductHandler(base *BaseHandler, service CatalogService[*product.Product]) *ProductHTTPHandler {
	return NewCatalogHandler(base, CatalogHandlerConfig[*product.Product, dto.CreateProductRequest, dto.UpdateProductRequest]{
		Service:      service,
		EntityName:   "product",
		MapCreateDTO: func(req dto.CreateProductRequest) *product.Product { return req.ToEntity() },
		MapUpdateDTO: func(req dto.UpdateProductRequest, existing *product.Product) *product.Product {
			req.ApplyTo(existing)
			return existing
		},
		MapToDTO:   func(e *product.Product) any { return dto.FromProduct(e) },
		ListFilter: eqFilter("clientId", "client_id"),
	})
}

// NewResourceHandler - Ресурсы
func NewResourceHandler(base *BaseHandler, service CatalogService[*resource.Resource]) *ResourceHTTPHandler {
	return NewCatalogHandler(base, CatalogHandlerConfig[*resource.Resource, dto.CreateResourceRequest, dto.UpdateResourceRequest]{
		Service:      service,
		EntityName:   "resource",
		MapCreateDTO: func(req dto.CreateResourceRequest) *resource.Resource { return req.ToEntity() },
		MapUpdateDTO: func(req dto.UpdateResourceRequest, existing *resource.Resource) *resource.Resource {
			req.ApplyTo(existing)
			return existing
		},
		MapToDTO:   func(e *resource.Resource) any { return dto.FromResource(e) },
		ListFilter: eqFilter("zoneId", "zone_id"),
	})
}

// NewNormHandler - Нормативы. Supports ?clientId= filtering.
func NewNormHandler(base *BaseHandler, service CatalogService[*norm.Norm]) *NormHTTPHandler {
	return NewCatalogHandler(base, CatalogHandlerConfig[*norm.Norm, dto.CreateNormRequest, dto.UpdateNormRequest]{
		Service:      service,
		EntityName:   "norm",
		MapCreateDTO: func(req dto.CreateNormRequest) *norm.Norm { return req.ToEntity() },
		MapUpdateDTO: func(req dto.UpdateNormRequest, existing *norm.Norm) *norm.Norm {
			req.ApplyTo(existing)
			return existing
		},
		MapToDTO:   func(e *norm.Norm) any { return dto.FromNorm(e) },
		ListFilter: eqFilter("clientId", "client_id"),
	})
}

// NewAvailabilityHandler - Доступность ресурсов.
// Supports ?startDate=&endDate=&resourceId= filtering.
func NewAvailabilityHandler(base *BaseHandler, service CatalogService[*availability.Record]) *AvailabilityHTTPHandler {
	return NewCatalogHandler(base, CatalogHandlerConfig[*availability.Record, dto.CreateAvailabilityRequest, dto.UpdateAvailabilityRequest]{
		Service:      service,
		EntityName:   "availability",
		MapCreateDTO: func(req dto.CreateAvailabilityRequest) *availability.Record { return req.ToEntity() },
		MapUpdateDTO: func(req dto.UpdateAvailabilityRequest, existing *availability.Record) *availability.Record {
			req.ApplyTo(existing)
			return existing
		},
		MapToDTO: func(e *availability.Record) any { return dto.FromAvailability(e) },
		ListFilter: func(c *gin.Context, f domain.ListFilter) (domain.ListFilter, error) {
			r, err := parseDateRange(c)
			if err != nil {
				return f, err
			}
			resourceID, err := queryID(c, "resourceId")
			if err != nil {
				return f, err
			}
			return availability.ListFilter(f, r, resourceID), nil
		},
	})
}

// eqFilter narrows a list by an optional UUID query parameter.
func eqFilter(param, column string) func(c *gin.Context, f domain.ListFilter) (domain.ListFilter, error) {
	return func(c *gin.Context, f domain.ListFilter) (domain.ListFilter, error) {
		v, err := queryID(c, param)
		if err != nil || v == nil {
			return f, err
		}
		f.AdvancedFilters = append(f.AdvancedFilters, filter.Eq(column, *v))
		return f, nil
	}
}

func queryID(c *gin.Context, key string) (*id.ID, error) {
	v, err := id.ParseOptional(c.Query(key))
	if err != nil {
		return nil, apperror.NewValidation("invalid id format").WithDetail("field", key)
	}
	return v, nil
}
