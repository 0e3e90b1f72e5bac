package dto

import (
	"github.com/shopspring/decimal"

	"capplan/internal/core/id"
	"capplan/internal/domain/capacity"
	"capplan/internal/domain/catalogs/client"
	"capplan/internal/domain/catalogs/norm"
	"capplan/internal/domain/catalogs/product"
	"capplan/internal/domain/catalogs/resource"
	"capplan/internal/domain/catalogs/warehouse"
	"capplan/internal/domain/catalogs/zone"
)

// --- Clients ---

type CreateClientRequest struct {
	Name    string `json:"name" binding:"required"`
	Contact string `json:"contact"`
}

func (r *CreateClientRequest) ToEntity() *client.Client {
	return client.NewClient(r.Name, r.Contact)
}

type UpdateClientRequest struct {
	CreateClientRequest
	Version int `json:"version" binding:"required,min=1"`
}

func (r *UpdateClientRequest) ApplyTo(c *client.Client) {
	fresh := r.ToEntity()
	c.Name = fresh.Name
	c.Contact = fresh.Contact
	c.Version = r.Version
}

type ClientResponse struct {
	BaseResponse
	Name    string `json:"name"`
	Contact string `json:"contact,omitempty"`
}

func FromClient(c *client.Client) *ClientResponse {
	return &ClientResponse{
		BaseResponse: FromBase(c.BaseEntity),
		Name:         c.Name,
		Contact:      c.Contact,
	}
}

// --- Warehouses ---

type CreateWarehouseRequest struct {
	Name       string           `json:"name" binding:"required"`
	Address    string           `json:"address"`
	CapacityM3 *decimal.Decimal `json:"capacityM3"`
}

func (r *CreateWarehouseRequest) ToEntity() *warehouse.Warehouse {
	wh := warehouse.NewWarehouse(r.Name, r.Address)
	wh.Capacity = r.CapacityM3
	return wh
}

type UpdateWarehouseRequest struct {
	CreateWarehouseRequest
	Version int `json:"version" binding:"required,min=1"`
}

func (r *UpdateWarehouseRequest) ApplyTo(wh *warehouse.Warehouse) {
	fresh := r.ToEntity()
	wh.Name = fresh.Name
	wh.Address = fresh.Address
	wh.Capacity = fresh.Capacity
	wh.Version = r.Version
}

type WarehouseResponse struct {
	BaseResponse
	Name       string           `json:"name"`
	Address    string           `json:"address,omitempty"`
	CapacityM3 *decimal.Decimal `json:"capacityM3,omitempty"`
}

func FromWarehouse(wh *warehouse.Warehouse) *WarehouseResponse {
	return &WarehouseResponse{
		BaseResponse: FromBase(wh.BaseEntity),
		Name:         wh.Name,
		Address:      wh.Address,
		CapacityM3:   wh.Capacity,
	}
}

// --- Zones ---

type CreateZoneRequest struct {
	Name        string           `json:"name" binding:"required"`
	WarehouseID id.ID            `json:"warehouseId"`
	Type        string           `json:"type"`
	MaxCapacity *decimal.Decimal `json:"maxCapacity"`
}

func (r *CreateZoneRequest) ToEntity() *zone.Zone {
	z := zone.NewZone(r.WarehouseID, r.Name, r.Type)
	z.MaxCapacity = r.MaxCapacity
	return z
}

type UpdateZoneRequest struct {
	CreateZoneRequest
	Version int `json:"version" binding:"required,min=1"`
}

func (r *UpdateZoneRequest) ApplyTo(z *zone.Zone) {
	fresh := r.ToEntity()
	z.Name = fresh.Name
	z.WarehouseID = fresh.WarehouseID
	z.Type = fresh.Type
	z.MaxCapacity = fresh.MaxCapacity
	z.Version = r.Version
}

type ZoneResponse struct {
	BaseResponse
	Name        string           `json:"name"`
	WarehouseID string           `json:"warehouseId"`
	Type        string           `json:"type"`
	MaxCapacity *decimal.Decimal `json:"maxCapacity,omitempty"`
}

func FromZone(z *zone.Zone) *ZoneResponse {
	return &ZoneResponse{
		BaseResponse: FromBase(z.BaseEntity),
		Name:         z.Name,
		WarehouseID:  z.WarehouseID.String(),
		Type:         z.Type,
		MaxCapacity:  z.MaxCapacity,
	}
}

// --- Products (SKU) ---

type CreateProductRequest struct {
	Name           string          `json:"name" binding:"required"`
	ClientID       id.ID           `json:"clientId"`
	WeightPerUnit  decimal.Decimal `json:"weightPerUnit"`
	UnitsPerBox    int             `json:"unitsPerBox"`
	UnitsPerPallet int             `json:"unitsPerPallet"`
}

func (r *CreateProductRequest) ToEntity() *product.Product {
	p := product.NewProduct(r.ClientID, r.Name)
	p.WeightPerUnit = r.WeightPerUnit
	p.UnitsPerBox = r.UnitsPerBox
	p.UnitsPerPallet = r.UnitsPerPallet
	return p
}

type UpdateProductRequest struct {
	CreateProductRequest
	Version int `json:"version" binding:"required,min=1"`
}

func (r *UpdateProductRequest) ApplyTo(p *product.Product) {
	fresh := r.ToEntity()
	p.Name = fresh.Name
	p.ClientID = fresh.ClientID
	p.WeightPerUnit = fresh.WeightPerUnit
	p.UnitsPerBox = fresh.UnitsPerBox
	p.UnitsPerPallet = fresh.UnitsPerPallet
	p.Version = r.Version
}

type ProductResponse struct {
	BaseResponse
	Name           string          `json:"name"`
	ClientID       string          `json:"clientId"`
	WeightPerUnit  decimal.Decimal `json:"weightPerUnit"`
	UnitsPerBox    int             `json:"unitsPerBox"`
	UnitsPerPallet int             `json:"unitsPerPallet"`
}

func FromProduct(p *product.Product) *ProductResponse {
	return &ProductResponse{
		BaseResponse:   FromBase(p.BaseEntity),
		Name:           p.Name,
		ClientID:       p.ClientID.String(),
		WeightPerUnit:  p.WeightPerUnit,
		UnitsPerBox:    p.UnitsPerBox,
		UnitsPerPallet: p.UnitsPerPallet,
	}
}

// --- Resources ---

type CreateResourceRequest struct {
	Name    string                `json:"name" binding:"required"`
	Kind    capacity.ResourceKind `json:"kind"`
	Subtype string                `json:"subtype"`
	ZoneID  *id.ID                `json:"zoneId"`
}

func (r *CreateResourceRequest) ToEntity() *resource.Resource {
	res := resource.NewResource(r.Kind, r.Subtype, r.Name)
	res.ZoneID = r.ZoneID
	return res
}

type UpdateResourceRequest struct {
	CreateResourceRequest
	Version int `json:"version" binding:"required,min=1"`
}

func (r *UpdateResourceRequest) ApplyTo(res *resource.Resource) {
	fresh := r.ToEntity()
	res.Name = fresh.Name
	res.Kind = fresh.Kind
	res.Subtype = fresh.Subtype
	res.ZoneID = fresh.ZoneID
	res.Version = r.Version
}

type ResourceResponse struct {
	BaseResponse
	Name    string                `json:"name"`
	Kind    capacity.ResourceKind `json:"kind"`
	Subtype string                `json:"subtype"`
	ZoneID  *string               `json:"zoneId,omitempty"`
}

func FromResource(res *resource.Resource) *ResourceResponse {
	out := &ResourceResponse{
		BaseResponse: FromBase(res.BaseEntity),
		Name:         res.Name,
		Kind:         res.Kind,
		Subtype:      res.Subtype,
	}
	if res.ZoneID != nil {
		s := res.ZoneID.String()
		out.ZoneID = &s
	}
	return out
}

// --- Norms (Нормативы) ---

type CreateNormRequest struct {
	ClientID        id.ID                  `json:"clientId"`
	SkuID           id.ID                  `json:"skuId"`
	OperationType   capacity.OperationType `json:"operationType"`
	ZoneType        string                 `json:"zoneType"`
	ResourceSubtype string                 `json:"resourceSubtype"`
	UnitType        string                 `json:"unitType"`
	NormValue       decimal.Decimal        `json:"normValue"`
}

func (r *CreateNormRequest) key() norm.Key {
	return norm.Key{
		ClientID:        r.ClientID,
		ProductID:       r.SkuID,
		OperationType:   r.OperationType,
		ZoneType:        r.ZoneType,
		ResourceSubtype: r.ResourceSubtype,
		UnitType:        r.UnitType,
	}
}

func (r *CreateNormRequest) ToEntity() *norm.Norm {
	return norm.NewNorm(r.key(), r.NormValue)
}

type UpdateNormRequest struct {
	CreateNormRequest
	Version int `json:"version" binding:"required,min=1"`
}

func (r *UpdateNormRequest) ApplyTo(n *norm.Norm) {
	fresh := r.ToEntity()
	fresh.BaseCatalog = n.BaseCatalog
	fresh.Version = r.Version
	*n = *fresh
}

type NormResponse struct {
	BaseResponse
	ClientID        string                 `json:"clientId"`
	SkuID           string                 `json:"skuId"`
	OperationType   capacity.OperationType `json:"operationType"`
	ZoneType        string                 `json:"zoneType"`
	ResourceSubtype string                 `json:"resourceSubtype"`
	UnitType        string                 `json:"unitType"`
	NormValue       decimal.Decimal        `json:"normValue"`
}

func FromNorm(n *norm.Norm) *NormResponse {
	return &NormResponse{
		BaseResponse:    FromBase(n.BaseEntity),
		ClientID:        n.ClientID.String(),
		SkuID:           n.ProductID.String(),
		OperationType:   n.OperationType,
		ZoneType:        n.ZoneType,
		ResourceSubtype: n.ResourceSubtype,
		UnitType:        n.UnitType,
		NormValue:       n.Value,
	}
}
