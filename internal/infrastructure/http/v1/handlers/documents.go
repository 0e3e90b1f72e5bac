package handlers

import (
	"capplan/internal/domain/documents/inbound"
	"capplan/internal/domain/documents/outbound"
	"capplan/internal/infrastructure/http/v1/dto"
)

type (
	InboundHTTPHandler = BaseDocumentHandler[
		*inbound.Document, inbound.ListFilter,
		dto.CreateInboundRequest, dto.UpdateInboundRequest,
	]
	OutboundHTTPHandler = BaseDocumentHandler[
		*outbound.PlanEntry, outbound.ListFilter,
		dto.CreateOutboundRequest, dto.UpdateOutboundRequest,
	]
)

// NewInboundHandler - Поступления
func NewInboundHandler(
	base *BaseHandler,
	service DocumentService[*inbound.Document, inbound.ListFilter],
	history AuditHistory,
) *InboundHTTPHandler {
	return NewBaseDocumentHandler(base, BaseDocumentHandlerConfig[
		*inbound.Document, inbound.ListFilter,
		dto.CreateInboundRequest, dto.UpdateInboundRequest,
	]{
		Service:      service,
		History:      history,
		EntityType:   inbound.EntityType,
		MapCreateDTO: func(req dto.CreateInboundRequest) *inbound.Document { return req.ToEntity() },
		MapUpdateDTO: func(req dto.UpdateInboundRequest, existing *inbound.Document) *inbound.Document {
			req.ApplyTo(existing)
			return existing
		},
		MapToDTO: func(doc *inbound.Document) any { return dto.FromInbound(doc) },
		BuildFilter: func(q DocumentQuery) inbound.ListFilter {
			return inbound.ListFilter{
				ListFilter: q.List,
				ClientID:   q.ClientID,
				Validated:  q.Validated,
				Dates:      q.Dates,
			}
		},
	})
}

// NewOutboundHandler - План отгрузки
func NewOutboundHandler(
	base *BaseHandler,
	service DocumentService[*outbound.PlanEntry, outbound.ListFilter],
	history AuditHistory,
) *OutboundHTTPHandler {
	return NewBaseDocumentHandler(base, BaseDocumentHandlerConfig[
		*outbound.PlanEntry, outbound.ListFilter,
		dto.CreateOutboundRequest, dto.UpdateOutboundRequest,
	]{
		Service:      service,
		History:      history,
		EntityType:   outbound.EntityType,
		MapCreateDTO: func(req dto.CreateOutboundRequest) *outbound.PlanEntry { return req.ToEntity() },
		MapUpdateDTO: func(req dto.UpdateOutboundRequest, existing *outbound.PlanEntry) *outbound.PlanEntry {
			req.ApplyTo(existing)
			return existing
		},
		MapToDTO: func(e *outbound.PlanEntry) any { return dto.FromOutbound(e) },
		BuildFilter: func(q DocumentQuery) outbound.ListFilter {
			return outbound.ListFilter{
				ListFilter: q.List,
				ClientID:   q.ClientID,
				ZoneID:     q.ZoneID,
				Validated:  q.Validated,
				Dates:      q.Dates,
			}
		},
	})
}
