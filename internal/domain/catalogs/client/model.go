// Package client provides the Client catalog (Справочник "Клиенты").
// Clients own products, inbound documents and outbound plans.
package client

import (
	"strings"

	"capplan/internal/core/entity"
)

// Client is a 3PL customer whose goods pass through the warehouse.
type Client struct {
	entity.Catalog

	// Contact is the contact person
	Contact string `db:"contact" json:"contact"`
}

// NewClient creates a new Client.
func NewClient(name, contact string) *Client {
	return &Client{
		Catalog: entity.NewCatalog(name),
		Contact: strings.TrimSpace(contact),
	}
}
