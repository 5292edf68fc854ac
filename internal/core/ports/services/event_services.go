package services

import "context"

// AccountDecidedEvent is published when an admin approves or rejects an
// owner/realtor account.
type AccountDecidedEvent struct {
	AccountID string `json:"account_id"`
	Role      string `json:"role"`
	Outcome   string `json:"outcome"`
	DecidedAt string `json:"decided_at"`
}

// ApplicationDecidedEvent is published when a realtor decides an application.
type ApplicationDecidedEvent struct {
	ApplicationID string `json:"application_id"`
	CustomerID    string `json:"customer_id"`
	PropertyID    string `json:"property_id"`
	RealtorID     string `json:"realtor_id"`
	Outcome       string `json:"outcome"`
	DecidedAt     string `json:"decided_at"`
}

// ContractExecutedEvent is published when both parties have signed. It carries
// enough for downstream notification consumers without querying the database.
type ContractExecutedEvent struct {
	ContractID   string `json:"contract_id"`
	ContractType string `json:"contract_type"`
	OwnerID      string `json:"owner_id"`
	CustomerID   string `json:"customer_id"`
	PropertyID   string `json:"property_id"`
	PropertySold bool   `json:"property_sold"`
	ExecutedAt   string `json:"executed_at"`
}

// EventPublisherSvc publishes workflow events to the message broker. Publish
// failures are logged by callers and never fail the originating request.
type EventPublisherSvc interface {
	PublishAccountDecided(ctx context.Context, event AccountDecidedEvent) error
	PublishApplicationDecided(ctx context.Context, event ApplicationDecidedEvent) error
	PublishContractExecuted(ctx context.Context, event ContractExecutedEvent) error
}
