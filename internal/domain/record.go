package domain

import "time"

// Priority enumerates the four canonical ticket priorities.
type Priority string

const (
	PriorityP1 Priority = "P1"
	PriorityP2 Priority = "P2"
	PriorityP3 Priority = "P3"
	PriorityP4 Priority = "P4"
)

// ServiceKey identifies the banking service a ticket batch belongs to.
type ServiceKey string

const (
	ServiceFlexcube    ServiceKey = "flexcube"
	ServiceCards       ServiceKey = "cards"
	ServiceIBPS        ServiceKey = "ibps"
	ServiceMFS         ServiceKey = "mfs"
	ServiceSmartTeller ServiceKey = "smart_teller"
)

// KnownServiceKeys lists the service keys with category rule tables.
func KnownServiceKeys() []ServiceKey {
	return []ServiceKey{ServiceFlexcube, ServiceCards, ServiceIBPS, ServiceMFS, ServiceSmartTeller}
}

// TicketRecord is one imported support ticket. String fields hold the empty
// string when the source cell was absent; CloseTime is nil when never closed.
// ServiceKey is stamped from the owning import batch; Service stays the
// spreadsheet's free-text system cell.
type TicketRecord struct {
	ID         string
	ImportID   string
	ServiceKey ServiceKey

	TicketID    string
	RequestTime time.Time
	CloseTime   *time.Time

	WeekNumber int
	WeekLabel  string

	Initiator        string
	Affiliate        string
	Cluster          string
	Service          string
	Category         string
	SubCategory      string
	ThirdLvlCategory string
	Title            string
	Description      string
	Name             string
	SupportGroup     string
	Process          string

	Priority Priority

	Status         string
	Resolution     string
	RootCause      string
	IncidentOrigin string
	SLAIndicator   string

	CreatedAt time.Time
}
