package dispatch

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Load statuses follow the lifecycle pending → dispatched → in_transit →
// delivered; cancelled is reachable from any non-terminal status.
const (
	LoadStatusPending    = "pending"
	LoadStatusDispatched = "dispatched"
	LoadStatusInTransit  = "in_transit"
	LoadStatusDelivered  = "delivered"
	LoadStatusCancelled  = "cancelled"

	DispatchStatusPlanning   = "planning"
	DispatchStatusAssigned   = "assigned"
	DispatchStatusInProgress = "in_progress"
	DispatchStatusCompleted  = "completed"

	TrailerTypeContainer = "container"
	TrailerTypeReefer    = "reefer"
	TrailerTypeTanker    = "tanker"
	TrailerTypeFlatbed   = "flatbed"
	TrailerTypeDryVan    = "dry_van"

	LegActionPickup  = "pickup"
	LegActionDropoff = "dropoff"
	LegActionMove    = "move"
	LegActionReturn  = "return"

	AssignmentStatusAssigned  = "assigned"
	AssignmentStatusActive    = "active"
	AssignmentStatusCompleted = "completed"
	AssignmentStatusCancelled = "cancelled"
)

// Load is the central transactional entity. Trailer-type-specific columns
// are nullable; only the group matching TrailerType is populated, the rest
// stay NULL. Loads are never deleted, only status-transitioned.
type Load struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID  uuid.UUID `gorm:"type:uuid;not null;index"`
	LoadNumber string    `gorm:"type:varchar(20);not null;index:idx_loads_company_number,unique,composite:company_id"`

	CustomerName string `gorm:"type:varchar(150);not null"`
	CustomerRef  string `gorm:"type:varchar(60)"`

	PickupLocation   string     `gorm:"type:varchar(255);not null"`
	PickupDate       *time.Time `gorm:"type:date"`
	DeliveryLocation string     `gorm:"type:varchar(255);not null"`
	DeliveryDate     *time.Time `gorm:"type:date"`

	Commodity string  `gorm:"type:varchar(120)"`
	Weight    float64 `gorm:"not null;default:0"`
	Pieces    int     `gorm:"not null;default:0"`

	TrailerType string `gorm:"type:varchar(20);not null"`

	// Container group.
	ContainerNumber *string `gorm:"type:varchar(20)"`
	SSL             *string `gorm:"column:ssl;type:varchar(60)"`
	ChassisProvider *string `gorm:"type:varchar(60)"`
	ChassisType     *string `gorm:"type:varchar(40)"`
	PortOfLoading   *string `gorm:"type:varchar(120)"`
	PortOfDischarge *string `gorm:"type:varchar(120)"`
	BookingNumber   *string `gorm:"type:varchar(40)"`

	// Reefer group.
	TempMin         *float64
	TempMax         *float64
	IsFSMACompliant *bool

	// Tanker group.
	LiquidType *string `gorm:"type:varchar(60)"`
	IsHazmat   *bool
	UNNumber   *string `gorm:"column:un_number;type:varchar(10)"`

	// Flatbed group.
	TarpRequired   *bool
	OversizePermit *string `gorm:"type:varchar(40)"`

	// Dry van group.
	SealNumber *string `gorm:"type:varchar(40)"`

	Rate  decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	Miles float64         `gorm:"not null;default:0"`

	Status            string `gorm:"type:varchar(20);not null;default:'pending';index"`
	IsMultiDriverLoad bool   `gorm:"not null;default:false"`
	DispatchStatus    string `gorm:"type:varchar(20);not null;default:'planning'"`

	AssignedDriverID *uuid.UUID `gorm:"type:uuid"`
	AssignedTruckID  *uuid.UUID `gorm:"type:uuid"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Load) TableName() string {
	return "loads"
}

// DispatchLeg is one atomic move within a load. LegOrder values per load
// form a contiguous sequence starting at 1; they are never reordered after
// creation.
type DispatchLeg struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID uuid.UUID `gorm:"type:uuid;not null;index"`
	LoadID    uuid.UUID `gorm:"type:uuid;not null;index"`

	LegOrder   int    `gorm:"not null"`
	ActionType string `gorm:"type:varchar(10);not null"`
	Location   string `gorm:"type:varchar(255);not null"`

	DriverID uuid.UUID  `gorm:"type:uuid;not null;index"`
	TruckID  *uuid.UUID `gorm:"type:uuid"`

	ScheduledDate *time.Time `gorm:"type:date;index"`
	ETA           *time.Time `gorm:"column:eta"`
	ETD           *time.Time `gorm:"column:etd"`

	ActualArrival   *time.Time
	ActualDeparture *time.Time

	Completed bool `gorm:"not null;default:false"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (DispatchLeg) TableName() string {
	return "dispatch_legs"
}

// LoadAssignment links one driver to one load, one row per unique driver
// appearing across the load's legs.
type LoadAssignment struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID uuid.UUID `gorm:"type:uuid;not null;index"`
	LoadID    uuid.UUID `gorm:"type:uuid;not null;index"`
	DriverID  uuid.UUID `gorm:"type:uuid;not null;index"`

	Status string `gorm:"type:varchar(20);not null;default:'assigned'"`
	Notes  string `gorm:"type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (LoadAssignment) TableName() string {
	return "load_assignments"
}

// legalTransitions encodes the load status machine. Terminal statuses have
// no outgoing edges.
var legalTransitions = map[string][]string{
	LoadStatusPending:    {LoadStatusDispatched, LoadStatusCancelled},
	LoadStatusDispatched: {LoadStatusInTransit, LoadStatusCancelled},
	LoadStatusInTransit:  {LoadStatusDelivered, LoadStatusCancelled},
	LoadStatusDelivered:  {},
	LoadStatusCancelled:  {},
}

func canTransition(from, to string) bool {
	for _, next := range legalTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

func validTrailerType(t string) bool {
	switch t {
	case TrailerTypeContainer, TrailerTypeReefer, TrailerTypeTanker, TrailerTypeFlatbed, TrailerTypeDryVan:
		return true
	}
	return false
}
