package dispatch

type DispatchLegInput struct {
	ActionType    string `json:"action_type" binding:"required,oneof=pickup dropoff move return"`
	Location      string `json:"location" binding:"required"`
	DriverID      string `json:"driver_id" binding:"required,uuid"`
	TruckID       string `json:"truck_id" binding:"omitempty,uuid"`
	ScheduledDate string `json:"scheduled_date"`
	ETA           string `json:"eta"`
	ETD           string `json:"etd"`
}

type CreateLoadRequest struct {
	CustomerName string `json:"customer_name" binding:"required"`
	CustomerRef  string `json:"customer_ref"`

	PickupLocation   string `json:"pickup_location" binding:"required"`
	PickupDate       string `json:"pickup_date"`
	DeliveryLocation string `json:"delivery_location" binding:"required"`
	DeliveryDate     string `json:"delivery_date"`

	Commodity string  `json:"commodity"`
	Weight    float64 `json:"weight" binding:"omitempty,gte=0"`
	Pieces    int     `json:"pieces" binding:"omitempty,gte=0"`

	TrailerType string `json:"trailer_type" binding:"required,oneof=container reefer tanker flatbed dry_van"`

	ContainerNumber *string `json:"container_number"`
	SSL             *string `json:"ssl"`
	ChassisProvider *string `json:"chassis_provider"`
	ChassisType     *string `json:"chassis_type"`
	PortOfLoading   *string `json:"port_of_loading"`
	PortOfDischarge *string `json:"port_of_discharge"`
	BookingNumber   *string `json:"booking_number"`

	TempMin         *float64 `json:"temp_min"`
	TempMax         *float64 `json:"temp_max"`
	IsFSMACompliant *bool    `json:"is_fsma_compliant"`

	LiquidType *string `json:"liquid_type"`
	IsHazmat   *bool   `json:"is_hazmat"`
	UNNumber   *string `json:"un_number"`

	TarpRequired   *bool   `json:"tarp_required"`
	OversizePermit *string `json:"oversize_permit"`

	SealNumber *string `json:"seal_number"`

	Rate  string  `json:"rate"`
	Miles float64 `json:"miles" binding:"omitempty,gte=0"`

	IsMultiDriverLoad bool               `json:"is_multi_driver_load"`
	DispatchLegs      []DispatchLegInput `json:"dispatch_legs" binding:"omitempty,dive"`

	AssignedDriverID string `json:"assigned_driver_id" binding:"omitempty,uuid"`
	AssignedTruckID  string `json:"assigned_truck_id" binding:"omitempty,uuid"`
}

type UpdateLoadStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending dispatched in_transit delivered cancelled"`
}

type DispatchLegResponse struct {
	ID              string  `json:"id"`
	LoadID          string  `json:"load_id"`
	LegOrder        int     `json:"leg_order"`
	ActionType      string  `json:"action_type"`
	Location        string  `json:"location"`
	DriverID        string  `json:"driver_id"`
	TruckID         *string `json:"truck_id,omitempty"`
	ScheduledDate   *string `json:"scheduled_date,omitempty"`
	ETA             *string `json:"eta,omitempty"`
	ETD             *string `json:"etd,omitempty"`
	ActualArrival   *string `json:"actual_arrival,omitempty"`
	ActualDeparture *string `json:"actual_departure,omitempty"`
	Completed       bool    `json:"completed"`
}

type LoadAssignmentResponse struct {
	ID       string `json:"id"`
	LoadID   string `json:"load_id"`
	DriverID string `json:"driver_id"`
	Status   string `json:"status"`
	Notes    string `json:"notes,omitempty"`
}

type LoadResponse struct {
	ID         string `json:"id"`
	CompanyID  string `json:"company_id"`
	LoadNumber string `json:"load_number"`

	CustomerName string `json:"customer_name"`
	CustomerRef  string `json:"customer_ref,omitempty"`

	PickupLocation   string  `json:"pickup_location"`
	PickupDate       *string `json:"pickup_date,omitempty"`
	DeliveryLocation string  `json:"delivery_location"`
	DeliveryDate     *string `json:"delivery_date,omitempty"`

	Commodity string  `json:"commodity,omitempty"`
	Weight    float64 `json:"weight"`
	Pieces    int     `json:"pieces"`

	TrailerType string `json:"trailer_type"`

	ContainerNumber *string `json:"container_number,omitempty"`
	SSL             *string `json:"ssl,omitempty"`
	ChassisProvider *string `json:"chassis_provider,omitempty"`
	ChassisType     *string `json:"chassis_type,omitempty"`
	PortOfLoading   *string `json:"port_of_loading,omitempty"`
	PortOfDischarge *string `json:"port_of_discharge,omitempty"`
	BookingNumber   *string `json:"booking_number,omitempty"`

	TempMin         *float64 `json:"temp_min,omitempty"`
	TempMax         *float64 `json:"temp_max,omitempty"`
	IsFSMACompliant *bool    `json:"is_fsma_compliant,omitempty"`

	LiquidType *string `json:"liquid_type,omitempty"`
	IsHazmat   *bool   `json:"is_hazmat,omitempty"`
	UNNumber   *string `json:"un_number,omitempty"`

	TarpRequired   *bool   `json:"tarp_required,omitempty"`
	OversizePermit *string `json:"oversize_permit,omitempty"`

	SealNumber *string `json:"seal_number,omitempty"`

	Rate  string  `json:"rate"`
	Miles float64 `json:"miles"`

	Status            string `json:"status"`
	IsMultiDriverLoad bool   `json:"is_multi_driver_load"`
	DispatchStatus    string `json:"dispatch_status"`

	AssignedDriverID *string `json:"assigned_driver_id,omitempty"`
	AssignedTruckID  *string `json:"assigned_truck_id,omitempty"`

	DispatchLegs []DispatchLegResponse    `json:"dispatch_legs,omitempty"`
	Assignments  []LoadAssignmentResponse `json:"assignments,omitempty"`
}

type CalendarEntryResponse struct {
	LegID         string  `json:"leg_id"`
	LoadID        string  `json:"load_id"`
	LoadNumber    string  `json:"load_number"`
	LegOrder      int     `json:"leg_order"`
	ActionType    string  `json:"action_type"`
	Location      string  `json:"location"`
	ScheduledDate *string `json:"scheduled_date,omitempty"`
	ETA           *string `json:"eta,omitempty"`
	Completed     bool    `json:"completed"`
	DriverID      string  `json:"driver_id"`
	DriverName    string  `json:"driver_name"`
	TruckID       *string `json:"truck_id,omitempty"`
	TruckUnit     *string `json:"truck_unit,omitempty"`
	CustomerName  string  `json:"customer_name"`
}

type DriverMobileLegResponse struct {
	LegID            string  `json:"leg_id"`
	LegOrder         int     `json:"leg_order"`
	ActionType       string  `json:"action_type"`
	Location         string  `json:"location"`
	ScheduledDate    *string `json:"scheduled_date,omitempty"`
	ETA              *string `json:"eta,omitempty"`
	LoadID           string  `json:"load_id"`
	LoadNumber       string  `json:"load_number"`
	CustomerName     string  `json:"customer_name"`
	PickupLocation   string  `json:"pickup_location"`
	DeliveryLocation string  `json:"delivery_location"`
	Commodity        string  `json:"commodity,omitempty"`
	LoadStatus       string  `json:"load_status"`
}
