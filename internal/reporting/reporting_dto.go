package reporting

// LaneStat is one "pickup → delivery" revenue bucket.
type LaneStat struct {
	Lane      string `json:"lane"`
	LoadCount int    `json:"load_count"`
	Revenue   string `json:"revenue"`
}

// MonthStat is one YYYY-MM revenue bucket.
type MonthStat struct {
	Month     string `json:"month"`
	LoadCount int    `json:"load_count"`
	Revenue   string `json:"revenue"`
}

type DriverStat struct {
	DriverID   string `json:"driver_id"`
	DriverName string `json:"driver_name"`
	LoadCount  int    `json:"load_count"`
	Revenue    string `json:"revenue"`
}

type RevenueSummaryResponse struct {
	StartDate      string       `json:"start_date"`
	EndDate        string       `json:"end_date"`
	TotalLoads     int          `json:"total_loads"`
	TotalRevenue   string       `json:"total_revenue"`
	TotalMiles     float64      `json:"total_miles"`
	RevenuePerMile string       `json:"revenue_per_mile"`
	TopLanes       []LaneStat   `json:"top_lanes"`
	MonthlyTrend   []MonthStat  `json:"monthly_trend"`
	TopDrivers     []DriverStat `json:"top_drivers"`
}

// KPIScoresResponse carries 0-100 health scores for the dashboard gauges.
type KPIScoresResponse struct {
	Profitability float64 `json:"profitability"`
	Utilization   float64 `json:"utilization"`
	Efficiency    float64 `json:"efficiency"`
	Overall       float64 `json:"overall"`

	MarginPercent  string `json:"margin_percent"`
	DeliveredLoads int64  `json:"delivered_loads"`
	TotalLoads     int64  `json:"total_loads"`
}
