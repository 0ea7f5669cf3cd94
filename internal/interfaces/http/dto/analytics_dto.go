package dto

// OverviewQuery binds the overview report window parameters.
type OverviewQuery struct {
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
}

// RevenueTrendQuery binds the revenue trend parameters.
type RevenueTrendQuery struct {
	Period    string `form:"period" binding:"omitempty,oneof=day week month year"`
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
}

// OrderTrendsQuery binds the order trend parameters.
type OrderTrendsQuery struct {
	Period string `form:"period" binding:"omitempty,oneof=day hour"`
	Days   int    `form:"days" binding:"omitempty,min=1,max=365"`
}

// TopPerformersQuery binds the leaderboard parameters. Type is validated in
// the service so an unknown value surfaces the documented message.
type TopPerformersQuery struct {
	Type      string `form:"type"`
	Limit     int    `form:"limit" binding:"omitempty,min=1,max=100"`
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
}
