package dto

// DashboardStats: angka ringkasan hari ini (admin).
type DashboardStats struct {
	LateCheckInCount    int64 `json:"lateCheckInCount"`
	PresentTodayCount   int64 `json:"presentTodayCount"`
	AbsenceRequestCount int64 `json:"absenceRequestCount"`
}

// SupervisorDashboardStats: versi per departemen.
type SupervisorDashboardStats struct {
	DashboardStats
	ActiveDutyAssignmentsCount int64 `json:"activeDutyAssignmentsCount"`
	TotalOfficersCount         int64 `json:"totalOfficersCount"`
}
