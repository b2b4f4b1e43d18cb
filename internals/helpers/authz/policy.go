package authz

import "officer_duty_backend/internals/constants"

type Resource string

const (
	ResOfficers        Resource = "officers"
	ResDutyAssignments Resource = "duty_assignments"
	ResAttendance      Resource = "attendance"
	ResAbsenceRequests Resource = "absence_requests"
	ResClockSettings   Resource = "clock_settings"
	ResDashboard       Resource = "dashboard"
	ResNotifications   Resource = "notifications"
)

type Action string

const (
	ActRead           Action = "read"
	ActReadOwn        Action = "read:own"
	ActReadDepartment Action = "read:department"
	ActReadHistory    Action = "read:history"
	ActCreate         Action = "create"
	ActUpdate         Action = "update"
	ActUpdateOwn      Action = "update:own"
	ActDelete         Action = "delete"
	ActClock          Action = "clock"
	ActReview         Action = "review"
	ActExport         Action = "export"
)

var policy = map[constants.Role]map[Resource][]Action{
	constants.RoleAdmin: {
		ResOfficers:        {ActRead, ActCreate, ActUpdate, ActDelete},
		ResDutyAssignments: {ActRead, ActCreate, ActUpdate, ActDelete},
		ResAttendance:      {ActRead, ActExport},
		ResAbsenceRequests: {ActRead, ActReview},
		ResClockSettings:   {ActRead, ActReadHistory, ActCreate, ActUpdate},
		ResDashboard:       {ActRead},
		ResNotifications:   {ActReadOwn, ActUpdateOwn},
	},
	constants.RoleSupervisor: {
		ResOfficers:        {ActRead, ActCreate, ActUpdate, ActDelete},
		ResDutyAssignments: {ActRead, ActCreate, ActUpdate, ActDelete},
		ResAbsenceRequests: {ActRead, ActReview},
		ResClockSettings:   {ActRead},
		ResDashboard:       {ActReadDepartment},
		ResNotifications:   {ActReadOwn, ActUpdateOwn},
	},
	constants.RoleOfficer: {
		ResOfficers:        {ActRead},
		ResDutyAssignments: {ActRead, ActReadOwn},
		ResAttendance:      {ActClock, ActReadOwn},
		ResAbsenceRequests: {ActCreate, ActReadOwn},
		ResClockSettings:   {ActRead},
		ResNotifications:   {ActReadOwn, ActUpdateOwn},
	},
}

// Allowed mengevaluasi tabel policy; role tak dikenal selalu ditolak.
func Allowed(role constants.Role, res Resource, act Action) bool {
	for _, a := range policy[role][res] {
		if a == act {
			return true
		}
	}
	return false
}
