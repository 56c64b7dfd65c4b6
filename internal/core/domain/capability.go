package domain

// NavigationItem is a single sidebar entry exposed to a role.
type NavigationItem struct {
	Label  string `json:"label"`
	Target string `json:"target"`
	Icon   string `json:"icon"`
}

// StatTemplate is a display-only dashboard metric card. The values are
// role-specific presentation defaults, not authoritative state.
type StatTemplate struct {
	Title    string `json:"title"`
	Value    string `json:"value"`
	Change   string `json:"change"`
	Icon     string `json:"icon"`
	Positive bool   `json:"positive"`
}

// ActivityTemplate is a display-only recent-activity line for a role.
type ActivityTemplate struct {
	Title       string `json:"title"`
	TimeAgo     string `json:"time_ago"`
	Description string `json:"description"`
}

// CapabilityProfile bundles everything derived from a role: navigation,
// the permitted appointment taxonomy, and dashboard templates.
type CapabilityProfile struct {
	Role              Role               `json:"role"`
	NavigationItems   []NavigationItem   `json:"navigation_items"`
	AppointmentTypes  []string           `json:"appointment_types"`
	StatTemplates     []StatTemplate     `json:"stat_templates"`
	ActivityTemplates []ActivityTemplate `json:"activity_templates"`
}

// AllowsType reports whether t is a permitted appointment type for the
// profile's role.
func (p CapabilityProfile) AllowsType(t string) bool {
	for _, allowed := range p.AppointmentTypes {
		if allowed == t {
			return true
		}
	}
	return false
}

// coreNavigation is shared by every role and always comes first.
var coreNavigation = []NavigationItem{
	{Label: "Dashboard", Target: "/dashboard", Icon: "layout-dashboard"},
	{Label: "Appointments", Target: "/appointments", Icon: "calendar"},
	{Label: "Clients", Target: "/clients", Icon: "users"},
	{Label: "Reports", Target: "/reports", Icon: "file-bar-chart"},
}

var roleNavigation = map[Role][]NavigationItem{
	RoleDoctor:     {{Label: "Health Records", Target: "/records", Icon: "clipboard-list"}},
	RoleTutor:      {{Label: "Classes", Target: "/classes", Icon: "clipboard-list"}},
	RoleGymTrainer: {{Label: "Workouts", Target: "/workouts", Icon: "clipboard-list"}},
	RoleBarber:     {{Label: "Services", Target: "/services", Icon: "clipboard-list"}},
}

var roleAppointmentTypes = map[Role][]string{
	RoleDoctor:     {"Consultation", "Follow-up", "Check-up", "Procedure", "Emergency"},
	RoleTutor:      {"One-on-one Session", "Group Class", "Exam Prep", "Homework Help"},
	RoleGymTrainer: {"Personal Training", "Fitness Assessment", "Nutrition Consultation", "Group Workout"},
	RoleBarber:     {"Haircut", "Beard Trim", "Shave", "Hair Coloring", "Full Service"},
}

// defaultAppointmentTypes keeps the taxonomy non-empty for unknown roles.
var defaultAppointmentTypes = []string{"Appointment"}

var roleStats = map[Role][]StatTemplate{
	RoleDoctor: {
		{Title: "Total Patients", Value: "142", Change: "+12% from last month", Icon: "users", Positive: true},
		{Title: "Appointments Today", Value: "8", Change: "2 remaining", Icon: "calendar", Positive: true},
		{Title: "Average Rating", Value: "4.8/5", Change: "+0.2 from last month", Icon: "trending-up", Positive: true},
		{Title: "Monthly Revenue", Value: "$4,250", Change: "+8.2% from last month", Icon: "dollar-sign", Positive: true},
	},
	RoleTutor: {
		{Title: "Total Students", Value: "54", Change: "+5% from last month", Icon: "users", Positive: true},
		{Title: "Classes Today", Value: "4", Change: "1 remaining", Icon: "calendar", Positive: true},
		{Title: "Average Rating", Value: "4.6/5", Change: "+0.1 from last month", Icon: "trending-up", Positive: true},
		{Title: "Monthly Revenue", Value: "$3,150", Change: "+5.7% from last month", Icon: "dollar-sign", Positive: true},
	},
	RoleGymTrainer: {
		{Title: "Active Clients", Value: "37", Change: "+3% from last month", Icon: "users", Positive: true},
		{Title: "Sessions Today", Value: "6", Change: "2 remaining", Icon: "calendar", Positive: true},
		{Title: "Client Progress", Value: "78%", Change: "+5% from last month", Icon: "trending-up", Positive: true},
		{Title: "Monthly Revenue", Value: "$3,800", Change: "+9.1% from last month", Icon: "dollar-sign", Positive: true},
	},
	RoleBarber: {
		{Title: "Clients Served", Value: "89", Change: "+7% from last month", Icon: "users", Positive: true},
		{Title: "Appointments Today", Value: "12", Change: "3 remaining", Icon: "calendar", Positive: true},
		{Title: "Average Rating", Value: "4.9/5", Change: "+0.3 from last month", Icon: "trending-up", Positive: true},
		{Title: "Daily Revenue", Value: "$450", Change: "+12.3% from yesterday", Icon: "dollar-sign", Positive: true},
	},
}

// unknownStats is the zeroed fallback shown when no role is resolved.
var unknownStats = []StatTemplate{
	{Title: "Total Clients", Value: "0", Change: "0% change", Icon: "users"},
	{Title: "Appointments", Value: "0", Change: "No change", Icon: "calendar"},
	{Title: "Performance", Value: "0%", Change: "No change", Icon: "trending-up"},
	{Title: "Revenue", Value: "$0", Change: "No change", Icon: "dollar-sign"},
}

var roleActivity = map[Role][]ActivityTemplate{
	RoleDoctor: {
		{Title: "New appointment", TimeAgo: "10 minutes ago", Description: "Sarah Johnson scheduled for a consultation"},
		{Title: "Prescription updated", TimeAgo: "1 hour ago", Description: "Updated prescription for Michael Brown"},
		{Title: "Payment received", TimeAgo: "3 hours ago", Description: "Payment of $150 from David Wilson"},
	},
	RoleTutor: {
		{Title: "New student enrolled", TimeAgo: "20 minutes ago", Description: "Emily White joined your Math class"},
		{Title: "Class rescheduled", TimeAgo: "2 hours ago", Description: "Physics class moved to 4PM tomorrow"},
		{Title: "Homework submitted", TimeAgo: "5 hours ago", Description: "12 students submitted the algebra assignment"},
	},
	RoleGymTrainer: {
		{Title: "New client signed up", TimeAgo: "30 minutes ago", Description: "Jason Miller purchased a 3-month plan"},
		{Title: "Workout complete", TimeAgo: "1 hour ago", Description: "Lisa Thompson completed today's workout"},
		{Title: "Goal achieved", TimeAgo: "4 hours ago", Description: "Mark Davis reached his weight loss goal"},
	},
	RoleBarber: {
		{Title: "New appointment", TimeAgo: "15 minutes ago", Description: "Daniel Garcia booked for a haircut at 3PM"},
		{Title: "Service completed", TimeAgo: "45 minutes ago", Description: "Haircut and beard trim for Chris Evans"},
		{Title: "Feedback received", TimeAgo: "2 hours ago", Description: "Robert Williams left a 5-star review"},
	},
}

// Capabilities resolves a role to its profile. It is a total, pure
// function: every input yields a valid profile, identical inputs yield
// structurally equal profiles, and each call returns fresh copies so
// callers can never corrupt the lookup tables.
func Capabilities(role Role) CapabilityProfile {
	role = ParseRole(string(role))

	nav := make([]NavigationItem, 0, len(coreNavigation)+1)
	nav = append(nav, coreNavigation...)
	nav = append(nav, roleNavigation[role]...)

	types, ok := roleAppointmentTypes[role]
	if !ok {
		types = defaultAppointmentTypes
	}

	stats, ok := roleStats[role]
	if !ok {
		stats = unknownStats
	}

	return CapabilityProfile{
		Role:              role,
		NavigationItems:   nav,
		AppointmentTypes:  append([]string(nil), types...),
		StatTemplates:     append([]StatTemplate(nil), stats...),
		ActivityTemplates: append([]ActivityTemplate(nil), roleActivity[role]...),
	}
}
