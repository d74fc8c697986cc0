package datemath

// Unit is the time unit a duration descriptor is expressed in.
type Unit string

const (
	UnitDays  Unit = "days"
	UnitHours Unit = "hours"
)

// Duration is the structured form of a duration descriptor such as
// "48 horas" or "3 días hábiles".
type Duration struct {
	Magnitude        int
	Unit             Unit
	BusinessDaysOnly bool
}

// Urgency is the traffic-light tier of a deadline.
type Urgency string

const (
	UrgencyNone     Urgency = "none"
	UrgencyCritical Urgency = "critical"
	UrgencyWarning  Urgency = "warning"
	UrgencyOnTime   Urgency = "on_time"
)

// Rank orders tiers from most to least urgent. Tiers without a deadline sort last.
func (u Urgency) Rank() int {
	switch u {
	case UrgencyCritical:
		return 0
	case UrgencyWarning:
		return 1
	case UrgencyOnTime:
		return 2
	default:
		return 3
	}
}

// Color is the indicator colour shown for the tier.
func (u Urgency) Color() string {
	switch u {
	case UrgencyCritical:
		return "red"
	case UrgencyWarning:
		return "yellow"
	case UrgencyOnTime:
		return "green"
	default:
		return ""
	}
}

// IsValid reports whether u is one of the known tiers.
func (u Urgency) IsValid() bool {
	switch u {
	case UrgencyNone, UrgencyCritical, UrgencyWarning, UrgencyOnTime:
		return true
	}
	return false
}
