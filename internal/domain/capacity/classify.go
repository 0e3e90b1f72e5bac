package capacity

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Balance thresholds in hours, compared against the exact balance.
var (
	strongDeficitThreshold = decimal.NewFromInt(-2)
	surplusThreshold       = decimal.NewFromInt(3)
)

// Recommendation texts.
const (
	MsgStaffStrongDeficit       = "assign an additional worker to the shift"
	MsgEquipmentStrongDeficit   = "consider renting additional equipment for peak days"
	MsgStaffModerateDeficit     = "use overtime hours for the current worker"
	MsgEquipmentModerateDeficit = "check maintenance schedule — equipment may be idle"
	MsgSurplus                  = "reassign the resource to another zone or shorten the shift"
)

// kindKeywords maps subtype label fragments to a resource kind.
// Entries are checked in order, so staff wins when a label matches both.
var kindKeywords = []struct {
	kind     ResourceKind
	keywords []string
}{
	{KindStaff, []string{"Приёмщик", "Грузчик", "Контролёр"}},
	{KindEquipment, []string{"Ричтрак", "Паллетоперевозчик", "Тележка"}},
}

// InferKind classifies a resource subtype label by substring match.
// Labels matching no keyword return KindUnknown.
func InferKind(subtype string) ResourceKind {
	for _, entry := range kindKeywords {
		for _, kw := range entry.keywords {
			if strings.Contains(subtype, kw) {
				return entry.kind
			}
		}
	}
	return KindUnknown
}

// severity of an imbalance.
type severity int

const (
	severityNone severity = iota
	severityStrongDeficit
	severityModerateDeficit
	severitySurplus
)

func classify(balance decimal.Decimal) severity {
	switch {
	case balance.LessThan(strongDeficitThreshold):
		return severityStrongDeficit
	case balance.IsNegative():
		return severityModerateDeficit
	case balance.GreaterThan(surplusThreshold):
		return severitySurplus
	default:
		return severityNone
	}
}

func message(sev severity, kind ResourceKind) string {
	switch sev {
	case severityStrongDeficit:
		switch kind {
		case KindStaff:
			return MsgStaffStrongDeficit
		case KindEquipment:
			return MsgEquipmentStrongDeficit
		}
	case severityModerateDeficit:
		switch kind {
		case KindStaff:
			return MsgStaffModerateDeficit
		case KindEquipment:
			return MsgEquipmentModerateDeficit
		}
	case severitySurplus:
		return MsgSurplus
	}
	return ""
}
