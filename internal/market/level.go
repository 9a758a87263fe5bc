package market

import "strings"

// Hex colors shared by the descriptors.
const (
	ColorGreen  = "#22C55E"
	ColorYellow = "#EAB308"
	ColorRed    = "#EF4444"
	ColorGray   = "#6B7280"
)

// DemandLevel is how strongly the market is hiring for an industry.
type DemandLevel int

const (
	DemandUnknown DemandLevel = iota
	DemandHigh
	DemandMedium
	DemandLow
)

// DemandDescriptor is how a DemandLevel is presented.
type DemandDescriptor struct {
	Label string
	Color string
}

// ParseDemandLevel parses s case-insensitively. Anything unrecognized is
// DemandUnknown.
func ParseDemandLevel(s string) DemandLevel {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "high":
		return DemandHigh
	case "medium":
		return DemandMedium
	case "low":
		return DemandLow
	default:
		return DemandUnknown
	}
}

// Descriptor returns the presentation of d.
func (d DemandLevel) Descriptor() DemandDescriptor {
	switch d {
	case DemandHigh:
		return DemandDescriptor{Label: "High", Color: ColorGreen}
	case DemandMedium:
		return DemandDescriptor{Label: "Medium", Color: ColorYellow}
	case DemandLow:
		return DemandDescriptor{Label: "Low", Color: ColorRed}
	default:
		return DemandDescriptor{Label: "Unknown", Color: ColorGray}
	}
}

func (d DemandLevel) String() string {
	return d.Descriptor().Label
}

func (d DemandLevel) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *DemandLevel) UnmarshalText(text []byte) error {
	*d = ParseDemandLevel(string(text))
	return nil
}

// MarketOutlook is the expected direction of an industry.
type MarketOutlook int

const (
	OutlookUnknown MarketOutlook = iota
	OutlookPositive
	OutlookNeutral
	OutlookNegative
)

// OutlookDescriptor is how a MarketOutlook is presented.
type OutlookDescriptor struct {
	Label string
	Icon  string
	Color string
}

// ParseMarketOutlook parses s case-insensitively. Anything unrecognized is
// OutlookUnknown.
func ParseMarketOutlook(s string) MarketOutlook {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "positive":
		return OutlookPositive
	case "neutral":
		return OutlookNeutral
	case "negative":
		return OutlookNegative
	default:
		return OutlookUnknown
	}
}

// Descriptor returns the presentation of o.
func (o MarketOutlook) Descriptor() OutlookDescriptor {
	switch o {
	case OutlookPositive:
		return OutlookDescriptor{Label: "Positive", Icon: "▲", Color: ColorGreen}
	case OutlookNeutral:
		return OutlookDescriptor{Label: "Neutral", Icon: "◆", Color: ColorYellow}
	case OutlookNegative:
		return OutlookDescriptor{Label: "Negative", Icon: "▼", Color: ColorRed}
	default:
		return OutlookDescriptor{Label: "Unknown", Icon: "◆", Color: ColorGray}
	}
}

func (o MarketOutlook) String() string {
	return o.Descriptor().Label
}

func (o MarketOutlook) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

func (o *MarketOutlook) UnmarshalText(text []byte) error {
	*o = ParseMarketOutlook(string(text))
	return nil
}
