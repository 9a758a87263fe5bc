// Package market models the AI-derived industry insights shown on the
// dashboard.
package market

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"

	"github.com/abhisek/proprep/internal/store"
)

// SalaryRange is the pay band of one role, in USD per year.
type SalaryRange struct {
	Role     string  `json:"role" yaml:"role"`
	Min      float64 `json:"min" yaml:"min"`
	Max      float64 `json:"max" yaml:"max"`
	Median   float64 `json:"median" yaml:"median"`
	Location string  `json:"location" yaml:"location"`
}

// IndustryInsight is a market snapshot of one industry.
type IndustryInsight struct {
	Industry          string        `json:"industry" yaml:"industry"`
	MarketOutlook     MarketOutlook `json:"marketOutlook" yaml:"marketOutlook"`
	GrowthRate        float64       `json:"growthRate" yaml:"growthRate"`
	DemandLevel       DemandLevel   `json:"demandLevel" yaml:"demandLevel"`
	TopSkills         []string      `json:"topSkills" yaml:"topSkills"`
	SalaryRanges      []SalaryRange `json:"salaryRanges" yaml:"salaryRanges"`
	KeyTrends         []string      `json:"keyTrends" yaml:"keyTrends"`
	RecommendedSkills []string      `json:"recommendedSkills" yaml:"recommendedSkills"`
	LastUpdated       time.Time     `json:"lastUpdated" yaml:"lastUpdated"`
	NextUpdate        time.Time     `json:"nextUpdate" yaml:"nextUpdate"`
}

// Validate reports every problem with the insight at once.
func (in *IndustryInsight) Validate() error {
	var result *multierror.Error

	if strings.TrimSpace(in.Industry) == "" {
		result = multierror.Append(result, fmt.Errorf("industry is required"))
	}
	if in.GrowthRate < 0 || in.GrowthRate > 100 {
		result = multierror.Append(result, fmt.Errorf("growth rate %.1f is outside 0..100", in.GrowthRate))
	}
	for i, r := range in.SalaryRanges {
		if strings.TrimSpace(r.Role) == "" {
			result = multierror.Append(result, fmt.Errorf("salary range %d: role is required", i))
		}
		if r.Min > r.Median || r.Median > r.Max {
			result = multierror.Append(result, fmt.Errorf("salary range %q: want min <= median <= max, got %.0f/%.0f/%.0f",
				r.Role, r.Min, r.Median, r.Max))
		}
	}

	return result.ErrorOrNil()
}

// Skills returns top and recommended skills in display order without
// duplicates.
func (in *IndustryInsight) Skills() []string {
	seen := make(map[string]bool)
	var out []string
	for _, s := range append(append([]string{}, in.TopSkills...), in.RecommendedSkills...) {
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}

// LoadFile reads an insight from a .json, .yaml or .yml file and
// validates it.
func LoadFile(path string) (*IndustryInsight, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var in IndustryInsight
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.Unmarshal(data, &in)
	default:
		err = yaml.Unmarshal(data, &in)
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	if err := in.Validate(); err != nil {
		return nil, fmt.Errorf("invalid insight in %s: %w", path, err)
	}
	return &in, nil
}

// ToRecord encodes the insight for storage.
func (in *IndustryInsight) ToRecord() (*store.MarketRecord, error) {
	payload, err := json.Marshal(in)
	if err != nil {
		return nil, fmt.Errorf("marshal insight: %w", err)
	}
	return &store.MarketRecord{
		Industry:  in.Industry,
		UpdatedAt: in.LastUpdated,
		Payload:   payload,
	}, nil
}

// FromRecord decodes a stored insight.
func FromRecord(rec *store.MarketRecord) (*IndustryInsight, error) {
	var in IndustryInsight
	if err := json.Unmarshal(rec.Payload, &in); err != nil {
		return nil, fmt.Errorf("unmarshal insight %d: %w", rec.ID, err)
	}
	return &in, nil
}
