// Package quiz models interview quiz assessments and how the review list
// pages through them.
package quiz

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"

	"github.com/abhisek/proprep/internal/store"
)

// PageSize is how many assessments the review list shows before
// "view more" is toggled.
const PageSize = 3

// DateLayout renders CreatedAt on assessment cards.
const DateLayout = "Jan 02, 2006 15:04"

// QuestionResult is one answered question.
type QuestionResult struct {
	Question    string `json:"question" yaml:"question"`
	Answer      string `json:"answer" yaml:"answer"`
	UserAnswer  string `json:"userAnswer" yaml:"userAnswer"`
	IsCorrect   bool   `json:"isCorrect" yaml:"isCorrect"`
	Explanation string `json:"explanation" yaml:"explanation"`
}

// Assessment is a completed interview quiz.
type Assessment struct {
	ID             string           `json:"id" yaml:"id"`
	Category       string           `json:"category" yaml:"category"`
	QuizScore      float64          `json:"quizScore" yaml:"quizScore"`
	CreatedAt      time.Time        `json:"createdAt" yaml:"createdAt"`
	ImprovementTip string           `json:"improvementTip" yaml:"improvementTip"`
	Questions      []QuestionResult `json:"questions" yaml:"questions"`
}

// Correct returns how many questions were answered correctly.
func (a *Assessment) Correct() int {
	n := 0
	for _, q := range a.Questions {
		if q.IsCorrect {
			n++
		}
	}
	return n
}

// FormatScore renders the score as "82.5%".
func (a *Assessment) FormatScore() string {
	return fmt.Sprintf("%.1f%%", a.QuizScore)
}

// FormatDate renders CreatedAt with DateLayout.
func (a *Assessment) FormatDate() string {
	return a.CreatedAt.Format(DateLayout)
}

// Validate reports every problem with the assessment at once.
func (a *Assessment) Validate() error {
	var result *multierror.Error

	if a.QuizScore < 0 || a.QuizScore > 100 {
		result = multierror.Append(result, fmt.Errorf("quiz score %.1f is outside 0..100", a.QuizScore))
	}
	if a.CreatedAt.IsZero() {
		result = multierror.Append(result, fmt.Errorf("createdAt is required"))
	}
	for i, q := range a.Questions {
		if strings.TrimSpace(q.Question) == "" {
			result = multierror.Append(result, fmt.Errorf("question %d: text is required", i+1))
		}
	}

	return result.ErrorOrNil()
}

// Visible returns the assessments the list shows: the first PageSize
// unless showAll is set. Assessments are expected newest first.
func Visible(all []Assessment, showAll bool) []Assessment {
	if showAll || len(all) <= PageSize {
		return all
	}
	return all[:PageSize]
}

// HasMore reports whether the "view more" toggle should be offered.
func HasMore(all []Assessment) bool {
	return len(all) > PageSize
}

// importFile is the on-disk shape of an import: either a list under
// "assessments" or a single assessment document.
type importFile struct {
	Assessments []Assessment `json:"assessments" yaml:"assessments"`
}

// LoadFile reads assessments from a .json, .yaml or .yml file. Missing IDs
// are filled with random UUIDs.
func LoadFile(path string) ([]Assessment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	unmarshal := yaml.Unmarshal
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		unmarshal = json.Unmarshal
	}

	var f importFile
	if err := unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(f.Assessments) == 0 {
		var single Assessment
		if err := unmarshal(data, &single); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		f.Assessments = []Assessment{single}
	}

	var result *multierror.Error
	for i := range f.Assessments {
		a := &f.Assessments[i]
		if a.ID == "" {
			a.ID = uuid.NewString()
		}
		if err := a.Validate(); err != nil {
			result = multierror.Append(result, fmt.Errorf("assessment %d: %w", i+1, err))
		}
	}
	if err := result.ErrorOrNil(); err != nil {
		return nil, fmt.Errorf("invalid assessments in %s: %w", path, err)
	}
	return f.Assessments, nil
}

// ToRecord encodes the assessment for storage.
func (a *Assessment) ToRecord() (*store.AssessmentRecord, error) {
	payload, err := json.Marshal(a)
	if err != nil {
		return nil, fmt.Errorf("marshal assessment: %w", err)
	}
	return &store.AssessmentRecord{
		ID:        a.ID,
		Category:  a.Category,
		Score:     a.QuizScore,
		CreatedAt: a.CreatedAt,
		Payload:   payload,
	}, nil
}

// FromRecords decodes stored assessments, preserving order.
func FromRecords(recs []store.AssessmentRecord) ([]Assessment, error) {
	out := make([]Assessment, 0, len(recs))
	for _, rec := range recs {
		var a Assessment
		if err := json.Unmarshal(rec.Payload, &a); err != nil {
			return nil, fmt.Errorf("unmarshal assessment %s: %w", rec.ID, err)
		}
		out = append(out, a)
	}
	return out, nil
}
