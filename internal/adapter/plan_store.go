package adapter

import (
	"context"
	"fmt"
	"log/slog"

	"gopkg.in/yaml.v3"

	m "github.com/mrdannyclark82/MillaCore-Fusion/internal/model"
)

// PlanStore exports a consolidation plan as structured data.
type PlanStore interface {
	SavePlan(ctx context.Context, path m.Path, plan m.Plan) error
}

// YAMLPlanStore writes plans as YAML documents.
type YAMLPlanStore struct {
	fs SourceFSAdapter
}

// NewYAMLPlanStore constructs a YAMLPlanStore on top of fs.
func NewYAMLPlanStore(fs SourceFSAdapter) *YAMLPlanStore {
	return &YAMLPlanStore{fs: fs}
}

type planDocument struct {
	Total    int               `yaml:"total"`
	Packages []packageDocument `yaml:"packages"`
}

type packageDocument struct {
	Package string          `yaml:"package"`
	Entries []entryDocument `yaml:"entries"`
}

type entryDocument struct {
	Function    string   `yaml:"function"`
	Canonical   string   `yaml:"canonical"`
	Count       int      `yaml:"count"`
	Occurrences []string `yaml:"occurrences"`
}

// SavePlan overwrites path with the YAML rendering of plan.
func (s *YAMLPlanStore) SavePlan(ctx context.Context, path m.Path, plan m.Plan) error {
	data, err := EncodePlan(plan)
	if err != nil {
		return err
	}

	if err := s.fs.WriteFileAtomic(ctx, path, data, 0o644); err != nil {
		slog.Error("Failed to write plan", "path", path, "error", err)
		return fmt.Errorf("write plan %s: %w", path, err)
	}

	return nil
}

// EncodePlan renders plan as YAML.
func EncodePlan(plan m.Plan) ([]byte, error) {
	doc := planDocument{
		Total:    plan.Total(),
		Packages: make([]packageDocument, 0, len(plan.Packages)),
	}

	for _, pkg := range plan.Packages {
		pd := packageDocument{Package: string(pkg.Package)}

		for _, entry := range pkg.Entries {
			occurrences := make([]string, 0, len(entry.Occurrences))
			for _, occ := range entry.Occurrences {
				occurrences = append(occurrences, occ.String())
			}

			pd.Entries = append(pd.Entries, entryDocument{
				Function:    entry.Function,
				Canonical:   entry.Canonical.String(),
				Count:       len(entry.Occurrences),
				Occurrences: occurrences,
			})
		}

		doc.Packages = append(doc.Packages, pd)
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encode plan: %w", err)
	}

	return data, nil
}
