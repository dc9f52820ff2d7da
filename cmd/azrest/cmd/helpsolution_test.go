package cmd

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/yaroslav/azrest/models"
	"github.com/yaroslav/azrest/services/help"
)

func TestSolutionMarkdown(t *testing.T) {
	tests := []struct {
		name     string
		solution *help.SolutionResource
		want     string
	}{
		{
			name: "title content and sections",
			solution: &help.SolutionResource{
				Name: models.Ptr("sol-1"),
				Properties: &help.SolutionResourceProperties{
					Title:   models.Ptr("High CPU"),
					Content: models.Ptr("Check the hot keys.\n"),
					Sections: []help.Section{
						{Title: models.Ptr("Scale out"), Content: models.Ptr("Add shards.")},
						{Content: models.Ptr("Untitled notes.")},
					},
				},
			},
			want: "# High CPU\n\nCheck the hot keys.\n\n## Scale out\n\nAdd shards.\n\nUntitled notes.\n\n",
		},
		{
			name:     "falls back to the name",
			solution: &help.SolutionResource{Name: models.Ptr("sol-2")},
			want:     "# sol-2\n\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, solutionMarkdown(tt.solution)); diff != "" {
				t.Errorf("solutionMarkdown() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
