package icons

import (
	"reflect"
	"testing"
)

func TestSlugVariants(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{
			name:  "simple name",
			query: "python",
			want:  []string{"python"},
		},
		{
			name:  "uppercase is lowered",
			query: "Docker",
			want:  []string{"docker"},
		},
		{
			name:  "whole query substitution first",
			query: "js",
			want:  []string{"javascript", "js"},
		},
		{
			name:  "k8s substitution",
			query: "k8s",
			want:  []string{"kubernetes", "k8s"},
		},
		{
			name:  "dot kept as dot in dotted form",
			query: "node.js",
			want:  []string{"nodejs", "nodedotjs"},
		},
		{
			name:  "js suffix derives dotjs form",
			query: "nodejs",
			want:  []string{"nodejs", "nodedotjs"},
		},
		{
			name:  "plus is spelled out",
			query: "c++",
			want:  []string{"cplusplus"},
		},
		{
			name:  "sharp is spelled out",
			query: "c#",
			want:  []string{"csharp"},
		},
		{
			name:  "spaces are stripped",
			query: "visual studio",
			want:  []string{"visualstudio"},
		},
		{
			name:  "empty query",
			query: "",
			want:  nil,
		},
		{
			name:  "symbols only",
			query: "!!!",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := slugVariants(tt.query)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("slugVariants(%q) = %v, want %v", tt.query, got, tt.want)
			}
		})
	}
}

func TestSlugVariants_Capped(t *testing.T) {
	for _, query := range []string{"js", "node.js", "k8s", "c++ builder.js"} {
		got := slugVariants(query)
		if len(got) > maxSlugVariants {
			t.Errorf("slugVariants(%q) returned %d variants, cap is %d", query, len(got), maxSlugVariants)
		}
	}
}

func TestSlugVariants_NoDuplicates(t *testing.T) {
	for _, query := range []string{"go", "golang", "javascript", "node.js"} {
		got := slugVariants(query)
		seen := make(map[string]bool)
		for _, v := range got {
			if seen[v] {
				t.Errorf("slugVariants(%q) contains duplicate %q", query, v)
			}
			seen[v] = true
		}
	}
}
