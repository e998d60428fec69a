package extractor

import (
	"reflect"
	"testing"
)

func TestExtractCourseCode(t *testing.T) {
	e := New()

	tests := []struct {
		name string
		text string
		want string
	}{
		{"plain code", "can I take CS116", "CS116"},
		{"spaced code", "tell me about cs 116", "CS116"},
		{"lowercase", "is math101 open", "MATH101"},
		{"remedial code", "did I need engl0099", "ENGL0099"},
		{"first code wins", "prereqs of CS222 and CS323", "CS222"},
		{"bare code with punctuation", "CS-222?", "CS222"},
		{"no code", "hello there", ""},
		{"plain word does not normalize", "graduate", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := e.ExtractCourseCode(tt.text); got != tt.want {
				t.Errorf("ExtractCourseCode(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestExtractAllCourseCodes(t *testing.T) {
	e := New()

	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "multiple codes in order",
			text: "I passed CS116 and MATH101",
			want: []string{"CS116", "MATH101"},
		},
		{
			name: "duplicates collapse",
			text: "CS116, cs 116 and CS222",
			want: []string{"CS116", "CS222"},
		},
		{
			name: "no codes",
			text: "nothing here",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.ExtractAllCourseCodes(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExtractAllCourseCodes(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestExtractTrack(t *testing.T) {
	e := New()

	tests := []struct {
		text string
		want string
	}{
		{"my track is Data Science", "Data Science"},
		{"I'm in cybersecurity", "Cybersecurity"},
		{"general track please", "General"},
		{"cyber", "Cybersecurity"},
		{"no track here", ""},
	}

	for _, tt := range tests {
		if got := e.ExtractTrack(tt.text); got != tt.want {
			t.Errorf("ExtractTrack(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestExtractInstructorQuery(t *testing.T) {
	e := New()

	tests := []struct {
		text string
		want string
	}{
		{"where is Dr. Smith", "smith"},
		{"office of prof feras", "feras"},
		{"Anas Toma", "Anas Toma"},
	}

	for _, tt := range tests {
		if got := e.ExtractInstructorQuery(tt.text); got != tt.want {
			t.Errorf("ExtractInstructorQuery(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}
