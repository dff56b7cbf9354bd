package groupkey

import (
	"strings"
	"testing"
)

func TestDerive(t *testing.T) {
	d := New()

	tests := []struct {
		name     string
		question string
		option   string
		want     string
	}{
		{
			name:     "chinese department question",
			question: "科室",
			option:   "内科",
			want:     "keshi_neike",
		},
		{
			name:     "ascii passthrough",
			question: "department",
			option:   "surgery",
			want:     "department_surgery",
		},
		{
			name:     "mixed text",
			question: "科室A",
			option:   "外科",
			want:     "keshiA_waike",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := d.Derive(tt.question, tt.option); got != tt.want {
				t.Errorf("Derive(%q, %q) = %q, want %q", tt.question, tt.option, got, tt.want)
			}
		})
	}
}

func TestDeriveIsStable(t *testing.T) {
	d := New()

	first := d.Derive("您所在的科室", "急诊科")
	for i := 0; i < 10; i++ {
		if got := d.Derive("您所在的科室", "急诊科"); got != first {
			t.Fatalf("Derive() not stable: %q vs %q", got, first)
		}
	}
}

func TestQuestionPrefix(t *testing.T) {
	d := New()

	prefix := d.QuestionPrefix("科室")
	if !strings.HasSuffix(prefix, "_") {
		t.Errorf("prefix %q should end with underscore", prefix)
	}

	key := d.Derive("科室", "内科")
	if !strings.HasPrefix(key, prefix) {
		t.Errorf("key %q should start with prefix %q", key, prefix)
	}

	other := d.Derive("职称", "护士")
	if strings.HasPrefix(other, prefix) {
		t.Errorf("key %q from a different question must not match prefix %q", other, prefix)
	}
}
