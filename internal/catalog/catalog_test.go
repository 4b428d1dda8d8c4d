package catalog

import (
	"strings"
	"testing"
)

func TestValidate_SeedLibraryPasses(t *testing.T) {
	if err := Validate(); err != nil {
		t.Fatalf("seed library validation failed: %v", err)
	}
}

func TestGet(t *testing.T) {
	c, ok := Get("led")
	if !ok {
		t.Fatal("led not found")
	}
	if c.Category != "Output" {
		t.Errorf("category = %q, want Output", c.Category)
	}
	if len(c.Quiz) < 5 {
		t.Errorf("led quiz bank = %d questions, want at least 5", len(c.Quiz))
	}

	if _, ok := Get("flux-capacitor"); ok {
		t.Error("expected unknown component to be missing")
	}
}

func TestAllReturnsCopy(t *testing.T) {
	all := All()
	if len(all) != 9 {
		t.Fatalf("len(All()) = %d, want 9", len(all))
	}
	all[0].Name = "changed"
	if got, _ := Get(all[0].ID); got.Name == "changed" {
		t.Error("All() must not expose internal storage")
	}
}

func TestQuestionBank(t *testing.T) {
	if bank := QuestionBank("nope"); bank != nil {
		t.Errorf("unknown component bank = %v, want nil", bank)
	}
	bank := QuestionBank("resistor")
	bank[0].Question = "mutated"
	if QuestionBank("resistor")[0].Question == "mutated" {
		t.Error("QuestionBank must return a copy")
	}
}

func TestByCategory(t *testing.T) {
	inputs := ByCategory("Input")
	if len(inputs) != 2 {
		t.Fatalf("Input components = %d, want 2", len(inputs))
	}
	for _, c := range inputs {
		if c.Category != "Input" {
			t.Errorf("component %q has category %q", c.ID, c.Category)
		}
	}
	cats := Categories()
	for i := 1; i < len(cats); i++ {
		if cats[i-1] >= cats[i] {
			t.Errorf("categories not sorted/unique: %v", cats)
		}
	}
}

func TestAnswer(t *testing.T) {
	q := QuizQuestion{Options: [4]string{"a", "b", "c", "d"}, CorrectIndex: 2}
	if q.Answer() != "c" {
		t.Errorf("Answer() = %q, want c", q.Answer())
	}
	q.CorrectIndex = 7
	if q.Answer() != "" {
		t.Errorf("Answer() with bad index = %q, want empty", q.Answer())
	}
}

func TestValidateComponents(t *testing.T) {
	tests := []struct {
		name string
		in   []Component
		want string
	}{
		{
			name: "duplicate id",
			in: []Component{
				{ID: "a", Difficulty: DifficultyBeginner},
				{ID: "a", Difficulty: DifficultyBeginner},
			},
			want: "duplicate component ID",
		},
		{
			name: "bad difficulty",
			in:   []Component{{ID: "a", Difficulty: "expert"}},
			want: "unknown difficulty",
		},
		{
			name: "correct index out of range",
			in: []Component{{ID: "a", Difficulty: DifficultyBeginner, Quiz: []QuizQuestion{
				{Question: "q", Options: [4]string{"1", "2", "3", "4"}, CorrectIndex: 4},
			}}},
			want: "out of range",
		},
		{
			name: "empty option",
			in: []Component{{ID: "a", Difficulty: DifficultyBeginner, Quiz: []QuizQuestion{
				{Question: "q", Options: [4]string{"1", "", "3", "4"}},
			}}},
			want: "option 1 is empty",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateComponents(tt.in)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %v, want it to mention %q", err, tt.want)
			}
		})
	}
}
