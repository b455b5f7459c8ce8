package models

import "testing"

func TestCategory_Valid(t *testing.T) {
	for _, c := range []Category{CategoryDoItNow, CategoryFocus, CategoryProductiveProcrastination, CategoryEasyWins} {
		if !c.Valid() {
			t.Fatalf("category %q should be valid", c)
		}
	}
	for _, c := range []Category{"", "do it now", "Urgent", "Other"} {
		if c.Valid() {
			t.Fatalf("category %q should be invalid", c)
		}
	}
}

func TestParsedTask_Valid(t *testing.T) {
	tests := []struct {
		name string
		task ParsedTask
		want bool
	}{
		{
			name: "fully valid",
			task: ParsedTask{Content: "call mom", Category: CategoryEasyWins, Urgency: UrgencyNotUrgent, EnergyLevel: EnergyLow},
			want: true,
		},
		{
			name: "empty content",
			task: ParsedTask{Content: "", Category: CategoryFocus, Urgency: UrgencyUrgent, EnergyLevel: EnergyLow},
			want: false,
		},
		{
			name: "invalid category",
			task: ParsedTask{Content: "x", Category: "Someday", Urgency: UrgencyUrgent, EnergyLevel: EnergyHigh},
			want: false,
		},
		{
			name: "invalid urgency",
			task: ParsedTask{Content: "x", Category: CategoryDoItNow, Urgency: "later", EnergyLevel: EnergyHigh},
			want: false,
		},
		{
			name: "invalid energy",
			task: ParsedTask{Content: "x", Category: CategoryDoItNow, Urgency: UrgencyUrgent, EnergyLevel: "medium"},
			want: false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.task.Valid(); got != tt.want {
				t.Fatalf("Valid() = %v, want %v", got, tt.want)
			}
		})
	}
}
