package engine

import (
	"math"
	"testing"
)

// TestBodyFatMale verifies the male tape-method formula against a worked
// example: waist 85, neck 38, height 175 gives roughly 23.5 percent.
func TestBodyFatMale(t *testing.T) {
	bf, ok := BodyFatPercent(GenderMale, 85, 38, 175, 0)
	if !ok {
		t.Fatal("estimate not available for valid male measurements")
	}
	if math.Abs(bf-23.47) > 0.05 {
		t.Errorf("body fat = %v, want ≈ 23.47", bf)
	}
	if got := BodyFatCategory(GenderMale, bf); got != "Average" {
		t.Errorf("category = %q, want Average", got)
	}
}

// TestBodyFatFemale verifies the female formula includes the hip girth.
func TestBodyFatFemale(t *testing.T) {
	bf, ok := BodyFatPercent(GenderFemale, 75, 33, 165, 95)
	if !ok {
		t.Fatal("estimate not available for valid female measurements")
	}
	want := 163.205*math.Log10(75+95-33) - 97.684*math.Log10(165) - 78.387
	if math.Abs(bf-want) > 1e-9 {
		t.Errorf("body fat = %v, want %v", bf, want)
	}
}

// TestBodyFatRejectsImpossibleGirths verifies the logarithm guards.
func TestBodyFatRejectsImpossibleGirths(t *testing.T) {
	cases := []struct {
		name                      string
		gender                    string
		waist, neck, height, hips float64
	}{
		{"male waist equal to neck", GenderMale, 38, 38, 175, 0},
		{"male waist below neck", GenderMale, 35, 38, 175, 0},
		{"female missing hips", GenderFemale, 75, 33, 165, 0},
		{"female girth sum below neck", GenderFemale, 10, 38, 165, 20},
		{"zero waist", GenderMale, 0, 38, 175, 0},
		{"zero height", GenderMale, 85, 38, 0, 0},
		{"zero neck", GenderMale, 85, 0, 175, 0},
	}
	for _, c := range cases {
		if _, ok := BodyFatPercent(c.gender, c.waist, c.neck, c.height, c.hips); ok {
			t.Errorf("%s: got an estimate, want none", c.name)
		}
	}
}

// TestBodyFatCategories spot-checks the band edges for both genders.
func TestBodyFatCategories(t *testing.T) {
	cases := []struct {
		gender string
		bf     float64
		want   string
	}{
		{GenderMale, 5, "Essential Fat"},
		{GenderMale, 6, "Athletic"},
		{GenderMale, 14, "Fitness"},
		{GenderMale, 18, "Average"},
		{GenderMale, 25, "Obese"},
		{GenderFemale, 13, "Essential Fat"},
		{GenderFemale, 14, "Athletic"},
		{GenderFemale, 21, "Fitness"},
		{GenderFemale, 25, "Average"},
		{GenderFemale, 32, "Obese"},
	}
	for _, c := range cases {
		if got := BodyFatCategory(c.gender, c.bf); got != c.want {
			t.Errorf("BodyFatCategory(%s, %v) = %q, want %q", c.gender, c.bf, got, c.want)
		}
	}
}

func TestRoundTenth(t *testing.T) {
	if got := RoundTenth(23.472); got != 23.5 {
		t.Errorf("RoundTenth(23.472) = %v, want 23.5", got)
	}
	if got := RoundTenth(80.04); got != 80.0 {
		t.Errorf("RoundTenth(80.04) = %v, want 80", got)
	}
}
