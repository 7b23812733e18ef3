package utils

import "testing"

func TestRecommendHourlyCarbs(t *testing.T) {
	tests := []struct {
		name     string
		duration int
		want     float64
		wantErr  bool
	}{
		{"one hour", 3600, 30, false},
		{"two hours", 7200, 60, false},
		{"three hours", 10800, 90, false},
		{"ultra", 6 * 3600, 110, false},
		{"zero duration", 0, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RecommendHourlyCarbs(tt.duration)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error but got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("carbs = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRecommendHourlyFluidMl(t *testing.T) {
	if got := RecommendHourlyFluidMl(0); got != 600 {
		t.Errorf("default fluid = %v, want 600", got)
	}
	if got := RecommendHourlyFluidMl(70); got != 560 {
		t.Errorf("70kg fluid = %v, want 560", got)
	}
	if got := RecommendHourlyFluidMl(200); got != 1000 {
		t.Errorf("fluid not capped: %v", got)
	}
	if got := RecommendHourlyFluidMl(20); got != 400 {
		t.Errorf("fluid below floor: %v", got)
	}
}
