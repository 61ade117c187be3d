package feeds

import (
	"testing"

	"github.com/akolanti/CatalystAPI/internal/domain/feedModel"
)

func TestRecordDate_FromPublished(t *testing.T) {
	row := feedModel.FeedRow{Published: "Mon, 13 May 2024 10:00:00 +0530"}
	date, ok := RecordDate(row)
	if !ok {
		t.Fatal("expected a date from the Published field")
	}
	if date.Year() != 2024 || date.Month() != 5 || date.Day() != 13 {
		t.Errorf("got %v, want 2024-05-13", date)
	}
}

func TestRecordDate_FallbackToDescription(t *testing.T) {
	tests := []struct {
		name        string
		description string
	}{
		{"iso style", "Board meeting held on 2024/05/13 at the registered office"},
		{"day month year", "Board meeting held on 13 May 2024 at the registered office"},
		{"month day year", "Board meeting held on May 13, 2024 at the registered office"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := feedModel.FeedRow{Published: "not a date", Description: tt.description}
			date, ok := RecordDate(row)
			if !ok {
				t.Fatal("expected a date from the description")
			}
			if date.Year() != 2024 || date.Month() != 5 || date.Day() != 13 {
				t.Errorf("got %v, want 2024-05-13", date)
			}
		})
	}
}

func TestRecordDate_NoDate(t *testing.T) {
	row := feedModel.FeedRow{Published: "", Description: "no dates to be found here"}
	if _, ok := RecordDate(row); ok {
		t.Error("expected no date")
	}
}
