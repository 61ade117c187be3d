package matching

import (
	"reflect"
	"testing"
)

func TestSignificantWords(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"drops stop words", "RELIANCE INDUSTRIES LTD", []string{"RELIANCE"}},
		{"keeps digit words", "3M INDIA LTD", []string{"3M"}},
		{"drops short words", "AB CD KELLTON", []string{"KELLTON"}},
		{"all generic", "INDIA SERVICES LTD", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SignificantWords(tt.input); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SignificantWords(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestMatchCompanyName(t *testing.T) {
	tests := []struct {
		name       string
		searchName string
		text       string
		want       bool
	}{
		{
			"verbatim multi-word",
			"Larsen & Toubro Limited",
			"Larsen and Toubro wins infrastructure order",
			true,
		},
		{
			"word order ignored",
			"Alpha Beta Gamma Ltd",
			"Gamma then Beta then Alpha updates guidance",
			true,
		},
		{
			"unrelated company",
			"Kellton Tech Solutions",
			"Craftsman reported quarterly numbers",
			false,
		},
		{
			"single significant word verbatim",
			"Craftsman Automation Ltd",
			"Craftsman Automation Limited announces results",
			true,
		},
		{
			"single significant word absent",
			"Craftsman Automation Ltd",
			"Kellton Tech announces results",
			false,
		},
		{
			"digit name verbatim",
			"3M India",
			"3M India announces dividend",
			true,
		},
		{
			"digit name inside other word",
			"3M India",
			"M3M developers launch project",
			false,
		},
		{
			"no significant words needs exact",
			"India Services Ltd",
			"announcement from India Services Ltd office",
			true,
		},
		{
			"no significant words reordered",
			"India Services Ltd",
			"Services of India Ltd update",
			false,
		},
		{"empty search", "", "some text", false},
		{"empty text", "Some Company", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MatchCompanyName(tt.searchName, tt.text); got != tt.want {
				t.Errorf("MatchCompanyName(%q, %q) = %v, want %v", tt.searchName, tt.text, got, tt.want)
			}
		})
	}
}

// a name contained verbatim in the text must always match
func TestMatchCompanyName_VerbatimContainment(t *testing.T) {
	names := []string{
		"Craftsman Automation Limited",
		"Lumax Industries Ltd",
		"Union Bank of India",
	}
	for _, name := range names {
		text := "Announcement: " + name + " filed a disclosure today"
		if !MatchCompanyName(name, text) {
			t.Errorf("verbatim name %q not matched in %q", name, text)
		}
	}
}
