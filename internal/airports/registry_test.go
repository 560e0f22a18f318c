package airports

import (
	"strings"
	"testing"

	"github.com/abrshewube/Google-Flights-Clone/internal/domain/models"
)

func TestDefault_AllCodesValidInAnyCase(t *testing.T) {
	r := Default()
	all := r.All()
	if len(all) != 15 {
		t.Fatalf("unexpected airports count: got %d want 15", len(all))
	}
	for _, a := range all {
		code := string(a.Code)
		for _, variant := range []string{code, strings.ToLower(code), strings.ToUpper(code[:1]) + strings.ToLower(code[1:])} {
			if !r.IsValid(variant) {
				t.Fatalf("expected %q to be valid", variant)
			}
		}
	}
}

func TestIsValid_RejectsUnknownAndMalformed(t *testing.T) {
	for _, code := range []string{"", "JF", "JFKX", "XXX", "abc", " JFK", "JFK "} {
		if IsValid(code) {
			t.Fatalf("expected %q to be invalid", code)
		}
	}
}

func TestLookup(t *testing.T) {
	name, ok := Lookup("lhr")
	if !ok || name != "London Heathrow" {
		t.Fatalf("unexpected lookup result: %q %v", name, ok)
	}
	if _, ok := Lookup("ZZZ"); ok {
		t.Fatal("expected ZZZ to be absent")
	}
}

func TestAll_SortedByCode(t *testing.T) {
	all := Default().All()
	for i := 1; i < len(all); i++ {
		if all[i-1].Code >= all[i].Code {
			t.Fatalf("airports not sorted: %s before %s", all[i-1].Code, all[i].Code)
		}
	}
	all[0].Name = "mutated"
	if Default().All()[0].Name == "mutated" {
		t.Fatal("All must return a copy")
	}
}

func TestNew_RejectsBadTable(t *testing.T) {
	if _, err := New([]models.Airport{{Code: "JFKK", Name: "x"}}); err == nil {
		t.Fatal("expected error for 4-letter code")
	}
	if _, err := New([]models.Airport{{Code: "JFK"}, {Code: "jfk"}}); err == nil {
		t.Fatal("expected error for duplicate code")
	}
}

func TestParse_InvalidYAML(t *testing.T) {
	if _, err := Parse([]byte("airports: [")); err == nil {
		t.Fatal("expected decode error")
	}
}
