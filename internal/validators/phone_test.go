package validators

import "testing"

func TestNormalizePhoneStripsMask(t *testing.T) {
	cases := map[string]string{
		"(11) 99999-0000": "11999990000",
		"11 9.9999 0000":  "11999990000",
		"+5511999990000":  "+5511999990000",
		"11999990000":     "11999990000",
	}

	for in, want := range cases {
		if got := NormalizePhone(in); got != want {
			t.Fatalf("NormalizePhone(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestIsPhoneValid(t *testing.T) {
	valid := []string{"(11) 99999-0000", "+5511999990000", "33334444"}
	for _, phone := range valid {
		if !IsPhoneValid(phone) {
			t.Fatalf("expected %q to be valid", phone)
		}
	}

	invalid := []string{"", "12", "abcdefgh", "123456789012345"}
	for _, phone := range invalid {
		if IsPhoneValid(phone) {
			t.Fatalf("expected %q to be invalid", phone)
		}
	}
}
