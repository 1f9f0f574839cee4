package rational

import (
	"errors"
	"math/big"
	"testing"
)

func TestParse(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			s    string
			want string
		}{
			// Integer notation
			{"123", "123/1"},
			{"-4", "-4/1"},
			{"+7", "7/1"},
			{"0", "0/1"},
			{"  42  ", "42/1"},
			// Fraction notation
			{"7/2", "7/2"},
			{"-6/8", "-3/4"},
			{"+3/9", "1/3"},
			{"0/5", "0/1"},
			{"1/0", "1/0"},
			{"-1/0", "-1/0"},
			{"0/0", "0/0"},
			// Decimal and scientific notation
			{"1.25", "5/4"},
			{"-0.5", "-1/2"},
			{"0.1", "1/10"},
			{"3.000", "3/1"},
			{"2e3", "2000/1"},
			{"2E3", "2000/1"},
			{"1e-2", "1/100"},
			{"-5e-1", "-1/2"},
			{"1.5e2", "1500/1"}, // explicit exponent alone sets the scale
			{"12e0", "12/1"},
			// Mixed-number notation
			{"3 1/2", "7/2"},
			{"-3 1/2", "-7/2"},
			{"+3 1/2", "7/2"},
			{"0 1/2", "1/2"},
			{"3\t1/2", "7/2"},
			{"12 6/8", "51/4"},
		}
		for _, tt := range tests {
			got, err := Parse(tt.s)
			if err != nil {
				t.Errorf("Parse(%q) failed: %v", tt.s, err)
				continue
			}
			if got.String() != tt.want {
				t.Errorf("Parse(%q) = %q, want %q", tt.s, got, tt.want)
			}
		}
	})

	t.Run("scientific", func(t *testing.T) {
		want := NewFromBig(big.NewInt(1234), pow10(100))
		got, err := Parse("1.234e-100")
		if err != nil {
			t.Fatalf("Parse(\"1.234e-100\") failed: %v", err)
		}
		if !got.Equal(want) {
			t.Errorf("Parse(\"1.234e-100\") = %v, want %v", got, want)
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]string{
			"empty":             "",
			"spaces":            "   ",
			"letters":           "abc",
			"missing den":       "1/",
			"missing num":       "/2",
			"signed den":        "1/-2",
			"double sign":       "--1",
			"empty exponent":    "1e",
			"dot only":          "1.",
			"leading dot":       ".5",
			"two dots":          "1.2.3",
			"mixed no space":    "3 1 / 2",
			"mixed signed frac": "3 -1/2",
			"hex":               "0x10",
			"infinity word":     "Inf",
			"nan word":          "NaN",
			"comma":             "1,5",
		}
		for name, s := range tests {
			t.Run(name, func(t *testing.T) {
				_, err := Parse(s)
				if !errors.Is(err, ErrFormat) {
					t.Errorf("Parse(%q) error = %v, want ErrFormat", s, err)
				}
			})
		}
	})
}

func TestMustParse(t *testing.T) {
	t.Run("error", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("MustParse(\"abc\") did not panic")
			}
		}()
		MustParse("abc")
	})
}

func TestTryParse(t *testing.T) {
	got, ok := TryParse("7/2")
	if !ok || got.String() != "7/2" {
		t.Errorf("TryParse(\"7/2\") = %v, %v, want 7/2, true", got, ok)
	}
	got, ok = TryParse("abc")
	if ok {
		t.Errorf("TryParse(\"abc\") ok = true, want false")
	}
	if !got.IsNaN() {
		t.Errorf("TryParse(\"abc\") = %v, want NaN sentinel", got)
	}
}

func TestParse_roundTrip(t *testing.T) {
	// Parse(x.String()) must reproduce x for every value with a canonical
	// fraction form, non-finite encodings included.
	samples := []string{
		"0/1", "1/1", "-1/1", "1/2", "-1/2", "7/2", "-123/5321",
		"617/500000", "1/0", "-1/0",
	}
	for _, s := range samples {
		x := MustParse(s)
		got, err := Parse(x.String())
		if err != nil {
			t.Errorf("Parse(%q) failed: %v", x.String(), err)
			continue
		}
		if !got.Equal(x) {
			t.Errorf("Parse(%q) = %v, want %v", x.String(), got, x)
		}
	}
}

func FuzzParse(f *testing.F) {
	f.Add("7/2")
	f.Add("-6/8")
	f.Add("1.234e-100")
	f.Add("3 1/2")
	f.Add("-0.5")
	f.Add("123")
	f.Add("1/0")
	f.Fuzz(func(t *testing.T, s string) {
		r, ok := TryParse(s)
		if !ok || r.IsNaN() {
			return
		}
		back, err := Parse(r.String())
		if err != nil {
			t.Fatalf("Parse(%q) failed after TryParse(%q): %v", r.String(), s, err)
		}
		if !back.Equal(r) {
			t.Errorf("round trip of %q: got %v, want %v", s, back, r)
		}
	})
}
