package interval

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    Interval
		wantErr error
	}{
		{"P1D", Interval{Days: 1}, nil},
		{"PT2H30M", Interval{Hours: 2, Minutes: 30}, nil},
		{"P2DT4H", Interval{Days: 2, Hours: 4}, nil},
		{"P1W", Interval{Days: 7}, nil},
		{"P1W2DT1H", Interval{Days: 9, Hours: 1}, nil},
		{"PT45S", Interval{Seconds: 45}, nil},
		{"PT0S", Interval{}, nil},
		{"", Interval{}, ErrInvalidFormat},
		{"P", Interval{}, ErrInvalidFormat},
		{"PT", Interval{}, ErrInvalidFormat},
		{"1D", Interval{}, ErrInvalidFormat},
		{"P1H", Interval{}, ErrInvalidFormat},
		{"P1Y", Interval{}, ErrCalendarUnits},
		{"P3M", Interval{}, ErrCalendarUnits},
		{"P1MT2H", Interval{}, ErrCalendarUnits},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Parse(%q) error = %v, want %v", tt.in, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		iv   Interval
		want string
	}{
		{Interval{Days: 1}, "P1D"},
		{Interval{Hours: 2, Minutes: 30}, "PT2H30M"},
		{Interval{Days: 2, Hours: 4}, "P2DT4H"},
		{Interval{Seconds: 45}, "PT45S"},
		{Interval{}, "PT0S"},
	}
	for _, tt := range tests {
		if got := tt.iv.String(); got != tt.want {
			t.Errorf("%+v.String() = %q, want %q", tt.iv, got, tt.want)
		}
	}
}

func TestIsZero(t *testing.T) {
	if !(Interval{}).IsZero() {
		t.Error("zero interval should report IsZero")
	}
	if (Interval{Minutes: 1}).IsZero() {
		t.Error("one minute is not zero")
	}
}

func TestScanRoundTrip(t *testing.T) {
	src := Interval{Days: 1, Hours: 6}
	v, err := src.Value()
	if err != nil {
		t.Fatal(err)
	}

	var dst Interval
	if err := dst.Scan(v); err != nil {
		t.Fatal(err)
	}
	if dst != src {
		t.Errorf("round trip = %+v, want %+v", dst, src)
	}

	if err := dst.Scan(42); err == nil {
		t.Error("scanning a non-string should fail")
	}
}
