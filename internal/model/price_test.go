package model

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestParsePrice(t *testing.T) {
	tests := []struct {
		in      string
		want    Price
		wantErr bool
	}{
		{"0", 0, false},
		{"12", 1200, false},
		{"12.5", 1250, false},
		{"12.50", 1250, false},
		{"0.05", 5, false},
		{"99999999.99", MaxPrice, false},
		{"100000000", 0, true},
		{"92233720368547759", 0, true},
		{"99999999999999999999", 0, true},
		{"12.", 0, true},
		{".50", 0, true},
		{"12.505", 0, true},
		{"-1", 0, true},
		{"1,50", 0, true},
		{"abc", 0, true},
		{" 12", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := ParsePrice(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParsePrice(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if err != nil && !errors.Is(err, ErrInvalidPrice) {
			t.Errorf("ParsePrice(%q) error = %v, want ErrInvalidPrice", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParsePrice(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestPriceString(t *testing.T) {
	tests := map[Price]string{
		0:      "0.00",
		5:      "0.05",
		1250:   "12.50",
		100000: "1000.00",
	}
	for p, want := range tests {
		if got := p.String(); got != want {
			t.Errorf("Price(%d).String() = %q, want %q", int64(p), got, want)
		}
	}
}

func TestPriceScan(t *testing.T) {
	tests := []struct {
		src  any
		want Price
	}{
		{[]byte("12.50"), 1250},
		{"7.00", 700},
		{int64(12), 1200},
		{float64(12.5), 1250},
		{float64(0.1), 10},
	}

	for _, tt := range tests {
		var p Price
		if err := p.Scan(tt.src); err != nil {
			t.Errorf("Scan(%v): %v", tt.src, err)
			continue
		}
		if p != tt.want {
			t.Errorf("Scan(%v) = %d, want %d", tt.src, p, tt.want)
		}
	}

	var p Price
	if err := p.Scan(true); err == nil {
		t.Error("expected error scanning bool")
	}
	if err := p.Scan("92233720368547759"); !errors.Is(err, ErrInvalidPrice) {
		t.Errorf("expected ErrInvalidPrice for overflowing value, got %v", err)
	}
}

func TestPriceJSON(t *testing.T) {
	p := Price(1250)
	out, err := json.Marshal(struct {
		Price *Price `json:"price"`
		None  *Price `json:"none"`
	}{Price: &p})
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != `{"price":"12.50","none":null}` {
		t.Errorf("unexpected JSON: %s", out)
	}
}

func TestSummarize(t *testing.T) {
	four, two := int64(4), int64(2)
	s := Summarize([]Item{
		{Name: "a", Quantity: &four},
		{Name: "b"},
		{Name: "c", Quantity: &two},
	})
	if s.TotalItems != 3 {
		t.Errorf("expected 3 items, got %d", s.TotalItems)
	}
	if s.TotalQuantity != 6 {
		t.Errorf("expected total quantity 6, got %d", s.TotalQuantity)
	}

	if empty := Summarize(nil); empty != (Summary{}) {
		t.Errorf("expected zero summary, got %+v", empty)
	}
}
