package weather

import (
	"errors"
	"testing"
)

func TestNewTemperature(t *testing.T) {
	if _, err := NewTemperature(12.5, ""); err == nil {
		t.Error("Expected error for empty unit")
	}

	temp, err := NewTemperature(12.5, "°C")
	if err != nil {
		t.Fatalf("NewTemperature failed: %v", err)
	}

	withMin := temp.WithMin(10).WithMax(14).WithFeelsLike(11.2)
	if temp.Min != nil || temp.Max != nil || temp.FeelsLike != nil {
		t.Error("With* mutated the receiver")
	}
	if *withMin.Min != 10 || *withMin.Max != 14 || *withMin.FeelsLike != 11.2 {
		t.Errorf("Unexpected companions: %+v", withMin)
	}
}

func TestDailyTemperatureValidate(t *testing.T) {
	d := DailyTemperature{Day: 20, Min: Float64Ptr(25), Max: Float64Ptr(18), Unit: "K"}
	if err := d.Validate(); err == nil {
		t.Error("Expected error when min exceeds max")
	}

	d.Min, d.Max = Float64Ptr(15), Float64Ptr(25)
	if err := d.Validate(); err != nil {
		t.Errorf("Unexpected error: %v", err)
	}

	d.Unit = ""
	if err := d.Validate(); err == nil {
		t.Error("Expected error for empty unit")
	}
}

func TestPressure(t *testing.T) {
	if _, err := NewPressure(-1); err == nil {
		t.Error("Expected error for negative pressure")
	}

	p, err := NewPressure(1013)
	if err != nil {
		t.Fatalf("NewPressure failed: %v", err)
	}
	if _, err := p.WithSeaLevel(-5); err == nil {
		t.Error("Expected error for negative sea level")
	}
	got, err := p.WithGroundLevel(1001)
	if err != nil || *got.GroundLevel != 1001 {
		t.Errorf("WithGroundLevel(1001) = %+v, %v", got, err)
	}
}

func TestHumidityAndClouds(t *testing.T) {
	for _, v := range []int{0, 55, 100} {
		if _, err := NewHumidity(v); err != nil {
			t.Errorf("NewHumidity(%d) unexpected error: %v", v, err)
		}
		if _, err := NewClouds(v); err != nil {
			t.Errorf("NewClouds(%d) unexpected error: %v", v, err)
		}
	}
	for _, v := range []int{-1, 101} {
		if _, err := NewHumidity(v); err == nil {
			t.Errorf("NewHumidity(%d) expected error", v)
		}
		_, err := NewClouds(v)
		var vErr *ValidationError
		if !errors.As(err, &vErr) {
			t.Errorf("NewClouds(%d) expected ValidationError, got %v", v, err)
		}
	}
}

func TestPrecipitation(t *testing.T) {
	p, err := NewPrecipitation(Float64Ptr(0.4), nil)
	if err != nil {
		t.Fatalf("NewPrecipitation failed: %v", err)
	}
	if p.ThreeHour != nil {
		t.Error("Expected ThreeHour to stay absent")
	}
	if p.Unit() != "mm" {
		t.Errorf("Expected unit mm, got %q", p.Unit())
	}

	if _, err := NewPrecipitation(nil, Float64Ptr(-2)); err == nil {
		t.Error("Expected error for negative level")
	}
}

func TestConditionTable(t *testing.T) {
	row, ok := LookupCondition(800)
	if !ok {
		t.Fatal("Expected condition 800 in table")
	}
	if row.Group != GroupClear || row.Icon(Night) != "01n" {
		t.Errorf("Unexpected row for 800: %+v", row)
	}
	if got := row.IconURL(Day); got != "http://openweathermap.org/img/w/01d.png" {
		t.Errorf("Unexpected icon URL %q", got)
	}

	if _, ok := LookupCondition(999); ok {
		t.Error("Expected no row for 999")
	}
	if IconURL("") != "" {
		t.Error("Expected empty URL for empty icon")
	}
}

func TestAirQualityIndex(t *testing.T) {
	if AirQualityIndex(4).String() != "Poor" {
		t.Errorf("Expected Poor, got %q", AirQualityIndex(4).String())
	}
	if err := AirQualityIndex(0).Validate(); err == nil {
		t.Error("Expected error for index 0")
	}
	if err := AirQualityIndex(5).Validate(); err != nil {
		t.Errorf("Unexpected error: %v", err)
	}
}
