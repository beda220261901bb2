package util

import (
	"testing"
)

func TestMax(t *testing.T) {
	if Max(1, 2, 3) != 3 {
		t.Error("Max(1, 2, 3) should be 3")
	}
	if Max(3.5, -1.0) != 3.5 {
		t.Error("Max(3.5, -1.0) should be 3.5")
	}
}

func TestMin(t *testing.T) {
	if Min(1, 2, 3) != 1 {
		t.Error("Min(1, 2, 3) should be 1")
	}
	if Min(3.5, -1.0) != -1.0 {
		t.Error("Min(3.5, -1.0) should be -1.0")
	}
}

func TestClamp(t *testing.T) {
	if Clamp(5, 0, 10) != 5 {
		t.Error("Clamp(5, 0, 10) should be 5")
	}
	if Clamp(-3, 0, 10) != 0 {
		t.Error("Clamp(-3, 0, 10) should be 0")
	}
	if Clamp(15, 0, 10) != 10 {
		t.Error("Clamp(15, 0, 10) should be 10")
	}
}

func TestClampToByte(t *testing.T) {
	cases := []struct {
		in   float32
		want uint8
	}{
		{-10.0, 0},
		{0.0, 0},
		{99.9, 99}, // truncates, never rounds
		{255.0, 255},
		{300.0, 255},
	}

	for _, c := range cases {
		if got := ClampToByte(c.in); got != c.want {
			t.Errorf("ClampToByte(%f) = %d; want %d", c.in, got, c.want)
		}
	}
}

func TestSaturatingAddByte(t *testing.T) {
	if SaturatingAddByte(100, 50) != 150 {
		t.Error("SaturatingAddByte(100, 50) should be 150")
	}
	if SaturatingAddByte(200, 100) != 255 {
		t.Error("SaturatingAddByte(200, 100) should saturate at 255")
	}
	if SaturatingAddByte(255, 255) != 255 {
		t.Error("SaturatingAddByte(255, 255) should saturate at 255")
	}
}
