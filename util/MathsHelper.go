package util

import (
	"golang.org/x/exp/constraints"
)

func Max[T constraints.Ordered](args ...T) T {
	if len(args) == 0 {
		return *new(T)
	}

	max := args[0]
	for _, arg := range args[1:] {
		if arg > max {
			max = arg
		}
	}
	return max
}

func Min[T constraints.Ordered](args ...T) T {
	if len(args) == 0 {
		return *new(T)
	}

	min := args[0]
	for _, arg := range args[1:] {
		if arg < min {
			min = arg
		}
	}
	return min
}

// Clamp restricts value to the inclusive range [lo, hi].
func Clamp[T constraints.Ordered](value T, lo T, hi T) T {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}

// ClampToByte clamps a float32 to [0,255] then truncates to uint8.
// Truncation (not rounding) keeps in-range values identical to a plain
// narrowing cast.
func ClampToByte(value float32) uint8 {
	if value <= 0 {
		return 0
	}
	if value >= 255 {
		return 255
	}
	return uint8(value)
}

// SaturatingAddByte adds two bytes, capping at 255 instead of wrapping.
func SaturatingAddByte(a uint8, b uint8) uint8 {
	sum := uint16(a) + uint16(b)
	if sum > 255 {
		return 255
	}
	return uint8(sum)
}
