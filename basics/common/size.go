package common

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/freakmaxi/kertish-slicer/basics/errors"
)

var unitMultipliers = map[string]uint64{
	"b":  1,
	"kb": 1024,
	"mb": 1024 * 1024,
	"gb": 1024 * 1024 * 1024,
}

// ParseSize converts the value in the given unit to bytes.
// Unit is one of b, kb, mb, gb and it can be prefixed with "-" (ex: -mb). Empty unit means bytes
func ParseSize(value string, unit string) (uint64, error) {
	size, err := strconv.ParseUint(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: size %s is not a positive number", errors.ErrInvalidArgument, value)
	}
	if size == 0 {
		return 0, fmt.Errorf("%w: size can not be 0", errors.ErrInvalidArgument)
	}

	unit = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(unit), "-"))
	if len(unit) == 0 {
		unit = "b"
	}

	multiplier, has := unitMultipliers[unit]
	if !has {
		return 0, fmt.Errorf("%w: unit %s is not supported", errors.ErrInvalidArgument, unit)
	}

	if size > math.MaxUint64/multiplier {
		return 0, fmt.Errorf("%w: size %s%s is too big", errors.ErrInvalidArgument, value, unit)
	}

	return size * multiplier, nil
}

// IsUnit checks if the input can be used as a unit for ParseSize
func IsUnit(input string) bool {
	_, has := unitMultipliers[strings.ToLower(strings.TrimPrefix(input, "-"))]
	return has
}

// SizeToString formats the size in the biggest unit that keeps it under 6 digits
func SizeToString(size uint64) string {
	calculatedSize := size
	divideCount := 0
	for {
		calculatedSizeString := strconv.FormatUint(calculatedSize, 10)
		if len(calculatedSizeString) < 6 {
			break
		}
		calculatedSize /= 1024
		divideCount++
	}

	switch divideCount {
	case 0:
		return fmt.Sprintf("%sb", strconv.FormatUint(calculatedSize, 10))
	case 1:
		return fmt.Sprintf("%skb", strconv.FormatUint(calculatedSize, 10))
	case 2:
		return fmt.Sprintf("%smb", strconv.FormatUint(calculatedSize, 10))
	case 3:
		return fmt.Sprintf("%sgb", strconv.FormatUint(calculatedSize, 10))
	case 4:
		return fmt.Sprintf("%stb", strconv.FormatUint(calculatedSize, 10))
	}

	return "N/A"
}
