package utils

import (
	"errors"
	"fmt"
	"math"

	"github.com/hogwarts-cloud/qcft/pkg/constants"
)

var (
	ErrSlotIndexOutOfRange = errors.New("slot index out of range")
	ErrSizeOutOfRange      = errors.New("volume size out of range")
)

// DeviceName maps a zero-based data slot index to its block device name:
// slot 0 is /dev/xvdb, slot 24 is /dev/xvdz.
func DeviceName(index int) (string, error) {
	if index < 0 || index >= constants.MaxSlotCount {
		return "", fmt.Errorf("%w: %d not in [0, %d)", ErrSlotIndexOutOfRange, index, constants.MaxSlotCount)
	}

	return constants.DevicePrefix + constants.DeviceLetters[index:index+1], nil
}

func GiBToBytes(gib int64) (int64, error) {
	if gib < 0 || gib > math.MaxInt64/constants.GiB {
		return 0, fmt.Errorf("%w: %d GiB", ErrSizeOutOfRange, gib)
	}

	return gib * constants.GiB, nil
}
