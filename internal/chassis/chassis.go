// Package chassis derives the per-node volume layout: which slots hold
// working volumes, which hold backing volumes, and which device each slot
// is attached as.
package chassis

import (
	"errors"
	"fmt"

	"github.com/hogwarts-cloud/qcft/internal/cfn"
	"github.com/hogwarts-cloud/qcft/internal/models"
	"github.com/hogwarts-cloud/qcft/pkg/constants"
	"github.com/hogwarts-cloud/qcft/pkg/utils"
)

var (
	ErrTooManySlots        = errors.New("too many volumes specified")
	ErrInvalidSlotCount    = errors.New("slot count must be positive")
	ErrInvalidPairingRatio = errors.New("pairing ratio must not be negative")
	ErrUnevenPairingRatio  = errors.New("not all volumes can be used based on the pairing ratio")
	ErrMissingBackingSpec  = errors.New("backing volumes require type and size")
	ErrMissingWorkingSpec  = errors.New("working volumes require type and size")
)

// Spec is an immutable chassis layout. Slots [0, WorkingSlotCount) hold
// working volumes, the rest hold backing volumes.
type Spec struct {
	slotCount        int
	pairingRatio     int
	workingSlotCount int
	backingSlotCount int
	working          models.VolumeTierSpec
	backing          *models.VolumeTierSpec
}

func New(slotCount, pairingRatio int, working models.VolumeTierSpec, backing *models.VolumeTierSpec) (*Spec, error) {
	if slotCount > constants.MaxSlotCount {
		return nil, fmt.Errorf("%w: %d slots, at most %d devices are available", ErrTooManySlots, slotCount, constants.MaxSlotCount)
	}

	if slotCount <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSlotCount, slotCount)
	}

	if pairingRatio < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidPairingRatio, pairingRatio)
	}

	if slotCount%(pairingRatio+1) != 0 {
		return nil, fmt.Errorf("%w: %d slots with pairing ratio %d", ErrUnevenPairingRatio, slotCount, pairingRatio)
	}

	workingSlotCount := slotCount / (pairingRatio + 1)
	backingSlotCount := workingSlotCount * pairingRatio

	if workingSlotCount+backingSlotCount != slotCount {
		return nil, fmt.Errorf("%w: %d working and %d backing slots for %d slots",
			ErrUnevenPairingRatio, workingSlotCount, backingSlotCount, slotCount)
	}

	if backingSlotCount > 0 && backing == nil {
		return nil, fmt.Errorf("%w: %d backing slots", ErrMissingBackingSpec, backingSlotCount)
	}

	spec := &Spec{
		slotCount:        slotCount,
		pairingRatio:     pairingRatio,
		workingSlotCount: workingSlotCount,
		backingSlotCount: backingSlotCount,
		working:          working.Clone(),
	}

	if backing != nil {
		clone := backing.Clone()
		spec.backing = &clone
	}

	return spec, nil
}

func FromConfig(cfg models.ChassisConfig) (*Spec, error) {
	if cfg.WorkingSpec == nil {
		return nil, ErrMissingWorkingSpec
	}

	return New(cfg.SlotCount, cfg.PairingRatio, *cfg.WorkingSpec, cfg.BackingSpec)
}

func (s *Spec) SlotCount() int        { return s.slotCount }
func (s *Spec) PairingRatio() int     { return s.pairingRatio }
func (s *Spec) WorkingSlotCount() int { return s.workingSlotCount }
func (s *Spec) BackingSlotCount() int { return s.backingSlotCount }

func (s *Spec) WorkingSpec() models.VolumeTierSpec {
	return s.working.Clone()
}

// BackingSpec returns nil when the layout has no backing tier.
func (s *Spec) BackingSpec() *models.VolumeTierSpec {
	if s.backing == nil {
		return nil
	}

	clone := s.backing.Clone()

	return &clone
}

func (s *Spec) Role(index int) models.DiskRole {
	if index < s.workingSlotCount {
		return models.WorkingRole
	}

	return models.BackingRole
}

func (s *Spec) tier(index int) models.VolumeTierSpec {
	if s.Role(index) == models.WorkingRole {
		return s.working
	}

	return *s.backing
}

// BlockDeviceMappings returns the boot device followed by one encrypted
// device per slot, in slot order. kmsKeyID is applied to every device; nil
// leaves encryption to the account default key.
func (s *Spec) BlockDeviceMappings(kmsKeyID any) ([]cfn.BlockDeviceMapping, error) {
	mappings := make([]cfn.BlockDeviceMapping, 0, s.slotCount+1)

	mappings = append(mappings, cfn.BlockDeviceMapping{
		DeviceName: constants.BootDeviceName,
		Ebs:        &cfn.EBSBlockDevice{Encrypted: true, KmsKeyId: kmsKeyID},
	})

	for i := 0; i < s.slotCount; i++ {
		deviceName, err := utils.DeviceName(i)
		if err != nil {
			return nil, fmt.Errorf("failed to get device name: %w", err)
		}

		tier := s.tier(i).Clone()

		mappings = append(mappings, cfn.BlockDeviceMapping{
			DeviceName: deviceName,
			Ebs: &cfn.EBSBlockDevice{
				Encrypted:  true,
				KmsKeyId:   kmsKeyID,
				VolumeType: string(tier.VolumeType),
				VolumeSize: tier.SizeGiB,
				Iops:       tier.IOPS,
				Throughput: tier.Throughput,
			},
		})
	}

	return mappings, nil
}

// SlotSpecs describes every data slot for the node bootstrapper. Entry i
// matches BlockDeviceMappings entry i+1.
func (s *Spec) SlotSpecs() ([]models.SlotSpec, error) {
	slots := make([]models.SlotSpec, 0, s.slotCount)

	for i := 0; i < s.slotCount; i++ {
		deviceName, err := utils.DeviceName(i)
		if err != nil {
			return nil, fmt.Errorf("failed to get device name: %w", err)
		}

		size, err := utils.GiBToBytes(s.tier(i).SizeGiB)
		if err != nil {
			return nil, fmt.Errorf("failed to get disk size: %w", err)
		}

		slots = append(slots, models.SlotSpec{
			DriveBay: deviceName,
			DiskRole: s.Role(i),
			DiskSize: size,
		})
	}

	return slots, nil
}
