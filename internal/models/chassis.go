package models

import (
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
)

// BackingOverrideTypes are the volume types accepted by the backing volume
// type override.
var BackingOverrideTypes = []types.VolumeType{
	types.VolumeTypeSc1,
	types.VolumeTypeSt1,
	types.VolumeTypeGp2,
}

type ChassisConfig struct {
	SlotCount    int             `mapstructure:"slot_count" json:"slot_count" yaml:"slot_count"`
	PairingRatio int             `mapstructure:"pairing_ratio" json:"pairing_ratio" yaml:"pairing_ratio"`
	WorkingSpec  *VolumeTierSpec `mapstructure:"working_spec" json:"working_spec" yaml:"working_spec" validate:"required"`
	BackingSpec  *VolumeTierSpec `mapstructure:"backing_spec" json:"backing_spec" yaml:"backing_spec" validate:"omitempty"`
}

// VolumeTierSpec describes the EBS volume used for every slot of one tier.
type VolumeTierSpec struct {
	VolumeType types.VolumeType `mapstructure:"volume_type" json:"volume_type" yaml:"volume_type" validate:"required,volumetype"`
	SizeGiB    int64            `mapstructure:"size_gib" json:"size_gib" yaml:"size_gib" validate:"gt=0,lte=65536"`
	IOPS       *int32           `mapstructure:"iops" json:"iops,omitempty" yaml:"iops,omitempty" validate:"omitempty,gt=0"`
	Throughput *int32           `mapstructure:"throughput" json:"throughput,omitempty" yaml:"throughput,omitempty" validate:"omitempty,gt=0"`
}

// Clone returns a deep copy so that callers cannot mutate optional fields
// through a shared pointer.
func (v VolumeTierSpec) Clone() VolumeTierSpec {
	clone := v
	if v.IOPS != nil {
		iops := *v.IOPS
		clone.IOPS = &iops
	}
	if v.Throughput != nil {
		throughput := *v.Throughput
		clone.Throughput = &throughput
	}
	return clone
}

type DiskRole string

const (
	WorkingRole DiskRole = "working"
	BackingRole DiskRole = "backing"
)

// SlotSpec is the first-boot description of one data slot, in the shape
// the node bootstrapper reads.
type SlotSpec struct {
	DriveBay string   `json:"drive_bay" yaml:"drive_bay"`
	DiskRole DiskRole `json:"disk_role" yaml:"disk_role"`
	DiskSize int64    `json:"disk_size" yaml:"disk_size"`
}

type SlotSpecs struct {
	SlotSpecs []SlotSpec `json:"slot_specs" yaml:"slot_specs"`
}
