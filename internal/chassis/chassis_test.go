package chassis

import (
	"fmt"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/hogwarts-cloud/qcft/internal/cfn"
	"github.com/hogwarts-cloud/qcft/internal/models"
	"github.com/hogwarts-cloud/qcft/pkg/utils"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	workingTier = models.VolumeTierSpec{VolumeType: types.VolumeTypeGp2, SizeGiB: 150}
	backingTier = models.VolumeTierSpec{VolumeType: types.VolumeTypeSt1, SizeGiB: 2048}
)

func Test_New(t *testing.T) {
	testCases := []struct {
		name            string
		slotCount       int
		pairingRatio    int
		backing         *models.VolumeTierSpec
		expectedWorking int
		expectedBacking int
		wantErr         bool
		err             error
	}{
		{
			name:            "eight slots paired one to one",
			slotCount:       8,
			pairingRatio:    1,
			backing:         &backingTier,
			expectedWorking: 4,
			expectedBacking: 4,
		},
		{
			name:            "nine slots paired one to two",
			slotCount:       9,
			pairingRatio:    2,
			backing:         &backingTier,
			expectedWorking: 3,
			expectedBacking: 6,
		},
		{
			name:            "ten slots paired one to one",
			slotCount:       10,
			pairingRatio:    1,
			backing:         &backingTier,
			expectedWorking: 5,
			expectedBacking: 5,
		},
		{
			name:            "all flash without backing tier",
			slotCount:       6,
			pairingRatio:    0,
			expectedWorking: 6,
			expectedBacking: 0,
		},
		{
			name:            "all flash ignores backing tier",
			slotCount:       25,
			pairingRatio:    0,
			backing:         &backingTier,
			expectedWorking: 25,
			expectedBacking: 0,
		},
		{
			name:         "uneven pairing ratio",
			slotCount:    7,
			pairingRatio: 2,
			backing:      &backingTier,
			wantErr:      true,
			err:          ErrUnevenPairingRatio,
		},
		{
			name:         "too many slots",
			slotCount:    26,
			pairingRatio: 1,
			backing:      &backingTier,
			wantErr:      true,
			err:          ErrTooManySlots,
		},
		{
			name:         "too many slots wins over uneven ratio",
			slotCount:    26,
			pairingRatio: 2,
			wantErr:      true,
			err:          ErrTooManySlots,
		},
		{
			name:         "missing backing spec",
			slotCount:    8,
			pairingRatio: 1,
			wantErr:      true,
			err:          ErrMissingBackingSpec,
		},
		{
			name:         "uneven ratio reported before missing backing spec",
			slotCount:    7,
			pairingRatio: 1,
			wantErr:      true,
			err:          ErrUnevenPairingRatio,
		},
		{
			name:         "zero slots",
			slotCount:    0,
			pairingRatio: 0,
			wantErr:      true,
			err:          ErrInvalidSlotCount,
		},
		{
			name:         "negative pairing ratio",
			slotCount:    4,
			pairingRatio: -1,
			wantErr:      true,
			err:          ErrInvalidPairingRatio,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			spec, err := New(tc.slotCount, tc.pairingRatio, workingTier, tc.backing)
			if tc.wantErr {
				assert.ErrorIs(t, err, tc.err)
				assert.Nil(t, spec)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.slotCount, spec.SlotCount())
			assert.Equal(t, tc.pairingRatio, spec.PairingRatio())
			assert.Equal(t, tc.expectedWorking, spec.WorkingSlotCount())
			assert.Equal(t, tc.expectedBacking, spec.BackingSlotCount())
		})
	}
}

func Test_NewAllRatios(t *testing.T) {
	for slotCount := 1; slotCount <= 26; slotCount++ {
		for pairingRatio := 0; pairingRatio <= 26; pairingRatio++ {
			spec, err := New(slotCount, pairingRatio, workingTier, &backingTier)

			switch {
			case slotCount > 25:
				assert.ErrorIs(t, err, ErrTooManySlots)
			case slotCount%(pairingRatio+1) != 0:
				assert.ErrorIs(t, err, ErrUnevenPairingRatio, "slots %d ratio %d", slotCount, pairingRatio)
			default:
				require.NoError(t, err, "slots %d ratio %d", slotCount, pairingRatio)
				assert.Equal(t, slotCount, spec.WorkingSlotCount()+spec.BackingSlotCount())
				assert.Equal(t, spec.WorkingSlotCount()*pairingRatio, spec.BackingSlotCount())
			}
		}
	}
}

func Test_FromConfig(t *testing.T) {
	_, err := FromConfig(models.ChassisConfig{SlotCount: 4})
	assert.ErrorIs(t, err, ErrMissingWorkingSpec)

	spec, err := FromConfig(models.ChassisConfig{
		SlotCount:    10,
		PairingRatio: 1,
		WorkingSpec:  &workingTier,
		BackingSpec:  &backingTier,
	})
	require.NoError(t, err)
	assert.Equal(t, 5, spec.WorkingSlotCount())
	assert.Equal(t, backingTier, *spec.BackingSpec())
}

func Test_SpecIsImmutable(t *testing.T) {
	iops := int32(3000)
	working := models.VolumeTierSpec{VolumeType: types.VolumeTypeIo1, SizeGiB: 100, IOPS: &iops}
	backing := backingTier

	spec, err := New(4, 1, working, &backing)
	require.NoError(t, err)

	iops = 9000
	backing.SizeGiB = 1
	spec.BackingSpec().SizeGiB = 2
	*spec.WorkingSpec().IOPS = 10000

	assert.Equal(t, int32(3000), *spec.WorkingSpec().IOPS)
	assert.Equal(t, int64(2048), spec.BackingSpec().SizeGiB)
}

func Test_BlockDeviceMappings(t *testing.T) {
	spec, err := New(8, 1, workingTier, &backingTier)
	require.NoError(t, err)

	key := cfn.IfSet("HasEncryptionKey", "VolumesEncryptionKey")

	mappings, err := spec.BlockDeviceMappings(key)
	require.NoError(t, err)
	require.Len(t, mappings, 9)

	assert.Equal(t, cfn.BlockDeviceMapping{
		DeviceName: "/dev/sda1",
		Ebs:        &cfn.EBSBlockDevice{Encrypted: true, KmsKeyId: key},
	}, mappings[0])

	expectedNames := []string{
		"/dev/xvdb", "/dev/xvdc", "/dev/xvdd", "/dev/xvde",
		"/dev/xvdf", "/dev/xvdg", "/dev/xvdh", "/dev/xvdi",
	}
	assert.Equal(t, expectedNames, lo.Map(mappings[1:], func(m cfn.BlockDeviceMapping, _ int) string {
		return m.DeviceName
	}))

	for i, mapping := range mappings {
		assert.True(t, mapping.Ebs.Encrypted, "mapping %d", i)
		assert.Equal(t, key, mapping.Ebs.KmsKeyId, "mapping %d", i)
	}

	for _, mapping := range mappings[1:5] {
		assert.Equal(t, "gp2", mapping.Ebs.VolumeType)
		assert.Equal(t, int64(150), mapping.Ebs.VolumeSize)
	}

	for _, mapping := range mappings[5:] {
		assert.Equal(t, "st1", mapping.Ebs.VolumeType)
		assert.Equal(t, int64(2048), mapping.Ebs.VolumeSize)
	}
}

func Test_BlockDeviceMappingsCarryOptionalFields(t *testing.T) {
	working := models.VolumeTierSpec{
		VolumeType: types.VolumeTypeGp3,
		SizeGiB:    100,
		IOPS:       aws.Int32(6000),
		Throughput: aws.Int32(250),
	}

	spec, err := New(2, 0, working, nil)
	require.NoError(t, err)

	mappings, err := spec.BlockDeviceMappings(nil)
	require.NoError(t, err)
	require.Len(t, mappings, 3)

	assert.Nil(t, mappings[0].Ebs.KmsKeyId)
	assert.Equal(t, int32(6000), aws.ToInt32(mappings[1].Ebs.Iops))
	assert.Equal(t, int32(250), aws.ToInt32(mappings[2].Ebs.Throughput))
}

func Test_BlockDeviceMappingsLastDevice(t *testing.T) {
	spec, err := New(25, 4, workingTier, &backingTier)
	require.NoError(t, err)

	mappings, err := spec.BlockDeviceMappings(nil)
	require.NoError(t, err)
	require.Len(t, mappings, 26)

	for i := 2; i < len(mappings); i++ {
		assert.Greater(t, mappings[i].DeviceName, mappings[i-1].DeviceName)
	}
	assert.Equal(t, "/dev/xvdz", mappings[25].DeviceName)
}

func Test_SlotSpecs(t *testing.T) {
	testCases := []struct {
		slotCount    int
		pairingRatio int
	}{
		{slotCount: 8, pairingRatio: 1},
		{slotCount: 9, pairingRatio: 2},
		{slotCount: 10, pairingRatio: 1},
		{slotCount: 6, pairingRatio: 0},
		{slotCount: 25, pairingRatio: 4},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%d slots ratio %d", tc.slotCount, tc.pairingRatio), func(t *testing.T) {
			spec, err := New(tc.slotCount, tc.pairingRatio, workingTier, &backingTier)
			require.NoError(t, err)

			slots, err := spec.SlotSpecs()
			require.NoError(t, err)
			require.Len(t, slots, tc.slotCount)

			mappings, err := spec.BlockDeviceMappings(nil)
			require.NoError(t, err)

			for i, slot := range slots {
				assert.Equal(t, mappings[i+1].DeviceName, slot.DriveBay)

				if i < spec.WorkingSlotCount() {
					assert.Equal(t, models.WorkingRole, slot.DiskRole)
					assert.Equal(t, int64(150)*1073741824, slot.DiskSize)
				} else {
					assert.Equal(t, models.BackingRole, slot.DiskRole)
					assert.Equal(t, int64(2048)*1073741824, slot.DiskSize)
				}
			}
		})
	}
}

func Test_SlotSpecsLargeVolumes(t *testing.T) {
	working := models.VolumeTierSpec{VolumeType: types.VolumeTypeSc1, SizeGiB: 16384}

	spec, err := New(1, 0, working, nil)
	require.NoError(t, err)

	slots, err := spec.SlotSpecs()
	require.NoError(t, err)

	assert.Equal(t, []models.SlotSpec{
		{DriveBay: "/dev/xvdb", DiskRole: models.WorkingRole, DiskSize: 17592186044416},
	}, slots)
}

func Test_SlotSpecsSizeOverflow(t *testing.T) {
	spec, err := New(2, 0, models.VolumeTierSpec{VolumeType: types.VolumeTypeSc1, SizeGiB: 1 << 33}, nil)
	require.NoError(t, err)

	_, err = spec.SlotSpecs()
	assert.ErrorIs(t, err, utils.ErrSizeOutOfRange)
}
