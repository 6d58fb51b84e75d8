package stack

import (
	"fmt"

	"github.com/hogwarts-cloud/qcft/internal/cfn"
	"github.com/hogwarts-cloud/qcft/internal/chassis"
	"github.com/hogwarts-cloud/qcft/internal/userdata"
	"github.com/hogwarts-cloud/qcft/pkg/constants"
	"github.com/samber/lo"
)

const PrivateIPAttribute = "PrivateIp"

type node struct {
	Name string
	Eni  string
}

func nodeNames(prefix string, count int) []node {
	return lo.Times(count, func(i int) node {
		return node{
			Name: fmt.Sprintf("%sNode%d", prefix, i+1),
			Eni:  fmt.Sprintf("%sEni%d", prefix, i+1),
		}
	})
}

// addNodes adds the placement group and, per node, a network interface and
// an instance. Every instance gets the same block device layout; only the
// first one is told to form the cluster.
func addNodes(template *cfn.Template, spec *chassis.Spec, count int, prefix string, securityGroup any) ([]node, error) {
	if err := template.AddResource(constants.PlacementGroupName, cfn.TypePlacementGroup, cfn.PlacementGroup{
		Strategy: "cluster",
	}); err != nil {
		return nil, err
	}

	mappings, err := spec.BlockDeviceMappings(cfn.IfSet(HasEncryptionKey, ParamVolumesEncryptionKey))
	if err != nil {
		return nil, fmt.Errorf("failed to get block device mappings: %w", err)
	}

	slots, err := spec.SlotSpecs()
	if err != nil {
		return nil, fmt.Errorf("failed to get slot specs: %w", err)
	}

	nodes := nodeNames(prefix, count)

	peerIPs := lo.Map(nodes[1:], func(n node, _ int) any {
		return cfn.GetAtt(n.Name, PrivateIPAttribute)
	})

	clusterNodeData, err := userdata.ClusterNode(slots, peerIPs, cfn.Ref(ParamClusterName))
	if err != nil {
		return nil, fmt.Errorf("failed to build cluster node user data: %w", err)
	}

	joiningNodeData, err := userdata.JoiningNode(slots)
	if err != nil {
		return nil, fmt.Errorf("failed to build joining node user data: %w", err)
	}

	for i, n := range nodes {
		if err := template.AddResource(n.Eni, cfn.TypeNetworkInterface, cfn.NetworkInterface{
			GroupSet:                       []any{securityGroup},
			SubnetId:                       cfn.Ref(ParamSubnetID),
			SecondaryPrivateIpAddressCount: cfn.Ref(ParamFloatingIPCount),
		}); err != nil {
			return nil, err
		}

		data := joiningNodeData
		if i == 0 {
			data = clusterNodeData
		}

		if err := template.AddResource(n.Name, cfn.TypeInstance, cfn.Instance{
			ImageId:      cfn.Ref(ParamClusterAMI),
			InstanceType: cfn.Ref(ParamInstanceType),
			KeyName:      cfn.Ref(ParamKeyName),
			NetworkInterfaces: []cfn.NetworkInterfaceProperty{
				{DeviceIndex: "0", NetworkInterfaceId: cfn.Ref(n.Eni)},
			},
			BlockDeviceMappings: mappings,
			EbsOptimized:        true,
			IamInstanceProfile:  cfn.IfSet(HasIamInstanceProfile, ParamIamInstanceProfile),
			PlacementGroupName:  cfn.Ref(constants.PlacementGroupName),
			Tags: []cfn.Tag{
				{Key: "Name", Value: cfn.Join(" - ", []any{cfn.Ref(cfn.StackName), n.Name})},
			},
			UserData: userdata.Encode(data),
		}); err != nil {
			return nil, err
		}
	}

	return nodes, nil
}

func addAlarms(template *cfn.Template, nodes []node) error {
	recoveryTopic := cfn.IfSet(HasInstanceRecoveryTopic, ParamInstanceRecoveryTopic)

	for i, n := range nodes {
		if err := template.AddResource("CWRecoveryAlarm"+n.Name, cfn.TypeAlarm, cfn.Alarm{
			AlarmActions: []any{
				cfn.Sub("arn:aws:automate:${AWS::Region}:ec2:recover"),
				recoveryTopic,
			},
			AlarmDescription:   cfn.Sub(fmt.Sprintf("Automatic recovery alarm for ${%s}-%d", ParamClusterName, i+1)),
			ComparisonOperator: "GreaterThanOrEqualToThreshold",
			DatapointsToAlarm:  2,
			Dimensions: []cfn.MetricDimension{
				{Name: "InstanceId", Value: cfn.Ref(n.Name)},
			},
			EvaluationPeriods: 2,
			MetricName:        "StatusCheckFailed_System",
			Namespace:         "AWS/EC2",
			OKActions:         []any{recoveryTopic},
			Period:            60,
			Statistic:         "Maximum",
			Threshold:         1.0,
		}); err != nil {
			return err
		}
	}

	return nil
}
