package cfn

const (
	TypeInstance             = "AWS::EC2::Instance"
	TypeNetworkInterface     = "AWS::EC2::NetworkInterface"
	TypeSecurityGroup        = "AWS::EC2::SecurityGroup"
	TypeSecurityGroupIngress = "AWS::EC2::SecurityGroupIngress"
	TypePlacementGroup       = "AWS::EC2::PlacementGroup"
	TypeAlarm                = "AWS::CloudWatch::Alarm"
)

type Instance struct {
	ImageId             any                        `json:"ImageId" yaml:"ImageId"`
	InstanceType        any                        `json:"InstanceType" yaml:"InstanceType"`
	KeyName             any                        `json:"KeyName,omitempty" yaml:"KeyName,omitempty"`
	NetworkInterfaces   []NetworkInterfaceProperty `json:"NetworkInterfaces,omitempty" yaml:"NetworkInterfaces,omitempty"`
	BlockDeviceMappings []BlockDeviceMapping       `json:"BlockDeviceMappings,omitempty" yaml:"BlockDeviceMappings,omitempty"`
	EbsOptimized        bool                       `json:"EbsOptimized" yaml:"EbsOptimized"`
	IamInstanceProfile  any                        `json:"IamInstanceProfile,omitempty" yaml:"IamInstanceProfile,omitempty"`
	PlacementGroupName  any                        `json:"PlacementGroupName,omitempty" yaml:"PlacementGroupName,omitempty"`
	Tags                []Tag                      `json:"Tags,omitempty" yaml:"Tags,omitempty"`
	UserData            any                        `json:"UserData,omitempty" yaml:"UserData,omitempty"`
}

type NetworkInterfaceProperty struct {
	DeviceIndex        string `json:"DeviceIndex" yaml:"DeviceIndex"`
	NetworkInterfaceId any    `json:"NetworkInterfaceId" yaml:"NetworkInterfaceId"`
}

type BlockDeviceMapping struct {
	DeviceName string          `json:"DeviceName" yaml:"DeviceName"`
	Ebs        *EBSBlockDevice `json:"Ebs,omitempty" yaml:"Ebs,omitempty"`
}

// EBSBlockDevice leaves VolumeType and VolumeSize empty for the boot
// volume, which takes its size from the image.
type EBSBlockDevice struct {
	Encrypted  bool   `json:"Encrypted" yaml:"Encrypted"`
	KmsKeyId   any    `json:"KmsKeyId,omitempty" yaml:"KmsKeyId,omitempty"`
	VolumeType string `json:"VolumeType,omitempty" yaml:"VolumeType,omitempty"`
	VolumeSize int64  `json:"VolumeSize,omitempty" yaml:"VolumeSize,omitempty"`
	Iops       *int32 `json:"Iops,omitempty" yaml:"Iops,omitempty"`
	Throughput *int32 `json:"Throughput,omitempty" yaml:"Throughput,omitempty"`
}

type Tag struct {
	Key   string `json:"Key" yaml:"Key"`
	Value any    `json:"Value" yaml:"Value"`
}

type NetworkInterface struct {
	GroupSet                       []any `json:"GroupSet" yaml:"GroupSet"`
	SubnetId                       any   `json:"SubnetId" yaml:"SubnetId"`
	SecondaryPrivateIpAddressCount any   `json:"SecondaryPrivateIpAddressCount,omitempty" yaml:"SecondaryPrivateIpAddressCount,omitempty"`
}

type SecurityGroup struct {
	GroupDescription     string              `json:"GroupDescription" yaml:"GroupDescription"`
	SecurityGroupIngress []SecurityGroupRule `json:"SecurityGroupIngress,omitempty" yaml:"SecurityGroupIngress,omitempty"`
	SecurityGroupEgress  []SecurityGroupRule `json:"SecurityGroupEgress,omitempty" yaml:"SecurityGroupEgress,omitempty"`
	VpcId                any                 `json:"VpcId" yaml:"VpcId"`
}

type SecurityGroupRule struct {
	Description string `json:"Description,omitempty" yaml:"Description,omitempty"`
	IpProtocol  string `json:"IpProtocol" yaml:"IpProtocol"`
	FromPort    int    `json:"FromPort" yaml:"FromPort"`
	ToPort      int    `json:"ToPort" yaml:"ToPort"`
	CidrIp      any    `json:"CidrIp,omitempty" yaml:"CidrIp,omitempty"`
}

type SecurityGroupIngress struct {
	Description           string `json:"Description,omitempty" yaml:"Description,omitempty"`
	GroupId               any    `json:"GroupId" yaml:"GroupId"`
	IpProtocol            string `json:"IpProtocol" yaml:"IpProtocol"`
	FromPort              int    `json:"FromPort" yaml:"FromPort"`
	ToPort                int    `json:"ToPort" yaml:"ToPort"`
	SourceSecurityGroupId any    `json:"SourceSecurityGroupId" yaml:"SourceSecurityGroupId"`
}

type PlacementGroup struct {
	Strategy string `json:"Strategy" yaml:"Strategy"`
}

type Alarm struct {
	AlarmActions       []any             `json:"AlarmActions,omitempty" yaml:"AlarmActions,omitempty"`
	AlarmDescription   any               `json:"AlarmDescription,omitempty" yaml:"AlarmDescription,omitempty"`
	ComparisonOperator string            `json:"ComparisonOperator" yaml:"ComparisonOperator"`
	DatapointsToAlarm  int               `json:"DatapointsToAlarm,omitempty" yaml:"DatapointsToAlarm,omitempty"`
	Dimensions         []MetricDimension `json:"Dimensions,omitempty" yaml:"Dimensions,omitempty"`
	EvaluationPeriods  int               `json:"EvaluationPeriods" yaml:"EvaluationPeriods"`
	MetricName         string            `json:"MetricName" yaml:"MetricName"`
	Namespace          string            `json:"Namespace" yaml:"Namespace"`
	OKActions          []any             `json:"OKActions,omitempty" yaml:"OKActions,omitempty"`
	Period             int               `json:"Period" yaml:"Period"`
	Statistic          string            `json:"Statistic" yaml:"Statistic"`
	Threshold          float64           `json:"Threshold" yaml:"Threshold"`
}

type MetricDimension struct {
	Name  string `json:"Name" yaml:"Name"`
	Value any    `json:"Value" yaml:"Value"`
}
