package constants

const (
	GiB = 1 << 30

	// DeviceLetters are the data device suffixes available on a node. The
	// "a" device is taken by the boot volume.
	DeviceLetters = "bcdefghijklmnopqrstuvwxyz"
	MaxSlotCount  = len(DeviceLetters)

	DevicePrefix   = "/dev/xvd"
	BootDeviceName = "/dev/sda1"
)

const (
	DefaultNumNodes       = 4
	DefaultNodeNamePrefix = "Qumulo"
	EnvPrefix             = "QCFT"
)

const (
	SecurityGroupName         = "QumuloSecurityGroup"
	SecurityGroupNodeRuleName = "QumuloSecurityGroupNodeRule"
	PlacementGroupName        = "QClusterGroup"
	SecurityGroupDefaultCIDR  = "0.0.0.0/0"
	KnowledgeBaseLink         = "https://qf2.co/cloud-kb"
)

const (
	ClusterNamePattern = `^[a-zA-Z0-9][a-zA-Z0-9-]*[a-zA-Z0-9]$`
	CIDRPattern        = `^(([0-9]|[1-9][0-9]|1[0-9]{2}|2[0-4][0-9]|25[0-5])\.){3}` +
		`([0-9]|[1-9][0-9]|1[0-9]{2}|2[0-4][0-9]|25[0-5])` +
		`(\/(3[0-2]|[1-2][0-9]|[0-9]))$`
)
