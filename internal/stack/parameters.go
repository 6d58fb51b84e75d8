package stack

import (
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/hogwarts-cloud/qcft/internal/cfn"
	"github.com/hogwarts-cloud/qcft/pkg/constants"
	"github.com/samber/lo"
)

const (
	ParamClusterAMI            = "ClusterAMI"
	ParamClusterName           = "ClusterName"
	ParamKeyName               = "KeyName"
	ParamInstanceType          = "InstanceType"
	ParamVpcID                 = "VpcId"
	ParamSubnetID              = "SubnetId"
	ParamSgCidr                = "SgCidr"
	ParamVolumesEncryptionKey  = "VolumesEncryptionKey"
	ParamIamInstanceProfile    = "IamInstanceProfile"
	ParamInstanceRecoveryTopic = "InstanceRecoveryTopic"
	ParamFloatingIPCount       = "FloatingIPCount"

	DefaultInstanceType = "m5.4xlarge"
	MaxFloatingIPCount  = 10
)

var InstanceTypes = []string{
	"m5.xlarge",
	"m5.2xlarge",
	"m5.4xlarge",
	"m5.8xlarge",
	"m5.12xlarge",
	"m5.16xlarge",
	"m5.24xlarge",
	"c5n.xlarge",
	"c5n.2xlarge",
	"c5n.4xlarge",
	"c5n.9xlarge",
	"c5n.18xlarge",
}

type namedParameter struct {
	name      string
	label     string
	parameter cfn.Parameter
}

func parameters(withIngressCIDR bool) []namedParameter {
	params := []namedParameter{
		{
			name:  ParamClusterAMI,
			label: "Qumulo AMI ID",
			parameter: cfn.Parameter{
				Type:        "String",
				Description: "Qumulo cluster AWS AMI ID",
			},
		},
		{
			name:  ParamClusterName,
			label: "Qumulo cluster name",
			parameter: cfn.Parameter{
				Type:           "String",
				Description:    "Qumulo cluster name (2-15 alpha-numeric characters and -)",
				MinLength:      aws.Int(2),
				MaxLength:      aws.Int(15),
				AllowedPattern: constants.ClusterNamePattern,
				ConstraintDescription: "Name must be an alpha-numeric string between 2 and 15 characters. " +
					"Dash (-) is allowed if not the first or last character.",
			},
		},
		{
			name:  ParamKeyName,
			label: "SSH key-pair name",
			parameter: cfn.Parameter{
				Type:        "AWS::EC2::KeyPair::KeyName",
				Description: "Name of an existing EC2 KeyPair to enable SSH access to the node",
			},
		},
		{
			name:  ParamInstanceType,
			label: "EC2 instance type",
			parameter: cfn.Parameter{
				Type:                  "String",
				Description:           "EC2 instance type for Qumulo node",
				Default:               aws.String(DefaultInstanceType),
				AllowedValues:         InstanceTypes,
				ConstraintDescription: "Must be a Qumulo supported EC2 instance type.",
			},
		},
		{
			name:  ParamVpcID,
			label: "VPC ID",
			parameter: cfn.Parameter{
				Type:                  "AWS::EC2::VPC::Id",
				Description:           "ID of the VPC in which to deploy Qumulo.",
				ConstraintDescription: "Must be the ID of an existing VPC.",
			},
		},
		{
			name:  ParamSubnetID,
			label: "Subnet ID in the VPC",
			parameter: cfn.Parameter{
				Type:                  "AWS::EC2::Subnet::Id",
				Description:           "ID of the Subnet in which to deploy Qumulo.",
				ConstraintDescription: "Must be the ID of an existing Subnet.",
			},
		},
	}

	if withIngressCIDR {
		params = append(params, namedParameter{
			name:  ParamSgCidr,
			label: "Security group IPv4 CIDR block",
			parameter: cfn.Parameter{
				Type: "String",
				Description: "An IPv4 CIDR block for specifying the generated security group's " +
					"allowed addresses for inbound traffic. Set to x.x.x.x/32 to allow one " +
					"specific IP address access, 0.0.0.0/0 to allow all IP addresses access, " +
					"or another CIDR range.",
				AllowedPattern:        constants.CIDRPattern,
				ConstraintDescription: "Must be specified as an IPv4 address followed by / and a subnet mask of 0-32.",
			},
		})
	}

	params = append(params,
		namedParameter{
			name:  ParamVolumesEncryptionKey,
			label: "EBS volumes encryption key ID",
			parameter: cfn.Parameter{
				Type:    "String",
				Default: aws.String(""),
				Description: "The KMS Key to encrypt the volumes. Use either a key ID, ARN, or an Alias. " +
					"Aliases must begin with alias/ followed by the name, such as alias/exampleKey. " +
					"If empty, the default KMS EBS key will be used. Choosing an invalid key name " +
					"will cause the instance to fail to launch.",
			},
		},
		namedParameter{
			name:  ParamIamInstanceProfile,
			label: "IAM Instance Profile",
			parameter: cfn.Parameter{
				Type:    "String",
				Default: aws.String(""),
				Description: "Optionally enter the name (*not* the ARN) of the IAM instance profile " +
					"to be assigned to each instance in the cluster.",
			},
		},
		namedParameter{
			name:  ParamInstanceRecoveryTopic,
			label: "Instance recovery alarm SNS topic",
			parameter: cfn.Parameter{
				Type:    "String",
				Default: aws.String(""),
				Description: "Optionally enter the ARN of an SNS topic that receives messages when " +
					"an instance alarm is triggered.",
			},
		},
		namedParameter{
			name:  ParamFloatingIPCount,
			label: "EC2 Secondary IPs",
			parameter: cfn.Parameter{
				Type:          "String",
				Default:       aws.String("0"),
				AllowedValues: lo.Times(MaxFloatingIPCount+1, strconv.Itoa),
				Description: "Optionally enter the number of EC2 Secondary IPs to configure " +
					"for use as Floating IPs on the Qumulo Cluster.",
			},
		},
	)

	return params
}

func parameterGroups(withIngressCIDR bool) []cfn.ParameterGroup {
	groups := []cfn.ParameterGroup{
		{
			Label: cfn.Label{Default: "Amazon EC2 Configuration"},
			Parameters: []string{
				ParamClusterAMI,
				ParamInstanceType,
				ParamKeyName,
				ParamFloatingIPCount,
				ParamVolumesEncryptionKey,
				ParamIamInstanceProfile,
			},
		},
		{
			Label:      cfn.Label{Default: "Qumulo Configuration"},
			Parameters: []string{ParamClusterName},
		},
		{
			Label:      cfn.Label{Default: "SNS Configuration"},
			Parameters: []string{ParamInstanceRecoveryTopic},
		},
	}

	if withIngressCIDR {
		groups = append(groups, cfn.ParameterGroup{
			Label:      cfn.Label{Default: "Network Configuration"},
			Parameters: []string{ParamVpcID, ParamSubnetID, ParamSgCidr},
		})
	}

	return groups
}

func addParameters(template *cfn.Template, withIngressCIDR bool) error {
	params := parameters(withIngressCIDR)

	for _, p := range params {
		if err := template.AddParameter(p.name, p.parameter); err != nil {
			return err
		}
	}

	labels := lo.Associate(params, func(p namedParameter) (string, cfn.Label) {
		return p.name, cfn.Label{Default: p.label}
	})

	template.SetInterface(cfn.Interface{
		ParameterGroups: parameterGroups(withIngressCIDR),
		ParameterLabels: labels,
	})

	return nil
}
