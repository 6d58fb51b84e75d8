package network

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/hogwarts-cloud/qcft/internal/cfn"
	"github.com/hogwarts-cloud/qcft/pkg/constants"
	"github.com/samber/lo"
)

const (
	ProtocolTCP = "tcp"
	ProtocolUDP = "udp"
	ProtocolAll = "-1"
)

var ErrInvalidSecurityGroupID = errors.New("invalid security group id")

var securityGroupIDRegex = regexp.MustCompile(`^sg-[0-9a-f]{8}([0-9a-f]{9})?$`)

type Port struct {
	Number  int
	Service string
}

// Ports opened to SgCidr on a generated security group.
var (
	IngressTCPPorts = []Port{
		{Number: 21, Service: "FTP"},
		{Number: 22, Service: "SSH"},
		{Number: 80, Service: "HTTP"},
		{Number: 111, Service: "SUNRPC"},
		{Number: 443, Service: "HTTPS"},
		{Number: 445, Service: "SMB"},
		{Number: 2049, Service: "NFS"},
		{Number: 3712, Service: "Replication"},
		{Number: 8000, Service: "REST"},
	}
	IngressUDPPorts = []Port{
		{Number: 111, Service: "SUNRPC"},
		{Number: 2049, Service: "NFS"},
	}
)

func IngressRules(cidr any) []cfn.SecurityGroupRule {
	tcp := lo.Map(IngressTCPPorts, func(port Port, _ int) cfn.SecurityGroupRule {
		return cfn.SecurityGroupRule{
			Description: fmt.Sprintf("TCP ports for %s", port.Service),
			IpProtocol:  ProtocolTCP,
			FromPort:    port.Number,
			ToPort:      port.Number,
			CidrIp:      cidr,
		}
	})

	udp := lo.Map(IngressUDPPorts, func(port Port, _ int) cfn.SecurityGroupRule {
		return cfn.SecurityGroupRule{
			Description: fmt.Sprintf("UDP port for %s", port.Service),
			IpProtocol:  ProtocolUDP,
			FromPort:    port.Number,
			ToPort:      port.Number,
			CidrIp:      cidr,
		}
	})

	return append(tcp, udp...)
}

func EgressRules() []cfn.SecurityGroupRule {
	return []cfn.SecurityGroupRule{
		{
			Description: "Outbound traffic",
			IpProtocol:  ProtocolAll,
			FromPort:    0,
			ToPort:      0,
			CidrIp:      constants.SecurityGroupDefaultCIDR,
		},
	}
}

// NodeRule lets every member of the group reach every other member.
func NodeRule(group any) cfn.SecurityGroupIngress {
	return cfn.SecurityGroupIngress{
		Description:           "Qumulo Internode Communication",
		GroupId:               group,
		IpProtocol:            ProtocolAll,
		FromPort:              0,
		ToPort:                0,
		SourceSecurityGroupId: group,
	}
}

func ValidateSecurityGroupID(id string) error {
	if !securityGroupIDRegex.MatchString(id) {
		return fmt.Errorf("%w: %q", ErrInvalidSecurityGroupID, id)
	}

	return nil
}
