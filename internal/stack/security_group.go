package stack

import (
	"github.com/hogwarts-cloud/qcft/internal/cfn"
	"github.com/hogwarts-cloud/qcft/internal/network"
	"github.com/hogwarts-cloud/qcft/pkg/constants"
)

// addSecurityGroup opens the client protocols to SgCidr and all traffic
// between cluster members. It returns a reference to the new group.
func addSecurityGroup(template *cfn.Template) (cfn.Intrinsic, error) {
	if err := template.AddResource(constants.SecurityGroupName, cfn.TypeSecurityGroup, cfn.SecurityGroup{
		GroupDescription:     "Enable ports for NFS/SMB/FTP/SSH, Management, Replication, and Clustering.",
		SecurityGroupIngress: network.IngressRules(cfn.Ref(ParamSgCidr)),
		SecurityGroupEgress:  network.EgressRules(),
		VpcId:                cfn.Ref(ParamVpcID),
	}); err != nil {
		return nil, err
	}

	group := cfn.Ref(constants.SecurityGroupName)

	// The self-referencing rule has to be its own resource.
	if err := template.AddResource(
		constants.SecurityGroupNodeRuleName,
		cfn.TypeSecurityGroupIngress,
		network.NodeRule(group),
	); err != nil {
		return nil, err
	}

	return group, nil
}
