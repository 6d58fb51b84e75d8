package stack

import (
	"github.com/hogwarts-cloud/qcft/internal/cfn"
	"github.com/hogwarts-cloud/qcft/pkg/constants"
	"github.com/samber/lo"
)

const SecondaryPrivateIPsAttribute = "SecondaryPrivateIpAddresses"

func commaList(values any) cfn.Intrinsic {
	return cfn.Join(", ", values)
}

func quoted(value any) cfn.Intrinsic {
	return cfn.Join("", []any{`"`, value, `"`})
}

func addOutputs(template *cfn.Template, nodes []node, securityGroup any) error {
	instanceIDs := lo.Map(nodes, func(n node, _ int) any {
		return cfn.Ref(n.Name)
	})
	primaryIPs := lo.Map(nodes, func(n node, _ int) any {
		return cfn.GetAtt(n.Name, PrivateIPAttribute)
	})
	secondaryIPs := lo.Map(nodes, func(n node, _ int) any {
		return commaList(cfn.GetAtt(n.Eni, SecondaryPrivateIPsAttribute))
	})

	outputs := []struct {
		name   string
		output cfn.Output
	}{
		{
			name: "ClusterInstanceIDs",
			output: cfn.Output{
				Description: "List of the instance IDs of the nodes in your Qumulo Cluster",
				Value:       commaList(instanceIDs),
			},
		},
		{
			name: "ClusterPrivateIPs",
			output: cfn.Output{
				Description: "List of the primary private IPs of the nodes in your Qumulo Cluster",
				Value:       commaList(primaryIPs),
			},
		},
		{
			name: "ClusterSecondaryPrivateIPs",
			output: cfn.Output{
				Description: "List of the secondary private IPs of the nodes in your Qumulo Cluster",
				Value:       commaList(secondaryIPs),
			},
		},
		{
			name: "ClusterSGID",
			output: cfn.Output{
				Description: "The security group being used by the cluster network interfaces",
				Value:       securityGroup,
			},
		},
		{
			name: "ClusterPlacementGroup",
			output: cfn.Output{
				Description: "The placement group created for the cluster",
				Value:       cfn.Ref(constants.PlacementGroupName),
			},
		},
		{
			name: "TemporaryPassword",
			output: cfn.Output{
				Description: "Temporary admin password for your Qumulo cluster (exclude quotes, matches node1 instance ID).",
				Value:       quoted(instanceIDs[0]),
			},
		},
		{
			name: "LinkToManagement",
			output: cfn.Output{
				Description: "Use to launch the Qumulo Admin Console",
				Value:       cfn.Join("", []any{"https://", primaryIPs[0]}),
			},
		},
		{
			name: "QumuloKnowledgeBase",
			output: cfn.Output{
				Description: "Knowledge Base for Qumulo in public clouds",
				Value:       constants.KnowledgeBaseLink,
			},
		},
		{
			name: "AWSStackID",
			output: cfn.Output{
				Description: "AWS ARN for this stack",
				Value:       cfn.Ref(cfn.StackID),
			},
		},
		{
			name: "AWSStackName",
			output: cfn.Output{
				Description: "AWS Name for this stack",
				Value:       cfn.Ref(cfn.StackName),
			},
		},
	}

	for _, o := range outputs {
		if err := template.AddOutput(o.name, o.output); err != nil {
			return err
		}
	}

	return nil
}
