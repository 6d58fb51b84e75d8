// Package stack assembles the cluster CloudFormation template from a
// chassis layout.
package stack

import (
	"errors"
	"fmt"

	"github.com/hogwarts-cloud/qcft/internal/cfn"
	"github.com/hogwarts-cloud/qcft/internal/chassis"
	"github.com/hogwarts-cloud/qcft/pkg/constants"
)

const Description = "Qumulo for AWS has the highest performance of any file storage system " +
	"in the public cloud and a complete set of enterprise features, such " +
	"as support for SMB, real-time visibility into the storage system, " +
	"directory-based capacity quotas, and snapshots."

const (
	HasEncryptionKey         = "HasEncryptionKey"
	HasIamInstanceProfile    = "HasIamInstanceProfile"
	HasInstanceRecoveryTopic = "HasInstanceRecoveryTopic"
)

var ErrNoNodes = errors.New("at least one node is required")

type Options struct {
	NumNodes       int
	NodeNamePrefix string
	// SecurityGroup is an existing group id. When empty a group is
	// generated together with the SgCidr parameter.
	SecurityGroup string
}

func Build(spec *chassis.Spec, opts Options) (*cfn.Template, error) {
	if opts.NumNodes < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrNoNodes, opts.NumNodes)
	}

	prefix := opts.NodeNamePrefix
	if prefix == "" {
		prefix = constants.DefaultNodeNamePrefix
	}

	template := cfn.New(Description)

	if err := addConditions(template); err != nil {
		return nil, fmt.Errorf("failed to add conditions: %w", err)
	}

	generateSecurityGroup := opts.SecurityGroup == ""

	if err := addParameters(template, generateSecurityGroup); err != nil {
		return nil, fmt.Errorf("failed to add parameters: %w", err)
	}

	var securityGroup any = opts.SecurityGroup
	if generateSecurityGroup {
		group, err := addSecurityGroup(template)
		if err != nil {
			return nil, fmt.Errorf("failed to add security group: %w", err)
		}
		securityGroup = group
	}

	nodes, err := addNodes(template, spec, opts.NumNodes, prefix, securityGroup)
	if err != nil {
		return nil, fmt.Errorf("failed to add nodes: %w", err)
	}

	if err := addAlarms(template, nodes); err != nil {
		return nil, fmt.Errorf("failed to add recovery alarms: %w", err)
	}

	if err := addOutputs(template, nodes, securityGroup); err != nil {
		return nil, fmt.Errorf("failed to add outputs: %w", err)
	}

	return template, nil
}

func addConditions(template *cfn.Template) error {
	conditions := []struct {
		name      string
		parameter string
	}{
		{name: HasEncryptionKey, parameter: ParamVolumesEncryptionKey},
		{name: HasIamInstanceProfile, parameter: ParamIamInstanceProfile},
		{name: HasInstanceRecoveryTopic, parameter: ParamInstanceRecoveryTopic},
	}

	for _, condition := range conditions {
		if err := template.AddCondition(condition.name, cfn.Not(cfn.Equals(cfn.Ref(condition.parameter), ""))); err != nil {
			return err
		}
	}

	return nil
}
