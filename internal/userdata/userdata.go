// Package userdata builds the first-boot payload handed to each node. The
// first node forms the cluster, so it also learns the addresses of its
// peers and the cluster name; every other node only learns its own disk
// layout and waits to be joined.
package userdata

import (
	"encoding/json"
	"fmt"

	"github.com/hogwarts-cloud/qcft/internal/cfn"
	"github.com/hogwarts-cloud/qcft/internal/models"
)

func specInfo(slots []models.SlotSpec) (string, error) {
	data, err := json.Marshal(models.SlotSpecs{SlotSpecs: slots})
	if err != nil {
		return "", fmt.Errorf("failed to marshal slot specs: %w", err)
	}

	return string(data), nil
}

// ClusterNode returns the Fn::Join parts for the cluster-forming node.
// peerIPs and clusterName are template values resolved at deploy time.
func ClusterNode(slots []models.SlotSpec, peerIPs []any, clusterName any) ([]any, error) {
	info, err := specInfo(slots)
	if err != nil {
		return nil, err
	}

	parts := []any{`{"spec_info": ` + info + `, "node_ips": [`}

	for i, ip := range peerIPs {
		if i != 0 {
			parts = append(parts, ", ")
		}
		parts = append(parts, `"`, ip, `"`)
	}

	parts = append(parts, `], "cluster_name": "`, clusterName, `"}`)

	return parts, nil
}

func JoiningNode(slots []models.SlotSpec) ([]any, error) {
	info, err := specInfo(slots)
	if err != nil {
		return nil, err
	}

	return []any{`{"spec_info": ` + info + `}`}, nil
}

// Encode wraps user data parts the way EC2 expects them.
func Encode(parts []any) cfn.Intrinsic {
	return cfn.Base64(cfn.Join("", parts))
}
