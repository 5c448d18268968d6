package astcontext

import (
	"github.com/kschiffer/bvast/astnodes"
	"github.com/kschiffer/bvast/internal/callcounters"
)

// nodesConstructedRoot groups every per-kind construction counter for
// display; see callcounters.CreateHierarchicalCallCounter.
const nodesConstructedRoot callcounters.Id = "NodesConstructed"

func init() {
	callcounters.CreateHierarchicalCallCounter(nodesConstructedRoot, "Nodes constructed", "")
	for _, k := range astnodes.AllKinds() {
		callcounters.CreateHierarchicalCallCounter(callcounters.Id(k.String()), k.String(), nodesConstructedRoot)
	}
}
