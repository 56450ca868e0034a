package queries

import (
	"strconv"

	"granefapi/pkg/utils"
)

// NodeAttributesParams requests all attributes of a single node
type NodeAttributesParams struct {
	UID string `validate:"required"`
}

// Build validates the parameters and assembles the query
func (p NodeAttributesParams) Build() (Request, error) {
	if err := utils.ValidateStruct(p); err != nil {
		return Request{}, err
	}
	return Request{
		Header: "query getAllNodeAttributes($uid: string)",
		Body: `{
			getAllNodeAttributes(func: uid($uid)) {
				expand(_all_)
			}
		}`,
		Vars: map[string]string{"$uid": p.UID},
	}, nil
}

// NodeNeighborsParams requests a node's neighborhood up to a given depth
type NodeNeighborsParams struct {
	UID   string `validate:"required"`
	Depth int    `validate:"min=1,max=32"`
}

// Build validates the parameters and assembles the query
func (p NodeNeighborsParams) Build() (Request, error) {
	if err := utils.ValidateStruct(p); err != nil {
		return Request{}, err
	}
	return Request{
		Header: "query getAllNodeNeighbors($uid: string, $depth: int)",
		Body: `{
			getAllNodeNeighbors(func: uid($uid)) @recurse(depth: $depth, loop: false) {
				expand(_all_)
			}
		}`,
		Vars: map[string]string{"$uid": p.UID, "$depth": strconv.Itoa(p.Depth)},
	}, nil
}
