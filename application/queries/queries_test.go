package queries

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "granefapi/pkg/errors"
)

func TestNodeAttributesBuild(t *testing.T) {
	req, err := NodeAttributesParams{UID: "0x1"}.Build()
	require.NoError(t, err)

	assert.Contains(t, req.Body, "func: uid($uid)")
	assert.Contains(t, req.Body, "expand(_all_)")
	assert.Equal(t, map[string]string{"$uid": "0x1"}, req.Vars)
	assert.Contains(t, req.Text(), "query getAllNodeAttributes")
}

func TestNodeAttributesRequiresUID(t *testing.T) {
	_, err := NodeAttributesParams{}.Build()
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestNodeNeighborsDepthRange(t *testing.T) {
	req, err := NodeNeighborsParams{UID: "0x1", Depth: 2}.Build()
	require.NoError(t, err)
	assert.Equal(t, "2", req.Vars["$depth"])

	for _, depth := range []int{0, -1, 33} {
		_, err := NodeNeighborsParams{UID: "0x1", Depth: depth}.Build()
		require.Error(t, err, "depth %d", depth)
		assert.True(t, apperrors.IsValidation(err))
	}
}

func TestHostsCommunicatedAcceptsIPAndCIDR(t *testing.T) {
	for _, addr := range []string{"10.0.0.1", "10.0.0.0/8"} {
		req, err := HostsCommunicatedParams{HostIP: addr}.Build()
		require.NoError(t, err, "address %s", addr)
		assert.Equal(t, addr, req.Vars["$host_ip"])
	}

	_, err := HostsCommunicatedParams{HostIP: "not-an-ip"}.Build()
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestConnectionsFromToConvertsTimestamps(t *testing.T) {
	req, err := ConnectionsFromToParams{
		HostIP: "10.0.0.1",
		FromTS: "20/03/2019 08:00:00",
		ToTS:   "20/03/2019 09:00:00",
	}.Build()
	require.NoError(t, err)

	assert.Equal(t, "2019-03-20T08:00:00", req.Vars["$from_ts_val"])
	assert.Equal(t, "2019-03-20T09:00:00", req.Vars["$to_ts_val"])
}

func TestConnectionsFromToRejectsBadTimestamp(t *testing.T) {
	_, err := ConnectionsFromToParams{
		HostIP: "10.0.0.1",
		FromTS: "2019-03-20",
		ToTS:   "20/03/2019 09:00:00",
	}.Build()
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestOriginatedConnectionsWhitelists(t *testing.T) {
	req, err := OriginatedConnectionsParams{
		HostIP:     "10.0.0.1",
		FilterFunc: "ge",
		Attribute:  "orig_bytes",
		Value:      "1024",
	}.Build()
	require.NoError(t, err)

	assert.Contains(t, req.Body, "ge(connection.orig_bytes, $value)")
	assert.Equal(t, "1024", req.Vars["$value"])

	_, err = OriginatedConnectionsParams{
		HostIP:     "10.0.0.1",
		FilterFunc: "regexp",
		Attribute:  "orig_bytes",
		Value:      "1024",
	}.Build()
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))

	_, err = OriginatedConnectionsParams{
		HostIP:     "10.0.0.1",
		FilterFunc: "eq",
		Attribute:  "proto) { uid } @filter(",
		Value:      "tcp",
	}.Build()
	require.Error(t, err, "unlisted attribute must not reach the query text")
	assert.True(t, apperrors.IsValidation(err))
}

func TestConnectionsSearchBuild(t *testing.T) {
	req, err := ConnectionsSearchParams{
		SrcIP:  "192.168.0.0/16",
		DstIP:  "10.0.0.1",
		FromTS: "20/03/2019 08:00:00",
		ToTS:   "20/03/2019 09:00:00",
	}.Build()
	require.NoError(t, err)

	assert.Contains(t, req.Body, "@cascade")
	assert.Equal(t, "192.168.0.0/16", req.Vars["$src_ip"])
	assert.Equal(t, "10.0.0.1", req.Vars["$dst_ip"])
}

func TestHostsInfoBuild(t *testing.T) {
	req, err := HostsInfoParams{Address: "192.168.0.0/24"}.Build()
	require.NoError(t, err)

	assert.Contains(t, req.Body, "count(host.originated)")
	assert.Equal(t, "192.168.0.0/24", req.Vars["$address"])
}

func TestCustomQueryBuild(t *testing.T) {
	req, err := CustomQueryParams{Query: `{ q(func: has(host.ip)) { host.ip } }`}.Build()
	require.NoError(t, err)
	assert.Equal(t, `{ q(func: has(host.ip)) { host.ip } }`, req.Body)
	assert.Empty(t, req.Header)

	_, err = CustomQueryParams{}.Build()
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}
