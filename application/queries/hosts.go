package queries

import (
	"fmt"

	"granefapi/pkg/utils"
)

// HostsCommunicatedParams requests all hosts that communicated with the
// hosts in the given address range
type HostsCommunicatedParams struct {
	HostIP string `validate:"required,ip|cidr"`
}

// Build validates the parameters and assembles the query
func (p HostsCommunicatedParams) Build() (Request, error) {
	if err := utils.ValidateStruct(p); err != nil {
		return Request{}, err
	}
	return Request{
		Header: "query getCommunicatedHosts($host_ip: string)",
		Body: `{
			getCommunicatedHosts(func: allof(host.ip, cidr, $host_ip)) {
				label : host.ip
				host.ip
				host.communicated {
					label : host.ip
					host.ip
				}
			}
		}`,
		Vars: map[string]string{"$host_ip": p.HostIP},
	}, nil
}

// ConnectionsFromToParams requests a host's originated connections in a
// time interval, together with the responding hosts
type ConnectionsFromToParams struct {
	HostIP string `validate:"required,ip"`
	FromTS string `validate:"required"`
	ToTS   string `validate:"required"`
}

// Build validates the parameters, converting the interval bounds to the
// timestamp form the store indexes on
func (p ConnectionsFromToParams) Build() (Request, error) {
	if err := utils.ValidateStruct(p); err != nil {
		return Request{}, err
	}
	from, err := utils.ConvertToDatetime("from_ts_val", p.FromTS)
	if err != nil {
		return Request{}, err
	}
	to, err := utils.ConvertToDatetime("to_ts_val", p.ToTS)
	if err != nil {
		return Request{}, err
	}
	return Request{
		Header: "query getConnections($host_ip: string, $from_ts_val: string, $to_ts_val: string)",
		Body: `{
			getConnections(func: eq(host.ip, $host_ip)) {
				label : host.ip
				host.ip
				host.originated @filter(ge(connection.ts, $from_ts_val) AND le(connection.ts, $to_ts_val)) {
					expand(Connection)
					~host.responded {
						label : host.ip
						host.ip
					}
				}
			}
		}`,
		Vars: map[string]string{"$host_ip": p.HostIP, "$from_ts_val": from, "$to_ts_val": to},
	}, nil
}

// OriginatedConnectionsParams requests a host's originated connections
// filtered by one connection attribute
type OriginatedConnectionsParams struct {
	HostIP     string `validate:"required,ip"`
	FilterFunc string `validate:"required,oneof=eq ge le gt lt"`
	Attribute  string `validate:"required,oneof=proto conn_state duration orig_bytes orig_ip_bytes orig_p orig_pkts resp_bytes resp_ip_bytes resp_p resp_pkts service ts"`
	Value      string `validate:"required"`
}

// Build validates the parameters and assembles the query. The filter
// function and attribute are whitelisted above, so interpolating them
// into the query text cannot smuggle in foreign clauses.
func (p OriginatedConnectionsParams) Build() (Request, error) {
	if err := utils.ValidateStruct(p); err != nil {
		return Request{}, err
	}
	return Request{
		Header: "query getConnections($host_ip: string, $value: string)",
		Body: fmt.Sprintf(`{
			getConnections(func: eq(host.ip, $host_ip)) {
				label : host.ip
				host.ip
				host.originated @filter(%s(connection.%s, $value)) {
					expand(Connection)
					~host.responded {
						label : host.ip
						host.ip
					}
				}
			}
		}`, p.FilterFunc, p.Attribute),
		Vars: map[string]string{"$host_ip": p.HostIP, "$value": p.Value},
	}, nil
}
