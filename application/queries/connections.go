package queries

import "granefapi/pkg/utils"

// ConnectionsSearchParams requests connections between two address
// ranges inside a time interval
type ConnectionsSearchParams struct {
	SrcIP  string `validate:"required,ip|cidr"`
	DstIP  string `validate:"required,ip|cidr"`
	FromTS string `validate:"required"`
	ToTS   string `validate:"required"`
}

// Build validates the parameters and assembles the query
func (p ConnectionsSearchParams) Build() (Request, error) {
	if err := utils.ValidateStruct(p); err != nil {
		return Request{}, err
	}
	from, err := utils.ConvertToDatetime("timestamp_from", p.FromTS)
	if err != nil {
		return Request{}, err
	}
	to, err := utils.ConvertToDatetime("timestamp_to", p.ToTS)
	if err != nil {
		return Request{}, err
	}
	return Request{
		Header: "query searchConnections($src_ip: string, $dst_ip: string, $from_ts: string, $to_ts: string)",
		Body: `{
			searchConnections(func: allof(host.ip, cidr, $src_ip)) @cascade {
				label : host.ip
				host.ip
				host.originated @filter(ge(connection.ts, $from_ts) AND le(connection.ts, $to_ts)) {
					label : connection.proto
					connection.proto
					connection.ts
					~host.responded @filter(allof(host.ip, cidr, $dst_ip)) {
						label : host.ip
						host.ip
					}
				}
			}
		}`,
		Vars: map[string]string{
			"$src_ip":  p.SrcIP,
			"$dst_ip":  p.DstIP,
			"$from_ts": from,
			"$to_ts":   to,
		},
	}, nil
}
