package queries

import "granefapi/pkg/utils"

// HostsInfoParams requests attributes and statistics about hosts in a
// network range
type HostsInfoParams struct {
	Address string `validate:"required,ip|cidr"`
}

// Build validates the parameters and assembles the query
func (p HostsInfoParams) Build() (Request, error) {
	if err := utils.ValidateStruct(p); err != nil {
		return Request{}, err
	}
	return Request{
		Header: "query getStatistics($address: string)",
		Body: `{
			getStatistics(func: allof(host.ip, cidr, $address)) {
				label : host.ip
				host.ip
				host.hostname {
					label : hostname.name
					hostname.name
					hostname.type
				}
				host.user_agent {
					label : user_agent.name
					user_agent.name
					user_agent.type
				}
				obtained_file_count : count(host.obtained)
				provided_file_count : count(host.provided)
				communicated_count : count(host.communicated)
				originated_count : count(host.originated)
				responded_count : count(host.responded)
				x509_count : count(host.x509)
			}
		}`,
		Vars: map[string]string{"$address": p.Address},
	}, nil
}
