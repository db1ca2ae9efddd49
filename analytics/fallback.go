package analytics

import "encoding/json"

// defaultFallbacks returns the per-endpoint failover documents: empty
// collections with zeroed metadata, so a failed fetch degrades to an empty
// view instead of an error surface.
func defaultFallbacks() map[string]json.RawMessage {
	return map[string]json.RawMessage{
		EndpointStores:       json.RawMessage(`{"stores":[]}`),
		EndpointProducts:     json.RawMessage(`{"products":[],"categories":[]}`),
		EndpointSalesHistory: json.RawMessage(`{"monthly":[],"daily":[],"regional":[]}`),
		EndpointPredictions:  json.RawMessage(`{"predictions":[]}`),
		EndpointAlerts:       json.RawMessage(`{"alerts":[]}`),
	}
}
